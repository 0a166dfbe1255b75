/*
Package history defines core domain entities for the session's command
history.
*/
package history

/*
Entry represents one command line executed during the current session,
together with its position in that session. This is a core domain entity.
*/
type Entry struct {
	Seq  int
	Line string
}
