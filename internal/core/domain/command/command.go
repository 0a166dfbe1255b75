/*
Package command defines the core domain entities describing how a command
name was resolved and what running it produced.
*/
package command

// Kind tags the variants of a resolved command.
type Kind int

const (
	// KindBuiltin means the name matched a command implemented inside the
	// shell process itself.
	KindBuiltin Kind = iota
	// KindExternal means the name resolved to an executable on the search
	// path.
	KindExternal
	// KindNotFound means the name matched neither a builtin nor an
	// executable.
	KindNotFound
)

/*
Resolved describes how one command line will be executed. It is created
per line by the resolver and consumed immediately by the executor.
*/
type Resolved struct {
	Kind Kind
	Name string   // command name as the user typed it
	Path string   // absolute executable path, set for KindExternal only
	Args []string // arguments in order
}

// Outcome is the result of executing a resolved command: an exit status
// (0 means success) and an optional description of what went wrong.
type Outcome struct {
	Status int
	Err    error
}

// Failed reports whether the outcome describes anything other than a
// clean, successful execution.
func (o Outcome) Failed() bool {
	return o.Status != 0 || o.Err != nil
}

// Conventional exit statuses, following the usual shell numbering.
const (
	StatusOK            = 0
	StatusFailure       = 1
	StatusBuiltinMisuse = 2
	StatusNotExecutable = 126
	StatusNotFound      = 127
)
