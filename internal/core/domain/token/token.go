/*
Package token defines the core domain entities produced by tokenization.
*/
package token

/*
Token is one word of a command line after quote and escape processing.
Its text never contains unquoted, unescaped whitespace. A token produced
by an empty quoted segment has empty text but still counts as a word.
*/
type Token struct {
	Text string
}

// Line is the ordered token sequence of one input line. The first token
// is the command name; the rest are its arguments.
type Line []Token

// IsEmpty reports whether the line carries no command at all.
func (l Line) IsEmpty() bool {
	return len(l) == 0
}

// Name returns the command name, or the empty string for an empty line.
func (l Line) Name() string {
	if l.IsEmpty() {
		return ""
	}
	return l[0].Text
}

// Args returns the argument texts in order, without the command name.
func (l Line) Args() []string {
	if len(l) < 2 {
		return nil
	}
	args := make([]string, 0, len(l)-1)
	for _, t := range l[1:] {
		args = append(args, t.Text)
	}
	return args
}
