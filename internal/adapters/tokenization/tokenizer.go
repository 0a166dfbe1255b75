package tokenization

import (
	"strings"
	"unicode"

	"github.com/AntonioJCosta/gosh/internal/core/domain/token"
	"github.com/AntonioJCosta/gosh/internal/core/ports"
)

// Tokenizer implements the ports.Tokenizer interface with a rune-by-rune
// state machine over the input line.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() ports.Tokenizer {
	return &Tokenizer{}
}

type scanState int

const (
	stateNone scanState = iota
	stateSingleQuote
	stateDoubleQuote
)

// doubleQuoteEscapable lists the only characters a backslash escapes
// inside double quotes; any other backslash sequence stays verbatim.
const doubleQuoteEscapable = "\"\\$`"

/*
Tokenize splits line into words. Whitespace outside quotes separates
tokens and runs of it collapse; single quotes take everything literally;
double quotes escape a restricted character set; an unquoted backslash
makes the next rune literal, whitespace included.

Adjacent quoted and unquoted segments concatenate into a single token,
and an empty quoted segment still produces a zero-length word. An
unterminated quote or a dangling trailing backslash is not an error: the
token accumulated so far is emitted as is.
*/
func (t *Tokenizer) Tokenize(line string) token.Line {
	var (
		tokens   token.Line
		buf      strings.Builder
		state    = stateNone
		escaping bool
		sawQuote bool
	)

	flush := func() {
		if buf.Len() == 0 && !sawQuote {
			return
		}
		tokens = append(tokens, token.Token{Text: buf.String()})
		buf.Reset()
		sawQuote = false
	}

	for _, r := range line {
		switch state {
		case stateNone:
			switch {
			case escaping:
				buf.WriteRune(r)
				escaping = false
			case r == '\\':
				escaping = true
			case r == '\'':
				state = stateSingleQuote
				sawQuote = true
			case r == '"':
				state = stateDoubleQuote
				sawQuote = true
			case unicode.IsSpace(r):
				flush()
			default:
				buf.WriteRune(r)
			}

		case stateSingleQuote:
			if r == '\'' {
				state = stateNone
			} else {
				buf.WriteRune(r)
			}

		case stateDoubleQuote:
			switch {
			case escaping:
				if !strings.ContainsRune(doubleQuoteEscapable, r) {
					buf.WriteRune('\\')
				}
				buf.WriteRune(r)
				escaping = false
			case r == '\\':
				escaping = true
			case r == '"':
				state = stateNone
			default:
				buf.WriteRune(r)
			}
		}
	}

	// Best-effort leniency: whatever an unterminated quote or dangling
	// escape left in the buffer is still a word.
	flush()
	return tokens
}
