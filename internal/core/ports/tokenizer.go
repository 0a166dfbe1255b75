package ports

import "github.com/AntonioJCosta/gosh/internal/core/domain/token"

/*
Tokenizer splits one raw input line into words under the shell's quoting
and escaping rules. Tokenization is total: malformed quoting degrades to a
best-effort result instead of failing.
*/
type Tokenizer interface {
	Tokenize(line string) token.Line
}
