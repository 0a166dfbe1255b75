package ports

import "github.com/AntonioJCosta/gosh/internal/core/domain/command"

/*
Interpreter drives the shell's read, tokenize, resolve, execute loop.
Run blocks until end of input or the exit builtin and returns the final
process status. RunLine executes a single already-read command line and
returns its outcome, for non-interactive one-shot use.
*/
type Interpreter interface {
	Run() (int, error)
	RunLine(line string) command.Outcome
}
