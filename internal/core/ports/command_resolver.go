package ports

import (
	"github.com/AntonioJCosta/gosh/internal/core/domain/command"
	"github.com/AntonioJCosta/gosh/internal/core/domain/token"
)

// CommandResolver decides how a tokenized line maps to an executable
// action: a builtin, an executable on the search path, or not found.
// workDir is the shell's working directory at resolution time; relative
// direct-path names resolve against it.
type CommandResolver interface {
	Resolve(line token.Line, workDir string) command.Resolved
}
