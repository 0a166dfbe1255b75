package oscommand

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/AntonioJCosta/gosh/internal/core/domain/command"
	"github.com/AntonioJCosta/gosh/internal/core/ports"
)

// Runner implements the ProcessRunner interface using the operating
// system's process model via os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() ports.ProcessRunner {
	return &Runner{}
}

/*
Run starts the executable at path with the given argument vector and
working directory, wires its output to stdio, and blocks until it
terminates. argv[0] stays whatever name the command was invoked as, so
children see the name the user typed rather than the resolved path.

A nonzero child exit is a normal result carried in the status; an error
is returned only when the child could not be started or waited on, for
example when the file vanished between resolution and launch or lacks
execute permission.
*/
func (r *Runner) Run(path string, argv []string, dir string, stdio ports.IOStreams) (int, error) {
	cmd := exec.Command(path)
	cmd.Args = argv
	cmd.Dir = dir
	cmd.Stdin = stdio.In
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return command.StatusNotExecutable, fmt.Errorf("%s: Permission denied", argv[0])
		}
		if errors.Is(err, fs.ErrNotExist) {
			return command.StatusNotFound, fmt.Errorf("%s: No such file or directory", argv[0])
		}
		return command.StatusNotExecutable, fmt.Errorf("%s: %v", argv[0], err)
	}
	return command.StatusOK, nil
}
