package interpreter

import (
	"fmt"
	"os"
)

/*
State is the process-wide mutable shell state. The working directory is
seeded from the OS at startup and mutated only by the cd builtin; external
command execution never changes it. The exit fields are set only by the
exit builtin and stop the loop after the current command completes.
*/
type State struct {
	WorkingDir string
	ExitSet    bool
	ExitStatus int
}

// NewState creates a State seeded from the current process.
func NewState() (*State, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return &State{WorkingDir: wd}, nil
}

// RequestExit marks the shell for termination with the given status.
func (s *State) RequestExit(status int) {
	s.ExitSet = true
	s.ExitStatus = status
}
