package testutil

import (
	"errors"

	"github.com/AntonioJCosta/gosh/internal/core/ports"
)

// MockProcessRunner is a mock implementation of ports.ProcessRunner for
// testing.
type MockProcessRunner struct {
	RunFunc func(path string, argv []string, dir string, stdio ports.IOStreams) (int, error)
}

func (m *MockProcessRunner) Run(path string, argv []string, dir string, stdio ports.IOStreams) (int, error) {
	if m.RunFunc != nil {
		return m.RunFunc(path, argv, dir, stdio)
	}
	return 0, errors.New("MockProcessRunner: RunFunc not implemented")
}
