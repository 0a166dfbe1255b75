package testutil

import (
	"github.com/AntonioJCosta/gosh/internal/core/domain/command"
	"github.com/AntonioJCosta/gosh/internal/core/domain/token"
)

// MockCommandResolver is a mock implementation of ports.CommandResolver
// for testing.
type MockCommandResolver struct {
	ResolveFunc func(line token.Line, workDir string) command.Resolved
}

func (m *MockCommandResolver) Resolve(line token.Line, workDir string) command.Resolved {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(line, workDir)
	}
	return command.Resolved{Kind: command.KindNotFound, Name: line.Name(), Args: line.Args()}
}
