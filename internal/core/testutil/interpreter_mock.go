package testutil

import "github.com/AntonioJCosta/gosh/internal/core/domain/command"

// MockInterpreter is a mock implementation of ports.Interpreter for
// testing.
type MockInterpreter struct {
	RunFunc     func() (int, error)
	RunLineFunc func(line string) command.Outcome
}

func (m *MockInterpreter) Run() (int, error) {
	if m.RunFunc != nil {
		return m.RunFunc()
	}
	return 0, nil
}

func (m *MockInterpreter) RunLine(line string) command.Outcome {
	if m.RunLineFunc != nil {
		return m.RunLineFunc(line)
	}
	return command.Outcome{}
}
