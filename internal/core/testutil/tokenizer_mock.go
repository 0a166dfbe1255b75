package testutil

import "github.com/AntonioJCosta/gosh/internal/core/domain/token"

// MockTokenizer is a mock implementation of ports.Tokenizer for testing.
type MockTokenizer struct {
	TokenizeFunc func(line string) token.Line
}

func (m *MockTokenizer) Tokenize(line string) token.Line {
	if m.TokenizeFunc != nil {
		return m.TokenizeFunc(line)
	}
	return nil
}
