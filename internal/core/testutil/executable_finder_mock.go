package testutil

// MockExecutableFinder is a mock implementation of ports.ExecutableFinder
// for testing.
type MockExecutableFinder struct {
	FindFunc func(name, workDir string) (string, bool)
}

func (m *MockExecutableFinder) Find(name, workDir string) (string, bool) {
	if m.FindFunc != nil {
		return m.FindFunc(name, workDir)
	}
	return "", false
}
