package testutil

import "github.com/AntonioJCosta/gosh/internal/core/domain/history"

// MockHistoryRecorder is a mock implementation of ports.HistoryRecorder
// for testing. With no funcs set it records into Appended.
type MockHistoryRecorder struct {
	Appended []string

	AppendFunc  func(line string)
	EntriesFunc func() []history.Entry
	ClearFunc   func()
}

func (m *MockHistoryRecorder) Append(line string) {
	if m.AppendFunc != nil {
		m.AppendFunc(line)
		return
	}
	m.Appended = append(m.Appended, line)
}

func (m *MockHistoryRecorder) Entries() []history.Entry {
	if m.EntriesFunc != nil {
		return m.EntriesFunc()
	}
	entries := make([]history.Entry, 0, len(m.Appended))
	for i, line := range m.Appended {
		entries = append(entries, history.Entry{Seq: i + 1, Line: line})
	}
	return entries
}

func (m *MockHistoryRecorder) Clear() {
	if m.ClearFunc != nil {
		m.ClearFunc()
		return
	}
	m.Appended = nil
}
