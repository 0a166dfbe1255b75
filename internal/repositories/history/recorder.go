package history

import (
	"github.com/AntonioJCosta/gosh/internal/core/domain/history"
	"github.com/AntonioJCosta/gosh/internal/core/ports"
)

/*
Recorder keeps the command lines executed during the current session in
memory. It implements the ports.HistoryRecorder interface. Sequence
numbers keep counting across Clear, matching how interactive shells
number their history.
*/
type Recorder struct {
	entries []history.Entry
	nextSeq int
}

// NewRecorder creates an empty session recorder.
func NewRecorder() ports.HistoryRecorder {
	return &Recorder{nextSeq: 1}
}

// Append records one executed command line.
func (r *Recorder) Append(line string) {
	r.entries = append(r.entries, history.Entry{Seq: r.nextSeq, Line: line})
	r.nextSeq++
}

// Entries returns the recorded commands in execution order. The returned
// slice is a copy; callers cannot mutate the recorder through it.
func (r *Recorder) Entries() []history.Entry {
	entries := make([]history.Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Clear forgets all recorded commands.
func (r *Recorder) Clear() {
	r.entries = nil
}
