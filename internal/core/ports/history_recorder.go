package ports

import "github.com/AntonioJCosta/gosh/internal/core/domain/history"

// HistoryRecorder keeps the command lines executed during the current
// session, in execution order.
type HistoryRecorder interface {
	Append(line string)
	Entries() []history.Entry
	Clear()
}
