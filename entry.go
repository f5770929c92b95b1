package undostack

import (
	"time"

	"github.com/google/uuid"
)

// entry is one atomic history unit: a single recorded value, or the
// ordered value sequence of a committed group. Entries move exclusively
// between the past and future stacks; they are never duplicated and their
// contents are never inspected beyond restoration.
type entry[T any] struct {
	id      uuid.UUID
	at      time.Time
	values  []T
	grouped bool
}

func newEntry[T any](values []T, grouped bool) entry[T] {
	return entry[T]{
		id:      uuid.New(),
		at:      time.Now(),
		values:  values,
		grouped: grouped,
	}
}

// EntryInfo provides read-only info about a history entry.
// Used for displaying undo/redo history to users.
type EntryInfo struct {
	ID      uuid.UUID // Stable identifier for the entry
	Time    time.Time // When the entry was recorded
	Values  int       // Number of values the entry restores
	Grouped bool      // True if the entry was committed by FinishGroup
}

func (e entry[T]) info() EntryInfo {
	return EntryInfo{
		ID:      e.id,
		Time:    e.at,
		Values:  len(e.values),
		Grouped: e.grouped,
	}
}

// UndoInfo returns info about available undo entries, oldest first.
func (s *Stack[T]) UndoInfo() []EntryInfo {
	result := make([]EntryInfo, len(s.past))
	for i, e := range s.past {
		result[i] = e.info()
	}
	return result
}

// RedoInfo returns info about available redo entries, oldest first.
func (s *Stack[T]) RedoInfo() []EntryInfo {
	result := make([]EntryInfo, len(s.future))
	for i, e := range s.future {
		result[i] = e.info()
	}
	return result
}

// PeekUndo returns info about the next undo entry without removing it.
func (s *Stack[T]) PeekUndo() (EntryInfo, bool) {
	if len(s.past) == 0 {
		return EntryInfo{}, false
	}
	return s.past[len(s.past)-1].info(), true
}

// PeekRedo returns info about the next redo entry without removing it.
func (s *Stack[T]) PeekRedo() (EntryInfo, bool) {
	if len(s.future) == 0 {
		return EntryInfo{}, false
	}
	return s.future[len(s.future)-1].info(), true
}
