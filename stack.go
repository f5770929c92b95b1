package undostack

import (
	"fmt"
	"io"
	"os"
)

// Restorer applies a restored value to the application state.
// It is the sole coupling point between the stack and application data:
// the stack has no other way to observe or mutate the application.
type Restorer[T any] interface {
	Restore(value T)
}

// RestorerFunc adapts a function to the Restorer interface.
type RestorerFunc[T any] func(value T)

// Restore calls f(value).
func (f RestorerFunc[T]) Restore(value T) {
	f(value)
}

// Config configures a Stack at construction time.
type Config struct {
	// Verbose enables human-readable warnings for misuse conditions.
	// Diagnostics are presentation-only: stack behavior is identical
	// whether they are enabled or not.
	Verbose bool

	// Output is where diagnostics are written. Defaults to os.Stderr.
	Output io.Writer

	// MaxEntries caps the past stack; oldest entries are dropped when the
	// cap is exceeded. Zero or negative means unlimited.
	MaxEntries int
}

// Stack manages undo/redo history for values of type T.
//
// T must be comparable so buffered recording can detect no-op
// interactions. A Stack is owned by a single application context; it is
// not safe for concurrent use.
type Stack[T comparable] struct {
	past   []entry[T]
	future []entry[T]

	// Buffered recording state
	buffering bool
	buffer    T

	// Grouped recording state
	grouping  bool
	groupVals []T

	// Optional state restored when undo empties the past stack.
	baseline    T
	hasBaseline bool

	verbose    bool
	output     io.Writer
	maxEntries int
}

// New creates an empty Stack with the given configuration.
func New[T comparable](cfg Config) *Stack[T] {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Stack[T]{
		verbose:    cfg.Verbose,
		output:     out,
		maxEntries: cfg.MaxEntries,
	}
}

// Push records a value as a new history entry and clears the redo history.
// While a group is open the value is collected into the group instead and
// committed as part of it by FinishGroup.
//
// Pushing is always legal. Note the observable side effect: any entries
// awaiting redo are discarded.
func (s *Stack[T]) Push(value T) {
	if s.grouping {
		s.groupVals = append(s.groupVals, value)
		return
	}
	s.commit(newEntry([]T{value}, false))
}

// commit is the single point where entries reach the past stack.
// Both direct pushes and finished groups land here.
func (s *Stack[T]) commit(e entry[T]) {
	s.past = append(s.past, e)
	s.future = nil

	if s.maxEntries > 0 && len(s.past) > s.maxEntries {
		excess := len(s.past) - s.maxEntries
		s.past = s.past[excess:]
	}
}

// Undo moves the most recent past entry to the future stack and applies
// the entry now at the top of the past stack (the state before the
// removed change) to target. If the past stack empties and a baseline is
// set, the baseline is applied instead.
//
// Returns whether a restoration occurred. With nothing to undo this is a
// no-op: neither stack changes and target is never invoked.
func (s *Stack[T]) Undo(target Restorer[T]) bool {
	if len(s.past) == 0 {
		s.warnf("no value to undo")
		return false
	}

	e := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append(s.future, e)

	if len(s.past) > 0 {
		s.apply(s.past[len(s.past)-1], target)
		return true
	}
	if s.hasBaseline {
		target.Restore(s.baseline)
		return true
	}
	s.warnf("past history exhausted with no baseline set")
	return false
}

// Redo moves the most recent future entry back to the past stack and
// applies it to target.
//
// Returns whether a restoration occurred. With nothing to redo this is a
// no-op: neither stack changes and target is never invoked.
func (s *Stack[T]) Redo(target Restorer[T]) bool {
	if len(s.future) == 0 {
		s.warnf("no value to redo")
		return false
	}

	e := s.future[len(s.future)-1]
	s.future = s.future[:len(s.future)-1]
	s.past = append(s.past, e)

	s.apply(e, target)
	return true
}

// apply restores an entry's values in their original push order.
// The order is the same for undo and redo.
func (s *Stack[T]) apply(e entry[T], target Restorer[T]) {
	for _, v := range e.values {
		target.Restore(v)
	}
}

// CanUndo returns true if undo is available.
func (s *Stack[T]) CanUndo() bool {
	return len(s.past) > 0
}

// CanRedo returns true if redo is available.
func (s *Stack[T]) CanRedo() bool {
	return len(s.future) > 0
}

// UndoCount returns the number of undo entries available.
func (s *Stack[T]) UndoCount() int {
	return len(s.past)
}

// RedoCount returns the number of redo entries available.
func (s *Stack[T]) RedoCount() int {
	return len(s.future)
}

// IsEmpty returns true if both the undo and redo stacks are empty.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.past) == 0 && len(s.future) == 0
}

// Clear removes all history, discards any open buffer or group, and
// leaves the baseline in place.
func (s *Stack[T]) Clear() {
	s.past = nil
	s.future = nil
	s.buffering = false
	s.grouping = false
	s.groupVals = nil
	var zero T
	s.buffer = zero
}

// SetBaseline records the implicit initial state applied when undo
// empties the past stack. Typically the state as loaded, before any edits.
func (s *Stack[T]) SetBaseline(value T) {
	s.baseline = value
	s.hasBaseline = true
}

// ClearBaseline removes the baseline. Undoing the last entry then leaves
// the application state untouched beyond the stack move.
func (s *Stack[T]) ClearBaseline() {
	var zero T
	s.baseline = zero
	s.hasBaseline = false
}

// Baseline returns the baseline value and whether one is set.
func (s *Stack[T]) Baseline() (T, bool) {
	if !s.hasBaseline {
		var zero T
		return zero, false
	}
	return s.baseline, true
}

// SetMaxEntries changes the past stack cap. If the current stack is
// larger, oldest entries are dropped. Zero or negative means unlimited.
func (s *Stack[T]) SetMaxEntries(max int) {
	s.maxEntries = max
	if max > 0 && len(s.past) > max {
		excess := len(s.past) - max
		s.past = s.past[excess:]
	}
}

// MaxEntries returns the past stack cap. Zero means unlimited.
func (s *Stack[T]) MaxEntries() int {
	return s.maxEntries
}

// SetVerbose enables or disables the diagnostic channel at runtime.
func (s *Stack[T]) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// warnf emits a diagnostic when Verbose is enabled. Diagnostics never
// affect stack behavior.
func (s *Stack[T]) warnf(format string, args ...any) {
	if !s.verbose {
		return
	}
	fmt.Fprintf(s.output, "undostack: "+format+"\n", args...)
}
