package undostack

// StartGroup begins collecting pushed values into a single atomic
// undo/redo unit. Every Push until FinishGroup is appended to the group
// instead of the past stack.
//
// Groups do not nest: if a group or a buffer is already open the call is a
// no-op. Callers must pair every StartGroup with a FinishGroup (or
// CancelGroup); GroupScope and Transaction make pairing mistakes harder.
func (s *Stack[T]) StartGroup() {
	if s.buffering {
		s.warnf("can't open a group while a buffer is open")
		return
	}
	if s.grouping {
		s.warnf("can't open a new group before finishing the current one")
		return
	}
	s.grouping = true
	s.groupVals = nil
}

// FinishGroup commits the collected values as one history entry. From the
// past stack's perspective the group is indistinguishable from a single
// entry; one Undo or Redo moves it whole. An empty group commits nothing.
//
// With no group open the call is a no-op.
func (s *Stack[T]) FinishGroup() {
	if !s.grouping {
		s.warnf("no open group to finish")
		return
	}

	vals := s.groupVals
	s.grouping = false
	s.groupVals = nil

	if len(vals) == 0 {
		return
	}
	s.commit(newEntry(vals, true))
}

// CancelGroup abandons an open group, discarding its collected values
// without committing. Safe to call with no group open. This is the
// recovery path when a grouped operation fails partway.
func (s *Stack[T]) CancelGroup() {
	s.grouping = false
	s.groupVals = nil
}

// IsGrouping returns true if a group is currently open.
func (s *Stack[T]) IsGrouping() bool {
	return s.grouping
}

// GroupLen returns the number of values collected by the open group, or
// zero when no group is open.
func (s *Stack[T]) GroupLen() int {
	return len(s.groupVals)
}

// GroupScope provides a convenient way to group pushes using defer.
// Usage:
//
//	func applyTheme(s *undostack.Stack[Snapshot]) {
//	    defer s.GroupScope().End()
//	    // ... multiple pushes ...
//	}
type GroupScope[T comparable] struct {
	stack  *Stack[T]
	active bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (s *Stack[T]) GroupScope() *GroupScope[T] {
	s.StartGroup()
	return &GroupScope[T]{
		stack:  s,
		active: true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope[T]) End() {
	if g.active {
		g.stack.FinishGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without committing an entry.
// Note: changes already applied to the application are not rolled back.
func (g *GroupScope[T]) Cancel() {
	if g.active {
		g.stack.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn within a grouped recording context. If fn returns an
// error the group is cancelled and nothing is recorded; otherwise the
// group is committed.
func (s *Stack[T]) Transaction(fn func() error) error {
	s.StartGroup()

	if err := fn(); err != nil {
		s.CancelGroup()
		return err
	}

	s.FinishGroup()
	return nil
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	undoDepth int
}

// CreateCheckpoint creates a checkpoint at the current history position.
func (s *Stack[T]) CreateCheckpoint() Checkpoint {
	return Checkpoint{undoDepth: len(s.past)}
}

// UndoToCheckpoint undoes entries until the past stack returns to the
// checkpoint depth.
func (s *Stack[T]) UndoToCheckpoint(cp Checkpoint, target Restorer[T]) {
	for s.UndoCount() > cp.undoDepth && s.CanUndo() {
		s.Undo(target)
	}
}

// RedoToCheckpoint redoes entries up to the checkpoint depth.
// Only works if the future stack still holds the entries.
func (s *Stack[T]) RedoToCheckpoint(cp Checkpoint, target Restorer[T]) {
	for s.UndoCount() < cp.undoDepth && s.CanRedo() {
		s.Redo(target)
	}
}
