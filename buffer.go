package undostack

// StartBuffer captures the value at the start of a continuous interaction,
// such as dragging a slider. Intermediate values are not recorded;
// FinishBuffer commits the captured value only if the interaction produced
// a net change.
//
// If a buffer is already open, or a group is open, the call is a no-op and
// the existing buffered state is left untouched.
func (s *Stack[T]) StartBuffer(current T) {
	if s.grouping {
		s.warnf("can't open a buffer while a group is open")
		return
	}
	if s.buffering {
		s.warnf("can't open a new buffer before finishing the current one")
		return
	}
	s.buffering = true
	s.buffer = current
}

// FinishBuffer ends a continuous interaction. The captured value is
// committed as a new history entry only if it differs from final; equal
// values mean no net change occurred and nothing is recorded. The buffer
// is closed regardless of outcome.
//
// With no buffer open the call is a no-op.
func (s *Stack[T]) FinishBuffer(final T) {
	if !s.buffering {
		s.warnf("no open buffer to finish")
		return
	}

	snapshot := s.buffer
	s.buffering = false
	var zero T
	s.buffer = zero

	if snapshot == final {
		s.warnf("skipping buffer commit, values don't differ")
		return
	}
	s.commit(newEntry([]T{snapshot}, false))
}

// IsBuffering returns true if a buffer is currently open.
func (s *Stack[T]) IsBuffering() bool {
	return s.buffering
}

// BufferValue returns the captured buffer value and whether a buffer is
// open.
func (s *Stack[T]) BufferValue() (T, bool) {
	if !s.buffering {
		var zero T
		return zero, false
	}
	return s.buffer, true
}
