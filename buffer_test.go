package undostack

import "testing"

func TestBufferCollapsesNoOpInteraction(t *testing.T) {
	s := newIntStack()

	s.StartBuffer(5)
	s.FinishBuffer(5)

	if s.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0 (no net change)", s.UndoCount())
	}
	if s.IsBuffering() {
		t.Error("buffer should be closed after FinishBuffer")
	}
}

func TestBufferCommitsPreInteractionValue(t *testing.T) {
	s := newIntStack()
	r := &recorder{}
	s.SetBaseline(0)

	// Interaction changes the value 5 -> 9. Only the original value is
	// recorded; the intermediate and final values are not.
	s.StartBuffer(5)
	s.FinishBuffer(9)

	if s.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", s.UndoCount())
	}

	s.Undo(r)
	if !s.Redo(r) {
		t.Fatal("redo failed")
	}
	if r.value != 5 {
		t.Errorf("committed entry holds %d, want pre-interaction value 5", r.value)
	}
}

func TestBufferCommitClearsFutureStack(t *testing.T) {
	s := newIntStack()
	r := &recorder{}

	s.Push(1)
	s.Push(2)
	s.Undo(r)

	s.StartBuffer(3)
	s.FinishBuffer(4)

	if s.RedoCount() != 0 {
		t.Errorf("RedoCount() = %d, want 0 after buffer commit", s.RedoCount())
	}
}

func TestStartBufferReentryIsNoOp(t *testing.T) {
	s := newIntStack()

	s.StartBuffer(1)
	s.StartBuffer(2) // must not overwrite the open buffer

	if v, ok := s.BufferValue(); !ok || v != 1 {
		t.Fatalf("BufferValue() = %d,%v, want 1,true", v, ok)
	}

	s.FinishBuffer(9)
	if s.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", s.UndoCount())
	}
}

func TestFinishBufferUnmatchedIsNoOp(t *testing.T) {
	s := newIntStack()

	s.FinishBuffer(5)

	if s.UndoCount() != 0 {
		t.Error("unmatched FinishBuffer must not commit")
	}
	if s.IsBuffering() {
		t.Error("no buffer should be open")
	}
}

func TestBufferRejectedWhileGrouping(t *testing.T) {
	s := newIntStack()

	s.StartGroup()
	s.StartBuffer(1)

	if s.IsBuffering() {
		t.Error("buffer must not open inside a group")
	}
	if !s.IsGrouping() {
		t.Error("group must stay open")
	}
	s.CancelGroup()
}

func TestGroupRejectedWhileBuffering(t *testing.T) {
	s := newIntStack()

	s.StartBuffer(1)
	s.StartGroup()

	if s.IsGrouping() {
		t.Error("group must not open while a buffer is open")
	}
	if !s.IsBuffering() {
		t.Error("buffer must stay open")
	}

	// The buffer is still intact and usable.
	s.FinishBuffer(2)
	if s.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", s.UndoCount())
	}
}

func TestBufferValueClosed(t *testing.T) {
	s := newIntStack()

	if _, ok := s.BufferValue(); ok {
		t.Error("BufferValue should report no open buffer")
	}

	s.StartBuffer(3)
	s.FinishBuffer(3)

	if _, ok := s.BufferValue(); ok {
		t.Error("BufferValue should report no open buffer after finish")
	}
}
