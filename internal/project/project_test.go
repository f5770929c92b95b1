package project

import (
	"testing"

	"github.com/dshills/undostack"
)

func TestRestoreAppliesSnapshot(t *testing.T) {
	p := &Project{A: 5, B: 1.0}
	snap := p.Snapshot()

	p.A = 50
	p.B = 10.0
	p.Restore(snap)

	if p.A != 5 || p.B != 1.0 {
		t.Errorf("got %v, want a=5 b=1", p)
	}
}

// End-to-end walk of the project through an undo stack, mirroring how the
// demo programs use it.
func TestProjectUndoRedo(t *testing.T) {
	p := &Project{A: 5, B: 1.0}
	stack := undostack.New[Snapshot](undostack.Config{})
	stack.SetBaseline(p.Snapshot())

	p.A = 50
	p.B = 10.0
	stack.Push(p.Snapshot())

	p.A = 2000000
	stack.Push(p.Snapshot())

	if !stack.Undo(p) {
		t.Fatal("undo failed")
	}
	if p.A != 50 || p.B != 10.0 {
		t.Errorf("after undo: %v, want a=50 b=10", p)
	}

	if !stack.Undo(p) {
		t.Fatal("undo to baseline failed")
	}
	if p.A != 5 || p.B != 1.0 {
		t.Errorf("after undo to baseline: %v, want a=5 b=1", p)
	}

	if !stack.Redo(p) || !stack.Redo(p) {
		t.Fatal("redo failed")
	}
	if p.A != 2000000 || p.B != 10.0 {
		t.Errorf("after redo: %v, want a=2000000 b=10", p)
	}
}
