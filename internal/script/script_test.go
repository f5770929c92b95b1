package script

import (
	"testing"

	"github.com/dshills/undostack"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(undostack.Config{})
	t.Cleanup(e.Close)
	return e
}

func TestScriptPushUndoRedo(t *testing.T) {
	e := newTestEngine(t)

	err := e.RunString(`
		set_a(5)
		set_b(1.0)
		set_baseline()

		set_a(50)
		set_b(10.0)
		push()

		set_a(2000000)
		push()

		undo()
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	p := e.Project()
	if p.A != 50 || p.B != 10.0 {
		t.Errorf("after scripted undo: %v, want a=50 b=10", p)
	}
	if !e.Stack().CanRedo() {
		t.Error("redo should be available")
	}
}

func TestScriptGroup(t *testing.T) {
	e := newTestEngine(t)

	err := e.RunString(`
		set_a(1)
		set_baseline()

		start_group()
		set_a(2)
		push()
		set_a(3)
		push()
		finish_group()

		undo()
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if e.Project().A != 1 {
		t.Errorf("a = %d, want baseline 1", e.Project().A)
	}
	if e.Stack().UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0", e.Stack().UndoCount())
	}
}

func TestScriptBufferCollapse(t *testing.T) {
	e := newTestEngine(t)

	err := e.RunString(`
		set_a(7)
		start_buffer()
		set_a(8)
		set_a(7)
		finish_buffer()
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if !e.Stack().IsEmpty() {
		t.Error("round-trip interaction should record nothing")
	}
}

func TestScriptReturnValues(t *testing.T) {
	e := newTestEngine(t)

	err := e.RunString(`
		ok = undo()
		assert(ok == false, "undo on empty history must report false")
		assert(can_undo() == false)
		assert(undo_count() == 0)

		set_a(1)
		push()
		assert(can_undo() == true)
		assert(undo_count() == 1)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestScriptError(t *testing.T) {
	e := newTestEngine(t)

	if err := e.RunString(`this is not lua`); err == nil {
		t.Fatal("invalid script should return an error")
	}
}
