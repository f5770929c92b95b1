// Package undostack provides linear undo/redo history management for
// applications that mutate a single piece of state over time.
//
// The stack records prior values of the application's state type, allows
// traversal backward (undo) and forward (redo) through that history, and
// re-applies restored values to the owning application object through the
// Restorer capability. Key concepts:
//
// # Two-Stack Model
//
// Committed values live on a past stack, most recent last. Undo moves the
// top past entry to the future stack and applies the value now exposed at
// the top of the past stack. Redo moves the top future entry back and
// applies it. Any new commit destroys the future stack: redo history is
// single-use and discarded by any forward-branching edit.
//
// The intended discipline is to push a snapshot of the state after each
// change, so the top of the past stack always mirrors the current state:
//
//	stack := undostack.New[Snapshot](undostack.Config{})
//	stack.SetBaseline(doc.Snapshot()) // state before any edits
//
//	doc.Title = "draft"
//	stack.Push(doc.Snapshot())
//
//	stack.Undo(doc) // doc reverts to the baseline
//	stack.Redo(doc) // doc returns to "draft"
//
// # Buffered Recording
//
// Continuous interactions (dragging a slider, scrubbing a dial) should not
// record every intermediate value. StartBuffer captures the value before
// the interaction; FinishBuffer compares it to the final value and commits
// the original only if a net change occurred:
//
//	stack.StartBuffer(doc.Snapshot())
//	// ... many rapid changes ...
//	stack.FinishBuffer(doc.Snapshot())
//
// # Grouped Recording
//
// Multiple pushes can be committed as one atomic undo unit:
//
//	stack.StartGroup()
//	stack.Push(a)
//	stack.Push(b)
//	stack.FinishGroup() // one entry; one Undo reverts both
//
// Group values are applied in their original push order during both undo
// and redo. CancelGroup discards a group that should not be committed.
//
// # Misuse Handling
//
// The stack never panics or corrupts itself in response to caller
// mistakes. Opening a buffer or group twice, closing one that is not open,
// or undoing/redoing with nothing available are all no-ops, optionally
// reported through the diagnostic channel (Config.Verbose). Callers should
// treat CanUndo and CanRedo as authoritative when enabling UI affordances.
//
// # Ownership
//
// A Stack is owned by a single application context and is not safe for
// concurrent use. Applications with independent undo domains should create
// one Stack per domain.
package undostack
