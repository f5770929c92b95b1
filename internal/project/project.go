// Package project provides the sample application state used by the demo
// programs and scripts. It stands in for whatever document, scene, or
// settings object a real application would track undo history for.
package project

import "fmt"

// Project is the application object that owns the mutable state.
type Project struct {
	A int
	B float64
}

// Snapshot is an immutable copy of a Project's state, suitable for
// recording on an undo stack.
type Snapshot struct {
	A int
	B float64
}

// Snapshot returns a copy of the project's current state.
func (p *Project) Snapshot() Snapshot {
	return Snapshot{A: p.A, B: p.B}
}

// Restore applies a recorded snapshot back to the project.
// It implements the undostack.Restorer capability.
func (p *Project) Restore(s Snapshot) {
	p.A = s.A
	p.B = s.B
}

func (p *Project) String() string {
	return fmt.Sprintf("Project{a: %d, b: %g}", p.A, p.B)
}
