// Package script exposes the undo stack to Lua scripts.
//
// Scripts drive a sample project through the full recording surface:
// discrete pushes, buffered interactions, and grouped edits. The package
// backs the undoscript binary and doubles as a scriptable harness for
// experimenting with history behavior.
//
// The Lua state is not goroutine-safe; an Engine must be used from a
// single goroutine, matching the single-owner model of the stack itself.
package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/undostack"
	"github.com/dshills/undostack/internal/project"
)

// Engine binds a project and its undo stack into a Lua state.
type Engine struct {
	L     *lua.LState
	proj  *project.Project
	stack *undostack.Stack[project.Snapshot]
}

// New creates an Engine with an empty project and the given stack
// configuration.
func New(cfg undostack.Config) *Engine {
	e := &Engine{
		L:     lua.NewState(),
		proj:  &project.Project{},
		stack: undostack.New[project.Snapshot](cfg),
	}
	e.register()
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.L.Close()
}

// Project returns the project the scripts mutate.
func (e *Engine) Project() *project.Project {
	return e.proj
}

// Stack returns the engine's undo stack.
func (e *Engine) Stack() *undostack.Stack[project.Snapshot] {
	return e.stack
}

// RunFile executes a Lua script from disk.
func (e *Engine) RunFile(path string) error {
	return e.L.DoFile(path)
}

// RunString executes Lua source.
func (e *Engine) RunString(src string) error {
	return e.L.DoString(src)
}

// register installs the script API as Lua globals.
func (e *Engine) register() {
	fns := map[string]lua.LGFunction{
		"set_a": func(L *lua.LState) int {
			e.proj.A = L.CheckInt(1)
			return 0
		},
		"set_b": func(L *lua.LState) int {
			e.proj.B = float64(L.CheckNumber(1))
			return 0
		},
		"get_a": func(L *lua.LState) int {
			L.Push(lua.LNumber(e.proj.A))
			return 1
		},
		"get_b": func(L *lua.LState) int {
			L.Push(lua.LNumber(e.proj.B))
			return 1
		},
		"set_baseline": func(L *lua.LState) int {
			e.stack.SetBaseline(e.proj.Snapshot())
			return 0
		},
		"push": func(L *lua.LState) int {
			e.stack.Push(e.proj.Snapshot())
			return 0
		},
		"undo": func(L *lua.LState) int {
			L.Push(lua.LBool(e.stack.Undo(e.proj)))
			return 1
		},
		"redo": func(L *lua.LState) int {
			L.Push(lua.LBool(e.stack.Redo(e.proj)))
			return 1
		},
		"can_undo": func(L *lua.LState) int {
			L.Push(lua.LBool(e.stack.CanUndo()))
			return 1
		},
		"can_redo": func(L *lua.LState) int {
			L.Push(lua.LBool(e.stack.CanRedo()))
			return 1
		},
		"undo_count": func(L *lua.LState) int {
			L.Push(lua.LNumber(e.stack.UndoCount()))
			return 1
		},
		"redo_count": func(L *lua.LState) int {
			L.Push(lua.LNumber(e.stack.RedoCount()))
			return 1
		},
		"start_group": func(L *lua.LState) int {
			e.stack.StartGroup()
			return 0
		},
		"finish_group": func(L *lua.LState) int {
			e.stack.FinishGroup()
			return 0
		},
		"cancel_group": func(L *lua.LState) int {
			e.stack.CancelGroup()
			return 0
		},
		"start_buffer": func(L *lua.LState) int {
			e.stack.StartBuffer(e.proj.Snapshot())
			return 0
		},
		"finish_buffer": func(L *lua.LState) int {
			e.stack.FinishBuffer(e.proj.Snapshot())
			return 0
		},
		"clear": func(L *lua.LState) int {
			e.stack.Clear()
			return 0
		},
		"is_empty": func(L *lua.LState) int {
			L.Push(lua.LBool(e.stack.IsEmpty()))
			return 1
		},
	}

	for name, fn := range fns {
		e.L.SetGlobal(name, e.L.NewFunction(fn))
	}
}
