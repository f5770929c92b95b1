// Command undodemo walks a sample project through discrete edits and a
// full undo/redo round trip.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/undostack"
	"github.com/dshills/undostack/internal/config"
	"github.com/dshills/undostack/internal/logging"
	"github.com/dshills/undostack/internal/project"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "undostack.toml", "Path to configuration file")
	flag.BoolVar(&verbose, "verbose", false, "Enable undo stack diagnostics")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if verbose {
		cfg.Verbose = true
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Prefix: "undodemo",
	})

	stack := undostack.New[project.Snapshot](undostack.Config{
		Verbose:    cfg.Verbose,
		MaxEntries: cfg.MaxEntries,
	})

	// Initial values. The baseline is the state undo walks back to once
	// the recorded history is exhausted.
	proj := &project.Project{A: 5, B: 1.0}
	stack.SetBaseline(proj.Snapshot())
	log.Info("initial state: %v", proj)

	// Modify a few times, pushing a snapshot after each change.
	proj.A = 50
	proj.B = 10.0
	stack.Push(proj.Snapshot())
	log.Info("edited: %v", proj)

	proj.A = 2000000
	stack.Push(proj.Snapshot())
	log.Info("edited: %v", proj)

	proj.B = 1000000.0
	stack.Push(proj.Snapshot())
	log.Info("edited: %v", proj)

	proj.A = 555
	proj.B = 222.0
	stack.Push(proj.Snapshot())
	log.Info("edited: %v", proj)

	// Undo all the way back to the initial values.
	for stack.CanUndo() {
		stack.Undo(proj)
		log.Info("after undo: %v", proj)
	}

	// One more undo has nothing to do; with diagnostics enabled the stack
	// reports it, and nothing changes either way.
	stack.Undo(proj)

	// Redo restores the final values.
	for stack.CanRedo() {
		stack.Redo(proj)
		log.Info("after redo: %v", proj)
	}

	log.Info("final state: %v", proj)
	if proj.A != 555 || proj.B != 222.0 {
		log.Error("unexpected final state: %v", proj)
		return 1
	}
	return 0
}
