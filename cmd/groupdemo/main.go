// Command groupdemo records several edits as one atomic undo unit and
// reverts them with a single undo.
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
		Prefix: "groupdemo",
	})

	stack := undostack.New[project.Snapshot](undostack.Config{
		Verbose:    cfg.Verbose,
		MaxEntries: cfg.MaxEntries,
	})

	proj := &project.Project{A: 5, B: 1.0}
	stack.SetBaseline(proj.Snapshot())
	log.Info("initial state: %v", proj)

	// All edits inside the group commit as a single history entry.
	stack.StartGroup()

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

	stack.FinishGroup()
	log.Info("group committed, history entries: %d", stack.UndoCount())

	// A single undo reverts every edit in the group.
	stack.Undo(proj)
	log.Info("after one undo: %v", proj)
	if proj.A != 5 || proj.B != 1.0 {
		log.Error("undo did not restore the initial state: %v", proj)
		return 1
	}

	// A single redo walks the group forward to the final values.
	stack.Redo(proj)
	log.Info("after one redo: %v", proj)
	if proj.A != 555 || proj.B != 222.0 {
		log.Error("redo did not restore the final state: %v", proj)
		return 1
	}
	return 0
}
