// Command undoscript runs a Lua script against a sample project and its
// undo stack. Scripts use the API registered by the script package:
//
//	set_a(50)
//	push()
//	undo()
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/undostack"
	"github.com/dshills/undostack/internal/config"
	"github.com/dshills/undostack/internal/script"
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
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: undoscript [options] script.lua\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if verbose {
		cfg.Verbose = true
	}

	engine := script.New(undostack.Config{
		Verbose:    cfg.Verbose,
		MaxEntries: cfg.MaxEntries,
	})
	defer engine.Close()

	if err := engine.RunFile(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: script failed: %v\n", err)
		return 1
	}

	fmt.Printf("final state: %v\n", engine.Project())
	fmt.Printf("undo entries: %d, redo entries: %d\n",
		engine.Stack().UndoCount(), engine.Stack().RedoCount())
	return 0
}
