// Command sliderdemo is an interactive terminal demo of buffered
// recording. Arrow keys drag a slider; only the net change of each drag is
// recorded, so undo and redo step between resting points rather than every
// intermediate value.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/undostack"
	"github.com/dshills/undostack/internal/config"
	"github.com/dshills/undostack/internal/logging"
)

const (
	sliderMin = 0
	sliderMax = 100
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "undostack.toml", "Path to configuration file")
	flag.StringVar(&logPath, "log", "sliderdemo.log", "Diagnostic log file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	// Diagnostics go to a file; the screen belongs to tcell.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer logFile.Close()

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: logFile,
		Prefix: "sliderdemo",
	})

	stack := undostack.New[int](undostack.Config{
		Verbose:    cfg.Verbose,
		Output:     logFile,
		MaxEntries: cfg.MaxEntries,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Config changes are funneled through the event loop so the stack is
	// only ever touched from one goroutine.
	watcher, err := config.Watch(configPath, func(c config.Config) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(c))
	})
	if err != nil {
		log.Warn("config watch unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	value := 50
	stack.SetBaseline(value)
	restore := undostack.RestorerFunc[int](func(v int) { value = v })

	for {
		draw(screen, stack, value)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			if c, ok := ev.Data().(config.Config); ok {
				stack.SetVerbose(c.Verbose)
				log.SetLevel(logging.ParseLevel(c.LogLevel))
				log.Info("config reloaded: verbose=%v", c.Verbose)
			}
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return 0
			case ev.Key() == tcell.KeyLeft:
				dragTo(stack, &value, value-1)
			case ev.Key() == tcell.KeyRight:
				dragTo(stack, &value, value+1)
			case ev.Key() == tcell.KeyEnter:
				stack.FinishBuffer(value)
			case ev.Key() == tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return 0
				case ' ':
					stack.FinishBuffer(value)
				case 'u':
					// An open drag is committed before stepping back.
					if stack.IsBuffering() {
						stack.FinishBuffer(value)
					}
					stack.Undo(restore)
				case 'r':
					stack.Redo(restore)
				case 'c':
					stack.Clear()
					log.Info("history cleared")
				}
			}
		}
	}
}

// dragTo adjusts the slider as part of a continuous interaction, opening
// the buffer on the first movement.
func dragTo(stack *undostack.Stack[int], value *int, target int) {
	if target < sliderMin || target > sliderMax {
		return
	}
	if !stack.IsBuffering() {
		stack.StartBuffer(*value)
	}
	*value = target
}

func draw(screen tcell.Screen, stack *undostack.Stack[int], value int) {
	screen.Clear()
	style := tcell.StyleDefault

	drawText(screen, 1, 1, style.Bold(true), "undostack slider demo")

	bar := make([]rune, 0, sliderMax+2)
	bar = append(bar, '[')
	for i := sliderMin; i < sliderMax; i++ {
		if i < value {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '-')
		}
	}
	bar = append(bar, ']')
	drawText(screen, 1, 3, style, string(bar))
	drawText(screen, 1, 4, style, fmt.Sprintf("value: %3d", value))

	status := fmt.Sprintf("undo: %d  redo: %d", stack.UndoCount(), stack.RedoCount())
	if stack.IsBuffering() {
		status += "  [dragging]"
	}
	drawText(screen, 1, 6, style, status)

	drawText(screen, 1, 8, style.Dim(true),
		"arrows drag | enter/space end drag | u undo | r redo | c clear | q quit")

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
