// Package main is an interactive demonstration of the shortcuts
// library: it lists a set of named actions with their bindings and
// highlights the ones fired by each key press.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts"
	"github.com/dshills/shortcuts/internal/tcellkey"
	"github.com/dshills/shortcuts/key"
)

type action struct {
	name  string
	group shortcuts.Group
}

func main() {
	os.Exit(run())
}

func run() int {
	actions := []action{
		{"Move Left", shortcuts.Repeating(key.KeyA, key.ArrowLeft)},
		{"Move Right", shortcuts.Repeating(key.KeyD, key.ArrowRight)},
		{"Jump", shortcuts.SinglePress(key.Space)},
		{"Save", shortcuts.SinglePress(key.KeyS).WithControl()},
		{"Redo", shortcuts.SinglePress(key.KeyZ).WithControl().WithShift()},
		{"Delete Line", shortcuts.SinglePress(key.KeyK).WithAlt()},
	}

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

	fired := make([]bool, len(actions))
	draw(screen, actions, fired)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, actions, fired)

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return 0
			}

			for i := range fired {
				fired[i] = false
			}
			if state, ok := tcellkey.State(ev); ok {
				for i, a := range actions {
					fired[i] = a.group.Pressed(state)
				}
			}
			draw(screen, actions, fired)
		}
	}
}

func draw(screen tcell.Screen, actions []action, fired []bool) {
	screen.Clear()

	bold := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)
	hit := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

	drawText(screen, 0, 0, bold, "shortcutdemo — press a binding, Esc quits")
	drawText(screen, 0, 1, dim, "(terminals have no key-release, so repeating groups fire per event)")

	for i, a := range actions {
		row := i + 3
		style := tcell.StyleDefault
		marker := "   "
		if fired[i] {
			style = hit
			marker = " ▸ "
		}
		drawText(screen, 0, row, style, fmt.Sprintf("%s%-12s %s", marker, a.name, a.group))
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
