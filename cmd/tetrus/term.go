package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrus/tetris"
	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal (arrows or hjkl, r restarts, q or Esc quits)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		session, err := newSession(s)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		// Console logging would scribble over the screen.
		out := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(out)

		newTermGame(screen, session, s.FrameInterval()).run()
		return nil
	},
}

// Each playfield cell is two terminal columns wide so cells look square.
const (
	termCellWidth = 2
	termOriginX   = 2
	termOriginY   = 1
)

var (
	termBorderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	termTextStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	termEmptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// termGame drives a session from tcell key events. Terminals do not report
// key releases, so the intent of a tick is every direction pressed since
// the previous tick.
type termGame struct {
	screen  tcell.Screen
	session *tetris.Session
	frame   time.Duration
	pending tetris.Intent
}

func newTermGame(screen tcell.Screen, session *tetris.Session, frame time.Duration) *termGame {
	return &termGame{screen: screen, session: session, frame: frame}
}

func (g *termGame) run() {
	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen.PollEvent, eventChan, done)

	g.draw()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.session.Step(g.pending, g.frame)
			g.pending = tetris.Intent{}
			g.draw()
		}
	}
}

// pumpEvents forwards polled events to out until poll returns nil (the
// screen was finalized) or done is closed.
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleInput folds ev into the pending intent. It returns false when the
// player quits.
func (g *termGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.applyKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

func (g *termGame) applyKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.pending.Left = true
	case tcell.KeyRight:
		g.pending.Right = true
	case tcell.KeyUp:
		g.pending.Up = true
	case tcell.KeyDown:
		g.pending.Down = true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'r':
			g.session.Reset()
			g.pending = tetris.Intent{}
		case 'h':
			g.pending.Left = true
		case 'l':
			g.pending.Right = true
		case 'k':
			g.pending.Up = true
		case 'j':
			g.pending.Down = true
		}
	}
	return true
}

func (g *termGame) draw() {
	g.screen.Clear()

	right := termOriginX + tetris.Columns*termCellWidth
	bottom := termOriginY + tetris.Rows
	for y := termOriginY; y < bottom; y++ {
		g.screen.SetContent(termOriginX-1, y, '│', nil, termBorderStyle)
		g.screen.SetContent(right, y, '│', nil, termBorderStyle)
	}
	for x := termOriginX - 1; x <= right; x++ {
		g.screen.SetContent(x, bottom, '─', nil, termBorderStyle)
	}
	g.screen.SetContent(termOriginX-1, bottom, '└', nil, termBorderStyle)
	g.screen.SetContent(right, bottom, '┘', nil, termBorderStyle)

	field := g.session.Playfield()
	for row := 0; row < tetris.Rows; row++ {
		for column := 0; column < tetris.Columns; column++ {
			if k, ok := field.At(column, row).Kind(); ok {
				g.drawCell(termOriginX, termOriginY, column, row, k)
			} else {
				g.drawDot(column, row)
			}
		}
	}

	active := g.session.Active()
	for _, c := range active.AbsoluteCells() {
		g.drawCell(termOriginX, termOriginY, c.X, c.Y, active.Kind())
	}

	panelX := right + 3
	g.drawText(panelX, termOriginY, "NEXT")
	next := g.session.Next()
	for _, c := range next.Cells() {
		g.drawCell(panelX, termOriginY+2, c.X, c.Y, next.Kind())
	}

	score := g.session.Score()
	g.drawText(panelX, termOriginY+7, fmt.Sprintf("LINES  %d", score.Lines))
	g.drawText(panelX, termOriginY+8, fmt.Sprintf("POINTS %d", score.Points))
	if g.session.ToppedOut() {
		g.drawText(panelX, termOriginY+10, "TOPPED OUT, r to restart")
	}

	g.screen.Show()
}

func (g *termGame) drawCell(originX, originY, column, row int, k tetris.Kind) {
	c := k.Color()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	x := originX + column*termCellWidth
	for i := 0; i < termCellWidth; i++ {
		g.screen.SetContent(x+i, originY+row, '█', nil, style)
	}
}

func (g *termGame) drawDot(column, row int) {
	g.screen.SetContent(termOriginX+column*termCellWidth, termOriginY+row, '·', nil, termEmptyStyle)
}

func (g *termGame) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		g.screen.SetContent(x+i, y, r, nil, termTextStyle)
	}
}
