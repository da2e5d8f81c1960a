package main

import (
	"log"

	"github.com/fatih/color"
	"github.com/plus3/tetrus/tetris"
)

var (
	emph = color.New(color.FgBlue, color.Bold).SprintFunc()
	warn = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func logLock(ev tetris.LockEvent) {
	if ev.Cleared() > 0 {
		log.Printf("lock %s: cleared %s (+%d) lines=%d points=%d", ev.Kind, emph(ev.Cleared()), ev.Points, ev.Score.Lines, ev.Score.Points)
	} else {
		log.Printf("lock %s: lines=%d points=%d", ev.Kind, ev.Score.Lines, ev.Score.Points)
	}
	if ev.ToppedOut {
		log.Printf("%s after %d locks, press R to restart", warn("topped out"), ev.Score.Locks)
	}
}
