package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardLayout(t *testing.T) {
	l := newBoardLayout(30)

	w, h := l.screenSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	x, y, size := l.cellRect(0, 0)
	assert.Equal(t, float32(250), x)
	assert.Equal(t, float32(0), y)
	assert.Equal(t, float32(30), size)

	x, y, _ = l.cellRect(9, 19)
	assert.Equal(t, float32(520), x)
	assert.Equal(t, float32(570), y)

	px, py := l.previewOrigin()
	assert.Equal(t, 580, px)
	assert.Equal(t, 60, py)
}
