// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/canvas"
	"candlelight/mock"
	"candlelight/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragHighlight(t *testing.T) {
	c := NewTestChart(t, 500, 400, mock.NewRows(5))
	s := testCanvas(c)
	assert.Equal(t, DragReleased, c.DragState())

	s.Dispatch(canvas.Event{Type: canvas.PointerDown, X: 450, Y: 5})
	assert.Equal(t, DragPressed, c.DragState())
	assert.Len(t, s.FindMarked(MarkerHighlight), 1)

	s.Dispatch(canvas.Event{Type: canvas.PointerMove, X: 250, Y: 5})
	assert.Equal(t, DragDragging, c.DragState())
	highlights := s.FindMarked(MarkerHighlight)
	assert.Len(t, highlights, 3)
	index, _ := highlights[0].Attr("data-index")
	assert.Equal(t, "2", index)
	width, _ := highlights[0].Children()[0].AttrFloat("width")
	assert.Equal(t, 100.0, width)

	s.Dispatch(canvas.Event{Type: canvas.PointerMove, X: 520, Y: 5})
	assert.Empty(t, s.FindMarked(MarkerHighlight))

	s.Dispatch(canvas.Event{Type: canvas.PointerMove, X: 50, Y: 5})
	assert.Len(t, s.FindMarked(MarkerHighlight), 5)

	s.Dispatch(canvas.Event{Type: canvas.PointerUp, X: 50, Y: 5})
	assert.Equal(t, DragReleased, c.DragState())
	assert.Empty(t, s.FindMarked(MarkerHighlight))
}

func TestPointerUpWithoutDrag(t *testing.T) {
	var ended int
	c := NewTestChart(t, 500, 400, mock.NewRows(5), WithHooks(Hooks{
		DragEnd: func(*Chart, DragEvent) { ended++ },
	}))
	c.HandlePointer(canvas.Event{Type: canvas.PointerUp, X: 10, Y: 10})
	assert.Equal(t, 0, ended)
}

func TestCustomHooks(t *testing.T) {
	var moves []*stockval.Bar
	var drags []DragEvent
	var end DragEvent
	c := NewTestChart(t, 500, 400, mock.NewRows(5), WithHooks(Hooks{
		PointerMove: func(_ *Chart, _, _ float64, bar *stockval.Bar) { moves = append(moves, bar) },
		Drag:        func(_ *Chart, d DragEvent) { drags = append(drags, d) },
		DragEnd:     func(_ *Chart, d DragEvent) { end = d },
	}))
	s := testCanvas(c)
	s.Dispatch(canvas.Event{Type: canvas.PointerMove, X: 250, Y: 150})
	s.Dispatch(canvas.Event{Type: canvas.PointerDown, X: 50, Y: 200})
	s.Dispatch(canvas.Event{Type: canvas.PointerMove, X: 150, Y: 5})
	s.Dispatch(canvas.Event{Type: canvas.PointerUp, X: 350, Y: 6})

	assert.Len(t, moves, 2)
	assert.Equal(t, c.Data().Bars[2], *moves[0])
	assert.Nil(t, moves[1])
	// Default tooltip is replaced.
	assert.False(t, c.TooltipVisible())
	// Default drag start still highlights the start bar.
	assert.Len(t, drags, 1)
	assert.Equal(t, 0, drags[0].StartIndex)
	assert.Equal(t, 1, drags[0].Index)
	assert.Equal(t, c.Data().Bars[0], *drags[0].StartBar)
	assert.Equal(t, 50.0, end.StartX)
	assert.Equal(t, 200.0, end.StartY)
	assert.Equal(t, 3, end.Index)
	assert.Equal(t, 6.0, end.Y)
	assert.Equal(t, c.Data().Bars[3], *end.Bar)
	assert.Equal(t, DragReleased, c.DragState())
	assert.Len(t, s.FindMarked(MarkerHighlight), 1)
}

func TestDrawResetsDrag(t *testing.T) {
	c := NewTestChart(t, 500, 400, mock.NewRows(5))
	c.HandlePointer(canvas.Event{Type: canvas.PointerDown, X: 50, Y: 5})
	assert.NoError(t, c.Draw())
	assert.Equal(t, DragReleased, c.DragState())
	assert.Empty(t, testCanvas(c).FindMarked(MarkerHighlight))
}
