// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/canvas"
	"candlelight/stockval"
)

type DragState int

const (
	DragReleased DragState = iota
	DragPressed
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragPressed:
		return "pressed"
	case DragDragging:
		return "dragging"
	default:
		return "released"
	}
}

// DragEvent describes a drag selection from the pointer press position to the current position.
// Bars are nil and indices are -1 outside of the bar range.
type DragEvent struct {
	StartX     float64
	StartY     float64
	StartIndex int
	StartBar   *stockval.Bar
	X          float64
	Y          float64
	Index      int
	Bar        *stockval.Bar
}

// Hooks are called on pointer events. The default hooks show a tooltip and highlight the dragged range.
type Hooks struct {
	// bar is nil if the pointer is not close to a bar.
	PointerMove func(c *Chart, x, y float64, bar *stockval.Bar)
	DragStart   func(c *Chart, d DragEvent)
	Drag        func(c *Chart, d DragEvent)
	DragEnd     func(c *Chart, d DragEvent)
}

// DefaultPointerMove shows the tooltip of the bar resolved for the current pointer event.
func DefaultPointerMove(c *Chart, x, y float64, bar *stockval.Bar) {
	c.showTooltipAt(x, y, c.overlay.pointerIndex, bar)
}

func DefaultDrag(c *Chart, d DragEvent) {
	c.HighlightRange(d.StartIndex, d.Index)
}

func DefaultDragEnd(c *Chart, _ DragEvent) {
	c.RemoveHighlight()
}

func defaultHooks() Hooks {
	return Hooks{
		PointerMove: DefaultPointerMove,
		DragStart:   DefaultDrag,
		Drag:        DefaultDrag,
		DragEnd:     DefaultDragEnd,
	}
}

// SetHooks replaces the hooks, nil hooks are reset to their default.
func (c *Chart) SetHooks(h Hooks) {
	def := defaultHooks()
	if h.PointerMove == nil {
		h.PointerMove = def.PointerMove
	}
	if h.DragStart == nil {
		h.DragStart = def.DragStart
	}
	if h.Drag == nil {
		h.Drag = def.Drag
	}
	if h.DragEnd == nil {
		h.DragEnd = def.DragEnd
	}
	c.hooks = h
}

type dragSelection struct {
	state       DragState
	anchorX     float64
	anchorY     float64
	anchorIndex int
	anchorBar   *stockval.Bar
	x           float64
	y           float64
	index       int
	bar         *stockval.Bar
}

func (d *dragSelection) event() DragEvent {
	return DragEvent{
		StartX:     d.anchorX,
		StartY:     d.anchorY,
		StartIndex: d.anchorIndex,
		StartBar:   d.anchorBar,
		X:          d.x,
		Y:          d.y,
		Index:      d.index,
		Bar:        d.bar,
	}
}

func (d *dragSelection) moveTo(x, y float64, hit Hit) {
	d.x = x
	d.y = y
	d.index = hit.Index
	d.bar = hit.Bar
}

// DragState returns the state of the drag selection.
func (c *Chart) DragState() DragState {
	return c.overlay.drag.state
}

// HandlePointer processes a pointer event as if it was delivered by the surface.
func (c *Chart) HandlePointer(e canvas.Event) {
	c.handlePointer(e)
}

func (c *Chart) handlePointer(e canvas.Event) {
	// Dragging selects bars by horizontal position only.
	hit := c.Resolve(e.X, e.Y)
	c.overlay.pointerIndex = hit.Index
	drag := &c.overlay.drag
	switch e.Type {
	case canvas.PointerMove:
		c.hooks.PointerMove(c, e.X, e.Y, hit.Match())
		if drag.state == DragReleased {
			return
		}
		drag.state = DragDragging
		drag.moveTo(e.X, e.Y, hit)
		c.hooks.Drag(c, drag.event())
	case canvas.PointerDown:
		*drag = dragSelection{
			state:       DragPressed,
			anchorX:     e.X,
			anchorY:     e.Y,
			anchorIndex: hit.Index,
			anchorBar:   hit.Bar,
		}
		drag.moveTo(e.X, e.Y, hit)
		c.hooks.DragStart(c, drag.event())
	case canvas.PointerUp:
		if drag.state == DragReleased {
			return
		}
		drag.moveTo(e.X, e.Y, hit)
		ev := drag.event()
		*drag = dragSelection{}
		c.hooks.DragEnd(c, ev)
	}
}
