// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/canvas"
	"candlelight/stockval"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Overlays are owned by the chart and live on the current surface only.
type overlayState struct {
	tooltip *tooltip
	drag    dragSelection
	// Index of the bar resolved for the last pointer event, -1 if none.
	pointerIndex int
	// Range of bars which is currently highlighted, -1 if none.
	highlightFrom int
	highlightTo   int
}

func (o *overlayState) reset() {
	*o = overlayState{pointerIndex: -1, highlightFrom: -1, highlightTo: -1}
}

type tooltip struct {
	index      int
	bar        stockval.Bar
	group      *canvas.Node
	background *canvas.Node
	rows       []*canvas.Node
}

// Padding of tooltip text.
const tooltipTextMargin = 5

func (c *Chart) clearOverlay() {
	c.HideTooltip()
	c.RemoveHighlight()
	c.overlay.drag = dragSelection{}
}

func tooltipRows(b *stockval.Bar) []string {
	date := b.Timestamp.String()
	if b.Label != "" {
		date = b.Label + " " + date
	}
	return []string{
		date,
		"High:  " + stockval.FormatPrice(b.High),
		"Low:   " + stockval.FormatPrice(b.Low),
		"Open: " + stockval.FormatPrice(b.Open),
		"Close: " + stockval.FormatPrice(b.Close),
		"Volume:  " + stockval.FormatVolume(b.Volume, b.HasVolume),
	}
}

// measureText estimates the text width using a fixed size font scaled to the tooltip font size.
func measureText(s string, fontSize float64) float64 {
	face := basicfont.Face7x13
	return float64(font.MeasureString(face, s).Ceil()) * fontSize / float64(face.Height)
}

// tooltipBox returns position and size of the tooltip.
// It is placed right of the pointer, or left of it close to the right border, and above the pointer close to the bottom border.
// The box is kept within the chart.
func (c *Chart) tooltipBox(x, y float64, rows []string) (boxX, boxY, boxWidth, boxHeight float64) {
	th := c.Theme
	boxWidth = th.HoverBoxWidth
	boxHeight = th.HoverBoxHeight
	for _, r := range rows {
		if w := measureText(r, th.HoverFontSize) + 2*tooltipTextMargin; w > boxWidth {
			boxWidth = w
		}
	}
	if x > c.width-(boxWidth+th.HoverOffset) {
		boxX = x - boxWidth
	} else {
		boxX = x + th.HoverOffset
	}
	if y > c.height-(boxHeight+th.HoverOffset) {
		boxY = y - (boxHeight + th.HoverOffset)
	} else {
		boxY = y
	}
	// Charts smaller than the tooltip show it at the top left.
	boxX = stockval.Clamp(boxX, 0, max(c.width-boxWidth, 0))
	boxY = stockval.Clamp(boxY, 0, max(c.height-boxHeight, 0))
	return
}

func (c *Chart) tooltipRowY(boxY float64, i int) float64 {
	return boxY + (float64(i)+0.8)*c.Theme.HoverFontSize*1.6
}

// ShowTooltip shows the details of bar close to the pointer position, or hides the tooltip if bar is nil.
// Moving within the same bar only moves the existing tooltip.
func (c *Chart) ShowTooltip(x, y float64, bar *stockval.Bar) {
	c.showTooltipAt(x, y, -1, bar)
}

// showTooltipAt keys the tooltip by bar index, so that equal bars at different positions get their own tooltip.
func (c *Chart) showTooltipAt(x, y float64, index int, bar *stockval.Bar) {
	if bar == nil {
		c.HideTooltip()
		return
	}
	if c.surface == nil {
		return
	}
	t := c.overlay.tooltip
	if t != nil && (t.index != index || t.bar != *bar) {
		c.HideTooltip()
		t = nil
	}
	rows := tooltipRows(bar)
	boxX, boxY, boxWidth, boxHeight := c.tooltipBox(x, y, rows)
	if t != nil {
		t.background.SetFloat("x", boxX).SetFloat("y", boxY)
		for i, r := range t.rows {
			r.SetFloat("x", boxX+tooltipTextMargin).SetFloat("y", c.tooltipRowY(boxY, i))
		}
		return
	}

	th := c.Theme
	t = &tooltip{
		index: index,
		bar:   *bar,
		group: canvas.NewNode("g").Mark(MarkerTooltip),
		background: canvas.NewNode("rect").
			SetFloat("x", boxX).
			SetFloat("y", boxY).
			SetFloat("width", boxWidth).
			SetFloat("height", boxHeight).
			Set("fill", th.HoverBgColor).
			SetFloat("opacity", th.HoverBgOpacity),
	}
	t.group.Add(t.background)
	for i, r := range rows {
		text := canvas.NewNode("text").
			SetFloat("x", boxX+tooltipTextMargin).
			SetFloat("y", c.tooltipRowY(boxY, i)).
			SetFloat("font-size", th.HoverFontSize).
			Set("fill", th.HoverTextColor).
			Set("font-family", th.HoverFontFamily).
			SetText(r)
		t.group.Add(text)
		t.rows = append(t.rows, text)
	}
	if err := c.surface.Append(c.surface.Root(), t.group); err != nil {
		c.log.Warnf("Unable to show tooltip: %v", err)
		return
	}
	c.overlay.tooltip = t
}

// HideTooltip removes the tooltip. Failing to remove it from the surface is logged only.
func (c *Chart) HideTooltip() {
	t := c.overlay.tooltip
	if t == nil {
		return
	}
	c.overlay.tooltip = nil
	if c.surface == nil {
		return
	}
	if err := c.surface.Remove(t.group); err != nil {
		c.log.Warnf("Unable to remove tooltip: %v", err)
	}
}

// TooltipVisible reports whether a tooltip is shown.
func (c *Chart) TooltipVisible() bool {
	return c.overlay.tooltip != nil
}

// HighlightRange highlights all bars between the two indices, in either direction.
// Nothing is highlighted if one of the indices is outside of the bar range.
func (c *Chart) HighlightRange(from, to int) {
	if c.surface == nil || c.data == nil {
		return
	}
	if from == c.overlay.highlightFrom && to == c.overlay.highlightTo {
		return
	}
	c.RemoveHighlight()
	count := c.data.Len()
	if from < 0 || to < 0 || from >= count || to >= count {
		return
	}
	first, last := min(from, to), max(from, to)
	s := c.scale()
	for i := first; i <= last; i++ {
		box := canvas.NewNode("g").Mark(MarkerHighlight).Set("data-index", strconv.Itoa(i))
		box.Add(canvas.NewNode("rect").
			SetFloat("x", s.IndexToX(i)).
			Set("y", "0").
			SetFloat("width", s.CandleStep()).
			SetFloat("height", s.Height).
			Set("fill", c.Theme.HighlightColor).
			SetFloat("opacity", c.Theme.HighlightOpacity))
		if err := c.surface.Append(c.surface.Root(), box); err != nil {
			c.log.Warnf("Unable to highlight bar %d: %v", i, err)
			return
		}
	}
	c.overlay.highlightFrom = from
	c.overlay.highlightTo = to
}

// RemoveHighlight removes all highlight boxes and returns their number.
func (c *Chart) RemoveHighlight() int {
	c.overlay.highlightFrom = -1
	c.overlay.highlightTo = -1
	if c.surface == nil {
		return 0
	}
	return c.surface.RemoveMarked(MarkerHighlight)
}
