// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/stockval"
	"math"
)

// Hit is the result of resolving a pointer position.
type Hit struct {
	// Index of the bar below the pointer, -1 if outside of the bar range.
	Index int
	// Copy of the bar at Index, nil if outside of the bar range.
	Bar *stockval.Bar
	// Near is set if the pointer is vertically close to the bar, between its high and low with some tolerance.
	Near bool
}

var noHit = Hit{Index: -1}

// Match returns the bar if the pointer is close to it.
func (h Hit) Match() *stockval.Bar {
	if h.Near {
		return h.Bar
	}
	return nil
}

// Resolve maps a pointer position to a bar.
func (c *Chart) Resolve(x, y float64) Hit {
	if c.data == nil || math.IsNaN(x) || math.IsNaN(y) || x < 0 || x >= c.width {
		return noHit
	}
	s := c.scale()
	index := math.Floor(x / s.CandleStep())
	if index < 0 || index >= float64(s.Count) {
		return noHit
	}
	b := c.data.Bars[int(index)]
	tolerance := c.Theme.PointerToleranceRatio * c.height
	return Hit{
		Index: int(index),
		Bar:   &b,
		Near:  y >= s.PriceToY(b.High)-tolerance && y <= s.PriceToY(b.Low)+tolerance,
	}
}
