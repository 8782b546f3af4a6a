// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/stockval"
	"testing"

	"github.com/stretchr/testify/assert"
)

func NewTestScale(count int) Scale {
	return Scale{
		Width:          500,
		Height:         300,
		PriceMin:       5,
		PriceMax:       12,
		Count:          count,
		LineWidth:      DefaultLineWidth,
		MinCandleWidth: DefaultMinCandleWidth,
		MaxCandleWidth: DefaultMaxCandleWidth,
	}
}

func TestPriceToY(t *testing.T) {
	s := NewTestScale(2)
	assert.Equal(t, 0.0, s.PriceToY(12))
	assert.Equal(t, 300.0, s.PriceToY(5))
	for _, price := range []float64{5, 7.3, 9.99, 12} {
		assert.InDelta(t, price, s.YToPrice(s.PriceToY(price)), 1e-9)
	}
}

func TestFlatScale(t *testing.T) {
	s := NewTestScale(2)
	s.PriceMax = s.PriceMin
	assert.Equal(t, 150.0, s.PriceToY(5))
	assert.Equal(t, 150.0, s.PriceToY(100))
	assert.Equal(t, 5.0, s.YToPrice(17))
}

func TestCandleWidth(t *testing.T) {
	// Limited by the maximum width.
	assert.Equal(t, 30.0, NewTestScale(2).CandleWidth())
	// Limited by the space between candles.
	assert.Equal(t, 22.0, NewTestScale(20).CandleWidth())
	// Not below the minimum width.
	assert.Equal(t, 6.0, NewTestScale(60).CandleWidth())
	// Not wider than a single step.
	assert.Equal(t, 5.0, NewTestScale(100).CandleWidth())
	assert.Equal(t, 0.0, NewTestScale(0).CandleWidth())
}

func TestIndexToX(t *testing.T) {
	s := NewTestScale(5)
	assert.Equal(t, 100.0, s.CandleStep())
	assert.Equal(t, 200.0, s.IndexToX(2))
}

func TestTinyPriceRange(t *testing.T) {
	s := NewTestScale(2)
	s.PriceMin = 1.0e-6
	s.PriceMax = 1.25e-6
	assert.Equal(t, 0.0, s.PriceToY(s.PriceMax))
	assert.Equal(t, 300.0, s.PriceToY(s.PriceMin))
	assert.InDelta(t, 100.0, s.PriceToY(s.YToPrice(100)), 1e-6)
	assert.InDelta(t, 1.2e-6, s.YToPrice(s.PriceToY(1.2e-6)), 1e-15)
}

func TestTinyPriceRangeChart(t *testing.T) {
	c := NewTestChart(t, 500, 300, []stockval.Row{
		stockval.MinimalRow{High: 1.20e-6, Low: 1.00e-6, Open: 1.05e-6, Close: 1.15e-6},
		stockval.MinimalRow{High: 1.25e-6, Low: 1.10e-6, Open: 1.15e-6, Close: 1.20e-6},
	})
	// Bar 0 ranges from 60 px to 300 px.
	assert.False(t, c.Resolve(100, 40).Near)
	assert.True(t, c.Resolve(100, 200).Near)
	shape := c.Scale().BuildCandle(1, c.Data().Bars[1], c.Theme)
	assert.Equal(t, 0.0, shape.HighY)
}
