// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import "math"

// Scale maps prices and bar indices to pixel positions.
// Pixel row 0 is the top of the chart, while prices increase upwards.
type Scale struct {
	Width          float64
	Height         float64
	PriceMin       float64
	PriceMax       float64
	Count          int
	LineWidth      float64
	MinCandleWidth float64
	MaxCandleWidth float64
}

func (s Scale) isFlat() bool {
	return !(s.PriceMax > s.PriceMin)
}

// PriceToY returns the vertical pixel position of a price.
// All prices of a flat series are placed at half height.
func (s Scale) PriceToY(price float64) float64 {
	if s.isFlat() {
		return s.Height / 2
	}
	return (1 - (price-s.PriceMin)/(s.PriceMax-s.PriceMin)) * s.Height
}

// YToPrice is the inverse of PriceToY. A flat series maps every position to its single price.
func (s Scale) YToPrice(y float64) float64 {
	if s.isFlat() {
		return s.PriceMin
	}
	return s.PriceMin + (1-y/s.Height)*(s.PriceMax-s.PriceMin)
}

// CandleStep is the horizontal space per bar.
func (s Scale) CandleStep() float64 {
	if s.Count <= 0 {
		return 0
	}
	return s.Width / float64(s.Count)
}

func (s Scale) IndexToX(index int) float64 {
	return float64(index) * s.CandleStep()
}

// CandleWidth is the body width of a candle.
// It is limited by the maximum candle width and by the space left between the strokes of neighbouring candles.
// It does not go below the minimum candle width unless a single step is smaller, and never below zero.
func (s Scale) CandleWidth() float64 {
	step := s.CandleStep()
	candleWidth := math.Min(s.MaxCandleWidth, step-2*s.LineWidth)
	if lowerLimit := math.Min(s.MinCandleWidth, step); candleWidth < lowerLimit {
		candleWidth = lowerLimit
	}
	return math.Max(candleWidth, 0)
}
