// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/canvas"
	"candlelight/stockval"
	"candlelight/widgets"
	"math"
	"strconv"
	"strings"

	"gioui.org/f32"
)

// CandleShape is the outline of a single candle: upper wick, body and lower wick as one closed path.
type CandleShape struct {
	Outline     [10]f32.Point
	StrokeColor string
	FillColor   string
	CenterX     float64
	HighY       float64
	LowY        float64
	TopY        float64
	BottomY     float64
}

// BuildCandle calculates the shape of the bar at the given index.
func (s Scale) BuildCandle(index int, b stockval.Bar, th *widgets.PlotTheme) CandleShape {
	candleWidth := s.CandleWidth()
	openY := s.PriceToY(b.Open)
	closeY := s.PriceToY(b.Close)
	shape := CandleShape{
		CenterX: s.IndexToX(index) + math.Floor(candleWidth/2) + s.LineWidth,
		HighY:   s.PriceToY(b.High),
		LowY:    s.PriceToY(b.Low),
		TopY:    math.Min(openY, closeY),
		BottomY: math.Max(openY, closeY),
	}
	// Body corners are offset by half the candle width from the wick.
	half := pt(candleWidth, 0).Mul(0.5)
	top := pt(shape.CenterX, shape.TopY)
	bottom := pt(shape.CenterX, shape.BottomY)
	shape.Outline = [10]f32.Point{
		pt(shape.CenterX, shape.HighY),
		top,
		top.Sub(half),
		bottom.Sub(half),
		bottom,
		pt(shape.CenterX, shape.LowY),
		bottom,
		bottom.Add(half),
		top.Add(half),
		top,
	}
	shape.StrokeColor, shape.FillColor = th.GetCandleColors(b.IsDownFromPrevious, b.IsBearish)
	return shape
}

func pt(x, y float64) f32.Point {
	return f32.Pt(float32(x), float32(y))
}

// Points returns the outline in SVG polyline notation.
func (c CandleShape) Points() string {
	var b strings.Builder
	for _, p := range c.Outline {
		b.WriteString(strconv.FormatFloat(float64(p.X), 'f', -1, 32))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(float64(p.Y), 'f', -1, 32))
		b.WriteByte(' ')
	}
	return b.String()
}

func (c CandleShape) node(index int, lineWidth float64) *canvas.Node {
	return canvas.NewNode("polyline").
		Mark(MarkerCandle).
		Set("data-index", strconv.Itoa(index)).
		Set("points", c.Points()).
		Set("stroke", c.StrokeColor).
		Set("fill", c.FillColor).
		SetFloat("stroke-width", lineWidth)
}
