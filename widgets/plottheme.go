// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package widgets

// Colours are SVG colour tokens, e.g. "red" or "#ff0000".
const NoColor = "none"

type PlotTheme struct {
	BackgroundColor       string
	StripeColor           string
	CandleUpColor         string
	CandleDownColor       string
	FillBearishCandles    bool
	HoverBgColor          string
	HoverBgOpacity        float64
	HoverTextColor        string
	HoverFontFamily       string
	HoverFontSize         float64
	HoverBoxWidth         float64
	HoverBoxHeight        float64
	HoverOffset           float64
	HighlightColor        string
	HighlightOpacity      float64
	PointerToleranceRatio float64
}

// Black candles for up moves, red candles for down moves, filled if the bar closed below its open.
func NewLightPlotTheme() *PlotTheme {
	return &PlotTheme{
		BackgroundColor:       "white",
		StripeColor:           "white",
		CandleUpColor:         "black",
		CandleDownColor:       "red",
		FillBearishCandles:    true,
		HoverBgColor:          "black",
		HoverBgOpacity:        0.65,
		HoverTextColor:        "white",
		HoverFontFamily:       "Verdana",
		HoverFontSize:         15,
		HoverBoxWidth:         200,
		HoverBoxHeight:        150,
		HoverOffset:           20,
		HighlightColor:        "#4a4a6b",
		HighlightOpacity:      0.3,
		PointerToleranceRatio: 0.01,
	}
}

func NewDarkPlotTheme() *PlotTheme {
	return &PlotTheme{
		BackgroundColor:       "#1e1e1e",
		StripeColor:           "#2a2a2a",
		CandleUpColor:         "white",
		CandleDownColor:       "red",
		FillBearishCandles:    true,
		HoverBgColor:          "#4a4a6b",
		HoverBgOpacity:        0.85,
		HoverTextColor:        "#64ff64",
		HoverFontFamily:       "Verdana",
		HoverFontSize:         15,
		HoverBoxWidth:         200,
		HoverBoxHeight:        150,
		HoverOffset:           20,
		HighlightColor:        "#aeaecf",
		HighlightOpacity:      0.25,
		PointerToleranceRatio: 0.01,
	}
}

// GetCandleColors returns the stroke and fill colour of a candle.
// The two flags are independent, resulting in four candle states.
func (th *PlotTheme) GetCandleColors(isDownFromPrevious bool, isBearish bool) (strokeColor, fillColor string) {
	if isDownFromPrevious {
		strokeColor = th.CandleDownColor
	} else {
		strokeColor = th.CandleUpColor
	}
	if isBearish && th.FillBearishCandles {
		fillColor = strokeColor
	} else {
		fillColor = NoColor
	}
	return
}
