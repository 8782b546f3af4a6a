// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import "strings"

const (
	BackgroundStyleNone    = "none"
	BackgroundStyleStripes = "stripes"
)

type ChartConfig struct {
	Width           float64
	Height          float64
	LineWidth       float64 `yaml:",omitempty"`
	MinCandleWidth  float64 `yaml:",omitempty"`
	MaxCandleWidth  float64 `yaml:",omitempty"`
	BackgroundColor string  `yaml:",omitempty"`
	BackgroundStyle string  `yaml:",omitempty"`
	StripeColor     string  `yaml:",omitempty"`
	Title           string  `yaml:",omitempty"`
}

var defaultChartConfig = NewChartConfig()

func NewChartConfig() ChartConfig {
	return ChartConfig{
		Width:           800,
		Height:          400,
		LineWidth:       1.5,
		MinCandleWidth:  6,
		MaxCandleWidth:  30,
		BackgroundColor: "white",
		BackgroundStyle: BackgroundStyleNone,
		StripeColor:     "white",
	}
}

func (c *ChartConfig) sanitize() {
	if !(c.Width > 0) {
		c.Width = defaultChartConfig.Width
	}
	if !(c.Height > 0) {
		c.Height = defaultChartConfig.Height
	}
	if !(c.LineWidth > 0) {
		c.LineWidth = defaultChartConfig.LineWidth
	}
	if !(c.MinCandleWidth > 0) {
		c.MinCandleWidth = defaultChartConfig.MinCandleWidth
	}
	if !(c.MaxCandleWidth > 0) {
		c.MaxCandleWidth = defaultChartConfig.MaxCandleWidth
	}
	if c.MaxCandleWidth < c.MinCandleWidth {
		c.MaxCandleWidth = c.MinCandleWidth
	}
	c.BackgroundStyle = strings.ToLower(strings.TrimSpace(c.BackgroundStyle))
	if c.BackgroundStyle != BackgroundStyleStripes {
		c.BackgroundStyle = BackgroundStyleNone
	}
}

func (c *ChartConfig) removeDefaults() {
	def := defaultChartConfig
	if c.LineWidth == def.LineWidth {
		c.LineWidth = 0
	}
	if c.MinCandleWidth == def.MinCandleWidth {
		c.MinCandleWidth = 0
	}
	if c.MaxCandleWidth == def.MaxCandleWidth {
		c.MaxCandleWidth = 0
	}
	if c.BackgroundColor == def.BackgroundColor {
		c.BackgroundColor = ""
	}
	if c.BackgroundStyle == def.BackgroundStyle {
		c.BackgroundStyle = ""
	}
	if c.StripeColor == def.StripeColor {
		c.StripeColor = ""
	}
}

func (c *ChartConfig) restoreDefaults() {
	def := defaultChartConfig
	if c.LineWidth == 0 {
		c.LineWidth = def.LineWidth
	}
	if c.MinCandleWidth == 0 {
		c.MinCandleWidth = def.MinCandleWidth
	}
	if c.MaxCandleWidth == 0 {
		c.MaxCandleWidth = def.MaxCandleWidth
	}
	if len(c.BackgroundColor) == 0 {
		c.BackgroundColor = def.BackgroundColor
	}
	if len(c.BackgroundStyle) == 0 {
		c.BackgroundStyle = def.BackgroundStyle
	}
	if len(c.StripeColor) == 0 {
		c.StripeColor = def.StripeColor
	}
}
