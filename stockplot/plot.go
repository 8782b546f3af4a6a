// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"candlelight/canvas"
	"candlelight/stockval"
	"candlelight/widgets"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// This is not a generic plotting library.
// It draws a single OHLC series, one candle per bar, evenly spaced over the chart width.
// A chart is not safe for concurrent use, pointer events are expected to be delivered serially.

// ErrInsufficientSpace is returned if the candles cannot be drawn within the chart width.
var ErrInsufficientSpace = errors.New("not enough space")

const (
	DefaultLineWidth      = 1.5
	DefaultMinCandleWidth = 6
	DefaultMaxCandleWidth = 30
	// Stripes alternate every five bars.
	StripePeriod = 5
)

const (
	MarkerCandle    = "candle"
	MarkerStripe    = "stripe"
	MarkerTooltip   = "tooltip"
	MarkerHighlight = "highlight"
)

// Surface is the drawing surface a chart renders into.
type Surface interface {
	Root() *canvas.Node
	Append(parent, child *canvas.Node) error
	Remove(n *canvas.Node) error
	RemoveMarked(marker string) int
	Listen(h canvas.Handler) *canvas.Subscription
	Dispatch(e canvas.Event)
	WriteTo(w io.Writer) (int64, error)
}

type SurfaceFactory func(width, height float64) Surface

func NewCanvasSurface(width, height float64) Surface {
	return canvas.New(width, height)
}

type BackgroundKind int

const (
	BackgroundNone BackgroundKind = iota
	BackgroundStripes
)

type BackgroundStyle struct {
	Kind BackgroundKind
	// Stripe colour, the theme stripe colour is used if empty.
	Color string
}

func ParseBackgroundKind(s string) (BackgroundKind, error) {
	switch s {
	case "", "none":
		return BackgroundNone, nil
	case "stripes":
		return BackgroundStripes, nil
	default:
		return BackgroundNone, fmt.Errorf("unknown background style %q", s)
	}
}

type Chart struct {
	Theme           *widgets.PlotTheme
	width           float64
	height          float64
	lineWidth       float64
	minCandleWidth  float64
	maxCandleWidth  float64
	backgroundColor string
	backgroundStyle BackgroundStyle
	title           string
	data            *stockval.Dataset
	newSurface      SurfaceFactory
	surface         Surface
	subscription    *canvas.Subscription
	hooks           Hooks
	log             *logrus.Logger
	overlay         overlayState
}

// Option configures a chart during construction.
type Option func(*Chart)

func WithTheme(th *widgets.PlotTheme) Option {
	return func(c *Chart) {
		c.Theme = th
	}
}

func WithSurfaceFactory(f SurfaceFactory) Option {
	return func(c *Chart) {
		c.newSurface = f
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Chart) {
		c.log = l
	}
}

// WithHooks overrides the default pointer and drag behaviour. Nil hooks keep their default.
func WithHooks(h Hooks) Option {
	return func(c *Chart) {
		c.SetHooks(h)
	}
}

// NewChart returns nil if width or height is not positive.
// Unlike loading data or drawing, this does not report an error.
func NewChart(width, height float64, options ...Option) *Chart {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil
	}
	c := &Chart{
		Theme:          widgets.NewLightPlotTheme(),
		width:          width,
		height:         height,
		lineWidth:      DefaultLineWidth,
		minCandleWidth: DefaultMinCandleWidth,
		maxCandleWidth: DefaultMaxCandleWidth,
		newSurface:     NewCanvasSurface,
		hooks:          defaultHooks(),
		log:            logrus.StandardLogger(),
	}
	c.overlay.reset()
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Chart) Width() float64 {
	return c.width
}

func (c *Chart) Height() float64 {
	return c.height
}

func (c *Chart) Title() string {
	return c.title
}

// SetTitle sets the chart title, it is written as SVG title element during the next draw.
func (c *Chart) SetTitle(title string) {
	c.title = title
}

func (c *Chart) SetBackgroundColor(color string) {
	c.backgroundColor = color
}

func (c *Chart) BackgroundColor() string {
	if c.backgroundColor == "" {
		return c.Theme.BackgroundColor
	}
	return c.backgroundColor
}

func (c *Chart) SetBackgroundStyle(style BackgroundStyle) {
	c.backgroundStyle = style
}

func (c *Chart) BackgroundStyle() BackgroundStyle {
	return c.backgroundStyle
}

// SetLineWidth ignores widths which are not positive.
func (c *Chart) SetLineWidth(width float64) {
	if !(width > 0) {
		return
	}
	c.lineWidth = width
}

func (c *Chart) LineWidth() float64 {
	return c.lineWidth
}

// SetCandleWidthBounds ignores bounds which are not positive. The maximum should not be below the minimum.
func (c *Chart) SetCandleWidthBounds(minWidth, maxWidth float64) {
	if minWidth > 0 {
		c.minCandleWidth = minWidth
	}
	if maxWidth > 0 {
		c.maxCandleWidth = maxWidth
	}
}

func (c *Chart) CandleWidthBounds() (minWidth, maxWidth float64) {
	return c.minCandleWidth, c.maxCandleWidth
}

// Load replaces all bar data. Live overlays are removed, the candles are updated during the next draw.
func (c *Chart) Load(rows []stockval.Row) error {
	d, err := stockval.Load(rows)
	if err != nil {
		return err
	}
	c.data = d
	c.clearOverlay()
	return nil
}

func (c *Chart) Data() *stockval.Dataset {
	return c.data
}

// Surface returns the surface of the last successful draw, or nil.
func (c *Chart) Surface() Surface {
	return c.surface
}

func (c *Chart) scale() Scale {
	s := Scale{
		Width:          c.width,
		Height:         c.height,
		LineWidth:      c.lineWidth,
		MinCandleWidth: c.minCandleWidth,
		MaxCandleWidth: c.maxCandleWidth,
	}
	if c.data != nil {
		s.PriceMin = c.data.PriceMin
		s.PriceMax = c.data.PriceMax
		s.Count = c.data.Len()
	}
	return s
}

// Scale returns the current mapping of prices and bars to pixels.
func (c *Chart) Scale() Scale {
	return c.scale()
}

// Draw always redraws everything onto a new surface and attaches the pointer handler to it.
// The previous surface is discarded together with its overlays.
func (c *Chart) Draw() error {
	if c.data == nil {
		return fmt.Errorf("no data loaded: %w", stockval.ErrInvalidInput)
	}
	count := c.data.Len()
	if c.minCandleWidth*float64(count) > c.width {
		return fmt.Errorf("cannot draw %d candles with minimum width %v within %v px: %w",
			count, c.minCandleWidth, c.width, ErrInsufficientSpace)
	}
	c.detach()

	s := c.newSurface(c.width, c.height)
	scale := c.scale()
	root := s.Root()
	root.Set("style", "background-color: "+c.BackgroundColor())
	if c.title != "" {
		if err := s.Append(root, canvas.NewNode("title").SetText(c.title)); err != nil {
			return err
		}
	}
	if c.backgroundStyle.Kind == BackgroundStripes {
		if err := c.paintStripes(s, scale); err != nil {
			return err
		}
	}
	for i, b := range c.data.Bars {
		shape := scale.BuildCandle(i, b, c.Theme)
		if err := s.Append(root, shape.node(i, c.lineWidth)); err != nil {
			return err
		}
	}
	c.surface = s
	c.subscription = s.Listen(c.handlePointer)
	return nil
}

func (c *Chart) paintStripes(s Surface, scale Scale) error {
	color := c.backgroundStyle.Color
	if color == "" {
		color = c.Theme.StripeColor
	}
	step := scale.CandleStep()
	for i := 0; float64(i) < float64(scale.Count)/StripePeriod; i += 2 {
		stripe := canvas.NewNode("rect").
			Mark(MarkerStripe).
			SetFloat("x", step*float64(i*StripePeriod)).
			SetFloat("width", step*StripePeriod).
			Set("y", "0").
			SetFloat("height", scale.Height).
			Set("fill", color).
			Set("stroke-width", "0")
		if err := s.Append(s.Root(), stripe); err != nil {
			return err
		}
	}
	return nil
}

// detach drops the pointer subscription of the current surface, so that exactly one subscription exists.
func (c *Chart) detach() {
	c.subscription.Close()
	c.subscription = nil
	c.surface = nil
	c.overlay.reset()
}

// WriteTo writes the last drawn chart as SVG document.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	if c.surface == nil {
		return 0, errors.New("chart has not been drawn")
	}
	return c.surface.WriteTo(w)
}
