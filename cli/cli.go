// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package cli contains the command line entry points.
package cli

import (
	"candlelight/config"
	"candlelight/stockplot"
	"candlelight/stockval"
	"candlelight/widgets"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	// Used instead of the configuration file if set.
	config     config.Config
	configFile string
	title      string
	width      float64
	height     float64
	stripes    bool
	dark       bool
}

// NewRootCommand returns the command tree, configuration is read when a sub command runs.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

func newRootCommand(c config.Config) *cobra.Command {
	opts := options{config: c}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Render candlestick charts as SVG",
		Long:          `Renders OHLC data from CSV or JSON files as candlestick chart in SVG format, either into a file or served to the browser with tooltips and range selection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Configuration file, defaults to the user configuration directory.")
	flags.StringVarP(&opts.title, "title", "t", "", "Chart title, overrides the configuration.")
	flags.Float64Var(&opts.width, "width", 0, "Chart width in pixels, overrides the configuration.")
	flags.Float64Var(&opts.height, "height", 0, "Chart height in pixels, overrides the configuration.")
	flags.BoolVar(&opts.stripes, "stripes", false, "Use a striped background.")
	flags.BoolVar(&opts.dark, "dark", false, "Use the dark theme.")

	root.AddCommand(newRenderCommand(&opts), newServeCommand(&opts))
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatalf("%s: %v", config.AppName, err)
	}
}

func (o *options) loadConfig() (config.AppConfig, error) {
	c := o.config
	if c != nil {
		return c.Copy()
	}
	if o.configFile != "" {
		c = config.NewFileConfig(o.configFile)
	} else {
		var err error
		c, err = config.NewGlobalConfig()
		if err != nil {
			return config.AppConfig{}, err
		}
	}
	return c.Copy()
}

// newChart creates a chart according to the configuration and command line options and loads the rows.
func (o *options) newChart(rows []stockval.Row) (*stockplot.Chart, config.AppConfig, error) {
	appConfig, err := o.loadConfig()
	if err != nil {
		return nil, appConfig, err
	}
	cc := appConfig.Chart
	if o.width > 0 {
		cc.Width = o.width
	}
	if o.height > 0 {
		cc.Height = o.height
	}
	if o.title != "" {
		cc.Title = o.title
	}
	if o.stripes {
		cc.BackgroundStyle = config.BackgroundStyleStripes
	}
	theme := widgets.NewLightPlotTheme()
	if o.dark || appConfig.DarkTheme {
		theme = widgets.NewDarkPlotTheme()
	}
	chart := stockplot.NewChart(cc.Width, cc.Height, stockplot.WithTheme(theme), stockplot.WithLogger(log.StandardLogger()))
	if chart == nil {
		return nil, appConfig, fmt.Errorf("invalid chart size %vx%v: %w", cc.Width, cc.Height, stockval.ErrInvalidInput)
	}
	kind, err := stockplot.ParseBackgroundKind(cc.BackgroundStyle)
	if err != nil {
		return nil, appConfig, err
	}
	chart.SetTitle(cc.Title)
	chart.SetLineWidth(cc.LineWidth)
	chart.SetCandleWidthBounds(cc.MinCandleWidth, cc.MaxCandleWidth)
	// The dark theme brings its own colours unless configured otherwise.
	if !(o.dark || appConfig.DarkTheme) || cc.BackgroundColor != config.NewChartConfig().BackgroundColor {
		chart.SetBackgroundColor(cc.BackgroundColor)
	}
	style := stockplot.BackgroundStyle{Kind: kind}
	if cc.StripeColor != config.NewChartConfig().StripeColor {
		style.Color = cc.StripeColor
	}
	chart.SetBackgroundStyle(style)
	if err := chart.Load(rows); err != nil {
		return nil, appConfig, err
	}
	return chart, appConfig, nil
}

// readRows reads CSV or JSON rows depending on the file extension, "-" reads JSON from stdin.
func readRows(fileName string, stdin io.Reader) ([]stockval.Row, error) {
	if fileName == "-" {
		return stockval.ParseJSON(stdin)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return stockval.ParseCSV(f)
	case ".json":
		return stockval.ParseJSON(f)
	default:
		return nil, fmt.Errorf("unsupported input file %q, expected .csv or .json", fileName)
	}
}
