// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"errors"
	"time"
)

// ErrInvalidInput is returned if bar data is malformed or too short to establish a scale.
var ErrInvalidInput = errors.New("invalid input data")

const NotAvailable = "N/A"

// Short date as shown in tooltips, e.g. 1/2/2006.
const dateFormat = "1/2/2006"

// Timestamp is either a calendar time or an opaque text, e.g. "Q3" or "week 12".
// The zero value means that no timestamp is available.
type Timestamp struct {
	Time time.Time
	Text string
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) IsZero() bool {
	return t.Time.IsZero() && t.Text == ""
}

func (t Timestamp) String() string {
	if !t.Time.IsZero() {
		return t.Time.Format(dateFormat)
	}
	if t.Text != "" {
		return t.Text
	}
	return NotAvailable
}

// Bar is a single OHLC observation. Bars are created by Load and never modified afterwards.
// low <= min(open, close) <= max(open, close) <= high is expected but not enforced,
// garbage data results in inverted candles.
type Bar struct {
	Timestamp Timestamp
	High      float64
	Low       float64
	Open      float64
	Close     float64
	Volume    uint64
	HasVolume bool
	Label     string
	// Close below open.
	IsBearish bool
	// Close below the close of the previous bar, always false for the first bar.
	IsDownFromPrevious bool
}

// Row is raw input for a single bar, either MinimalRow or FullRow.
type Row interface {
	prices() (high, low, open, close float64)
	bar() Bar
}

// MinimalRow carries prices only.
type MinimalRow struct {
	High  float64
	Low   float64
	Open  float64
	Close float64
}

func (r MinimalRow) prices() (float64, float64, float64, float64) {
	return r.High, r.Low, r.Open, r.Close
}

func (r MinimalRow) bar() Bar {
	return Bar{High: r.High, Low: r.Low, Open: r.Open, Close: r.Close}
}

// FullRow carries prices along with timestamp, volume and an optional series label (e.g. a ticker).
type FullRow struct {
	Timestamp Timestamp
	High      float64
	Low       float64
	Open      float64
	Close     float64
	Volume    uint64
	HasVolume bool
	Label     string
}

func (r FullRow) prices() (float64, float64, float64, float64) {
	return r.High, r.Low, r.Open, r.Close
}

func (r FullRow) bar() Bar {
	return Bar{
		Timestamp: r.Timestamp,
		High:      r.High,
		Low:       r.Low,
		Open:      r.Open,
		Close:     r.Close,
		Volume:    r.Volume,
		HasVolume: r.HasVolume,
		Label:     r.Label,
	}
}
