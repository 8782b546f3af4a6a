// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import "fmt"

// A single bar cannot establish a price scale.
const MinBars = 2

// Dataset is an ordered sequence of bars, insertion order is display order.
// It is replaced as a whole by the next Load and never updated bar by bar.
type Dataset struct {
	Bars     []Bar
	PriceMin float64
	PriceMax float64
}

func Load(rows []Row) (*Dataset, error) {
	if len(rows) < MinBars {
		return nil, fmt.Errorf("need at least %d rows, got %d: %w", MinBars, len(rows), ErrInvalidInput)
	}
	d := &Dataset{
		Bars: make([]Bar, len(rows)),
	}
	var prevClose float64
	for i, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("row %d is missing: %w", i, ErrInvalidInput)
		}
		h, l, o, c := r.prices()
		if i == 0 || l < d.PriceMin {
			d.PriceMin = l
		}
		if i == 0 || h > d.PriceMax {
			d.PriceMax = h
		}
		b := r.bar()
		b.IsBearish = IsBearish(o, c)
		b.IsDownFromPrevious = i > 0 && c < prevClose
		d.Bars[i] = b
		prevClose = c
	}
	return d, nil
}

func (d *Dataset) Len() int {
	return len(d.Bars)
}

// A flat dataset has no price range, e.g. a constant series.
// Any positive range counts, however small the prices are.
func (d *Dataset) IsFlat() bool {
	return !(d.PriceMax > d.PriceMin)
}
