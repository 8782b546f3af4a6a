// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRows() []Row {
	return []Row{
		MinimalRow{High: 10, Low: 5, Open: 6, Close: 9},
		MinimalRow{High: 12, Low: 6, Open: 9, Close: 7},
		MinimalRow{High: 11, Low: 4, Open: 7, Close: 8},
		MinimalRow{High: 9, Low: 4.5, Open: 8, Close: 8},
	}
}

func TestLoadRejectsShortData(t *testing.T) {
	_, err := Load(nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = Load([]Row{})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = Load([]Row{MinimalRow{High: 1, Low: 1, Open: 1, Close: 1}})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestLoadRejectsMissingRow(t *testing.T) {
	_, err := Load([]Row{MinimalRow{High: 1, Low: 1, Open: 1, Close: 1}, nil})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoadPriceRange(t *testing.T) {
	d, err := Load(newTestRows())
	assert.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4.0, d.PriceMin)
	assert.Equal(t, 12.0, d.PriceMax)
	for _, b := range d.Bars {
		assert.LessOrEqual(t, d.PriceMin, b.Low)
		assert.GreaterOrEqual(t, d.PriceMax, b.High)
	}
	assert.False(t, d.IsFlat())
}

func TestLoadDirectionFlags(t *testing.T) {
	d, err := Load(newTestRows())
	assert.NoError(t, err)

	assert.False(t, d.Bars[0].IsBearish)
	assert.False(t, d.Bars[0].IsDownFromPrevious)

	assert.True(t, d.Bars[1].IsBearish)
	assert.True(t, d.Bars[1].IsDownFromPrevious)

	assert.False(t, d.Bars[2].IsBearish)
	assert.False(t, d.Bars[2].IsDownFromPrevious)

	// Equal open and close is not bearish.
	assert.False(t, d.Bars[3].IsBearish)
	assert.False(t, d.Bars[3].IsDownFromPrevious)

	for i := 1; i < d.Len(); i++ {
		assert.Equal(t, d.Bars[i].Close < d.Bars[i-1].Close, d.Bars[i].IsDownFromPrevious)
	}
}

func TestLoadFullRows(t *testing.T) {
	day := time.Date(2023, 3, 14, 0, 0, 0, 0, time.UTC)
	d, err := Load([]Row{
		FullRow{Timestamp: TimestampOf(day), High: 10, Low: 5, Open: 6, Close: 9, Volume: 1200, HasVolume: true, Label: "SPY"},
		FullRow{High: 12, Low: 6, Open: 9, Close: 7},
	})
	assert.NoError(t, err)
	assert.Equal(t, "3/14/2023", d.Bars[0].Timestamp.String())
	assert.Equal(t, uint64(1200), d.Bars[0].Volume)
	assert.True(t, d.Bars[0].HasVolume)
	assert.Equal(t, "SPY", d.Bars[0].Label)
	assert.Equal(t, NotAvailable, d.Bars[1].Timestamp.String())
	assert.False(t, d.Bars[1].HasVolume)
}

func TestFlatDataset(t *testing.T) {
	d, err := Load([]Row{
		MinimalRow{High: 5, Low: 5, Open: 5, Close: 5},
		MinimalRow{High: 5, Low: 5, Open: 5, Close: 5},
	})
	assert.NoError(t, err)
	assert.True(t, d.IsFlat())
}

func TestTinyRangeIsNotFlat(t *testing.T) {
	d, err := Load([]Row{
		MinimalRow{High: 1.20e-6, Low: 1.00e-6, Open: 1.05e-6, Close: 1.15e-6},
		MinimalRow{High: 1.25e-6, Low: 1.10e-6, Open: 1.15e-6, Close: 1.20e-6},
	})
	assert.NoError(t, err)
	assert.False(t, d.IsFlat())
}
