// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
)

var timestampLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	dateFormat,
}

// ParseTimestamp interprets s as a date. Text which is not a known date format is kept as is.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimestampOf(t)
		}
	}
	return Timestamp{Text: s}
}

// Exclusive upper bound of volumes, 2^64.
const maxVolume = float64(1 << 64)

// RowFromTuple converts a raw tuple to a row.
// Supported are [high, low, open, close] and [date, high, low, open, close, volume(, label)].
// This is the only place where the tuple length is inspected.
func RowFromTuple(values []any) (Row, error) {
	switch len(values) {
	case 4:
		p, err := tuplePrices(values)
		if err != nil {
			return nil, err
		}
		return MinimalRow{High: p[0], Low: p[1], Open: p[2], Close: p[3]}, nil
	case 6, 7:
		p, err := tuplePrices(values[1:5])
		if err != nil {
			return nil, err
		}
		r := FullRow{High: p[0], Low: p[1], Open: p[2], Close: p[3]}
		switch t := values[0].(type) {
		case nil:
		case string:
			r.Timestamp = ParseTimestamp(t)
		case float64:
			// Milliseconds since epoch, as used by javascript dates.
			r.Timestamp = TimestampOf(time.UnixMilli(int64(t)).UTC())
		default:
			return nil, fmt.Errorf("unsupported timestamp %v: %w", t, ErrInvalidInput)
		}
		switch v := values[5].(type) {
		case nil:
		case float64:
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("negative volume %v: %w", v, ErrInvalidInput)
			}
			if math.IsInf(v, 0) || v != math.Trunc(v) || v >= maxVolume {
				return nil, fmt.Errorf("volume %v is not a whole number: %w", v, ErrInvalidInput)
			}
			r.Volume = uint64(v)
			r.HasVolume = true
		default:
			return nil, fmt.Errorf("unsupported volume %v: %w", v, ErrInvalidInput)
		}
		if len(values) == 7 {
			label, ok := values[6].(string)
			if !ok && values[6] != nil {
				return nil, fmt.Errorf("unsupported label %v: %w", values[6], ErrInvalidInput)
			}
			r.Label = label
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported tuple size %d: %w", len(values), ErrInvalidInput)
	}
}

func tuplePrices(values []any) (p [4]float64, err error) {
	for i, v := range values {
		f, ok := v.(float64)
		if !ok {
			return p, fmt.Errorf("price %v is not a number: %w", v, ErrInvalidInput)
		}
		p[i] = f
	}
	return p, nil
}

// ParseJSON reads an array of tuples, e.g. [[10,5,6,9],[12,6,9,7]].
func ParseJSON(r io.Reader) ([]Row, error) {
	var tuples [][]any
	if err := json.NewDecoder(r).Decode(&tuples); err != nil {
		return nil, fmt.Errorf("failed to parse rows: %v: %w", err, ErrInvalidInput)
	}
	rows := make([]Row, len(tuples))
	for i, t := range tuples {
		row, err := RowFromTuple(t)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}
	return rows, nil
}

type csvRow struct {
	Date   string  `csv:"date"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Open   float64 `csv:"open"`
	Close  float64 `csv:"close"`
	Volume string  `csv:"volume"`
	Label  string  `csv:"label"`
}

func (r csvRow) isMinimal() bool {
	return r.Date == "" && r.Volume == "" && r.Label == ""
}

// ParseCSV reads rows from CSV with a header line.
// Columns high, low, open and close are required, date, volume and label are optional.
func ParseCSV(r io.Reader) ([]Row, error) {
	var dtos []csvRow
	if err := gocsv.Unmarshal(r, &dtos); err != nil {
		return nil, fmt.Errorf("failed to parse csv rows: %v: %w", err, ErrInvalidInput)
	}
	if lo.EveryBy(dtos, csvRow.isMinimal) {
		return lo.Map(dtos, func(d csvRow, _ int) Row {
			return MinimalRow{High: d.High, Low: d.Low, Open: d.Open, Close: d.Close}
		}), nil
	}
	rows := make([]Row, len(dtos))
	for i, d := range dtos {
		row := FullRow{
			Timestamp: ParseTimestamp(d.Date),
			High:      d.High,
			Low:       d.Low,
			Open:      d.Open,
			Close:     d.Close,
			Label:     strings.TrimSpace(d.Label),
		}
		if v := strings.TrimSpace(d.Volume); v != "" {
			volume, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid volume %q: %w", i, v, ErrInvalidInput)
			}
			row.Volume = volume
			row.HasVolume = true
		}
		rows[i] = row
	}
	return rows, nil
}
