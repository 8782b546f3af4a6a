// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"bufio"
	"candlelight/stockval"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// NewLogger returns a logger writing to a pipe, every log entry can be read as line from the scanner.
func NewLogger(t *testing.T) (*logrus.Logger, *bufio.Scanner) {
	r, w, err := os.Pipe()
	if err != nil {
		assert.Fail(t, "failed to create logger mock: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	t.Cleanup(func() { w.Close() })
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return l, bufio.NewScanner(r)
}

// NewRows returns n full rows with a rising close and alternating bearish bars.
func NewRows(n int) []stockval.Row {
	rows := make([]stockval.Row, n)
	for i := range rows {
		base := 100 + float64(i)
		openPrice, closePrice := base, base+1
		if i%2 == 1 {
			openPrice, closePrice = closePrice, openPrice
		}
		rows[i] = stockval.FullRow{
			Timestamp: stockval.TimestampOf(time.Date(2024, 1, 2+i, 0, 0, 0, 0, time.UTC)),
			High:      base + 2,
			Low:       base - 1,
			Open:      openPrice,
			Close:     closePrice,
			Volume:    uint64(1000 * (i + 1)),
			HasVolume: true,
		}
	}
	return rows
}
