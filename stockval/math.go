// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"fmt"
	"strconv"

	"github.com/ericlagergren/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var volumePrinter = message.NewPrinter(language.English)

// RoundPrice rounds price z to two digits after decimal point and returns z.
// Ties are rounded away from zero, e.g. 2.125 becomes 2.13.
func RoundPrice(z *decimal.Big) *decimal.Big {
	z.Context.RoundingMode = decimal.ToNearestAway
	// Call Quantize twice, otherwise one digit may be missing, see https://github.com/ericlagergren/decimal/issues/151
	return z.Quantize(2).Quantize(2)
}

// Returns a new decimal with prepared formatting, enforce a minimum of 2 digits after decimal point.
func PrepareFormattedPrice(z *decimal.Big) *decimal.Big {
	if z.Scale() < 2 {
		// Adding 0.00 will enforce the proper format
		return new(decimal.Big).Add(z, decimal.New(0, 2))
	}
	return new(decimal.Big).Copy(z)
}

// The builtin decimal.Big conversion from float64 is an "exact" conversion, and useless for our cases.
// Therefore, convert using string conversion, even though this requires memory allocation.
// See also https://github.com/ericlagergren/decimal/issues/142

// Convert float to string and then to decimal.
func ConvertFloatToDecimal(v float64, bitSize int) *decimal.Big {
	d, _ := new(decimal.Big).SetString(strconv.FormatFloat(v, 'f', -1, bitSize))
	return d
}

// FormatPrice formats a price with exactly two decimal places.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%f", PrepareFormattedPrice(RoundPrice(ConvertFloatToDecimal(v, 64))))
}

// FormatVolume formats a volume with thousands separators, e.g. 1,234,567.
func FormatVolume(v uint64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return volumePrinter.Sprintf("%d", v)
}

func IsBearish(o, c float64) bool {
	return c < o
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
