// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import (
	"errors"
	"math"
	"strconv"
)

// resultPlaces is the number of decimal places a non-integral result of
// Equals is rounded to.
const resultPlaces = 8

var errNotFinite = errors.New("result is not a finite number")

// parseOperand converts operand text into a float64. Values that overflow
// float64 are rejected rather than turned into infinities.
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errNotFinite
	}
	return v, nil
}

// formatNumber renders v the way the display shows numbers: integral values
// without a fractional part, everything else in the shortest decimal form.
// When round is set, non-integral values are first rounded to resultPlaces.
func formatNumber(v float64, round bool) (string, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", errNotFinite
	}
	if round && v != math.Trunc(v) {
		scale := math.Pow10(resultPlaces)
		v = math.Round(v*scale) / scale
	}
	if v == math.Trunc(v) {
		if v == 0 {
			// -0 renders as 0.
			v = 0
		}
		return strconv.FormatFloat(v, 'f', 0, 64), nil
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}
