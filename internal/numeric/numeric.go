// Package numeric holds the belt's aggregation helpers.
package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sum adds values. An empty slice sums to zero.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Int rounds v to the nearest integer, halves away from zero.
func Int(v float64) int {
	return int(math.Round(v))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseAll parses each argument as a decimal number.
func ParseAll(args []string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("numeric: parse %q: %w", a, err)
		}
		out = append(out, v)
	}
	return out, nil
}
