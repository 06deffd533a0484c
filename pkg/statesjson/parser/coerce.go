package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseInt converts a raw cell value to an int. Integral text parses directly;
// decimal values are truncated toward zero.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(i), nil
	}
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidNumber, s)
	}
	return int(f), nil
}

// parseFloat converts a raw cell value to a finite float64.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, s)
	}
	return f, nil
}

// parsePercent is parseFloat after dropping a trailing "%". "3.2%" and
// "3.2" both yield 3.2.
func parsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	return parseFloat(s)
}
