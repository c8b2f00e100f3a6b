package export

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat prints v widened to float64 as the shortest decimal that round
// trips, switching to exponent notation below 1e-4 and from 1e16 up. Whole
// numbers keep a trailing ".0" so they still read as floats.
func FormatFloat(v float32) string {
	f := float64(v)

	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	exponential := strconv.FormatFloat(f, 'e', -1, 64)

	exp, err := strconv.Atoi(exponential[strings.IndexByte(exponential, 'e')+1:])
	if err == nil && f != 0 && (exp < -4 || exp >= 16) {
		return exponential
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}
