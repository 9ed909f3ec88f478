package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	SMALL = 1e-6
	//Layout used to render date attributes
	DateLayout = "2006-01-02T15:04:05"
)

//Greater than
func Gr(a float64, b float64) bool {
	return a-b > SMALL
}

//Equal to
func Eq(a float64, b float64) bool {
	return (a == b) || (a-b < SMALL) && (b-a < SMALL)
}

// MaxIndex returns the index of the first largest element, -1 for an
// empty slice.
func MaxIndex(values []float64) int {
	if len(values) == 0 {
		return -1
	}
	maxIndex := 0
	for i := 1; i < len(values); i++ {
		if Gr(values[i], values[maxIndex]) {
			maxIndex = i
		}
	}
	return maxIndex
}

// FormatFloat renders a double the way the ARFF tooling prints them: always
// with a fractional part ("1.0"), and in scientific notation ("1.0E7",
// "1.5E-4") outside [1e-3, 1e7).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	negative := strings.HasPrefix(exponent, "-")
	exponent = strings.TrimLeft(exponent, "+-")
	exponent = strings.TrimLeft(exponent, "0")
	if exponent == "" {
		exponent = "0"
	}
	if negative {
		exponent = "-" + exponent
	}
	return mantissa + "E" + exponent
}

//Renders v, milliseconds since the epoch, in UTC with DateLayout
func FormatDate(v float64) string {
	return time.UnixMilli(int64(v)).UTC().Format(DateLayout)
}
