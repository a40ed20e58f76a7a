package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var magnitudeSuffixes = []string{"", "K", "M", "B", "T"}

// ErrMagnitudeRange is returned for values at or beyond 10^15, which have
// no suffix in the display table.
var ErrMagnitudeRange = errors.New("value exceeds supported magnitude (max suffix T)")

// CleanFormat renders a numeric magnitude for compact display: round to 3
// significant figures, scale down by 1000 until below 1000, and append the
// matching suffix. Trailing zeros and a dangling decimal point are stripped.
func CleanFormat(num float64) (string, error) {
	num = roundSigFigs(num, 3)
	magnitude := 0
	for math.Abs(num) >= 1000 {
		magnitude++
		num /= 1000.0
		if magnitude >= len(magnitudeSuffixes) {
			return "", ErrMagnitudeRange
		}
	}
	s := strconv.FormatFloat(num, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s + magnitudeSuffixes[magnitude], nil
}

// MustCleanFormat is CleanFormat for values already known to be in range;
// out-of-range values fall back to plain %g rather than panicking mid-page.
func MustCleanFormat(num float64) string {
	s, err := CleanFormat(num)
	if err != nil {
		return fmt.Sprintf("%g", num)
	}
	return s
}

func roundSigFigs(num float64, figs int) float64 {
	if num == 0 {
		return 0
	}
	exp := math.Ceil(math.Log10(math.Abs(num)))
	power := float64(figs) - exp
	scale := math.Pow(10, power)
	return math.Round(num*scale) / scale
}
