package report

import (
	"math"
	"strconv"
	"strings"
)

// Fixed formats v with the given number of fraction digits. Rounding is
// half-up on the shortest decimal representation of v, so 1.005 becomes
// "1.01" at two digits. Non-finite values print as NaN, Infinity and
// -Infinity.
func Fixed(v float64, digits int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}

	sign := ""
	if math.Signbit(v) {
		sign = "-"
	}

	intPart, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'f', -1, 64), ".")
	if len(frac) <= digits {
		frac += strings.Repeat("0", digits-len(frac))
		return sign + joinFixed(intPart, frac)
	}

	roundUp := frac[digits] >= '5'
	mantissa := []byte(intPart + frac[:digits])
	if roundUp {
		mantissa = increment(mantissa)
	}

	split := len(mantissa) - digits
	return sign + joinFixed(string(mantissa[:split]), string(mantissa[split:]))
}

// Plain formats v the way a JVM prints a double: plain notation with at least
// one fraction digit between 1e-3 and 1e7, scientific notation otherwise.
func Plain(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	if v == 0 {
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

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

func joinFixed(intPart, frac string) string {
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

// increment adds one unit in the last place of a decimal digit string.
func increment(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
