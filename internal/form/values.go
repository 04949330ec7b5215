// Package form turns raw field text into calculator parameters. Unparsable
// or missing fields fall back to the defaults the lab screens use: zero for
// numbers, absent for the reliability inputs and three-phase for the current
// type.
package form

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Values maps a field name to its raw text.
type Values map[string]string

// Float parses the named field, returning 0 when it is missing or unparsable.
func (v Values) Float(name string) float64 {
	f, ok := v.parseFloat(name)
	if !ok {
		return 0
	}
	return f
}

// OptionalFloat parses the named field, returning nil when it is missing or
// unparsable.
func (v Values) OptionalFloat(name string) *float64 {
	f, ok := v.parseFloat(name)
	if !ok {
		return nil
	}
	return &f
}

// Int parses the named field as a whole number, returning 0 when it is
// missing or not an integer.
func (v Values) Int(name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v[name]))
	if err != nil {
		return 0
	}
	return n
}

// Text returns the trimmed raw text of the named field.
func (v Values) Text(name string) string {
	return strings.TrimSpace(v[name])
}

func (v Values) parseFloat(name string) (float64, bool) {
	raw, ok := v[name]
	if !ok {
		return 0, false
	}
	return parseNumber(raw)
}

// parseNumber accepts the decimal grammar of a numeric lab field: optional
// sign, decimal or 0x...p hex mantissa, optional d/f type suffix, and the
// exact words NaN and Infinity. Spellings only Go accepts (inf, infinity in
// any case, digit underscores) are rejected. Out-of-range magnitudes become
// ±Inf instead of failing.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)

	unsigned := strings.TrimLeft(s, "+-")
	if len(s)-len(unsigned) <= 1 {
		switch unsigned {
		case "NaN":
			return math.NaN(), true
		case "Infinity":
			if strings.HasPrefix(s, "-") {
				return math.Inf(-1), true
			}
			return math.Inf(1), true
		}
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return 0, false
	}
	if n := len(s); n > 1 && strings.ContainsRune("dDfF", rune(s[n-1])) {
		s = s[:n-1]
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// UnmarshalJSON accepts an object whose members are strings or numbers.
// Numbers keep their literal text. Members of any other type are treated as
// missing.
func (v *Values) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode form values: %w", err)
	}

	out := make(Values, len(raw))
	for name, value := range raw {
		switch x := value.(type) {
		case string:
			out[name] = x
		case json.Number:
			out[name] = x.String()
		}
	}
	*v = out
	return nil
}

// FromURLValues keeps the first value of every posted field.
func FromURLValues(u url.Values) Values {
	out := make(Values, len(u))
	for name, values := range u {
		if len(values) > 0 {
			out[name] = values[0]
		}
	}
	return out
}
