package labs

import (
	"math"

	"github.com/goccy/go-json"
)

// jsonFloat keeps finite values as JSON numbers and spells NaN and the
// infinities as strings, the way the reports print them.
func jsonFloat(v float64) any {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return v
}

// MarshalJSON encodes a zero failure rate or repair time, which yields an
// infinite reliability, as "Infinity".
func (c CircuitReport) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reliability any `json:"reliability"`
		Loss        any `json:"loss"`
	}{
		Reliability: jsonFloat(c.Reliability),
		Loss:        jsonFloat(c.Loss),
	})
}
