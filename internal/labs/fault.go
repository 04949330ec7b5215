package labs

import (
	"fmt"
	"math"
)

// CurrentType selects the short-circuit model.
type CurrentType int

const (
	// CurrentTypeUnknown is any selector outside the supported models. It is
	// the zero value and produces a zero current rather than an error.
	CurrentTypeUnknown CurrentType = iota

	// CurrentTypeThreePhase is a symmetrical three-phase fault.
	CurrentTypeThreePhase

	// CurrentTypeSinglePhase is a single-phase fault.
	CurrentTypeSinglePhase
)

func (c CurrentType) String() string {
	switch c {
	case CurrentTypeThreePhase:
		return "three-phase"
	case CurrentTypeSinglePhase:
		return "single-phase"
	case CurrentTypeUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("CurrentType(%d)", int(c))
	}
}

// FaultCurrentParams are the fault voltage (kV), system impedance (ohm) and
// current type.
type FaultCurrentParams struct {
	Voltage   float64     `json:"voltage"`
	Impedance float64     `json:"impedance"`
	Type      CurrentType `json:"-"`
}

// FaultCurrentReport is the short-circuit current in amperes.
type FaultCurrentReport struct {
	Type     CurrentType `json:"-"`
	TypeName string      `json:"type"`
	Current  float64     `json:"current"`
}

// FaultCurrent computes the short-circuit current. Voltage and impedance must
// be positive.
func FaultCurrent(p FaultCurrentParams) (FaultCurrentReport, error) {
	if p.Voltage <= 0 || p.Impedance <= 0 {
		return FaultCurrentReport{}, ErrInvalidRange
	}

	var current float64
	switch p.Type {
	case CurrentTypeThreePhase:
		current = (p.Voltage * 1000) / (p.Impedance * math.Sqrt(3))
	case CurrentTypeSinglePhase:
		current = (p.Voltage * 1000) / p.Impedance
	default:
		// Unknown selectors report no current.
		current = 0
	}

	return FaultCurrentReport{
		Type:     p.Type,
		TypeName: p.Type.String(),
		Current:  current,
	}, nil
}
