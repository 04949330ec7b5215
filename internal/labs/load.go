package labs

import "math"

// LoadParams describes a group of identical electrical receivers.
type LoadParams struct {
	Power               float64 `json:"power"`      // rated power per unit, kW
	Efficiency          float64 `json:"efficiency"` // 0..1
	CosPhi              float64 `json:"cos_phi"`
	Voltage             float64 `json:"voltage"` // kV
	Quantity            int     `json:"quantity"`
	UsageFactor         float64 `json:"usage_factor"`
	ReactivePowerFactor float64 `json:"reactive_power_factor"` // tan phi
}

// LoadReport holds the design loads of the group.
type LoadReport struct {
	TotalPower           float64 `json:"total_power"`            // kW
	ActiveLoad           float64 `json:"active_load"`            // kW
	CalculatedActiveLoad float64 `json:"calculated_active_load"` // kW
	Current              float64 `json:"current"`                // A
	ReactiveLoad         float64 `json:"reactive_load"`          // kvar
	FullPower            float64 `json:"full_power"`             // kVA
}

// ElectricalLoad computes the design loads. Every input must be positive.
func ElectricalLoad(p LoadParams) (LoadReport, error) {
	if p.Power <= 0 || p.Efficiency <= 0 || p.CosPhi <= 0 || p.Voltage <= 0 ||
		p.Quantity <= 0 || p.UsageFactor <= 0 || p.ReactivePowerFactor <= 0 {
		return LoadReport{}, ErrInvalidRange
	}

	total := p.Power * float64(p.Quantity)
	active := total * p.UsageFactor
	calculated := active / (p.Efficiency * p.CosPhi)
	reactive := active * p.ReactivePowerFactor

	return LoadReport{
		TotalPower:           total,
		ActiveLoad:           active,
		CalculatedActiveLoad: calculated,
		Current:              (calculated * 1000) / (p.Voltage * math.Sqrt(3)),
		ReactiveLoad:         reactive,
		FullPower:            math.Sqrt(active*active + reactive*reactive),
	}, nil
}
