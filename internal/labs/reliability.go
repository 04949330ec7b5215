package labs

// ReliabilityParams describes single- and double-circuit supply. A nil field
// means the value was not supplied.
type ReliabilityParams struct {
	FailureRateSingle *float64 `json:"failure_rate_single,omitempty"` // 1/h
	RepairTimeSingle  *float64 `json:"repair_time_single,omitempty"`  // h
	FailureRateDouble *float64 `json:"failure_rate_double,omitempty"`
	RepairTimeDouble  *float64 `json:"repair_time_double,omitempty"`
	PowerLoss         *float64 `json:"power_loss,omitempty"`  // kW lost during an outage
	OutageCost        *float64 `json:"outage_cost,omitempty"` // currency per kWh undelivered
}

// CircuitReport is the reliability metric (failure-free hours) and the outage
// loss of one supply configuration.
type CircuitReport struct {
	Reliability float64 `json:"reliability"`
	Loss        float64 `json:"loss"`
}

// ReliabilityReport compares single- and double-circuit supply.
type ReliabilityReport struct {
	Single CircuitReport `json:"single"`
	Double CircuitReport `json:"double"`
}

// Value returns a pointer to v, for populating ReliabilityParams.
func Value(v float64) *float64 {
	return &v
}

// ReliabilityLoss computes reliability and outage loss for both supply
// configurations. All six inputs must be present; their sign is not checked.
func ReliabilityLoss(p ReliabilityParams) (ReliabilityReport, error) {
	if p.FailureRateSingle == nil || p.RepairTimeSingle == nil ||
		p.FailureRateDouble == nil || p.RepairTimeDouble == nil ||
		p.PowerLoss == nil || p.OutageCost == nil {
		return ReliabilityReport{}, ErrMissingInput
	}

	circuit := func(failureRate, repairTime float64) CircuitReport {
		return CircuitReport{
			Reliability: 1 / (failureRate * repairTime),
			Loss:        *p.PowerLoss * repairTime * *p.OutageCost,
		}
	}

	return ReliabilityReport{
		Single: circuit(*p.FailureRateSingle, *p.RepairTimeSingle),
		Double: circuit(*p.FailureRateDouble, *p.RepairTimeDouble),
	}, nil
}
