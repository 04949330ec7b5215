package labs

// FuelOilParams describes fuel oil given on the combustible basis.
type FuelOilParams struct {
	Hydrogen          float64 `json:"hydrogen"`
	Carbon            float64 `json:"carbon"`
	Sulfur            float64 `json:"sulfur"`
	Oxygen            float64 `json:"oxygen"`
	Moisture          float64 `json:"moisture"`
	Ash               float64 `json:"ash"`
	Vanadium          float64 `json:"vanadium"`            // mg/kg
	LowerHeatingValue float64 `json:"lower_heating_value"` // MJ/kg
}

// FuelOilReport is the raw-basis composition of a fuel oil.
type FuelOilReport struct {
	Hydrogen          float64 `json:"hydrogen"`
	Carbon            float64 `json:"carbon"`
	Sulfur            float64 `json:"sulfur"`
	Oxygen            float64 `json:"oxygen"`
	Vanadium          float64 `json:"vanadium"`
	LowerHeatingValue float64 `json:"lower_heating_value"`
}

// FuelOil converts a combustible-basis composition back to the raw basis.
// Vanadium and the heating value are passed through unchanged.
func FuelOil(p FuelOilParams) FuelOilReport {
	toRaw := func(v float64) float64 {
		return v * (100 - p.Moisture - p.Ash) / 100
	}

	return FuelOilReport{
		Hydrogen:          toRaw(p.Hydrogen),
		Carbon:            toRaw(p.Carbon),
		Sulfur:            toRaw(p.Sulfur),
		Oxygen:            toRaw(p.Oxygen),
		Vanadium:          p.Vanadium,
		LowerHeatingValue: p.LowerHeatingValue,
	}
}
