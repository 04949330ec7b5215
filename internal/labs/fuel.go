package labs

import "math"

// FuelCompositionParams holds the raw-basis (working mass) composition of a
// solid fuel, in percent.
type FuelCompositionParams struct {
	Hydrogen float64 `json:"hydrogen"`
	Carbon   float64 `json:"carbon"`
	Sulfur   float64 `json:"sulfur"`
	Nitrogen float64 `json:"nitrogen"`
	Oxygen   float64 `json:"oxygen"`
	Moisture float64 `json:"moisture"`
	Ash      float64 `json:"ash"`
}

// Composition is an elemental breakdown in percent. Ash is zero on the
// combustible basis.
type Composition struct {
	Hydrogen float64 `json:"hydrogen"`
	Carbon   float64 `json:"carbon"`
	Sulfur   float64 `json:"sulfur"`
	Nitrogen float64 `json:"nitrogen"`
	Oxygen   float64 `json:"oxygen"`
	Ash      float64 `json:"ash"`
}

// FuelCompositionReport is the full dry and combustible breakdown of a fuel.
type FuelCompositionReport struct {
	DryCoefficient         float64     `json:"dry_coefficient"`
	CombustibleCoefficient float64     `json:"combustible_coefficient"`
	Dry                    Composition `json:"dry"`
	Combustible            Composition `json:"combustible"`
	DryTotal               float64     `json:"dry_total"`
	CombustibleTotal       float64     `json:"combustible_total"`

	// Lower heating values in MJ/kg for the raw, dry and combustible bases.
	LowerHeatingValue            float64 `json:"lower_heating_value"`
	LowerHeatingValueDry         float64 `json:"lower_heating_value_dry"`
	LowerHeatingValueCombustible float64 `json:"lower_heating_value_combustible"`
}

// FuelComposition converts a raw-basis composition to the dry and combustible
// bases and estimates the lower heating value.
//
// The result is accepted when both checksums are within CompositionTolerance of
// 100. Otherwise ErrMissingInput is returned if any raw component is exactly
// zero, and an *InconsistentCompositionError in every other case. A moisture of
// 100 (or moisture plus ash of 100) is not special-cased: the non-finite
// checksums fail validation.
func FuelComposition(p FuelCompositionParams) (FuelCompositionReport, error) {
	dryCoef := 100 / (100 - p.Moisture)
	combCoef := 100 / (100 - p.Moisture - p.Ash)

	dry := Composition{
		Hydrogen: p.Hydrogen * dryCoef,
		Carbon:   p.Carbon * dryCoef,
		Sulfur:   p.Sulfur * dryCoef,
		Nitrogen: p.Nitrogen * dryCoef,
		Oxygen:   p.Oxygen * dryCoef,
		Ash:      p.Ash * dryCoef,
	}
	dryTotal := dry.Hydrogen + dry.Carbon + dry.Sulfur + dry.Nitrogen + dry.Oxygen + dry.Ash

	comb := Composition{
		Hydrogen: p.Hydrogen * combCoef,
		Carbon:   p.Carbon * combCoef,
		Sulfur:   p.Sulfur * combCoef,
		Nitrogen: p.Nitrogen * combCoef,
		Oxygen:   p.Oxygen * combCoef,
	}
	combTotal := comb.Hydrogen + comb.Carbon + comb.Sulfur + comb.Nitrogen + comb.Oxygen

	lhv := (339*p.Carbon + 1030*p.Hydrogen - 108.8*(p.Oxygen-p.Sulfur) - 25*p.Moisture) / 1000
	corrected := lhv + MoistureHeatCorrection*p.Moisture

	if withinTolerance(dryTotal) && withinTolerance(combTotal) {
		return FuelCompositionReport{
			DryCoefficient:               dryCoef,
			CombustibleCoefficient:       combCoef,
			Dry:                          dry,
			Combustible:                  comb,
			DryTotal:                     dryTotal,
			CombustibleTotal:             combTotal,
			LowerHeatingValue:            lhv,
			LowerHeatingValueDry:         corrected * (100 / (100 - p.Moisture)),
			LowerHeatingValueCombustible: corrected * (100 / (100 - p.Moisture - p.Ash)),
		}, nil
	}

	if p.hasZeroComponent() {
		return FuelCompositionReport{}, ErrMissingInput
	}

	return FuelCompositionReport{}, &InconsistentCompositionError{
		DryTotal:         dryTotal,
		CombustibleTotal: combTotal,
	}
}

// withinTolerance is false for NaN and infinities.
func withinTolerance(total float64) bool {
	return math.Abs(total-100) <= CompositionTolerance
}

func (p FuelCompositionParams) hasZeroComponent() bool {
	for _, v := range []float64{p.Hydrogen, p.Carbon, p.Sulfur, p.Nitrogen, p.Oxygen, p.Moisture, p.Ash} {
		if v == 0 {
			return true
		}
	}
	return false
}
