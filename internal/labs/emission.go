package labs

import (
	"fmt"
	"math"
	"strings"
)

// FuelType selects a row of the emission reference table.
type FuelType int

const (
	// FuelTypeCoal is hard coal.
	FuelTypeCoal FuelType = iota + 1

	// FuelTypeFuelOil is heavy fuel oil (mazut).
	FuelTypeFuelOil

	// FuelTypeGas is natural gas.
	FuelTypeGas
)

// String returns the canonical lower-case name of the fuel.
func (f FuelType) String() string {
	switch f {
	case FuelTypeCoal:
		return "coal"
	case FuelTypeFuelOil:
		return "fuel-oil"
	case FuelTypeGas:
		return "gas"
	default:
		return fmt.Sprintf("FuelType(%d)", int(f))
	}
}

// ParseFuelType accepts the names produced by FuelType.String as well as the
// camelCase and snake_case spellings used by form fields.
func ParseFuelType(s string) (FuelType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coal":
		return FuelTypeCoal, nil
	case "fuel-oil", "fuel_oil", "fueloil", "oil", "mazut":
		return FuelTypeFuelOil, nil
	case "gas":
		return FuelTypeGas, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFuel, s)
	}
}

// EmissionParams are the inputs of the particulate emission formula.
type EmissionParams struct {
	Mass               float64 `json:"mass"`               // tonnes burned
	LowerWorkingHeat   float64 `json:"lower_working_heat"` // MJ/kg
	FlyAsh             float64 `json:"fly_ash"`            // fraction of ash carried away
	AshContent         float64 `json:"ash_content"`        // percent
	CombustibleLoss    float64 `json:"combustible_loss"`   // percent
	CleaningEfficiency float64 `json:"cleaning_efficiency"`
}

// EmissionReport is the particulate emission index (g/GJ) and the gross
// emission of solid particles for the burned mass.
type EmissionReport struct {
	Fuel           FuelType `json:"-"`
	FuelName       string   `json:"fuel"`
	EmissionIndex  float64  `json:"emission_index"`
	GrossParticles float64  `json:"gross_particles"`
}

// ReferenceEmissionParams returns the reference data for fuel with the given
// burned mass.
func ReferenceEmissionParams(fuel FuelType, mass float64) (EmissionParams, error) {
	p := EmissionParams{Mass: mass, CleaningEfficiency: GasCleaningEfficiency}

	switch fuel {
	case FuelTypeCoal:
		p.LowerWorkingHeat = CoalLowerWorkingHeat
		p.FlyAsh = CoalFlyAsh
		p.AshContent = CoalAshContent
		p.CombustibleLoss = CoalCombustibleLoss
	case FuelTypeFuelOil:
		p.LowerWorkingHeat = FuelOilLowerWorkingHeat
		p.FlyAsh = FuelOilFlyAsh
		p.AshContent = FuelOilAshContent
		p.CombustibleLoss = FuelOilCombustibleLoss
	case FuelTypeGas:
		p.LowerWorkingHeat = GasLowerWorkingHeat
		p.FlyAsh = GasFlyAsh
		p.AshContent = GasAshContent
		p.CombustibleLoss = GasCombustibleLoss
	default:
		return EmissionParams{}, fmt.Errorf("%w: %s", ErrUnknownFuel, fuel)
	}

	return p, nil
}

// Emission computes the emission report for fuel using the reference data.
func Emission(fuel FuelType, mass float64) (EmissionReport, error) {
	p, err := ReferenceEmissionParams(fuel, mass)
	if err != nil {
		return EmissionReport{}, err
	}

	switch fuel {
	case FuelTypeGas:
		return GasEmission(p), nil
	case FuelTypeFuelOil:
		return FuelOilEmission(p), nil
	default:
		return CoalEmission(p), nil
	}
}

// CoalEmission applies the emission formula for coal.
func CoalEmission(p EmissionParams) EmissionReport {
	return emission(FuelTypeCoal, p)
}

// FuelOilEmission applies the emission formula for fuel oil.
func FuelOilEmission(p EmissionParams) EmissionReport {
	return emission(FuelTypeFuelOil, p)
}

// GasEmission applies the emission formula for gas. Gas carries no ash, so a
// zero fly-ash or ash content is replaced by GasZeroAshSubstitute first.
func GasEmission(p EmissionParams) EmissionReport {
	if p.FlyAsh == 0 {
		p.FlyAsh = GasZeroAshSubstitute
	}
	if p.AshContent == 0 {
		p.AshContent = GasZeroAshSubstitute
	}
	return emission(FuelTypeGas, p)
}

func emission(fuel FuelType, p EmissionParams) EmissionReport {
	index := (math.Pow(10, 6) / p.LowerWorkingHeat) * p.FlyAsh *
		(p.AshContent / (100 - p.CombustibleLoss)) * (1 - p.CleaningEfficiency)
	gross := math.Pow(10, -6) * index * p.LowerWorkingHeat * p.Mass

	return EmissionReport{
		Fuel:           fuel,
		FuelName:       fuel.String(),
		EmissionIndex:  index,
		GrossParticles: gross,
	}
}
