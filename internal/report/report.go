// Package report renders calculator results as the display text shown to
// lab users. Labels, units and precision are part of the output contract.
package report

import (
	"errors"
	"fmt"
	"strings"

	"energylab/internal/labs"
)

// Rejection texts.
const (
	// InvalidInput is shown when a calculator rejects its inputs.
	InvalidInput = "Будь ласка, введіть коректні значення."

	// MissingComponents is shown when a fuel composition has empty components.
	MissingComponents = "Please enter all components."
)

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

// FuelComposition renders the dry and combustible breakdown.
func FuelComposition(r labs.FuelCompositionReport) string {
	d, c := r.Dry, r.Combustible
	return lines(
		"Information:",
		"Coefficient of transition to dry mass: "+Fixed(r.DryCoefficient, 3),
		"Coefficient of transition to combustible mass: "+Fixed(r.CombustibleCoefficient, 3),
		fmt.Sprintf("Dry mass composition: H=%s%%, C=%s%%, S=%s%%, N=%s%%, O=%s%%, A=%s%%",
			Fixed(d.Hydrogen, 3), Fixed(d.Carbon, 3), Fixed(d.Sulfur, 3),
			Fixed(d.Nitrogen, 3), Fixed(d.Oxygen, 3), Fixed(d.Ash, 3)),
		"TestDry: "+Plain(r.DryTotal)+"%",
		fmt.Sprintf("Combustible mass composition: H=%s%%, C=%s%%, S=%s%%, N=%s%%, O=%s%%",
			Fixed(c.Hydrogen, 3), Fixed(c.Carbon, 3), Fixed(c.Sulfur, 3),
			Fixed(c.Nitrogen, 3), Fixed(c.Oxygen, 3)),
		"TestCombustible: "+Plain(r.CombustibleTotal)+"%",
		"Lower heating value: "+Fixed(r.LowerHeatingValue, 3)+" MJ/kg",
		"Lower heating value for dry matter: "+Fixed(r.LowerHeatingValueDry, 3)+" MJ/kg",
		"Lower heating value for combustible matter: "+Fixed(r.LowerHeatingValueCombustible, 3)+" MJ/kg",
	)
}

// FuelCompositionRejection renders a fuel composition validation error.
func FuelCompositionRejection(err error) string {
	var inconsistent *labs.InconsistentCompositionError
	switch {
	case errors.As(err, &inconsistent):
		return fmt.Sprintf("Incorrect or inaccurate components. TestDry: %s%% TestCombustible: %s%%. Please try again.",
			Fixed(inconsistent.DryTotal, 3), Fixed(inconsistent.CombustibleTotal, 3))
	case errors.Is(err, labs.ErrMissingInput):
		return MissingComponents
	default:
		return InvalidInput
	}
}

// FuelOil renders the raw-basis fuel oil composition.
func FuelOil(r labs.FuelOilReport) string {
	return lines(
		"Calculations:",
		"Hydrogen (raw): "+Fixed(r.Hydrogen, 2)+"%",
		"Carbon (raw): "+Fixed(r.Carbon, 2)+"%",
		"Sulfur (raw): "+Fixed(r.Sulfur, 2)+"%",
		"Oxygen (raw): "+Fixed(r.Oxygen, 2)+"%",
		"Vanadium: "+Plain(r.Vanadium)+" mg/kg",
		"Lower Heating Value: "+Plain(r.LowerHeatingValue)+" MJ/kg",
	)
}

// Emission renders the emission index and gross particles of one fuel.
func Emission(r labs.EmissionReport) string {
	label := emissionLabel(r.Fuel)
	return lines(
		label+" Emission Index: "+Fixed(r.EmissionIndex, 3),
		label+" Gross Solid Particles: "+Fixed(r.GrossParticles, 3),
	)
}

func emissionLabel(f labs.FuelType) string {
	switch f {
	case labs.FuelTypeCoal:
		return "Coal"
	case labs.FuelTypeFuelOil:
		return "Fuel Oil"
	case labs.FuelTypeGas:
		return "Gas"
	default:
		return f.String()
	}
}

// SolarProfit renders the annual profit.
func SolarProfit(r labs.SolarReport) string {
	return "Щорічний прибуток: " + Fixed(r.AnnualProfit, 2) + " грн"
}

// FaultCurrent renders the short-circuit current.
func FaultCurrent(r labs.FaultCurrentReport) string {
	return "Розрахунковий струм короткого замикання: " + Fixed(r.Current, 2) + " А"
}

// Reliability renders the reliability and loss texts.
func Reliability(r labs.ReliabilityReport) (reliability, loss string) {
	reliability = lines(
		"Надійність одноколової системи: "+Fixed(r.Single.Reliability, 2)+" (безвідмовні години)",
		"Надійність двоколової системи: "+Fixed(r.Double.Reliability, 2)+" (безвідмовні години)",
	)
	loss = lines(
		"Збитки одноколової системи: "+Fixed(r.Single.Loss, 2)+" грн",
		"Збитки двоколової системи: "+Fixed(r.Double.Loss, 2)+" грн",
	)
	return reliability, loss
}

// ElectricalLoad renders the design loads.
func ElectricalLoad(r labs.LoadReport) string {
	return lines(
		"Загальна номінальна потужність: "+Fixed(r.TotalPower, 2)+" кВт",
		"Розрахункове активне навантаження: "+Fixed(r.CalculatedActiveLoad, 2)+" кВт",
		"Розрахунковий струм: "+Fixed(r.Current, 2)+" А",
		"Розрахункове реактивне навантаження: "+Fixed(r.ReactiveLoad, 2)+" квар",
		"Повна потужність: "+Fixed(r.FullPower, 2)+" кВА",
	)
}
