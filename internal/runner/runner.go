// Package runner ties the form decoders, calculators and report renderers
// together under stable calculator names.
package runner

import (
	"errors"
	"fmt"

	"energylab/internal/form"
	"energylab/internal/labs"
	"energylab/internal/report"
)

// Calculator names.
const (
	FuelComposition = "fuel-composition"
	FuelOil         = "fuel-oil"
	EmissionCoal    = "emission-coal"
	EmissionFuelOil = "emission-fuel-oil"
	EmissionGas     = "emission-gas"
	SolarProfit     = "solar-profit"
	FaultCurrent    = "fault-current"
	Reliability     = "reliability"
	ElectricalLoad  = "electrical-load"
)

// ErrUnknownCalculator is returned for names outside the catalogue.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Outcome is a computed (or rejected) calculation ready for display.
type Outcome struct {
	Calculator string `json:"calculator"`
	Result     any    `json:"result,omitempty"`
	Text       string `json:"report"`

	// LossText is the second display block of the reliability calculator.
	LossText string `json:"loss_report,omitempty"`

	// Headline is the main figure of the result, used for metrics.
	Headline float64 `json:"-"`
}

// Calculator describes one entry of the catalogue.
type Calculator struct {
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Fields []string `json:"fields"`

	run func(form.Values) (Outcome, error)
}

var catalogue = []Calculator{
	{
		Name:  FuelComposition,
		Title: "Fuel composition and heating value",
		Fields: []string{
			form.FieldHydrogen, form.FieldCarbon, form.FieldSulfur, form.FieldNitrogen,
			form.FieldOxygen, form.FieldMoisture, form.FieldAsh,
		},
		run: runFuelComposition,
	},
	{
		Name:  FuelOil,
		Title: "Fuel oil raw composition",
		Fields: []string{
			form.FieldHydrogen, form.FieldCarbon, form.FieldSulfur, form.FieldOxygen,
			form.FieldMoisture, form.FieldAsh, form.FieldVanadium, form.FieldLowerHeatingValue,
		},
		run: runFuelOil,
	},
	{
		Name:   EmissionCoal,
		Title:  "Coal particulate emissions",
		Fields: []string{form.FieldMass},
		run:    emissionRunner(labs.FuelTypeCoal),
	},
	{
		Name:   EmissionFuelOil,
		Title:  "Fuel oil particulate emissions",
		Fields: []string{form.FieldMass},
		run:    emissionRunner(labs.FuelTypeFuelOil),
	},
	{
		Name:   EmissionGas,
		Title:  "Gas particulate emissions",
		Fields: []string{form.FieldMass},
		run:    emissionRunner(labs.FuelTypeGas),
	},
	{
		Name:  SolarProfit,
		Title: "Solar plant profit",
		Fields: []string{
			form.FieldPower, form.FieldPerformance, form.FieldSunnyDays,
			form.FieldTariff, form.FieldEfficiency,
		},
		run: runSolarProfit,
	},
	{
		Name:   FaultCurrent,
		Title:  "Short-circuit current",
		Fields: []string{form.FieldVoltageFault, form.FieldImpedance, form.FieldCurrentType},
		run:    runFaultCurrent,
	},
	{
		Name:  Reliability,
		Title: "Supply reliability and outage loss",
		Fields: []string{
			form.FieldFailureRateSingle, form.FieldRepairTimeSingle,
			form.FieldFailureRateDouble, form.FieldRepairTimeDouble,
			form.FieldPowerLoss, form.FieldOutageCost,
		},
		run: runReliability,
	},
	{
		Name:  ElectricalLoad,
		Title: "Electrical load",
		Fields: []string{
			form.FieldPower, form.FieldEfficiency, form.FieldCosPhi, form.FieldVoltage,
			form.FieldQuantity, form.FieldUsageFactor, form.FieldReactivePowerFactor,
		},
		run: runElectricalLoad,
	},
}

// Catalogue returns every calculator in display order.
func Catalogue() []Calculator {
	out := make([]Calculator, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns the calculator names in display order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for _, c := range catalogue {
		names = append(names, c.Name)
	}
	return names
}

// Lookup finds a calculator by name.
func Lookup(name string) (Calculator, bool) {
	for _, c := range catalogue {
		if c.Name == name {
			return c, true
		}
	}
	return Calculator{}, false
}

// Run decodes values, runs the named calculator and renders the result. When
// the calculator rejects its input the returned outcome still carries the
// rejection text.
func Run(name string, values form.Values) (Outcome, error) {
	c, ok := Lookup(name)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownCalculator, name)
	}

	out, err := c.run(values)
	out.Calculator = c.Name
	return out, err
}

// Kind classifies a calculation error for logs, metrics and API responses.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, labs.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, labs.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, labs.ErrInconsistentComposition):
		return "inconsistent_composition"
	case errors.Is(err, labs.ErrUnknownFuel):
		return "unknown_fuel"
	case errors.Is(err, ErrUnknownCalculator):
		return "unknown_calculator"
	default:
		return "internal"
	}
}

// IsRejection reports whether err is a validation outcome rather than a
// failure to run.
func IsRejection(err error) bool {
	switch Kind(err) {
	case "missing_input", "invalid_range", "inconsistent_composition":
		return true
	}
	return false
}

func runFuelComposition(v form.Values) (Outcome, error) {
	r, err := labs.FuelComposition(form.FuelComposition(v))
	if err != nil {
		return Outcome{Text: report.FuelCompositionRejection(err)}, err
	}
	return Outcome{Result: r, Text: report.FuelComposition(r), Headline: r.LowerHeatingValue}, nil
}

func runFuelOil(v form.Values) (Outcome, error) {
	r := labs.FuelOil(form.FuelOil(v))
	return Outcome{Result: r, Text: report.FuelOil(r), Headline: r.LowerHeatingValue}, nil
}

func emissionRunner(fuel labs.FuelType) func(form.Values) (Outcome, error) {
	return func(v form.Values) (Outcome, error) {
		r, err := labs.Emission(fuel, form.Mass(v))
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Result: r, Text: report.Emission(r), Headline: r.EmissionIndex}, nil
	}
}

func runSolarProfit(v form.Values) (Outcome, error) {
	r, err := labs.SolarProfit(form.Solar(v))
	if err != nil {
		return Outcome{Text: report.InvalidInput}, err
	}
	return Outcome{Result: r, Text: report.SolarProfit(r), Headline: r.AnnualProfit}, nil
}

func runFaultCurrent(v form.Values) (Outcome, error) {
	r, err := labs.FaultCurrent(form.FaultCurrent(v))
	if err != nil {
		return Outcome{Text: report.InvalidInput}, err
	}
	return Outcome{Result: r, Text: report.FaultCurrent(r), Headline: r.Current}, nil
}

func runReliability(v form.Values) (Outcome, error) {
	r, err := labs.ReliabilityLoss(form.Reliability(v))
	if err != nil {
		return Outcome{Text: report.InvalidInput}, err
	}
	reliability, loss := report.Reliability(r)
	return Outcome{Result: r, Text: reliability, LossText: loss, Headline: r.Single.Reliability}, nil
}

func runElectricalLoad(v form.Values) (Outcome, error) {
	r, err := labs.ElectricalLoad(form.Load(v))
	if err != nil {
		return Outcome{Text: report.InvalidInput}, err
	}
	return Outcome{Result: r, Text: report.ElectricalLoad(r), Headline: r.FullPower}, nil
}
