package form

import (
	"strings"

	"energylab/internal/labs"
)

// Field names shared by the HTTP and CLI surfaces.
const (
	FieldHydrogen          = "hydrogen"
	FieldCarbon            = "carbon"
	FieldSulfur            = "sulfur"
	FieldNitrogen          = "nitrogen"
	FieldOxygen            = "oxygen"
	FieldMoisture          = "moisture"
	FieldAsh               = "ash"
	FieldVanadium          = "vanadium"
	FieldLowerHeatingValue = "lower_heating_value"

	FieldMass = "mass"

	FieldPower       = "power"
	FieldPerformance = "performance"
	FieldSunnyDays   = "sunny_days"
	FieldTariff      = "tariff"
	FieldEfficiency  = "efficiency"

	FieldVoltageFault = "voltage_fault"
	FieldImpedance    = "impedance"
	FieldCurrentType  = "current_type"

	FieldFailureRateSingle = "failure_rate_single"
	FieldRepairTimeSingle  = "repair_time_single"
	FieldFailureRateDouble = "failure_rate_double"
	FieldRepairTimeDouble  = "repair_time_double"
	FieldPowerLoss         = "power_loss"
	FieldOutageCost        = "outage_cost"

	FieldCosPhi              = "cos_phi"
	FieldVoltage             = "voltage"
	FieldQuantity            = "quantity"
	FieldUsageFactor         = "usage_factor"
	FieldReactivePowerFactor = "reactive_power_factor"
)

// FuelComposition decodes the fuel composition form.
func FuelComposition(v Values) labs.FuelCompositionParams {
	return labs.FuelCompositionParams{
		Hydrogen: v.Float(FieldHydrogen),
		Carbon:   v.Float(FieldCarbon),
		Sulfur:   v.Float(FieldSulfur),
		Nitrogen: v.Float(FieldNitrogen),
		Oxygen:   v.Float(FieldOxygen),
		Moisture: v.Float(FieldMoisture),
		Ash:      v.Float(FieldAsh),
	}
}

// FuelOil decodes the fuel oil form.
func FuelOil(v Values) labs.FuelOilParams {
	return labs.FuelOilParams{
		Hydrogen:          v.Float(FieldHydrogen),
		Carbon:            v.Float(FieldCarbon),
		Sulfur:            v.Float(FieldSulfur),
		Oxygen:            v.Float(FieldOxygen),
		Moisture:          v.Float(FieldMoisture),
		Ash:               v.Float(FieldAsh),
		Vanadium:          v.Float(FieldVanadium),
		LowerHeatingValue: v.Float(FieldLowerHeatingValue),
	}
}

// Mass decodes the burned mass of the emission forms.
func Mass(v Values) float64 {
	return v.Float(FieldMass)
}

// Solar decodes the solar profit form.
func Solar(v Values) labs.SolarParams {
	return labs.SolarParams{
		Power:       v.Float(FieldPower),
		Performance: v.Float(FieldPerformance),
		SunnyDays:   v.Int(FieldSunnyDays),
		Tariff:      v.Float(FieldTariff),
		Efficiency:  v.Float(FieldEfficiency),
	}
}

// FaultCurrent decodes the fault current form.
func FaultCurrent(v Values) labs.FaultCurrentParams {
	return labs.FaultCurrentParams{
		Voltage:   v.Float(FieldVoltageFault),
		Impedance: v.Float(FieldImpedance),
		Type:      CurrentType(v.Text(FieldCurrentType)),
	}
}

// CurrentType maps the selector text to a current type. An empty selector is
// the three-phase default; unrecognised text is CurrentTypeUnknown.
func CurrentType(s string) labs.CurrentType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "threephase", "three_phase", "three-phase":
		return labs.CurrentTypeThreePhase
	case "singlephase", "single_phase", "single-phase":
		return labs.CurrentTypeSinglePhase
	default:
		return labs.CurrentTypeUnknown
	}
}

// Reliability decodes the reliability form. Missing or unparsable fields stay
// nil.
func Reliability(v Values) labs.ReliabilityParams {
	return labs.ReliabilityParams{
		FailureRateSingle: v.OptionalFloat(FieldFailureRateSingle),
		RepairTimeSingle:  v.OptionalFloat(FieldRepairTimeSingle),
		FailureRateDouble: v.OptionalFloat(FieldFailureRateDouble),
		RepairTimeDouble:  v.OptionalFloat(FieldRepairTimeDouble),
		PowerLoss:         v.OptionalFloat(FieldPowerLoss),
		OutageCost:        v.OptionalFloat(FieldOutageCost),
	}
}

// Load decodes the electrical load form.
func Load(v Values) labs.LoadParams {
	return labs.LoadParams{
		Power:               v.Float(FieldPower),
		Efficiency:          v.Float(FieldEfficiency),
		CosPhi:              v.Float(FieldCosPhi),
		Voltage:             v.Float(FieldVoltage),
		Quantity:            v.Int(FieldQuantity),
		UsageFactor:         v.Float(FieldUsageFactor),
		ReactivePowerFactor: v.Float(FieldReactivePowerFactor),
	}
}
