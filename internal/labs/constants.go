package labs

// Fuel composition validation.
const (
	// CompositionTolerance is the accepted deviation of a checksum from 100%.
	CompositionTolerance = 1.0

	// MoistureHeatCorrection is the per-percent moisture term added to the lower
	// heating value before rescaling to the dry and combustible bases.
	MoistureHeatCorrection = 0.025
)

// Emission reference data. Heat values are MJ/kg, ash values are percent.
const (
	// GasCleaningEfficiency is shared by all fuel types.
	GasCleaningEfficiency = 0.985

	CoalLowerWorkingHeat = 20.47
	CoalFlyAsh           = 0.8
	CoalAshContent       = 25.2
	CoalCombustibleLoss  = 1.5

	FuelOilLowerWorkingHeat = 39.48
	FuelOilFlyAsh           = 1.0
	FuelOilAshContent       = 0.15
	FuelOilCombustibleLoss  = 0.0

	GasLowerWorkingHeat = 33.08
	GasFlyAsh           = 0.0
	GasAshContent       = 0.0
	GasCombustibleLoss  = 0.0

	// GasZeroAshSubstitute replaces a zero fly-ash or ash content for gas so the
	// emission index does not collapse to zero.
	GasZeroAshSubstitute = 0.01
)
