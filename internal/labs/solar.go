package labs

// SolarParams describes a solar plant with a generation forecasting system.
type SolarParams struct {
	Power       float64 `json:"power"`       // kW
	Performance float64 `json:"performance"` // hours per day
	SunnyDays   int     `json:"sunny_days"`
	Tariff      float64 `json:"tariff"`     // currency per kWh
	Efficiency  float64 `json:"efficiency"` // forecast accuracy, percent
}

// SolarReport is the yearly production (kWh) and profit.
type SolarReport struct {
	AnnualProduction float64 `json:"annual_production"`
	AnnualProfit     float64 `json:"annual_profit"`
}

// SolarProfit estimates the yearly profit of a solar plant. Every input must
// be positive.
func SolarProfit(p SolarParams) (SolarReport, error) {
	if p.Power <= 0 || p.Performance <= 0 || p.SunnyDays <= 0 || p.Tariff <= 0 || p.Efficiency <= 0 {
		return SolarReport{}, ErrInvalidRange
	}

	effective := p.Efficiency / 100
	production := p.Power * p.Performance * float64(p.SunnyDays) * effective

	return SolarReport{
		AnnualProduction: production,
		AnnualProfit:     production * p.Tariff,
	}, nil
}
