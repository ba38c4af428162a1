package model

// EnergyEstimate holds the results of a solar energy production calculation.
type EnergyEstimate struct {
	DailyEnergyKWh   float64 `json:"daily_energy_kwh"`   // Total daily output across all panels
	AnnualEnergyKWh  float64 `json:"annual_energy_kwh"`  // Daily output x 365, no leap-year adjustment
	TotalPanelAreaM2 float64 `json:"total_panel_area_m2"` // Combined collector area
}

// daysPerYear is fixed at 365; annual figures deliberately ignore leap years.
const daysPerYear = 365

// EstimateEnergy computes solar energy production for a panel array.
// efficiency and performanceRatio are fractions in (0,1]; dailyIrradianceKWhM2
// is the site's average daily irradiance in kWh/m²/day. Input range checking
// is the caller's responsibility (see ValidateEnergyInputs).
func EstimateEnergy(numPanels int, panelAreaM2, efficiency, performanceRatio, dailyIrradianceKWhM2 float64) EnergyEstimate {
	if numPanels == 0 {
		return EnergyEstimate{}
	}

	dailyPerPanel := dailyIrradianceKWhM2 * panelAreaM2 * efficiency * performanceRatio
	daily := dailyPerPanel * float64(numPanels)

	return EnergyEstimate{
		DailyEnergyKWh:   daily,
		AnnualEnergyKWh:  daily * daysPerYear,
		TotalPanelAreaM2: float64(numPanels) * panelAreaM2,
	}
}
