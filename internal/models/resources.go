package models

// ResourceBudget is the power and thermal state owned by the resource arbiter.
type ResourceBudget struct {
	// ChargePercent in [0,100]
	ChargePercent float64 `json:"charge_percent"`
	// CurrentDrawWatts never exceeds CapacityWatts
	CurrentDrawWatts     float64 `json:"current_draw_watts"`
	TemperatureCelsius   float64 `json:"temperature_celsius"`
	CapacityWatts        float64 `json:"capacity_watts"`
	ConversionEfficiency float64 `json:"conversion_efficiency"`
}

// ChargeFraction returns the charge normalized to [0,1].
func (b ResourceBudget) ChargeFraction() float64 {
	return b.ChargePercent / 100
}
