package services

import (
	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

// ResourceArbiter tracks power charge, draw and thermal load and grants or
// denies power requests. It is not safe for concurrent use; the controller
// serializes every call.
type ResourceArbiter struct {
	budget          models.ResourceBudget
	minGrantCharge  float64
	drainPerWatt    float64
	dissipationRate float64
	criticalTemp    float64

	powerCritical   bool
	thermalOverload bool
	// sum of actual watts granted since the last CycleLoad call
	cycleLoad float64
}

func NewResourceArbiter(cfg config.Mission) *ResourceArbiter {
	efficiency := cfg.ConversionEfficiency
	if efficiency <= 0 || efficiency > 1 {
		efficiency = 1
	}
	return &ResourceArbiter{
		budget: models.ResourceBudget{
			ChargePercent:        clamp(cfg.InitialChargePercent, 0, 100),
			TemperatureCelsius:   cfg.AmbientTemperature,
			CapacityWatts:        cfg.CapacityWatts,
			ConversionEfficiency: efficiency,
		},
		minGrantCharge:  cfg.MinGrantChargePercent,
		drainPerWatt:    cfg.ChargeDrainPerWatt,
		dissipationRate: cfg.DissipationRate,
		criticalTemp:    cfg.CriticalTemperature,
	}
}

// RequestPower grants watts of output power if the draw stays within
// capacity and the charge is above the grant floor. A denial raises
// PowerCritical.
func (a *ResourceArbiter) RequestPower(watts float64) bool {
	if watts < 0 {
		return false
	}
	actual := watts / a.budget.ConversionEfficiency
	if a.budget.CurrentDrawWatts+actual > a.budget.CapacityWatts || a.budget.ChargePercent < a.minGrantCharge {
		a.powerCritical = true
		return false
	}

	a.budget.CurrentDrawWatts += actual
	a.budget.ChargePercent = clamp(a.budget.ChargePercent-actual*a.drainPerWatt, 0, 100)
	a.cycleLoad += actual
	a.powerCritical = false
	return true
}

// ReleasePower gives back a grant. Callers release exactly what they
// requested; the draw is floored at zero.
func (a *ResourceArbiter) ReleasePower(watts float64) {
	actual := watts / a.budget.ConversionEfficiency
	a.budget.CurrentDrawWatts -= actual
	if a.budget.CurrentDrawWatts < 0 {
		a.budget.CurrentDrawWatts = 0
	}
}

// Acquire is the scoped form of RequestPower.
func (a *ResourceArbiter) Acquire(watts float64) (*Grant, bool) {
	if !a.RequestPower(watts) {
		return nil, false
	}
	return &Grant{arbiter: a, watts: watts}, true
}

// Recharge adds charge, capped at 100 percent.
func (a *ResourceArbiter) Recharge(amount float64) {
	if amount <= 0 {
		return
	}
	a.budget.ChargePercent = clamp(a.budget.ChargePercent+amount, 0, 100)
}

// RegulateTemperature heats the vehicle by heatGenerated, then dissipates at
// the fixed rate without dropping below ambient.
func (a *ResourceArbiter) RegulateTemperature(ambient, heatGenerated float64) {
	t := a.budget.TemperatureCelsius
	if heatGenerated > 0 {
		t += heatGenerated
	}
	t -= a.dissipationRate
	if t < ambient {
		t = ambient
	}
	a.budget.TemperatureCelsius = t
	a.thermalOverload = t > a.criticalTemp
}

// CoolDown forces the temperature to ambient.
func (a *ResourceArbiter) CoolDown(ambient float64) {
	a.budget.TemperatureCelsius = ambient
	a.thermalOverload = false
}

// CycleLoad returns the actual watts granted since the previous call.
func (a *ResourceArbiter) CycleLoad() float64 {
	load := a.cycleLoad
	a.cycleLoad = 0
	return load
}

// ClearPowerCritical drops the PowerCritical flag if the grant floor holds.
func (a *ResourceArbiter) ClearPowerCritical() bool {
	if a.budget.ChargePercent < a.minGrantCharge {
		return false
	}
	a.powerCritical = false
	return true
}

func (a *ResourceArbiter) Budget() models.ResourceBudget {
	return a.budget
}

func (a *ResourceArbiter) SetCharge(percent float64) {
	a.budget.ChargePercent = clamp(percent, 0, 100)
}

func (a *ResourceArbiter) PowerCritical() bool   { return a.powerCritical }
func (a *ResourceArbiter) ThermalOverload() bool { return a.thermalOverload }

// TemperatureFraction is the temperature relative to the critical threshold.
func (a *ResourceArbiter) TemperatureFraction() float64 {
	if a.criticalTemp <= 0 {
		return 0
	}
	return a.budget.TemperatureCelsius / a.criticalTemp
}

// Grant is a scoped power allocation. Release is idempotent.
type Grant struct {
	arbiter  *ResourceArbiter
	watts    float64
	released bool
}

func (g *Grant) Watts() float64 { return g.watts }

func (g *Grant) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.arbiter.ReleasePower(g.watts)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
