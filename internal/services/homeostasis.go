package services

import (
	"fmt"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

type HomeostasisRule string

const (
	RuleNone                  HomeostasisRule = ""
	RulePreventiveMaintenance HomeostasisRule = "preventive_maintenance"
	RulePowerFloor            HomeostasisRule = "power_floor"
	RuleAcceleratedRecharge   HomeostasisRule = "accelerated_recharge"
	RuleNoPropulsion          HomeostasisRule = "no_propulsion"
	RuleTargetInstability     HomeostasisRule = "target_instability"
	RuleSystemicFault         HomeostasisRule = "systemic_fault"
)

// Vitals is what homeostasis sees of the vehicle at the start of a cycle.
type Vitals struct {
	State              models.MissionState
	ChargePercent      float64
	DrillWear          models.DrillWear
	PropulsionFraction float64
	AngularVelocity    models.Vector3D
	Attached           bool
	Healthy            bool
	PrimaryError       models.ErrorKind
}

// Decision is the outcome of one homeostasis pass. At most one transition is
// returned; Recharge is applied regardless of the transition.
type Decision struct {
	Rule     HomeostasisRule
	Preempt  bool
	Next     models.MissionState
	Reason   string
	Recharge float64
}

// Homeostasis is the proactive correction layer run before the state
// machine dispatch.
type Homeostasis struct {
	maxWear             float64
	maintenanceFraction float64
	hibernateCharge     float64
	lowCharge           float64
	acceleratedRecharge float64
	stabilityThreshold  float64
	instabilityFactor   float64
}

func NewHomeostasis(cfg config.Mission) *Homeostasis {
	return &Homeostasis{
		maxWear:             cfg.MaxDrillWear,
		maintenanceFraction: cfg.MaintenanceWearFraction,
		hibernateCharge:     cfg.HibernateChargePercent,
		lowCharge:           cfg.LowChargePercent,
		acceleratedRecharge: cfg.AcceleratedRecharge,
		stabilityThreshold:  cfg.StabilityThreshold,
		instabilityFactor:   cfg.InstabilityFactor,
	}
}

// Skips reports whether homeostasis does not run in state s.
func (h *Homeostasis) Skips(s models.MissionState) bool {
	return s == models.MissionStateRepairing || s.IsTerminal()
}

// Evaluate checks the rules in priority order; the first rule producing a
// transition wins.
func (h *Homeostasis) Evaluate(v Vitals) Decision {
	var d Decision
	if h.Skips(v.State) {
		return d
	}

	// 1. Worn drill while looking for a site: service it before drilling.
	if float64(v.DrillWear) >= h.maintenanceFraction*h.maxWear && isSiteSelection(v.State) {
		return preempt(d, RulePreventiveMaintenance, models.MissionStateRepairing,
			fmt.Sprintf("drill wear %.2f at or above maintenance level %.2f", v.DrillWear, h.maintenanceFraction*h.maxWear))
	}

	// 2. Hard power floor.
	if v.ChargePercent < h.hibernateCharge {
		return preempt(d, RulePowerFloor, models.MissionStateHibernating,
			fmt.Sprintf("charge %.2f%% below hibernation floor %.2f%%", v.ChargePercent, h.hibernateCharge))
	}

	// 3. Low power in transit: recharge in place, no transition.
	if v.ChargePercent < h.lowCharge && isTransit(v.State) {
		d.Rule = RuleAcceleratedRecharge
		d.Recharge = h.acceleratedRecharge
		d.Reason = fmt.Sprintf("charge %.2f%% below %.2f%% in transit", v.ChargePercent, h.lowCharge)
	}

	// 4. No propulsion left while it is needed.
	if v.PropulsionFraction == 0 && (v.State == models.MissionStateNavigatingToTarget || v.State == models.MissionStateApproaching) {
		return preempt(d, RuleNoPropulsion, models.MissionStateEmergencyAbort, "no operational propulsion units")
	}

	// 5. Target body spinning too fast.
	if limit := h.instabilityFactor * h.stabilityThreshold; v.AngularVelocity.Magnitude() > limit {
		reason := fmt.Sprintf("target angular velocity %.4f above %.4f", v.AngularVelocity.Magnitude(), limit)
		if !v.Attached {
			return preempt(d, RuleTargetInstability, models.MissionStateEmergencyAbort, reason)
		}
		if v.State != models.MissionStateStabilizing {
			return preempt(d, RuleTargetInstability, models.MissionStateStabilizing, reason)
		}
	}

	// 6. Anything else unhealthy goes to repair.
	if !v.Healthy {
		return preempt(d, RuleSystemicFault, models.MissionStateRepairing,
			fmt.Sprintf("system unhealthy: %s", v.PrimaryError))
	}

	return d
}

func preempt(d Decision, rule HomeostasisRule, next models.MissionState, reason string) Decision {
	d.Rule = rule
	d.Preempt = true
	d.Next = next
	if d.Reason != "" {
		reason = d.Reason + "; " + reason
	}
	d.Reason = reason
	return d
}

func isSiteSelection(s models.MissionState) bool {
	switch s {
	case models.MissionStateScanning, models.MissionStateSelectingSite, models.MissionStateAnalyzingMaterial:
		return true
	default:
		return false
	}
}

func isTransit(s models.MissionState) bool {
	return s == models.MissionStateNavigatingToTarget || s == models.MissionStateReturning
}
