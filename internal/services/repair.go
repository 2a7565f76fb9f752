package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

type RepairAction string

const (
	RepairReplaceDrillBit RepairAction = "replace_drill_bit"
	RepairRecharge        RepairAction = "aggressive_recharge"
	RepairCoolDown        RepairAction = "cool_down"
	RepairRestoreUnits    RepairAction = "restore_units"
	RepairRecalibrate     RepairAction = "recalibrate_sensors"
	RepairReactivateLink  RepairAction = "reactivate_link"
)

// RepairResult is the outcome of one repair pass.
type RepairResult struct {
	Actions []RepairAction
	Healthy bool
	Next    models.MissionState
	Reason  string
}

// RepairProtocol applies every matching corrective action once, re-checks
// health and picks the next state. It never loops within a cycle.
type RepairProtocol struct {
	p *platform

	aggressiveRecharge  float64
	maintenanceFraction float64
	minGrantCharge      float64
	ambient             float64
	policy              string
}

func newRepairProtocol(cfg config.Mission, p *platform) *RepairProtocol {
	return &RepairProtocol{
		p:                   p,
		aggressiveRecharge:  cfg.AggressiveRecharge,
		maintenanceFraction: cfg.MaintenanceWearFraction,
		minGrantCharge:      cfg.MinGrantChargePercent,
		ambient:             cfg.AmbientTemperature,
		policy:              cfg.RecoveryPolicy,
	}
}

// Run performs one repair pass. interrupted is the state active before the
// vehicle entered Repairing.
func (r *RepairProtocol) Run(ctx context.Context, interrupted models.MissionState) RepairResult {
	h := r.p.health
	primary := h.PrimaryError()
	var actions []RepairAction

	if primary == models.ErrorDrillWearCritical || float64(r.p.wear) >= r.maintenanceFraction*r.p.maxWear {
		r.p.wear = 0
		actions = append(actions, RepairReplaceDrillBit)
	}

	if h.HasError(models.ErrorPowerCritical) || r.p.arbiter.Budget().ChargePercent < r.minGrantCharge {
		r.p.arbiter.Recharge(r.aggressiveRecharge)
		if !r.p.arbiter.ClearPowerCritical() {
			zap.S().Named("repair").Warnw("charge still below grant floor after recharge",
				"charge", r.p.arbiter.Budget().ChargePercent)
		}
		actions = append(actions, RepairRecharge)
	}

	if h.HasError(models.ErrorThermalOverload) {
		r.p.arbiter.CoolDown(r.ambient)
		actions = append(actions, RepairCoolDown)
	}

	if h.HasError(models.ErrorActuatorFailure) || r.p.propulsionFraction() < r.p.minPropulsionFraction {
		if n, err := r.p.actuation.RestoreUnits(ctx); err != nil {
			zap.S().Named("repair").Warnw("failed to restore units", "error", err)
		} else {
			zap.S().Named("repair").Debugw("restored units", "count", n)
			actions = append(actions, RepairRestoreUnits)
		}
	}

	if h.HasError(models.ErrorSensorFailure) || h.HasError(models.ErrorNavigationError) {
		if err := r.p.sensing.Calibrate(ctx); err != nil {
			zap.S().Named("repair").Warnw("sensor recalibration failed", "error", err)
		} else {
			actions = append(actions, RepairRecalibrate)
		}
	}

	if h.HasError(models.ErrorCommunicationLost) {
		if err := r.p.comms.Activate(ctx); err != nil {
			zap.S().Named("repair").Warnw("link reactivation failed", "error", err)
		} else {
			actions = append(actions, RepairReactivateLink)
		}
	}

	r.p.refresh()

	result := RepairResult{Actions: actions, Healthy: h.IsHealthy()}
	switch {
	case !result.Healthy:
		result.Next = models.MissionStateEmergencyAbort
		result.Reason = fmt.Sprintf("still unhealthy after repair: %s", h.PrimaryError())
	case len(actions) == 0:
		result.Next = r.recoveryState(interrupted)
		result.Reason = "healthy, no repair needed"
	default:
		result.Next = r.recoveryState(interrupted)
		result.Reason = fmt.Sprintf("repaired: %s", joinActions(actions))
	}
	return result
}

// recoveryState is Scanning unless the resume policy is set and the
// interrupted state can be resumed.
func (r *RepairProtocol) recoveryState(interrupted models.MissionState) models.MissionState {
	if r.policy != config.RecoveryResume {
		return models.MissionStateScanning
	}
	if !interrupted.Valid() || interrupted.IsTerminal() || interrupted == models.MissionStateRepairing {
		return models.MissionStateScanning
	}
	return interrupted
}

func joinActions(actions []RepairAction) string {
	s := make([]string, 0, len(actions))
	for _, a := range actions {
		s = append(s, string(a))
	}
	return strings.Join(s, ",")
}
