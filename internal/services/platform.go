package services

import (
	"context"

	"github.com/tupyy/areomh-controller/internal/models"
)

// platform groups the hardware collaborators with the state the controller
// derives from them each cycle.
type platform struct {
	sensing   Sensing
	actuation Actuation
	comms     Communications
	arbiter   *ResourceArbiter
	health    *HealthAggregator

	wear                  models.DrillWear
	maxWear               float64
	minPropulsionFraction float64
}

// propulsionFraction is the fraction of propulsion units still working.
func (p *platform) propulsionFraction() float64 {
	op, total := p.actuation.OperationalUnits()
	if total <= 0 {
		return 0
	}
	return float64(op) / float64(total)
}

// reports builds the health table rows in their fixed order.
func (p *platform) reports() []models.ComponentHealth {
	budget := p.arbiter.Budget()

	power := models.ComponentHealth{ID: models.ComponentPower, Error: models.ErrorNone, Metric: budget.ChargeFraction()}
	if p.arbiter.PowerCritical() {
		power.Error = models.ErrorPowerCritical
	}

	thermal := models.ComponentHealth{ID: models.ComponentThermal, Error: models.ErrorNone, Metric: p.arbiter.TemperatureFraction()}
	if p.arbiter.ThermalOverload() {
		thermal.Error = models.ErrorThermalOverload
	}

	drill := models.ComponentHealth{ID: models.ComponentDrill, Error: models.ErrorNone, Metric: float64(p.wear)}
	if p.wear.Critical(p.maxWear) {
		drill.Error = models.ErrorDrillWearCritical
	}

	propulsion := models.ComponentHealth{ID: models.ComponentPropulsion, Error: models.ErrorNone, Metric: p.propulsionFraction()}
	if propulsion.Metric < p.minPropulsionFraction {
		propulsion.Error = models.ErrorActuatorFailure
	}

	reports := []models.ComponentHealth{power, thermal, drill, propulsion}
	reports = append(reports, p.sensing.Health()...)
	reports = append(reports, p.actuation.Health()...)
	reports = append(reports, p.comms.Health()...)
	return reports
}

func (p *platform) refresh() {
	p.health.Refresh(p.reports())
}

// activate powers up every collaborator, stopping at the first failure.
func (p *platform) activate(ctx context.Context) error {
	for _, c := range []Component{p.sensing, p.actuation, p.comms} {
		if err := c.Activate(ctx); err != nil {
			return err
		}
	}
	return nil
}
