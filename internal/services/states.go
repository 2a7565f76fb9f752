package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/models"
)

// stay keeps the current state for the next cycle.
const stay models.MissionState = ""

// dispatch runs the handler of the current state. An empty next state means
// stay.
func (c *Controller) dispatch(ctx context.Context) (models.MissionState, string) {
	switch c.state {
	case models.MissionStatePreFlightCheck:
		return c.preFlightCheck(ctx)
	case models.MissionStateNavigatingToTarget:
		return c.navigatingToTarget(ctx)
	case models.MissionStateApproaching:
		return c.approaching(ctx)
	case models.MissionStateAttaching:
		return c.attaching(ctx)
	case models.MissionStateStabilizing:
		return c.stabilizing(ctx)
	case models.MissionStateScanning:
		return c.scanning(ctx)
	case models.MissionStateSelectingSite:
		return c.selectingSite(ctx)
	case models.MissionStateAnalyzingMaterial:
		return c.analyzingMaterial(ctx)
	case models.MissionStateDrilling:
		return c.drilling(ctx)
	case models.MissionStateExtracting:
		return c.extracting(ctx)
	case models.MissionStateProcessing:
		return c.processing(ctx)
	case models.MissionStateDelivering:
		return c.delivering(ctx)
	case models.MissionStateReturning:
		return c.returning(ctx)
	case models.MissionStateUnloading:
		return c.unloading(ctx)
	case models.MissionStateRepairing:
		return c.repairing(ctx)
	case models.MissionStateAwaitingCommand:
		return c.awaitingCommand()
	default:
		return stay, ""
	}
}

func (c *Controller) preFlightCheck(ctx context.Context) (models.MissionState, string) {
	if err := c.p.activate(ctx); err != nil {
		c.fault(ctx, "", err)
		return models.MissionStateEmergencyAbort, "collaborator activation failed"
	}

	grant, ok := c.arbiter.Acquire(c.cfg.PreflightWatts)
	if !ok {
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "pre-flight power grant denied")
		return models.MissionStateRepairing, "pre-flight power grant denied"
	}
	grant.Release()

	if err := c.p.comms.Send(ctx, c.telemetry().String()); err != nil {
		c.fault(ctx, models.ComponentComms, err)
		return models.MissionStateRepairing, "communications round trip failed"
	}

	c.p.refresh()
	if !c.health.IsHealthy() {
		return models.MissionStateRepairing, fmt.Sprintf("pre-flight health check failed: %s", c.health.PrimaryError())
	}

	return models.MissionStateNavigatingToTarget, "pre-flight check passed"
}

// offsetPoint is the point at distance d from the target body on the line
// toward the vehicle.
func (c *Controller) offsetPoint(d float64) (models.Vector3D, float64) {
	pos := c.nav.Position()
	toVehicle := pos.Sub(c.target.Position)
	dist := toVehicle.Magnitude()
	if dist == 0 {
		return pos, 0
	}
	return c.target.Position.Add(toVehicle.Normalized().Scale(d)), dist
}

// advance moves toward point and maps the navigation result to a transition.
func (c *Controller) advance(ctx context.Context, point models.Vector3D, body *models.TargetBody, arrived models.MissionState) (models.MissionState, string) {
	status, err := c.nav.Advance(ctx, point, c.cfg.TimeStep, body)
	if err != nil {
		c.fault(ctx, models.ComponentPropulsion, err)
		return models.MissionStateRepairing, "thrust failed"
	}

	switch status {
	case NavigationArrived:
		return arrived, "arrived"
	case NavigationBlocked:
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "navigation power grant denied")
		return models.MissionStateRepairing, "navigation resource blocked"
	default:
		return stay, ""
	}
}

func (c *Controller) navigatingToTarget(ctx context.Context) (models.MissionState, string) {
	standoff, dist := c.offsetPoint(c.cfg.StandoffDistance)
	if dist <= c.cfg.StandoffDistance+c.cfg.ArrivalTolerance {
		return models.MissionStateApproaching, "within standoff distance"
	}
	return c.advance(ctx, standoff, &c.target, models.MissionStateApproaching)
}

func (c *Controller) returning(ctx context.Context) (models.MissionState, string) {
	return c.advance(ctx, c.home, nil, models.MissionStateUnloading)
}

func (c *Controller) approaching(ctx context.Context) (models.MissionState, string) {
	obstacles, err := c.p.sensing.Proximity(ctx)
	if err != nil {
		c.fault(ctx, models.ComponentLidar, err)
	}
	for _, o := range obstacles {
		if o.Distance >= c.cfg.AvoidanceRange {
			continue
		}
		if next, reason := c.avoid(ctx, o); next != stay {
			return next, reason
		}
	}

	point, dist := c.offsetPoint(c.cfg.ApproachDistance)
	if dist <= c.cfg.ApproachDistance+c.cfg.ArrivalTolerance {
		return models.MissionStateAttaching, "within approach distance"
	}
	return c.advance(ctx, point, &c.target, models.MissionStateAttaching)
}

// avoid fires a short thrust burst away from an obstacle.
func (c *Controller) avoid(ctx context.Context, o models.Obstacle) (models.MissionState, string) {
	grant, ok := c.arbiter.Acquire(c.cfg.AvoidanceThrust * c.cfg.WattsPerNewton)
	if !ok {
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "avoidance power grant denied")
		return models.MissionStateRepairing, "avoidance resource blocked"
	}
	defer grant.Release()

	zap.S().Named("mission").Debugw("obstacle avoidance burst", "distance", o.Distance)
	if err := c.p.actuation.ApplyThrust(ctx, o.Direction.Scale(-1).Normalized(), c.cfg.AvoidanceThrust); err != nil {
		c.fault(ctx, models.ComponentPropulsion, err)
		return models.MissionStateRepairing, "avoidance thrust failed"
	}
	return stay, ""
}

func (c *Controller) attaching(ctx context.Context) (models.MissionState, string) {
	if c.attachPoint == nil {
		points, err := c.p.sensing.AttachmentPoints(ctx, c.target, c.nav.Position())
		if err != nil {
			c.fault(ctx, models.ComponentLidar, err)
			return models.MissionStateApproaching, "attachment point search failed"
		}
		if len(points) == 0 {
			c.note(ctx, models.ErrorAttachmentFailure, models.ComponentArm, "no attachment points found")
			return models.MissionStateApproaching, "no attachment points"
		}
		chosen := closest(c.nav.Position(), points)
		c.attachPoint = &chosen
	}

	next, reason := c.advance(ctx, *c.attachPoint, &c.target, models.MissionStateAttaching)
	switch next {
	case stay:
		return stay, ""
	case models.MissionStateAttaching:
	default:
		c.attachPoint = nil
		return next, reason
	}

	point := *c.attachPoint
	c.attachPoint = nil
	if err := c.p.actuation.Attach(ctx, point); err != nil {
		c.fault(ctx, models.ComponentArm, err)
		return models.MissionStateApproaching, "grab failed"
	}
	c.attached = true
	return models.MissionStateStabilizing, "attached"
}

func closest(from models.Vector3D, points []models.Vector3D) models.Vector3D {
	best := points[0]
	bestDist := from.DistanceTo(best)
	for _, p := range points[1:] {
		if d := from.DistanceTo(p); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func (c *Controller) stabilizing(ctx context.Context) (models.MissionState, string) {
	w, err := c.p.sensing.AngularVelocity(ctx)
	if err != nil {
		c.fault(ctx, models.ComponentIMU, err)
		return stay, ""
	}
	c.target.AngularVelocity = w

	if w.Magnitude() <= c.cfg.StabilityThreshold {
		return models.MissionStateScanning, "target stable"
	}

	grant, ok := c.arbiter.Acquire(c.cfg.StabilizationThrust * c.cfg.WattsPerNewton)
	if !ok {
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "stabilization power grant denied")
		return models.MissionStateRepairing, "stabilization resource blocked"
	}
	defer grant.Release()

	if err := c.p.actuation.ApplyThrust(ctx, w.Scale(-1).Normalized(), c.cfg.StabilizationThrust); err != nil {
		c.fault(ctx, models.ComponentPropulsion, err)
		return models.MissionStateRepairing, "counter thrust failed"
	}
	return stay, ""
}

func (c *Controller) scanning(ctx context.Context) (models.MissionState, string) {
	points, err := c.p.sensing.Scan(ctx)
	if err != nil {
		c.fault(ctx, models.ComponentLidar, err)
		return stay, ""
	}

	var (
		best      models.Vector3D
		bestScore = -1.0
	)
	for _, p := range points {
		score, err := c.p.sensing.Integrity(ctx, p)
		if err != nil {
			zap.S().Named("mission").Debugw("integrity reading failed", "point", p, "error", err)
			continue
		}
		if score >= c.cfg.IntegrityThreshold && score > bestScore {
			best, bestScore = p, score
		}
	}

	if bestScore < 0 {
		c.note(ctx, models.ErrorNoSuitableSite, models.ComponentLidar, fmt.Sprintf("%d candidates, none above integrity %.2f", len(points), c.cfg.IntegrityThreshold))
		return stay, ""
	}

	c.site = &best
	c.material = nil
	return models.MissionStateSelectingSite, fmt.Sprintf("site found with integrity %.2f", bestScore)
}

func (c *Controller) selectingSite(ctx context.Context) (models.MissionState, string) {
	if c.site == nil {
		return models.MissionStateScanning, "no site selected"
	}
	score, err := c.p.sensing.Integrity(ctx, *c.site)
	if err != nil {
		c.fault(ctx, models.ComponentLidar, err)
		c.site = nil
		return models.MissionStateScanning, "site validation failed"
	}
	if score < c.cfg.IntegrityThreshold {
		c.note(ctx, models.ErrorStructuralIntegrityCompromised, models.ComponentLidar, fmt.Sprintf("site integrity %.2f", score))
		c.site = nil
		return models.MissionStateScanning, "site integrity below threshold"
	}
	rng, err := c.p.sensing.RangeTo(ctx, *c.site)
	if err != nil {
		c.fault(ctx, models.ComponentLidar, err)
		c.site = nil
		return models.MissionStateScanning, "site ranging failed"
	}
	return models.MissionStateAnalyzingMaterial, fmt.Sprintf("site validated at range %.2f", rng)
}

func (c *Controller) analyzingMaterial(ctx context.Context) (models.MissionState, string) {
	if c.site == nil {
		return models.MissionStateScanning, "no site selected"
	}
	m, err := c.p.sensing.AnalyzeMaterial(ctx, *c.site)
	if err != nil {
		c.fault(ctx, models.ComponentLidar, err)
		c.site = nil
		return models.MissionStateScanning, "material analysis failed"
	}
	if m.Kind == "" || m.Kind == models.MaterialUnknown || m.Density <= 0 || m.Yield <= 0 {
		c.site = nil
		return models.MissionStateScanning, "material analysis inconclusive"
	}
	c.material = &m
	return models.MissionStateDrilling, fmt.Sprintf("material %s", m.Kind)
}

func (c *Controller) drilling(ctx context.Context) (models.MissionState, string) {
	if c.p.wear.Critical(c.cfg.MaxDrillWear) {
		c.note(ctx, models.ErrorDrillWearCritical, models.ComponentDrill, fmt.Sprintf("wear %.2f", c.p.wear))
		return models.MissionStateRepairing, "drill wear critical"
	}
	if c.site == nil || c.material == nil {
		return models.MissionStateScanning, "no analyzed site"
	}

	grant, ok := c.arbiter.Acquire(c.cfg.DrillWatts)
	if !ok {
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "drill power grant denied")
		return models.MissionStateRepairing, "drill resource blocked"
	}
	defer grant.Release()

	if err := c.p.actuation.Drill(ctx, *c.site, c.cfg.DrillDepth, *c.material); err != nil {
		c.fault(ctx, models.ComponentDrill, err)
		return models.MissionStateRepairing, "drilling failed"
	}
	c.p.wear = c.p.wear.Add(c.wearRate)
	return models.MissionStateExtracting, "drilled"
}

// chunkSize is inversely related to density, at least one unit.
func (c *Controller) chunkSize(density float64) int {
	size := c.cfg.BaseChunk
	if density > 0 {
		size = c.cfg.BaseChunk * c.cfg.ReferenceDensity / density
	}
	return max(int(math.Round(size)), 1)
}

func (c *Controller) extracting(ctx context.Context) (models.MissionState, string) {
	if c.material == nil {
		return models.MissionStateScanning, "no analyzed site"
	}

	grant, ok := c.arbiter.Acquire(c.cfg.ExtractWatts)
	if !ok {
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "extraction power grant denied")
		return models.MissionStateRepairing, "extraction resource blocked"
	}
	defer grant.Release()

	budget := min(c.material.Yield, c.cfg.ExtractionBudget)
	chunk := c.chunkSize(c.material.Density)
	extracted := 0
	for extracted < budget && !c.cargo.IsFull() {
		qty := min(chunk, c.cargo.Remaining(), budget-extracted)
		if err := c.p.actuation.LoadCargo(ctx, c.material.Kind, qty); err != nil {
			c.fault(ctx, models.ComponentConveyor, err)
			return models.MissionStateRepairing, "cargo load failed"
		}
		if err := c.cargo.Load(c.material.Kind, qty); err != nil {
			c.note(ctx, models.ErrorBufferOverflow, models.ComponentConveyor, err.Error())
			return models.MissionStateRepairing, "cargo buffer overflow"
		}
		extracted += qty
	}
	c.material.Yield -= extracted

	if c.cargo.IsFull() {
		return models.MissionStateProcessing, fmt.Sprintf("cargo full after %d units", extracted)
	}

	c.note(ctx, models.ErrorResourceDepletion, models.ComponentConveyor, fmt.Sprintf("site exhausted after %d units", extracted))
	c.site = nil
	return models.MissionStateScanning, "site exhausted"
}

func (c *Controller) processing(ctx context.Context) (models.MissionState, string) {
	if c.cargo.IsEmpty() {
		return models.MissionStateScanning, "nothing to process"
	}

	grant, ok := c.arbiter.Acquire(c.cfg.RefineWatts)
	if !ok {
		c.note(ctx, models.ErrorPowerCritical, models.ComponentPower, "refinery power grant denied")
		return models.MissionStateRepairing, "refinery resource blocked"
	}
	defer grant.Release()

	if err := c.p.actuation.Refine(ctx, c.cargo.Kind, c.cargo.Quantity); err != nil {
		c.fault(ctx, models.ComponentRefinery, err)
		return models.MissionStateRepairing, "refining failed"
	}

	unitValue := 1.0
	if c.material != nil && c.material.UnitValue > 0 {
		unitValue = c.material.UnitValue
	}
	c.cargo.Refine(unitValue, c.cfg.RefineMultiplier)
	return models.MissionStateDelivering, fmt.Sprintf("refined %d units", c.cargo.Quantity)
}

func (c *Controller) delivering(ctx context.Context) (models.MissionState, string) {
	if c.attached {
		if err := c.p.actuation.Detach(ctx); err != nil {
			c.fault(ctx, models.ComponentArm, err)
			return models.MissionStateRepairing, "release failed"
		}
		c.attached = false
	}
	c.clearSiteContext()
	return models.MissionStateReturning, "released from target"
}

func (c *Controller) unloading(ctx context.Context) (models.MissionState, string) {
	if _, err := c.p.actuation.UnloadCargo(ctx); err != nil {
		c.fault(ctx, models.ComponentConveyor, err)
		return models.MissionStateRepairing, "unload failed"
	}

	value := c.cargo.Value
	delivered := c.cargo.Clear()
	if c.mission != nil {
		c.mission.Delivered += delivered
		c.mission.Value += value
	}
	c.finishMission(ctx, models.MissionStatusCompleted)
	return models.MissionStateIdle, fmt.Sprintf("unloaded %d units", delivered)
}

func (c *Controller) repairing(ctx context.Context) (models.MissionState, string) {
	res := c.repair.Run(ctx, c.interrupted)
	c.lastError = c.health.PrimaryError()
	return res.Next, res.Reason
}

func (c *Controller) awaitingCommand() (models.MissionState, string) {
	if c.previous == "" || !c.previous.Valid() || c.previous == models.MissionStateAwaitingCommand {
		return stay, ""
	}
	return c.previous, "command handled"
}
