package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

var ErrLogicConstraintViolation = errors.New("logic constraint violation")

type Option func(*Controller)

// WithObserver adds an observer next to the default log observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, o)
	}
}

// Controller is the mission state machine. Step runs one cycle and holds the
// lock for its whole duration, so cycles never overlap.
type Controller struct {
	cfg         config.Mission
	p           *platform
	arbiter     *ResourceArbiter
	health      *HealthAggregator
	nav         *Navigator
	homeostasis *Homeostasis
	repair      *RepairProtocol
	observers   Observers

	mu    sync.Mutex
	state models.MissionState
	// previous is the state to resume after AwaitingCommand
	previous models.MissionState
	// interrupted is the state left when entering Repairing
	interrupted models.MissionState
	cycle       uint64
	lastError   models.ErrorKind

	mission     *models.Mission
	target      models.TargetBody
	home        models.Vector3D
	cargo       models.MissionCargo
	attached    bool
	site        *models.Vector3D
	material    *models.Material
	attachPoint *models.Vector3D
	wearRate    float64
	commands    []models.Command
}

func NewController(cfg config.Mission, sensing Sensing, actuation Actuation, comms Communications, opts ...Option) *Controller {
	arbiter := NewResourceArbiter(cfg)
	health := NewHealthAggregator(NewHealthThresholds(cfg))
	p := &platform{
		sensing:               sensing,
		actuation:             actuation,
		comms:                 comms,
		arbiter:               arbiter,
		health:                health,
		maxWear:               cfg.MaxDrillWear,
		minPropulsionFraction: cfg.MinPropulsionFraction,
	}

	c := &Controller{
		cfg:         cfg,
		p:           p,
		arbiter:     arbiter,
		health:      health,
		nav:         NewNavigator(cfg, arbiter, actuation),
		homeostasis: NewHomeostasis(cfg),
		repair:      newRepairProtocol(cfg, p),
		observers:   Observers{NewLogObserver()},
		state:       models.MissionStateIdle,
		lastError:   models.ErrorNone,
		cargo:       models.NewMissionCargo(cfg.CargoCapacity),
		wearRate:    cfg.DrillWearPerSite,
	}
	for _, opt := range opts {
		opt(c)
	}
	p.refresh()

	return c
}

// StartMission sets the target body and leaves Idle. It is the only way out
// of Idle.
func (c *Controller) StartMission(ctx context.Context, target models.Vector3D, mass float64) (models.Mission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.MissionStateIdle {
		return models.Mission{}, fmt.Errorf("%w: cannot start a mission in state %s", ErrLogicConstraintViolation, c.state)
	}
	if mass < 0 {
		return models.Mission{}, fmt.Errorf("invalid target mass %f", mass)
	}

	c.target = models.TargetBody{Position: target, Mass: mass}
	c.home = c.nav.Position()
	c.wearRate = c.cfg.DrillWearPerSite
	c.clearSiteContext()
	c.previous = ""
	c.interrupted = ""
	c.mission = &models.Mission{
		ID:        uuid.NewString(),
		Target:    c.target,
		Status:    models.MissionStatusActive,
		StartedAt: time.Now(),
	}
	c.observers.OnMission(ctx, *c.mission)
	c.transition(ctx, models.MissionStatePreFlightCheck, "mission started")

	return *c.mission, nil
}

// Step runs one control cycle and returns the state at its end.
func (c *Controller) Step(ctx context.Context) models.MissionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	// resting states only refresh health
	if c.state.IsTerminal() {
		c.p.refresh()
		c.lastError = c.health.PrimaryError()
		return c.state
	}

	c.cycle++
	c.arbiter.Recharge(c.cfg.PassiveRecharge)
	c.p.refresh()
	c.lastError = c.health.PrimaryError()

	defer c.endCycle(ctx)

	if !c.homeostasis.Skips(c.state) {
		d := c.homeostasis.Evaluate(c.vitals(ctx))
		if d.Recharge > 0 {
			zap.S().Named("homeostasis").Debugw("accelerated recharge", "amount", d.Recharge, "reason", d.Reason)
			c.arbiter.Recharge(d.Recharge)
		}
		if d.Preempt {
			c.transition(ctx, d.Next, fmt.Sprintf("%s: %s", d.Rule, d.Reason))
			c.runPreempted(ctx)
			return c.state
		}
	}

	if cmd, ok := c.nextCommand(ctx); ok {
		c.execute(ctx, cmd)
		return c.state
	}

	next, reason := c.dispatch(ctx)
	if next != "" {
		c.transition(ctx, next, reason)
	}

	return c.state
}

// runPreempted runs the handler of the state homeostasis moved to. Fatal
// states are halted by transition itself.
func (c *Controller) runPreempted(ctx context.Context) {
	var next models.MissionState
	var reason string
	switch c.state {
	case models.MissionStateRepairing:
		next, reason = c.repairing(ctx)
	case models.MissionStateStabilizing:
		next, reason = c.stabilizing(ctx)
	default:
		return
	}
	if next != "" {
		c.transition(ctx, next, reason)
	}
}

func (c *Controller) vitals(ctx context.Context) Vitals {
	spin := c.target.AngularVelocity
	if w, err := c.p.sensing.AngularVelocity(ctx); err == nil {
		spin = w
	} else {
		zap.S().Named("mission").Debugw("angular velocity reading failed", "error", err)
	}

	return Vitals{
		State:              c.state,
		ChargePercent:      c.arbiter.Budget().ChargePercent,
		DrillWear:          c.p.wear,
		PropulsionFraction: c.p.propulsionFraction(),
		AngularVelocity:    spin,
		Attached:           c.attached,
		Healthy:            c.health.IsHealthy(),
		PrimaryError:       c.health.PrimaryError(),
	}
}

// endCycle regulates temperature with the heat of the power granted this
// cycle and sends telemetry on the configured interval.
func (c *Controller) endCycle(ctx context.Context) {
	heat := c.arbiter.CycleLoad() * c.cfg.HeatPerWatt
	c.arbiter.RegulateTemperature(c.cfg.AmbientTemperature, heat)

	if c.cfg.TelemetryInterval > 0 && c.cycle%uint64(c.cfg.TelemetryInterval) == 0 {
		c.sendTelemetry(ctx)
	}
}

func (c *Controller) transition(ctx context.Context, to models.MissionState, reason string) {
	from := c.state
	if from == to {
		return
	}

	if to == models.MissionStateRepairing {
		if from == models.MissionStateAwaitingCommand {
			c.interrupted = c.previous
		} else {
			c.interrupted = from
		}
	}

	c.state = to
	c.observers.OnTransition(ctx, models.TransitionEvent{
		MissionID: c.missionID(),
		Cycle:     c.cycle,
		From:      from,
		To:        to,
		Reason:    reason,
		At:        time.Now(),
	})

	if to.IsFatal() {
		c.halt(ctx, to)
	}
}

// halt closes the mission as aborted when a fatal state is entered.
func (c *Controller) halt(ctx context.Context, state models.MissionState) {
	zap.S().Named("mission").Warnw("mission halted", "state", state, "error", c.lastError)
	c.finishMission(ctx, models.MissionStatusAborted)
}

func (c *Controller) finishMission(ctx context.Context, status models.MissionStatusType) {
	if c.mission == nil || c.mission.Status != models.MissionStatusActive {
		return
	}
	now := time.Now()
	c.mission.Status = status
	c.mission.CompletedAt = &now
	c.observers.OnMission(ctx, *c.mission)
}

// fault records a collaborator failure and returns its kind.
func (c *Controller) fault(ctx context.Context, component string, err error) models.ErrorKind {
	kind := models.KindOf(err)
	var f *models.FaultError
	if errors.As(err, &f) && f.Component != "" {
		component = f.Component
	}
	c.note(ctx, kind, component, err.Error())
	return kind
}

// note records a condition that is not a collaborator error.
func (c *Controller) note(ctx context.Context, kind models.ErrorKind, component, message string) {
	c.lastError = kind
	c.observers.OnFault(ctx, models.FaultEvent{
		MissionID: c.missionID(),
		Cycle:     c.cycle,
		State:     c.state,
		Kind:      kind,
		Component: component,
		Message:   message,
	})
}

func (c *Controller) telemetry() models.Telemetry {
	nav := c.nav.State()
	budget := c.arbiter.Budget()
	return models.Telemetry{
		MissionID:     c.missionID(),
		Cycle:         c.cycle,
		State:         c.state,
		Position:      nav.Position,
		Velocity:      nav.Velocity,
		ChargePercent: budget.ChargePercent,
		DrawWatts:     budget.CurrentDrawWatts,
		Temperature:   budget.TemperatureCelsius,
		DrillWear:     float64(c.p.wear),
		Cargo:         c.cargo.Quantity,
		Error:         c.lastError,
	}
}

func (c *Controller) sendTelemetry(ctx context.Context) {
	frame := c.telemetry()
	c.observers.OnTelemetry(ctx, frame)
	if err := c.p.comms.Send(ctx, frame.String()); err != nil {
		c.fault(ctx, models.ComponentComms, err)
	}
}

func (c *Controller) missionID() string {
	if c.mission == nil {
		return ""
	}
	return c.mission.ID
}

func (c *Controller) clearSiteContext() {
	c.site = nil
	c.material = nil
	c.attachPoint = nil
}

// Reset is the supervisory action that leaves a fatal state.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsFatal() {
		return fmt.Errorf("%w: reset is only allowed from a fatal state, current state %s", ErrLogicConstraintViolation, c.state)
	}
	c.clearSiteContext()
	c.previous = ""
	c.interrupted = ""
	c.transition(ctx, models.MissionStateIdle, "supervisory reset")
	return nil
}

// Checkpoint captures the controller state.
func (c *Controller) Checkpoint() models.Checkpoint {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.Checkpoint{
		MissionID:     c.missionID(),
		State:         c.state,
		Navigation:    c.nav.State(),
		Target:        c.target,
		Cargo:         c.cargo,
		DrillWear:     c.p.wear,
		Attached:      c.attached,
		ChargePercent: c.arbiter.Budget().ChargePercent,
	}
}

// Restore loads a checkpoint. The controller must be resting.
func (c *Controller) Restore(ctx context.Context, cp models.Checkpoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsTerminal() {
		return fmt.Errorf("%w: restore is only allowed while resting, current state %s", ErrLogicConstraintViolation, c.state)
	}
	if !cp.State.Valid() {
		return fmt.Errorf("invalid checkpoint state: %q", cp.State)
	}
	if cp.Cargo.Capacity <= 0 {
		cp.Cargo.Capacity = c.cfg.CargoCapacity
	}
	if cp.Cargo.Quantity > cp.Cargo.Capacity {
		return fmt.Errorf("%w: checkpoint holds %d units for capacity %d", models.ErrCargoOverflow, cp.Cargo.Quantity, cp.Cargo.Capacity)
	}

	c.nav.Restore(cp.Navigation)
	c.target = cp.Target
	c.cargo = cp.Cargo
	c.p.wear = cp.DrillWear
	c.attached = cp.Attached
	c.arbiter.SetCharge(cp.ChargePercent)
	c.clearSiteContext()
	c.previous = ""
	c.interrupted = ""
	c.wearRate = c.cfg.DrillWearPerSite

	if cp.MissionID != "" {
		c.mission = &models.Mission{
			ID:        cp.MissionID,
			Target:    cp.Target,
			Status:    models.MissionStatusActive,
			StartedAt: time.Now(),
		}
	}
	c.p.refresh()
	c.transition(ctx, cp.State, "restored from checkpoint")
	return nil
}

// EnqueueCommand queues an operator command. It runs at the next cycle.
func (c *Controller) EnqueueCommand(raw string) (models.Command, error) {
	cmd, err := models.ParseCommand(raw)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands = append(c.commands, cmd)
	return cmd, nil
}

func (c *Controller) State() models.MissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Status() models.MissionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.MissionStatus{
		MissionID:  c.missionID(),
		Cycle:      c.cycle,
		State:      c.state,
		Navigation: c.nav.State(),
		Target:     c.target,
		Resources:  c.arbiter.Budget(),
		Cargo:      c.cargo,
		DrillWear:  c.p.wear,
		Attached:   c.attached,
		LastError:  c.lastError,
		Healthy:    c.health.IsHealthy(),
	}
}

// Health returns the component table of the last refresh.
func (c *Controller) Health() models.HealthStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.health.Status()
}

// Mission returns the current or last mission, if any.
func (c *Controller) Mission() (models.Mission, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mission == nil {
		return models.Mission{}, false
	}
	return *c.mission, true
}
