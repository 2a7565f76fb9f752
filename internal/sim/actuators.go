package sim

import (
	"context"
	"fmt"

	"github.com/tupyy/areomh-controller/internal/models"
)

// Actuators are the thrusters, manipulator arm, conveyor and refinery.
type Actuators struct {
	w *World
}

func (a *Actuators) Activate(ctx context.Context) error {
	return nil
}

func (a *Actuators) Health() []models.ComponentHealth {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()
	return a.w.report(models.ComponentArm, models.ComponentConveyor, models.ComponentRefinery)
}

func (a *Actuators) operate(component, msg string) error {
	if err := a.w.check(component); err != nil {
		return err
	}
	if a.w.roll(a.w.cfg.FaultRate) {
		return a.w.fail(component, models.ErrorActuatorFailure, msg)
	}
	return nil
}

// ApplyThrust fires the working units. A random unit may burn out; the call
// fails only when none is left. Thrust while attached damps the body spin.
func (a *Actuators) ApplyThrust(ctx context.Context, direction models.Vector3D, magnitude float64) error {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if a.w.roll(a.w.cfg.FaultRate) {
		a.w.thrusters[a.w.rng.IntN(len(a.w.thrusters))] = false
	}
	if op, _ := a.operational(); op == 0 {
		return models.NewFault(models.ErrorActuatorFailure, models.ComponentPropulsion, "no operational thruster")
	}
	if a.w.attached && magnitude > 0 {
		a.w.spin = a.w.spin.Scale(spinDamping)
	}
	return nil
}

func (a *Actuators) Drill(ctx context.Context, point models.Vector3D, depth float64, material models.Material) error {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if !a.w.attached {
		return models.NewFault(models.ErrorActuatorFailure, models.ComponentArm, "drilling while detached")
	}
	return a.operate(models.ComponentArm, "drill head jammed")
}

func (a *Actuators) LoadCargo(ctx context.Context, kind models.MaterialKind, qty int) error {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if err := a.operate(models.ComponentConveyor, "conveyor belt stalled"); err != nil {
		return err
	}
	a.w.cargo += qty
	return nil
}

func (a *Actuators) UnloadCargo(ctx context.Context) (int, error) {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if err := a.operate(models.ComponentConveyor, "unload chute blocked"); err != nil {
		return 0, err
	}
	qty := a.w.cargo
	a.w.cargo = 0
	return qty, nil
}

func (a *Actuators) Refine(ctx context.Context, kind models.MaterialKind, qty int) error {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if qty > a.w.cargo {
		return models.NewFault(models.ErrorActuatorFailure, models.ComponentRefinery, fmt.Sprintf("refining %d units with %d loaded", qty, a.w.cargo))
	}
	return a.operate(models.ComponentRefinery, "refinery overheated")
}

func (a *Actuators) Attach(ctx context.Context, point models.Vector3D) error {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if err := a.operate(models.ComponentArm, "grapple slipped"); err != nil {
		return err
	}
	a.w.attached = true
	return nil
}

func (a *Actuators) Detach(ctx context.Context) error {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	if err := a.operate(models.ComponentArm, "grapple stuck"); err != nil {
		return err
	}
	a.w.attached = false
	return nil
}

func (a *Actuators) OperationalUnits() (int, int) {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()
	return a.operational()
}

func (a *Actuators) operational() (int, int) {
	op := 0
	for _, ok := range a.w.thrusters {
		if ok {
			op++
		}
	}
	return op, len(a.w.thrusters)
}

// RestoreUnits brings every thruster back and clears actuator faults.
func (a *Actuators) RestoreUnits(ctx context.Context) (int, error) {
	a.w.mu.Lock()
	defer a.w.mu.Unlock()

	restored := 0
	for i, ok := range a.w.thrusters {
		if !ok {
			a.w.thrusters[i] = true
			restored++
		}
	}
	for _, id := range []string{models.ComponentArm, models.ComponentConveyor, models.ComponentRefinery} {
		if _, ok := a.w.faults[id]; ok {
			delete(a.w.faults, id)
			restored++
		}
	}
	return restored, nil
}
