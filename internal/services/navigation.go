package services

import (
	"context"
	"math"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

// GravitationalConstant in N(m/kg)^2.
const GravitationalConstant = 6.674e-11

type NavigationStatus string

const (
	NavigationArrived    NavigationStatus = "arrived"
	NavigationInProgress NavigationStatus = "in_progress"
	// NavigationBlocked - the power grant for the thrust was denied
	NavigationBlocked NavigationStatus = "resource_blocked"
)

// Navigator owns the kinematic state of the vehicle and advances it one
// explicit Euler step per call.
type Navigator struct {
	state    models.NavigationState
	arbiter  *ResourceArbiter
	thruster Thruster

	mass           float64
	thrust         float64
	wattsPerNewton float64
	cruiseSpeed    float64
	tolerance      float64
	approach       float64
}

func NewNavigator(cfg config.Mission, arbiter *ResourceArbiter, thruster Thruster) *Navigator {
	return &Navigator{
		state: models.NavigationState{
			Orientation: models.IdentityOrientation,
		},
		arbiter:        arbiter,
		thruster:       thruster,
		mass:           cfg.VehicleMass,
		thrust:         cfg.NavigationThrust,
		wattsPerNewton: cfg.WattsPerNewton,
		cruiseSpeed:    cfg.CruiseSpeed,
		tolerance:      cfg.ArrivalTolerance,
		approach:       cfg.ApproachDistance,
	}
}

// Advance moves the vehicle toward target. body, when not nil, adds its
// gravitational pull. A denied grant returns NavigationBlocked; a thrust fault
// is returned as the error.
func (n *Navigator) Advance(ctx context.Context, target models.Vector3D, dt float64, body *models.TargetBody) (NavigationStatus, error) {
	rel := target.Sub(n.state.Position)
	dist := rel.Magnitude()
	if dist < n.tolerance {
		n.state.Position = target
		n.state.Velocity = models.Vector3D{}
		return NavigationArrived, nil
	}

	dir := rel.Normalized()
	scale := 1.0
	if dist < n.approach {
		scale = dist / n.approach
	}
	maxThrust := n.thrust * scale

	// desired speed is capped by cruise speed, by what full thrust can still
	// brake over the remaining distance, and by half the distance per step
	desiredSpeed := math.Min(n.cruiseSpeed, dist/(2*dt))
	if n.mass > 0 {
		desiredSpeed = math.Min(desiredSpeed, math.Sqrt(2*(n.thrust/n.mass)*dist))
	}
	dv := dir.Scale(desiredSpeed).Sub(n.state.Velocity)
	magnitude := math.Min(maxThrust, dv.Magnitude()*n.mass/dt)
	thrustDir := dv.Normalized()

	watts := magnitude * n.wattsPerNewton
	grant, ok := n.arbiter.Acquire(watts)
	if !ok {
		return NavigationBlocked, nil
	}
	defer grant.Release()

	if magnitude > 0 {
		if err := n.thruster.ApplyThrust(ctx, thrustDir, magnitude); err != nil {
			return NavigationInProgress, err
		}
	}

	force := thrustDir.Scale(magnitude)
	if body != nil {
		force = force.Add(n.gravity(*body))
	}

	accel := force.Scale(1 / n.mass)
	velocity := n.state.Velocity.Add(accel.Scale(dt))
	next := n.state.Position.Add(velocity.Scale(dt))

	if crosses(n.state.Position, next, target, n.tolerance) {
		next = target
		velocity = models.Vector3D{}
	}

	n.state.Position = next
	n.state.Velocity = velocity
	return NavigationInProgress, nil
}

// gravity is the inverse-square pull of body, distance floored at 1.
func (n *Navigator) gravity(body models.TargetBody) models.Vector3D {
	rel := body.Position.Sub(n.state.Position)
	d := math.Max(rel.Magnitude(), 1)
	magnitude := GravitationalConstant * body.Mass * n.mass / (d * d)
	return rel.Normalized().Scale(magnitude)
}

// crosses reports whether the step from -> to passes the target or comes
// within tolerance of it.
func crosses(from, to, target models.Vector3D, tolerance float64) bool {
	if target.Sub(to).Dot(target.Sub(from)) <= 0 {
		return true
	}
	seg := to.Sub(from)
	l2 := seg.Dot(seg)
	if l2 == 0 {
		return false
	}
	t := target.Sub(from).Dot(seg) / l2
	t = math.Max(0, math.Min(1, t))
	closest := from.Add(seg.Scale(t))
	return closest.DistanceTo(target) < tolerance
}

func (n *Navigator) State() models.NavigationState {
	return n.state
}

// Restore replaces the kinematic state, used when loading a checkpoint.
func (n *Navigator) Restore(s models.NavigationState) {
	n.state = s
}

func (n *Navigator) Position() models.Vector3D {
	return n.state.Position
}
