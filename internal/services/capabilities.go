package services

import (
	"context"

	"github.com/tupyy/areomh-controller/internal/models"
)

// Component is implemented by every hardware collaborator.
type Component interface {
	// Activate powers up or reactivates the component.
	Activate(ctx context.Context) error
	// Health returns the current status of every sub-component.
	Health() []models.ComponentHealth
}

// Sensing covers lidar, IMU, proximity and spectrometer readings. Every call
// may fail with a SensorFailure fault instead of a value.
type Sensing interface {
	Component
	Scan(ctx context.Context) ([]models.Vector3D, error)
	RangeTo(ctx context.Context, point models.Vector3D) (float64, error)
	Integrity(ctx context.Context, point models.Vector3D) (float64, error)
	AngularVelocity(ctx context.Context) (models.Vector3D, error)
	Proximity(ctx context.Context) ([]models.Obstacle, error)
	// AttachmentPoints returns grab points on body reachable from the given position.
	AttachmentPoints(ctx context.Context, body models.TargetBody, from models.Vector3D) ([]models.Vector3D, error)
	AnalyzeMaterial(ctx context.Context, point models.Vector3D) (models.Material, error)
	Calibrate(ctx context.Context) error
}

// Thruster is the part of actuation used by navigation.
type Thruster interface {
	ApplyThrust(ctx context.Context, direction models.Vector3D, magnitude float64) error
}

// Actuation covers thrusters, manipulator arm, conveyor and refinery. Every
// call may fail with an ActuatorFailure fault.
type Actuation interface {
	Component
	Thruster
	Drill(ctx context.Context, point models.Vector3D, depth float64, material models.Material) error
	LoadCargo(ctx context.Context, kind models.MaterialKind, qty int) error
	UnloadCargo(ctx context.Context) (int, error)
	Refine(ctx context.Context, kind models.MaterialKind, qty int) error
	Attach(ctx context.Context, point models.Vector3D) error
	Detach(ctx context.Context) error
	// OperationalUnits returns the number of working and installed propulsion units.
	OperationalUnits() (operational int, total int)
	// RestoreUnits re-enables disabled redundant units and returns how many came back.
	RestoreUnits(ctx context.Context) (int, error)
}

// Communications is the link to the operator. Link quality is external; the
// controller only sees success or a CommunicationLost fault.
type Communications interface {
	Component
	Send(ctx context.Context, telemetry string) error
	// ReceiveCommand returns the next raw command, if any.
	ReceiveCommand(ctx context.Context) (string, bool, error)
}
