package models

// Well-known component ids reported by the controller itself. Collaborators
// report their own components under any other id.
const (
	ComponentPower      = "power"
	ComponentThermal    = "thermal"
	ComponentDrill      = "drill"
	ComponentPropulsion = "propulsion"
	ComponentIMU        = "imu"
	ComponentLidar      = "lidar"
	ComponentArm        = "arm"
	ComponentConveyor   = "conveyor"
	ComponentRefinery   = "refinery"
	ComponentComms      = "comms"
)

// ComponentHealth is one row of the health table. Metric is normalized to
// [0,1] and its meaning depends on the component (charge fraction, wear,
// operational-unit fraction, temperature fraction).
type ComponentHealth struct {
	ID     string    `json:"id"`
	Error  ErrorKind `json:"error"`
	Metric float64   `json:"metric"`
}

func (c ComponentHealth) Healthy() bool {
	return c.Error == "" || c.Error == ErrorNone
}

// HealthStatus is a read-only view over one refreshed health table.
type HealthStatus struct {
	Healthy      bool
	PrimaryError ErrorKind
	Components   []ComponentHealth
}
