package models

// Quaternion is carried for telemetry only; orientation is not controlled.
type Quaternion struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IdentityOrientation is the orientation at construction.
var IdentityOrientation = Quaternion{W: 1}

// NavigationState is the kinematic state of the vehicle.
type NavigationState struct {
	Position    Vector3D   `json:"position"`
	Velocity    Vector3D   `json:"velocity"`
	Orientation Quaternion `json:"orientation"`
}

// TargetBody holds the orbital parameters of the body being mined.
type TargetBody struct {
	Position        Vector3D `json:"position"`
	Mass            float64  `json:"mass"`
	AngularVelocity Vector3D `json:"angular_velocity"`
}

// Obstacle is a proximity reading relative to the vehicle.
type Obstacle struct {
	Direction Vector3D
	Distance  float64
}
