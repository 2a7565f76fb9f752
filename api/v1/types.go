package v1

import "time"

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Target struct {
	Position        Vector  `json:"position"`
	Mass            float64 `json:"mass"`
	AngularVelocity Vector  `json:"angular_velocity"`
}

type Resources struct {
	ChargePercent      float64 `json:"charge_percent"`
	CurrentDrawWatts   float64 `json:"current_draw_watts"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	CapacityWatts      float64 `json:"capacity_watts"`
}

type Cargo struct {
	Kind     string  `json:"kind"`
	Quantity int     `json:"quantity"`
	Capacity int     `json:"capacity"`
	Refined  bool    `json:"refined"`
	Value    float64 `json:"value"`
}

// MissionStatus defines model for MissionStatus.
type MissionStatus struct {
	MissionId string    `json:"mission_id,omitempty"`
	Cycle     uint64    `json:"cycle"`
	State     string    `json:"state"`
	Position  Vector    `json:"position"`
	Velocity  Vector    `json:"velocity"`
	Target    Target    `json:"target"`
	Resources Resources `json:"resources"`
	Cargo     Cargo     `json:"cargo"`
	DrillWear float64   `json:"drill_wear"`
	Attached  bool      `json:"attached"`
	LastError string    `json:"last_error"`
	Healthy   bool      `json:"healthy"`
}

// StartMissionRequest defines body for StartMission.
type StartMissionRequest struct {
	Target *Vector  `json:"target" binding:"required"`
	Mass   *float64 `json:"mass"`
}

type Mission struct {
	Id          string     `json:"id"`
	Status      string     `json:"status"`
	Target      Target     `json:"target"`
	Delivered   int        `json:"delivered"`
	Value       float64    `json:"value"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// CommandRequest defines body for SendCommand.
type CommandRequest struct {
	Command string `json:"command" binding:"required"`
}

type CommandResponse struct {
	Command string `json:"command"`
	Queued  bool   `json:"queued"`
}

type ComponentHealth struct {
	Id     string  `json:"id"`
	Error  string  `json:"error"`
	Metric float64 `json:"metric"`
}

type Health struct {
	Healthy      bool              `json:"healthy"`
	PrimaryError string            `json:"primary_error"`
	Components   []ComponentHealth `json:"components"`
}

type Transition struct {
	MissionId string    `json:"mission_id"`
	Cycle     uint64    `json:"cycle"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

type TransitionList struct {
	Transitions []Transition `json:"transitions"`
}

// ListTransitionsParams defines parameters for ListTransitions.
type ListTransitionsParams struct {
	MissionId *string `form:"mission_id"`
	Limit     *int    `form:"limit"`
}
