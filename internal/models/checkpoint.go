package models

// Checkpoint is the controller state captured at a transition boundary.
type Checkpoint struct {
	MissionID     string          `json:"mission_id"`
	State         MissionState    `json:"state"`
	Navigation    NavigationState `json:"navigation"`
	Target        TargetBody      `json:"target"`
	Cargo         MissionCargo    `json:"cargo"`
	DrillWear     DrillWear       `json:"drill_wear"`
	Attached      bool            `json:"attached"`
	ChargePercent float64         `json:"charge_percent"`
}

// MissionStatus is the observable snapshot of the controller.
type MissionStatus struct {
	MissionID  string
	Cycle      uint64
	State      MissionState
	Navigation NavigationState
	Target     TargetBody
	Resources  ResourceBudget
	Cargo      MissionCargo
	DrillWear  DrillWear
	Attached   bool
	LastError  ErrorKind
	Healthy    bool
}
