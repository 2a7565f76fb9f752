package models

import (
	"fmt"
	"strings"
)

// Telemetry is one status frame. String renders the flat key-value form sent
// over the communications link; it is an output convenience, not a contract.
type Telemetry struct {
	MissionID     string
	Cycle         uint64
	State         MissionState
	Position      Vector3D
	Velocity      Vector3D
	ChargePercent float64
	DrawWatts     float64
	Temperature   float64
	DrillWear     float64
	Cargo         int
	Error         ErrorKind
}

func (t Telemetry) String() string {
	fields := []string{
		"MISSION:" + t.MissionID,
		fmt.Sprintf("CYCLE:%d", t.Cycle),
		"STATE:" + strings.ToUpper(string(t.State)),
		fmt.Sprintf("POS:%.2f,%.2f,%.2f", t.Position.X, t.Position.Y, t.Position.Z),
		fmt.Sprintf("VEL:%.3f,%.3f,%.3f", t.Velocity.X, t.Velocity.Y, t.Velocity.Z),
		fmt.Sprintf("CHARGE:%.2f", t.ChargePercent),
		fmt.Sprintf("DRAW:%.1f", t.DrawWatts),
		fmt.Sprintf("TEMP:%.1f", t.Temperature),
		fmt.Sprintf("WEAR:%.3f", t.DrillWear),
		fmt.Sprintf("CARGO:%d", t.Cargo),
	}
	errKind := t.Error
	if errKind == "" {
		errKind = ErrorNone
	}
	fields = append(fields, "ERR:"+string(errKind))
	return strings.Join(fields, ";")
}
