package models

import (
	"fmt"
	"time"
)

// MissionState is the single active state of the mission controller.
type MissionState string

const (
	MissionStateIdle               MissionState = "idle"
	MissionStatePreFlightCheck     MissionState = "pre_flight_check"
	MissionStateNavigatingToTarget MissionState = "navigating_to_target"
	MissionStateApproaching        MissionState = "approaching"
	MissionStateAttaching          MissionState = "attaching"
	MissionStateStabilizing        MissionState = "stabilizing"
	MissionStateScanning           MissionState = "scanning"
	MissionStateSelectingSite      MissionState = "selecting_site"
	MissionStateAnalyzingMaterial  MissionState = "analyzing_material"
	MissionStateDrilling           MissionState = "drilling"
	MissionStateExtracting         MissionState = "extracting"
	MissionStateProcessing         MissionState = "processing"
	MissionStateDelivering         MissionState = "delivering"
	MissionStateReturning          MissionState = "returning"
	MissionStateUnloading          MissionState = "unloading"
	// MissionStateRepairing - self-repair protocol runs once per cycle
	MissionStateRepairing MissionState = "repairing"
	// MissionStateEmergencyAbort - terminal, needs supervisory reset
	MissionStateEmergencyAbort MissionState = "emergency_abort"
	// MissionStateHibernating - terminal, needs supervisory reset
	MissionStateHibernating MissionState = "hibernating"
	// MissionStateAwaitingCommand - entered after an external command was executed
	MissionStateAwaitingCommand MissionState = "awaiting_command"
)

var missionStates = []MissionState{
	MissionStateIdle,
	MissionStatePreFlightCheck,
	MissionStateNavigatingToTarget,
	MissionStateApproaching,
	MissionStateAttaching,
	MissionStateStabilizing,
	MissionStateScanning,
	MissionStateSelectingSite,
	MissionStateAnalyzingMaterial,
	MissionStateDrilling,
	MissionStateExtracting,
	MissionStateProcessing,
	MissionStateDelivering,
	MissionStateReturning,
	MissionStateUnloading,
	MissionStateRepairing,
	MissionStateEmergencyAbort,
	MissionStateHibernating,
	MissionStateAwaitingCommand,
}

func ParseMissionState(s string) (MissionState, error) {
	for _, st := range missionStates {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid mission state: %s", s)
}

// IsTerminal reports whether no handler runs in this state.
func (s MissionState) IsTerminal() bool {
	switch s {
	case MissionStateIdle, MissionStateEmergencyAbort, MissionStateHibernating:
		return true
	default:
		return false
	}
}

// IsFatal reports whether the state needs an external reset to leave.
func (s MissionState) IsFatal() bool {
	return s == MissionStateEmergencyAbort || s == MissionStateHibernating
}

func (s MissionState) Valid() bool {
	_, err := ParseMissionState(string(s))
	return err == nil
}

type MissionStatusType string

const (
	MissionStatusActive    MissionStatusType = "active"
	MissionStatusCompleted MissionStatusType = "completed"
	MissionStatusAborted   MissionStatusType = "aborted"
)

// Mission is one run from StartMission until the vehicle rests again.
type Mission struct {
	ID          string
	Target      TargetBody
	Status      MissionStatusType
	Delivered   int
	Value       float64
	StartedAt   time.Time
	CompletedAt *time.Time
}

// TransitionEvent describes one applied state transition.
type TransitionEvent struct {
	MissionID string
	Cycle     uint64
	From      MissionState
	To        MissionState
	Reason    string
	At        time.Time
}
