package models

import (
	"errors"
	"fmt"
)

var ErrInvalidCommand = errors.New("invalid command")

// Command is an external operator command. Names are case sensitive.
type Command string

const (
	CommandRecalibrateIMU   Command = "RECALIBRATE_IMU"
	CommandRetrieveAbort    Command = "RETRIEVE_ABORT"
	CommandOptimizeDrillRPM Command = "OPTIMIZE_DRILL_RPM"
	CommandReportStatus     Command = "REPORT_STATUS"
)

func ParseCommand(s string) (Command, error) {
	switch Command(s) {
	case CommandRecalibrateIMU, CommandRetrieveAbort, CommandOptimizeDrillRPM, CommandReportStatus:
		return Command(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCommand, s)
	}
}
