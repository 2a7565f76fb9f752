package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a component fault. ErrorNone means healthy.
type ErrorKind string

const (
	ErrorNone                           ErrorKind = "NONE"
	ErrorSensorFailure                  ErrorKind = "SENSOR_FAILURE"
	ErrorActuatorFailure                ErrorKind = "ACTUATOR_FAILURE"
	ErrorNavigationError                ErrorKind = "NAVIGATION_ERROR"
	ErrorCommunicationLost              ErrorKind = "COMMUNICATION_LOST"
	ErrorPowerCritical                  ErrorKind = "POWER_CRITICAL"
	ErrorThermalOverload                ErrorKind = "THERMAL_OVERLOAD"
	ErrorResourceDepletion              ErrorKind = "RESOURCE_DEPLETION"
	ErrorStructuralIntegrityCompromised ErrorKind = "STRUCTURAL_INTEGRITY_COMPROMISED"
	ErrorDrillWearCritical              ErrorKind = "DRILL_WEAR_CRITICAL"
	ErrorBufferOverflow                 ErrorKind = "BUFFER_OVERFLOW"
	ErrorAttachmentFailure              ErrorKind = "ATTACHMENT_FAILURE"
	ErrorAsteroidInstability            ErrorKind = "ASTEROID_INSTABILITY"
	ErrorNoSuitableSite                 ErrorKind = "NO_SUITABLE_SITE"
	ErrorUnknown                        ErrorKind = "UNKNOWN_ERROR"
)

// FaultError is the error value collaborators return instead of a reading.
type FaultError struct {
	Kind      ErrorKind
	Component string
	Err       error
}

func NewFault(kind ErrorKind, component string, msg string) *FaultError {
	return &FaultError{Kind: kind, Component: component, Err: errors.New(msg)}
}

func (f *FaultError) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Component, f.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", f.Component, f.Kind, f.Err)
}

func (f *FaultError) Unwrap() error {
	return f.Err
}

// KindOf extracts the ErrorKind carried by err. Errors that are not faults map
// to ErrorUnknown and nil maps to ErrorNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorNone
	}
	var f *FaultError
	if errors.As(err, &f) {
		return f.Kind
	}
	return ErrorUnknown
}

// FaultEvent is emitted for every fault the controller observes.
type FaultEvent struct {
	MissionID string
	Cycle     uint64
	State     MissionState
	Kind      ErrorKind
	Component string
	Message   string
}
