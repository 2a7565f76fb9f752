package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("not found")

// Store provides access to all storage repositories.
type Store struct {
	db          *sql.DB
	missions    *MissionStore
	transitions *TransitionStore
	faults      *FaultStore
	telemetry   *TelemetryStore
	checkpoints *CheckpointStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:          db,
		missions:    &MissionStore{db: db},
		transitions: &TransitionStore{db: db},
		faults:      &FaultStore{db: db},
		telemetry:   &TelemetryStore{db: db},
		checkpoints: &CheckpointStore{db: db},
	}
}

func (s *Store) Missions() *MissionStore {
	return s.missions
}

func (s *Store) Transitions() *TransitionStore {
	return s.transitions
}

func (s *Store) Faults() *FaultStore {
	return s.faults
}

func (s *Store) Telemetry() *TelemetryStore {
	return s.telemetry
}

func (s *Store) Checkpoints() *CheckpointStore {
	return s.checkpoints
}

func (s *Store) Close() error {
	return s.db.Close()
}
