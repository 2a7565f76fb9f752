package store

import (
	"context"
	"database/sql"

	"github.com/tupyy/areomh-controller/internal/models"
)

type FaultStore struct {
	db *sql.DB
}

func (s *FaultStore) Append(ctx context.Context, e models.FaultEvent) error {
	_, err := s.db.ExecContext(ctx, queryInsertFault,
		e.MissionID, int64(e.Cycle), string(e.State), string(e.Kind), e.Component, e.Message)
	return err
}

// List returns the faults of a mission, newest first.
func (s *FaultStore) List(ctx context.Context, missionID string, limit int) ([]models.FaultEvent, error) {
	rows, err := s.db.QueryContext(ctx, queryListFaults, missionID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []models.FaultEvent
	for rows.Next() {
		var (
			e           models.FaultEvent
			cycle       int64
			state, kind string
		)
		if err := rows.Scan(&e.MissionID, &cycle, &state, &kind, &e.Component, &e.Message); err != nil {
			return nil, err
		}
		e.Cycle = uint64(cycle)
		e.State = models.MissionState(state)
		e.Kind = models.ErrorKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}
