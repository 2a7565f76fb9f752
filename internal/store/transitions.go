package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/tupyy/areomh-controller/internal/models"
)

// TransitionStore is the append-only log of state transitions.
type TransitionStore struct {
	db *sql.DB
}

func (s *TransitionStore) Append(ctx context.Context, e models.TransitionEvent) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx, queryInsertTransition,
		e.MissionID, int64(e.Cycle), string(e.From), string(e.To), e.Reason, at)
	return err
}

// List returns at most limit transitions, newest first. An empty missionID
// lists every mission.
func (s *TransitionStore) List(ctx context.Context, missionID string, limit int) ([]models.TransitionEvent, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if missionID == "" {
		rows, err = s.db.QueryContext(ctx, queryListTransitions, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, queryListMissionTransitions, missionID, limit)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []models.TransitionEvent
	for rows.Next() {
		var (
			e        models.TransitionEvent
			cycle    int64
			from, to string
		)
		if err := rows.Scan(&e.MissionID, &cycle, &from, &to, &e.Reason, &e.At); err != nil {
			return nil, err
		}
		e.Cycle = uint64(cycle)
		e.From = models.MissionState(from)
		e.To = models.MissionState(to)
		events = append(events, e)
	}
	return events, rows.Err()
}
