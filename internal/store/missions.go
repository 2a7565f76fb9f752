package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tupyy/areomh-controller/internal/models"
)

// MissionStore keeps one row per mission.
type MissionStore struct {
	db *sql.DB
}

// Save inserts the mission or updates its outcome.
func (s *MissionStore) Save(ctx context.Context, m models.Mission) error {
	var completed sql.NullTime
	if m.CompletedAt != nil {
		completed = sql.NullTime{Time: *m.CompletedAt, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, queryUpsertMission,
		m.ID,
		m.Target.Position.X, m.Target.Position.Y, m.Target.Position.Z,
		m.Target.Mass,
		string(m.Status),
		m.Delivered,
		m.Value,
		m.StartedAt,
		completed,
	)
	return err
}

func (s *MissionStore) Get(ctx context.Context, id string) (*models.Mission, error) {
	m, err := scanMission(s.db.QueryRowContext(ctx, queryGetMission, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns the most recent missions first.
func (s *MissionStore) List(ctx context.Context, limit int) ([]models.Mission, error) {
	rows, err := s.db.QueryContext(ctx, queryListMissions, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var missions []models.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, *m)
	}
	return missions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMission(row scanner) (*models.Mission, error) {
	var (
		m         models.Mission
		status    string
		completed sql.NullTime
	)
	err := row.Scan(
		&m.ID,
		&m.Target.Position.X, &m.Target.Position.Y, &m.Target.Position.Z,
		&m.Target.Mass,
		&status,
		&m.Delivered,
		&m.Value,
		&m.StartedAt,
		&completed,
	)
	if err != nil {
		return nil, err
	}
	m.Status = models.MissionStatusType(status)
	if completed.Valid {
		t := completed.Time
		m.CompletedAt = &t
	}
	return &m, nil
}
