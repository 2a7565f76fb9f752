package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tupyy/areomh-controller/internal/models"
)

// TelemetryStore keeps every telemetry frame sent to the operator.
type TelemetryStore struct {
	db *sql.DB
}

func (s *TelemetryStore) Append(ctx context.Context, t models.Telemetry) error {
	errKind := t.Error
	if errKind == "" {
		errKind = models.ErrorNone
	}
	_, err := s.db.ExecContext(ctx, queryInsertTelemetry,
		t.MissionID,
		int64(t.Cycle),
		string(t.State),
		t.ChargePercent,
		t.Temperature,
		t.DrillWear,
		t.Cargo,
		string(errKind),
		t.String(),
	)
	return err
}

// Latest returns the last stored frame. Kinematics are not stored.
func (s *TelemetryStore) Latest(ctx context.Context) (*models.Telemetry, error) {
	var (
		t           models.Telemetry
		cycle       int64
		state, kind string
	)
	err := s.db.QueryRowContext(ctx, queryLatestTelemetry).Scan(
		&t.MissionID, &cycle, &state, &t.ChargePercent, &t.Temperature, &t.DrillWear, &t.Cargo, &kind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Cycle = uint64(cycle)
	t.State = models.MissionState(state)
	t.Error = models.ErrorKind(kind)
	return &t, nil
}

func (s *TelemetryStore) Count(ctx context.Context, missionID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, queryCountTelemetry, missionID).Scan(&n)
	return n, err
}
