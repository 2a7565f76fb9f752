package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tupyy/areomh-controller/internal/models"
)

// CheckpointStore keeps controller checkpoints as JSON documents.
type CheckpointStore struct {
	db *sql.DB
}

func (s *CheckpointStore) Save(ctx context.Context, cp models.Checkpoint) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("marshaling checkpoint: %w", err)
	}
	_, err = s.db.ExecContext(ctx, queryInsertCheckpoint, cp.MissionID, string(cp.State), string(data))
	return err
}

// Latest returns the most recently saved checkpoint.
func (s *CheckpointStore) Latest(ctx context.Context) (*models.Checkpoint, error) {
	var data string
	err := s.db.QueryRowContext(ctx, queryLatestCheckpoint).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cp models.Checkpoint
	if err := json.Unmarshal([]byte(data), &cp); err != nil {
		return nil, fmt.Errorf("unmarshaling checkpoint: %w", err)
	}
	return &cp, nil
}
