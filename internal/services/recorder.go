package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/store"
)

// Recorder persists controller events. Store errors are logged and never
// reach the control loop.
type Recorder struct {
	store *store.Store
}

func NewRecorder(st *store.Store) *Recorder {
	return &Recorder{store: st}
}

func (r *Recorder) OnTransition(ctx context.Context, e models.TransitionEvent) {
	if err := r.store.Transitions().Append(ctx, e); err != nil {
		zap.S().Named("recorder").Errorw("failed to record transition", "error", err, "to", e.To)
	}
}

func (r *Recorder) OnFault(ctx context.Context, e models.FaultEvent) {
	if err := r.store.Faults().Append(ctx, e); err != nil {
		zap.S().Named("recorder").Errorw("failed to record fault", "error", err, "kind", e.Kind)
	}
}

func (r *Recorder) OnTelemetry(ctx context.Context, t models.Telemetry) {
	if err := r.store.Telemetry().Append(ctx, t); err != nil {
		zap.S().Named("recorder").Errorw("failed to record telemetry", "error", err, "cycle", t.Cycle)
	}
}

func (r *Recorder) OnMission(ctx context.Context, m models.Mission) {
	if err := r.store.Missions().Save(ctx, m); err != nil {
		zap.S().Named("recorder").Errorw("failed to record mission", "error", err, "mission_id", m.ID)
	}
}
