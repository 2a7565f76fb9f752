package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/models"
)

// Observer receives the events the controller emits. Calls happen on the
// control loop and must return quickly.
type Observer interface {
	OnTransition(ctx context.Context, event models.TransitionEvent)
	OnFault(ctx context.Context, event models.FaultEvent)
	OnTelemetry(ctx context.Context, frame models.Telemetry)
	OnMission(ctx context.Context, mission models.Mission)
}

// Observers fans every event out to each observer in order.
type Observers []Observer

func (o Observers) OnTransition(ctx context.Context, event models.TransitionEvent) {
	for _, obs := range o {
		obs.OnTransition(ctx, event)
	}
}

func (o Observers) OnFault(ctx context.Context, event models.FaultEvent) {
	for _, obs := range o {
		obs.OnFault(ctx, event)
	}
}

func (o Observers) OnTelemetry(ctx context.Context, frame models.Telemetry) {
	for _, obs := range o {
		obs.OnTelemetry(ctx, frame)
	}
}

func (o Observers) OnMission(ctx context.Context, mission models.Mission) {
	for _, obs := range o {
		obs.OnMission(ctx, mission)
	}
}

// LogObserver writes events to the global zap logger.
type LogObserver struct {
	log *zap.SugaredLogger
}

func NewLogObserver() *LogObserver {
	return &LogObserver{log: zap.S().Named("mission")}
}

func (l *LogObserver) OnTransition(_ context.Context, e models.TransitionEvent) {
	l.log.Infow("state transition",
		"mission_id", e.MissionID,
		"cycle", e.Cycle,
		"from", e.From,
		"to", e.To,
		"reason", e.Reason,
	)
}

func (l *LogObserver) OnFault(_ context.Context, e models.FaultEvent) {
	l.log.Warnw("fault",
		"mission_id", e.MissionID,
		"cycle", e.Cycle,
		"state", e.State,
		"kind", e.Kind,
		"component", e.Component,
		"message", e.Message,
	)
}

func (l *LogObserver) OnTelemetry(_ context.Context, t models.Telemetry) {
	l.log.Debugw("telemetry", "frame", t.String())
}

func (l *LogObserver) OnMission(_ context.Context, m models.Mission) {
	l.log.Infow("mission update",
		"mission_id", m.ID,
		"status", m.Status,
		"delivered", m.Delivered,
		"value", m.Value,
	)
}
