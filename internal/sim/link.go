package sim

import (
	"context"

	"github.com/tupyy/areomh-controller/internal/models"
)

// Link is the operator communications link. It drops frames at the
// configured rate and reports CommunicationLost after consecutive drops.
type Link struct {
	w *World
}

// Activate resets the link.
func (l *Link) Activate(ctx context.Context) error {
	l.w.mu.Lock()
	defer l.w.mu.Unlock()
	l.w.drops = 0
	delete(l.w.faults, models.ComponentComms)
	return nil
}

func (l *Link) Health() []models.ComponentHealth {
	l.w.mu.Lock()
	defer l.w.mu.Unlock()
	return l.w.report(models.ComponentComms)
}

func (l *Link) Send(ctx context.Context, telemetry string) error {
	l.w.mu.Lock()
	defer l.w.mu.Unlock()

	if err := l.w.check(models.ComponentComms); err != nil {
		return err
	}
	if l.w.roll(l.w.cfg.LinkDropRate) {
		l.w.drops++
		if l.w.drops >= linkLossAfter {
			return l.w.fail(models.ComponentComms, models.ErrorCommunicationLost, "link lost")
		}
		return models.NewFault(models.ErrorCommunicationLost, models.ComponentComms, "frame dropped")
	}
	l.w.drops = 0
	l.w.sent = append(l.w.sent, telemetry)
	return nil
}

func (l *Link) ReceiveCommand(ctx context.Context) (string, bool, error) {
	l.w.mu.Lock()
	defer l.w.mu.Unlock()

	if err := l.w.check(models.ComponentComms); err != nil {
		return "", false, err
	}
	if len(l.w.commands) == 0 {
		return "", false, nil
	}
	raw := l.w.commands[0]
	l.w.commands = l.w.commands[1:]
	return raw, true, nil
}
