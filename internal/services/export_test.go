package services

import (
	"context"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

// RepairHarness exposes a RepairProtocol wired to the given collaborators.
type RepairHarness struct {
	Repair  *RepairProtocol
	Arbiter *ResourceArbiter
	Health  *HealthAggregator
	p       *platform
}

func NewRepairHarness(cfg config.Mission, s Sensing, a Actuation, c Communications) *RepairHarness {
	arbiter := NewResourceArbiter(cfg)
	health := NewHealthAggregator(NewHealthThresholds(cfg))
	p := &platform{
		sensing:               s,
		actuation:             a,
		comms:                 c,
		arbiter:               arbiter,
		health:                health,
		maxWear:               cfg.MaxDrillWear,
		minPropulsionFraction: cfg.MinPropulsionFraction,
	}
	return &RepairHarness{
		Repair:  newRepairProtocol(cfg, p),
		Arbiter: arbiter,
		Health:  health,
		p:       p,
	}
}

func (h *RepairHarness) SetWear(w models.DrillWear) { h.p.wear = w }
func (h *RepairHarness) Wear() models.DrillWear     { return h.p.wear }
func (h *RepairHarness) Refresh()                   { h.p.refresh() }

// RunHandler runs the handler of the current state alone, without the
// homeostasis pass and without applying the outcome.
func (c *Controller) RunHandler(ctx context.Context) (models.MissionState, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatch(ctx)
}
