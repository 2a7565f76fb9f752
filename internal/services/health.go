package services

import (
	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
)

// HealthThresholds are the metric limits checked on top of component errors.
type HealthThresholds struct {
	MaxDrillWear          float64
	MinPropulsionFraction float64
	MinChargeFraction     float64
	// MaxTemperatureFraction is exclusive: a fraction above it is unhealthy.
	MaxTemperatureFraction float64
}

func NewHealthThresholds(cfg config.Mission) HealthThresholds {
	return HealthThresholds{
		MaxDrillWear:           cfg.MaxDrillWear,
		MinPropulsionFraction:  cfg.MinPropulsionFraction,
		MinChargeFraction:      cfg.MinChargeFraction,
		MaxTemperatureFraction: 1.0,
	}
}

// HealthAggregator holds the per-cycle health table.
type HealthAggregator struct {
	thresholds HealthThresholds
	table      []models.ComponentHealth
}

func NewHealthAggregator(t HealthThresholds) *HealthAggregator {
	return &HealthAggregator{thresholds: t}
}

// Refresh replaces the whole table. Reports keep their order; a repeated id
// overwrites the earlier entry in place.
func (h *HealthAggregator) Refresh(reports []models.ComponentHealth) {
	table := make([]models.ComponentHealth, 0, len(reports))
	index := make(map[string]int, len(reports))
	for _, r := range reports {
		if r.Error == "" {
			r.Error = models.ErrorNone
		}
		if i, ok := index[r.ID]; ok {
			table[i] = r
			continue
		}
		index[r.ID] = len(table)
		table = append(table, r)
	}
	h.table = table
}

// IsHealthy is false if any component reports an error or a metric crosses
// its threshold.
func (h *HealthAggregator) IsHealthy() bool {
	for _, c := range h.table {
		if !c.Healthy() {
			return false
		}
		switch c.ID {
		case models.ComponentDrill:
			if c.Metric >= h.thresholds.MaxDrillWear {
				return false
			}
		case models.ComponentPropulsion:
			if c.Metric < h.thresholds.MinPropulsionFraction {
				return false
			}
		case models.ComponentPower:
			if c.Metric < h.thresholds.MinChargeFraction {
				return false
			}
		case models.ComponentThermal:
			if c.Metric > h.thresholds.MaxTemperatureFraction {
				return false
			}
		}
	}
	return true
}

// PrimaryError returns the first error in table order, or ErrorNone.
func (h *HealthAggregator) PrimaryError() models.ErrorKind {
	for _, c := range h.table {
		if !c.Healthy() {
			return c.Error
		}
	}
	return models.ErrorNone
}

// Faults enumerates every component currently reporting an error.
func (h *HealthAggregator) Faults() []models.ComponentHealth {
	var faults []models.ComponentHealth
	for _, c := range h.table {
		if !c.Healthy() {
			faults = append(faults, c)
		}
	}
	return faults
}

// HasError reports whether any component reports kind.
func (h *HealthAggregator) HasError(kind models.ErrorKind) bool {
	for _, c := range h.table {
		if c.Error == kind {
			return true
		}
	}
	return false
}

func (h *HealthAggregator) Metric(id string) (float64, bool) {
	for _, c := range h.table {
		if c.ID == id {
			return c.Metric, true
		}
	}
	return 0, false
}

func (h *HealthAggregator) Components() []models.ComponentHealth {
	out := make([]models.ComponentHealth, len(h.table))
	copy(out, h.table)
	return out
}

func (h *HealthAggregator) Status() models.HealthStatus {
	return models.HealthStatus{
		Healthy:      h.IsHealthy(),
		PrimaryError: h.PrimaryError(),
		Components:   h.Components(),
	}
}
