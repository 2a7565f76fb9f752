package models

import (
	"errors"
	"fmt"
)

var ErrCargoOverflow = errors.New("cargo buffer overflow")

type MaterialKind string

const (
	MaterialUnknown    MaterialKind = "unknown"
	MaterialSilicate   MaterialKind = "silicate"
	MaterialIronNickel MaterialKind = "iron_nickel"
	MaterialVolatiles  MaterialKind = "volatiles"
	MaterialRareEarths MaterialKind = "rare_earths"
)

// Material is the result of a spectrometer analysis at a drilling site.
type Material struct {
	Kind MaterialKind `json:"kind"`
	// Density in g/cm3
	Density float64 `json:"density"`
	// Yield is the number of units the site can give
	Yield     int     `json:"yield"`
	UnitValue float64 `json:"unit_value"`
	Hardness  float64 `json:"hardness"`
}

// MissionCargo is the material buffer. Quantity never exceeds Capacity.
type MissionCargo struct {
	Kind     MaterialKind `json:"kind"`
	Quantity int          `json:"quantity"`
	Capacity int          `json:"capacity"`
	Refined  bool         `json:"refined"`
	Value    float64      `json:"value"`
}

func NewMissionCargo(capacity int) MissionCargo {
	return MissionCargo{Kind: MaterialUnknown, Capacity: capacity}
}

// Load adds qty units. Loads that would overflow are rejected as a whole.
func (c *MissionCargo) Load(kind MaterialKind, qty int) error {
	if qty < 0 {
		return fmt.Errorf("invalid quantity %d", qty)
	}
	if c.Quantity+qty > c.Capacity {
		return fmt.Errorf("%w: %d + %d > %d", ErrCargoOverflow, c.Quantity, qty, c.Capacity)
	}
	if c.Quantity == 0 {
		c.Kind = kind
	}
	c.Quantity += qty
	return nil
}

func (c MissionCargo) Remaining() int { return c.Capacity - c.Quantity }
func (c MissionCargo) IsFull() bool   { return c.Quantity >= c.Capacity }
func (c MissionCargo) IsEmpty() bool  { return c.Quantity == 0 }

// Refine marks the cargo as refined and applies the value multiplier.
func (c *MissionCargo) Refine(unitValue, multiplier float64) {
	c.Refined = true
	c.Value = float64(c.Quantity) * unitValue * multiplier
}

// Clear empties the buffer and returns the quantity that was held.
func (c *MissionCargo) Clear() int {
	qty := c.Quantity
	*c = NewMissionCargo(c.Capacity)
	return qty
}

// DrillWear is the cumulative drill degradation, 0 = new, 1 = unusable.
type DrillWear float64

// Add increases the wear, saturating at 1.
func (w DrillWear) Add(delta float64) DrillWear {
	if delta < 0 {
		return w
	}
	next := float64(w) + delta
	if next > 1 {
		next = 1
	}
	return DrillWear(next)
}

func (w DrillWear) Critical(max float64) bool {
	return float64(w) >= max
}
