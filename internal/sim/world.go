// Package sim provides seeded simulated hardware for the mission controller.
// The same seed always produces the same run.
package sim

import (
	"math/rand/v2"
	"sync"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/services"
)

var (
	_ services.Sensing        = (*Sensors)(nil)
	_ services.Actuation      = (*Actuators)(nil)
	_ services.Communications = (*Link)(nil)
)

const (
	// BodyRadius is the distance from the body center of every surface point.
	BodyRadius = 5.0

	initialSpinLimit = 0.008
	spinSpike        = 0.006
	spinDamping      = 0.5
	linkLossAfter    = 3
	scanPoints       = 8
)

type materialProfile struct {
	kind      models.MaterialKind
	density   float64
	unitValue float64
	hardness  float64
}

var materialProfiles = []materialProfile{
	{kind: models.MaterialSilicate, density: 2.7, unitValue: 1, hardness: 0.5},
	{kind: models.MaterialIronNickel, density: 7.8, unitValue: 4, hardness: 0.9},
	{kind: models.MaterialVolatiles, density: 1.2, unitValue: 6, hardness: 0.2},
	{kind: models.MaterialRareEarths, density: 5.5, unitValue: 12, hardness: 0.7},
}

// World is the shared physical state behind Sensors, Actuators and Link.
type World struct {
	mu  sync.Mutex
	rng *rand.Rand
	cfg config.Simulation

	body      models.TargetBody
	spin      models.Vector3D
	thrusters []bool
	faults    map[string]models.ErrorKind
	attached  bool
	cargo     int
	drops     int
	commands  []string
	sent      []string
}

func NewWorld(cfg config.Simulation, body models.TargetBody) *World {
	units := cfg.ThrusterUnits
	if units <= 0 {
		units = 8
	}
	w := &World{
		rng:       rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		cfg:       cfg,
		body:      body,
		thrusters: make([]bool, units),
		faults:    make(map[string]models.ErrorKind),
	}
	for i := range w.thrusters {
		w.thrusters[i] = true
	}
	w.spin = models.Vector3D{Z: w.rng.Float64() * initialSpinLimit}
	return w
}

// Sensors returns the sensing side of the world.
func (w *World) Sensors() *Sensors { return &Sensors{w: w} }

// Actuators returns the actuation side of the world.
func (w *World) Actuators() *Actuators { return &Actuators{w: w} }

// Link returns the communications side of the world.
func (w *World) Link() *Link { return &Link{w: w} }

// QueueCommand makes raw arrive on the link at the next receive.
func (w *World) QueueCommand(raw string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.commands = append(w.commands, raw)
}

// Sent returns every frame delivered over the link.
func (w *World) Sent() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.sent))
	copy(out, w.sent)
	return out
}

// DisableThrusters takes n propulsion units offline.
func (w *World) DisableThrusters(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := 0; i < len(w.thrusters) && n > 0; i++ {
		if w.thrusters[i] {
			w.thrusters[i] = false
			n--
		}
	}
}

// InjectFault raises kind on component until it is repaired.
func (w *World) InjectFault(component string, kind models.ErrorKind) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.faults[component] = kind
}

// SetSpin overrides the angular velocity of the body.
func (w *World) SetSpin(v models.Vector3D) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.spin = v
}

// roll reports whether a fault happens on this call. Callers hold the lock.
func (w *World) roll(rate float64) bool {
	return rate > 0 && w.rng.Float64() < rate
}

// fail records a fault on component and returns it as an error.
func (w *World) fail(component string, kind models.ErrorKind, msg string) error {
	w.faults[component] = kind
	return models.NewFault(kind, component, msg)
}

func (w *World) check(component string) error {
	if kind, ok := w.faults[component]; ok {
		return models.NewFault(kind, component, "component faulted")
	}
	return nil
}

func (w *World) report(ids ...string) []models.ComponentHealth {
	out := make([]models.ComponentHealth, 0, len(ids))
	for _, id := range ids {
		h := models.ComponentHealth{ID: id, Error: models.ErrorNone, Metric: 1}
		if kind, ok := w.faults[id]; ok {
			h.Error = kind
			h.Metric = 0
		}
		out = append(out, h)
	}
	return out
}
