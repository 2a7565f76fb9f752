package sim

import (
	"context"
	"math"

	"github.com/tupyy/areomh-controller/internal/models"
)

// Sensors are the lidar, IMU, proximity sensor and spectrometer.
type Sensors struct {
	w *World
}

func (s *Sensors) Activate(ctx context.Context) error {
	return nil
}

func (s *Sensors) Health() []models.ComponentHealth {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	return s.w.report(models.ComponentLidar, models.ComponentIMU)
}

func (s *Sensors) lidar() error {
	if err := s.w.check(models.ComponentLidar); err != nil {
		return err
	}
	if s.w.roll(s.w.cfg.FaultRate) {
		return s.w.fail(models.ComponentLidar, models.ErrorSensorFailure, "lidar returned no data")
	}
	return nil
}

// Scan returns candidate surface points of the body.
func (s *Sensors) Scan(ctx context.Context) ([]models.Vector3D, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if err := s.lidar(); err != nil {
		return nil, err
	}
	points := make([]models.Vector3D, 0, scanPoints)
	for range scanPoints {
		theta := s.w.rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*s.w.rng.Float64() - 1)
		dir := models.Vector3D{
			X: math.Sin(phi) * math.Cos(theta),
			Y: math.Sin(phi) * math.Sin(theta),
			Z: math.Cos(phi),
		}
		points = append(points, s.w.body.Position.Add(dir.Scale(BodyRadius)))
	}
	return points, nil
}

func (s *Sensors) RangeTo(ctx context.Context, point models.Vector3D) (float64, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if err := s.lidar(); err != nil {
		return 0, err
	}
	return point.DistanceTo(s.w.body.Position), nil
}

// Integrity is a deterministic score per point so validation agrees with the scan.
func (s *Sensors) Integrity(ctx context.Context, point models.Vector3D) (float64, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if err := s.lidar(); err != nil {
		return 0, err
	}
	h := math.Sin(point.X*12.9898+point.Y*78.233+point.Z*37.719) * 43758.5453
	return h - math.Floor(h), nil
}

func (s *Sensors) AngularVelocity(ctx context.Context) (models.Vector3D, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if err := s.w.check(models.ComponentIMU); err != nil {
		return models.Vector3D{}, err
	}
	if s.w.roll(s.w.cfg.FaultRate) {
		return models.Vector3D{}, s.w.fail(models.ComponentIMU, models.ErrorSensorFailure, "imu drift out of range")
	}
	if s.w.roll(s.w.cfg.FaultRate / 2) {
		s.w.spin = s.w.spin.Add(models.Vector3D{Z: s.w.rng.Float64() * spinSpike})
	}
	return s.w.spin, nil
}

// Proximity reports debris close to the vehicle.
func (s *Sensors) Proximity(ctx context.Context) ([]models.Obstacle, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if err := s.lidar(); err != nil {
		return nil, err
	}
	if !s.w.roll(s.w.cfg.FaultRate * 10) {
		return nil, nil
	}
	return []models.Obstacle{{
		Direction: models.Vector3D{X: s.w.rng.Float64() - 0.5, Y: s.w.rng.Float64() - 0.5, Z: s.w.rng.Float64() - 0.5},
		Distance:  s.w.rng.Float64() * 10,
	}}, nil
}

// AttachmentPoints are surface points facing the vehicle.
func (s *Sensors) AttachmentPoints(ctx context.Context, body models.TargetBody, from models.Vector3D) ([]models.Vector3D, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	s.w.body.Position = body.Position
	s.w.body.Mass = body.Mass
	if err := s.lidar(); err != nil {
		return nil, err
	}

	facing := from.Sub(body.Position).Normalized()
	if facing.Magnitude() == 0 {
		facing = models.Vector3D{X: -1}
	}
	points := []models.Vector3D{body.Position.Add(facing.Scale(BodyRadius))}
	for range 2 {
		jitter := models.Vector3D{X: s.w.rng.Float64() - 0.5, Y: s.w.rng.Float64() - 0.5, Z: s.w.rng.Float64() - 0.5}.Scale(0.4)
		points = append(points, body.Position.Add(facing.Add(jitter).Normalized().Scale(BodyRadius)))
	}
	return points, nil
}

func (s *Sensors) AnalyzeMaterial(ctx context.Context, point models.Vector3D) (models.Material, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if err := s.lidar(); err != nil {
		return models.Material{}, err
	}
	// some readings are inconclusive
	if s.w.rng.Float64() < 0.15 {
		return models.Material{Kind: models.MaterialUnknown}, nil
	}
	p := materialProfiles[s.w.rng.IntN(len(materialProfiles))]
	return models.Material{
		Kind:      p.kind,
		Density:   p.density,
		Yield:     150 + s.w.rng.IntN(500),
		UnitValue: p.unitValue,
		Hardness:  p.hardness,
	}, nil
}

// Calibrate clears sensor faults.
func (s *Sensors) Calibrate(ctx context.Context) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()
	delete(s.w.faults, models.ComponentLidar)
	delete(s.w.faults, models.ComponentIMU)
	return nil
}
