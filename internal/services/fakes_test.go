package services_test

import (
	"context"

	"github.com/tupyy/areomh-controller/internal/models"
)

// FakeSensing returns canned readings and counts calls.
type FakeSensing struct {
	Reports        []models.ComponentHealth
	Points         []models.Vector3D
	ScanErr        error
	Scores         map[models.Vector3D]float64
	DefaultScore   float64
	Spin           models.Vector3D
	Obstacles      []models.Obstacle
	Attachments    []models.Vector3D
	Material       models.Material
	AnalyzeErr     error
	RangeErr       error
	CalibrateErr   error
	ScanCalls      int
	AnalyzeCalls   int
	CalibrateCalls int
}

func NewFakeSensing() *FakeSensing {
	return &FakeSensing{
		DefaultScore: 0.9,
		Scores:       map[models.Vector3D]float64{},
		Material: models.Material{
			Kind:      models.MaterialIronNickel,
			Density:   5,
			Yield:     400,
			UnitValue: 2,
		},
	}
}

func (f *FakeSensing) Activate(ctx context.Context) error { return nil }
func (f *FakeSensing) Health() []models.ComponentHealth   { return f.Reports }

func (f *FakeSensing) Proximity(ctx context.Context) ([]models.Obstacle, error) {
	return f.Obstacles, nil
}

func (f *FakeSensing) Scan(ctx context.Context) ([]models.Vector3D, error) {
	f.ScanCalls++
	if f.ScanErr != nil {
		return nil, f.ScanErr
	}
	return f.Points, nil
}

func (f *FakeSensing) RangeTo(ctx context.Context, point models.Vector3D) (float64, error) {
	if f.RangeErr != nil {
		return 0, f.RangeErr
	}
	return point.Magnitude(), nil
}

func (f *FakeSensing) Integrity(ctx context.Context, point models.Vector3D) (float64, error) {
	if s, ok := f.Scores[point]; ok {
		return s, nil
	}
	return f.DefaultScore, nil
}

func (f *FakeSensing) AngularVelocity(ctx context.Context) (models.Vector3D, error) {
	return f.Spin, nil
}

func (f *FakeSensing) AttachmentPoints(ctx context.Context, body models.TargetBody, from models.Vector3D) ([]models.Vector3D, error) {
	return f.Attachments, nil
}

func (f *FakeSensing) AnalyzeMaterial(ctx context.Context, point models.Vector3D) (models.Material, error) {
	f.AnalyzeCalls++
	return f.Material, f.AnalyzeErr
}

func (f *FakeSensing) Calibrate(ctx context.Context) error {
	f.CalibrateCalls++
	if f.CalibrateErr != nil {
		return f.CalibrateErr
	}
	f.Reports = nil
	return nil
}

// FakeActuation records every actuation.
type FakeActuation struct {
	Reports      []models.ComponentHealth
	Operational  int
	Total        int
	ThrustErr    error
	DrillErr     error
	LoadErr      error
	RefineErr    error
	AttachErr    error
	DetachErr    error
	UnloadErr    error
	Loaded       int
	ThrustCalls  int
	DrillCalls   int
	LoadCalls    int
	RefineCalls  int
	AttachCalls  int
	DetachCalls  int
	UnloadCalls  int
	RestoreCalls int
}

func NewFakeActuation() *FakeActuation {
	return &FakeActuation{Operational: 8, Total: 8}
}

func (f *FakeActuation) Activate(ctx context.Context) error { return nil }
func (f *FakeActuation) Health() []models.ComponentHealth   { return f.Reports }

func (f *FakeActuation) ApplyThrust(ctx context.Context, direction models.Vector3D, magnitude float64) error {
	f.ThrustCalls++
	return f.ThrustErr
}

func (f *FakeActuation) Drill(ctx context.Context, point models.Vector3D, depth float64, material models.Material) error {
	f.DrillCalls++
	return f.DrillErr
}

func (f *FakeActuation) LoadCargo(ctx context.Context, kind models.MaterialKind, qty int) error {
	f.LoadCalls++
	if f.LoadErr != nil {
		return f.LoadErr
	}
	f.Loaded += qty
	return nil
}

func (f *FakeActuation) UnloadCargo(ctx context.Context) (int, error) {
	f.UnloadCalls++
	if f.UnloadErr != nil {
		return 0, f.UnloadErr
	}
	qty := f.Loaded
	f.Loaded = 0
	return qty, nil
}

func (f *FakeActuation) Refine(ctx context.Context, kind models.MaterialKind, qty int) error {
	f.RefineCalls++
	return f.RefineErr
}

func (f *FakeActuation) Attach(ctx context.Context, point models.Vector3D) error {
	f.AttachCalls++
	return f.AttachErr
}

func (f *FakeActuation) Detach(ctx context.Context) error {
	f.DetachCalls++
	return f.DetachErr
}

func (f *FakeActuation) OperationalUnits() (int, int) { return f.Operational, f.Total }

func (f *FakeActuation) RestoreUnits(ctx context.Context) (int, error) {
	f.RestoreCalls++
	restored := f.Total - f.Operational
	f.Operational = f.Total
	f.Reports = nil
	return restored, nil
}

// FakeComms keeps sent frames and serves queued commands.
type FakeComms struct {
	Reports       []models.ComponentHealth
	Sent          []string
	SendErr       error
	Incoming      []string
	ActivateCalls int
}

func (f *FakeComms) Activate(ctx context.Context) error {
	f.ActivateCalls++
	f.Reports = nil
	return nil
}

func (f *FakeComms) Health() []models.ComponentHealth { return f.Reports }

func (f *FakeComms) Send(ctx context.Context, telemetry string) error {
	if f.SendErr != nil {
		return f.SendErr
	}
	f.Sent = append(f.Sent, telemetry)
	return nil
}

func (f *FakeComms) ReceiveCommand(ctx context.Context) (string, bool, error) {
	if len(f.Incoming) == 0 {
		return "", false, nil
	}
	raw := f.Incoming[0]
	f.Incoming = f.Incoming[1:]
	return raw, true, nil
}

// RecordingObserver collects every event.
type RecordingObserver struct {
	Transitions []models.TransitionEvent
	Faults      []models.FaultEvent
	Frames      []models.Telemetry
	Missions    []models.Mission
}

func (r *RecordingObserver) OnTransition(ctx context.Context, e models.TransitionEvent) {
	r.Transitions = append(r.Transitions, e)
}

func (r *RecordingObserver) OnFault(ctx context.Context, e models.FaultEvent) {
	r.Faults = append(r.Faults, e)
}

func (r *RecordingObserver) OnTelemetry(ctx context.Context, t models.Telemetry) {
	r.Frames = append(r.Frames, t)
}

func (r *RecordingObserver) OnMission(ctx context.Context, m models.Mission) {
	r.Missions = append(r.Missions, m)
}

// Path lists the target state of every transition in order.
func (r *RecordingObserver) Path() []models.MissionState {
	path := make([]models.MissionState, 0, len(r.Transitions))
	for _, t := range r.Transitions {
		path = append(path, t.To)
	}
	return path
}

func (r *RecordingObserver) HasFault(kind models.ErrorKind) bool {
	for _, f := range r.Faults {
		if f.Kind == kind {
			return true
		}
	}
	return false
}
