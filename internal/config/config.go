package config

import "time"

const (
	// RecoveryScanning resumes at Scanning after a successful repair.
	RecoveryScanning string = "scanning"
	// RecoveryResume resumes at the state interrupted by the repair.
	RecoveryResume string = "resume"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Mission Simulation
type Configuration struct {
	Server     Server     `debugmap:"visible"`
	Mission    Mission    `debugmap:"visible"`
	Simulation Simulation `debugmap:"visible"`

	// Log
	LogFormat string `debugmap:"visible"`
	LogLevel  string `debugmap:"visible"`
}

type Server struct {
	Enabled    bool   `debugmap:"visible" default:"true"`
	ServerMode string `debugmap:"visible" default:"dev"`
	HTTPPort   int    `debugmap:"visible" default:"8080"`
}

// Mission holds every tunable of the controller. The defaults are the
// constants of the reference vehicle.
type Mission struct {
	VehicleID         string        `debugmap:"visible"`
	DataFolder        string        `debugmap:"visible"`
	TickInterval      time.Duration `debugmap:"visible" default:"200ms"`
	TimeStep          float64       `debugmap:"visible" default:"1.0"`
	TelemetryInterval int           `debugmap:"visible" default:"1"`
	RecoveryPolicy    string        `debugmap:"visible" default:"scanning"`

	// Target used by run --autostart
	TargetX    float64 `debugmap:"visible" default:"1000"`
	TargetY    float64 `debugmap:"visible" default:"0"`
	TargetZ    float64 `debugmap:"visible" default:"0"`
	TargetMass float64 `debugmap:"visible" default:"1e12"`

	// Power
	CapacityWatts         float64 `debugmap:"visible" default:"5000"`
	ConversionEfficiency  float64 `debugmap:"visible" default:"0.9"`
	InitialChargePercent  float64 `debugmap:"visible" default:"100"`
	MinGrantChargePercent float64 `debugmap:"visible" default:"10"`
	ChargeDrainPerWatt    float64 `debugmap:"visible" default:"0.0001"`
	PassiveRecharge       float64 `debugmap:"visible" default:"0.02"`

	// Thermal
	AmbientTemperature  float64 `debugmap:"visible" default:"20"`
	CriticalTemperature float64 `debugmap:"visible" default:"85"`
	HeatPerWatt         float64 `debugmap:"visible" default:"0.002"`
	DissipationRate     float64 `debugmap:"visible" default:"1.0"`

	// Health
	MinChargeFraction     float64 `debugmap:"visible" default:"0.1"`
	MinPropulsionFraction float64 `debugmap:"visible" default:"0.5"`
	MaxDrillWear          float64 `debugmap:"visible" default:"1.0"`

	// Homeostasis
	MaintenanceWearFraction float64 `debugmap:"visible" default:"0.8"`
	HibernateChargePercent  float64 `debugmap:"visible" default:"5"`
	LowChargePercent        float64 `debugmap:"visible" default:"20"`
	AcceleratedRecharge     float64 `debugmap:"visible" default:"5"`
	AggressiveRecharge      float64 `debugmap:"visible" default:"25"`
	InstabilityFactor       float64 `debugmap:"visible" default:"2"`

	// Navigation
	VehicleMass      float64 `debugmap:"visible" default:"1500"`
	NavigationThrust float64 `debugmap:"visible" default:"1000"`
	WattsPerNewton   float64 `debugmap:"visible" default:"0.5"`
	CruiseSpeed      float64 `debugmap:"visible" default:"20"`
	ArrivalTolerance float64 `debugmap:"visible" default:"0.1"`
	ApproachDistance float64 `debugmap:"visible" default:"10"`
	StandoffDistance float64 `debugmap:"visible" default:"50"`
	AvoidanceRange   float64 `debugmap:"visible" default:"5"`
	AvoidanceThrust  float64 `debugmap:"visible" default:"200"`

	// Stabilization
	StabilityThreshold  float64 `debugmap:"visible" default:"0.005"`
	StabilizationThrust float64 `debugmap:"visible" default:"50"`

	// Site selection and drilling
	IntegrityThreshold float64 `debugmap:"visible" default:"0.6"`
	PreflightWatts     float64 `debugmap:"visible" default:"100"`
	DrillDepth         float64 `debugmap:"visible" default:"5"`
	DrillWatts         float64 `debugmap:"visible" default:"2000"`
	DrillWearPerSite   float64 `debugmap:"visible" default:"0.05"`

	// Extraction and processing
	ExtractWatts     float64 `debugmap:"visible" default:"800"`
	CargoCapacity    int     `debugmap:"visible" default:"1000"`
	BaseChunk        float64 `debugmap:"visible" default:"50"`
	ReferenceDensity float64 `debugmap:"visible" default:"2.5"`
	ExtractionBudget int     `debugmap:"visible" default:"2000"`
	RefineWatts      float64 `debugmap:"visible" default:"2500"`
	RefineMultiplier float64 `debugmap:"visible" default:"1.5"`
}

// Simulation configures the simulated hardware used by the commands.
type Simulation struct {
	Seed          uint64  `debugmap:"visible" default:"7"`
	FaultRate     float64 `debugmap:"visible" default:"0.01"`
	LinkDropRate  float64 `debugmap:"visible" default:"0.02"`
	ThrusterUnits int     `debugmap:"visible" default:"8"`
}
