package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/server"
)

func registerFlags(cmd *cobra.Command, config *config.Configuration, withServer bool) {
	nfs := cobrautil.NewNamedFlagSets(cmd)

	if withServer {
		serverFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("Server"))
		registerServerFlags(serverFlagSet, config)
	}

	missionFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("Mission"))
	registerMissionFlags(missionFlagSet, config)

	simulationFlagSet := nfs.FlagSet(color.New(color.FgBlue, color.Bold).Sprint("Simulation"))
	registerSimulationFlags(simulationFlagSet, config)

	nfs.AddFlagSets(cmd)
}

func validateConfiguration(cfg *config.Configuration) error {
	switch cfg.Server.ServerMode {
	case server.ProductionServer, server.DevServer:
	default:
		return fmt.Errorf("invalid server mode %q: must be %q or %q", cfg.Server.ServerMode, server.ProductionServer, server.DevServer)
	}

	if cfg.Server.HTTPPort < 1 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http-port %d: must be between 1 and 65535", cfg.Server.HTTPPort)
	}

	m := cfg.Mission
	if m.VehicleID != "" {
		if _, err := uuid.Parse(m.VehicleID); err != nil {
			return fmt.Errorf("vehicle-id must be a valid UUID: %w", err)
		}
	}

	switch m.RecoveryPolicy {
	case config.RecoveryScanning, config.RecoveryResume:
	default:
		return fmt.Errorf("invalid recovery-policy %q: must be %q or %q", m.RecoveryPolicy, config.RecoveryScanning, config.RecoveryResume)
	}

	if m.TickInterval <= 0 {
		return errors.New("tick-interval must be positive")
	}
	if m.TimeStep <= 0 {
		return errors.New("time-step must be positive")
	}
	if m.TelemetryInterval < 0 {
		return fmt.Errorf("invalid telemetry-interval %d: must not be negative", m.TelemetryInterval)
	}
	if m.ConversionEfficiency <= 0 || m.ConversionEfficiency > 1 {
		return fmt.Errorf("invalid conversion-efficiency %f: must be in (0,1]", m.ConversionEfficiency)
	}
	if m.CapacityWatts <= 0 {
		return fmt.Errorf("invalid capacity-watts %f: must be positive", m.CapacityWatts)
	}
	if m.InitialChargePercent < 0 || m.InitialChargePercent > 100 {
		return fmt.Errorf("invalid initial-charge %f: must be between 0 and 100", m.InitialChargePercent)
	}
	if m.CargoCapacity < 1 {
		return fmt.Errorf("invalid cargo-capacity %d: must be at least 1", m.CargoCapacity)
	}
	if m.VehicleMass <= 0 {
		return fmt.Errorf("invalid vehicle-mass %f: must be positive", m.VehicleMass)
	}
	if m.TargetMass < 0 {
		return fmt.Errorf("invalid target-mass %f: must not be negative", m.TargetMass)
	}

	s := cfg.Simulation
	if s.ThrusterUnits < 1 {
		return fmt.Errorf("invalid sim-thruster-units %d: must be at least 1", s.ThrusterUnits)
	}
	if s.FaultRate < 0 || s.FaultRate > 1 {
		return fmt.Errorf("invalid sim-fault-rate %f: must be between 0 and 1", s.FaultRate)
	}
	if s.LinkDropRate < 0 || s.LinkDropRate > 1 {
		return fmt.Errorf("invalid sim-link-drop-rate %f: must be between 0 and 1", s.LinkDropRate)
	}

	return nil
}

func registerServerFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.BoolVar(&config.Server.Enabled, "server-enabled", config.Server.Enabled, "Serve the status and command API")
	flagSet.IntVar(&config.Server.HTTPPort, "server-http-port", config.Server.HTTPPort, "Port on which the HTTP server is listening")
	flagSet.StringVar(&config.Server.ServerMode, "server-mode", config.Server.ServerMode, "Server mode: either prod or dev")
}

func registerMissionFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.StringVar(&config.Mission.VehicleID, "vehicle-id", config.Mission.VehicleID, "Unique identifier (UUID) of the vehicle")
	flagSet.StringVar(&config.Mission.DataFolder, "data-folder", config.Mission.DataFolder, "Path to the persistent data folder")
	flagSet.DurationVar(&config.Mission.TickInterval, "tick-interval", config.Mission.TickInterval, "Wall clock time between two control cycles")
	flagSet.Float64Var(&config.Mission.TimeStep, "time-step", config.Mission.TimeStep, "Simulated seconds per control cycle")
	flagSet.IntVar(&config.Mission.TelemetryInterval, "telemetry-interval", config.Mission.TelemetryInterval, "Send telemetry every n cycles, 0 disables it")
	flagSet.StringVar(&config.Mission.RecoveryPolicy, "recovery-policy", config.Mission.RecoveryPolicy, "State after a successful repair: scanning or resume")
	flagSet.Float64Var(&config.Mission.TargetX, "target-x", config.Mission.TargetX, "Target body position, x")
	flagSet.Float64Var(&config.Mission.TargetY, "target-y", config.Mission.TargetY, "Target body position, y")
	flagSet.Float64Var(&config.Mission.TargetZ, "target-z", config.Mission.TargetZ, "Target body position, z")
	flagSet.Float64Var(&config.Mission.TargetMass, "target-mass", config.Mission.TargetMass, "Target body mass in kg")
	flagSet.Float64Var(&config.Mission.CapacityWatts, "capacity-watts", config.Mission.CapacityWatts, "Power capacity in watts")
	flagSet.Float64Var(&config.Mission.ConversionEfficiency, "conversion-efficiency", config.Mission.ConversionEfficiency, "Power conversion efficiency in (0,1]")
	flagSet.Float64Var(&config.Mission.InitialChargePercent, "initial-charge", config.Mission.InitialChargePercent, "Initial charge in percent")
	flagSet.Float64Var(&config.Mission.VehicleMass, "vehicle-mass", config.Mission.VehicleMass, "Vehicle mass in kg")
	flagSet.IntVar(&config.Mission.CargoCapacity, "cargo-capacity", config.Mission.CargoCapacity, "Cargo buffer capacity in units")
}

func registerSimulationFlags(flagSet *pflag.FlagSet, config *config.Configuration) {
	flagSet.Uint64Var(&config.Simulation.Seed, "sim-seed", config.Simulation.Seed, "Seed of the simulated hardware")
	flagSet.Float64Var(&config.Simulation.FaultRate, "sim-fault-rate", config.Simulation.FaultRate, "Probability of a fault per hardware call")
	flagSet.Float64Var(&config.Simulation.LinkDropRate, "sim-link-drop-rate", config.Simulation.LinkDropRate, "Probability of dropping a telemetry frame")
	flagSet.IntVar(&config.Simulation.ThrusterUnits, "sim-thruster-units", config.Simulation.ThrusterUnits, "Number of propulsion units")
}
