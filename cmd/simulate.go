package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/services"
	"github.com/tupyy/areomh-controller/internal/sim"
)

func NewSimulateCommand(cfg *config.Configuration) *cobra.Command {
	var (
		cycles   int
		commands []string
	)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one mission against the simulated hardware and print the transition log",
		Example: `  # Simulate a mission without faults
  areomh simulate --sim-fault-rate 0 --sim-link-drop-rate 0

  # Simulate with a different seed and operator commands sent over the link
  areomh simulate --sim-seed 42 --command OPTIMIZE_DRILL_RPM --command REPORT_STATUS`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfiguration(cfg); err != nil {
				return err
			}
			if cycles < 1 {
				return fmt.Errorf("invalid cycles %d: must be at least 1", cycles)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			s, err := openStore(ctx, cfg.Mission.DataFolder)
			if err != nil {
				return err
			}
			defer s.Close()

			target := models.TargetBody{
				Position: models.Vector3D{X: cfg.Mission.TargetX, Y: cfg.Mission.TargetY, Z: cfg.Mission.TargetZ},
				Mass:     cfg.Mission.TargetMass,
			}
			world := sim.NewWorld(cfg.Simulation, target)
			for _, c := range commands {
				world.QueueCommand(c)
			}

			controller := services.NewController(cfg.Mission, world.Sensors(), world.Actuators(), world.Link(),
				services.WithObserver(services.NewRecorder(s)),
			)
			mission, err := controller.StartMission(ctx, target.Position, target.Mass)
			if err != nil {
				return err
			}

			state := controller.State()
			ran := 0
			for ; ran < cycles && !state.IsTerminal(); ran++ {
				state = controller.Step(ctx)
			}
			zap.S().Infow("simulation finished", "cycles", ran, "state", state)

			events, err := s.Transitions().List(ctx, mission.ID, 4*ran+8)
			if err != nil {
				return err
			}
			slices.Reverse(events)

			out := cmd.OutOrStdout()
			printTransitions(out, events)

			if m, err := s.Missions().Get(ctx, mission.ID); err == nil {
				fmt.Fprintf(out, "\nmission %s %s after %d cycles: delivered %d units worth %.2f\n",
					m.ID, colorStatus(m.Status), ran, m.Delivered, m.Value)
			} else {
				fmt.Fprintf(out, "\nmission %s still %s after %d cycles\n", mission.ID, state, ran)
			}

			return nil
		},
	}

	simulateCmd.Flags().IntVar(&cycles, "cycles", 5000, "Maximum number of control cycles")
	simulateCmd.Flags().StringArrayVar(&commands, "command", nil, "Operator command delivered over the link, may be repeated")
	registerFlags(simulateCmd, cfg, false)

	return simulateCmd
}

func printTransitions(w io.Writer, events []models.TransitionEvent) {
	title := color.New(color.Bold)
	fmt.Fprintln(w, title.Sprintf("%-7s %-22s %-22s %s", "CYCLE", "FROM", "TO", "REASON"))
	for _, e := range events {
		fmt.Fprintf(w, "%-7d %-22s %s %s\n", e.Cycle, e.From, colorState(e.To, 22), e.Reason)
	}
}

func colorState(s models.MissionState, width int) string {
	padded := fmt.Sprintf("%-*s", width, s)
	switch {
	case s.IsFatal():
		return color.RedString(padded)
	case s == models.MissionStateRepairing:
		return color.YellowString(padded)
	case s == models.MissionStateIdle:
		return color.GreenString(padded)
	default:
		return padded
	}
}

func colorStatus(s models.MissionStatusType) string {
	text := strings.ToUpper(string(s))
	switch s {
	case models.MissionStatusCompleted:
		return color.GreenString(text)
	case models.MissionStatusAborted:
		return color.RedString(text)
	default:
		return text
	}
}
