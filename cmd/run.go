package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/ecordell/optgen/helpers"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/tupyy/areomh-controller/api/v1"
	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/handlers"
	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/server"
	"github.com/tupyy/areomh-controller/internal/services"
	"github.com/tupyy/areomh-controller/internal/sim"
	"github.com/tupyy/areomh-controller/internal/store"
	"github.com/tupyy/areomh-controller/internal/store/migrations"
)

func NewRunCommand(cfg *config.Configuration) *cobra.Command {
	var (
		resume    bool
		autostart bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the mission controller",
		Example: `  # Run the controller and start a mission toward the default target
  areomh run --autostart

  # Resume from the last checkpoint stored in the data folder
  areomh run --data-folder /var/lib/areomh --resume

  # Run with a custom target and the resume recovery policy
  areomh run --autostart --target-x 2500 --target-y 300 --recovery-policy resume`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfiguration(cfg); err != nil {
				return err
			}

			zap.S().Infow("using configuration",
				"server", helpers.Flatten(cfg.Server.DebugMap()),
				"mission", helpers.Flatten(cfg.Mission.DebugMap()),
				"simulation", helpers.Flatten(cfg.Simulation.DebugMap()),
			)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
			defer cancel()
			wg := sync.WaitGroup{}

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
			controller := services.NewController(cfg.Mission, world.Sensors(), world.Actuators(), world.Link(),
				services.WithObserver(services.NewRecorder(s)),
			)

			switch {
			case resume:
				cp, err := s.Checkpoints().Latest(ctx)
				if errors.Is(err, store.ErrNotFound) {
					zap.S().Warn("no checkpoint stored, starting idle")
					break
				}
				if err != nil {
					zap.S().Errorw("failed to read checkpoint", "error", err)
					return err
				}
				if err := controller.Restore(ctx, *cp); err != nil {
					zap.S().Errorw("failed to restore checkpoint", "error", err)
					return err
				}
				zap.S().Infow("restored checkpoint", "mission_id", cp.MissionID, "state", cp.State)
			case autostart:
				m, err := controller.StartMission(ctx, target.Position, target.Mass)
				if err != nil {
					return err
				}
				zap.S().Infow("mission started", "mission_id", m.ID, "vehicle_id", cfg.Mission.VehicleID)
			}

			if cfg.Server.Enabled {
				h := handlers.New(controller, s, cfg.Mission)
				srv, err := server.NewServer(cfg.Server, func(router *gin.RouterGroup) {
					v1.RegisterHandlers(router, h)
				})
				if err != nil {
					zap.S().Errorw("failed to create http server", "error", err)
					return err
				}

				wg.Add(1)
				go func() {
					defer func() {
						wg.Done()
						cancel()
					}()
					zap.S().Infof("Starting HTTP server on port %d", cfg.Server.HTTPPort)

					if err := srv.Start(ctx); err != nil {
						if !errors.Is(err, http.ErrServerClosed) {
							zap.S().Errorw("failed to start http server", "error", err)
						}
					}
				}()

				go func() {
					<-ctx.Done()
					stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
					defer stopCancel()
					done := make(chan any, 1)
					srv.Stop(stopCtx, done)
					<-done
				}()
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				ticker := time.NewTicker(cfg.Mission.TickInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						controller.Step(ctx)
					}
				}
			}()

			<-ctx.Done()
			wg.Wait()

			saveCtx, saveCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer saveCancel()
			cp := controller.Checkpoint()
			if err := s.Checkpoints().Save(saveCtx, cp); err != nil {
				zap.S().Errorw("failed to save checkpoint", "error", err)
			} else {
				zap.S().Infow("checkpoint saved", "mission_id", cp.MissionID, "state", cp.State)
			}

			zap.S().Info("controller shutdown")

			return nil
		},
	}

	runCmd.Flags().BoolVar(&resume, "resume", false, "Restore the last stored checkpoint before running")
	runCmd.Flags().BoolVar(&autostart, "autostart", false, "Start a mission toward the configured target")
	registerFlags(runCmd, cfg, true)

	return runCmd
}

// openStore opens the database in dataFolder, or in memory when it is empty,
// and runs the migrations.
func openStore(ctx context.Context, dataFolder string) (*store.Store, error) {
	dbPath := filepath.Join(dataFolder, "areomh.duckdb")
	if dataFolder == "" {
		dbPath = ":memory:"
		zap.S().Warn("data-folder not set, using in-memory database (data will not persist)")
	}
	db, err := store.NewDB(dbPath)
	if err != nil {
		zap.S().Errorw("failed to initialize database", "error", err)
		return nil, err
	}

	if err := migrations.Run(ctx, db); err != nil {
		zap.S().Errorw("failed to run migrations", "error", err)
		_ = db.Close()
		return nil, err
	}
	zap.S().Info("database initialized successfully")

	return store.NewStore(db), nil
}
