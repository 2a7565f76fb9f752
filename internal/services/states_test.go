package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/services"
)

var _ = Describe("State handlers", func() {
	var (
		ctx        context.Context
		cfg        config.Mission
		sensing    *FakeSensing
		actuation  *FakeActuation
		comms      *FakeComms
		recorder   *RecordingObserver
		controller *services.Controller
	)

	site := models.Vector3D{X: 5}

	BeforeEach(func() {
		ctx = context.TODO()
		cfg = *config.NewMissionWithOptionsAndDefaults()
		sensing = NewFakeSensing()
		sensing.Points = []models.Vector3D{site}
		actuation = NewFakeActuation()
		comms = &FakeComms{}
		recorder = &RecordingObserver{}
	})

	JustBeforeEach(func() {
		controller = services.NewController(cfg, sensing, actuation, comms, services.WithObserver(recorder))
	})

	restore := func(cp models.Checkpoint) {
		if cp.ChargePercent == 0 {
			cp.ChargePercent = 90
		}
		Expect(controller.Restore(ctx, cp)).To(Succeed())
	}

	// toDrilling walks an attached vehicle from scanning to drilling.
	toDrilling := func() {
		restore(models.Checkpoint{MissionID: "m-1", State: models.MissionStateScanning, Attached: true})
		Expect(controller.Step(ctx)).To(Equal(models.MissionStateSelectingSite))
		Expect(controller.Step(ctx)).To(Equal(models.MissionStateAnalyzingMaterial))
		Expect(controller.Step(ctx)).To(Equal(models.MissionStateDrilling))
	}

	Describe("resting states", func() {
		It("should leave the budget untouched while hibernating", func() {
			restore(models.Checkpoint{MissionID: "m-2", State: models.MissionStateHibernating, ChargePercent: 4})
			before := controller.Status()

			for range 100 {
				Expect(controller.Step(ctx)).To(Equal(models.MissionStateHibernating))
			}

			after := controller.Status()
			Expect(after.Resources).To(Equal(before.Resources))
			Expect(after.Resources.ChargePercent).To(BeNumerically("==", 4))
			Expect(after.Cycle).To(Equal(before.Cycle))
			Expect(comms.Sent).To(BeEmpty())
		})

		It("should leave the budget untouched after an emergency abort", func() {
			restore(models.Checkpoint{MissionID: "m-3", State: models.MissionStateEmergencyAbort, ChargePercent: 50})
			before := controller.Status()

			for range 10 {
				Expect(controller.Step(ctx)).To(Equal(models.MissionStateEmergencyAbort))
			}

			Expect(controller.Status().Resources).To(Equal(before.Resources))
			Expect(controller.Status().Cycle).To(Equal(before.Cycle))
		})

		It("should still refresh health", func() {
			restore(models.Checkpoint{State: models.MissionStateEmergencyAbort})
			sensing.Reports = []models.ComponentHealth{{ID: models.ComponentIMU, Error: models.ErrorSensorFailure}}

			controller.Step(ctx)

			Expect(controller.Status().LastError).To(Equal(models.ErrorSensorFailure))
			Expect(controller.Status().Healthy).To(BeFalse())
		})
	})

	Describe("approaching", func() {
		JustBeforeEach(func() {
			restore(models.Checkpoint{
				State:  models.MissionStateApproaching,
				Target: models.TargetBody{Position: models.Vector3D{X: 100}},
			})
		})

		Context("with an obstacle inside the avoidance range", func() {
			BeforeEach(func() {
				sensing.Obstacles = []models.Obstacle{{Direction: models.Vector3D{X: 1}, Distance: 2}}
			})

			It("should fire a burst and keep closing in", func() {
				Expect(controller.Step(ctx)).To(Equal(models.MissionStateApproaching))
				Expect(actuation.ThrustCalls).To(Equal(2))
			})

			It("should go to repair when the burst fails", func() {
				actuation.ThrustErr = models.NewFault(models.ErrorActuatorFailure, models.ComponentPropulsion, "nozzle stuck")

				Expect(controller.Step(ctx)).To(Equal(models.MissionStateRepairing))
				Expect(actuation.ThrustCalls).To(Equal(1))
				Expect(recorder.HasFault(models.ErrorActuatorFailure)).To(BeTrue())
			})
		})

		Context("with an obstacle beyond the avoidance range", func() {
			BeforeEach(func() {
				sensing.Obstacles = []models.Obstacle{{Direction: models.Vector3D{X: 1}, Distance: 8}}
			})

			It("should only navigate", func() {
				Expect(controller.Step(ctx)).To(Equal(models.MissionStateApproaching))
				Expect(actuation.ThrustCalls).To(Equal(1))
			})
		})
	})

	It("should go back to approaching when no attachment point is found", func() {
		restore(models.Checkpoint{
			State:  models.MissionStateAttaching,
			Target: models.TargetBody{Position: models.Vector3D{X: 55}},
		})

		Expect(controller.Step(ctx)).To(Equal(models.MissionStateApproaching))
		Expect(actuation.AttachCalls).To(BeZero())
		Expect(recorder.HasFault(models.ErrorAttachmentFailure)).To(BeTrue())
	})

	Describe("stabilizing", func() {
		It("should counter-thrust and stay while the body spins", func() {
			sensing.Spin = models.Vector3D{Z: 0.008}
			restore(models.Checkpoint{State: models.MissionStateStabilizing, Attached: true})

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateStabilizing))
			Expect(actuation.ThrustCalls).To(Equal(1))
			Expect(controller.Status().Target.AngularVelocity).To(Equal(models.Vector3D{Z: 0.008}))

			sensing.Spin = models.Vector3D{}
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(actuation.ThrustCalls).To(Equal(1))
		})

		It("should go to repair when the counter thrust fails", func() {
			sensing.Spin = models.Vector3D{Z: 0.008}
			actuation.ThrustErr = models.NewFault(models.ErrorActuatorFailure, models.ComponentPropulsion, "nozzle stuck")
			restore(models.Checkpoint{State: models.MissionStateStabilizing, Attached: true})

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateRepairing))
		})
	})

	Describe("target body spin", func() {
		It("should not be updated by the homeostasis reading", func() {
			sensing.Points = nil
			sensing.Spin = models.Vector3D{Z: 0.008}
			restore(models.Checkpoint{State: models.MissionStateScanning, Attached: true})

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(controller.Status().Target.AngularVelocity).To(Equal(models.Vector3D{}))
		})

		It("should be updated by stabilization", func() {
			sensing.Points = nil
			sensing.Spin = models.Vector3D{Z: 0.02}
			restore(models.Checkpoint{State: models.MissionStateScanning, Attached: true})

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateStabilizing))
			Expect(controller.Status().Target.AngularVelocity).To(Equal(models.Vector3D{Z: 0.02}))
		})
	})

	Describe("site selection", func() {
		JustBeforeEach(func() {
			restore(models.Checkpoint{State: models.MissionStateScanning, Attached: true})
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateSelectingSite))
		})

		It("should scan again when the site degraded", func() {
			sensing.Scores[site] = 0.3

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(sensing.AnalyzeCalls).To(BeZero())
			Expect(recorder.HasFault(models.ErrorStructuralIntegrityCompromised)).To(BeTrue())
		})

		It("should scan again when the site cannot be ranged", func() {
			sensing.RangeErr = models.NewFault(models.ErrorSensorFailure, models.ComponentLidar, "no return")

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(recorder.HasFault(models.ErrorSensorFailure)).To(BeTrue())
		})

		It("should scan again when the analysis fails", func() {
			sensing.AnalyzeErr = models.NewFault(models.ErrorSensorFailure, models.ComponentLidar, "spectrometer dark")

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateAnalyzingMaterial))
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(sensing.AnalyzeCalls).To(Equal(1))
			Expect(actuation.DrillCalls).To(BeZero())
		})

		It("should scan again when the density is unknown", func() {
			sensing.Material.Density = 0

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateAnalyzingMaterial))
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(actuation.DrillCalls).To(BeZero())
		})
	})

	Describe("drilling", func() {
		It("should go to repair when the drill fails", func() {
			actuation.DrillErr = models.NewFault(models.ErrorActuatorFailure, models.ComponentDrill, "bit stuck")
			toDrilling()

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateRepairing))
			Expect(actuation.DrillCalls).To(Equal(1))
			Expect(recorder.HasFault(models.ErrorActuatorFailure)).To(BeTrue())
		})

		It("should refuse a worn bit", func() {
			restore(models.Checkpoint{State: models.MissionStateDrilling, Attached: true, DrillWear: 1.0})

			next, reason := controller.RunHandler(ctx)
			Expect(next).To(Equal(models.MissionStateRepairing))
			Expect(reason).To(Equal("drill wear critical"))
			Expect(actuation.DrillCalls).To(BeZero())
			Expect(recorder.HasFault(models.ErrorDrillWearCritical)).To(BeTrue())
		})

		It("should replace a worn bit before drilling", func() {
			restore(models.Checkpoint{State: models.MissionStateDrilling, Attached: true, DrillWear: 1.0})

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(recorder.Path()).To(ContainElement(models.MissionStateRepairing))
			Expect(actuation.DrillCalls).To(BeZero())
			Expect(float64(controller.Status().DrillWear)).To(BeZero())
		})
	})

	Describe("extracting", func() {
		It("should go to repair when a load fails", func() {
			actuation.LoadErr = models.NewFault(models.ErrorActuatorFailure, models.ComponentConveyor, "belt jammed")
			toDrilling()
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateExtracting))

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateRepairing))
			Expect(actuation.LoadCalls).To(Equal(1))
			Expect(controller.Status().Cargo.Quantity).To(BeZero())
		})

		It("should scan again when the site runs dry", func() {
			sensing.Material.Yield = 100
			toDrilling()
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateExtracting))

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			// chunk is 50 * 2.5 / 5 = 25 units
			Expect(actuation.LoadCalls).To(Equal(4))
			Expect(controller.Status().Cargo.Quantity).To(Equal(100))
			Expect(recorder.HasFault(models.ErrorResourceDepletion)).To(BeTrue())
		})
	})

	It("should go to repair when the release fails", func() {
		actuation.DetachErr = models.NewFault(models.ErrorAttachmentFailure, models.ComponentArm, "claw jammed")
		restore(models.Checkpoint{
			State:    models.MissionStateDelivering,
			Attached: true,
			Cargo:    models.MissionCargo{Kind: models.MaterialIronNickel, Quantity: 1000, Refined: true},
		})

		Expect(controller.Step(ctx)).To(Equal(models.MissionStateRepairing))
		Expect(actuation.DetachCalls).To(Equal(1))
		Expect(controller.Status().Attached).To(BeTrue())
	})

	It("should go to repair when unloading fails", func() {
		actuation.UnloadErr = models.NewFault(models.ErrorActuatorFailure, models.ComponentConveyor, "hatch stuck")
		restore(models.Checkpoint{
			MissionID: "m-4",
			State:     models.MissionStateUnloading,
			Cargo:     models.MissionCargo{Kind: models.MaterialIronNickel, Quantity: 1000, Refined: true},
		})

		Expect(controller.Step(ctx)).To(Equal(models.MissionStateRepairing))
		Expect(controller.Status().Cargo.Quantity).To(Equal(1000))
		mission, ok := controller.Mission()
		Expect(ok).To(BeTrue())
		Expect(mission.Status).To(Equal(models.MissionStatusActive))
		Expect(mission.Delivered).To(BeZero())
	})
})
