package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/services"
)

var _ = Describe("Homeostasis", func() {
	var (
		h      *services.Homeostasis
		vitals services.Vitals
	)

	BeforeEach(func() {
		h = services.NewHomeostasis(*config.NewMissionWithOptionsAndDefaults())
		vitals = services.Vitals{
			State:              models.MissionStateNavigatingToTarget,
			ChargePercent:      80,
			PropulsionFraction: 1,
			Healthy:            true,
			PrimaryError:       models.ErrorNone,
		}
	})

	It("should do nothing for a nominal vehicle", func() {
		d := h.Evaluate(vitals)
		Expect(d.Preempt).To(BeFalse())
		Expect(d.Rule).To(Equal(services.RuleNone))
		Expect(d.Recharge).To(BeZero())
	})

	It("should send a worn drill to repair while selecting a site", func() {
		vitals.State = models.MissionStateScanning
		vitals.DrillWear = 0.85

		d := h.Evaluate(vitals)
		Expect(d.Preempt).To(BeTrue())
		Expect(d.Rule).To(Equal(services.RulePreventiveMaintenance))
		Expect(d.Next).To(Equal(models.MissionStateRepairing))
	})

	It("should ignore drill wear outside site selection", func() {
		vitals.DrillWear = 0.85
		Expect(h.Evaluate(vitals).Preempt).To(BeFalse())
	})

	It("should hibernate before checking propulsion", func() {
		vitals.ChargePercent = 3
		vitals.PropulsionFraction = 0

		d := h.Evaluate(vitals)
		Expect(d.Rule).To(Equal(services.RulePowerFloor))
		Expect(d.Next).To(Equal(models.MissionStateHibernating))
	})

	It("should recharge in transit without a transition", func() {
		vitals.ChargePercent = 15

		d := h.Evaluate(vitals)
		Expect(d.Preempt).To(BeFalse())
		Expect(d.Rule).To(Equal(services.RuleAcceleratedRecharge))
		Expect(d.Recharge).To(Equal(5.0))
	})

	It("should keep evaluating after the recharge", func() {
		vitals.State = models.MissionStateReturning
		vitals.ChargePercent = 15
		vitals.Healthy = false
		vitals.PrimaryError = models.ErrorSensorFailure

		d := h.Evaluate(vitals)
		Expect(d.Preempt).To(BeTrue())
		Expect(d.Rule).To(Equal(services.RuleSystemicFault))
		Expect(d.Next).To(Equal(models.MissionStateRepairing))
		Expect(d.Recharge).To(Equal(5.0))
	})

	It("should not recharge outside transit", func() {
		vitals.State = models.MissionStateDrilling
		vitals.ChargePercent = 15
		Expect(h.Evaluate(vitals).Recharge).To(BeZero())
	})

	DescribeTable("propulsion loss",
		func(state models.MissionState, preempt bool) {
			vitals.State = state
			vitals.PropulsionFraction = 0
			d := h.Evaluate(vitals)
			Expect(d.Preempt).To(Equal(preempt))
			if preempt {
				Expect(d.Next).To(Equal(models.MissionStateEmergencyAbort))
			}
		},
		Entry("navigating", models.MissionStateNavigatingToTarget, true),
		Entry("approaching", models.MissionStateApproaching, true),
		Entry("drilling", models.MissionStateDrilling, false),
	)

	Describe("target instability", func() {
		BeforeEach(func() {
			vitals.State = models.MissionStateScanning
			vitals.AngularVelocity = models.Vector3D{Z: 0.02}
		})

		It("should abort when not attached", func() {
			d := h.Evaluate(vitals)
			Expect(d.Rule).To(Equal(services.RuleTargetInstability))
			Expect(d.Next).To(Equal(models.MissionStateEmergencyAbort))
		})

		It("should stabilize when attached", func() {
			vitals.Attached = true
			d := h.Evaluate(vitals)
			Expect(d.Next).To(Equal(models.MissionStateStabilizing))
		})

		It("should leave an attached vehicle already stabilizing alone", func() {
			vitals.Attached = true
			vitals.State = models.MissionStateStabilizing
			Expect(h.Evaluate(vitals).Preempt).To(BeFalse())
		})

		It("should tolerate spin up to the instability limit", func() {
			vitals.AngularVelocity = models.Vector3D{Z: 0.01}
			Expect(h.Evaluate(vitals).Preempt).To(BeFalse())
		})
	})

	It("should not run in repairing or terminal states", func() {
		vitals.ChargePercent = 1
		for _, s := range []models.MissionState{
			models.MissionStateRepairing,
			models.MissionStateIdle,
			models.MissionStateEmergencyAbort,
			models.MissionStateHibernating,
		} {
			vitals.State = s
			Expect(h.Skips(s)).To(BeTrue())
			Expect(h.Evaluate(vitals).Preempt).To(BeFalse())
		}
	})

	Context("running inside the controller", func() {
		var (
			ctx        context.Context
			sensing    *FakeSensing
			actuation  *FakeActuation
			comms      *FakeComms
			recorder   *RecordingObserver
			controller *services.Controller
		)

		BeforeEach(func() {
			ctx = context.TODO()
			sensing = NewFakeSensing()
			actuation = NewFakeActuation()
			comms = &FakeComms{}
			recorder = &RecordingObserver{}
			controller = services.NewController(*config.NewMissionWithOptionsAndDefaults(), sensing, actuation, comms, services.WithObserver(recorder))
		})

		It("should repair a worn drill before the scanning handler runs", func() {
			Expect(controller.Restore(ctx, models.Checkpoint{
				MissionID:     "m-1",
				State:         models.MissionStateScanning,
				DrillWear:     0.85,
				Attached:      true,
				ChargePercent: 90,
			})).To(Succeed())

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateScanning))
			Expect(recorder.Path()).To(Equal([]models.MissionState{
				models.MissionStateScanning,
				models.MissionStateRepairing,
				models.MissionStateScanning,
			}))
			Expect(sensing.ScanCalls).To(BeZero())
			Expect(controller.Status().DrillWear).To(BeZero())
		})

		It("should abort when every propulsion unit is disabled in transit", func() {
			actuation.Operational = 0
			Expect(controller.Restore(ctx, models.Checkpoint{
				MissionID:     "m-2",
				State:         models.MissionStateNavigatingToTarget,
				Target:        models.TargetBody{Position: models.Vector3D{X: 1000}, Mass: 1e12},
				ChargePercent: 90,
			})).To(Succeed())

			Expect(controller.Step(ctx)).To(Equal(models.MissionStateEmergencyAbort))
			Expect(actuation.ThrustCalls).To(BeZero())

			mission, ok := controller.Mission()
			Expect(ok).To(BeTrue())
			Expect(mission.Status).To(Equal(models.MissionStatusAborted))

			// terminal: nothing runs until reset
			Expect(controller.Step(ctx)).To(Equal(models.MissionStateEmergencyAbort))
			Expect(controller.Reset(ctx)).To(Succeed())
			Expect(controller.State()).To(Equal(models.MissionStateIdle))
		})

		It("should apply the transit recharge", func() {
			Expect(controller.Restore(ctx, models.Checkpoint{
				State:         models.MissionStateReturning,
				ChargePercent: 15,
			})).To(Succeed())

			controller.Step(ctx)
			Expect(controller.Status().Resources.ChargePercent).To(BeNumerically(">", 15))
		})
	})
})
