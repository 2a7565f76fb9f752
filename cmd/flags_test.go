package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/areomh-controller/internal/config"
)

var _ = Describe("validateConfiguration", func() {
	var cfg *config.Configuration

	BeforeEach(func() {
		cfg = config.NewConfigurationWithOptionsAndDefaults()
	})

	It("should accept the defaults", func() {
		Expect(validateConfiguration(cfg)).To(Succeed())
	})

	It("should accept a uuid vehicle id", func() {
		cfg.Mission.VehicleID = "6f1a3c2e-8b4d-4f6a-9c1e-2d3b4a5c6d7e"
		Expect(validateConfiguration(cfg)).To(Succeed())
	})

	DescribeTable("invalid configurations",
		func(mutate func(c *config.Configuration)) {
			mutate(cfg)
			Expect(validateConfiguration(cfg)).NotTo(Succeed())
		},
		Entry("server mode", func(c *config.Configuration) { c.Server.ServerMode = "staging" }),
		Entry("http port", func(c *config.Configuration) { c.Server.HTTPPort = 0 }),
		Entry("vehicle id", func(c *config.Configuration) { c.Mission.VehicleID = "rover-1" }),
		Entry("recovery policy", func(c *config.Configuration) { c.Mission.RecoveryPolicy = "retry" }),
		Entry("tick interval", func(c *config.Configuration) { c.Mission.TickInterval = 0 }),
		Entry("efficiency", func(c *config.Configuration) { c.Mission.ConversionEfficiency = 1.5 }),
		Entry("initial charge", func(c *config.Configuration) { c.Mission.InitialChargePercent = 120 }),
		Entry("cargo capacity", func(c *config.Configuration) { c.Mission.CargoCapacity = 0 }),
		Entry("target mass", func(c *config.Configuration) { c.Mission.TargetMass = -1 }),
		Entry("thruster units", func(c *config.Configuration) { c.Simulation.ThrusterUnits = 0 }),
		Entry("fault rate", func(c *config.Configuration) { c.Simulation.FaultRate = 2 }),
	)
})
