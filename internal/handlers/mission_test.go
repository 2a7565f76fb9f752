package handlers_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

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

var _ = Describe("Mission handlers", func() {
	var (
		ctx        context.Context
		db         *sql.DB
		st         *store.Store
		controller *services.Controller
		engine     *gin.Engine
	)

	newEngine := func(s *store.Store) *gin.Engine {
		cfg := *config.NewMissionWithOptionsAndDefaults()
		h := handlers.New(controller, s, cfg)
		return server.NewEngine(config.Server{ServerMode: server.ProductionServer}, func(router *gin.RouterGroup) {
			v1.RegisterHandlers(router, h)
		})
	}

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		st = store.NewStore(db)

		simCfg := *config.NewSimulationWithOptionsAndDefaults(
			config.WithSimulationFaultRate(0),
			config.WithSimulationLinkDropRate(0),
		)
		world := sim.NewWorld(simCfg, models.TargetBody{Position: models.Vector3D{X: 1000}, Mass: 1e12})
		controller = services.NewController(*config.NewMissionWithOptionsAndDefaults(),
			world.Sensors(), world.Actuators(), world.Link(),
			services.WithObserver(services.NewRecorder(st)))

		engine = newEngine(st)
	})

	AfterEach(func() {
		if db != nil {
			_ = db.Close()
		}
	})

	Describe("GetMissionStatus", func() {
		It("should report an idle controller", func() {
			w := do(http.MethodGet, "/api/v1/mission", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var status v1.MissionStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &status)).To(Succeed())
			Expect(status.State).To(Equal(string(models.MissionStateIdle)))
			Expect(status.MissionId).To(BeEmpty())
			Expect(status.Resources.ChargePercent).To(Equal(100.0))
		})
	})

	Describe("StartMission", func() {
		It("should accept a mission and reject a second one", func() {
			w := do(http.MethodPost, "/api/v1/mission", `{"target":{"x":1000,"y":0,"z":0},"mass":1e12}`)
			Expect(w.Code).To(Equal(http.StatusAccepted))

			var mission v1.Mission
			Expect(json.Unmarshal(w.Body.Bytes(), &mission)).To(Succeed())
			Expect(mission.Id).NotTo(BeEmpty())
			Expect(mission.Status).To(Equal(string(models.MissionStatusActive)))
			Expect(mission.Target.Position.X).To(Equal(1000.0))
			Expect(controller.State()).To(Equal(models.MissionStatePreFlightCheck))

			stored, err := st.Missions().Get(ctx, mission.Id)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(models.MissionStatusActive))

			w = do(http.MethodPost, "/api/v1/mission", `{"target":{"x":1000}}`)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should use the configured mass when none is given", func() {
			w := do(http.MethodPost, "/api/v1/mission", `{"target":{"x":500}}`)
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(controller.Status().Target.Mass).To(Equal(1e12))
		})

		It("should reject a request without target", func() {
			w := do(http.MethodPost, "/api/v1/mission", `{"mass":10}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(controller.State()).To(Equal(models.MissionStateIdle))
		})

		It("should reject a negative mass", func() {
			w := do(http.MethodPost, "/api/v1/mission", `{"target":{"x":1000},"mass":-5}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject malformed json", func() {
			w := do(http.MethodPost, "/api/v1/mission", `{"target":`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ResetMission", func() {
		It("should refuse to reset an idle controller", func() {
			w := do(http.MethodPost, "/api/v1/mission/reset", "")
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should reset a hibernating controller", func() {
			Expect(controller.Restore(ctx, models.Checkpoint{State: models.MissionStateHibernating, ChargePercent: 2})).To(Succeed())

			w := do(http.MethodPost, "/api/v1/mission/reset", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var status v1.MissionStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &status)).To(Succeed())
			Expect(status.State).To(Equal(string(models.MissionStateIdle)))
		})
	})

	Describe("SendCommand", func() {
		It("should queue a known command", func() {
			w := do(http.MethodPost, "/api/v1/mission/commands", `{"command":"REPORT_STATUS"}`)
			Expect(w.Code).To(Equal(http.StatusAccepted))

			var resp v1.CommandResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Command).To(Equal("REPORT_STATUS"))
			Expect(resp.Queued).To(BeTrue())
		})

		It("should reject an unknown command", func() {
			w := do(http.MethodPost, "/api/v1/mission/commands", `{"command":"report_status"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject an empty body", func() {
			w := do(http.MethodPost, "/api/v1/mission/commands", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GetMissionHealth", func() {
		It("should return the component table", func() {
			w := do(http.MethodGet, "/api/v1/mission/health", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var health v1.Health
			Expect(json.Unmarshal(w.Body.Bytes(), &health)).To(Succeed())
			Expect(health.Healthy).To(BeTrue())
			Expect(health.PrimaryError).To(Equal(string(models.ErrorNone)))

			ids := make([]string, 0, len(health.Components))
			for _, c := range health.Components {
				ids = append(ids, c.Id)
			}
			Expect(ids).To(ContainElements(models.ComponentPower, models.ComponentPropulsion, models.ComponentLidar, models.ComponentComms))
		})
	})

	Describe("ListTransitions", func() {
		BeforeEach(func() {
			_, err := controller.StartMission(ctx, models.Vector3D{X: 1000}, 1e12)
			Expect(err).NotTo(HaveOccurred())
			controller.Step(ctx)
		})

		It("should list the stored transitions newest first", func() {
			w := do(http.MethodGet, "/api/v1/mission/transitions", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var list v1.TransitionList
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Transitions).To(HaveLen(2))
			Expect(list.Transitions[0].To).To(Equal(string(models.MissionStateNavigatingToTarget)))
			Expect(list.Transitions[1].From).To(Equal(string(models.MissionStateIdle)))
		})

		It("should filter by mission and limit", func() {
			id := controller.Status().MissionID

			w := do(http.MethodGet, "/api/v1/mission/transitions?limit=1&mission_id="+id, "")
			Expect(w.Code).To(Equal(http.StatusOK))
			var list v1.TransitionList
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Transitions).To(HaveLen(1))
			Expect(list.Transitions[0].MissionId).To(Equal(id))

			w = do(http.MethodGet, "/api/v1/mission/transitions?mission_id=unknown", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(json.Unmarshal(w.Body.Bytes(), &list)).To(Succeed())
			Expect(list.Transitions).To(BeEmpty())
		})

		It("should reject an invalid limit", func() {
			Expect(do(http.MethodGet, "/api/v1/mission/transitions?limit=0", "").Code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodGet, "/api/v1/mission/transitions?limit=ten", "").Code).To(Equal(http.StatusBadRequest))
		})

		It("should be unavailable without a store", func() {
			engine = newEngine(nil)
			Expect(do(http.MethodGet, "/api/v1/mission/transitions", "").Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	It("should answer unknown routes with a json 404", func() {
		w := do(http.MethodGet, "/api/v1/nowhere", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("API endpoint not found"))
	})
})
