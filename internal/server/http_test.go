package server_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/server"
)

var _ = Describe("Server", func() {
	register := func(router *gin.RouterGroup) {
		router.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})
	}

	DescribeTable("port validation",
		func(port int, valid bool) {
			_, err := server.NewServer(config.Server{HTTPPort: port, ServerMode: server.ProductionServer}, register)
			if valid {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("zero", 0, false),
		Entry("too large", 70000, false),
		Entry("default", 8080, true),
	)

	It("should mount routes under /api/v1", func() {
		engine := server.NewEngine(config.Server{ServerMode: server.ProductionServer}, register)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should recover from a panicking handler", func() {
		engine := server.NewEngine(config.Server{ServerMode: server.ProductionServer}, register)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/panic", nil))
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
