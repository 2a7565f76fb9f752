package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tupyy/areomh-controller/internal/config"
)

const (
	ProductionServer string = "prod"
	DevServer        string = "dev"
	apiV1            string = "/api/v1"
)

type Server struct {
	srv *http.Server
}

func NewServer(cfg config.Server, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid http port %d", cfg.HTTPPort)
	}

	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.HTTPPort),
			Handler: NewEngine(cfg, registerHandlerFn),
		},
	}, nil
}

// NewEngine builds the gin engine with the api routes under /api/v1.
func NewEngine(cfg config.Server, registerHandlerFn func(router *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.DebugMode)
	if cfg.ServerMode == ProductionServer {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "API endpoint not found",
		})
	})

	router := engine.Group(apiV1)
	router.Use(
		ginzap.Ginzap(zap.S().Named("http").Desugar(), time.RFC3339, true),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
	)

	registerHandlerFn(router)

	return engine
}

// Start serves until the server is stopped.
func (r *Server) Start(ctx context.Context) error {
	if err := r.srv.ListenAndServe(); err != nil {
		zap.S().Named("http").Errorw("failed to start server", "error", err)
		return err
	}

	return nil
}

func (r *Server) Stop(ctx context.Context, doneCh chan any) {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown", "error", err)
	}
	doneCh <- struct{}{}
}
