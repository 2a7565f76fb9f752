package handlers

import (
	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/internal/services"
	"github.com/tupyy/areomh-controller/internal/store"
)

const defaultTransitionLimit = 100

// Handler implements v1.ServerInterface on top of the mission controller.
type Handler struct {
	controller *services.Controller
	store      *store.Store
	mission    config.Mission
}

// New creates a handler. st may be nil, the transition log is then unavailable.
func New(controller *services.Controller, st *store.Store, cfg config.Mission) *Handler {
	return &Handler{
		controller: controller,
		store:      st,
		mission:    cfg,
	}
}
