package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/areomh-controller/api/v1"
	"github.com/tupyy/areomh-controller/internal/models"
	"github.com/tupyy/areomh-controller/internal/services"
)

// GetMissionStatus returns the controller status
// (GET /mission)
func (h *Handler) GetMissionStatus(c *gin.Context) {
	var resp v1.MissionStatus
	resp.FromModel(h.controller.Status())
	c.JSON(http.StatusOK, resp)
}

// StartMission starts a mission toward the requested target
// (POST /mission)
func (h *Handler) StartMission(c *gin.Context) {
	var req v1.StartMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	mass := h.mission.TargetMass
	if req.Mass != nil {
		mass = *req.Mass
	}
	if mass < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mass must not be negative"})
		return
	}

	mission, err := h.controller.StartMission(c.Request.Context(), req.Target.ToModel(), mass)
	if err != nil {
		if errors.Is(err, services.ErrLogicConstraintViolation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("handlers").Errorw("failed to start mission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var resp v1.Mission
	resp.FromModel(mission)
	c.JSON(http.StatusAccepted, resp)
}

// ResetMission leaves a fatal state
// (POST /mission/reset)
func (h *Handler) ResetMission(c *gin.Context) {
	if err := h.controller.Reset(c.Request.Context()); err != nil {
		if errors.Is(err, services.ErrLogicConstraintViolation) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var resp v1.MissionStatus
	resp.FromModel(h.controller.Status())
	c.JSON(http.StatusOK, resp)
}

// SendCommand queues an operator command
// (POST /mission/commands)
func (h *Handler) SendCommand(c *gin.Context) {
	var req v1.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cmd, err := h.controller.EnqueueCommand(req.Command)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCommand) {
			zap.S().Named("handlers").Warnw("rejected unrecognized command", "command", req.Command)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, v1.CommandResponse{Command: string(cmd), Queued: true})
}

// GetMissionHealth returns the component health table
// (GET /mission/health)
func (h *Handler) GetMissionHealth(c *gin.Context) {
	var resp v1.Health
	resp.FromModel(h.controller.Health())
	c.JSON(http.StatusOK, resp)
}

// ListTransitions returns the stored transition log, newest first
// (GET /mission/transitions)
func (h *Handler) ListTransitions(c *gin.Context, params v1.ListTransitionsParams) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "transition log is not available"})
		return
	}

	limit := defaultTransitionLimit
	if params.Limit != nil {
		if *params.Limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be at least 1"})
			return
		}
		limit = *params.Limit
	}

	missionID := ""
	if params.MissionId != nil {
		missionID = *params.MissionId
	}

	events, err := h.store.Transitions().List(c.Request.Context(), missionID, limit)
	if err != nil {
		zap.S().Named("handlers").Errorw("failed to list transitions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var resp v1.TransitionList
	resp.FromModel(events)
	c.JSON(http.StatusOK, resp)
}
