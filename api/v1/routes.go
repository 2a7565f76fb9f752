package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /mission)
	GetMissionStatus(c *gin.Context)
	// (POST /mission)
	StartMission(c *gin.Context)
	// (POST /mission/reset)
	ResetMission(c *gin.Context)
	// (POST /mission/commands)
	SendCommand(c *gin.Context)
	// (GET /mission/health)
	GetMissionHealth(c *gin.Context)
	// (GET /mission/transitions)
	ListTransitions(c *gin.Context, params ListTransitionsParams)
}

// RegisterHandlers binds every route of ServerInterface on router.
func RegisterHandlers(router gin.IRoutes, si ServerInterface) {
	router.GET("/mission", si.GetMissionStatus)
	router.POST("/mission", si.StartMission)
	router.POST("/mission/reset", si.ResetMission)
	router.POST("/mission/commands", si.SendCommand)
	router.GET("/mission/health", si.GetMissionHealth)
	router.GET("/mission/transitions", func(c *gin.Context) {
		var params ListTransitionsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
			return
		}
		si.ListTransitions(c, params)
	})
}
