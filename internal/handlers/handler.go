package handlers

import (
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "smart_thermostat/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// State stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerThermostatRoutes(api)
		h.registerWeatherRoutes(api)
		h.registerAssistantRoutes(api)
		api.GET("/logs", h.getLogs)
	}
}

func (h *Handler) registerThermostatRoutes(api *gin.RouterGroup) {
	th := api.Group("/thermostat")
	{
		th.GET("/state", h.getState)
		// Body example: {"mode":"Cool"}
		th.POST("/mode", h.setMode)
		th.POST("/fan", h.setFan)
		th.POST("/comfort", h.setComfort)
		// Body example: {"comfort":"Home","target":"heat","value":70}
		th.POST("/setpoint", h.setSetpoint)
		th.POST("/dial", h.setDialTarget)
		th.POST("/dial/step", h.stepDial)
		th.POST("/location", h.setLocation)
		th.PUT("/comforts/:name", h.putComfort)
	}
}

func (h *Handler) registerWeatherRoutes(api *gin.RouterGroup) {
	wx := api.Group("/weather")
	{
		wx.POST("/update", h.updateWeather)
		wx.POST("/candidate", h.selectCandidate)
		wx.POST("/detect", h.detectLocation)
	}
}

func (h *Handler) registerAssistantRoutes(api *gin.RouterGroup) {
	as := api.Group("/assistant")
	{
		as.POST("/messages", h.postMessage)
		as.GET("/pending", h.getPending)
		as.POST("/confirm", h.confirmAction)
		as.POST("/cancel", h.cancelAction)
		as.GET("/history", h.getHistory)
	}
}
