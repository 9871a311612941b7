package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string, allowedOrigins []string) *gin.Engine {
	if !strings.EqualFold(environment, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	protected := router.Group("/")
	protected.Use(authMiddleware)

	customer := protected.Group("/customer")
	customer.GET("/profiles", handler.listProfiles)
	customer.POST("/profiles", handler.createProfile)
	customer.GET("/profiles/export", handler.exportLocations)
	customer.GET("/profiles/:id", handler.getProfile)
	customer.PUT("/profiles/:id", handler.updateProfile)
	customer.DELETE("/profiles/:id", handler.deleteProfile)
	customer.GET("/profiles/:id/history", handler.profileLocationHistory)
	customer.GET("/localbodies/:id/dates", handler.availableDates)
	customer.POST("/pickup-date", handler.savePickupDate)
	customer.GET("/pickup-date", handler.currentPickupDate)
	customer.GET("/validate-location", handler.validateLocation)

	reference := protected.Group("/reference")
	reference.GET("/states", handler.listStates)
	reference.GET("/states/:id/districts", handler.listDistricts)
	reference.GET("/districts/:id/localbodies", handler.listLocalBodies)

	collector := protected.Group("/collector")
	collector.GET("/assigned-customers", handler.listProfiles)
	collector.GET("/collections", handler.listCollections)
	collector.POST("/collections", handler.createCollection)
	collector.GET("/collections/prefill", handler.prefillCollection)
	collector.PUT("/collections/:id", handler.updateCollection)
	collector.DELETE("/collections/:id", handler.deleteCollection)
	collector.GET("/billing/summary", handler.billingSummary)
	collector.GET("/billing/summary/export", handler.exportBillingSummary)

	admin := protected.Group("/admin")
	admin.POST("/profiles/:id/assign-collector", handler.assignCollector)

	return router
}
