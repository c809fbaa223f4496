package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/gemini-micro-service/backend/internal/service"
)

// Version is reported by the health endpoint
const Version = "v1.0.0"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Nutrition assistant API is running",
		"version": Version,
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, foodService service.IFoodService, chatService service.IChatService) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	api := router.Group("/api")
	NewFoodHandler(foodService).RegisterRoutes(api)
	NewChatHandler(chatService).RegisterRoutes(api)
}
