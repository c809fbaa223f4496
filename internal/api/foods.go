package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/gemini-micro-service/backend/internal/middleware"
	"github.com/pageza/gemini-micro-service/backend/internal/service"
	"github.com/pageza/gemini-micro-service/backend/internal/types"
)

// FoodHandler handles food list requests
type FoodHandler struct {
	foodService service.IFoodService
}

// NewFoodHandler creates a new FoodHandler instance
func NewFoodHandler(foodService service.IFoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// RegisterRoutes registers the food routes
func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/foods", h.GetFoods)
}

// GetFoods returns model-generated foods with an image attached to each
func (h *FoodHandler) GetFoods(c *gin.Context) {
	query := c.DefaultQuery("query", service.DefaultFoodQuery)

	foods, err := h.foodService.ListFoods(c.Request.Context(), query)
	if err != nil {
		var parseErr *service.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("[%s] [FoodHandler] Unparseable model response: %v", middleware.GetRequestID(c), parseErr.Err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":        "Failed to parse model response as JSON.",
				"details":      parseErr.Err.Error(),
				"raw_response": parseErr.Raw,
			})
			return
		}

		log.Printf("[%s] [FoodHandler] Error in GetFoods: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.FoodsResponse{Foods: foods})
}
