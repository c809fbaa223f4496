package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/gemini-micro-service/backend/internal/middleware"
	"github.com/pageza/gemini-micro-service/backend/internal/service"
	"github.com/pageza/gemini-micro-service/backend/internal/types"
)

// FallbackChatResponse is shown to the user whenever a reply cannot be produced
const FallbackChatResponse = "I'm having some technical difficulties right now. Please try asking your question again! 🤖"

// ChatHandler handles nutrition chat requests
type ChatHandler struct {
	chatService service.IChatService
	now         func() time.Time
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(chatService service.IChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		now:         time.Now,
	}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", h.Chat)
}

// Chat relays the user's message to the model and returns the cleaned reply
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	// An empty body is treated like a missing message
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := h.chatService.Reply(c.Request.Context(), &req)
	if errors.Is(err, service.ErrMessageRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	if err != nil {
		log.Printf("[%s] [ChatHandler] Chat error: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, h.response(FallbackChatResponse, "error"))
		return
	}

	c.JSON(http.StatusOK, h.response(reply, "success"))
}

func (h *ChatHandler) response(text, status string) types.ChatResponse {
	return types.ChatResponse{
		Response:  text,
		Status:    status,
		Timestamp: h.now().Format(time.RFC3339),
	}
}
