package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/gemini-micro-service/backend/internal/mocks"
	"github.com/pageza/gemini-micro-service/backend/internal/service"
)

const testPlaceholder = "https://via.placeholder.com/300?text=No+Image"

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter wires real services around mocked external clients
func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockTextGenerator, *mocks.MockImageSearcher) {
	t.Helper()

	llm := &mocks.MockTextGenerator{}
	images := &mocks.MockImageSearcher{}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", HealthCheck)
	api := router.Group("/api")
	NewFoodHandler(service.NewFoodService(llm, images, testPlaceholder)).RegisterRoutes(api)

	chatHandler := NewChatHandler(service.NewChatService(llm))
	chatHandler.now = func() time.Time { return fixedNow }
	chatHandler.RegisterRoutes(api)

	return router, llm, images
}

// PerformRequest performs an HTTP request against the router, encoding body as JSON
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	router.ServeHTTP(w, req)
	return w
}
