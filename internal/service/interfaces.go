package service

import (
	"context"

	"github.com/pageza/gemini-micro-service/backend/internal/types"
)

// TextGenerator sends a single prompt to a language model and returns the generated text
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageSearcher looks up a representative image for a text query.
// An empty URL with a nil error means the lookup found nothing.
type ImageSearcher interface {
	SearchImage(ctx context.Context, query string) (string, error)
}

// IFoodService defines the interface for food list operations
type IFoodService interface {
	ListFoods(ctx context.Context, query string) ([]types.FoodItem, error)
}

// IChatService defines the interface for nutrition chat operations
type IChatService interface {
	Reply(ctx context.Context, req *types.ChatRequest) (string, error)
}
