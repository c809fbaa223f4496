package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/pageza/gemini-micro-service/backend/internal/types"
)

const (
	// DefaultFoodQuery is used when the caller does not supply a query
	DefaultFoodQuery = "healthy food"
	// FoodListSize is the number of items requested from the model
	FoodListSize = 3
)

// ParseError is returned when the model output is not a JSON food list
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FoodService builds food lists from the language model and enriches them with images
type FoodService struct {
	llm         TextGenerator
	images      ImageSearcher
	placeholder string
}

// NewFoodService creates a new FoodService instance
func NewFoodService(llm TextGenerator, images ImageSearcher, placeholderImageURL string) *FoodService {
	return &FoodService{
		llm:         llm,
		images:      images,
		placeholder: placeholderImageURL,
	}
}

// ListFoods asks the model for food items matching query and attaches an image to each
func (s *FoodService) ListFoods(ctx context.Context, query string) ([]types.FoodItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = DefaultFoodQuery
	}

	raw, err := s.llm.Generate(ctx, BuildFoodPrompt(query))
	if err != nil {
		return nil, fmt.Errorf("failed to generate food list: %w", err)
	}
	log.Printf("[FoodService] Raw model response:\n%s", strings.TrimSpace(raw))

	foods, err := ParseFoodList(raw)
	if err != nil {
		return nil, err
	}

	if len(foods) > FoodListSize {
		foods = foods[:FoodListSize]
	}

	if err := s.attachImages(ctx, foods); err != nil {
		return nil, err
	}

	return foods, nil
}

// BuildFoodPrompt creates the prompt asking for a strict JSON list of foods
func BuildFoodPrompt(query string) string {
	return fmt.Sprintf(`Provide a list of %d %s items in the following strict JSON format:
[{
    "name": "Food name",
    "category": "Category (e.g., fruit, vegetable, protein, grain)",
    "calories_per_100g": number
}, ...]

Make sure the response is valid JSON only. Do NOT add any explanation or markdown.`, FoodListSize, query)
}

// ParseFoodList decodes the model output, removing a surrounding code fence first
func ParseFoodList(raw string) ([]types.FoodItem, error) {
	trimmed := strings.TrimSpace(raw)

	var foods []types.FoodItem
	if err := json.Unmarshal([]byte(StripCodeFence(trimmed)), &foods); err != nil {
		return nil, &ParseError{Raw: trimmed, Err: err}
	}
	if foods == nil {
		return nil, &ParseError{Raw: trimmed, Err: fmt.Errorf("expected a JSON array")}
	}

	return foods, nil
}

// attachImages sets Image on every item, falling back to the placeholder URL
func (s *FoodService) attachImages(ctx context.Context, foods []types.FoodItem) error {
	for i := range foods {
		imageURL, err := s.images.SearchImage(ctx, foods[i].Name)
		if err != nil {
			return fmt.Errorf("failed to fetch image for %q: %w", foods[i].Name, err)
		}
		if imageURL == "" {
			log.Printf("[FoodService] No image found for '%s', using placeholder", foods[i].Name)
			imageURL = s.placeholder
		}
		foods[i].Image = imageURL
	}
	return nil
}
