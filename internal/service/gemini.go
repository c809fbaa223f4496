package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyResponse is returned when the model answers without any text
var ErrEmptyResponse = errors.New("no text in model response")

// GeminiService generates text with a Google Gemini model
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewGeminiService creates a Gemini client bound to a single model
func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
		name:   modelName,
	}, nil
}

// Generate sends the prompt to the model and returns the text of the first candidate
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", s.name, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", s.name, err)
	}

	log.Printf("[GeminiService] Received %d characters from %s", len(text), s.name)
	return text, nil
}

// Close releases the underlying client connection
func (s *GeminiService) Close() error {
	return s.client.Close()
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
