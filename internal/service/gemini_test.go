package service

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseText(t *testing.T) {
	t.Run("should join text parts of the first candidate", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
			},
		}

		text, err := responseText(resp)
		require.NoError(t, err)
		assert.Equal(t, "Hello, world", text)
	})

	t.Run("should fail without candidates", func(t *testing.T) {
		_, err := responseText(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, ErrEmptyResponse)

		_, err = responseText(nil)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("should fail without text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}},
		}
		_, err := responseText(resp)
		assert.ErrorIs(t, err, ErrEmptyResponse)

		resp = &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		_, err = responseText(resp)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}

func TestNewGeminiServiceRequiresKey(t *testing.T) {
	svc, err := NewGeminiService(testContext(t), "", "gemini-2.5-flash")
	assert.Nil(t, svc)
	assert.EqualError(t, err, "gemini: API key not set")
}
