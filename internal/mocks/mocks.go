package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTextGenerator is a mock implementation of the language model client
type MockTextGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockImageSearcher is a mock implementation of the image search client
type MockImageSearcher struct {
	mock.Mock
}

// SearchImage mocks the SearchImage method
func (m *MockImageSearcher) SearchImage(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
