package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// unsplashSearchResponse is the subset of the Unsplash search payload we read
type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// UnsplashService finds photos through the Unsplash search API
type UnsplashService struct {
	accessKey string
	apiURL    string
	client    *http.Client
}

// NewUnsplashService creates a new UnsplashService instance
func NewUnsplashService(accessKey, apiURL string, timeout time.Duration) *UnsplashService {
	return &UnsplashService{
		accessKey: accessKey,
		apiURL:    apiURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchImage returns the regular-size URL of the first photo matching query.
// Only transport failures are returned as errors; an unusable answer yields "".
func (s *UnsplashService) SearchImage(ctx context.Context, query string) (string, error) {
	endpoint, err := url.Parse(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid image search URL: %w", err)
	}

	params := endpoint.Query()
	params.Set("query", query)
	params.Set("per_page", "1")
	params.Set("client_id", s.accessKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept-Version", "v1")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image search for %q failed: %w", query, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[UnsplashService] Search for '%s' returned status %d", query, resp.StatusCode)
		return "", nil
	}

	var result unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[UnsplashService] Failed to decode response for '%s': %v", query, err)
		return "", nil
	}

	if len(result.Results) == 0 {
		return "", nil
	}

	return result.Results[0].URLs.Regular, nil
}
