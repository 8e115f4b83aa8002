// Package recommend talks to the remote inference service that suggests
// travel destinations. The service is an opaque request/response pair:
// {interests, location} in, {recommendations} out, or an error payload with
// a message field.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voyago/travel-planner/internal/domain"
)

// Client produces destination recommendations for a set of interests and a
// target location.
type Client interface {
	Recommend(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error)
}

// recommendationRequest is the wire format sent to the inference service.
type recommendationRequest struct {
	Interests []string `json:"interests"`
	Location  string   `json:"location"`
}

// recommendationResponse is the wire format returned on success.
type recommendationResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// errorResponse is the wire format returned on failure.
type errorResponse struct {
	Message string `json:"message"`
}

// httpClient calls the inference service over HTTP.
type httpClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPClient creates a Client that POSTs to the given endpoint. The API
// key, if set, is sent as a bearer token.
func NewHTTPClient(endpoint, apiKey string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// Recommend sends one request and decodes one response; there is no retry or
// streaming. The caller's context bounds the call alongside the client
// timeout.
func (c *httpClient) Recommend(ctx context.Context, interests []string, location string) ([]domain.Recommendation, error) {
	body, err := json.Marshal(recommendationRequest{Interests: interests, Location: location})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return nil, fmt.Errorf("recommendation service: %s", errResp.Message)
		}
		return nil, fmt.Errorf("recommendation service: status code %d", resp.StatusCode)
	}

	var result recommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("recommendation service: decoding response: %w", err)
	}
	return result.Recommendations, nil
}
