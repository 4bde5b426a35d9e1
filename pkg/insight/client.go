// Package insight is a minimal HTTP client for the hosted AI service that
// generates product disclosure questions and transparency scores.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Client talks to the insight AI service over JSON/HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	debug      bool
}

// NewClient constructs a new insight client with sane defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		debug:      os.Getenv("ENV") == "development",
	}
}

// GenerateQuestions asks the AI service for disclosure questions tailored to
// the product. The service responds with success=true even when it had to
// use its own fallback set; an error here means the call itself failed.
func (c *Client) GenerateQuestions(ctx context.Context, category, productName, description string) (*QuestionsResponse, error) {
	req := QuestionsRequest{
		Category:    category,
		ProductName: productName,
		Description: description,
	}
	var resp QuestionsResponse
	if err := c.doRequest(ctx, "/api/generate-questions", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("insight: generate-questions failed: %s", resp.ErrorMessage())
	}
	return &resp, nil
}

// TransparencyScore requests a multi-criteria transparency score for a set of
// submitted answers.
func (c *Client) TransparencyScore(ctx context.Context, productName, category string, answers []ScoredAnswer) (*ScoreResponse, error) {
	req := ScoreRequest{
		ProductName: productName,
		Category:    category,
		Answers:     answers,
	}
	var resp ScoreResponse
	if err := c.doRequest(ctx, "/api/transparency-score", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.TransparencyScore == nil {
		return nil, fmt.Errorf("insight: transparency-score failed: %s", resp.ErrorMessage())
	}
	return &resp, nil
}

// Health checks the AI service health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}

// doRequest performs the HTTP POST to the AI service with JSON payloads and
// decodes the JSON response into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Debug logging for development
	if c.debug {
		log.Debug().
			Str("endpoint", c.baseURL+endpoint).
			RawJSON("request", payload).
			Msg("[INSIGHT] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Debug logging for development
	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[INSIGHT] Incoming response")
	}

	// The service returns errors as JSON bodies with non-2xx statuses;
	// decode regardless of status code to surface any error message.
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}
