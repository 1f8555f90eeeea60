// Package recommender implements the client for the external mentor
// recommendation service. The service ranks alumni against a student's
// skills; callers are expected to fall back to an unscored list when it
// is unreachable.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// StudentProfile is the student side of a recommendation request
type StudentProfile struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// Mentor is one alumni entry sent to and returned from the service
type Mentor struct {
	ID             string   `json:"_id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	CurrentCompany string   `json:"currentCompany,omitempty"`
	CurrentRole    string   `json:"currentRole,omitempty"`
	Skills         []string `json:"skills"`
	MatchScore     float64  `json:"match_score"`
}

type recommendRequest struct {
	Student StudentProfile `json:"student"`
	Alumni  []Mentor       `json:"alumni"`
}

type recommendResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []Mentor `json:"data"`
	Error   string   `json:"error,omitempty"`
}

// Config contains client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the recommendation service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new recommendation service client
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// RecommendMentors posts the student profile and alumni roster and returns
// the ranked list. Any transport or service failure is returned as an error;
// the caller owns the fallback behavior.
func (c *Client) RecommendMentors(ctx context.Context, student StudentProfile, alumni []Mentor) ([]Mentor, error) {
	body, err := json.Marshal(recommendRequest{
		Student: student,
		Alumni:  alumni,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommend/mentors", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("recommendation service returned status %d", resp.StatusCode)
	}

	var result recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation response: %w", err)
	}

	if !result.Success {
		return nil, fmt.Errorf("recommendation service reported failure: %s", result.Error)
	}

	c.logger.Debug().Int("count", result.Count).Msg("Received mentor recommendations")
	return result.Data, nil
}
