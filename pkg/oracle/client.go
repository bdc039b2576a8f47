// Package oracle provides a REST client for the remote analysis oracle.
// The oracle returns the same result shape as local analysis; callers are
// expected to degrade to local analysis when a call fails or times out.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/momentumhq/momentum-backend/internal/models"
)

// Client represents an analysis oracle client
type Client struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new oracle client. The timeout bounds every call;
// there are no retries here, that policy belongs to the caller.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// AnalyzeRequest is the payload sent to the oracle.
type AnalyzeRequest struct {
	Points     []models.DataPoint `json:"points"`
	WindowDays int                `json:"window_days"`
}

// AnalyzeResponse mirrors the local AnalysisResult shape.
type AnalyzeResponse struct {
	Score           float64               `json:"score"`
	Trends          models.Trend          `json:"trends"`
	Patterns        models.PatternSummary `json:"patterns"`
	Insights        []models.Insight      `json:"insights"`
	Recommendations []string              `json:"recommendations"`
}

// Analyze submits a window of points for remote analysis.
func (c *Client) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResponse, error) {
	url := fmt.Sprintf("%s/v1/analyze", c.URL)

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyze request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read oracle response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("oracle error (status %d): %s", resp.StatusCode, string(body))
	}

	var result AnalyzeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode oracle response: %w", err)
	}

	return &result, nil
}
