package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/momentumhq/momentum-backend/internal/models"
)

func TestAnalyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/analyze" {
			t.Errorf("Expected /v1/analyze, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer auth, got %q", got)
		}

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.WindowDays != 7 {
			t.Errorf("Expected window 7, got %d", req.WindowDays)
		}
		if len(req.Points) != 1 {
			t.Errorf("Expected 1 point, got %d", len(req.Points))
		}

		json.NewEncoder(w).Encode(AnalyzeResponse{
			Score:           82.5,
			Recommendations: []string{"keep going"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)

	resp, err := client.Analyze(context.Background(), &AnalyzeRequest{
		Points:     []models.DataPoint{{Date: models.Today(), TasksCompleted: 3}},
		WindowDays: 7,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if resp.Score != 82.5 {
		t.Errorf("Expected score 82.5, got %v", resp.Score)
	}
	if len(resp.Recommendations) != 1 {
		t.Errorf("Expected 1 recommendation, got %d", len(resp.Recommendations))
	}
}

func TestAnalyze_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oracle overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)

	if _, err := client.Analyze(context.Background(), &AnalyzeRequest{WindowDays: 7}); err == nil {
		t.Error("Expected error for 503 response")
	}
}

func TestAnalyze_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 20*time.Millisecond)

	if _, err := client.Analyze(context.Background(), &AnalyzeRequest{WindowDays: 7}); err == nil {
		t.Error("Expected timeout error")
	}
}
