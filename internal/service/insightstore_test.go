package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/momentumhq/momentum-backend/internal/models"
)

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newMockInsightRepository()
	svc := NewInsightService(repo)

	repo.insights = []models.Insight{{
		ID:          "insight-1",
		Type:        models.InsightTypeAlert,
		Category:    models.CategoryFocus,
		GeneratedAt: time.Now(),
	}}

	if err := svc.MarkRead(ctx, "insight-1"); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !repo.insights[0].IsRead {
		t.Error("Expected insight flagged as read")
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewInsightService(newMockInsightRepository())

	err := svc.MarkRead(ctx, "missing")
	if !errors.Is(err, ErrInsightNotFound) {
		t.Errorf("Expected ErrInsightNotFound, got %v", err)
	}
}

func TestListInsights(t *testing.T) {
	ctx := context.Background()
	repo := newMockInsightRepository()
	svc := NewInsightService(repo)

	repo.insights = []models.Insight{
		{ID: "a", GeneratedAt: time.Now()},
		{ID: "b", GeneratedAt: time.Now()},
	}

	insights, err := svc.ListInsights(ctx)
	if err != nil {
		t.Fatalf("ListInsights failed: %v", err)
	}
	if len(insights) != 2 {
		t.Errorf("Expected 2 insights, got %d", len(insights))
	}
}
