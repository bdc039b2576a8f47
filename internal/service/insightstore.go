package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/repository"
)

// ErrInsightNotFound is returned when a read-state update names an
// unknown insight.
var ErrInsightNotFound = errors.New("insight not found")

type insightService struct {
	insightRepo repository.InsightRepository
}

// NewInsightService creates a new insight service
func NewInsightService(insightRepo repository.InsightRepository) InsightService {
	return &insightService{insightRepo: insightRepo}
}

func (s *insightService) ListInsights(ctx context.Context) ([]models.Insight, error) {
	return s.insightRepo.GetAll(ctx)
}

// MarkRead flips the only mutable field on an insight.
func (s *insightService) MarkRead(ctx context.Context, id string) error {
	if err := s.insightRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsightNotFound
		}
		return err
	}
	return nil
}
