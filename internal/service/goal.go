package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/repository"
)

type goalService struct {
	goalRepo repository.GoalRepository
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repository.GoalRepository) GoalService {
	return &goalService{goalRepo: goalRepo}
}

func (s *goalService) CreateGoal(ctx context.Context, req *models.CreateGoalRequest) (*models.Goal, error) {
	if !models.ValidMetric(req.TargetMetric) {
		return nil, fmt.Errorf("unknown target metric %q", req.TargetMetric)
	}

	goal := &models.Goal{
		ID:           uuid.New().String(),
		Name:         req.Name,
		TargetMetric: req.TargetMetric,
		TargetValue:  req.TargetValue,
		CurrentValue: 0,
		Deadline:     req.Deadline,
		Status:       models.GoalStatusActive,
	}

	return s.goalRepo.Create(ctx, goal)
}

func (s *goalService) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	return s.goalRepo.GetByID(ctx, id)
}

func (s *goalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return s.goalRepo.List(ctx)
}

// UpdateProgress advances a goal's current value. The goal transitions to
// achieved once the current value reaches the target; archived goals are
// not mutated.
func (s *goalService) UpdateProgress(ctx context.Context, id string, req *models.UpdateGoalProgressRequest) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, nil
	}
	if goal.Status == models.GoalStatusArchived {
		return nil, fmt.Errorf("goal %s is archived", id)
	}

	value := req.CurrentValue
	if value < 0 {
		value = 0
	}
	goal.CurrentValue = value

	if goal.CurrentValue >= goal.TargetValue {
		goal.Status = models.GoalStatusAchieved
	}

	return s.goalRepo.Update(ctx, goal)
}

func (s *goalService) ArchiveGoal(ctx context.Context, id string) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, nil
	}

	goal.Status = models.GoalStatusArchived
	return s.goalRepo.Update(ctx, goal)
}
