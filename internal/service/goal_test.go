package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/momentumhq/momentum-backend/internal/models"
)

// mockGoalRepository is a mock implementation of GoalRepository for testing
type mockGoalRepository struct {
	goals  map[string]*models.Goal
	nextID int
}

func newMockGoalRepository() *mockGoalRepository {
	return &mockGoalRepository{goals: make(map[string]*models.Goal)}
}

func (m *mockGoalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	if goal.ID == "" {
		m.nextID++
		goal.ID = "goal-" + strconv.Itoa(m.nextID)
	}
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()
	stored := *goal
	m.goals[goal.ID] = &stored
	return &stored, nil
}

func (m *mockGoalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	if goal, ok := m.goals[id]; ok {
		copied := *goal
		return &copied, nil
	}
	return nil, nil
}

func (m *mockGoalRepository) List(ctx context.Context) ([]models.Goal, error) {
	result := make([]models.Goal, 0, len(m.goals))
	for _, goal := range m.goals {
		result = append(result, *goal)
	}
	return result, nil
}

func (m *mockGoalRepository) Update(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	if _, ok := m.goals[goal.ID]; !ok {
		return nil, nil
	}
	goal.UpdatedAt = time.Now()
	stored := *goal
	m.goals[goal.ID] = &stored
	return &stored, nil
}

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(newMockGoalRepository())

	goal, err := svc.CreateGoal(ctx, &models.CreateGoalRequest{
		Name:         "Deep work",
		TargetMetric: models.MetricFocusMinutes,
		TargetValue:  120,
	})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	if goal.Status != models.GoalStatusActive {
		t.Errorf("Expected active status, got %s", goal.Status)
	}
	if goal.CurrentValue != 0 {
		t.Errorf("Expected zero initial progress, got %v", goal.CurrentValue)
	}
}

func TestCreateGoal_RejectsUnknownMetric(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(newMockGoalRepository())

	_, err := svc.CreateGoal(ctx, &models.CreateGoalRequest{
		Name:         "Bogus",
		TargetMetric: "steps_walked",
		TargetValue:  10,
	})
	if err == nil {
		t.Error("Expected error for unknown metric")
	}
}

func TestUpdateProgress_AchievedTransition(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(newMockGoalRepository())

	goal, err := svc.CreateGoal(ctx, &models.CreateGoalRequest{
		Name:         "Tasks",
		TargetMetric: models.MetricTasksCompleted,
		TargetValue:  50,
	})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	updated, err := svc.UpdateProgress(ctx, goal.ID, &models.UpdateGoalProgressRequest{CurrentValue: 30})
	if err != nil {
		t.Fatalf("UpdateProgress failed: %v", err)
	}
	if updated.Status != models.GoalStatusActive {
		t.Errorf("Expected still active at 30/50, got %s", updated.Status)
	}

	updated, err = svc.UpdateProgress(ctx, goal.ID, &models.UpdateGoalProgressRequest{CurrentValue: 50})
	if err != nil {
		t.Fatalf("UpdateProgress failed: %v", err)
	}
	if updated.Status != models.GoalStatusAchieved {
		t.Errorf("Expected achieved at 50/50, got %s", updated.Status)
	}
}

func TestUpdateProgress_ClampsNegative(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(newMockGoalRepository())

	goal, _ := svc.CreateGoal(ctx, &models.CreateGoalRequest{
		Name:         "Habits",
		TargetMetric: models.MetricHabitsScore,
		TargetValue:  90,
	})

	updated, err := svc.UpdateProgress(ctx, goal.ID, &models.UpdateGoalProgressRequest{CurrentValue: -10})
	if err != nil {
		t.Fatalf("UpdateProgress failed: %v", err)
	}
	if updated.CurrentValue != 0 {
		t.Errorf("Expected progress clamped to 0, got %v", updated.CurrentValue)
	}
}

func TestUpdateProgress_MissingGoal(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(newMockGoalRepository())

	goal, err := svc.UpdateProgress(ctx, "missing", &models.UpdateGoalProgressRequest{CurrentValue: 5})
	if err != nil {
		t.Fatalf("Expected no error for missing goal, got %v", err)
	}
	if goal != nil {
		t.Errorf("Expected nil for missing goal, got %+v", goal)
	}
}

func TestArchiveGoal_BlocksFurtherProgress(t *testing.T) {
	ctx := context.Background()
	svc := NewGoalService(newMockGoalRepository())

	goal, _ := svc.CreateGoal(ctx, &models.CreateGoalRequest{
		Name:         "Events",
		TargetMetric: models.MetricEventsCount,
		TargetValue:  20,
	})

	archived, err := svc.ArchiveGoal(ctx, goal.ID)
	if err != nil {
		t.Fatalf("ArchiveGoal failed: %v", err)
	}
	if archived.Status != models.GoalStatusArchived {
		t.Errorf("Expected archived status, got %s", archived.Status)
	}

	if _, err := svc.UpdateProgress(ctx, goal.ID, &models.UpdateGoalProgressRequest{CurrentValue: 5}); err == nil {
		t.Error("Expected error updating an archived goal")
	}
}
