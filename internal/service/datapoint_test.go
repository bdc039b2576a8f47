package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/momentumhq/momentum-backend/internal/models"
)

// mockDataPointRepository is a mock implementation of DataPointRepository
// for testing
type mockDataPointRepository struct {
	points      map[string]*models.DataPoint // date -> point
	upsertCalls int
}

func newMockDataPointRepository() *mockDataPointRepository {
	return &mockDataPointRepository{
		points: make(map[string]*models.DataPoint),
	}
}

func (m *mockDataPointRepository) Upsert(ctx context.Context, point *models.DataPoint) (*models.DataPoint, error) {
	m.upsertCalls++
	key := point.Date.String()

	now := time.Now()
	if existing, ok := m.points[key]; ok {
		point.CreatedAt = existing.CreatedAt
	} else {
		point.CreatedAt = now
	}
	point.UpdatedAt = now

	stored := *point
	m.points[key] = &stored
	return &stored, nil
}

func (m *mockDataPointRepository) GetAll(ctx context.Context) ([]models.DataPoint, error) {
	result := make([]models.DataPoint, 0, len(m.points))
	for _, p := range m.points {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *mockDataPointRepository) GetRange(ctx context.Context, start, end models.DateKey) ([]models.DataPoint, error) {
	all, _ := m.GetAll(ctx)
	result := make([]models.DataPoint, 0, len(all))
	for _, p := range all {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func TestSubmit_DefaultsToToday(t *testing.T) {
	ctx := context.Background()
	repo := newMockDataPointRepository()
	svc := NewDataPointService(repo)

	point, err := svc.Submit(ctx, &models.SubmitMeasurementRequest{
		TasksCompleted: 4,
		FocusMinutes:   90,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if !point.Date.Equal(models.Today()) {
		t.Errorf("Expected today's date, got %s", point.Date)
	}
	if point.TasksCompleted != 4 || point.FocusMinutes != 90 {
		t.Errorf("Measurements not carried through: %+v", point)
	}
}

func TestSubmit_ClampsValues(t *testing.T) {
	ctx := context.Background()
	repo := newMockDataPointRepository()
	svc := NewDataPointService(repo)

	date := models.NewDateKey(2026, time.June, 1)
	point, err := svc.Submit(ctx, &models.SubmitMeasurementRequest{
		Date:              &date,
		TasksCompleted:    -3,
		FocusMinutes:      -10,
		HabitsScore:       150,
		EventsCount:       -1,
		ProductivityScore: -20,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if point.TasksCompleted != 0 || point.FocusMinutes != 0 || point.EventsCount != 0 {
		t.Errorf("Expected negative counts clamped to 0: %+v", point)
	}
	if point.HabitsScore != 100 {
		t.Errorf("Expected habits score clamped to 100, got %v", point.HabitsScore)
	}
	if point.ProductivityScore != 0 {
		t.Errorf("Expected productivity score clamped to 0, got %v", point.ProductivityScore)
	}
}

func TestSubmit_ResubmissionReplaces(t *testing.T) {
	ctx := context.Background()
	repo := newMockDataPointRepository()
	svc := NewDataPointService(repo)

	date := models.NewDateKey(2026, time.June, 2)

	if _, err := svc.Submit(ctx, &models.SubmitMeasurementRequest{Date: &date, TasksCompleted: 2}); err != nil {
		t.Fatalf("First Submit failed: %v", err)
	}
	point, err := svc.Submit(ctx, &models.SubmitMeasurementRequest{Date: &date, TasksCompleted: 7})
	if err != nil {
		t.Fatalf("Second Submit failed: %v", err)
	}

	if point.TasksCompleted != 7 {
		t.Errorf("Expected last write to win, got %d tasks", point.TasksCompleted)
	}
	if repo.upsertCalls != 2 {
		t.Errorf("Expected 2 upsert calls, got %d", repo.upsertCalls)
	}

	all, _ := repo.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("Expected 1 stored point, got %d", len(all))
	}
}

func TestQuery_WindowCutoff(t *testing.T) {
	ctx := context.Background()
	repo := newMockDataPointRepository()
	svc := NewDataPointService(repo)

	today := models.Today()
	for i := 0; i < 10; i++ {
		date := today.AddDays(-i)
		if _, err := svc.Submit(ctx, &models.SubmitMeasurementRequest{Date: &date, TasksCompleted: 1}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	// A 7-day window is today plus the 6 preceding days
	points, err := svc.Query(ctx, 7)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("Expected 7 points, got %d", len(points))
	}
	if !points[0].Date.Equal(today.AddDays(-6)) {
		t.Errorf("Expected window to start at %s, got %s", today.AddDays(-6), points[0].Date)
	}
	if !points[6].Date.Equal(today) {
		t.Errorf("Expected window to end today, got %s", points[6].Date)
	}
}

func TestQuery_AllWhenDaysZero(t *testing.T) {
	ctx := context.Background()
	repo := newMockDataPointRepository()
	svc := NewDataPointService(repo)

	today := models.Today()
	for i := 0; i < 5; i++ {
		date := today.AddDays(-i * 10)
		if _, err := svc.Submit(ctx, &models.SubmitMeasurementRequest{Date: &date}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	points, err := svc.Query(ctx, 0)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(points) != 5 {
		t.Errorf("Expected the full series, got %d points", len(points))
	}
}

func TestRangeQuery_RejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	svc := NewDataPointService(newMockDataPointRepository())

	start := models.NewDateKey(2026, time.June, 10)
	end := models.NewDateKey(2026, time.June, 1)

	if _, err := svc.RangeQuery(ctx, start, end); err == nil {
		t.Error("Expected error for end before start")
	}
}
