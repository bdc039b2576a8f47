package service

import (
	"testing"

	"github.com/momentumhq/momentum-backend/internal/models"
)

func findInsight(insights []models.Insight, category string) *models.Insight {
	for i := range insights {
		if insights[i].Category == category {
			return &insights[i]
		}
	}
	return nil
}

func TestGenerateInsights_EmptyWindow(t *testing.T) {
	insights := GenerateInsights(nil, 7)

	if len(insights) != 1 {
		t.Fatalf("Expected exactly one insight for an empty window, got %d", len(insights))
	}
	if insights[0].Category != models.CategoryGeneral {
		t.Errorf("Expected general category, got %s", insights[0].Category)
	}
	if insights[0].Severity != models.SeverityLow {
		t.Errorf("Expected low severity, got %s", insights[0].Severity)
	}
	if insights[0].ID == "" {
		t.Error("Expected a generated ID")
	}
}

func TestGenerateInsights_LowFocusAndHabits(t *testing.T) {
	today := models.Today()

	// Well under both thresholds
	points := []models.DataPoint{
		{Date: today.AddDays(-1), FocusMinutes: 20, HabitsScore: 30, TasksCompleted: 5},
		{Date: today, FocusMinutes: 30, HabitsScore: 40, TasksCompleted: 5},
	}

	insights := GenerateInsights(points, 7)

	focus := findInsight(insights, models.CategoryFocus)
	if focus == nil {
		t.Fatal("Expected a low-focus insight")
	}
	if focus.Type != models.InsightTypeAlert || focus.Severity != models.SeverityHigh {
		t.Errorf("Expected high-severity alert, got %s/%s", focus.Type, focus.Severity)
	}

	habits := findInsight(insights, models.CategoryHabits)
	if habits == nil {
		t.Fatal("Expected a low-habits insight")
	}
	if habits.Type != models.InsightTypeAlert || habits.Severity != models.SeverityMedium {
		t.Errorf("Expected medium-severity alert, got %s/%s", habits.Type, habits.Severity)
	}
}

func TestGenerateInsights_HighAveragesStayQuiet(t *testing.T) {
	today := models.Today()

	points := []models.DataPoint{
		{Date: today.AddDays(-1), FocusMinutes: 180, HabitsScore: 90, TasksCompleted: 6, ProductivityScore: 85},
		{Date: today, FocusMinutes: 200, HabitsScore: 95, TasksCompleted: 7, ProductivityScore: 90},
	}

	insights := GenerateInsights(points, 7)

	if findInsight(insights, models.CategoryFocus) != nil {
		t.Error("Did not expect a low-focus insight")
	}
	if findInsight(insights, models.CategoryHabits) != nil {
		t.Error("Did not expect a low-habits insight")
	}
}

func TestGenerateInsights_Streak(t *testing.T) {
	today := models.Today()

	points := make([]models.DataPoint, 6)
	for i := range points {
		points[i] = models.DataPoint{
			Date:           today.AddDays(i - 5),
			TasksCompleted: 10,
			FocusMinutes:   300,
			HabitsScore:    100,
		}
	}

	insights := GenerateInsights(points, 7)

	streak := findInsight(insights, models.CategoryConsistency)
	if streak == nil {
		t.Fatal("Expected a streak insight for 6 consecutive productive days")
	}
	if streak.Type != models.InsightTypePattern {
		t.Errorf("Expected pattern type, got %s", streak.Type)
	}
	if streak.Data["current"] != 6 {
		t.Errorf("Expected current streak 6 in data, got %v", streak.Data["current"])
	}
}

func TestMergeInsights_DeduplicatesByTypeAndCategory(t *testing.T) {
	local := []models.Insight{
		{ID: "l1", Type: models.InsightTypeAlert, Category: models.CategoryFocus, Title: "local focus"},
		{ID: "l2", Type: models.InsightTypePattern, Category: models.CategoryConsistency},
	}
	external := []models.Insight{
		{ID: "e1", Type: models.InsightTypeAlert, Category: models.CategoryFocus, Title: "oracle focus"},
		{ID: "e2", Type: models.InsightTypeRecommendation, Category: models.CategoryProductivity},
	}

	merged := MergeInsights(local, external)

	if len(merged) != 3 {
		t.Fatalf("Expected 3 merged insights, got %d", len(merged))
	}

	// Local insight wins on collision
	focus := findInsight(merged, models.CategoryFocus)
	if focus == nil || focus.ID != "l1" {
		t.Errorf("Expected local focus insight to win, got %+v", focus)
	}
}

func TestMergeInsights_Empty(t *testing.T) {
	if got := MergeInsights(nil, nil); len(got) != 0 {
		t.Errorf("Expected empty merge, got %d", len(got))
	}
}

func TestRecommendationsFor(t *testing.T) {
	// Low everything: focus, habits, and tasks recommendations all fire
	low := RecommendationsFor(models.ReportAverages{
		FocusMinutes:   10,
		HabitsScore:    20,
		TasksCompleted: 1,
	})
	if len(low) != 3 {
		t.Errorf("Expected 3 recommendations, got %d: %v", len(low), low)
	}

	// Strong stretch gets the reinforcement message only
	high := RecommendationsFor(models.ReportAverages{
		FocusMinutes:      120,
		HabitsScore:       90,
		TasksCompleted:    6,
		ProductivityScore: 85,
	})
	if len(high) != 1 {
		t.Errorf("Expected 1 recommendation, got %d: %v", len(high), high)
	}
}
