package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/momentumhq/momentum-backend/internal/models"
)

const (
	// Window of recent days the rule table is evaluated over
	DefaultInsightWindowDays = 7

	// Rule thresholds
	LowFocusThreshold            = 60.0
	LowHabitsThreshold           = 60.0
	DecliningTrendThreshold      = -10.0
	StreakInsightMinDays         = 5
	CorrelationInsightMinPercent = 60.0
)

// GenerateInsights applies the rule table to a recent window of points.
// Rules are independent and side-effect free; any number may fire. An
// empty window yields a single informational insight rather than an error.
func GenerateInsights(points []models.DataPoint, days int) []models.Insight {
	if days <= 0 {
		days = DefaultInsightWindowDays
	}
	now := time.Now()

	if len(points) == 0 {
		return []models.Insight{newInsight(
			models.InsightTypeRecommendation,
			"No activity data",
			fmt.Sprintf("No measurements were recorded in the last %d days. Log some activity to unlock analysis.", days),
			models.SeverityLow,
			models.CategoryGeneral,
			nil,
			now,
		)}
	}

	insights := []models.Insight{}

	var focusSum, habitsSum float64
	for _, p := range points {
		focusSum += float64(p.FocusMinutes)
		habitsSum += p.HabitsScore
	}
	focusMean := focusSum / float64(len(points))
	habitsMean := habitsSum / float64(len(points))

	if focusMean < LowFocusThreshold {
		insights = append(insights, newInsight(
			models.InsightTypeAlert,
			"Low focus time",
			fmt.Sprintf("You averaged %.0f minutes of focused work per day over the last %d days. Aim for at least %.0f.", focusMean, days, LowFocusThreshold),
			models.SeverityHigh,
			models.CategoryFocus,
			map[string]any{"mean_focus_minutes": focusMean, "window_days": days},
			now,
		))
	}

	if habitsMean < LowHabitsThreshold {
		insights = append(insights, newInsight(
			models.InsightTypeAlert,
			"Low habit consistency",
			fmt.Sprintf("Your habit score averaged %.0f over the last %d days. Small daily wins push it back up.", habitsMean, days),
			models.SeverityMedium,
			models.CategoryHabits,
			map[string]any{"mean_habits_score": habitsMean, "window_days": days},
			now,
		))
	}

	if change := TrendPercent(points, models.MetricProductivityScore, days); change < DecliningTrendThreshold {
		insights = append(insights, newInsight(
			models.InsightTypeRecommendation,
			"Productivity declining",
			fmt.Sprintf("Your productivity dropped %.0f%% in the second half of the window. Consider revisiting your schedule.", -change),
			models.SeverityMedium,
			models.CategoryProductivity,
			map[string]any{"change_percent": change, "window_days": days},
			now,
		))
	}

	if streaks := Streaks(points, DefaultStreakThreshold); streaks.Current >= StreakInsightMinDays {
		insights = append(insights, newInsight(
			models.InsightTypePattern,
			fmt.Sprintf("%d-day productive streak", streaks.Current),
			fmt.Sprintf("You've had %d productive days in a row. Your best run is %d days.", streaks.Current, streaks.Longest),
			models.SeverityLow,
			models.CategoryConsistency,
			map[string]any{"current": streaks.Current, "longest": streaks.Longest},
			now,
		))
	}

	if corr := FocusTaskCorrelation(points); corr != nil && corr.Percent > CorrelationInsightMinPercent {
		insights = append(insights, newInsight(
			models.InsightTypePattern,
			"Focus drives your output",
			fmt.Sprintf("On %.0f%% of your best focus days you also completed more tasks than usual.", corr.Percent),
			models.SeverityLow,
			models.CategoryCorrelation,
			map[string]any{"percent": corr.Percent, "matched_days": corr.MatchedDays},
			now,
		))
	}

	return insights
}

// MergeInsights concatenates locally generated and externally supplied
// insights, deduplicating by (type, category). The first occurrence wins,
// so local insights take precedence when both sources emit the same kind.
func MergeInsights(local, external []models.Insight) []models.Insight {
	type dedupKey struct {
		insightType models.InsightType
		category    string
	}

	seen := make(map[dedupKey]bool)
	merged := make([]models.Insight, 0, len(local)+len(external))

	for _, insight := range append(append([]models.Insight{}, local...), external...) {
		key := dedupKey{insightType: insight.Type, category: insight.Category}
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, insight)
	}

	return merged
}

// RecommendationsFor derives plain recommendation strings from report
// averages. Unlike insights these are not persisted.
func RecommendationsFor(averages models.ReportAverages) []string {
	recommendations := []string{}

	if averages.FocusMinutes < LowFocusThreshold {
		recommendations = append(recommendations,
			"Block out at least one hour of uninterrupted focus time each day.")
	}
	if averages.HabitsScore < LowHabitsThreshold {
		recommendations = append(recommendations,
			"Pick one habit and complete it daily before adding more.")
	}
	if averages.TasksCompleted < 3 {
		recommendations = append(recommendations,
			"Start each morning by choosing three tasks to finish that day.")
	}
	if averages.ProductivityScore >= 80 {
		recommendations = append(recommendations,
			"You're in a strong stretch. Protect the routines that got you here.")
	}

	return recommendations
}

func newInsight(t models.InsightType, title, description string, severity models.Severity, category string, data map[string]any, generatedAt time.Time) models.Insight {
	return models.Insight{
		ID:          uuid.New().String(),
		Type:        t,
		Title:       title,
		Description: description,
		Severity:    severity,
		Category:    category,
		Data:        data,
		GeneratedAt: generatedAt,
	}
}
