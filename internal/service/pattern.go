package service

import (
	"sort"

	"github.com/momentumhq/momentum-backend/internal/models"
)

const (
	// Default number of weekdays returned by MostProductiveWeekdays
	DefaultTopWeekdays = 3

	// Aggregated daily score above which a day counts toward a streak
	DefaultStreakThreshold = 50.0

	// Per-metric contribution caps for the aggregated daily score
	TasksContributionCap  = 40.0
	FocusContributionCap  = 35.0
	HabitsContributionCap = 25.0
)

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DailyScore computes the aggregated productivity score of a day as the
// sum of capped per-metric contributions.
func DailyScore(p models.DataPoint) float64 {
	tasks := float64(p.TasksCompleted) * 10
	if tasks > TasksContributionCap {
		tasks = TasksContributionCap
	}

	focus := float64(p.FocusMinutes) / 3
	if focus > FocusContributionCap {
		focus = FocusContributionCap
	}

	habits := p.HabitsScore * 5
	if habits > HabitsContributionCap {
		habits = HabitsContributionCap
	}

	return tasks + focus + habits
}

// MostProductiveWeekdays groups points by weekday, averages the raw
// productivity score per weekday, and returns the top-N weekday names in
// descending order of average. Ties keep first-encountered order.
func MostProductiveWeekdays(points []models.DataPoint, top int) []string {
	if top <= 0 {
		top = DefaultTopWeekdays
	}

	var (
		sums   [7]float64
		counts [7]int
		order  = make([]int, 0, 7)
	)
	for _, p := range points {
		day := int(p.Date.Weekday())
		if counts[day] == 0 {
			order = append(order, day)
		}
		sums[day] += p.ProductivityScore
		counts[day]++
	}

	type weekdayAvg struct {
		day int
		avg float64
	}

	// Averages are accumulated in first-encounter order so the stable
	// sort resolves ties toward the weekday seen earliest in the input.
	averages := make([]weekdayAvg, 0, 7)
	for _, day := range order {
		averages = append(averages, weekdayAvg{day: day, avg: sums[day] / float64(counts[day])})
	}

	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].avg > averages[j].avg
	})

	if len(averages) > top {
		averages = averages[:top]
	}

	names := make([]string, len(averages))
	for i, a := range averages {
		names[i] = weekdayNames[a.day]
	}

	return names
}

// BestWorkingHours returns the recommended focus windows. Stored
// measurements are day-granular, so this is a fixed set; hour-of-day
// bucketing would need per-event timestamps the store does not carry.
func BestWorkingHours() []string {
	return []string{"09:00-11:00", "14:00-16:00"}
}

// TrendPercent compares the first and second half of the last `days`
// calendar days and returns the percent change of the metric's mean.
// A zero-valued first half yields 0, never a division by zero.
func TrendPercent(points []models.DataPoint, metric models.Metric, days int) float64 {
	if days <= 0 {
		return 0
	}

	cutoff := models.Today().AddDays(-days)
	values := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Date.Before(cutoff) {
			continue
		}
		values = append(values, p.MetricValue(metric))
	}

	return halvesChangePercent(values)
}

// halvesChangePercent splits values at the midpoint and returns the
// percent change between the mean of each half.
func halvesChangePercent(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mid := len(values) / 2
	first := mean(values[:mid])
	second := mean(values[mid:])

	if first == 0 {
		return 0
	}

	return (second - first) / first * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Streaks walks points in date order and counts consecutive productive
// days (aggregated daily score above threshold). A gap in dates breaks a
// streak the same way an unproductive day does. Current is the trailing
// run; Longest is the historical maximum.
func Streaks(points []models.DataPoint, threshold float64) models.StreakSummary {
	var summary models.StreakSummary

	run := 0
	for i, p := range points {
		productive := DailyScore(p) > threshold
		if !productive {
			run = 0
			continue
		}

		contiguous := i > 0 && points[i-1].Date.DaysUntil(p.Date) == 1
		if run > 0 && contiguous {
			run++
		} else {
			run = 1
		}

		if run > summary.Longest {
			summary.Longest = run
		}
	}

	summary.Current = run
	return summary
}

// FocusTaskCorrelation measures how often high-focus days coincide with
// high-task days. Day counts are days where the metric was recorded at
// all; the match rate divides by the smaller count. Nil when either
// series is empty.
func FocusTaskCorrelation(points []models.DataPoint) *models.CorrelationResult {
	var (
		focusSum, tasksSum  float64
		focusDays, taskDays int
	)

	for _, p := range points {
		if p.FocusMinutes > 0 {
			focusSum += float64(p.FocusMinutes)
			focusDays++
		}
		if p.TasksCompleted > 0 {
			tasksSum += float64(p.TasksCompleted)
			taskDays++
		}
	}

	if focusDays == 0 || taskDays == 0 {
		return nil
	}

	focusMean := focusSum / float64(focusDays)
	tasksMean := tasksSum / float64(taskDays)

	matched := 0
	for _, p := range points {
		if float64(p.FocusMinutes) > focusMean && float64(p.TasksCompleted) > tasksMean {
			matched++
		}
	}

	denom := focusDays
	if taskDays < denom {
		denom = taskDays
	}

	return &models.CorrelationResult{
		FocusMean:   focusMean,
		TasksMean:   tasksMean,
		MatchedDays: matched,
		Percent:     float64(matched) / float64(denom) * 100,
	}
}
