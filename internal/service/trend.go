package service

import (
	"math"

	"github.com/momentumhq/momentum-backend/internal/models"
)

const (
	// Smoothing window applied to every trend series
	TrendSmoothingWindow = 3
)

// MovingAverage smooths values with a trailing window that shrinks at the
// start of the series (never looks ahead). The output has the same length
// as the input; window <= 1 returns the input unchanged.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 {
		return values
	}

	result := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}

		var sum float64
		for j := start; j <= i; j++ {
			sum += values[j]
		}
		result[i] = sum / float64(i-start+1)
	}

	return result
}

// TrendOf builds a Trend from a slice of points by smoothing each numeric
// series independently with the standard window.
func TrendOf(points []models.DataPoint) models.Trend {
	trend := models.Trend{
		Dates:             make([]models.DateKey, len(points)),
		TasksCompleted:    make([]float64, len(points)),
		FocusMinutes:      make([]float64, len(points)),
		HabitsScore:       make([]float64, len(points)),
		ProductivityScore: make([]float64, len(points)),
	}

	for i, p := range points {
		trend.Dates[i] = p.Date
		trend.TasksCompleted[i] = float64(p.TasksCompleted)
		trend.FocusMinutes[i] = float64(p.FocusMinutes)
		trend.HabitsScore[i] = p.HabitsScore
		trend.ProductivityScore[i] = p.ProductivityScore
	}

	trend.TasksCompleted = MovingAverage(trend.TasksCompleted, TrendSmoothingWindow)
	trend.FocusMinutes = MovingAverage(trend.FocusMinutes, TrendSmoothingWindow)
	trend.HabitsScore = MovingAverage(trend.HabitsScore, TrendSmoothingWindow)
	trend.ProductivityScore = MovingAverage(trend.ProductivityScore, TrendSmoothingWindow)

	return trend
}

// NormalizeTo100 linearly rescales value into [0,100] relative to the
// observed [min,max], clamped and rounded to one decimal. A degenerate
// range (max == min) yields 0 rather than an error.
func NormalizeTo100(value, min, max float64) float64 {
	if max == min {
		return 0
	}

	scaled := (value - min) / (max - min) * 100
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 100 {
		scaled = 100
	}

	return math.Round(scaled*10) / 10
}

// ScoreOf normalizes the most recent point's productivity score against
// the observed min/max across the supplied points. Empty input yields 0.
func ScoreOf(points []models.DataPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	min := points[0].ProductivityScore
	max := points[0].ProductivityScore
	for _, p := range points[1:] {
		if p.ProductivityScore < min {
			min = p.ProductivityScore
		}
		if p.ProductivityScore > max {
			max = p.ProductivityScore
		}
	}

	latest := points[len(points)-1].ProductivityScore
	return NormalizeTo100(latest, min, max)
}
