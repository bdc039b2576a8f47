package models

import "time"

// InsightType represents the kind of observation an insight carries.
type InsightType string

const (
	InsightTypeRecommendation InsightType = "recommendation"
	InsightTypePattern        InsightType = "pattern"
	InsightTypeTrend          InsightType = "trend"
	InsightTypeAlert          InsightType = "alert"
)

// Severity represents how urgently an insight should surface to the user.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Well-known insight categories. Category is a free-form tag; these are
// the ones the local rule engine emits.
const (
	CategoryFocus        = "focus"
	CategoryHabits       = "habits"
	CategoryProductivity = "productivity"
	CategoryConsistency  = "consistency"
	CategoryCorrelation  = "correlation"
	CategoryGeneral      = "general"
)

// Insight is a single generated observation or recommendation. Insights
// are immutable once generated except for the IsRead flag.
type Insight struct {
	ID          string         `json:"id" db:"id"`
	Type        InsightType    `json:"type" db:"type"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Severity    Severity       `json:"severity" db:"severity"`
	Category    string         `json:"category" db:"category"`
	Data        map[string]any `json:"data,omitempty"`
	GeneratedAt time.Time      `json:"generated_at" db:"generated_at"`
	IsRead      bool           `json:"is_read" db:"is_read"`
}

// WeekdayAverage pairs a weekday name with its mean productivity score.
type WeekdayAverage struct {
	Weekday string  `json:"weekday"`
	Average float64 `json:"average"`
}

// StreakSummary holds the running and historical best productive-day runs.
type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// CorrelationResult describes how often high-focus days coincide with
// high-task days. Nil when either series is empty.
type CorrelationResult struct {
	FocusMean   float64 `json:"focus_mean"`
	TasksMean   float64 `json:"tasks_mean"`
	MatchedDays int     `json:"matched_days"`
	Percent     float64 `json:"percent"`
}

// PatternSummary bundles the PatternDetector outputs for one window.
type PatternSummary struct {
	MostProductiveWeekdays []string           `json:"most_productive_weekdays"`
	BestWorkingHours       []string           `json:"best_working_hours"`
	Streaks                StreakSummary      `json:"streaks"`
	Correlation            *CorrelationResult `json:"correlation,omitempty"`
}

// AnalysisResult is the full local-analysis output. The remote oracle
// returns the same shape.
type AnalysisResult struct {
	Score           float64        `json:"score"`
	Trend           Trend          `json:"trend"`
	Patterns        PatternSummary `json:"patterns"`
	Insights        []Insight      `json:"insights"`
	Recommendations []string       `json:"recommendations"`
	Source          string         `json:"source"` // "local" or "oracle"
	ComputedAt      time.Time      `json:"computed_at"`
}
