package models

import "time"

// Metric identifies one of the numeric DataPoint fields.
type Metric string

const (
	MetricTasksCompleted    Metric = "tasks_completed"
	MetricFocusMinutes      Metric = "focus_minutes"
	MetricHabitsScore       Metric = "habits_score"
	MetricEventsCount       Metric = "events_count"
	MetricProductivityScore Metric = "productivity_score"
)

// ValidMetric reports whether m names a known DataPoint metric.
func ValidMetric(m Metric) bool {
	switch m {
	case MetricTasksCompleted, MetricFocusMinutes, MetricHabitsScore,
		MetricEventsCount, MetricProductivityScore:
		return true
	}
	return false
}

// DataPoint holds one calendar day's raw productivity measurements.
// HabitsScore and ProductivityScore are clamped to [0,100] on write.
type DataPoint struct {
	Date              DateKey   `json:"date" db:"date"`
	TasksCompleted    int       `json:"tasks_completed" db:"tasks_completed"`
	FocusMinutes      int       `json:"focus_minutes" db:"focus_minutes"`
	HabitsScore       float64   `json:"habits_score" db:"habits_score"`
	EventsCount       int       `json:"events_count" db:"events_count"`
	ProductivityScore float64   `json:"productivity_score" db:"productivity_score"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// MetricValue returns the named metric of the point as a float.
func (p DataPoint) MetricValue(m Metric) float64 {
	switch m {
	case MetricTasksCompleted:
		return float64(p.TasksCompleted)
	case MetricFocusMinutes:
		return float64(p.FocusMinutes)
	case MetricHabitsScore:
		return p.HabitsScore
	case MetricEventsCount:
		return float64(p.EventsCount)
	case MetricProductivityScore:
		return p.ProductivityScore
	default:
		return 0
	}
}

// SubmitMeasurementRequest is the payload pushed by the task/habit/focus/
// calendar collaborators. Date defaults to today when omitted; negative
// counts and out-of-range scores are clamped on write rather than
// rejected, so collaborators never lose a day to a bad field.
type SubmitMeasurementRequest struct {
	Date              *DateKey `json:"date"`
	TasksCompleted    int      `json:"tasks_completed"`
	FocusMinutes      int      `json:"focus_minutes"`
	HabitsScore       float64  `json:"habits_score"`
	EventsCount       int      `json:"events_count"`
	ProductivityScore float64  `json:"productivity_score"`
}

// Trend is a set of index-aligned smoothed series derived from DataPoints.
// Every series has the same length as Dates.
type Trend struct {
	Dates             []DateKey `json:"dates"`
	TasksCompleted    []float64 `json:"tasks_completed"`
	FocusMinutes      []float64 `json:"focus_minutes"`
	HabitsScore       []float64 `json:"habits_score"`
	ProductivityScore []float64 `json:"productivity_score"`
}

// Len returns the number of days in the trend.
func (t Trend) Len() int {
	return len(t.Dates)
}

// GoalStatus is the lifecycle state of a Goal.
type GoalStatus string

const (
	GoalStatusActive   GoalStatus = "active"
	GoalStatusAchieved GoalStatus = "achieved"
	GoalStatusArchived GoalStatus = "archived"
)

// Goal tracks progress toward a target value of one DataPoint metric.
type Goal struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	TargetMetric Metric     `json:"target_metric" db:"target_metric"`
	TargetValue  float64    `json:"target_value" db:"target_value"`
	CurrentValue float64    `json:"current_value" db:"current_value"`
	Deadline     *DateKey   `json:"deadline,omitempty" db:"deadline"`
	Status       GoalStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateGoalRequest is the payload to create a goal.
type CreateGoalRequest struct {
	Name         string   `json:"name" binding:"required"`
	TargetMetric Metric   `json:"target_metric" binding:"required"`
	TargetValue  float64  `json:"target_value" binding:"required,gt=0"`
	Deadline     *DateKey `json:"deadline"`
}

// UpdateGoalProgressRequest advances a goal's current value. Negative
// values are clamped to zero on write.
type UpdateGoalProgressRequest struct {
	CurrentValue float64 `json:"current_value"`
}

// ReportPeriod is the aggregation granularity of a Report.
type ReportPeriod string

const (
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
	PeriodCustom  ReportPeriod = "custom"
)

// ReportTotals holds elementwise sums over the report range.
// HabitsScore is the summed daily habit score, kept for the CSV surface.
type ReportTotals struct {
	TasksCompleted int     `json:"tasks_completed"`
	FocusMinutes   int     `json:"focus_minutes"`
	EventsCount    int     `json:"events_count"`
	HabitsScore    float64 `json:"habits_score"`
}

// ReportAverages holds per-day values normalized over days with data.
type ReportAverages struct {
	TasksCompleted    float64 `json:"tasks_completed"`
	FocusMinutes      float64 `json:"focus_minutes"`
	HabitsScore       float64 `json:"habits_score"`
	ProductivityScore float64 `json:"productivity_score"`
}

// ReportTrendChanges holds the percent change of each metric between the
// first and second half of the report range.
type ReportTrendChanges struct {
	TasksCompleted    float64 `json:"tasks_completed"`
	FocusMinutes      float64 `json:"focus_minutes"`
	HabitsScore       float64 `json:"habits_score"`
	ProductivityScore float64 `json:"productivity_score"`
}

// Report is an immutable aggregation of DataPoints and Insights over an
// inclusive date range. Regenerating the same range produces a new ID and
// GeneratedAt; reports are listed most-recent-first.
type Report struct {
	ID              string             `json:"id" db:"id"`
	Period          ReportPeriod       `json:"period" db:"period"`
	StartDate       DateKey            `json:"start_date" db:"start_date"`
	EndDate         DateKey            `json:"end_date" db:"end_date"`
	Totals          ReportTotals       `json:"totals"`
	Averages        ReportAverages     `json:"averages"`
	BestDay         *DateKey           `json:"best_day,omitempty"`
	WorstDay        *DateKey           `json:"worst_day,omitempty"`
	Trend           Trend              `json:"trend"`
	TrendChanges    ReportTrendChanges `json:"trend_changes"`
	Insights        []Insight          `json:"insights"`
	Recommendations []string           `json:"recommendations"`
	GeneratedAt     time.Time          `json:"generated_at" db:"generated_at"`
}

// GenerateReportRequest asks for a report over a period. Start and end are
// required for custom periods and derived from today otherwise.
type GenerateReportRequest struct {
	Period    ReportPeriod `json:"period" binding:"required"`
	StartDate *DateKey     `json:"start_date"`
	EndDate   *DateKey     `json:"end_date"`
}
