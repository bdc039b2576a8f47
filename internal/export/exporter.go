// Package export serializes reports to CSV/JSON and hands the bytes to an
// environment-specific sink. The engine itself only ever produces content;
// where the bytes land (file, HTTP response, nowhere) is the sink's job.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/momentumhq/momentum-backend/internal/models"
)

// MIME types for the supported export formats.
const (
	MimeCSV  = "text/csv"
	MimeJSON = "application/json"
)

// CSVHeader is the fixed export header; order and names are part of the
// external interface and must not change.
var CSVHeader = []string{
	"period", "startDate", "endDate",
	"totalTasks", "totalFocusTime", "totalHabits",
	"averageProductivity", "bestDay", "worstDay",
	"tasksTrend", "focusTrend", "habitsTrend", "productivityTrend",
}

// Exporter renders reports and delivers them through a Sink.
type Exporter struct {
	sink Sink
}

// NewExporter creates an exporter bound to the given sink.
func NewExporter(sink Sink) *Exporter {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Exporter{sink: sink}
}

// ToCSV renders a report as a single header row plus one data row.
// Trend fields are written as raw decimal values.
func ToCSV(report *models.Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	row := []string{
		string(report.Period),
		report.StartDate.String(),
		report.EndDate.String(),
		strconv.Itoa(report.Totals.TasksCompleted),
		strconv.Itoa(report.Totals.FocusMinutes),
		formatFloat(report.Totals.HabitsScore),
		formatFloat(report.Averages.ProductivityScore),
		formatDay(report.BestDay),
		formatDay(report.WorstDay),
		formatFloat(report.TrendChanges.TasksCompleted),
		formatFloat(report.TrendChanges.FocusMinutes),
		formatFloat(report.TrendChanges.HabitsScore),
		formatFloat(report.TrendChanges.ProductivityScore),
	}

	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return "", fmt.Errorf("failed to write CSV row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return sb.String(), nil
}

// ToJSON renders the full report, 2-space indented, no wrapping object.
func ToJSON(report *models.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}

// Download renders the report in the requested format and hands the bytes
// to the sink. format is "csv" or "json".
func (e *Exporter) Download(report *models.Report, format string) error {
	var (
		content  string
		mimeType string
		ext      string
		err      error
	)

	switch format {
	case "csv":
		content, err = ToCSV(report)
		mimeType, ext = MimeCSV, "csv"
	case "json":
		content, err = ToJSON(report)
		mimeType, ext = MimeJSON, "json"
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("report-%s-%s.%s", report.Period, report.EndDate, ext)
	return e.sink.Write(filename, []byte(content), mimeType)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDay(d *models.DateKey) string {
	if d == nil {
		return ""
	}
	return d.String()
}
