package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/service"
)

type AnalyticsHandler struct {
	pointService    service.DataPointService
	analysisService service.AnalysisService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(pointService service.DataPointService, analysisService service.AnalysisService) *AnalyticsHandler {
	return &AnalyticsHandler{
		pointService:    pointService,
		analysisService: analysisService,
	}
}

// GetScore handles GET /api/v1/analytics/score?days=
func (h *AnalyticsHandler) GetScore(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	points, err := h.pointService.Query(c.Request.Context(), days)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":       service.ScoreOf(points),
		"days":        days,
		"computed_at": time.Now().UTC(),
	})
}

// GetTrends handles GET /api/v1/analytics/trends?days=
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	points, err := h.pointService.Query(c.Request.Context(), days)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, service.TrendOf(points))
}

// GetPatterns handles GET /api/v1/analytics/patterns?days=
func (h *AnalyticsHandler) GetPatterns(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	points, err := h.pointService.Query(c.Request.Context(), days)
	if err != nil {
		h.writeQueryError(c, err)
		return
	}

	patterns := models.PatternSummary{
		MostProductiveWeekdays: service.MostProductiveWeekdays(points, service.DefaultTopWeekdays),
		BestWorkingHours:       service.BestWorkingHours(),
		Streaks:                service.Streaks(points, service.DefaultStreakThreshold),
		Correlation:            service.FocusTaskCorrelation(points),
	}

	c.JSON(http.StatusOK, patterns)
}

// Analyze handles GET /api/v1/analytics/analyze?days=&oracle=
// With oracle=true the remote analysis service is consulted, falling back
// to the local engine when it is unavailable.
func (h *AnalyticsHandler) Analyze(c *gin.Context) {
	days, ok := h.parseDays(c)
	if !ok {
		return
	}

	useOracle, _ := strconv.ParseBool(c.DefaultQuery("oracle", "false"))

	var (
		result *models.AnalysisResult
		err    error
	)
	if useOracle {
		result, err = h.analysisService.AnalyzeWithOracle(c.Request.Context(), days)
	} else {
		result, err = h.analysisService.Analyze(c.Request.Context(), days)
	}
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("analysis failed", logger.Err(err), logger.Int("days", days))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) parseDays(c *gin.Context) (int, bool) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(service.DefaultInsightWindowDays)))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{{
			Field:   "days",
			Message: "must be an integer",
			Code:    "invalid_type",
		}}))
		return 0, false
	}
	return days, true
}

func (h *AnalyticsHandler) writeQueryError(c *gin.Context, err error) {
	logger.Ctx(c.Request.Context()).Error("failed to query data points", logger.Err(err))
	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.FromError(requestID, err))
}
