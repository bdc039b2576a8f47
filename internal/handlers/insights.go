package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/service"
)

// InsightsHandler handles insight-related HTTP requests
type InsightsHandler struct {
	insightService service.InsightService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightService service.InsightService) *InsightsHandler {
	return &InsightsHandler{
		insightService: insightService,
	}
}

// GetInsights returns all stored insights, newest first
// GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	insights, err := h.insightService.ListInsights(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list insights", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights": insights,
		"count":    len(insights),
	})
}

// MarkRead flags a single insight as read
// POST /api/v1/insights/:id/read
func (h *InsightsHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	requestID := apierror.GetRequestID(c)

	if err := h.insightService.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrInsightNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "insight", id))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to mark insight read", logger.Err(err), logger.String("insight_id", id))
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
