package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/export"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateReport handles POST /api/v1/reports
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	log := logger.Ctx(c.Request.Context())

	report, err := h.reportService.Generate(c.Request.Context(), &req)
	if err != nil {
		if apierror.IsPersistence(err) {
			log.Error("failed to persist report", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewPersistenceProblem(requestID))
			return
		}
		// Remaining failures are period/range validation errors.
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	log.Info("report generated",
		logger.String("report_id", report.ID),
		logger.String("period", string(report.Period)),
		logger.String("start_date", report.StartDate.String()),
		logger.String("end_date", report.EndDate.String()))

	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /api/v1/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list reports", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"count":   len(reports),
	})
}

// GetReport handles GET /api/v1/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")
	requestID := apierror.GetRequestID(c)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load report", logger.Err(err), logger.String("report_id", id))
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}
	if report == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "report", id))
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportReport handles GET /api/v1/reports/:id/export?format=csv|json
// The rendered document is streamed as a download on the response.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", "csv")
	requestID := apierror.GetRequestID(c)

	if format != "csv" && format != "json" {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{{
			Field:   "format",
			Message: "must be 'csv' or 'json'",
			Code:    "invalid_value",
		}}))
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load report", logger.Err(err), logger.String("report_id", id))
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}
	if report == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "report", id))
		return
	}

	exporter := export.NewExporter(export.HTTPSink{W: c.Writer})
	if err := exporter.Download(report, format); err != nil {
		if errors.Is(err, apierror.ErrExportUnsupported) {
			apierror.WriteProblem(c, apierror.NewExportUnsupportedProblem(requestID))
			return
		}
		logger.Ctx(c.Request.Context()).Error("failed to export report", logger.Err(err), logger.String("report_id", id))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}
}
