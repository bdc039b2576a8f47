package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/service"
)

type DataPointHandler struct {
	pointService service.DataPointService
}

// NewDataPointHandler creates a new data point handler
func NewDataPointHandler(pointService service.DataPointService) *DataPointHandler {
	return &DataPointHandler{
		pointService: pointService,
	}
}

// SubmitMeasurement handles POST /api/v1/datapoints
func (h *DataPointHandler) SubmitMeasurement(c *gin.Context) {
	var req models.SubmitMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	log := logger.Ctx(c.Request.Context())

	point, err := h.pointService.Submit(c.Request.Context(), &req)
	if err != nil {
		log.Error("failed to submit measurement", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, point)
}

// GetDataPoints handles GET /api/v1/datapoints?days=
// days defaults to 0, which returns all stored points.
func (h *DataPointHandler) GetDataPoints(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "0"))
	if err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{{
			Field:   "days",
			Message: "must be an integer",
			Code:    "invalid_type",
		}}))
		return
	}

	points, err := h.pointService.Query(c.Request.Context(), days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to query data points", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data_points": points,
		"count":       len(points),
	})
}

// GetDataPointRange handles GET /api/v1/datapoints/range?start_date=&end_date=
func (h *DataPointHandler) GetDataPointRange(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var fieldErrors []apierror.FieldError
	var start, end models.DateKey
	var err error

	if s := c.Query("start_date"); s == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "start_date",
			Message: "is required",
			Code:    "required",
		})
	} else if start, err = models.ParseDateKey(s); err != nil {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "start_date",
			Message: "must be a YYYY-MM-DD date",
			Code:    "invalid_format",
		})
	}

	if e := c.Query("end_date"); e == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "end_date",
			Message: "is required",
			Code:    "required",
		})
	} else if end, err = models.ParseDateKey(e); err != nil {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field:   "end_date",
			Message: "must be a YYYY-MM-DD date",
			Code:    "invalid_format",
		})
	}

	if len(fieldErrors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	points, err := h.pointService.RangeQuery(c.Request.Context(), start, end)
	if err != nil {
		if apierror.IsPersistence(err) {
			logger.Ctx(c.Request.Context()).Error("failed to query data point range", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewPersistenceProblem(requestID))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data_points": points,
		"count":       len(points),
	})
}
