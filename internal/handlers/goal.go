package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/service"
)

type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), &req)
	if err != nil {
		if apierror.IsPersistence(err) {
			logger.Ctx(c.Request.Context()).Error("failed to create goal", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewPersistenceProblem(requestID))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// ListGoals handles GET /api/v1/goals
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list goals", logger.Err(err))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goals": goals,
		"count": len(goals),
	})
}

// GetGoal handles GET /api/v1/goals/:id
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id := c.Param("id")
	requestID := apierror.GetRequestID(c)

	goal, err := h.goalService.GetGoal(c.Request.Context(), id)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load goal", logger.Err(err), logger.String("goal_id", id))
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}
	if goal == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "goal", id))
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateProgress handles PUT /api/v1/goals/:id/progress
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	id := c.Param("id")
	requestID := apierror.GetRequestID(c)

	var req models.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateProgress(c.Request.Context(), id, &req)
	if err != nil {
		if apierror.IsPersistence(err) {
			logger.Ctx(c.Request.Context()).Error("failed to update goal progress", logger.Err(err), logger.String("goal_id", id))
			apierror.WriteProblem(c, apierror.NewPersistenceProblem(requestID))
			return
		}
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error()))
		return
	}
	if goal == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "goal", id))
		return
	}

	c.JSON(http.StatusOK, goal)
}

// ArchiveGoal handles POST /api/v1/goals/:id/archive
func (h *GoalHandler) ArchiveGoal(c *gin.Context) {
	id := c.Param("id")
	requestID := apierror.GetRequestID(c)

	goal, err := h.goalService.ArchiveGoal(c.Request.Context(), id)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to archive goal", logger.Err(err), logger.String("goal_id", id))
		apierror.WriteProblem(c, apierror.FromError(requestID, err))
		return
	}
	if goal == nil {
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "goal", id))
		return
	}

	c.JSON(http.StatusOK, goal)
}
