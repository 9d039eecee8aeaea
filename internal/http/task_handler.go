package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-match-service.com/task-match-service/internal/data_models"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	middleware "task-match-service.com/task-match-service/internal/http/middlewares"
	model "task-match-service.com/task-match-service/internal/models"
	"task-match-service.com/task-match-service/internal/services"
)

type TaskHandler struct {
	lifecycle       *services.LifecycleService
	recommendations *services.RecommendationService
}

func NewTaskHandler(lifecycle *services.LifecycleService, recommendations *services.RecommendationService) *TaskHandler {
	return &TaskHandler{
		lifecycle:       lifecycle,
		recommendations: recommendations,
	}
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.lifecycle.Create(c.Request().Context(), actor, req.Name, req.Description)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	task, err := h.lifecycle.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.lifecycle.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *TaskHandler) ListUnassignedTasks(c echo.Context) error {
	tasks, err := h.lifecycle.ListUnassigned(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *TaskHandler) AssignTask(c echo.Context) error {
	return h.transition(c, h.lifecycle.Assign)
}

func (h *TaskHandler) UnassignTask(c echo.Context) error {
	return h.transition(c, h.lifecycle.Unassign)
}

func (h *TaskHandler) SubmitTask(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req dto.SubmitTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.lifecycle.Submit(c.Request().Context(), actor, c.Param("id"), req.Output)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) ApproveTask(c echo.Context) error {
	return h.transition(c, h.lifecycle.Approve)
}

func (h *TaskHandler) DeactivateTask(c echo.Context) error {
	return h.transition(c, h.lifecycle.Deactivate)
}

func (h *TaskHandler) Recommendations(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
	}

	ranked, err := h.recommendations.Recommend(c.Request().Context(), actor.ID, limit)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(ranked),
		"results": ranked,
	})
}

func (h *TaskHandler) transition(
	c echo.Context,
	op func(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error),
) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	task, err := op(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// serviceError maps service-layer exceptions onto HTTP responses.
func serviceError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}
