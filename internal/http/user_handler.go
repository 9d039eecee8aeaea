package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-match-service.com/task-match-service/internal/constants"
	dto "task-match-service.com/task-match-service/internal/data_models"
	middleware "task-match-service.com/task-match-service/internal/http/middlewares"
	"task-match-service.com/task-match-service/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Register(
		c.Request().Context(),
		req.Username,
		req.Email,
		req.Password,
		constants.Role(req.Role),
	)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  user,
	})
}

func (h *UserHandler) Me(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	user, err := h.users.Get(c.Request().Context(), actor.ID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, user)
}
