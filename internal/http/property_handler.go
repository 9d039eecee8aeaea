package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-match-service.com/task-match-service/internal/data_models"
	middleware "task-match-service.com/task-match-service/internal/http/middlewares"
	"task-match-service.com/task-match-service/internal/services"
)

type PropertyHandler struct {
	properties *services.PropertyService
}

func NewPropertyHandler(properties *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req dto.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.properties.CreateProperty(c.Request().Context(), actor, req.Name)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	properties, err := h.properties.ListProperties(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(properties),
		"properties": properties,
	})
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	if err := h.properties.DeleteProperty(c.Request().Context(), actor, c.Param("id")); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) AttachTaskProperty(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req dto.TaskPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.properties.AttachTaskProperty(c.Request().Context(), actor, c.Param("id"), req.PropertyID); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) DetachTaskProperty(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	if err := h.properties.DetachTaskProperty(c.Request().Context(), actor, c.Param("id"), c.Param("propertyId")); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) SetUserProperty(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req dto.UserPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.properties.SetUserProperty(c.Request().Context(), actor, req.PropertyID, *req.Interested); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) DeleteUserProperty(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	if err := h.properties.DeleteUserProperty(c.Request().Context(), actor, c.Param("propertyId")); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) SetReaction(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req dto.ReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.properties.SetReaction(c.Request().Context(), actor, c.Param("id"), *req.Liked); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) DeleteReaction(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.ErrUnauthorized
	}

	if err := h.properties.DeleteReaction(c.Request().Context(), actor, c.Param("id")); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
