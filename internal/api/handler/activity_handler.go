package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/api/metrics"
	"github.com/galeria/admin-api/internal/core/ports"
)

type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List godoc
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  activitiesResponse
// @Router       /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activitiesResponse{Activities: activities})
}

// Get godoc
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity ID"
// @Success      200  {object}  activityResponse
// @Failure      404  {object}  errorResponse
// @Router       /activities/{id} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	a, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityResponse{Activity: a})
}

// Create godoc
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      activityRequest  true  "Activity"
// @Success      201   {object}  activityResponse
// @Failure      422   {object}  errorResponse
// @Router       /activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var req activityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.service.Create(c.Request().Context(), toActivityInput(req))
	if err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("activity", "create").Inc()
	return c.JSON(http.StatusCreated, activityResponse{Activity: a})
}

// Update godoc
// @Summary      Replace an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Activity ID"
// @Param        body  body      activityRequest  true  "Activity"
// @Success      200   {object}  activityResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	var req activityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.service.Update(c.Request().Context(), c.Param("id"), toActivityInput(req))
	if err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("activity", "update").Inc()
	return c.JSON(http.StatusOK, activityResponse{Activity: a})
}

// Delete godoc
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("activity", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "activity deleted"})
}

func toActivityInput(req activityRequest) ports.ActivityInput {
	return ports.ActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Site:        req.Site,
	}
}
