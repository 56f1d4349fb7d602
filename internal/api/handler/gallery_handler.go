package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/api/metrics"
	"github.com/galeria/admin-api/internal/core/ports"
)

type GalleryHandler struct {
	service ports.GalleryService
}

func NewGalleryHandler(service ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List returns every gallery with its photos.
//
// @Summary      List galleries
// @Tags         galleries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  galleriesResponse
// @Router       /galleries [get]
func (h *GalleryHandler) List(c echo.Context) error {
	galleries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleriesResponse{Galleries: galleries})
}

// Get godoc
// @Summary      Get a gallery
// @Tags         galleries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gallery ID"
// @Success      200  {object}  galleryResponse
// @Failure      404  {object}  errorResponse
// @Router       /galleries/{id} [get]
func (h *GalleryHandler) Get(c echo.Context) error {
	g, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleryResponse{Gallery: g})
}

// Create godoc
// @Summary      Create a gallery
// @Tags         galleries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      galleryRequest  true  "Gallery"
// @Success      201   {object}  galleryResponse
// @Failure      422   {object}  errorResponse
// @Router       /galleries [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req galleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	g, err := h.service.Create(c.Request().Context(), ports.GalleryInput{Title: req.Title, Date: req.Date, Site: req.Site})
	if err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("gallery", "create").Inc()
	return c.JSON(http.StatusCreated, galleryResponse{Gallery: g})
}

// Update godoc
// @Summary      Replace a gallery
// @Tags         galleries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Gallery ID"
// @Param        body  body      galleryRequest  true  "Gallery"
// @Success      200   {object}  galleryResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /galleries/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	var req galleryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	g, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.GalleryInput{Title: req.Title, Date: req.Date, Site: req.Site})
	if err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("gallery", "update").Inc()
	return c.JSON(http.StatusOK, galleryResponse{Gallery: g})
}

// Delete removes the gallery together with its photos.
//
// @Summary      Delete a gallery
// @Tags         galleries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gallery ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /galleries/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("gallery", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "gallery deleted"})
}
