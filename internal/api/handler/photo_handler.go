package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/galeria/admin-api/internal/api/metrics"
	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
)

// photoFileField is the multipart field carrying the image.
const photoFileField = "location"

type PhotoHandler struct {
	service ports.PhotoService
}

func NewPhotoHandler(service ports.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// List godoc
// @Summary      List photos
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        gallery_id  query     string  false  "Only photos of this gallery"
// @Success      200         {object}  photosResponse
// @Router       /photos [get]
func (h *PhotoHandler) List(c echo.Context) error {
	photos, err := h.service.List(c.Request().Context(), c.QueryParam("gallery_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photosResponse{Photos: photos})
}

// Get godoc
// @Summary      Get a photo
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Photo ID"
// @Success      200  {object}  photoResponse
// @Failure      404  {object}  errorResponse
// @Router       /photos/{id} [get]
func (h *PhotoHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, photoResponse{Photo: p})
}

// Create uploads one image into a gallery.
//
// @Summary      Upload a photo
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        location    formData  file    true   "Image (jpeg, png, gif or webp)"
// @Param        gallery_id  formData  string  true   "Gallery ID"
// @Param        title       formData  string  false  "Title, defaults to the file name"
// @Success      201         {object}  photoResponse
// @Failure      404         {object}  errorResponse
// @Failure      413         {object}  errorResponse
// @Failure      415         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /photos [post]
func (h *PhotoHandler) Create(c echo.Context) error {
	fh, err := c.FormFile(photoFileField)
	if err != nil {
		metrics.PhotoUploadsRejectedTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "location file is required")
	}
	galleryID := c.FormValue("gallery_id")
	if galleryID == "" {
		metrics.PhotoUploadsRejectedTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "gallery_id is required")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := h.service.Upload(c.Request().Context(), ports.UploadPhotoInput{
		GalleryID: galleryID,
		Title:     c.FormValue("title"),
		Filename:  fh.Filename,
		Size:      fh.Size,
		Content:   f,
	})
	if err != nil {
		metrics.PhotoUploadsRejectedTotal.WithLabelValues(uploadRejection(err)).Inc()
		return err
	}
	metrics.PhotosUploadedTotal.Inc()
	metrics.EntityMutationsTotal.WithLabelValues("photo", "create").Inc()
	return c.JSON(http.StatusCreated, photoResponse{Photo: p})
}

// Update godoc
// @Summary      Update a photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Photo ID"
// @Param        body  body      updatePhotoRequest  true  "Fields to change"
// @Success      200   {object}  photoResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /photos/{id} [put]
func (h *PhotoHandler) Update(c echo.Context) error {
	var req updatePhotoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePhotoInput{
		Title:     req.Title,
		GalleryID: req.GalleryID,
	})
	if err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("photo", "update").Inc()
	return c.JSON(http.StatusOK, photoResponse{Photo: p})
}

// Delete godoc
// @Summary      Delete a photo
// @Tags         photos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Photo ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /photos/{id} [delete]
func (h *PhotoHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntityMutationsTotal.WithLabelValues("photo", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "photo deleted"})
}

func uploadRejection(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return "unsupported_media"
	case errors.Is(err, domain.ErrFileTooLarge):
		return "too_large"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrGalleryNotFound):
		return "invalid"
	default:
		return "error"
	}
}
