package handler

import (
	"io"
	"net/http"

	"shapeme/internal/delivery/http/response"
	"shapeme/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler exposes image uploads and display URL generation on top of
// the media service.
type UploadHandler struct {
	media service.MediaService
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(media service.MediaService) *UploadHandler {
	return &UploadHandler{media: media}
}

// UploadImage accepts a multipart "file" field and pushes it to the image
// host. The response carries the public id plus the three display URLs.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}
	if len(content) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded file is empty")
	}

	result, err := h.media.UploadImage(c.Request().Context(), content, fileHeader.Filename)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Image uploaded successfully")
}

// ImageURL builds a pre-sized delivery URL for a stored image. Size defaults
// to medium when omitted.
func (h *UploadHandler) ImageURL(c echo.Context) error {
	publicID := c.QueryParam("public_id")
	if publicID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "public_id is required")
	}

	size := service.ImageSize(c.QueryParam("size"))
	if size == "" {
		size = service.ImageSizeMedium
	}

	url, err := h.media.DisplayURL(publicID, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"public_id": publicID,
		"size":      size,
		"url":       url,
	}, "")
}
