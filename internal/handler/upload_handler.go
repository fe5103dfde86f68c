package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stayfinder/internal/errors"
)

// UploadHandler stores uploaded images on local disk; the upload directory is
// served statically under /uploads.
type UploadHandler struct {
	dir string
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadImage godoc
// @Summary Upload a listing image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /upload/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fail(c, errors.NewValidationError("image file is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return err
	}

	name := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return respondData(c, http.StatusOK, UploadResponse{URL: "/uploads/" + name})
}
