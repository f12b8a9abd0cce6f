package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityconnect/issue-reporting/internal/api/metrics"
	"github.com/cityconnect/issue-reporting/internal/core/ports"
)

// FileHandler handles media uploads.
type FileHandler struct {
	storage ports.FileStorage
}

func NewFileHandler(storage ports.FileStorage) *FileHandler {
	return &FileHandler{storage: storage}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/v1/files/upload. The file arrives as
// multipart/form-data under the "file" key.
//
// @Summary      Upload an image
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/files/upload [post]
func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	if fileHeader.Size == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	url, err := h.storage.Store(fileHeader.Filename, src)
	if err != nil {
		metrics.FileUploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.FileUploadsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, uploadResponse{URL: url})
}
