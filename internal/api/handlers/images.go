package handlers

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/voltmarket/internal/imagestore"
)

// ImageFormField is the multipart field holding the uploaded files.
const ImageFormField = "images"

// ImageUploader stores images and returns their URLs in input order.
type ImageUploader interface {
	Upload(ctx context.Context, files []imagestore.File) ([]string, error)
}

// ImagesHandler accepts listing image uploads.
type ImagesHandler struct {
	uploader ImageUploader
}

// NewImagesHandler creates a new ImagesHandler.
func NewImagesHandler(u ImageUploader) *ImagesHandler {
	return &ImagesHandler{uploader: u}
}

// ImagesResponse lists the URLs of the uploaded images.
type ImagesResponse struct {
	URLs []string `json:"urls"`
}

// Upload handles POST /api/v1/images.
//
// @Summary Upload listing images
// @Description Stores the files of the "images" multipart field and returns their URLs in upload order.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} ImagesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/images [post]
func (h *ImagesHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form: " + err.Error()})
	}

	headers := form.File[ImageFormField]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no files in field " + ImageFormField})
	}

	files, closeAll, err := openFiles(headers)
	defer closeAll()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	urls, err := h.uploader.Upload(c.Request().Context(), files)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, imagestore.ErrUnsupportedType) || errors.Is(err, imagestore.ErrFileTooLarge) {
			status = http.StatusUnprocessableEntity
		}
		return c.JSON(status, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, ImagesResponse{URLs: urls})
}

func openFiles(headers []*multipart.FileHeader) ([]imagestore.File, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	files := make([]imagestore.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, fmt.Errorf("opening %s: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, imagestore.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return files, closeAll, nil
}
