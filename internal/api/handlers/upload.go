package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scrumish/internal/application"
	"github.com/linskybing/scrumish/pkg/response"
)

// formFile opens the multipart file named field. The returned closer must
// be called once the upload is consumed. A missing optional file yields nil.
func formFile(c *gin.Context, field string, required bool) (*application.Upload, func(), bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		if !required && (errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)) {
			return nil, func() {}, true
		}
		c.JSON(http.StatusBadRequest, response.ValidationErrorResponse{
			Error:  "validation failed",
			Fields: map[string]string{field: "file is required"},
		})
		return nil, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return nil, nil, false
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &application.Upload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, true
}

// sendFile streams body as a download and closes it.
func sendFile(c *gin.Context, body io.ReadCloser, size int64, contentType, filename string) {
	defer body.Close()
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, size, contentType, body, map[string]string{
		"Content-Disposition": contentDisposition(filename),
	})
}

// contentDisposition quotes or RFC 2231 encodes filename as needed.
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
