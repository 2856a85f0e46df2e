package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

// collectFiles pulls the named optional file parts off the multipart form and
// enforces the per-file size limit before anything touches disk or the
// database. The returned closer releases every opened part.
func collectFiles(c *gin.Context, fields []string, maxBytes int64) ([]services.FileUpload, func(), error) {
	var uploads []services.FileUpload
	var open []multipart.File

	closeAll := func() {
		for _, f := range open {
			_ = f.Close()
		}
	}

	for _, field := range fields {
		fh, err := c.FormFile(field)
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				continue
			}
			closeAll()
			return nil, nil, utils.E(utils.CodeInvalidArgument, "Registration",
				fmt.Sprintf("invalid multipart field %q", field), err)
		}
		if fh.Size <= 0 || fh.Size > maxBytes {
			closeAll()
			return nil, nil, utils.E(utils.CodeInvalidArgument, "Registration",
				fmt.Sprintf("file %q exceeds the %dMB limit", field, maxBytes>>20), nil)
		}

		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, utils.E(utils.CodeInternal, "Registration", "failed to open upload", err)
		}
		open = append(open, f)

		uploads = append(uploads, services.FileUpload{
			Field:  field,
			Ext:    strings.ToLower(filepath.Ext(fh.Filename)),
			Reader: f,
		})
	}

	return uploads, closeAll, nil
}
