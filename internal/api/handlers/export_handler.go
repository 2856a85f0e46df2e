package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/utils"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type ExportHandler struct {
	svc services.ExportService
}

func NewExportHandler(svc services.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Export streams the chosen collection as an attachment.
// GET /api/export/:entity?format=xlsx|pdf&status=pending|approved|rejected
func (h *ExportHandler) Export(c *gin.Context) {
	const op = "ExportHandler.Export"

	entity := c.Param("entity")
	status := models.Status(c.Query("status"))

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	switch format := c.DefaultQuery("format", "xlsx"); format {
	case "xlsx":
		data, filename, err = h.svc.Workbook(c.Request.Context(), entity, status)
		contentType = contentTypeXLSX
	case "pdf":
		data, filename, err = h.svc.PDF(c.Request.Context(), entity, status)
		contentType = contentTypePDF
	default:
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "format must be xlsx or pdf", nil))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
