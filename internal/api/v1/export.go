package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
	logger        *logger.Logger
}

func NewExportHandler(exportService service.ExportService, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// StartExport captures the draft's current snapshot and generates its PDF in
// the background. The response carries the export id to poll for readiness.
func (h *ExportHandler) StartExport(c *gin.Context) {
	exp, err := h.exportService.StartExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Errorw("failed to start export", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusAccepted, exp)
}

// GetExport reports the export status: in_progress, ready or failed.
func (h *ExportHandler) GetExport(c *gin.Context) {
	exp, err := h.exportService.GetExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, exp)
}

// DownloadExport serves the generated PDF as an attachment.
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	exp, err := h.exportService.DownloadExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.FileName))
	c.Data(http.StatusOK, "application/pdf", exp.Data)
}
