package dto

import (
	"time"

	"github.com/quickinvoice/quickinvoice/internal/domain/export"
	"github.com/quickinvoice/quickinvoice/internal/types"
)

// ExportResponse reports the state of one PDF export.
type ExportResponse struct {
	ID          string             `json:"id"`
	DraftID     string             `json:"draft_id"`
	Status      types.ExportStatus `json:"status"`
	FileName    string             `json:"file_name,omitempty"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

func NewExportResponse(e *export.Export) *ExportResponse {
	resp := &ExportResponse{
		ID:          e.ID,
		DraftID:     e.DraftID,
		Status:      e.Status,
		Error:       e.FailureReason,
		CreatedAt:   e.CreatedAt,
		CompletedAt: e.CompletedAt,
	}
	// The suggested file name only matters once there is something to save.
	if e.Status == types.ExportStatusReady {
		resp.FileName = e.FileName
	}
	return resp
}
