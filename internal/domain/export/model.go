package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/quickinvoice/quickinvoice/internal/types"
)

// Export is one PDF generation attempt for a draft. The snapshot is captured
// at trigger time, so edits made while the export is in flight never affect
// it. A failed export is terminal; the user triggers a new, independent one.
type Export struct {
	ID            string             `json:"id"`
	DraftID       string             `json:"draft_id"`
	Status        types.ExportStatus `json:"status"`
	FileName      string             `json:"file_name"`
	Data          []byte             `json:"-"`
	FailureReason string             `json:"failure_reason,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
}

// NewExport returns an export record in the in-progress state.
func NewExport(draftID, fileName string, now time.Time) *Export {
	return &Export{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EXPORT),
		DraftID:   draftID,
		Status:    types.ExportStatusInProgress,
		FileName:  fileName,
		CreatedAt: now,
	}
}

// MarkReady transitions the export to ready with the generated artifact.
func (e *Export) MarkReady(data []byte, now time.Time) {
	e.Status = types.ExportStatusReady
	e.Data = data
	e.CompletedAt = &now
}

// MarkFailed transitions the export to its terminal failed state.
func (e *Export) MarkFailed(reason string, now time.Time) {
	e.Status = types.ExportStatusFailed
	e.FailureReason = reason
	e.CompletedAt = &now
}

// Copy returns a copy of the export record. The artifact bytes are shared;
// they are written once and never mutated afterwards.
func (e *Export) Copy() *Export {
	if e == nil {
		return nil
	}
	out := *e
	if e.CompletedAt != nil {
		completedAt := *e.CompletedAt
		out.CompletedAt = &completedAt
	}
	return &out
}

// FileName derives the suggested download name: the invoice number when
// non-empty, otherwise the current date in YYYY-MM-DD form.
func FileName(invoiceNumber string, now time.Time) string {
	id := strings.TrimSpace(invoiceNumber)
	if id == "" {
		id = now.Format("2006-01-02")
	}
	return fmt.Sprintf("invoice-%s.pdf", id)
}
