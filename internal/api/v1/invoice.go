package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quickinvoice/quickinvoice/internal/api/dto"
	ierr "github.com/quickinvoice/quickinvoice/internal/errors"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/service"
)

type DraftHandler struct {
	draftService service.DraftService
	logger       *logger.Logger
}

func NewDraftHandler(draftService service.DraftService, logger *logger.Logger) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		logger:       logger,
	}
}

// CreateDraft starts a new editing session with generated defaults: one blank
// item, today's issue date, a due date 30 days out and a fresh invoice number.
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	draft, err := h.draftService.CreateDraft(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to create draft", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, draft)
}

// GetDraft returns the current snapshot of a draft.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.draftService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateHeaderField sets one scalar field of the draft.
func (h *DraftHandler) UpdateHeaderField(c *gin.Context) {
	var req dto.UpdateHeaderFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	draft, err := h.draftService.UpdateHeaderField(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateItemField sets one field of the line item at the given index. Numeric
// fields are coerced; invalid numbers silently become zero rather than errors.
func (h *DraftHandler) UpdateItemField(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid item index").Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateItemFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	draft, err := h.draftService.UpdateItemField(c.Request.Context(), c.Param("id"), index, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// AddItem appends a blank line item to the draft.
func (h *DraftHandler) AddItem(c *gin.Context) {
	draft, err := h.draftService.AddItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, draft)
}

// GetPreview returns the laid-out document for the current snapshot.
func (h *DraftHandler) GetPreview(c *gin.Context) {
	preview, err := h.draftService.GetPreview(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, preview)
}
