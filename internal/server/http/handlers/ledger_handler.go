package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
	"github.com/polkiloo/mywallet/internal/domain/model"
	"github.com/polkiloo/mywallet/internal/server/http/dto"
)

// dateLayout renders entry dates at day/month granularity.
const dateLayout = "02/01"

// LedgerHandler manages the balance endpoints.
type LedgerHandler struct {
	facade LedgerFacade
}

// NewLedgerHandler constructs LedgerHandler.
func NewLedgerHandler(facade LedgerFacade) *LedgerHandler {
	return &LedgerHandler{facade: facade}
}

// Append handles POST /balance.
func (h *LedgerHandler) Append(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationMessages(err)})
		return
	}

	_, err := h.facade.AddEntry(c.Request.Context(), userID, *req.Value, req.Title, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrEmptyTitle),
			errors.Is(err, domainErrors.ErrInvalidEntryKind):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{err.Error()}})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusCreated)
}

// List handles GET /balance.
func (h *LedgerHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	entries, err := h.facade.Entries(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, renderEntry(e))
	}
	c.JSON(http.StatusOK, resp)
}

func renderEntry(e model.Entry) dto.EntryResponse {
	return dto.EntryResponse{
		SequenceID: e.Seq,
		Title:      e.Title,
		Kind:       string(e.Kind),
		Amount:     e.Amount.String(),
		Date:       e.RecordedAt.Format(dateLayout),
	}
}
