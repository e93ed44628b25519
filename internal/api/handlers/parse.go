package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/middleware"
	"github.com/jroosing/mailreply/internal/api/models"
	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/database"
	"github.com/jroosing/mailreply/internal/extract"
	"github.com/jroosing/mailreply/internal/helpers"
)

const (
	msgNoEmail  = "No email text provided"
	msgInternal = "Internal server error"
)

// Parse godoc
// @Summary Parse an email reply
// @Description Extracts reply type, proposed time, meeting link, delegate and notes from an email reply and stores the result. When the upstream model fails every field is null but the result is still stored.
// @Tags parse
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Email reply text"
// @Success 200 {object} models.ParseResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /parse [post]
func (h *Handler) Parse(c *gin.Context) {
	h.counters.requests.Add(1)

	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		h.counters.rejected.Add(1)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgNoEmail})
		return
	}

	ctx := c.Request.Context()
	fields, err := h.extractFields(ctx, req.Email)
	if err != nil {
		h.counters.degraded.Add(1)
	}

	if h.db == nil {
		h.counters.failed.Add(1)
		h.logger.Error("parse: database not configured", "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
		return
	}

	rec, err := h.db.InsertParsedEmail(ctx, database.ParsedEmail{
		InputText:       req.Email,
		ReplyType:       fields.ReplyType,
		ProposedTime:    fields.ProposedTime,
		MeetingLink:     fields.MeetingLink,
		DelegateTo:      fields.DelegateTo,
		AdditionalNotes: fields.AdditionalNotes,
	})
	if err != nil {
		h.counters.failed.Add(1)
		h.logger.Error("parse: failed to store result", "err", err, "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
		return
	}

	h.logger.Info("email parsed",
		"id", rec.ID,
		"reply_type", helpers.Deref(rec.ReplyType),
		"request_id", middleware.GetRequestID(c),
	)

	c.JSON(http.StatusOK, models.ParseResponse{
		ReplyType:       rec.ReplyType,
		ProposedTime:    rec.ProposedTime,
		MeetingLink:     rec.MeetingLink,
		DelegateTo:      rec.DelegateTo,
		AdditionalNotes: rec.AdditionalNotes,
		ID:              rec.ID,
		CreatedAt:       formatTimestamp(rec.CreatedAt),
	})
}

func (h *Handler) extractFields(ctx context.Context, text string) (extract.Fields, error) {
	if h.extractor == nil {
		return extract.Fields{}, extract.ErrNoProvider
	}
	return h.extractor.Extract(ctx, text)
}

// History godoc
// @Summary Parse history
// @Description Returns stored parse results, newest first
// @Tags parse
// @Produce json
// @Param limit query int false "Maximum entries (1-500, default 50)"
// @Success 200 {array} models.HistoryEntry
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /history [get]
func (h *Handler) History(c *gin.Context) {
	h.counters.history.Add(1)

	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
		return
	}

	limit := helpers.ParseLimit(c.Query("limit"), h.historyLimit(), config.MaxHistoryLimit)
	records, err := h.db.ListParsedEmails(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("history: failed to list results", "err", err, "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgInternal})
		return
	}

	entries := make([]models.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, models.HistoryEntry{
			ID:              rec.ID,
			InputText:       rec.InputText,
			ReplyType:       rec.ReplyType,
			ProposedTime:    rec.ProposedTime,
			MeetingLink:     rec.MeetingLink,
			DelegateTo:      rec.DelegateTo,
			AdditionalNotes: rec.AdditionalNotes,
			CreatedAt:       formatTimestamp(rec.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, entries)
}
