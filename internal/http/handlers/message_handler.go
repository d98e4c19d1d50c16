// Inbox HTTP handlers.
//
// This file exposes the read side of the contact audit trail:
//   - GET  /messages           (list, status filter + pagination)
//   - GET  /messages/{id}      (single message)
//   - POST /messages/{id}/read (unread → read transition)
//
// These endpoints use the blog-style error envelope, not the contact form
// contract: their consumer is the site owner's dashboard, not the public form.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkarali/go-blog-backend/internal/domain"
	"github.com/pkarali/go-blog-backend/internal/services"
)

// InboxService defines the stored-submission read operations consumed by the
// inbox handlers. Implementations must honor ctx for cancellation.
type InboxService interface {
	// Messages returns one page of submissions plus the total count.
	Messages(ctx context.Context, status string, page, pageSize int) ([]domain.ContactMessage, int64, error)
	// Message returns one submission, or services.ErrMessageNotFound.
	Message(ctx context.Context, id string) (*domain.ContactMessage, error)
	// MarkRead transitions a submission to read and returns the updated row.
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
}

// ListMessagesResponse wraps a page of stored contact messages.
type ListMessagesResponse struct {
	Messages   []domain.ContactMessage `json:"messages"`
	Pagination Pagination              `json:"pagination"`
}

// validStatusFilter reports whether the status query value is one the
// listing understands.
func validStatusFilter(s string) bool {
	switch s {
	case "", "all", "unread", "read":
		return true
	}
	return false
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List contact messages
// @Description Returns stored contact submissions, newest first. Filter by status=unread|read; omit or pass all for everything.
// @Tags        Inbox
// @Produce     json
//
// @Param       status     query  string  false "Status filter" Enums(all, unread, read)
// @Param       page       query  int     false "Page number"    minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page" minimum(1) maximum(50) default(10)
//
// @Success     200  {object} handlers.ListMessagesResponse
// @Failure     400  {object} handlers.ErrorResponse "Unknown status filter"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	status := c.Query("status")
	if !validStatusFilter(status) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be one of: all, unread, read")
		return
	}
	page, pageSize := clampPagination(c)

	items, total, err := h.inboxSvc.Messages(c.Request.Context(), status, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list messages")
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	ok(c, http.StatusOK, ListMessagesResponse{
		Messages: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int(total),
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetMessage godoc
// @ID          getMessage
// @Summary     Get a contact message
// @Description Returns one stored contact submission by ID.
// @Tags        Inbox
// @Produce     json
//
// @Param       id  path  string  true  "Message ID"
//
// @Success     200  {object} domain.ContactMessage
// @Failure     404  {object} handlers.ErrorResponse "Message not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /messages/{id} [get]
func (h *Handlers) GetMessage(c *gin.Context) {
	m, err := h.inboxSvc.Message(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load message")
		return
	}
	ok(c, http.StatusOK, m)
}

// MarkMessageRead godoc
// @ID          markMessageRead
// @Summary     Mark a contact message as read
// @Description Transitions a stored submission from unread to read. Marking an already read message succeeds unchanged.
// @Tags        Inbox
// @Produce     json
//
// @Param       id  path  string  true  "Message ID"
//
// @Success     200  {object} domain.ContactMessage
// @Failure     404  {object} handlers.ErrorResponse "Message not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /messages/{id}/read [post]
func (h *Handlers) MarkMessageRead(c *gin.Context) {
	m, err := h.inboxSvc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update message")
		return
	}
	ok(c, http.StatusOK, m)
}
