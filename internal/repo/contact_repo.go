// This file provides repository functions for the ContactMessage model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a message is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.

package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateContactMessage inserts a new contact message row. The ID is a
// randomly generated UUID (string) and CreatedAt is set to UTC. The caller
// passes fully sanitized field values; the repository stores them verbatim.
func CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = "unread"
	}
	m.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// MarkDispatched flags a stored message as acknowledged by the mailer.
// Returns ErrNotFound when the row does not exist.
func MarkDispatched(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("dispatched", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkRead transitions a message from unread to read. Marking an already
// read message is a no-op that still succeeds. Returns ErrNotFound when the
// row does not exist.
func MarkRead(ctx context.Context, db *gorm.DB, id string) error {
	var m domain.ContactMessage
	if err := db.WithContext(ctx).Select("id", "status").First(&m, "id = ?", id).Error; err != nil {
		return err
	}
	if m.Status == "read" {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("status", "read").Error
}

// GetContactMessage fetches a single message by ID, or ErrNotFound.
func GetContactMessage(ctx context.Context, db *gorm.DB, id string) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListContactMessages returns a page of messages, newest first, optionally
// filtered by status ("" or "all" disables the filter). Use
// CountContactMessages for pagination metadata.
func ListContactMessages(ctx context.Context, db *gorm.DB, status string, offset, limit int) ([]domain.ContactMessage, error) {
	q := db.WithContext(ctx).Order("created_at desc")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	var out []domain.ContactMessage
	err := q.Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// CountContactMessages returns the number of messages matching status
// ("" or "all" counts everything).
func CountContactMessages(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.ContactMessage{})
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}
