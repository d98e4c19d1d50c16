// Package services – ContactService
//
// This file implements the ContactService, the gateway for contact-form
// submissions. Each submission runs through a short-circuiting pipeline:
// per-client rate limiting, required-field presence, input sanitization,
// schema validation, spam heuristics, and attachment constraints. Accepted
// submissions are persisted as an audit trail and handed to an injected
// Mailer under a dispatch timeout.
//
// The service also exposes the inbox read side over the stored submissions:
// paginated listing with a status filter, single lookup, and the
// unread-to-read transition.
//
// Every rejection maps to one sentinel error (ErrRateLimited, ErrValidation,
// ErrSpamDetected, ErrTooManyFiles, ErrFileTooLarge, ErrUnsupportedFileType,
// ErrDispatchFailed) so handlers can translate outcomes into stable
// machine-readable codes.

package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/pkarali/go-blog-backend/internal/domain"
	"github.com/pkarali/go-blog-backend/internal/ratelimit"
	"github.com/pkarali/go-blog-backend/internal/repo"
)

// Mailer is the outbound email capability the gateway calls after a
// submission passes validation. Implementations must honor ctx cancellation.
type Mailer interface {
	Send(ctx context.Context, m *domain.ContactMessage) error
}

// Attachment describes one uploaded file part. Only metadata is validated;
// file content is never buffered by the service.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
}

// ContactInput is a raw contact-form submission before sanitization.
type ContactInput struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	ClientIP    string
	Attachments []Attachment
}

// ContactService validates, persists, and dispatches contact submissions.
type ContactService struct {
	// DB is the GORM handle used for the audit trail.
	DB *gorm.DB
	// Mailer delivers accepted submissions.
	Mailer Mailer
	// Limiter is the per-client fixed-window rate limiter.
	Limiter *ratelimit.Limiter

	// MailTimeout bounds a single dispatch attempt.
	MailTimeout time.Duration
	// MaxAttachments caps the number of file parts per submission.
	MaxAttachments int
	// MaxFileBytes caps the size of a single attachment.
	MaxFileBytes int64
}

// NewContactService constructs a ContactService with production limits:
// 10s dispatch timeout, 5 attachments, 10 MB per file.
func NewContactService(db *gorm.DB, m Mailer, l *ratelimit.Limiter) *ContactService {
	return &ContactService{
		DB:             db,
		Mailer:         m,
		Limiter:        l,
		MailTimeout:    10 * time.Second,
		MaxAttachments: 5,
		MaxFileBytes:   10 << 20,
	}
}

// Optional classification enums. Values outside these sets fail validation.
var (
	projectTypes = map[string]bool{
		"website": true, "webapp": true, "mobile": true,
		"consulting": true, "other": true,
	}
	budgets = map[string]bool{
		"under-5k": true, "5k-10k": true, "10k-25k": true,
		"25k-plus": true, "unsure": true,
	}
	timelines = map[string]bool{
		"asap": true, "1-3-months": true, "3-6-months": true,
		"flexible": true,
	}
)

// allowedMIMETypes is the attachment allowlist.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"image/webp":         true,
	"text/plain":         true,
	"application/zip":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// spamKeywords are matched case-insensitively against the combined
// name+subject+message text.
var spamKeywords = []string{
	"viagra",
	"casino",
	"lottery",
	"free money",
	"click here",
	"work from home",
	"guaranteed income",
	"crypto giveaway",
}

var (
	// Paired dangerous elements with their content, then any stray tags.
	pairedTagRe = regexp.MustCompile(`(?is)<(script|iframe|object|embed)\b[^>]*>.*?</(script|iframe|object|embed)\s*>`)
	strayTagRe  = regexp.MustCompile(`(?is)</?(script|iframe|object|embed)\b[^>]*>`)
	jsURIRe     = regexp.MustCompile(`(?i)javascript\s*:`)
	// Inline handlers like onclick="..." / onmouseover='...' / onload=foo().
	onAttrRe = regexp.MustCompile(`(?i)\bon[a-z]+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)

	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRe   = regexp.MustCompile(`(?i)https?://`)
)

// Submit runs the full gateway pipeline for one submission. On success the
// returned message is the persisted, dispatched audit row. On failure the
// returned error wraps exactly one of the package sentinels.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	if s.Limiter != nil {
		if ok, reset := s.Limiter.Allow(in.ClientIP); !ok {
			return nil, fmt.Errorf("%w: retry after %s", ErrRateLimited, reset.UTC().Format(time.RFC3339))
		}
	}

	if err := requireFields(in); err != nil {
		return nil, err
	}

	in.Name = Sanitize(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = Sanitize(in.Subject)
	in.Message = Sanitize(in.Message)
	in.Company = Sanitize(in.Company)

	if err := validateSchema(in); err != nil {
		return nil, err
	}
	if err := checkSpam(in); err != nil {
		return nil, err
	}
	if err := s.validateAttachments(in.Attachments); err != nil {
		return nil, err
	}

	m, err := repo.CreateContactMessage(ctx, s.DB, &domain.ContactMessage{
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		Company:     in.Company,
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Attachments: len(in.Attachments),
		ClientIP:    in.ClientIP,
	})
	if err != nil {
		return nil, fmt.Errorf("persist contact message: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.MailTimeout)
	defer cancel()
	if err := s.Mailer.Send(sendCtx, m); err != nil {
		// The audit row stays with Dispatched=false for later retry.
		return nil, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}
	if err := repo.MarkDispatched(ctx, s.DB, m.ID); err != nil {
		return nil, fmt.Errorf("mark dispatched: %w", err)
	}
	m.Dispatched = true
	return m, nil
}

// Messages returns one page of stored submissions, newest first, optionally
// filtered by status ("unread" or "read"; "" and "all" disable the filter).
// The second return value is the total count matching the filter.
func (s *ContactService) Messages(ctx context.Context, status string, page, pageSize int) ([]domain.ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	total, err := repo.CountContactMessages(ctx, s.DB, status)
	if err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}
	items, err := repo.ListContactMessages(ctx, s.DB, status, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}
	return items, total, nil
}

// Message returns one stored submission by ID, or ErrMessageNotFound.
func (s *ContactService) Message(ctx context.Context, id string) (*domain.ContactMessage, error) {
	m, err := repo.GetContactMessage(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	return m, nil
}

// MarkRead transitions a stored submission to read and returns the updated
// row. Marking an already read message succeeds without change.
func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error) {
	if err := repo.MarkRead(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return s.Message(ctx, id)
}

// Sanitize strips dangerous markup from a free-text field: script, iframe,
// object, and embed elements (with their content when paired), javascript:
// URIs, and inline on*= event handlers. The result is whitespace-trimmed.
func Sanitize(v string) string {
	v = pairedTagRe.ReplaceAllString(v, "")
	v = strayTagRe.ReplaceAllString(v, "")
	v = jsURIRe.ReplaceAllString(v, "")
	v = onAttrRe.ReplaceAllString(v, "")
	return strings.TrimSpace(v)
}

func requireFields(in ContactInput) error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(in.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func validateSchema(in ContactInput) error {
	if utf8.RuneCountInString(in.Name) > 100 {
		return fmt.Errorf("%w: name exceeds 100 characters", ErrValidation)
	}
	if !emailRe.MatchString(in.Email) {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if utf8.RuneCountInString(in.Subject) > 200 {
		return fmt.Errorf("%w: subject exceeds 200 characters", ErrValidation)
	}
	if n := utf8.RuneCountInString(in.Message); n < 10 {
		return fmt.Errorf("%w: message must be at least 10 characters", ErrValidation)
	} else if n > 5000 {
		return fmt.Errorf("%w: message exceeds 5000 characters", ErrValidation)
	}
	if in.ProjectType != "" && !projectTypes[in.ProjectType] {
		return fmt.Errorf("%w: unknown project type %q", ErrValidation, in.ProjectType)
	}
	if in.Budget != "" && !budgets[in.Budget] {
		return fmt.Errorf("%w: unknown budget range %q", ErrValidation, in.Budget)
	}
	if in.Timeline != "" && !timelines[in.Timeline] {
		return fmt.Errorf("%w: unknown timeline %q", ErrValidation, in.Timeline)
	}
	return nil
}

func checkSpam(in ContactInput) error {
	combined := strings.ToLower(in.Name + " " + in.Subject + " " + in.Message)
	for _, kw := range spamKeywords {
		if strings.Contains(combined, kw) {
			return fmt.Errorf("%w: keyword match", ErrSpamDetected)
		}
	}
	if len(urlRe.FindAllStringIndex(combined, -1)) > 3 {
		return fmt.Errorf("%w: too many links", ErrSpamDetected)
	}
	if hasCharRun(in.Name+" "+in.Subject+" "+in.Message, 10) {
		return fmt.Errorf("%w: repeated character run", ErrSpamDetected)
	}
	if isShouting(in.Message) {
		return fmt.Errorf("%w: all-caps message", ErrSpamDetected)
	}
	return nil
}

// hasCharRun reports whether s contains n or more identical consecutive runes.
func hasCharRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev, run = r, 1
		}
	}
	return false
}

// isShouting reports whether the message is long (>50 chars) and entirely
// uppercase. Letterless text never counts as shouting.
func isShouting(msg string) bool {
	if utf8.RuneCountInString(msg) <= 50 {
		return false
	}
	hasLetter := false
	for _, r := range msg {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func (s *ContactService) validateAttachments(files []Attachment) error {
	if len(files) > s.MaxAttachments {
		return fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(files), s.MaxAttachments)
	}
	for _, f := range files {
		if f.Size > s.MaxFileBytes {
			return fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, f.Filename, f.Size, s.MaxFileBytes)
		}
		// Drop any media-type parameters (e.g. "text/plain; charset=utf-8").
		ct := strings.ToLower(strings.TrimSpace(f.ContentType))
		if i := strings.IndexByte(ct, ';'); i >= 0 {
			ct = strings.TrimSpace(ct[:i])
		}
		if !allowedMIMETypes[ct] {
			return fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, f.Filename, f.ContentType)
		}
	}
	return nil
}
