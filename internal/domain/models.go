// Package domain defines the core data types of the blog backend: posts
// loaded from the Markdown content source, and contact submissions persisted
// with GORM. Posts are read-only value types built once at load time; only
// contact messages are database-backed.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Author is the embedded author record carried by every post. It is owned by
// the post for rendering purposes even though several posts usually share the
// same author.
type Author struct {
	Name   string      `json:"name"   yaml:"name"`
	Bio    string      `json:"bio"    yaml:"bio"`
	Avatar string      `json:"avatar,omitempty" yaml:"avatar"`
	Social SocialLinks `json:"social,omitempty" yaml:"social"`
}

// SocialLinks groups the optional social profile URLs of an author.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"  yaml:"twitter"`
	GitHub   string `json:"github,omitempty"   yaml:"github"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin"`
}

// CoverImage is the optional hero image of a post.
type CoverImage struct {
	Src    string `json:"src"              yaml:"src"`
	Alt    string `json:"alt"              yaml:"alt"`
	Width  int    `json:"width,omitempty"  yaml:"width"`
	Height int    `json:"height,omitempty" yaml:"height"`
}

// SEO carries per-post metadata for search engines and social cards.
type SEO struct {
	Title        string   `json:"title,omitempty"        yaml:"title"`
	Description  string   `json:"description,omitempty"  yaml:"description"`
	Keywords     []string `json:"keywords,omitempty"     yaml:"keywords"`
	CanonicalURL string   `json:"canonicalUrl,omitempty" yaml:"canonicalUrl"`
}

// Post is one blog article. The Slug is the unique, stable identifier and
// URL key; PublishedAt descending is the canonical ordering all views build
// on. ReadingTime is derived from the word count at ingestion time and is
// never recomputed downstream.
//
// Posts are immutable once loaded: there is no runtime creation, editing, or
// deletion. Re-reading the content source is the only way to observe change.
type Post struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content,omitempty"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Author      Author      `json:"author"`
	PublishedAt time.Time   `json:"published_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	ReadingTime int         `json:"reading_time"` // minutes
	Featured    bool        `json:"featured"`
	Draft       bool        `json:"draft"`
	CoverImage  *CoverImage `json:"cover_image,omitempty"`
	SEO         SEO         `json:"seo"`
}

// ContactMessage is an accepted contact-form submission, kept as an audit
// trail after it has been dispatched to the mailer. Rejected submissions are
// never persisted.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Name/Email/Subject/Message: sanitized form fields.
//   - Company/ProjectType/Budget/Timeline: optional classification fields.
//   - Attachments: number of attachments that accompanied the submission.
//   - ClientIP: submitter address used for rate limiting.
//   - Status: "unread" or "read" (inbox workflow).
//   - Dispatched: whether the mailer acknowledged the submission.
type ContactMessage struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	Name        string         `json:"name"         gorm:"type:varchar(100);not null"`
	Email       string         `json:"email"        gorm:"type:varchar(254);not null;index"`
	Subject     string         `json:"subject"      gorm:"type:varchar(200);not null"`
	Message     string         `json:"message"      gorm:"type:text;not null"`
	Company     string         `json:"company,omitempty"      gorm:"type:varchar(100)"`
	ProjectType string         `json:"project_type,omitempty" gorm:"type:varchar(32)"`
	Budget      string         `json:"budget,omitempty"       gorm:"type:varchar(32)"`
	Timeline    string         `json:"timeline,omitempty"     gorm:"type:varchar(32)"`
	Attachments int            `json:"attachments"  gorm:"not null;default:0"`
	ClientIP    string         `json:"-"            gorm:"type:varchar(64);index"`
	Status      string         `json:"status"       gorm:"type:varchar(16);not null;default:'unread';check:status IN ('unread','read')"`
	Dispatched  bool           `json:"dispatched"   gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for ContactMessage.
func (ContactMessage) TableName() string { return "contact_messages" }

// RateLimitRecord is the per-client fixed-window counter used by the contact
// gateway. Records live in an injected store (process memory by default) and
// are never persisted; a restart clears them.
type RateLimitRecord struct {
	// Count is the number of requests seen in the current window.
	Count int
	// ResetTime is when the current window expires.
	ResetTime time.Time
}
