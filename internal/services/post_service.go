// Package services – PostService
//
// This file implements the PostService, the read-side facade over the
// Markdown content corpus. It composes the content package's repository,
// filtering, pagination, and relevance scoring into the operations the HTTP
// layer exposes: paginated listing, detail lookup, related posts, and
// catalog statistics.
//
// The public surface only ever serves published posts. Drafts stay loadable
// for authoring previews but are filtered out of every operation here.
//
// Service-level errors (e.g., ErrPostNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.

package services

import (
	"github.com/pkarali/go-blog-backend/internal/content"
	"github.com/pkarali/go-blog-backend/internal/domain"
	"github.com/pkarali/go-blog-backend/internal/feed"
)

// PostCatalog defines the content-repository contract required by
// PostService. *content.Repository satisfies it.
type PostCatalog interface {
	// All returns every loaded post, drafts included, newest first.
	All() []domain.Post

	// BySlug fetches a post by its slug.
	BySlug(slug string) (domain.Post, bool)
}

// PostService provides read-only blog operations over an immutable,
// load-once content corpus. It is safe for concurrent use.
type PostService struct {
	// Catalog is the loaded content corpus.
	Catalog PostCatalog

	// DefaultPageSize applies when a listing request omits page_size.
	DefaultPageSize int
	// MaxPageSize caps page_size to keep responses bounded.
	MaxPageSize int
	// MaxRelated caps the number of related posts a detail request may ask for.
	MaxRelated int
}

// NewPostService constructs a PostService with sane paging defaults.
func NewPostService(c PostCatalog) *PostService {
	return &PostService{
		Catalog:         c,
		DefaultPageSize: 10,
		MaxPageSize:     50,
		MaxRelated:      10,
	}
}

// List returns one page of published posts matching the given filters.
// Page and pageSize are coerced into valid ranges; an out-of-range page
// yields an empty page, never an error.
func (s *PostService) List(f content.Filters, page, pageSize int) content.Page {
	if pageSize <= 0 {
		pageSize = s.DefaultPageSize
	}
	if s.MaxPageSize > 0 && pageSize > s.MaxPageSize {
		pageSize = s.MaxPageSize
	}
	posts := content.Filter(content.Published(s.Catalog.All()), f)
	return content.Paginate(posts, page, pageSize)
}

// Get returns the published post for slug, or ErrPostNotFound. Drafts are
// not visible here even when the slug matches one.
func (s *PostService) Get(slug string) (domain.Post, error) {
	p, ok := s.Catalog.BySlug(slug)
	if !ok || p.Draft {
		return domain.Post{}, ErrPostNotFound
	}
	return p, nil
}

// Related returns up to limit published posts most relevant to the post at
// slug, best match first. The reference post must itself be published.
func (s *PostService) Related(slug string, limit int) ([]domain.Post, error) {
	ref, err := s.Get(slug)
	if err != nil {
		return nil, err
	}
	if s.MaxRelated > 0 && limit > s.MaxRelated {
		limit = s.MaxRelated
	}
	return content.RelatedPosts(ref, s.Catalog.All(), limit), nil
}

// Categories returns the distinct categories of the published corpus in
// first-seen order.
func (s *PostService) Categories() []string {
	return content.Categories(content.Published(s.Catalog.All()))
}

// Tags returns the distinct tags of the published corpus in first-seen order.
func (s *PostService) Tags() []string {
	return content.Tags(content.Published(s.Catalog.All()))
}

// CatalogStats bundles the two statistics views the stats endpoint serves:
// per-name breakdowns and aggregate reading-time figures.
type CatalogStats struct {
	Feed    feed.Statistics `json:"feed"`
	Content content.Stats   `json:"content"`
}

// Stats computes catalog statistics over the published corpus. Category and
// tag names are rendered as display labels ("web-dev" → "Web Dev"); the stats
// view is presentational, the filterable values stay in the listing response.
func (s *PostService) Stats() CatalogStats {
	published := content.Published(s.Catalog.All())
	fs := feed.ComputeStatistics(published)
	for i := range fs.CategoryStats {
		fs.CategoryStats[i].Name = content.DisplayLabel(fs.CategoryStats[i].Name)
	}
	for i := range fs.TagStats {
		fs.TagStats[i].Name = content.DisplayLabel(fs.TagStats[i].Name)
	}
	return CatalogStats{
		Feed:    fs,
		Content: content.Statistics(published),
	}
}
