// Blog HTTP handlers.
//
// This file exposes REST endpoints for the post catalog:
//   - GET /blog          (list, filtered + paginated)
//   - GET /blog/stats    (catalog statistics)
//   - GET /blog/{slug}   (detail, optional related posts)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkarali/go-blog-backend/internal/content"
	"github.com/pkarali/go-blog-backend/internal/domain"
	"github.com/pkarali/go-blog-backend/internal/services"
	"github.com/pkarali/go-blog-backend/internal/utils"
)

//
// Service contracts
//

// PostService defines catalog read operations consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use; the catalog is immutable
// after load, so these calls never block on I/O.
type PostService interface {
	// List returns one page of published posts matching the filters.
	List(f content.Filters, page, pageSize int) content.Page
	// Get returns the published post for slug, or services.ErrPostNotFound.
	Get(slug string) (domain.Post, error)
	// Related returns up to limit posts relevant to the post at slug.
	Related(slug string, limit int) ([]domain.Post, error)
	// Stats computes catalog statistics over the published corpus.
	Stats() services.CatalogStats
	// Categories lists distinct categories in first-seen order.
	Categories() []string
	// Tags lists distinct tags in first-seen order.
	Tags() []string
}

// FeedSource provides the post corpus to the syndication endpoints.
// *content.Repository satisfies it.
type FeedSource interface {
	All() []domain.Post
}

// ContactService defines the contact gateway operation consumed by HTTP
// handlers. Implementations must honor ctx for cancellation and timeouts.
type ContactService interface {
	Submit(ctx context.Context, in services.ContactInput) (*domain.ContactMessage, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for posts, feeds, and the contact form.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	postSvc    PostService
	contactSvc ContactService
	inboxSvc   InboxService
	feedSrc    FeedSource
	site       Site
}

// Site carries the site identity the feed builders embed in documents.
// It mirrors feed.Site field for field so the router can convert directly.
type Site struct {
	Title       string
	Description string
	BaseURL     string
	Language    string
	AuthorName  string
	AuthorEmail string
}

// New constructs a Handlers instance bound to the given services.
func New(postSvc PostService, contactSvc ContactService, inboxSvc InboxService, feedSrc FeedSource, site Site) *Handlers {
	return &Handlers{postSvc: postSvc, contactSvc: contactSvc, inboxSvc: inboxSvc, feedSrc: feedSrc, site: site}
}

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// ListPostsResponse wraps a page of posts and pagination information.
type ListPostsResponse struct {
	Posts      []domain.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
	Categories []string      `json:"categories"`
	Tags       []string      `json:"tags"`
}

// PostResponse wraps a single post and, when requested, its related posts.
type PostResponse struct {
	Post    domain.Post   `json:"post"`
	Related []domain.Post `json:"related,omitempty"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 10
		maxPageSize     = 50
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// ListPosts godoc
// @ID          listPosts
// @Summary     List blog posts (filtered, paginated)
// @Description Returns a page of published posts. Category and tag filters are case-insensitive exact matches; search matches title, description, tags, and body.
// @Tags        Blog
// @Produce     json
//
// @Param       category   query  string  false "Filter by category"   example(go)
// @Param       tag        query  string  false "Filter by tag"        example(generics)
// @Param       search     query  string  false "Full-text search term" example(sqlite)
// @Param       page       query  int     false "Page number"           minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"        minimum(1) maximum(50) default(10)
//
// @Success     200  {object} handlers.ListPostsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /blog [get]
func (h *Handlers) ListPosts(c *gin.Context) {
	page, pageSize := clampPagination(c)
	filters := content.Filters{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
	}

	result := h.postSvc.List(filters, page, pageSize)

	resp := ListPostsResponse{
		Posts: result.Items,
		Pagination: Pagination{
			Page:       result.Page,
			PageSize:   pageSize,
			Total:      result.TotalItems,
			TotalPages: result.TotalPages,
			HasNext:    result.Page < result.TotalPages,
		},
		Categories: h.postSvc.Categories(),
		Tags:       h.postSvc.Tags(),
	}
	ok(c, http.StatusOK, resp)
}

// GetPost godoc
// @ID          getPost
// @Summary     Get a blog post by slug
// @Description Returns one published post. Pass related=n to include up to n related posts, ranked by shared category, shared tags, and featured status.
// @Tags        Blog
// @Produce     json
//
// @Param       slug     path   string  true  "Post slug"                        example(go-generics)
// @Param       related  query  int     false "Number of related posts to include" minimum(0) maximum(10)
//
// @Success     200  {object} handlers.PostResponse
// @Failure     404  {object} handlers.ErrorResponse "Post not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /blog/{slug} [get]
func (h *Handlers) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.postSvc.Get(slug)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	resp := PostResponse{Post: post}
	if n := utils.AtoiDefault(c.Query("related"), 0); n > 0 {
		related, err := h.postSvc.Related(slug, n)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
			return
		}
		resp.Related = related
	}
	ok(c, http.StatusOK, resp)
}

// BlogStats godoc
// @ID          blogStats
// @Summary     Catalog statistics
// @Description Returns per-category and per-tag counts plus aggregate reading-time figures for the published corpus.
// @Tags        Blog
// @Produce     json
//
// @Success     200  {object} services.CatalogStats
// @Router      /blog/stats [get]
func (h *Handlers) BlogStats(c *gin.Context) {
	ok(c, http.StatusOK, h.postSvc.Stats())
}
