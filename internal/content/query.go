// Filtering and pagination over post collections.
//
// Filter never re-sorts: output preserves whatever order the input had,
// canonically newest-first from the repository. Pagination reports
// TotalPages == 0 for an empty collection, and a page past the end yields
// empty Items rather than an error.
package content

import (
	"strings"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// Filters are the optional predicates applied by Filter. Empty fields are
// no-ops; provided fields are ANDed together.
type Filters struct {
	// Category is a case-insensitive exact match against Post.Category.
	Category string
	// Tag is a case-insensitive exact match against any element of Post.Tags.
	Tag string
	// Search is a case-insensitive substring tested against title,
	// description, every tag, and content; a hit in any field qualifies.
	Search string
}

// Page is one page of results plus pagination metadata.
type Page struct {
	Items      []domain.Post `json:"items"`
	TotalItems int           `json:"total_items"`
	TotalPages int           `json:"total_pages"`
	Page       int           `json:"page"`
}

// Filter returns the posts matching every provided predicate, preserving
// input order.
func Filter(posts []domain.Post, f Filters) []domain.Post {
	category := strings.ToLower(strings.TrimSpace(f.Category))
	tag := strings.ToLower(strings.TrimSpace(f.Tag))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paginate slices posts into the requested page. page values below 1 and
// non-positive pageSize values are coerced to sane defaults. Requesting a
// page beyond the last yields empty Items.
func Paginate(posts []domain.Post, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(posts)
	totalPages := (total + pageSize - 1) / pageSize // 0 when total == 0

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]domain.Post, end-start)
	copy(items, posts[start:end])

	return Page{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
	}
}

// hasTag reports whether p carries tag (already lowercased by the caller).
func hasTag(p domain.Post, tag string) bool {
	for _, t := range p.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

// matchesSearch reports whether term (already lowercased) appears in any of
// the searched fields.
func matchesSearch(p domain.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Content), term)
}
