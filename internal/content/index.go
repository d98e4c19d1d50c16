// Derived, in-memory views over a post collection.
//
// Every function here is pure over its input slice: no I/O, no mutation of
// the input, deterministic output order. They are cheap enough to call per
// request, and safe to memoize per process lifetime because the underlying
// repository is immutable.
package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// Stats aggregates the published subset of a post collection.
type Stats struct {
	Count              int `json:"count"`
	TotalReadingTime   int `json:"total_reading_time"`   // minutes
	AverageReadingTime int `json:"average_reading_time"` // minutes, 0 when Count is 0
}

// Published returns the posts with Draft == false, preserving input order.
func Published(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Draft {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the published posts flagged as featured, preserving
// input order.
func Featured(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Draft && p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category values in first-seen order.
func Categories(posts []domain.Post) []string {
	seen := make(map[string]struct{}, len(posts))
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Tags returns the distinct tags from the union of all posts' tag lists,
// in first-seen order.
func Tags(posts []domain.Post) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Statistics aggregates reading-time figures over the published subset of
// posts. AverageReadingTime is 0 when there are no published posts.
func Statistics(posts []domain.Post) Stats {
	var s Stats
	for _, p := range posts {
		if p.Draft {
			continue
		}
		s.Count++
		s.TotalReadingTime += p.ReadingTime
	}
	if s.Count > 0 {
		s.AverageReadingTime = s.TotalReadingTime / s.Count
	}
	return s
}

// titleCaser renders label display names; English casing rules are fine for
// slug-style labels regardless of site language.
var titleCaser = cases.Title(language.English)

// DisplayLabel turns a slug-style category or tag ("web-dev") into a
// human-readable label ("Web Dev").
func DisplayLabel(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", " ")
	if s == "" {
		return s
	}
	return titleCaser.String(s)
}
