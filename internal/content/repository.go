// Package content implements the blog content pipeline: a Markdown-backed
// post repository, derived in-memory views, pairwise relatedness scoring,
// and filtering/pagination over post collections.
//
// Design goals:
//   - Immutable, read-only repository after Load (safe for concurrent use)
//   - Per-file failure isolation: one broken post never aborts the corpus
//   - Deterministic ordering everywhere (newest-first canonical order,
//     stable sorts for ties)
//   - O(1) slug lookups via an internal map
//
// The rest of the package operates on plain []domain.Post slices so views,
// scoring, and queries stay pure and trivially testable.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// wordsPerMinute is the reading-speed assumption used to derive
// Post.ReadingTime at ingestion.
const wordsPerMinute = 200

// frontMatter is the YAML metadata block at the top of a post file. Field
// names follow the source content convention (camelCase keys).
type frontMatter struct {
	Slug        string             `yaml:"slug"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Category    string             `yaml:"category"`
	Tags        []string           `yaml:"tags"`
	Author      domain.Author      `yaml:"author"`
	PublishedAt time.Time          `yaml:"publishedAt"`
	UpdatedAt   time.Time          `yaml:"updatedAt"`
	Featured    bool               `yaml:"featured"`
	Draft       bool               `yaml:"draft"`
	CoverImage  *domain.CoverImage `yaml:"coverImage"`
	SEO         domain.SEO         `yaml:"seo"`
}

// Repository holds the loaded post corpus. It is immutable after Load and
// safe for concurrent readers without coordination.
type Repository struct {
	posts  []domain.Post // canonical order: PublishedAt descending
	bySlug map[string]int
}

// Load reads every *.md file under dir and builds a Repository.
//
// Parse failures are isolated per file: a broken post (unreadable file, bad
// front matter, missing required field, duplicate slug) is logged through lg
// and skipped. Load only returns an error when the directory itself cannot
// be read.
func Load(dir string, lg zerolog.Logger) (*Repository, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	repo := &Repository{bySlug: make(map[string]int)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		post, err := parseFile(path)
		if err != nil {
			lg.Warn().Str("file", e.Name()).Err(err).Msg("skipping post")
			continue
		}
		if _, dup := repo.bySlug[post.Slug]; dup {
			lg.Warn().Str("file", e.Name()).Str("slug", post.Slug).Msg("skipping post: duplicate slug")
			continue
		}
		repo.bySlug[post.Slug] = -1 // placeholder until sorted
		repo.posts = append(repo.posts, post)
	}

	// Canonical order: newest first. Stable so same-timestamp posts keep
	// directory order.
	sort.SliceStable(repo.posts, func(i, j int) bool {
		return repo.posts[i].PublishedAt.After(repo.posts[j].PublishedAt)
	})
	for i, p := range repo.posts {
		repo.bySlug[p.Slug] = i
	}

	lg.Info().Int("posts", len(repo.posts)).Str("dir", dir).Msg("content loaded")
	return repo, nil
}

// All returns every post, drafts included, in the canonical newest-first
// order. The returned slice is a copy; callers may reorder it freely.
func (r *Repository) All() []domain.Post {
	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

// BySlug returns the post with the given slug. The second return value
// reports whether it exists; a miss is an expected condition, not a fault.
func (r *Repository) BySlug(slug string) (domain.Post, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Post{}, false
	}
	return r.posts[i], true
}

// Len reports the number of loaded posts, drafts included.
func (r *Repository) Len() int { return len(r.posts) }

// parseFile reads one Markdown file and returns the validated post.
func parseFile(path string) (domain.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Post{}, err
	}
	fm, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return domain.Post{}, err
	}

	var meta frontMatter
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return domain.Post{}, fmt.Errorf("front matter: %w", err)
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	post := domain.Post{
		Slug:        slug,
		Title:       strings.TrimSpace(meta.Title),
		Description: strings.TrimSpace(meta.Description),
		Content:     strings.TrimSpace(body),
		Category:    strings.TrimSpace(meta.Category),
		Tags:        cleanTags(meta.Tags),
		Author:      meta.Author,
		PublishedAt: meta.PublishedAt,
		UpdatedAt:   meta.UpdatedAt,
		Featured:    meta.Featured,
		Draft:       meta.Draft,
		CoverImage:  meta.CoverImage,
		SEO:         meta.SEO,
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.PublishedAt
	}
	post.ReadingTime = readingTime(post.Content)

	return post, validate(post)
}

// splitFrontMatter separates the leading "---" delimited YAML block from the
// Markdown body.
func splitFrontMatter(raw string) (fm, body string, err error) {
	const delim = "---"
	s := strings.TrimLeft(raw, "\uFEFF\n\r ")
	if !strings.HasPrefix(s, delim) {
		return "", "", fmt.Errorf("missing front matter delimiter")
	}
	s = s[len(delim):]
	end := strings.Index(s, "\n"+delim)
	if end < 0 {
		return "", "", fmt.Errorf("unterminated front matter")
	}
	fm = s[:end]
	body = s[end+len(delim)+1:]
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return fm, body, nil
}

// validate enforces the required-field and timestamp invariants of a post.
func validate(p domain.Post) error {
	switch {
	case p.Title == "":
		return fmt.Errorf("post %s: missing title", p.Slug)
	case p.Description == "":
		return fmt.Errorf("post %s: missing description", p.Slug)
	case p.Category == "":
		return fmt.Errorf("post %s: missing category", p.Slug)
	case p.PublishedAt.IsZero():
		return fmt.Errorf("post %s: missing publishedAt", p.Slug)
	case p.UpdatedAt.Before(p.PublishedAt):
		return fmt.Errorf("post %s: updatedAt before publishedAt", p.Slug)
	}
	return nil
}

// readingTime derives whole minutes from word count: ceil(words/200), min 1.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	mins := (words + wordsPerMinute - 1) / wordsPerMinute
	if mins < 1 {
		mins = 1
	}
	return mins
}

// cleanTags trims whitespace and drops empty entries, preserving order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
