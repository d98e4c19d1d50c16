package content

import (
	"testing"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

func fixturePosts() []domain.Post {
	return []domain.Post{
		{Slug: "a", Category: "Web", Tags: []string{"react", "ts"}, Featured: true, ReadingTime: 4},
		{Slug: "b", Category: "Web", Tags: []string{"react"}, ReadingTime: 6},
		{Slug: "c", Category: "3D", Tags: []string{"three"}, ReadingTime: 2},
		{Slug: "d", Category: "Web", Tags: []string{"go"}, Draft: true, Featured: true, ReadingTime: 99},
	}
}

func slugs(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPublished_ExcludesDrafts(t *testing.T) {
	got := Published(fixturePosts())
	if !equalStrings(slugs(got), []string{"a", "b", "c"}) {
		t.Fatalf("Published = %v", slugs(got))
	}
	for _, p := range got {
		if p.Draft {
			t.Fatalf("draft %q leaked into published view", p.Slug)
		}
	}
}

func TestFeatured_RequiresPublishedAndFlag(t *testing.T) {
	got := Featured(fixturePosts())
	// "d" is featured but draft; "a" is the only published featured post.
	if !equalStrings(slugs(got), []string{"a"}) {
		t.Fatalf("Featured = %v; want [a]", slugs(got))
	}
}

func TestCategoriesAndTags_DistinctFirstSeen(t *testing.T) {
	posts := fixturePosts()
	if got := Categories(posts); !equalStrings(got, []string{"Web", "3D"}) {
		t.Fatalf("Categories = %v", got)
	}
	if got := Tags(posts); !equalStrings(got, []string{"react", "ts", "three", "go"}) {
		t.Fatalf("Tags = %v", got)
	}
}

func TestStatistics(t *testing.T) {
	s := Statistics(fixturePosts())
	if s.Count != 3 {
		t.Fatalf("Count = %d; want 3 (draft excluded)", s.Count)
	}
	if s.TotalReadingTime != 12 {
		t.Fatalf("TotalReadingTime = %d; want 12", s.TotalReadingTime)
	}
	if s.AverageReadingTime != 4 {
		t.Fatalf("AverageReadingTime = %d; want 4", s.AverageReadingTime)
	}
}

func TestStatistics_EmptySet(t *testing.T) {
	s := Statistics(nil)
	if s.Count != 0 || s.TotalReadingTime != 0 || s.AverageReadingTime != 0 {
		t.Fatalf("empty stats = %+v; want zeros", s)
	}

	// Only drafts behaves like empty.
	s = Statistics([]domain.Post{{Slug: "d", Draft: true, ReadingTime: 9}})
	if s.AverageReadingTime != 0 {
		t.Fatalf("AverageReadingTime over drafts-only = %d; want 0", s.AverageReadingTime)
	}
}

func TestDisplayLabel(t *testing.T) {
	cases := map[string]string{
		"web-dev":  "Web Dev",
		"go":       "Go",
		"  three ": "Three",
		"":         "",
	}
	for in, want := range cases {
		if got := DisplayLabel(in); got != want {
			t.Errorf("DisplayLabel(%q) = %q; want %q", in, got, want)
		}
	}
}
