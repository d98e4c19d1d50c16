package content

import (
	"testing"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

func TestScore_Weights(t *testing.T) {
	ref := domain.Post{Slug: "ref", Category: "Web", Tags: []string{"react", "ts"}}

	cases := []struct {
		name      string
		candidate domain.Post
		want      int
	}{
		{"no overlap", domain.Post{Slug: "x", Category: "3D", Tags: []string{"three"}}, 0},
		{"category only", domain.Post{Slug: "x", Category: "Web"}, 3},
		{"one shared tag", domain.Post{Slug: "x", Category: "3D", Tags: []string{"react"}}, 2},
		{"two shared tags", domain.Post{Slug: "x", Category: "3D", Tags: []string{"react", "ts"}}, 4},
		{"featured only", domain.Post{Slug: "x", Category: "3D", Featured: true}, 1},
		{"everything", domain.Post{Slug: "x", Category: "Web", Tags: []string{"react", "ts"}, Featured: true}, 8},
	}
	for _, tc := range cases {
		if got := Score(tc.candidate, ref); got != tc.want {
			t.Errorf("%s: Score = %d; want %d", tc.name, got, tc.want)
		}
	}
}

func TestRelatedPosts_ScenarioFromListing(t *testing.T) {
	posts := []domain.Post{
		{Slug: "a", Category: "Web", Tags: []string{"react", "ts"}, Featured: true},
		{Slug: "b", Category: "Web", Tags: []string{"react"}},
		{Slug: "c", Category: "3D", Tags: []string{"three"}},
	}
	ref := posts[0]

	got := RelatedPosts(ref, posts, 2)
	// "b" scores 3+2=5; "c" scores 0 and is excluded entirely.
	if len(got) != 1 || got[0].Slug != "b" {
		t.Fatalf("RelatedPosts = %v; want exactly [b]", slugs(got))
	}
}

func TestRelatedPosts_ExcludesSelfAndDrafts(t *testing.T) {
	ref := domain.Post{Slug: "ref", Category: "Web", Tags: []string{"go"}}
	posts := []domain.Post{
		ref,
		{Slug: "draft", Category: "Web", Tags: []string{"go"}, Draft: true},
		{Slug: "ok", Category: "Web"},
	}

	got := RelatedPosts(ref, posts, 10)
	if !equalStrings(slugs(got), []string{"ok"}) {
		t.Fatalf("RelatedPosts = %v; want [ok]", slugs(got))
	}
}

func TestRelatedPosts_SortedNonIncreasingAndCapped(t *testing.T) {
	ref := domain.Post{Slug: "ref", Category: "Web", Tags: []string{"a", "b", "c"}}
	posts := []domain.Post{
		{Slug: "low", Category: "Web"},                                     // 3
		{Slug: "high", Category: "Web", Tags: []string{"a", "b", "c"}},     // 9
		{Slug: "mid", Category: "Web", Tags: []string{"a"}},                // 5
		{Slug: "midtoo", Category: "3D", Tags: []string{"a", "b"}},         // 4
		{Slug: "feat", Category: "3D", Tags: []string{"a"}, Featured: true}, // 3
	}

	got := RelatedPosts(ref, posts, 3)
	if !equalStrings(slugs(got), []string{"high", "mid", "midtoo"}) {
		t.Fatalf("RelatedPosts = %v", slugs(got))
	}

	prev := Score(got[0], ref)
	for _, p := range got[1:] {
		s := Score(p, ref)
		if s > prev {
			t.Fatalf("scores not non-increasing")
		}
		prev = s
	}
}

func TestRelatedPosts_StableForEqualScores(t *testing.T) {
	ref := domain.Post{Slug: "ref", Category: "Web"}
	posts := []domain.Post{
		{Slug: "first", Category: "Web"},
		{Slug: "second", Category: "Web"},
		{Slug: "third", Category: "Web"},
	}

	got := RelatedPosts(ref, posts, 3)
	if !equalStrings(slugs(got), []string{"first", "second", "third"}) {
		t.Fatalf("equal-score order not preserved: %v", slugs(got))
	}
}

func TestRelatedPosts_EmptyWhenNothingScores(t *testing.T) {
	ref := domain.Post{Slug: "ref", Category: "Web", Tags: []string{"go"}}
	posts := []domain.Post{
		{Slug: "other", Category: "3D", Tags: []string{"three"}},
	}
	if got := RelatedPosts(ref, posts, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", slugs(got))
	}
	if got := RelatedPosts(ref, posts, 0); got != nil {
		t.Fatalf("limit 0 must return nil")
	}
}
