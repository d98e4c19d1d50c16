// Pairwise relatedness scoring between posts.
//
// The score is a small additive heuristic over shared classification:
// matching category weighs most, then each shared tag, then a bonus for
// featured candidates. Ranking uses a stable sort so equal-score candidates
// keep their input (newest-first) order and output stays deterministic.
package content

import (
	"sort"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// Scoring weights.
const (
	scoreSameCategory = 3
	scorePerSharedTag = 2
	scoreFeatured     = 1
)

// Score computes the relatedness of candidate with respect to reference:
// +3 for an equal category, +2 for every tag present in both posts
// (uncapped), and +1 when the candidate is featured.
func Score(candidate, reference domain.Post) int {
	s := 0
	if candidate.Category == reference.Category {
		s += scoreSameCategory
	}
	refTags := make(map[string]struct{}, len(reference.Tags))
	for _, t := range reference.Tags {
		refTags[t] = struct{}{}
	}
	for _, t := range candidate.Tags {
		if _, ok := refTags[t]; ok {
			s += scorePerSharedTag
		}
	}
	if candidate.Featured {
		s += scoreFeatured
	}
	return s
}

// RelatedPosts ranks the posts most related to reference and returns at most
// limit of them. The reference itself and draft posts are excluded, as is
// any candidate with a non-positive score. An empty result is a valid
// outcome, not an error.
func RelatedPosts(reference domain.Post, posts []domain.Post, limit int) []domain.Post {
	if limit <= 0 {
		return nil
	}

	type scored struct {
		post  domain.Post
		score int
	}
	candidates := make([]scored, 0, len(posts))
	for _, p := range posts {
		if p.Slug == reference.Slug || p.Draft {
			continue
		}
		if s := Score(p, reference); s > 0 {
			candidates = append(candidates, scored{post: p, score: s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]domain.Post, limit)
	for i := 0; i < limit; i++ {
		out[i] = candidates[i].post
	}
	return out
}
