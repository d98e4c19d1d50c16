package feed

import (
	"sort"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// NameCount is one (label, occurrences) pair in the feed statistics.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics summarizes a feed: totals over the published posts plus
// per-category and per-tag occurrence counts.
type Statistics struct {
	TotalPosts       int         `json:"total_posts"`
	TotalCategories  int         `json:"total_categories"`
	TotalTags        int         `json:"total_tags"`
	TotalReadingTime int         `json:"total_reading_time"`
	CategoryStats    []NameCount `json:"category_stats"`
	TagStats         []NameCount `json:"tag_stats"`
}

// ComputeStatistics aggregates the published subset of posts. CategoryStats
// and TagStats are sorted by count descending; ties keep first-seen order so
// output is deterministic.
func ComputeStatistics(posts []domain.Post) Statistics {
	pub := published(posts)

	catCounts := newCounter()
	tagCounts := newCounter()
	total := 0
	for _, p := range pub {
		catCounts.add(p.Category)
		for _, t := range p.Tags {
			tagCounts.add(t)
		}
		total += p.ReadingTime
	}

	return Statistics{
		TotalPosts:       len(pub),
		TotalCategories:  catCounts.len(),
		TotalTags:        tagCounts.len(),
		TotalReadingTime: total,
		CategoryStats:    catCounts.sorted(),
		TagStats:         tagCounts.sorted(),
	}
}

// counter tracks occurrence counts while remembering first-seen order for
// deterministic tie-breaking.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) len() int { return len(c.counts) }

// sorted returns the counts descending; equal counts keep insertion order.
func (c *counter) sorted() []NameCount {
	out := make([]NameCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, NameCount{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
