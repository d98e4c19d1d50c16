// Package feed serializes post collections into syndication documents
// (RSS 2.0, Atom 1.0, JSON Feed 1.1) and computes feed-level statistics.
//
// The package is deliberately free of HTTP and logging concerns: callers
// hand in the site metadata and a post collection and get a document string
// back. Serialization goes through encoding/xml and encoding/json so that
// special characters in titles and descriptions (&, <, >, ") can never
// corrupt the output document.
package feed

import (
	"encoding/json"
	"encoding/xml"
	"time"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

// Site is the feed-level metadata rendered into every document.
type Site struct {
	Title       string
	Description string
	BaseURL     string // no trailing slash
	Language    string
	AuthorName  string
	AuthorEmail string
}

// PostURL returns the canonical URL of a post on this site.
func (s Site) PostURL(slug string) string {
	return s.BaseURL + "/blog/" + slug
}

//
// RSS 2.0
//

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
	Category    string `xml:"category,omitempty"`
}

// BuildRSS renders the published, non-draft posts as an RSS 2.0 document,
// newest first (the input is expected in canonical order and is not
// re-sorted). Dates use RFC 1123Z as feed readers expect.
func BuildRSS(site Site, posts []domain.Post) (string, error) {
	pub := published(posts)
	items := make([]rssItem, 0, len(pub))
	for _, p := range pub {
		u := site.PostURL(p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        u,
			Description: p.Description,
			PubDate:     p.PublishedAt.Format(time.RFC1123Z),
			GUID:        u,
			Category:    p.Category,
		})
	}

	doc := rssDoc{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Title,
			Link:        site.BaseURL,
			Description: site.Description,
			Language:    site.Language,
			Items:       items,
		},
	}
	if len(pub) > 0 {
		doc.Channel.LastBuildDate = pub[0].PublishedAt.Format(time.RFC1123Z)
	}
	return encodeXML(doc)
}

//
// Atom 1.0
//

type atomDoc struct {
	XMLName  xml.Name    `xml:"feed"`
	XMLNS    string      `xml:"xmlns,attr"`
	Title    string      `xml:"title"`
	ID       string      `xml:"id"`
	Updated  string      `xml:"updated"`
	Subtitle string      `xml:"subtitle,omitempty"`
	Links    []atomLink  `xml:"link"`
	Author   *atomPerson `xml:"author,omitempty"`
	Entries  []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomPerson struct {
	Name  string `xml:"name"`
	Email string `xml:"email,omitempty"`
}

type atomEntry struct {
	ID      string      `xml:"id"`
	Title   string      `xml:"title"`
	Updated string      `xml:"updated"`
	Summary string      `xml:"summary"`
	Link    atomLink    `xml:"link"`
	Author  *atomPerson `xml:"author,omitempty"`
}

// BuildAtom renders the published, non-draft posts as an Atom 1.0 document.
// Entry timestamps use each post's UpdatedAt, per the Atom data model.
func BuildAtom(site Site, posts []domain.Post) (string, error) {
	pub := published(posts)
	entries := make([]atomEntry, 0, len(pub))
	for _, p := range pub {
		u := site.PostURL(p.Slug)
		e := atomEntry{
			ID:      u,
			Title:   p.Title,
			Updated: p.UpdatedAt.Format(time.RFC3339),
			Summary: p.Description,
			Link:    atomLink{Href: u},
		}
		if p.Author.Name != "" {
			e.Author = &atomPerson{Name: p.Author.Name}
		}
		entries = append(entries, e)
	}

	doc := atomDoc{
		XMLNS:    "http://www.w3.org/2005/Atom",
		Title:    site.Title,
		ID:       site.BaseURL + "/",
		Subtitle: site.Description,
		Updated:  time.Now().UTC().Format(time.RFC3339),
		Links: []atomLink{
			{Href: site.BaseURL + "/blog/atom.xml", Rel: "self", Type: "application/atom+xml"},
			{Href: site.BaseURL, Rel: "alternate"},
		},
		Entries: entries,
	}
	if len(pub) > 0 {
		doc.Updated = pub[0].UpdatedAt.Format(time.RFC3339)
	}
	if site.AuthorName != "" {
		doc.Author = &atomPerson{Name: site.AuthorName, Email: site.AuthorEmail}
	}
	return encodeXML(doc)
}

//
// JSON Feed 1.1
//

type jsonFeed struct {
	Version     string         `json:"version"`
	Title       string         `json:"title"`
	HomePageURL string         `json:"home_page_url"`
	FeedURL     string         `json:"feed_url"`
	Description string         `json:"description,omitempty"`
	Language    string         `json:"language,omitempty"`
	Items       []jsonFeedItem `json:"items"`
}

type jsonFeedItem struct {
	ID            string   `json:"id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary,omitempty"`
	DatePublished string   `json:"date_published"`
	DateModified  string   `json:"date_modified,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// BuildJSONFeed renders the published, non-draft posts as a JSON Feed 1.1
// document.
func BuildJSONFeed(site Site, posts []domain.Post) (string, error) {
	pub := published(posts)
	items := make([]jsonFeedItem, 0, len(pub))
	for _, p := range pub {
		u := site.PostURL(p.Slug)
		items = append(items, jsonFeedItem{
			ID:            u,
			URL:           u,
			Title:         p.Title,
			Summary:       p.Description,
			DatePublished: p.PublishedAt.Format(time.RFC3339),
			DateModified:  p.UpdatedAt.Format(time.RFC3339),
			Tags:          p.Tags,
		})
	}

	doc := jsonFeed{
		Version:     "https://jsonfeed.org/version/1.1",
		Title:       site.Title,
		HomePageURL: site.BaseURL,
		FeedURL:     site.BaseURL + "/blog/feed.json",
		Description: site.Description,
		Language:    site.Language,
		Items:       items,
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// published filters the collection to non-draft posts, preserving order.
func published(posts []domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Draft {
			out = append(out, p)
		}
	}
	return out
}

// encodeXML marshals v with the standard XML header and indentation.
func encodeXML(v any) (string, error) {
	b, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(b), nil
}
