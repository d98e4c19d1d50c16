package feed

import (
	"encoding/xml"
	"time"

	"github.com/pkarali/go-blog-backend/internal/domain"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// BuildSitemap renders a sitemap with the site root, the blog index, and one
// URL per published post. LastMod carries each post's UpdatedAt date.
func BuildSitemap(site Site, posts []domain.Post) (string, error) {
	urls := []sitemapURL{
		{Loc: site.BaseURL + "/"},
		{Loc: site.BaseURL + "/blog"},
	}
	for _, p := range published(posts) {
		urls = append(urls, sitemapURL{
			Loc:     site.PostURL(p.Slug),
			LastMod: p.UpdatedAt.Format(time.DateOnly),
		})
	}
	doc := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	return encodeXML(doc)
}
