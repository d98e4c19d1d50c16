// Syndication HTTP handlers.
//
// This file serves the feed documents built by the feed package:
//   - GET /blog/rss.xml
//   - GET /blog/atom.xml
//   - GET /blog/feed.json
//   - GET /sitemap.xml
//
// Feed documents are rebuilt per request. The corpus is in-memory and small,
// so building is cheaper than maintaining an invalidation scheme; HTTP-level
// caching (if any) belongs to the proxy in front.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkarali/go-blog-backend/internal/feed"
)

func (h *Handlers) feedSite() feed.Site {
	return feed.Site{
		Title:       h.site.Title,
		Description: h.site.Description,
		BaseURL:     h.site.BaseURL,
		Language:    h.site.Language,
		AuthorName:  h.site.AuthorName,
		AuthorEmail: h.site.AuthorEmail,
	}
}

// RSSFeed godoc
// @ID          rssFeed
// @Summary     RSS 2.0 feed
// @Description Returns the published posts as an RSS 2.0 document, newest first.
// @Tags        Feeds
// @Produce     application/rss+xml
//
// @Success     200  {string} string "RSS XML document"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /blog/rss.xml [get]
func (h *Handlers) RSSFeed(c *gin.Context) {
	doc, err := feed.BuildRSS(h.feedSite(), h.feedSrc.All())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeFeedFailed, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(doc))
}

// AtomFeed godoc
// @ID          atomFeed
// @Summary     Atom 1.0 feed
// @Description Returns the published posts as an Atom 1.0 document, newest first.
// @Tags        Feeds
// @Produce     application/atom+xml
//
// @Success     200  {string} string "Atom XML document"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /blog/atom.xml [get]
func (h *Handlers) AtomFeed(c *gin.Context) {
	doc, err := feed.BuildAtom(h.feedSite(), h.feedSrc.All())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeFeedFailed, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/atom+xml; charset=utf-8", []byte(doc))
}

// JSONFeed godoc
// @ID          jsonFeed
// @Summary     JSON Feed v1.1
// @Description Returns the published posts as a JSON Feed v1.1 document, newest first.
// @Tags        Feeds
// @Produce     json
//
// @Success     200  {string} string "JSON Feed document"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /blog/feed.json [get]
func (h *Handlers) JSONFeed(c *gin.Context) {
	doc, err := feed.BuildJSONFeed(h.feedSite(), h.feedSrc.All())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeFeedFailed, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/feed+json; charset=utf-8", []byte(doc))
}

// Sitemap godoc
// @ID          sitemap
// @Summary     XML sitemap
// @Description Returns the sitemap covering the site root, the blog index, and every published post.
// @Tags        Feeds
// @Produce     application/xml
//
// @Success     200  {string} string "Sitemap XML document"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /sitemap.xml [get]
func (h *Handlers) Sitemap(c *gin.Context) {
	doc, err := feed.BuildSitemap(h.feedSite(), h.feedSrc.All())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeFeedFailed, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(doc))
}
