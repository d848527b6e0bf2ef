package sitemap

import (
	"encoding/xml"
	"ghost-theme-storefront/internal/api"
	"ghost-theme-storefront/internal/environment"
	"ghost-theme-storefront/internal/logging"
	"ghost-theme-storefront/internal/models"
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"
	"time"
)

// Api defines the sitemap endpoint.
type Api interface {
	GetSitemap(c *gin.Context)
}

// Controller batch-reads all content tables and emits a sitemap urlset.
// It runs outside the regular JSON request path.
type Controller struct {
	*environment.Env
	BaseURL string
}

// ensure Controller implements Api
var _ Api = &Controller{}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []mapEntry `xml:"url"`
}

type mapEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func buildURL(base string, parts ...string) string {
	url := strings.TrimSuffix(base, "/")
	for _, p := range parts {
		url += "/" + strings.Trim(p, "/")
	}
	return url
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// GetSitemap emits one URL per content row plus the site root.
//
// @ID getSitemap
// @Summary Sitemap
// @Router /sitemap.xml [get]
// @Success 200
// @Failure 500 {object} api.RestJsonErrorResponse
func (sc *Controller) GetSitemap(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		themes  []models.Theme
		posts   []models.BlogPost
		authors []models.Author
		tags    []models.Tag
		pages   []models.PageSummary
		docs    []models.Documentation
	)

	// one batch read per table, sequentially; a single failure fails
	// the whole sitemap rather than emitting a partial one
	if err := sc.FindAllThemes(ctx, &themes); err != nil {
		sc.fail(c, err)
		return
	}
	if err := sc.FindAllPosts(ctx, &posts); err != nil {
		sc.fail(c, err)
		return
	}
	if err := sc.FindAllAuthors(ctx, &authors); err != nil {
		sc.fail(c, err)
		return
	}
	if err := sc.FindAllTags(ctx, &tags); err != nil {
		sc.fail(c, err)
		return
	}
	if err := sc.FindPublishedPageSummaries(ctx, &pages); err != nil {
		sc.fail(c, err)
		return
	}
	if err := sc.FindAllDocumentation(ctx, &docs); err != nil {
		sc.fail(c, err)
		return
	}

	urls := []mapEntry{
		{Loc: buildURL(sc.BaseURL)},
	}
	for _, t := range themes {
		urls = append(urls, mapEntry{Loc: buildURL(sc.BaseURL, "themes", t.ID), LastMod: lastMod(t.UpdatedAt)})
	}
	for _, p := range posts {
		urls = append(urls, mapEntry{Loc: buildURL(sc.BaseURL, "blog", p.ID), LastMod: lastMod(p.UpdatedAt)})
	}
	for _, a := range authors {
		urls = append(urls, mapEntry{Loc: buildURL(sc.BaseURL, "author", a.ID), LastMod: lastMod(a.UpdatedAt)})
	}
	for _, t := range tags {
		urls = append(urls, mapEntry{Loc: buildURL(sc.BaseURL, "tag", t.Slug), LastMod: lastMod(t.UpdatedAt)})
	}
	for _, p := range pages {
		urls = append(urls, mapEntry{Loc: buildURL(sc.BaseURL, "page", p.Slug), LastMod: lastMod(p.UpdatedAt)})
	}
	for _, d := range docs {
		urls = append(urls, mapEntry{Loc: buildURL(sc.BaseURL, "documentation", d.Slug), LastMod: lastMod(d.UpdatedAt)})
	}

	sitemap := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(http.StatusOK)
	_, _ = c.Writer.WriteString(xml.Header)
	if err := xml.NewEncoder(c.Writer).Encode(sitemap); err != nil {
		sc.LogError(logging.GetLogType("sitemap"), err)
	}
}

func (sc *Controller) fail(c *gin.Context, err error) {
	sc.LogError(logging.GetLogType("sitemap"), err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.NewErrorResponse("Failed to build sitemap"))
}
