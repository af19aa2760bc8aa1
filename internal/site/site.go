/*
Package site renders the public, search-engine-facing pages of CodeNinjaHub.

It turns catalog records into complete HTML documents (with Open Graph,
Twitter and schema.org metadata), serves them over chi with a page cache in
front of the renderer, and can write the same documents to disk as a fully
static site.

Layout:

  - site.go, seo.go: site-wide and per-page metadata.
  - jsonld.go: typed schema.org payloads.
  - render.go: html/template rendering of home, language and not-found pages.
  - sitemap.go: sitemap.xml and robots.txt.
  - cache*.go: in-memory and Redis page caches.
  - handler.go, export.go: HTTP serving and static export.
*/
package site

import (
	"fmt"
	"strings"

	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
)

// Meta holds the site-wide identity shared by every page.
type Meta struct {
	Name          string
	BaseURL       string
	Locale        string
	DefaultTitle  string
	TitleTemplate string
	Description   string
	Keywords      []string
}

// NewMeta returns the CodeNinjaHub identity rooted at baseURL.
func NewMeta(baseURL string) Meta {
	return Meta{
		Name:          constants.SiteName,
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Locale:        "en_US",
		DefaultTitle:  constants.SiteName + " - Programming Language Guide & Comparison",
		TitleTemplate: "%s | " + constants.SiteName,
		Description: "Comprehensive guide to programming languages. Compare Python, Java, C++, and more. " +
			"Learn features, use cases, and code examples for each language.",
		Keywords: []string{
			"programming languages", "python", "java", "c++",
			"coding", "software development", "learn programming",
		},
	}
}

// Title applies the title template to a page title.
func (meta Meta) Title(page string) string {
	return fmt.Sprintf(meta.TitleTemplate, page)
}

// URL returns the absolute URL of a site path. An empty path is the site root.
func (meta Meta) URL(path string) string {
	if path == "" || path == "/" {
		return meta.BaseURL
	}
	return meta.BaseURL + "/" + strings.TrimLeft(path, "/")
}

// LanguagePath is the site-relative path of a language page.
func LanguagePath(slug string) string {
	return "/languages/" + slug
}

// LanguageURL is the absolute, canonical URL of a language page.
func (meta Meta) LanguageURL(slug string) string {
	return meta.URL(LanguagePath(slug))
}
