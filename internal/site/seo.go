package site

import (
	"fmt"
	"strings"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/pkg/slice"
)

const (
	robotsIndex    = "index, follow"
	robotsNoIndex  = "noindex, follow"
	googleBotIndex = "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1"
)

// PageMeta is everything rendered into a page's <head>.
type PageMeta struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string
	GoogleBot   string
	OpenGraph   OpenGraph
	Twitter     Twitter
}

// OpenGraph is the og:* property set.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	SiteName    string
	Locale      string
}

// Twitter is the twitter:* card.
type Twitter struct {
	Card        string
	Title       string
	Description string
}

// HomeMeta describes the landing page. Its title is the site default and is
// never passed through the title template.
func HomeMeta(meta Meta, languages []*language.Language) PageMeta {
	names := strings.Join(languageNames(languages), ", ")

	return PageMeta{
		Title: meta.DefaultTitle,
		Description: "Explore and compare popular programming languages. Detailed guides for " + names +
			" with features, use cases, code examples, and industry adoption.",
		Keywords: []string{
			"programming languages comparison", "python guide", "java tutorial",
			"c++ learning", "coding languages", "software development",
		},
		Canonical: meta.BaseURL,
		Robots:    robotsIndex,
		GoogleBot: googleBotIndex,
		OpenGraph: OpenGraph{
			Type:        "website",
			Title:       meta.DefaultTitle,
			Description: "Explore and compare popular programming languages. Detailed guides for " + names + ".",
			URL:         meta.BaseURL,
			SiteName:    meta.Name,
			Locale:      meta.Locale,
		},
		Twitter: defaultTwitter(meta),
	}
}

// LanguageMeta describes a language page. year is the current calendar year,
// which keeps the "Complete Guide" title fresh.
func LanguageMeta(meta Meta, lang *language.Language, year int) PageMeta {
	lowered := strings.ToLower(lang.Name)
	keywords := []string{
		lowered + " programming",
		lowered + " tutorial",
		"learn " + lowered,
		lowered + " guide",
		lowered + " features",
		lowered + " use cases",
	}
	keywords = append(keywords, slice.Map(lang.UseCases, strings.ToLower)...)

	canonical := meta.LanguageURL(lang.Slug)

	return PageMeta{
		Title: meta.Title(fmt.Sprintf("%s Programming Language - Complete Guide %d", lang.Name, year)),
		Description: fmt.Sprintf("Learn %s programming language. %s Features, use cases, code examples, and best practices.",
			lang.Name, lang.Description),
		Keywords:  keywords,
		Canonical: canonical,
		Robots:    robotsIndex,
		GoogleBot: googleBotIndex,
		OpenGraph: OpenGraph{
			Type:        "article",
			Title:       lang.Name + " Programming Language - Complete Guide",
			Description: lang.Description,
			URL:         canonical,
			SiteName:    meta.Name,
			Locale:      meta.Locale,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       lang.Name + " Programming Language Guide",
			Description: lang.Description,
		},
	}
}

// NotFoundMeta describes the "Language Not Found" view. It is kept out of
// search indexes and carries no canonical link.
func NotFoundMeta(meta Meta) PageMeta {
	const description = "The programming language you are looking for does not exist."

	return PageMeta{
		Title:       meta.Title("Language Not Found"),
		Description: description,
		Keywords:    meta.Keywords,
		Robots:      robotsNoIndex,
		GoogleBot:   robotsNoIndex,
		OpenGraph: OpenGraph{
			Type:        "website",
			Title:       meta.DefaultTitle,
			Description: description,
			SiteName:    meta.Name,
			Locale:      meta.Locale,
		},
		Twitter: defaultTwitter(meta),
	}
}

func defaultTwitter(meta Meta) Twitter {
	return Twitter{
		Card:        "summary_large_image",
		Title:       meta.Name + " - Programming Language Guide",
		Description: "Comprehensive guide to programming languages.",
	}
}

func languageNames(languages []*language.Language) []string {
	return slice.Map(languages, func(lang *language.Language) string {
		return lang.Name
	})
}

// humanList joins names as "A, B & C".
func humanList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " & " + names[len(names)-1]
}
