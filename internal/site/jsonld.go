package site

import (
	"fmt"
	"strings"
	"time"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/pkg/slice"
)

// schema.org vocabulary. Each value is marshalled by html/template inside a
// <script type="application/ld+json"> element.

const (
	schemaContext = "https://schema.org"

	// publishedDate is the fixed first-publication date of every guide.
	publishedDate = "2024-01-01"

	// isoMillis matches JavaScript's Date.prototype.toISOString.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type WebSite struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	URL             string       `json:"url"`
	PotentialAction SearchAction `json:"potentialAction"`
}

type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

type CollectionPage struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	HasPart     []ArticleStub `json:"hasPart"`
}

type ArticleStub struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type Article struct {
	Context          string           `json:"@context"`
	Type             string           `json:"@type"`
	Headline         string           `json:"headline"`
	Description      string           `json:"description"`
	Author           Thing            `json:"author"`
	Publisher        Thing            `json:"publisher"`
	DatePublished    string           `json:"datePublished"`
	DateModified     string           `json:"dateModified"`
	MainEntityOfPage WebPageRef       `json:"mainEntityOfPage"`
	About            ComputerLanguage `json:"about"`
}

type WebPageRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type ComputerLanguage struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	DateCreated string `json:"dateCreated"`
	Creator     Thing  `json:"creator"`
	Description string `json:"description"`
}

type SoftwareApplication struct {
	Context             string   `json:"@context"`
	Type                string   `json:"@type"`
	Name                string   `json:"name"`
	ApplicationCategory string   `json:"applicationCategory"`
	OperatingSystem     string   `json:"operatingSystem"`
	Description         string   `json:"description"`
	SoftwareVersion     string   `json:"softwareVersion"`
	DateCreated         string   `json:"dateCreated"`
	Creator             Thing    `json:"creator"`
	FeatureList         []string `json:"featureList"`
	Keywords            string   `json:"keywords"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// HomeJSONLD returns the WebSite and CollectionPage payloads of the landing page.
func HomeJSONLD(meta Meta, languages []*language.Language) []any {
	website := WebSite{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        meta.Name,
		Description: "Comprehensive programming language guide and comparison platform",
		URL:         meta.BaseURL,
		PotentialAction: SearchAction{
			Type:       "SearchAction",
			Target:     meta.URL("/languages/{search_term}"),
			QueryInput: "required name=search_term",
		},
	}

	collection := CollectionPage{
		Context:     schemaContext,
		Type:        "CollectionPage",
		Name:        "Programming Languages Collection",
		Description: "A comprehensive collection of programming language guides",
		HasPart: slice.Map(languages, func(lang *language.Language) ArticleStub {
			return ArticleStub{
				Type:        "Article",
				Name:        lang.Name + " Programming Language Guide",
				URL:         meta.LanguageURL(lang.Slug),
				Description: lang.Description,
			}
		}),
	}

	return []any{website, collection}
}

// LanguageJSONLD returns the Article, SoftwareApplication, BreadcrumbList and
// FAQPage payloads of a language page. modified becomes dateModified.
func LanguageJSONLD(meta Meta, lang *language.Language, modified time.Time) []any {
	pageURL := meta.LanguageURL(lang.Slug)
	created := fmt.Sprintf("%d-01-01", lang.YearCreated)
	creator := Thing{Type: "Person", Name: lang.Creator}

	article := Article{
		Context:          schemaContext,
		Type:             "Article",
		Headline:         lang.Name + " Programming Language - Complete Guide",
		Description:      lang.Description,
		Author:           Thing{Type: "Organization", Name: meta.Name},
		Publisher:        Thing{Type: "Organization", Name: meta.Name, URL: meta.BaseURL},
		DatePublished:    publishedDate,
		DateModified:     modified.UTC().Format(isoMillis),
		MainEntityOfPage: WebPageRef{Type: "WebPage", ID: pageURL},
		About: ComputerLanguage{
			Type:        "ComputerLanguage",
			Name:        lang.Name,
			DateCreated: created,
			Creator:     creator,
			Description: lang.Description,
		},
	}

	software := SoftwareApplication{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                lang.Name,
		ApplicationCategory: "DeveloperApplication",
		OperatingSystem:     "Cross-platform",
		Description:         lang.LongDescription,
		SoftwareVersion:     lang.LatestVersion,
		DateCreated:         created,
		Creator:             creator,
		FeatureList:         lang.Features,
		Keywords:            strings.Join(lang.UseCases, ", "),
	}

	breadcrumbs := BreadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []ListItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: meta.BaseURL},
			{Type: "ListItem", Position: 2, Name: "Languages", Item: meta.BaseURL + "/#languages"},
			{Type: "ListItem", Position: 3, Name: lang.Name, Item: pageURL},
		},
	}

	faq := FAQPage{
		Context: schemaContext,
		Type:    "FAQPage",
		MainEntity: []Question{
			question(
				fmt.Sprintf("What is %s used for?", lang.Name),
				fmt.Sprintf("%s is commonly used for %s.", lang.Name, strings.Join(lang.UseCases, ", ")),
			),
			question(
				fmt.Sprintf("When was %s created?", lang.Name),
				fmt.Sprintf("%s was created in %d by %s.", lang.Name, lang.YearCreated, lang.Creator),
			),
			question(
				fmt.Sprintf("What are the main features of %s?", lang.Name),
				fmt.Sprintf("Key features of %s include: %s.", lang.Name, strings.Join(lang.Features, ", ")),
			),
		},
	}

	return []any{article, software, breadcrumbs, faq}
}

func question(name, answer string) Question {
	return Question{
		Type:           "Question",
		Name:           name,
		AcceptedAnswer: Answer{Type: "Answer", Text: answer},
	}
}
