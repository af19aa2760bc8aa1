package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/pkg/slice"
)

const (
	pageHome     = "home.gohtml"
	pageLanguage = "language.gohtml"
	pageNotFound = "notfound.gohtml"
)

// Renderer produces complete HTML documents. It is safe for concurrent use.
type Renderer struct {
	meta  Meta
	pages map[string]*template.Template
	about template.HTML
	now   func() time.Time
}

// RendererOption customizes a [Renderer].
type RendererOption func(*Renderer)

// WithClock replaces time.Now, which feeds the footer year, the title year
// and dateModified.
func WithClock(now func() time.Time) RendererOption {
	return func(renderer *Renderer) {
		renderer.now = now
	}
}

// view is the data handed to layout.gohtml.
type view struct {
	Site   Meta
	Page   PageMeta
	JSONLD []any
	Year   int
	Body   any
}

type homeBody struct {
	Languages []*language.Language
	HeroNames string
	Count     int
	About     template.HTML
}

type languageBody struct {
	Language *language.Language
	Related  []*language.Language
}

// NewRenderer parses the embedded templates and editorial copy.
func NewRenderer(meta Meta, options ...RendererOption) (*Renderer, error) {
	renderer := &Renderer{
		meta:  meta,
		pages: make(map[string]*template.Template, 3),
		now:   time.Now,
	}
	for _, option := range options {
		option(renderer)
	}

	aboutSource, err := fs.ReadFile(assets, "content/about.md")
	if err != nil {
		return nil, fmt.Errorf("site: read about copy: %w", err)
	}
	if renderer.about, err = renderMarkdown(aboutSource); err != nil {
		return nil, fmt.Errorf("site: render about copy: %w", err)
	}

	layout, err := template.New("layout.gohtml").Funcs(templateFuncs).ParseFS(assets, "templates/layout.gohtml")
	if err != nil {
		return nil, fmt.Errorf("site: parse layout: %w", err)
	}

	for _, page := range []string{pageHome, pageLanguage, pageNotFound} {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("site: clone layout for %s: %w", page, err)
		}
		if renderer.pages[page], err = clone.ParseFS(assets, "templates/"+page); err != nil {
			return nil, fmt.Errorf("site: parse %s: %w", page, err)
		}
	}

	return renderer, nil
}

// Meta returns the site identity the renderer was built with.
func (renderer *Renderer) Meta() Meta {
	return renderer.meta
}

// RenderHome renders the landing page listing languages in catalog order.
func (renderer *Renderer) RenderHome(ctx context.Context, languages []*language.Language) ([]byte, error) {
	return renderer.execute(ctx, pageHome, view{
		Page:   HomeMeta(renderer.meta, languages),
		JSONLD: HomeJSONLD(renderer.meta, languages),
		Body: homeBody{
			Languages: languages,
			HeroNames: humanList(languageNames(languages)),
			Count:     len(languages),
			About:     renderer.about,
		},
	})
}

// RenderLanguage renders the guide for lang, with related linking to the
// other catalog entries.
func (renderer *Renderer) RenderLanguage(ctx context.Context, lang *language.Language, related []*language.Language) ([]byte, error) {
	now := renderer.now()

	return renderer.execute(ctx, pageLanguage, view{
		Page:   LanguageMeta(renderer.meta, lang, now.Year()),
		JSONLD: LanguageJSONLD(renderer.meta, lang, now),
		Body:   languageBody{Language: lang, Related: related},
	})
}

// RenderNotFound renders the "Language Not Found" view.
func (renderer *Renderer) RenderNotFound(ctx context.Context) ([]byte, error) {
	return renderer.execute(ctx, pageNotFound, view{
		Page: NotFoundMeta(renderer.meta),
	})
}

func (renderer *Renderer) execute(ctx context.Context, page string, data view) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data.Site = renderer.meta
	data.Year = renderer.now().Year()

	var buf bytes.Buffer
	if err := renderer.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("site: render %s: %w", page, err)
	}
	return buf.Bytes(), nil
}

var templateFuncs = template.FuncMap{
	"join":         strings.Join,
	"languagePath": LanguagePath,
	"topUseCases":  topUseCases,
	"badgeStyle":   badgeStyle,
	"accentStyle":  accentStyle,
}

// topUseCases keeps the first three use cases without their parenthesised
// detail: "Web Development (Django, Flask)" becomes "Web Development".
func topUseCases(useCases []string) []string {
	return slice.Map(useCases[:min(3, len(useCases))], func(useCase string) string {
		head, _, _ := strings.Cut(useCase, "(")
		return strings.TrimSpace(head)
	})
}

// badgeStyle tints a badge with a record color. Colors are #RRGGBB, checked by
// the catalog contract, so appending an alpha byte yields #RRGGBBAA.
func badgeStyle(color string) template.CSS {
	return template.CSS(fmt.Sprintf("background-color: %s20; color: %s; border-color: %s40", color, color, color))
}

func accentStyle(color string) template.CSS {
	return template.CSS("--feature-accent: " + color)
}
