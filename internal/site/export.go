package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Exporter writes the whole site as static files, for hosting without a
// running server.
type Exporter struct {
	catalog  Catalog
	renderer *Renderer
	logger   *slog.Logger
}

func NewExporter(catalog Catalog, renderer *Renderer, logger *slog.Logger) *Exporter {
	return &Exporter{catalog: catalog, renderer: renderer, logger: logger}
}

// Export renders every page into dir and returns the written paths, relative
// to dir, in write order:
//
//	index.html
//	languages/<slug>/index.html
//	404.html
//	sitemap.xml
//	robots.txt
//	static/...
func (exporter *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	var written []string
	write := func(name string, content []byte) error {
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("export: create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("export: write %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	}

	languages, err := exporter.catalog.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}

	home, err := exporter.renderer.RenderHome(ctx, languages)
	if err != nil {
		return nil, err
	}
	if err := write("index.html", home); err != nil {
		return nil, err
	}

	for _, lang := range languages {
		related, err := exporter.catalog.RelatedLanguages(ctx, lang)
		if err != nil {
			return nil, err
		}
		page, err := exporter.renderer.RenderLanguage(ctx, lang, related)
		if err != nil {
			return nil, err
		}
		if err := write("languages/"+lang.Slug+"/index.html", page); err != nil {
			return nil, err
		}
	}

	notFound, err := exporter.renderer.RenderNotFound(ctx)
	if err != nil {
		return nil, err
	}
	if err := write("404.html", notFound); err != nil {
		return nil, err
	}

	slugs, err := exporter.catalog.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	sitemap, err := RenderSitemap(SitemapEntries(exporter.renderer.meta, slugs, exporter.renderer.now()))
	if err != nil {
		return nil, err
	}
	if err := write("sitemap.xml", sitemap); err != nil {
		return nil, err
	}
	if err := write("robots.txt", RenderRobots(exporter.renderer.meta)); err != nil {
		return nil, err
	}

	err = fs.WalkDir(Static(), ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return err
		}
		content, err := fs.ReadFile(Static(), name)
		if err != nil {
			return err
		}
		return write("static/"+name, content)
	})
	if err != nil {
		return nil, fmt.Errorf("export: copy static assets: %w", err)
	}

	exporter.logger.InfoContext(ctx, "site_exported",
		slog.String("dir", dir),
		slog.Int("files", len(written)),
	)
	return written, nil
}
