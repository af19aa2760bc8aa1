package site

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
	"github.com/codeninjahub/codeninjahub/internal/platform/ctxutil"
	requestutil "github.com/codeninjahub/codeninjahub/internal/platform/request"
	"github.com/codeninjahub/codeninjahub/internal/platform/respond"
)

// Catalog is the read side of the language service used by the site.
type Catalog interface {
	ListLanguages(ctx context.Context) ([]*language.Language, error)
	GetLanguage(ctx context.Context, identifier string) (*language.Language, error)
	RelatedLanguages(ctx context.Context, lang *language.Language) ([]*language.Language, error)
	Slugs(ctx context.Context) ([]string, error)
}

// Handler serves the rendered site. Pages go through the [PageCache]; concurrent
// misses on one key share a single render.
type Handler struct {
	catalog  Catalog
	renderer *Renderer
	cache    PageCache
	group    singleflight.Group
	logger   *slog.Logger
}

func NewHandler(catalog Catalog, renderer *Renderer, cache PageCache, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		renderer: renderer,
		cache:    cache,
		logger:   logger,
	}
}

// Routes returns a [chi.Router] serving every public page. Unknown paths
// render the not-found view.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.home)
	router.Get("/languages/{identifier}", handler.language)
	router.Get("/sitemap.xml", handler.sitemap)
	router.Get("/robots.txt", handler.robots)
	router.Handle("/static/*", staticHandler())
	router.NotFound(handler.notFound)
	return router
}

// Warm renders the home page, the not-found page and every language page into
// the cache, mirroring static pre-generation.
func (handler *Handler) Warm(ctx context.Context) error {
	if _, _, err := handler.page(ctx, HomeKey, handler.renderHome); err != nil {
		return err
	}
	if _, _, err := handler.page(ctx, notFoundKey, handler.renderer.RenderNotFound); err != nil {
		return err
	}

	slugs, err := handler.catalog.Slugs(ctx)
	if err != nil {
		return err
	}
	for _, slug := range slugs {
		lang, err := handler.catalog.GetLanguage(ctx, slug)
		if err != nil {
			return err
		}
		if _, _, err := handler.page(ctx, LanguageKey(lang.Slug), handler.languageRenderer(lang)); err != nil {
			return err
		}
	}

	handler.logger.InfoContext(ctx, "page_cache_warmed",
		slog.String("backend", handler.cache.Name()),
		slog.Int("pages", len(slugs)+2),
	)
	return nil
}

/*
GET /.

Description: The landing page listing every language.
*/
func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, http.StatusOK, HomeKey, handler.renderHome)
}

/*
GET /languages/{identifier}.

Description: A language guide. The identifier is resolved like the JSON API
(slug, name, or "C++"-style name) and the page is cached under the canonical
slug, so /languages/C++ and /languages/cpp share one document.

Response:
  - 200: text/html guide
  - 404: text/html "Language Not Found"
*/
func (handler *Handler) language(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	lang, err := handler.catalog.GetLanguage(request.Context(), identifier)
	if errors.Is(err, language.ErrNotFound) {
		handler.notFound(writer, request)
		return
	}
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	handler.serve(writer, request, http.StatusOK, LanguageKey(lang.Slug), handler.languageRenderer(lang))
}

func (handler *Handler) notFound(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, http.StatusNotFound, notFoundKey, handler.renderer.RenderNotFound)
}

/*
GET /sitemap.xml.

Description: The site root plus one entry per language, stamped with the
generation time.
*/
func (handler *Handler) sitemap(writer http.ResponseWriter, request *http.Request) {
	document, err := handler.renderSitemap(request.Context())
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlPages)
	_, _ = writer.Write(document)
}

func (handler *Handler) robots(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlAssets)
	_, _ = writer.Write(RenderRobots(handler.renderer.meta))
}

func staticHandler() http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(http.FS(Static())))
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlAssets)
		files.ServeHTTP(writer, request)
	})
}

// # Rendering

type renderFunc func(ctx context.Context) ([]byte, error)

func (handler *Handler) renderHome(ctx context.Context) ([]byte, error) {
	languages, err := handler.catalog.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return handler.renderer.RenderHome(ctx, languages)
}

func (handler *Handler) languageRenderer(lang *language.Language) renderFunc {
	return func(ctx context.Context) ([]byte, error) {
		related, err := handler.catalog.RelatedLanguages(ctx, lang)
		if err != nil {
			return nil, err
		}
		return handler.renderer.RenderLanguage(ctx, lang, related)
	}
}

func (handler *Handler) renderSitemap(ctx context.Context) ([]byte, error) {
	slugs, err := handler.catalog.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	return RenderSitemap(SitemapEntries(handler.renderer.meta, slugs, handler.renderer.now()))
}

func (handler *Handler) serve(writer http.ResponseWriter, request *http.Request, status int, key string, render renderFunc) {
	page, hit, err := handler.page(request.Context(), key, render)
	if err != nil {
		handler.fail(writer, request, err)
		return
	}

	cacheStatus := constants.PageCacheStatusMiss
	if hit {
		cacheStatus = constants.PageCacheStatusHit
	}
	writer.Header().Set(constants.HeaderXPageCache, cacheStatus)
	writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlPages)

	respond.HTML(writer, status, page)
}

// page returns the cached document for key, rendering and storing it on a
// miss. Cache failures only cost a re-render.
func (handler *Handler) page(ctx context.Context, key string, render renderFunc) ([]byte, bool, error) {
	logger := ctxutil.GetLogger(ctx)

	page, found, err := handler.cache.Get(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "page_cache_get_failed", slog.String("key", key), slog.Any("error", err))
	} else if found {
		return page, true, nil
	}

	// The shared render must not die with whichever request started it.
	detached := context.WithoutCancel(ctx)

	result, err, _ := handler.group.Do(key, func() (any, error) {
		page, err := render(detached)
		if err != nil {
			return nil, err
		}
		if err := handler.cache.Set(detached, key, page); err != nil {
			logger.WarnContext(ctx, "page_cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
		return page, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result.([]byte), false, nil
}

func (handler *Handler) fail(writer http.ResponseWriter, request *http.Request, err error) {
	ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "page_render_failed",
		slog.String("path", request.URL.Path),
		slog.Any("error", err),
	)
	writer.Header().Set(constants.HeaderCacheControl, constants.CacheControlNoStore)
	http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
