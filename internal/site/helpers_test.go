package site_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/site"
)

const testBaseURL = "http://localhost:3000"

// fixedNow is the clock used by every rendering test.
var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newService() *language.Service {
	return language.NewService(language.NewCatalog(language.BuiltinLanguages()...), discardLogger())
}

func newRenderer(t *testing.T) *site.Renderer {
	t.Helper()

	renderer, err := site.NewRenderer(site.NewMeta(testBaseURL), site.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return renderer
}

func builtin(t *testing.T, slug string) *language.Language {
	t.Helper()

	lang, err := language.NewCatalog(language.BuiltinLanguages()...).Resolve(slug)
	require.NoError(t, err)
	return lang
}
