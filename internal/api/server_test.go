// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/api"
	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/config"
	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
	"github.com/codeninjahub/codeninjahub/internal/site"
)

func newTestServer(t *testing.T, checkCache func(context.Context) error) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "test", SiteBaseURL: "http://localhost:3000"}

	service := language.NewService(language.NewCatalog(language.BuiltinLanguages()...), logger)
	renderer, err := site.NewRenderer(site.NewMeta(cfg.SiteBaseURL))
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CacheName:  "memory",
		CheckCache: checkCache,
	}, logger)

	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Languages: language.NewHandler(service),
		Site:      site.NewHandler(service, renderer, site.NewMemoryCache(0), logger),
	})
	return server.Handler()
}

func do(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

/*
TestServer_Routes verifies that pages, API and probes coexist on one router.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, nil)

	tests := []struct {
		name        string
		method      string
		target      string
		status      int
		contentType string
		body        string
	}{
		{"Home", http.MethodGet, "/", http.StatusOK, "text/html", "Featured Programming Languages"},
		{"LanguagePage", http.MethodGet, "/languages/java", http.StatusOK, "text/html", "Explore Other Languages"},
		{"LanguagePage_Missing", http.MethodGet, "/languages/ruby", http.StatusNotFound, "text/html", "Language Not Found"},
		{"LanguagePage_EscapedPlus", http.MethodGet, "/languages/c%2b%2b", http.StatusOK, "text/html", "Explore Other Languages"},
		{"LanguagePage_DoubleEscaped", http.MethodGet, "/languages/pyth%256Fn", http.StatusNotFound, "text/html", "Language Not Found"},
		{"UnknownPath", http.MethodGet, "/about-us", http.StatusNotFound, "text/html", "Back to Home"},
		{"API_List", http.MethodGet, "/api/v1/languages", http.StatusOK, "application/json", `"slug":"python"`},
		{"API_Get", http.MethodGet, "/api/v1/languages/C%2B%2B", http.StatusOK, "application/json", `"slug":"cpp"`},
		{"API_Missing", http.MethodGet, "/api/v1/languages/ruby", http.StatusNotFound, "application/json", `"code":"NOT_FOUND"`},
		{"API_DoubleEscaped", http.MethodGet, "/api/v1/languages/pyth%256Fn", http.StatusNotFound, "application/json", `"code":"NOT_FOUND"`},
		{"Sitemap", http.MethodGet, "/sitemap.xml", http.StatusOK, "application/xml", "<urlset"},
		{"Health", http.MethodGet, "/health", http.StatusOK, "application/json", `"status":"ok"`},
		{"Head", http.MethodHead, "/languages/python", http.StatusOK, "text/html", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := do(handler, tt.method, tt.target)

			assert.Equal(t, tt.status, response.Code)
			assert.Contains(t, response.Header().Get("Content-Type"), tt.contentType)
			assert.NotEmpty(t, response.Header().Get(constants.HeaderXRequestID))
			assert.Contains(t, response.Body.String(), tt.body)
		})
	}
}

func TestReadiness(t *testing.T) {
	ready := do(newTestServer(t, func(context.Context) error { return nil }), http.MethodGet, "/ready")
	assert.Equal(t, http.StatusOK, ready.Code)

	degraded := do(newTestServer(t, func(context.Context) error { return errors.New("connection refused") }), http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, degraded.Code)

	var body struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name  string `json:"name"`
				OK    bool   `json:"ok"`
				Error string `json:"error"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(degraded.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Data.Status)
	require.Len(t, body.Data.Checks, 1)
	assert.Equal(t, "memory", body.Data.Checks[0].Name)
	assert.False(t, body.Data.Checks[0].OK)
}
