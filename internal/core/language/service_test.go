package language_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
)

func newTestService() *language.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return language.NewService(newBuiltinCatalog(), logger)
}

/*
TestService_GetLanguage resolves identifiers through the repository.
*/
func TestService_GetLanguage(t *testing.T) {
	service := newTestService()

	lang, err := service.GetLanguage(context.Background(), "C++")
	require.NoError(t, err)
	assert.Equal(t, "cpp", lang.Slug)

	_, err = service.GetLanguage(context.Background(), "ruby")
	assert.ErrorIs(t, err, language.ErrNotFound)
}

/*
TestService_RelatedLanguages excludes the current record and keeps catalog order.
*/
func TestService_RelatedLanguages(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	java, err := service.GetLanguage(ctx, "java")
	require.NoError(t, err)

	related, err := service.RelatedLanguages(ctx, java)
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, "python", related[0].Slug)
	assert.Equal(t, "cpp", related[1].Slug)
}

/*
TestService_Slugs lists slugs for route pre-generation.
*/
func TestService_Slugs(t *testing.T) {
	slugs, err := newTestService().Slugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "java", "cpp"}, slugs)
}

func serveAPI(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	router.Mount("/api/v1/languages", language.NewHandler(newTestService()).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

/*
TestHandler_List returns the whole catalog in the success envelope.
*/
func TestHandler_List(t *testing.T) {
	recorder := serveAPI(t, "/api/v1/languages")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []language.Language `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "Python", body.Data[0].Name)
	assert.Equal(t, 1, body.Data[0].Popularity.TIOBERank)
}

/*
TestHandler_Get resolves escaped display names and reports misses as 404.
*/
func TestHandler_Get(t *testing.T) {
	recorder := serveAPI(t, "/api/v1/languages/C%2B%2B")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"slug":"cpp"`)

	recorder = serveAPI(t, "/api/v1/languages/ruby")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Language not found", body.Error)
}
