package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/codeninjahub/codeninjahub/internal/platform/request"
	"github.com/codeninjahub/codeninjahub/internal/platform/respond"
)

// Handler implements the JSON API for the language catalog.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listLanguages)
	router.Get("/{identifier}", handler.getLanguage)
	return router
}

/*
GET /api/v1/languages.

Description: Lists every catalog record in display order.

Response:
  - 200: []Language
*/
func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	langs, err := handler.service.ListLanguages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, langs)
}

/*
GET /api/v1/languages/{identifier}.

Description: Resolves a slug or display name ("cpp", "C++", "python").

Response:
  - 200: Language
  - 404: NOT_FOUND
*/
func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	lang, err := handler.service.GetLanguage(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lang)
}
