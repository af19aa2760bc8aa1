package language

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codeninjahub/codeninjahub/pkg/slice"
)

// Service exposes the read operations used by page rendering and the JSON API.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	return service.repo.ListLanguages(context)
}

// GetLanguage resolves an identifier (slug, name, or "C++"-style display name).
// A miss returns [ErrNotFound].
func (service *Service) GetLanguage(context context.Context, identifier string) (*Language, error) {
	lang, err := service.repo.GetLanguage(context, identifier)
	if errors.Is(err, ErrNotFound) {
		service.logger.DebugContext(context, "language_not_found", slog.String("identifier", identifier))
	}
	return lang, err
}

// RelatedLanguages lists every other record, in catalog order.
func (service *Service) RelatedLanguages(context context.Context, lang *Language) ([]*Language, error) {
	all, err := service.repo.ListLanguages(context)
	if err != nil {
		return nil, err
	}
	return slice.Filter(all, func(other *Language) bool {
		return other.Slug != lang.Slug
	}), nil
}

// Slugs lists the canonical slug of every record, for route pre-generation.
func (service *Service) Slugs(context context.Context) ([]string, error) {
	all, err := service.repo.ListLanguages(context)
	if err != nil {
		return nil, err
	}
	return slice.Map(all, func(lang *Language) string {
		return lang.Slug
	}), nil
}
