package language

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"

	"github.com/codeninjahub/codeninjahub/internal/platform/apperr"
)

// ErrNotFound is returned by [Catalog.Resolve] when no record matches the identifier.
//
// It is an expected outcome, not a fault: handlers render a "not found" view for it.
var ErrNotFound = apperr.NotFound("Language")

// Catalog is the fixed, ordered collection of language records.
//
// A Catalog is built once with [NewCatalog] and never modified afterwards, so it is
// safe for concurrent use without locking.
type Catalog struct {
	records []*Language
}

// NewCatalog builds a catalog holding the given records in the given order.
func NewCatalog(records ...Language) *Catalog {
	catalog := &Catalog{records: make([]*Language, 0, len(records))}
	for i := range records {
		record := records[i]
		catalog.records = append(catalog.records, &record)
	}
	return catalog
}

// All returns every record in definition order.
//
// The slice is fresh on each call; the records it points to are shared and read-only.
func (catalog *Catalog) All() []*Language {
	return slices.Clone(catalog.records)
}

// Len reports the number of records.
func (catalog *Catalog) Len() int {
	return len(catalog.records)
}

// Slugs returns the canonical slug of every record in definition order.
func (catalog *Catalog) Slugs() []string {
	slugs := make([]string, len(catalog.records))
	for i, record := range catalog.records {
		slugs[i] = record.Slug
	}
	return slugs
}

// Resolve maps a caller-supplied identifier onto a catalog record.
//
// All comparisons are case-insensitive. A record matches when any of these hold:
//
//  1. its slug equals the input with every "++" rewritten to "pp";
//  2. its name, with "++" rewritten to "pp", equals that same rewritten input;
//  3. its name equals the input as typed (both lower-cased, no rewrite).
//
// The first match in catalog order wins. Any string is accepted; when nothing matches
// the result is [ErrNotFound].
func (catalog *Catalog) Resolve(input string) (*Language, error) {
	// A Caser is stateful, so each call gets its own.
	caser := cases.Lower(textlang.Und)
	lowered := caser.String(input)
	normalized := rewritePlusPlus(lowered)

	for _, record := range catalog.records {
		name := caser.String(record.Name)

		switch {
		case caser.String(record.Slug) == normalized:
			return record, nil
		case rewritePlusPlus(name) == normalized:
			return record, nil
		case name == lowered:
			return record, nil
		}
	}

	return nil, ErrNotFound
}

// ListLanguages satisfies [Repository].
func (catalog *Catalog) ListLanguages(_ context.Context) ([]*Language, error) {
	return catalog.All(), nil
}

// GetLanguage satisfies [Repository].
func (catalog *Catalog) GetLanguage(_ context.Context, identifier string) (*Language, error) {
	return catalog.Resolve(identifier)
}

// rewritePlusPlus turns "c++" into "cpp". It is deliberately literal: no other symbol
// is rewritten.
func rewritePlusPlus(s string) string {
	return strings.ReplaceAll(s, "++", "pp")
}

// lower applies full Unicode lower-casing to a single string.
func lower(s string) string {
	return cases.Lower(textlang.Und).String(s)
}
