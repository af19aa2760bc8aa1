package language_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/apperr"
)

func newBuiltinCatalog() *language.Catalog {
	return language.NewCatalog(language.BuiltinLanguages()...)
}

/*
TestResolve_BySlug checks that every slug resolves to its own record in any casing.
*/
func TestResolve_BySlug(t *testing.T) {
	catalog := newBuiltinCatalog()

	for _, record := range catalog.All() {
		t.Run(record.Slug, func(t *testing.T) {
			got, err := catalog.Resolve(record.Slug)
			require.NoError(t, err)
			assert.Same(t, record, got)

			got, err = catalog.Resolve(strings.ToUpper(record.Slug))
			require.NoError(t, err)
			assert.Same(t, record, got)
		})
	}
}

/*
TestResolve_ByName checks names without symbols in several casings.
*/
func TestResolve_ByName(t *testing.T) {
	catalog := newBuiltinCatalog()

	tests := []struct {
		input string
		want  string
	}{
		{"Python", "Python"},
		{"PYTHON", "Python"},
		{"pYtHoN", "Python"},
		{"Java", "Java"},
		{"java", "Java"},
		{"JAVA", "Java"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := catalog.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

/*
TestResolve_CPlusPlus covers the "++" rewrite and the raw-name clause.
*/
func TestResolve_CPlusPlus(t *testing.T) {
	catalog := newBuiltinCatalog()

	for _, input := range []string{"C++", "c++", "cpp", "CPP", "Cpp"} {
		t.Run(input, func(t *testing.T) {
			got, err := catalog.Resolve(input)
			require.NoError(t, err)
			assert.Equal(t, "cpp", got.Slug)
		})
	}
}

/*
TestResolve_NotFound checks that misses are reported as ErrNotFound, never as a fault.
*/
func TestResolve_NotFound(t *testing.T) {
	catalog := newBuiltinCatalog()

	for _, input := range []string{"", "nonexistent-language", "ruby", "c+", "c+++", "  python  "} {
		t.Run(input, func(t *testing.T) {
			got, err := catalog.Resolve(input)
			assert.Nil(t, got)
			require.ErrorIs(t, err, language.ErrNotFound)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "NOT_FOUND", ae.Code)
			assert.Equal(t, 404, ae.HTTPStatus)
		})
	}
}

/*
TestResolve_ClauseOrder verifies each matching clause on a purpose-built catalog.
*/
func TestResolve_ClauseOrder(t *testing.T) {
	catalog := language.NewCatalog(
		language.Language{ID: "1", Name: "Notepad++", Slug: "notepad"},
		language.Language{ID: "2", Name: "C#", Slug: "csharp"},
		language.Language{ID: "3", Name: "Go", Slug: "golang"},
	)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rewritten_name", "notepadpp", "1"},
		{"rewritten_input_matches_rewritten_name", "NOTEPAD++", "1"},
		{"slug", "notepad", "1"},
		{"raw_name_with_symbol", "c#", "2"},
		{"short_name", "GO", "3"},
		{"slug_over_name", "golang", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

/*
TestResolve_FirstMatchWins confirms catalog order decides between ambiguous records.
*/
func TestResolve_FirstMatchWins(t *testing.T) {
	catalog := language.NewCatalog(
		language.Language{ID: "first", Name: "Alpha", Slug: "shared"},
		language.Language{ID: "second", Name: "Shared", Slug: "beta"},
	)

	got, err := catalog.Resolve("shared")
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)
}

/*
TestResolve_UnicodeCasing uses full Unicode lower-casing on both sides.
*/
func TestResolve_UnicodeCasing(t *testing.T) {
	catalog := language.NewCatalog(
		language.Language{ID: "1", Name: "Ölang", Slug: "olang"},
	)

	got, err := catalog.Resolve("ÖLANG")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

/*
TestResolve_Concurrent resolves from many goroutines at once; lower-casing state
must not be shared between calls.
*/
func TestResolve_Concurrent(t *testing.T) {
	catalog := language.NewCatalog(
		language.Language{ID: "1", Name: "Ölang", Slug: "olang"},
		language.Language{ID: "2", Name: "ΣΟΦΟΣ", Slug: "sofos"},
	)
	inputs := map[string]string{"ÖLANG": "1", "ΣΟΦΟΣ": "2", "SOFOS": "2", "olang": "1"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for input, want := range inputs {
			input, want := input, want
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := catalog.Resolve(input)
				if assert.NoError(t, err, input) {
					assert.Equal(t, want, got.ID, input)
				}
			}()
		}
	}
	wg.Wait()
}

/*
TestAll_StableOrder checks that enumeration is deterministic and detached from the catalog.
*/
func TestAll_StableOrder(t *testing.T) {
	catalog := newBuiltinCatalog()

	first := catalog.All()
	require.Len(t, first, 3)
	assert.Equal(t, []string{"python", "java", "cpp"}, catalog.Slugs())

	// Reordering the returned slice must not leak into the catalog.
	first[0], first[2] = first[2], first[0]

	second := catalog.All()
	require.Len(t, second, catalog.Len())
	assert.Equal(t, "python", second[0].Slug)
	assert.Equal(t, "cpp", second[2].Slug)
	for _, record := range second {
		assert.NotNil(t, record)
	}
}

/*
TestCatalog_UniqueKeys checks slug and case-insensitive name uniqueness.
*/
func TestCatalog_UniqueKeys(t *testing.T) {
	slugs := map[string]bool{}
	names := map[string]bool{}

	for _, record := range newBuiltinCatalog().All() {
		assert.False(t, slugs[record.Slug], "duplicate slug %q", record.Slug)
		assert.False(t, names[strings.ToLower(record.Name)], "duplicate name %q", record.Name)
		slugs[record.Slug] = true
		names[strings.ToLower(record.Name)] = true
	}
}

/*
TestResolve_RoundTrip checks that lookup hands back the catalog's own record.
*/
func TestResolve_RoundTrip(t *testing.T) {
	catalog := newBuiltinCatalog()

	for i, record := range catalog.All() {
		got, err := catalog.Resolve(record.Slug)
		require.NoError(t, err)
		assert.Equal(t, record.Slug, got.Slug)
		assert.Same(t, catalog.All()[i], got)
	}
}
