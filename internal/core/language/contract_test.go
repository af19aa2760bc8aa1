package language_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
	"github.com/codeninjahub/codeninjahub/internal/platform/apperr"
)

func validRecord(id, name, slug string) language.Language {
	return language.Language{
		ID:              id,
		Name:            name,
		Slug:            slug,
		Tagline:         "Tagline",
		Description:     "Description",
		LongDescription: "Long description",
		YearCreated:     2009,
		Creator:         "Someone",
		Paradigm:        []string{"Concurrent"},
		Typing:          "Static, Strong",
		LatestVersion:   "1.0",
		FileExtension:   ".x",
		Popularity:      language.Popularity{TIOBERank: 1, GitHubRank: 1, StackOverflowRank: 1},
		UseCases:        []string{"Servers"},
		Features:        []string{"Fast builds"},
		CodeExample:     "print 1",
		Pros:            []string{"Simple"},
		Cons:            []string{"Verbose errors"},
		Companies:       []string{"Acme"},
		Color:           "#00ADD8",
		Icon:            "🐹",
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)

	fields := make([]string, 0, len(ae.Details))
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	return fields
}

/*
TestValidate_Builtin keeps the shipped data inside its authoring contract.
*/
func TestValidate_Builtin(t *testing.T) {
	assert.NoError(t, newBuiltinCatalog().Validate())
}

/*
TestValidate_FieldRules reports each broken field by its path.
*/
func TestValidate_FieldRules(t *testing.T) {
	broken := validRecord("1", "Go", "go")
	broken.Slug = "Go Lang"
	broken.FileExtension = "go"
	broken.Color = "blue"
	broken.Features = nil
	broken.Popularity.GitHubRank = 0

	fields := fieldsOf(t, language.NewCatalog(broken).Validate())

	assert.Contains(t, fields, "languages[0].slug")
	assert.Contains(t, fields, "languages[0].fileExtension")
	assert.Contains(t, fields, "languages[0].color")
	assert.Contains(t, fields, "languages[0].features")
	assert.Contains(t, fields, "languages[0].popularity.githubRank")
}

/*
TestValidate_Duplicates rejects repeated slugs and case-insensitive names.
*/
func TestValidate_Duplicates(t *testing.T) {
	catalog := language.NewCatalog(
		validRecord("1", "Go", "go"),
		validRecord("2", "GO", "go"),
	)

	fields := fieldsOf(t, catalog.Validate())
	assert.Contains(t, fields, "languages[1].slug")
	assert.Contains(t, fields, "languages[1].name")
}

/*
TestValidate_Shadowed rejects a record whose name is captured by an earlier slug.
*/
func TestValidate_Shadowed(t *testing.T) {
	catalog := language.NewCatalog(
		validRecord("1", "Golang", "go"),
		validRecord("2", "Go", "go-lang"),
	)

	fields := fieldsOf(t, catalog.Validate())
	assert.Equal(t, []string{"languages[1].name"}, fields)
}
