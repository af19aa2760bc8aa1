package language

import (
	"fmt"
	"strings"

	"github.com/codeninjahub/codeninjahub/internal/platform/validate"
	"github.com/codeninjahub/codeninjahub/pkg/slug"
)

// Validate checks the data-authoring contract of every record.
//
// The resolver never calls it: a malformed record is an authoring mistake caught by
// tests and by the validate command, not a runtime condition.
func (catalog *Catalog) Validate() error {
	v := &validate.Validator{}

	seenIDs := make(map[string]int)
	seenSlugs := make(map[string]int)
	seenNames := make(map[string]int)

	for i, record := range catalog.records {
		field := func(name string) string {
			return fmt.Sprintf("languages[%d].%s", i, name)
		}

		v.Required(field("id"), record.ID).
			Required(field("name"), record.Name).
			Required(field("slug"), record.Slug).
			Custom(field("slug"), record.Slug != "" && !slug.IsCanonical(record.Slug),
				"Must be a lower-case URL slug").
			Required(field("tagline"), record.Tagline).
			Required(field("description"), record.Description).
			Required(field("longDescription"), record.LongDescription).
			Range(field("yearCreated"), record.YearCreated, 1000, 9999).
			Required(field("creator"), record.Creator).
			NotEmpty(field("paradigm"), record.Paradigm).
			Required(field("typing"), record.Typing).
			Required(field("latestVersion"), record.LatestVersion).
			Custom(field("fileExtension"), len(record.FileExtension) < 2 || !strings.HasPrefix(record.FileExtension, "."),
				"Must start with '.'").
			Custom(field("popularity.tiobeRank"), record.Popularity.TIOBERank < 1, "Must be a positive rank").
			Custom(field("popularity.githubRank"), record.Popularity.GitHubRank < 1, "Must be a positive rank").
			Custom(field("popularity.stackOverflowRank"), record.Popularity.StackOverflowRank < 1, "Must be a positive rank").
			NotEmpty(field("useCases"), record.UseCases).
			NotEmpty(field("features"), record.Features).
			Required(field("codeExample"), record.CodeExample).
			NotEmpty(field("pros"), record.Pros).
			NotEmpty(field("cons"), record.Cons).
			NotEmpty(field("companies"), record.Companies).
			HexColor(field("color"), record.Color).
			Required(field("icon"), record.Icon).
			MaxLen(field("icon"), record.Icon, 4)

		if first, ok := seenIDs[record.ID]; ok {
			v.Custom(field("id"), true, fmt.Sprintf("Duplicates languages[%d].id", first))
		} else {
			seenIDs[record.ID] = i
		}

		if first, ok := seenSlugs[lower(record.Slug)]; ok {
			v.Custom(field("slug"), true, fmt.Sprintf("Duplicates languages[%d].slug", first))
		} else {
			seenSlugs[lower(record.Slug)] = i
		}

		if first, ok := seenNames[lower(record.Name)]; ok {
			v.Custom(field("name"), true, fmt.Sprintf("Duplicates languages[%d].name", first))
		} else {
			seenNames[lower(record.Name)] = i
		}

		// Both lookup keys must lead back to this record, otherwise an earlier
		// record shadows it.
		if resolved, err := catalog.Resolve(record.Slug); err != nil || resolved != record {
			v.Custom(field("slug"), true, "Does not resolve to its own record")
		}
		if resolved, err := catalog.Resolve(record.Name); err != nil || resolved != record {
			v.Custom(field("name"), true, "Does not resolve to its own record")
		}
	}

	return v.Err()
}
