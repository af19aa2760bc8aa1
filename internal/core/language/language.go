/*
Package language holds the programming language catalog and the identifier resolver.

The catalog is a fixed, ordered set of [Language] records assembled once at startup and
shared read-only by every page render. [Catalog.Resolve] maps whatever identifier a
visitor typed into a URL ("cpp", "C++", "Python") onto one of those records.

Layers:

  - Catalog: the static in-memory store, satisfying [Repository].
  - Service: the read operations used by the site and the JSON API.
  - Handler: the JSON API under /api/v1/languages.
*/
package language

// Language is the descriptive profile of one programming language.
//
// Records are never mutated after the catalog is built. Callers receive pointers into
// the catalog and must treat them as read-only.
type Language struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Tagline         string     `json:"tagline"`
	Description     string     `json:"description"`
	LongDescription string     `json:"longDescription"`
	YearCreated     int        `json:"yearCreated"`
	Creator         string     `json:"creator"`
	Paradigm        []string   `json:"paradigm"`
	Typing          string     `json:"typing"`
	LatestVersion   string     `json:"latestVersion"`
	FileExtension   string     `json:"fileExtension"`
	Popularity      Popularity `json:"popularity"`
	UseCases        []string   `json:"useCases"`
	Features        []string   `json:"features"`
	CodeExample     string     `json:"codeExample"`
	Pros            []string   `json:"pros"`
	Cons            []string   `json:"cons"`
	Companies       []string   `json:"companies"`
	Color           string     `json:"color"`
	Icon            string     `json:"icon"`
}

// Popularity carries third-party rankings. Lower is better.
type Popularity struct {
	TIOBERank         int `json:"tiobeRank"`
	GitHubRank        int `json:"githubRank"`
	StackOverflowRank int `json:"stackOverflowRank"`
}
