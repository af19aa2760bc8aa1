package site

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.gohtml static/* content/*.md
var assets embed.FS

// Static returns the files served under /static/.
func Static() fs.FS {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return static
}
