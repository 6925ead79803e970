package views

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the site assets, rooted so that "css/style.css" is
// served at /static/css/style.css.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // embedded at build time
	}
	return sub
}
