// Package site holds the embedded static assets served under /static.
package site

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// Static returns the asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
