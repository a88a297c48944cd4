package cms

import (
	"embed"
	"io/fs"
)

//go:embed content
var embeddedContent embed.FS

// DefaultContent exposes the embedded markdown tree rooted at the locale
// directories.
func DefaultContent() fs.FS {
	sub, err := fs.Sub(embeddedContent, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
