// Package locales embeds the translation tables of the marketing site.
package locales

import (
	"embed"
	"io/fs"
)

//go:embed *.json
var files embed.FS

// FS returns the embedded locale files.
func FS() fs.FS { return files }
