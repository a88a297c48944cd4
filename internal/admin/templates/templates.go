// Package templates renders the admin back-office views from embedded
// html/template files. Every page file defines a "content" block executed
// inside the shared layout.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
)

//go:embed layout.tmpl pages/*.tmpl
var files embed.FS

var funcMap = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02/01/2006 15:04")
	},
	"safeDescription": joboffers.SafeDescription,
	"safeList":        joboffers.SafeList,
}

var pages = mustParsePages()

func mustParsePages() map[string]*template.Template {
	layout := template.Must(
		template.New("layout.tmpl").Funcs(funcMap).ParseFS(files, "layout.tmpl"),
	)

	entries, err := fs.ReadDir(files, "pages")
	if err != nil {
		panic(fmt.Errorf("templates: read pages: %w", err))
	}

	parsed := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		clone := template.Must(layout.Clone())
		parsed[name] = template.Must(clone.ParseFS(files, path.Join("pages", entry.Name())))
	}
	return parsed
}

// Render executes the named page inside the layout.
func Render(w io.Writer, page string, data any) error {
	t, ok := pages[page]
	if !ok {
		return fmt.Errorf("templates: unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("templates: render %s: %w", page, err)
	}
	return nil
}
