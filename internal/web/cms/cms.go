// Package cms serves the static legal and informational pages from embedded
// markdown files with a YAML front matter block.
package cms

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound reports a slug with no markdown file in any candidate locale.
var ErrNotFound = errors.New("cms: page not found")

// Page is a rendered static page.
type Page struct {
	Slug      string
	Locale    string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
}

// Library renders markdown pages laid out as <locale>/<slug>.md under fsys.
// Rendered pages are cached for the process lifetime; the source is embedded
// and cannot change underneath us.
type Library struct {
	fsys     fs.FS
	fallback string
	markdown goldmark.Markdown
	policy   *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]Page
}

// NewLibrary builds a Library over fsys with the given fallback locale.
func NewLibrary(fsys fs.FS, fallback string) *Library {
	return &Library{
		fsys:     fsys,
		fallback: fallback,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
		cache:    map[string]Page{},
	}
}

// Get returns the page for slug in locale, falling back to the library's
// fallback locale when the localized file is missing.
func (l *Library) Get(slug, locale string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}

	key := locale + "|" + slug
	l.mu.RLock()
	page, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		return page, nil
	}

	candidates := []string{locale}
	if locale != l.fallback {
		candidates = append(candidates, l.fallback)
	}
	for _, candidate := range candidates {
		page, err := l.read(slug, candidate)
		if err == nil {
			l.mu.Lock()
			l.cache[key] = page
			l.mu.Unlock()
			return page, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return Page{}, err
	}
	return Page{}, ErrNotFound
}

// Slugs lists the page slugs available for locale.
func (l *Library) Slugs(locale string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, locale)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".md"))
	}
	return slugs, nil
}

func (l *Library) read(slug, locale string) (Page, error) {
	raw, err := fs.ReadFile(l.fsys, locale+"/"+slug+".md")
	if err != nil {
		return Page{}, err
	}

	fm, body := splitFrontMatter(string(raw))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("cms: front matter of %s/%s: %w", locale, slug, err)
		}
	}

	var rendered bytes.Buffer
	if err := l.markdown.Convert([]byte(body), &rendered); err != nil {
		return Page{}, fmt.Errorf("cms: render %s/%s: %w", locale, slug, err)
	}

	page := Page{
		Slug:    slug,
		Locale:  locale,
		Title:   front.Title,
		Summary: front.Summary,
		Body:    template.HTML(l.policy.SanitizeBytes(rendered.Bytes())),
	}
	if page.Title == "" {
		page.Title = slug
	}
	if front.UpdatedAt != "" {
		if ts, err := time.Parse("2006-01-02", front.UpdatedAt); err == nil {
			page.UpdatedAt = ts
		}
	}
	return page, nil
}

// splitFrontMatter separates an optional leading "---" delimited YAML block
// from the markdown body.
func splitFrontMatter(content string) (front, body string) {
	trimmed := strings.TrimLeft(content, "\uFEFF")
	if !strings.HasPrefix(trimmed, "---") {
		return "", content
	}
	rest := trimmed[3:]
	rest = strings.TrimPrefix(rest, "\r\n")
	rest = strings.TrimPrefix(rest, "\n")
	for _, delim := range []string{"\n---\n", "\n---\r\n", "\r\n---\r\n", "\r\n---\n"} {
		if idx := strings.Index(rest, delim); idx >= 0 {
			return rest[:idx], rest[idx+len(delim):]
		}
	}
	if strings.HasSuffix(rest, "\n---") {
		return strings.TrimSuffix(rest, "\n---"), ""
	}
	return "", content
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, r := range slug {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			continue
		}
		return ""
	}
	return slug
}
