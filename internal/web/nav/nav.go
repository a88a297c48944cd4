// Package nav builds the locale-prefixed primary navigation of the marketing
// site.
package nav

import "strings"

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/services"
	LabelKey string // i18n key, e.g. "nav.services"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/services", LabelKey: "nav.services"},
	{Path: "/produits", LabelKey: "nav.products"},
	{Path: "/formations", LabelKey: "nav.trainings"},
	{Path: "/technologies", LabelKey: "nav.technologies"},
	{Path: "/a-propos", LabelKey: "nav.about"},
	{Path: "/actualites", LabelKey: "nav.news"},
	{Path: "/recrutement", LabelKey: "nav.recruitment"},
	{Path: "/contact", LabelKey: "nav.contact"},
}

// Translator resolves an i18n key for a locale.
type Translator interface {
	T(locale, key string) string
}

// Build renders the navigation for locale with active state computed from
// the locale-stripped current path.
func Build(tr Translator, locale, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   Href(locale, it.Path),
			Label:  tr.T(locale, it.LabelKey),
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

// Href joins a locale and a locale-relative path into a routable href.
func Href(locale, path string) string {
	if path == "" || path == "/" {
		return "/" + locale
	}
	return "/" + locale + path
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}
