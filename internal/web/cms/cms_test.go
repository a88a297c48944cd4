package cms

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const samplePage = `---
title: Mentions légales
summary: Informations légales.
updated_at: 2025-11-04
---

## Éditeur

Le site est édité par **AISSIA Security**.
`

func TestGetParsesFrontMatterAndBody(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(fstest.MapFS{
		"fr/mentions-legales.md": {Data: []byte(samplePage)},
	}, "fr")

	page, err := lib.Get("mentions-legales", "fr")
	require.NoError(t, err)
	require.Equal(t, "Mentions légales", page.Title)
	require.Equal(t, "Informations légales.", page.Summary)
	require.Equal(t, 2025, page.UpdatedAt.Year())
	require.Contains(t, string(page.Body), "<h2")
	require.Contains(t, string(page.Body), "<strong>AISSIA Security</strong>")
}

func TestGetFallsBackToDefaultLocale(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(fstest.MapFS{
		"fr/mentions-legales.md": {Data: []byte(samplePage)},
	}, "fr")

	page, err := lib.Get("mentions-legales", "en")
	require.NoError(t, err)
	require.Equal(t, "fr", page.Locale)
}

func TestGetUnknownSlug(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(fstest.MapFS{}, "fr")
	_, err := lib.Get("missing", "fr")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetRejectsPathTraversal(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(fstest.MapFS{
		"fr/mentions-legales.md": {Data: []byte(samplePage)},
	}, "fr")

	_, err := lib.Get("../fr/mentions-legales", "fr")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBodySanitized(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(fstest.MapFS{
		"fr/page.md": {Data: []byte("Texte <script>alert(1)</script> sûr.\n")},
	}, "fr")

	page, err := lib.Get("page", "fr")
	require.NoError(t, err)
	require.NotContains(t, string(page.Body), "<script>")
	require.Contains(t, string(page.Body), "sûr")
}

func TestPageWithoutFrontMatter(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(fstest.MapFS{
		"fr/brut.md": {Data: []byte("Juste du texte.\n")},
	}, "fr")

	page, err := lib.Get("brut", "fr")
	require.NoError(t, err)
	require.Equal(t, "brut", page.Title)
	require.Contains(t, string(page.Body), "Juste du texte.")
}

func TestEmbeddedContentComplete(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(DefaultContent(), "fr")
	for _, locale := range []string{"fr", "en"} {
		for _, slug := range []string{"mentions-legales", "politique-confidentialite", "conditions-generales"} {
			page, err := lib.Get(slug, locale)
			require.NoError(t, err, "%s/%s", locale, slug)
			require.NotEmpty(t, page.Title)
			require.NotEmpty(t, string(page.Body))
		}
	}
}
