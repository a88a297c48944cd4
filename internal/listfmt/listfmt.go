// Package listfmt converts freeform recruitment text (profiles, conditions)
// to and from the HTML unordered-list representation stored by the backend.
package listfmt

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// NormalizeHTMLList renders freeform text as an HTML unordered list.
// Input that already carries list markup passes through unchanged. Plain
// text splits on newlines; a single line containing hyphen-separated
// segments splits on the hyphens instead. Empty input yields an empty
// string. Items are escaped (&, <, >) before wrapping.
func NormalizeHTMLList(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "<ul") || strings.Contains(lower, "<li") {
		return text
	}

	items := nonEmptyLines(trimmed)
	if len(items) == 1 && strings.Contains(items[0], "-") {
		items = splitTrim(items[0], "-")
	}
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(htmlEscaper.Replace(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}

// SplitListItems is the editor-side inverse: it extracts discrete line items
// from stored markup. HTML input yields the text of each <li>; plain text
// splits on newlines when several are present, then commas, else the whole
// string is a single item.
func SplitListItems(input string) []string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	if strings.Contains(strings.ToLower(trimmed), "<li") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
		if err != nil {
			return []string{trimmed}
		}
		var items []string
		doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				items = append(items, text)
			}
		})
		return items
	}

	if lines := nonEmptyLines(trimmed); len(lines) > 1 {
		return lines
	}
	if strings.Contains(trimmed, ",") {
		return splitTrim(trimmed, ",")
	}
	return []string{trimmed}
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitTrim(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
