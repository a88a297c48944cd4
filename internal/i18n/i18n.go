package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	// LocaleFR is the default display language.
	LocaleFR = "fr"
	// LocaleEN is the secondary display language.
	LocaleEN = "en"
)

// Bundle holds the per-locale string tables and the fallback rules.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Load reads `<locale>.json` files from fsys for every supported locale.
// A missing file is tolerated for non-fallback locales.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{LocaleFR, LocaleEN}
	}
	if fallback == "" {
		fallback = supported[0]
	}

	b := &Bundle{
		dict:      map[string]map[string]string{},
		fallback:  fallback,
		supported: append([]string(nil), supported...),
	}

	tags := make([]language.Tag, 0, len(supported))
	for _, l := range supported {
		tags = append(tags, language.Make(l))
		raw, err := fs.ReadFile(fsys, l+".json")
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("i18n: load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("i18n: unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("i18n: fallback locale %s not loaded", fallback)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Supported returns the supported locale codes in a stable order.
func (b *Bundle) Supported() []string {
	out := append([]string(nil), b.supported...)
	sort.Strings(out)
	return out
}

// Fallback returns the configured default locale.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether code is one of the configured locales.
func (b *Bundle) IsSupported(code string) bool {
	for _, l := range b.supported {
		if l == code {
			return true
		}
	}
	return false
}

// T returns the translation for key in locale, falling back to the default
// table and finally the key itself.
func (b *Bundle) T(locale, key string) string {
	if locale != "" {
		if m, ok := b.dict[locale]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Table returns the full string table for locale, merged over the fallback
// table so templates never see missing keys.
func (b *Bundle) Table(locale string) map[string]string {
	merged := make(map[string]string, len(b.dict[b.fallback]))
	for k, v := range b.dict[b.fallback] {
		merged[k] = v
	}
	if locale != b.fallback {
		for k, v := range b.dict[locale] {
			merged[k] = v
		}
	}
	return merged
}

// Resolve validates a locale code taken from routing parameters; anything
// unsupported collapses to the fallback.
func (b *Bundle) Resolve(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if b.IsSupported(code) {
		return code
	}
	return b.fallback
}

// Negotiate picks the best supported locale for an Accept-Language header.
// Used only for the redirect from the bare site root.
func (b *Bundle) Negotiate(acceptLang string) string {
	if strings.TrimSpace(acceptLang) == "" {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	if idx >= 0 && idx < len(b.supported) {
		return b.supported[idx]
	}
	return b.fallback
}

// FromPath extracts the locale from the leading path segment, returning the
// locale and the remainder of the path. An unknown segment yields the
// fallback locale and the untouched path.
func (b *Bundle) FromPath(p string) (locale, rest string) {
	trimmed := strings.TrimPrefix(p, "/")
	seg, tail, _ := strings.Cut(trimmed, "/")
	if b.IsSupported(seg) {
		if tail == "" {
			return seg, "/"
		}
		return seg, "/" + tail
	}
	if p == "" {
		p = "/"
	}
	return b.fallback, p
}

// SwitchLocalePath rewrites the locale segment of p, preserving the rest of
// the path. Switching /fr/services to en yields /en/services.
func (b *Bundle) SwitchLocalePath(p, locale string) string {
	locale = b.Resolve(locale)
	_, rest := b.FromPath(p)
	if rest == "/" {
		return "/" + locale
	}
	return "/" + locale + rest
}
