// Package i18n provides the localized string table for the interactive
// console surface. Catalogs are YAML files embedded at build time, one per
// supported language, loaded once at startup into an immutable lookup
// table keyed by dotted paths (e.g. "search.found").
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// DefaultLanguage is the fallback language for unsupported languages and
// keys missing from a non-default catalog.
const DefaultLanguage = "en"

// Translator resolves dotted translation keys to localized strings.
// It is immutable after New and safe for sequential reuse across queries.
type Translator struct {
	catalogs map[string]map[string]string
}

// New loads every embedded catalog. The catalog file stem is the language
// code (en.yaml -> "en"). It fails if the default language catalog is
// missing or any catalog does not parse, since a broken string table would
// make every prompt unreadable.
func New() (*Translator, error) {
	catalogs := make(map[string]map[string]string)

	entries, err := fs.ReadDir(catalogFS, "catalog")
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	for _, e := range entries {
		lang := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))

		raw, err := catalogFS.ReadFile("catalog/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", e.Name(), err)
		}

		var nested map[string]any
		if err := yaml.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", e.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		catalogs[lang] = flat
	}

	if _, ok := catalogs[DefaultLanguage]; !ok {
		return nil, fmt.Errorf("default language catalog %q not embedded", DefaultLanguage)
	}

	return &Translator{catalogs: catalogs}, nil
}

// Supported reports whether a catalog exists for the given language code.
func (tr *Translator) Supported(lang string) bool {
	_, ok := tr.catalogs[lang]
	return ok
}

// Languages returns the supported language codes.
func (tr *Translator) Languages() []string {
	langs := make([]string, 0, len(tr.catalogs))
	for lang := range tr.catalogs {
		langs = append(langs, lang)
	}
	return langs
}

// T resolves key in the given language, interpolating {name} placeholders
// from vars. Lookup falls back to the default language when the key is
// missing from the requested catalog or the language is unsupported. A key
// missing from the default catalog too is a programming error; it is
// logged and rendered as a visible marker instead of the raw key.
func (tr *Translator) T(lang, key string, vars map[string]any) string {
	template, ok := tr.lookup(lang, key)
	if !ok {
		template, ok = tr.lookup(DefaultLanguage, key)
	}
	if !ok {
		slog.Warn("missing translation key",
			slog.String("language", lang),
			slog.String("key", key))
		return "[missing translation: " + key + "]"
	}

	return interpolate(template, vars)
}

func (tr *Translator) lookup(lang, key string) (string, bool) {
	catalog, ok := tr.catalogs[lang]
	if !ok {
		return "", false
	}
	value, ok := catalog[key]
	return value, ok
}

// flatten converts a nested YAML mapping into dotted-path keys.
// Non-string leaves are stringified with fmt.Sprint.
func flatten(prefix string, nested map[string]any, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch value := v.(type) {
		case map[string]any:
			flatten(key, value, out)
		case string:
			out[key] = value
		default:
			out[key] = fmt.Sprint(value)
		}
	}
}

// interpolate substitutes {name} placeholders with values from vars.
// Unknown placeholders are left verbatim so mistakes stay visible.
func interpolate(template string, vars map[string]any) string {
	if len(vars) == 0 {
		return template
	}

	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
