// Package i18n resolves user-facing error messages for the locales the
// FuniqAI backend supports. Only the "error" namespace is bundled here;
// page-level translation strings belong to the consuming application.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

// FallbackLocale is used whenever no locale cookie is set or the stored
// value is not one of the supported locales.
const FallbackLocale = "en"

// CookieName is the cookie the locale is persisted under, shared with the
// web frontend.
const CookieName = "i18next"

// Locales enumerates the supported locale codes.
var Locales = []string{FallbackLocale, "zh-CN"}

// Normalize maps an arbitrary locale string onto a supported locale,
// falling back to FallbackLocale for unknown or empty values.
func Normalize(locale string) string {
	for _, l := range Locales {
		if l == locale {
			return l
		}
	}
	return FallbackLocale
}

// Translator resolves a message key for a locale. An empty string means
// the key is unknown, letting callers apply their own fallback key.
type Translator interface {
	Translate(locale, key string) string
}

// UndefinedErrorKey resolves the generic message shown when a business
// error code has no translation.
const UndefinedErrorKey = "undefined_error"

// HTTPStatusKey builds the message key for an HTTP-level failure,
// e.g. HTTPStatusKey(404) == "HCODE404".
func HTTPStatusKey(status int) string {
	return fmt.Sprintf("HCODE%d", status)
}

//go:embed locales/*.json
var localeFS embed.FS

// Bundle is the built-in Translator backed by the embedded error
// namespace tables.
type Bundle struct {
	tables map[string]map[string]string
}

// NewBundle loads the embedded translation tables for every supported
// locale.
func NewBundle() (*Bundle, error) {
	tables := make(map[string]map[string]string, len(Locales))
	for _, locale := range Locales {
		raw, err := localeFS.ReadFile("locales/" + locale + ".json")
		if err != nil {
			return nil, fmt.Errorf("[NewBundle] read locale %q: %w", locale, err)
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("[NewBundle] parse locale %q: %w", locale, err)
		}
		tables[locale] = table
	}
	return &Bundle{tables: tables}, nil
}

// MustBundle is NewBundle for package-level initialisation; the embedded
// tables are part of the build, so a failure here is a programming error.
func MustBundle() *Bundle {
	b, err := NewBundle()
	if err != nil {
		panic(err)
	}
	return b
}

// Translate looks the key up in the locale's table, then in the fallback
// locale's table. Returns "" when the key is unknown in both.
func (b *Bundle) Translate(locale, key string) string {
	if msg, ok := b.tables[Normalize(locale)][key]; ok {
		return msg
	}
	if msg, ok := b.tables[FallbackLocale][key]; ok {
		return msg
	}
	return ""
}

var _ Translator = (*Bundle)(nil)
