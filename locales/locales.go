// Package locales embeds the message catalogue of the tool.
package locales

import (
	"embed"
	"strings"

	"github.com/napalu/goopt/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed json/*.json
var localesFS embed.FS

// NewBundle loads every embedded catalogue into a new bundle with English as default language
func NewBundle() (*i18n.Bundle, error) {
	return i18n.NewBundleWithFS(localesFS, "json")
}

// ParseLanguage maps a short language code to one of the embedded languages.
// language.Und is returned for unsupported codes.
func ParseLanguage(lang string) language.Tag {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return language.English
	case "de":
		return language.German
	case "fr":
		return language.French
	default:
		return language.Und
	}
}
