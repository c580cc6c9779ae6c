package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// KeySeparator separates the words of a snake_case resource key
const KeySeparator = "_"

// NamingFunc converts a resource key to the identifier SwiftGen generates for it
type NamingFunc func(key string) string

const (
	NamingSwiftGen = "swiftgen"
	NamingCamel    = "camel"
)

// NamingStyle returns the naming function registered under name. An empty name
// selects the SwiftGen style.
func NamingStyle(name string) (NamingFunc, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NamingSwiftGen:
		return KeyToIdentifier, true
	case NamingCamel:
		return strcase.ToLowerCamel, true
	default:
		return nil, false
	}
}

// KeyToIdentifier converts a Localizable.strings key to a lowerCamelCase identifier.
// Keys without separator are considered to be in camel case already and only get
// their first character lowered, e.g. "UserName" -> "userName". Otherwise the first
// word is lowered and every following word gets an upper case first character,
// e.g. "user_name" -> "userName".
func KeyToIdentifier(key string) string {
	if !strings.Contains(key, KeySeparator) {
		return lowerFirst(key)
	}

	parts := strings.Split(key, KeySeparator)
	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString(upperFirst(part))
	}

	return b.String()
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
