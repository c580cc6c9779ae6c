// Package localizable reads Localizable.strings resource files and maps their keys
// to the constants SwiftGen generates for them.
package localizable

import (
	"regexp"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// entryPattern matches `"key" = "value";` entries; only the key is captured
var entryPattern = regexp.MustCompile(`"([^"]+)"\s*=\s*"[^"]*"\s*;`)

// ParseKeys returns the keys of all entries in content in file order. Duplicate
// keys are kept; anything that does not look like an entry is ignored.
func ParseKeys(content string) []string {
	matches := entryPattern.FindAllStringSubmatch(content, -1)
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m[1])
	}
	return keys
}

// Decode converts the raw bytes of a resource file to a string. A byte order mark
// selects UTF-16 (big or little endian) or is stripped for UTF-8; without one the
// content is read as UTF-8.
func Decode(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
