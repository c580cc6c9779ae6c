// Package rewrite replaces localization calls in source files with references to
// generated constants.
package rewrite

import "regexp"

// DefaultFunction is the localization call that gets replaced
const DefaultFunction = "NSLocalizedString"

// Pattern recognizes one textual shape of a localization call. The first capture
// group of Regexp must be the key.
type Pattern struct {
	Name   string
	Regexp *regexp.Regexp
}

// DefaultPatterns returns the recognized call shapes for function, in the order they
// are applied:
//
//	general: fn("key", bundle: ..., tableName: ..., comment: "...")
//	simple:  fn("key", comment: "...")
//
// The general pattern also covers the simple form; the second pass only picks up
// what the first one left behind.
func DefaultPatterns(function string) []Pattern {
	if function == "" {
		function = DefaultFunction
	}
	fn := regexp.QuoteMeta(function)

	return []Pattern{
		{
			Name:   "general",
			Regexp: regexp.MustCompile(fn + `\s*\(\s*"([^"]+)"(?:\s*,\s*(?:bundle|tableName):\s*[^,]+)*\s*,\s*comment:\s*"[^"]*"\s*\)`),
		},
		{
			Name:   "simple",
			Regexp: regexp.MustCompile(fn + `\s*\(\s*"([^"]+)"\s*,\s*comment:\s*"[^"]*"\s*\)`),
		},
	}
}

// replaceCalls calls replace for every match of re in content with the full call
// text and the captured key, and substitutes the call with its return value
func replaceCalls(re *regexp.Regexp, content string, replace func(call, key string) string) string {
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b []byte
	last := 0
	for _, m := range matches {
		b = append(b, content[last:m[0]]...)
		b = append(b, replace(content[m[0]:m[1]], content[m[2]:m[3]])...)
		last = m[1]
	}
	b = append(b, content[last:]...)

	return string(b)
}
