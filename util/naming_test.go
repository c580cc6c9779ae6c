package util

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestKeyToIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// snake case
		{
			name:     "simple snake case",
			input:    "user_name",
			expected: "userName",
		},
		{
			name:     "single letter words",
			input:    "a_b_c",
			expected: "aBC",
		},
		{
			name:     "welcome title",
			input:    "welcome_title",
			expected: "welcomeTitle",
		},
		{
			name:     "first word fully lowered",
			input:    "HTTP_error",
			expected: "httpError",
		},
		{
			name:     "rest of following words unchanged",
			input:    "login_errorMessage_TITLE",
			expected: "loginErrorMessageTITLE",
		},
		{
			name:     "numbers",
			input:    "error_404_title",
			expected: "error404Title",
		},

		// no separator
		{
			name:     "pascal case",
			input:    "UserName",
			expected: "userName",
		},
		{
			name:     "already camel case",
			input:    "userName",
			expected: "userName",
		},
		{
			name:     "only first character lowered",
			input:    "URLPath",
			expected: "uRLPath",
		},
		{
			name:     "dotted key",
			input:    "Settings.Title",
			expected: "settings.Title",
		},
		{
			name:     "non ascii first character",
			input:    "Übersicht",
			expected: "übersicht",
		},

		// edge cases
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "double separator",
			input:    "user__name",
			expected: "userName",
		},
		{
			name:     "trailing separator",
			input:    "user_",
			expected: "user",
		},
		{
			name:     "leading separator",
			input:    "_user",
			expected: "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := KeyToIdentifier(tt.input)
			if result != tt.expected {
				t.Errorf("KeyToIdentifier(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestKeyToIdentifierWithoutSeparatorOnlyLowersFirstCharacter(t *testing.T) {
	keys := []string{"Title", "ABC", "okButton", "X", "Ça", "A1B2", "Hello.World"}

	for _, key := range keys {
		result := KeyToIdentifier(key)
		r, size := utf8.DecodeRuneInString(key)
		want := string(unicode.ToLower(r)) + key[size:]
		if result != want {
			t.Errorf("KeyToIdentifier(%q) = %q, want %q", key, result, want)
		}
		if strings.Contains(result, KeySeparator) {
			t.Errorf("KeyToIdentifier(%q) = %q contains separator", key, result)
		}
	}
}

func TestNamingStyle(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		input    string
		expected string
		ok       bool
	}{
		{name: "default", style: "", input: "user_name", expected: "userName", ok: true},
		{name: "swiftgen", style: "swiftgen", input: "URLPath", expected: "uRLPath", ok: true},
		{name: "case insensitive", style: "SwiftGen", input: "user_name", expected: "userName", ok: true},
		{name: "camel", style: "camel", input: "user_name", expected: "userName", ok: true},
		{name: "camel kebab", style: "camel", input: "user-name", expected: "userName", ok: true},
		{name: "unknown", style: "pascal", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := NamingStyle(tt.style)
			if ok != tt.ok {
				t.Fatalf("NamingStyle(%q) ok = %v, want %v", tt.style, ok, tt.ok)
			}
			if !ok {
				return
			}
			if result := fn(tt.input); result != tt.expected {
				t.Errorf("%s(%q) = %q, want %q", tt.style, tt.input, result, tt.expected)
			}
		})
	}
}
