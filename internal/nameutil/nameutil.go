// Package nameutil validates and sanitizes snippet names.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLen caps snippet name length in runes. Long names break list and
// TUI rendering and are almost always paste accidents.
const MaxNameLen = 128

// ValidateName checks whether the provided name is acceptable for a snippet.
// It trims and checks for empty names, length, and non-UTF8 bytes. It does
// NOT mutate the input; use SanitizeName first when cleanup is desired.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("invalid name: name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid name: contains invalid encoding")
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return fmt.Errorf("invalid name: longer than %d characters", MaxNameLen)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid name: contains control character U+%04X (%q)", r, r)
		}
	}
	return nil
}

// SanitizeName removes control characters and zero-width characters commonly
// introduced by copy/paste (e.g., U+200B), trims surrounding whitespace, and
// reports whether any change was made.
func SanitizeName(name string) (string, bool) {
	if name == "" {
		return name, false
	}
	runes := []rune(name)
	out := make([]rune, 0, len(runes))
	changed := false
	for _, r := range runes {
		if unicode.IsControl(r) {
			changed = true
			continue
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			changed = true
			continue
		}
		out = append(out, r)
	}
	res := strings.TrimSpace(string(out))
	if res != name {
		changed = true
	}
	return res, changed
}
