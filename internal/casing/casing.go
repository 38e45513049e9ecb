// Package casing converts option names between dash-case and camelCase.
// Used by the alias graph for derived aliases and by env var key mapping.
package casing

import (
	"regexp"
	"strings"
	"unicode"
)

// CamelCase converts "foo-bar" or "FOO_BAR" into "fooBar".
// Mixed-case input keeps its casing, leading hyphens are dropped.
func CamelCase(s string) string {
	isCamel := s != strings.ToLower(s) && s != strings.ToUpper(s)
	if !isCamel {
		s = strings.ToLower(s)
	}
	if !strings.ContainsAny(s, "-_") {
		return s
	}

	runes := []rune(s)
	start := 0
	for start < len(runes) && runes[start] == '-' {
		start++
	}

	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		if upperNext {
			upperNext = false
			r = unicode.ToUpper(r)
		}
		if i != 0 && (r == '-' || r == '_') {
			upperNext = true
			continue
		}
		if r != '-' && r != '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	lowerUpperRe = regexp.MustCompile(`([a-z\d])([A-Z])`)
	acronymRe    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z\d]+)`)
)

// Decamelize converts "fooBar" into "foo<sep>bar" and "maxHTTPConns" into
// "max<sep>http<sep>conns". The result is lowercase.
func Decamelize(s string, sep string) string {
	if sep == "" {
		sep = "-"
	}
	s = lowerUpperRe.ReplaceAllString(s, "${1}"+sep+"${2}")
	s = acronymRe.ReplaceAllString(s, "${1}"+sep+"${2}")
	return strings.ToLower(s)
}

// HasUpper reports whether s contains an ASCII uppercase letter.
func HasUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			return true
		}
	}
	return false
}
