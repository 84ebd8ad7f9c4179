package config

import "strings"

// DefaultLanguages is used when no babel languages are configured. Babel
// activates the last one by default.
func DefaultLanguages() []string {
	return []string{"english", "russian"}
}

// ParseLanguages splits a comma-separated babel language list. An empty list
// yields the defaults.
func ParseLanguages(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return DefaultLanguages()
	}
	return out
}
