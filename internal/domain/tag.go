package domain

import "strings"

// NormalizeTag returns the canonical form of a clan or player tag: trimmed,
// uppercased and prefixed with '#'.
func NormalizeTag(tag string) string {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	return tag
}
