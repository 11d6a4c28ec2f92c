package gamedata

import "strings"

// NormalizeName turns a display name or identifier into a lookup key:
// lowercase with spaces and hyphens replaced by underscores.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}
