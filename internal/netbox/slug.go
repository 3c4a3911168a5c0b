package netbox

import "strings"

// Slugify derives the URL slug NetBox expects from a human-readable name:
// lowercased, with underscores replaced by hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}
