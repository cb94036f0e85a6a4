package models

import "strings"

// Slugify derives the default slug of a title or name: lowercased, with
// every space replaced by a hyphen.
func Slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}
