package lib

import (
	"regexp"
	"strings"
)

// Runs of anything outside [a-z0-9_] collapse into a single hyphen
var nonWordRun = regexp.MustCompile(`[^a-z0-9_]+`)

// Slugify normalizes a display name into a URL slug. The operation is
// idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonWordRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueHash computes the deduplication key used by the upsert paths.
// An explicit slug wins; otherwise the key derives from the name.
func UniqueHash(name, slug string) string {
	if slug != "" {
		return slug
	}
	return Slugify(name)
}
