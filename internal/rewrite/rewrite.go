package rewrite

import (
	"regexp"
	"strings"
)

// CompareVars are the query variables a matching permalink carries.
type CompareVars struct {
	TypeSlug  string
	Item1Slug string
	Item2Slug string
}

// The permalink pattern is comparez-<type>-<item1>-et-<item2>, optionally
// suffixed .html and optionally trailing-slashed. Slugs are single
// hyphen-free segments, exactly as the original rewrite rules matched.
var comparePattern = regexp.MustCompile(`^/comparez-([^/\-.]+)-([^/\-.]+)-et-([^/\-.]+)(?:\.html)?/?$`)

// ParseComparePath maps a request path to comparison query variables.
// Returns false for every path that is not a comparison permalink.
func ParseComparePath(path string) (*CompareVars, bool) {
	if !strings.HasPrefix(path, "/comparez-") {
		return nil, false
	}
	m := comparePattern.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	return &CompareVars{
		TypeSlug:  m[1],
		Item1Slug: m[2],
		Item2Slug: m[3],
	}, true
}

// ComparePath renders the canonical permalink path for a triple.
func ComparePath(typeSlug, item1Slug, item2Slug string) string {
	return "/comparez-" + typeSlug + "-" + item1Slug + "-et-" + item2Slug
}
