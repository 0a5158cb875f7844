package rewrite

import "testing"

func TestParseComparePathMatches(t *testing.T) {
	paths := []string{
		"/comparez-prevoyance-senseo-et-aviva",
		"/comparez-prevoyance-senseo-et-aviva.html",
		"/comparez-prevoyance-senseo-et-aviva/",
		"/comparez-prevoyance-senseo-et-aviva.html/",
	}
	for _, p := range paths {
		vars, ok := ParseComparePath(p)
		if !ok {
			t.Fatalf("ParseComparePath(%q): expected match", p)
		}
		if vars.TypeSlug != "prevoyance" || vars.Item1Slug != "senseo" || vars.Item2Slug != "aviva" {
			t.Fatalf("ParseComparePath(%q): unexpected vars %+v", p, vars)
		}
	}
}

func TestParseComparePathRejects(t *testing.T) {
	paths := []string{
		"/",
		"/healthcheck",
		"/comparez-",
		"/comparez-prevoyance-senseo",
		"/comparez-prevoyance-senseo-aviva",
		"/comparez-prevoyance-senseo-et-aviva/extra",
		"/comparez-prevoyance-senseo-et-aviva.php",
		"/other-prevoyance-senseo-et-aviva",
	}
	for _, p := range paths {
		if _, ok := ParseComparePath(p); ok {
			t.Fatalf("ParseComparePath(%q): expected no match", p)
		}
	}
}

func TestComparePathRoundTrip(t *testing.T) {
	path := ComparePath("prevoyance", "senseo", "aviva")
	vars, ok := ParseComparePath(path)
	if !ok {
		t.Fatalf("ParseComparePath(%q): expected match", path)
	}
	if vars.TypeSlug != "prevoyance" || vars.Item1Slug != "senseo" || vars.Item2Slug != "aviva" {
		t.Fatalf("round trip vars: %+v", vars)
	}
}
