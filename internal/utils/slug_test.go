package utils

import "testing"

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"prevoyance", "prevoyance"},
		{"  Prévoyance  ", "prevoyance"},
		{"Prévoyance+", "prevoyance"},
		{"Crédit Agricole", "credit-agricole"},
		{"senseo__v2", "senseo-v2"},
		{"--aviva--", "aviva"},
		{"ÉÈÊ àçù", "eee-acu"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := NormalizeSlug(c.in); got != c.want {
			t.Fatalf("NormalizeSlug(%q): want=%q got=%q", c.in, c.want, got)
		}
	}
}

func TestNormalizeSlugIdempotent(t *testing.T) {
	inputs := []string{"Prévoyance Madelin", "senseo", "  AVIVA Vie  "}
	for _, in := range inputs {
		once := NormalizeSlug(in)
		if twice := NormalizeSlug(once); twice != once {
			t.Fatalf("NormalizeSlug not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
