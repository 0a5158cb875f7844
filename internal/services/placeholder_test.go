package services

import (
	"testing"

	"github.com/assurcompare/comparator-backend/internal/types"
)

func TestSubstitutePlaceholders(t *testing.T) {
	item1 := &types.ComparatorItem{Name: "Senseo", Contrat: "Senseo", Assureur: "Aviva"}
	item2 := &types.ComparatorItem{Name: "Prévoyance+", Contrat: "Prévoyance+", Assureur: "April"}

	got := SubstitutePlaceholders("{contrat1} by {assureur1} vs {contrat2} by {assureur2}", item1, item2)
	want := "Senseo by Aviva vs Prévoyance+ by April"
	if got != want {
		t.Fatalf("substitution: want=%q got=%q", want, got)
	}
}

func TestSubstitutePlaceholdersFallbacks(t *testing.T) {
	item1 := &types.ComparatorItem{Name: "Senseo"}
	item2 := &types.ComparatorItem{Name: "Autre", Contrat: "  "}

	got := SubstitutePlaceholders("{contrat1}/{assureur1} - {contrat2}/{assureur2}", item1, item2)
	want := "Senseo/N/A - Autre/N/A"
	if got != want {
		t.Fatalf("fallbacks: want=%q got=%q", want, got)
	}

	got = SubstitutePlaceholders("v[{version1}] t[{territorialite2}]", item1, item2)
	if got != "v[] t[]" {
		t.Fatalf("blank version/territoriality: got=%q", got)
	}
}

func TestSubstitutePlaceholdersLeavesUnknownTokens(t *testing.T) {
	item := &types.ComparatorItem{Name: "Senseo", Contrat: "Senseo", Assureur: "Aviva"}
	got := SubstitutePlaceholders("{contrat1} {inconnu} {contrat3}", item, item)
	if got != "Senseo {inconnu} {contrat3}" {
		t.Fatalf("unknown tokens: got=%q", got)
	}
}

func TestSubstitutePlaceholdersNilItems(t *testing.T) {
	tpl := "{contrat1} et {contrat2}"
	if got := SubstitutePlaceholders(tpl, nil, nil); got != tpl {
		t.Fatalf("nil items: want template back, got=%q", got)
	}
	if got := SubstitutePlaceholders("", &types.ComparatorItem{}, &types.ComparatorItem{}); got != "" {
		t.Fatalf("empty template: got=%q", got)
	}
}
