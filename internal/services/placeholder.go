package services

import (
	"strings"

	"github.com/assurcompare/comparator-backend/internal/types"
)

// SubstitutePlaceholders replaces the fixed token set of title/meta
// templates with attributes of the two compared items. A blank insurer
// becomes "N/A", a blank contract name falls back to the item display name,
// blank version/territoriality become empty strings. Tokens outside the
// fixed set are left verbatim.
func SubstitutePlaceholders(template string, item1, item2 *types.ComparatorItem) string {
	if template == "" || item1 == nil || item2 == nil {
		return template
	}
	replacer := strings.NewReplacer(
		"{contrat1}", fallback(item1.Contrat, item1.Name),
		"{assureur1}", fallback(item1.Assureur, "N/A"),
		"{name1}", item1.Name,
		"{version1}", item1.Version,
		"{territorialite1}", item1.Territorialite,
		"{contrat2}", fallback(item2.Contrat, item2.Name),
		"{assureur2}", fallback(item2.Assureur, "N/A"),
		"{name2}", item2.Name,
		"{version2}", item2.Version,
		"{territorialite2}", item2.Territorialite,
	)
	return replacer.Replace(template)
}

func fallback(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}
