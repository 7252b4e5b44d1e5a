package sitecontent

import (
	"strings"
)

// ResolveLocalizedValue picks the best label for locale. Keys match
// case-insensitively and a regional locale (`es-mx`) falls back to its base
// language (`es`), then to a "default" key, then to fallback.
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		for key, value := range values {
			if value != "" && normalizeLocale(key) == candidate {
				return value
			}
		}
	}
	return fallback
}

// LabelForLocale returns the navigation label for locale.
func (def SectionDefinition) LabelForLocale(locale string) string {
	return ResolveLocalizedValue(def.LabelLocalized, locale, def.Label)
}

// SectionRoute is the relative route an editor is mounted under.
func SectionRoute(id SectionID) string {
	return "sections/" + string(id)
}

func localeCandidates(locale string) []string {
	locale = strings.ReplaceAll(normalizeLocale(locale), "_", "-")
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if idx := strings.Index(locale, "-"); idx > 0 {
		candidates = append(candidates, locale[:idx])
	}
	return append(candidates, "default")
}

func normalizeLocale(locale string) string {
	return strings.TrimSpace(strings.ToLower(locale))
}
