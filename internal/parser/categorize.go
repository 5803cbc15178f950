package parser

import "strings"

// CategorizeUnitType buckets a unit-type cell into bolig, erhverv, parkering
// or the default category. Keyword groups are tested in rule order and the
// first group with a substring match wins.
func (c Config) CategorizeUnitType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return c.DefaultCategory
	}
	for _, rule := range c.CategoryRules {
		if containsAny(v, rule.Keywords) {
			return rule.Category
		}
	}
	return c.DefaultCategory
}

// IsVacant reports whether a status cell marks the unit as vacant. Empty
// input is occupied.
func (c Config) IsVacant(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	return containsAny(v, c.VacancyKeywords)
}

// containsAny reports whether text contains any of the keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
