package parser

import (
	"strings"

	"github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"
)

// ColumnMapper maps header strings to canonical field tags through the
// synonym table.
type ColumnMapper struct {
	cfg Config
}

// NewColumnMapper creates a mapper over the given synonym config.
func NewColumnMapper(cfg Config) *ColumnMapper {
	return &ColumnMapper{cfg: cfg}
}

// Map resolves each header cell to a tag: exact lower-cased lookup first,
// then the first rule in table order where the synonym is a substring of the
// header or the header a substring of the synonym. Headers that match
// nothing are simply absent from the result. Keys keep the original casing.
func (m *ColumnMapper) Map(headers []string) map[string]model.FieldTag {
	mapping := make(map[string]model.FieldTag)

	for _, header := range headers {
		key := strings.TrimSpace(header)
		if key == "" {
			continue
		}
		lower := strings.ToLower(key)

		if tag, ok := m.exact(lower); ok {
			mapping[key] = tag
			continue
		}
		for _, rule := range m.cfg.Synonyms {
			if strings.Contains(lower, rule.Synonym) || strings.Contains(rule.Synonym, lower) {
				mapping[key] = rule.Tag
				break
			}
		}
	}

	return mapping
}

func (m *ColumnMapper) exact(lower string) (model.FieldTag, bool) {
	for _, rule := range m.cfg.Synonyms {
		if rule.Synonym == lower {
			return rule.Tag, true
		}
	}
	return "", false
}
