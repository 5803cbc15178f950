package parser

import "github.com/ChristianAziz25/brikell-mvp-2.0/internal/model"

// SynonymRule binds one lower-cased header synonym to a canonical tag.
// Rules are evaluated in declaration order, so earlier rules win substring
// ties; never rely on map iteration here.
type SynonymRule struct {
	Synonym string
	Tag     model.FieldTag
}

// CategoryRule binds a unit-type category to its keyword group. Groups are
// tested in declaration order and the first match wins.
type CategoryRule struct {
	Category string
	Keywords []string
}

// Config is the immutable keyword/synonym configuration the whole engine
// scores against. Tests substitute their own tables through it.
type Config struct {
	HeaderKeywords  []string
	Synonyms        []SynonymRule
	EndRowKeywords  []string
	CategoryRules   []CategoryRule
	DefaultCategory string
	VacancyKeywords []string
}

// DefaultConfig returns the curated Danish/English tables.
func DefaultConfig() Config {
	return Config{
		HeaderKeywords: []string{
			// Danish
			"lejemål", "lejnr", "areal", "m2", "kvm", "leje", "årlig",
			"nr", "bel", "etage", "bem", "bemærkning", "reg", "regulering",
			"start", "indflytning", "type", "anvendelse",
			// English
			"unit_id", "size_sqm", "sqm", "area", "rent", "floor", "address",
			"zipcode", "postal", "door", "rooms", "lease", "tenant",
		},
		Synonyms: []SynonymRule{
			{"lejnr", model.TagUnitID},
			{"lejemål", model.TagUnitID},
			{"lejenr", model.TagUnitID},
			{"lejemålsnr", model.TagUnitID},
			{"nr", model.TagUnitID},
			{"unit_id", model.TagUnitID},

			{"areal", model.TagSqm},
			{"m2", model.TagSqm},
			{"kvm", model.TagSqm},
			{"m²", model.TagSqm},
			{"kvadratmeter", model.TagSqm},
			{"size_sqm", model.TagSqm},
			{"sqm", model.TagSqm},
			{"area", model.TagSqm},
			{"size", model.TagSqm},

			{"leje", model.TagAnnualRent},
			{"årlig", model.TagAnnualRent},
			{"årligleje", model.TagAnnualRent},
			{"årlig leje", model.TagAnnualRent},
			{"husleje", model.TagAnnualRent},
			{"rent_current_gri", model.TagAnnualRent},
			{"rent_current", model.TagAnnualRent},
			{"annual_rent", model.TagAnnualRent},
			{"rent", model.TagAnnualRent},
			{"gri", model.TagAnnualRent},

			{"bel", model.TagFloor},
			{"etage", model.TagFloor},
			{"beliggenhed", model.TagFloor},
			{"unit_floor", model.TagFloor},
			{"floor", model.TagFloor},

			{"type", model.TagUnitType},
			{"anvendelse", model.TagUnitType},
			{"lejemålstype", model.TagUnitType},
			{"unit_type", model.TagUnitType},

			{"start", model.TagLeaseStart},
			{"indflytning", model.TagLeaseStart},
			{"startdato", model.TagLeaseStart},
			{"indflytningsdato", model.TagLeaseStart},
			{"lease_start", model.TagLeaseStart},

			{"lease_end", model.TagLeaseEnd},
			{"slutdato", model.TagLeaseEnd},
			{"fraflytning", model.TagLeaseEnd},

			{"bem", model.TagNotes},
			{"bemærkning", model.TagNotes},
			{"bemærkninger", model.TagNotes},
			{"note", model.TagNotes},
			{"noter", model.TagNotes},
			{"notes", model.TagNotes},

			{"reg", model.TagRentAdjustment},
			{"regulering", model.TagRentAdjustment},
			{"lejeregulering", model.TagRentAdjustment},

			{"unit_address", model.TagAddress},
			{"address", model.TagAddress},
			{"adresse", model.TagAddress},

			{"unit_zipcode", model.TagPostalCode},
			{"zipcode", model.TagPostalCode},
			{"postal_code", model.TagPostalCode},
			{"postnr", model.TagPostalCode},
			{"postnummer", model.TagPostalCode},

			{"unit_door", model.TagDoor},
			{"door", model.TagDoor},
			{"dør", model.TagDoor},

			{"rooms_amount", model.TagRooms},
			{"rooms", model.TagRooms},
			{"værelser", model.TagRooms},

			{"tenant_name1", model.TagTenantName},
			{"tenant_name", model.TagTenantName},
			{"lejer", model.TagTenantName},
			{"lejernavn", model.TagTenantName},

			{"units_status", model.TagUnitStatus},
			{"unit_status", model.TagUnitStatus},
			{"status", model.TagUnitStatus},
			{"lejestatus", model.TagUnitStatus},
			{"udlejningsstatus", model.TagUnitStatus},
		},
		EndRowKeywords: []string{"total", "sum", "i alt", "ialt", "samlet", "subtotal"},
		CategoryRules: []CategoryRule{
			{"bolig", []string{"apartment", "residential", "bolig", "lejlighed", "værelse", "room"}},
			{"erhverv", []string{"commercial", "retail", "office", "erhverv", "kontor", "butik", "lager", "warehouse"}},
			{"parkering", []string{"parking", "parkering", "p-plads", "garage", "carport"}},
		},
		DefaultCategory: "andet",
		VacancyKeywords: []string{"vacant", "ledig", "tom", "fraflyttet", "empty", "available", "til leje"},
	}
}

// Categories returns the breakdown categories in rule order plus the default.
func (c Config) Categories() []string {
	cats := make([]string, 0, len(c.CategoryRules)+1)
	for _, rule := range c.CategoryRules {
		cats = append(cats, rule.Category)
	}
	return append(cats, c.DefaultCategory)
}
