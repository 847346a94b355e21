package model

// AllergyCategory is one of the independent rating dimensions
type AllergyCategory string

const (
	AllergyPeanut AllergyCategory = "peanut"
	AllergyEgg    AllergyCategory = "egg"
	AllergyDairy  AllergyCategory = "dairy"
)

// ParseAllergyCategory normalizes a raw query value into a known category.
func ParseAllergyCategory(s string) (AllergyCategory, bool) {
	switch AllergyCategory(s) {
	case AllergyPeanut, AllergyEgg, AllergyDairy:
		return AllergyCategory(s), true
	}
	return "", false
}
