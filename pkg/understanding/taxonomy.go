package understanding

import "fmt"

// Category is one named bucket of the keyword taxonomy. Keywords are matched
// as whole words against normalized text.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Taxonomy holds every keyword table the extractor consults. Each table is an
// ordered slice: for single-valued fields the first category (in slice order)
// with a matching keyword wins, regardless of where the keyword sits in the text.
type Taxonomy struct {
	Occasions         []Category      `yaml:"occasions"`
	RecipientTypes    []Category      `yaml:"recipient_types"`
	Relationships     []Category      `yaml:"relationships"`
	Interests         []Category      `yaml:"interests"`
	AgeGroups         []Category      `yaml:"age_groups"`
	BudgetQualitative []Category      `yaml:"budget_qualitative"`
	Urgency           []Category      `yaml:"urgency"`
	Genders           []Category      `yaml:"genders"`
	GenderInference   GenderInference `yaml:"gender_inference"`
}

// GenderInference maps recipient types and relationships to a gender label
// when no explicit gender keyword is present.
type GenderInference struct {
	FemaleRecipients    []string `yaml:"female_recipients"`
	MaleRecipients      []string `yaml:"male_recipients"`
	FemaleRelationships []string `yaml:"female_relationships"`
	MaleRelationships   []string `yaml:"male_relationships"`
}

func (t Taxonomy) Validate() error {
	tables := map[string][]Category{
		"occasions":          t.Occasions,
		"recipient_types":    t.RecipientTypes,
		"relationships":      t.Relationships,
		"interests":          t.Interests,
		"age_groups":         t.AgeGroups,
		"budget_qualitative": t.BudgetQualitative,
		"urgency":            t.Urgency,
		"genders":            t.Genders,
	}
	for table, categories := range tables {
		for i, c := range categories {
			if c.Name == "" {
				return fmt.Errorf("taxonomy %s[%d]: empty category name", table, i)
			}
			if len(c.Keywords) == 0 {
				return fmt.Errorf("taxonomy %s[%d] %q: no keywords", table, i, c.Name)
			}
		}
	}
	return nil
}

// merge overlays the non-empty tables of other onto t.
func (t Taxonomy) merge(other Taxonomy) Taxonomy {
	pick := func(base, over []Category) []Category {
		if len(over) > 0 {
			return over
		}
		return base
	}
	t.Occasions = pick(t.Occasions, other.Occasions)
	t.RecipientTypes = pick(t.RecipientTypes, other.RecipientTypes)
	t.Relationships = pick(t.Relationships, other.Relationships)
	t.Interests = pick(t.Interests, other.Interests)
	t.AgeGroups = pick(t.AgeGroups, other.AgeGroups)
	t.BudgetQualitative = pick(t.BudgetQualitative, other.BudgetQualitative)
	t.Urgency = pick(t.Urgency, other.Urgency)
	t.Genders = pick(t.Genders, other.Genders)

	gi := other.GenderInference
	if len(gi.FemaleRecipients) > 0 || len(gi.MaleRecipients) > 0 ||
		len(gi.FemaleRelationships) > 0 || len(gi.MaleRelationships) > 0 {
		t.GenderInference = gi
	}
	return t
}
