package preference

const (
	GenderFemale = "female"
	GenderMale   = "male"

	AgeChildren   = "children"
	AgeTeen       = "teen"
	AgeYoungAdult = "young_adult"
	AgeElderly    = "elderly"

	PriceBudget  = "budget"
	PricePremium = "premium"
)

// Record is the mergeable set of preferences carried across a conversation.
// An empty string or a nil Interests slice means the key is absent.
type Record struct {
	Gender     string   `json:"gender,omitempty"`
	AgeGroup   string   `json:"age_group,omitempty"`
	Occasion   string   `json:"occasion,omitempty"`
	Interests  []string `json:"interests,omitempty"`
	PriceRange string   `json:"price_range,omitempty"`
}

func (r Record) IsEmpty() bool {
	return r.Gender == "" && r.AgeGroup == "" && r.Occasion == "" &&
		r.Interests == nil && r.PriceRange == ""
}

func (r Record) Clone() Record {
	if r.Interests != nil {
		r.Interests = append([]string{}, r.Interests...)
	}
	return r
}

// Merge layers carried session preferences under fresh ones. Scalars absent
// from fresh are taken from carried. Interests are unioned when both sides
// have them, fresh entries first.
func Merge(fresh, carried Record) Record {
	out := fresh.Clone()

	if out.Gender == "" {
		out.Gender = carried.Gender
	}
	if out.AgeGroup == "" {
		out.AgeGroup = carried.AgeGroup
	}
	if out.Occasion == "" {
		out.Occasion = carried.Occasion
	}
	if out.PriceRange == "" {
		out.PriceRange = carried.PriceRange
	}

	switch {
	case out.Interests == nil && carried.Interests != nil:
		out.Interests = append([]string{}, carried.Interests...)
	case out.Interests != nil && carried.Interests != nil:
		out.Interests = union(out.Interests, carried.Interests)
	}
	return out
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
