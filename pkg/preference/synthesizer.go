package preference

import "gift-recommender-be/pkg/understanding"

var (
	genderFromContext = map[string]string{
		understanding.GenderFemale: GenderFemale,
		understanding.GenderMale:   GenderMale,
	}

	occasionFromContext = map[string]string{
		understanding.OccasionBirthday:   "birthday",
		understanding.OccasionMothersDay: "mothers_day",
		understanding.OccasionWedding:    "wedding",
		understanding.OccasionEngagement: "wedding",
		understanding.OccasionRamadan:    "ramadan",
		understanding.OccasionEidFitr:    "eid",
		understanding.OccasionEidAdha:    "eid",
		understanding.OccasionGraduation: "graduation",
		understanding.OccasionValentine:  "valentine",
	}

	ageFromContext = map[string]string{
		understanding.AgeGroupChild:  AgeChildren,
		understanding.AgeGroupTeen:   AgeTeen,
		understanding.AgeGroupYoung:  AgeYoungAdult,
		understanding.AgeGroupSenior: AgeElderly,
	}

	priceFromContext = map[string]string{
		understanding.BudgetCheap:     PriceBudget,
		understanding.BudgetExpensive: PricePremium,
	}
)

// FillFromContext fills scalar keys that mining left absent using the
// extracted context. Values already present are never replaced.
func FillFromContext(r Record, ctx understanding.Context) Record {
	if r.Gender == "" {
		r.Gender = genderFromContext[ctx.Gender]
	}
	if r.Occasion == "" {
		r.Occasion = occasionFromContext[ctx.Occasion]
	}
	if r.AgeGroup == "" {
		r.AgeGroup = ageFromContext[ctx.Age.Group]
	}
	if r.PriceRange == "" {
		r.PriceRange = priceFromContext[ctx.Budget.Qualitative]
	}
	return r
}

// Synthesize mines the question, fills gaps from the extracted context and
// merges the result over the carried session preferences.
func Synthesize(question string, ctx understanding.Context, carried Record) Record {
	fresh := FillFromContext(Mine(question), ctx)
	return Merge(fresh, carried)
}
