package preference

import (
	"regexp"
	"strconv"

	"gift-recommender-be/pkg/understanding"
)

type tokenPattern struct {
	pattern *regexp.Regexp
	token   string
}

func mustPatterns(pairs ...string) []tokenPattern {
	out := make([]tokenPattern, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, tokenPattern{
			pattern: regexp.MustCompile(`(?i)` + pairs[i]),
			token:   pairs[i+1],
		})
	}
	return out
}

// Mining works on substrings of the raw question, unlike the whole-word
// matching in the understanding package.
var (
	femaleRegex = regexp.MustCompile(`(?i)بنت|ست|زوج[تة]ي|أم|أخت|صاحبت|صديقت|خطيبت`)
	maleRegex   = regexp.MustCompile(`(?i)ولد|راجل|زوجي|أب|أخ|صاحب|صديق|خطيب`)

	firstNumberRegex = regexp.MustCompile(`[0-9٠-٩۰-۹]+`)
	childrenRegex    = regexp.MustCompile(`(?i)طفل|بيبي|رضيع|أطفال`)
	teenRegex        = regexp.MustCompile(`(?i)مراهق|تين|المدرس[ةه]`)
	youngAdultRegex  = regexp.MustCompile(`(?i)شاب|[ةه] الجامع[ةه]|تخرج`)
	elderlyRegex     = regexp.MustCompile(`(?i)كبير|مسن|عجوز`)

	budgetRegex  = regexp.MustCompile(`(?i)رخيص[ةه]?|مش غالي|بسعر معقول|اقتصادي[ةه]?`)
	premiumRegex = regexp.MustCompile(`(?i)غالي[ةه]?|فخم[ةه]?|هاي كلاس|راقي[ةه]?`)

	// first match wins
	occasionPatterns = mustPatterns(
		`عيد الأم`, "mothers_day",
		`عيد ميلاد`, "birthday",
		`زفاف|فرح|خطوب[ةه]`, "wedding",
		`رمضان`, "ramadan",
		`العيد|عيد الفطر|عيد الأضحى`, "eid",
		`تخرج`, "graduation",
		`فلانتين|الحب`, "valentine",
		`كريسماس`, "christmas",
		`السن[ةه] الجديد[ةه]`, "new_year",
	)

	// every match counts
	interestPatterns = mustPatterns(
		`عطر|عطور|ريحة|perfume`, "perfumes",
		`محفظ[ةه]|wallet|فلوس`, "wallets",
		`ساعة|ساعات|watch`, "watches",
		`نظارة|نضارة|شمس`, "sunglasses",
		`اكسسوار|مجوهرات|خاتم|سلسلة|حلقة|bracelet`, "accessories",
		`شنطة|شنط|bag|شنط يد`, "bags",
		`أطفال|لعبة|لعب|طفل|دبدوب|دمية`, "kids",
		`هدية|هدايا|مناسبة|مفاجأة`, "gifts",
		`رجالي|راجل|رجال`, "men",
		`حريمي|بنات|نسائي|حريم`, "women",
	)
)

// Mine reads catalog-facing preference tokens straight from the question.
func Mine(question string) Record {
	var r Record

	switch {
	case femaleRegex.MatchString(question):
		r.Gender = GenderFemale
	case maleRegex.MatchString(question):
		r.Gender = GenderMale
	}

	r.AgeGroup = mineAgeGroup(question)

	for _, p := range occasionPatterns {
		if p.pattern.MatchString(question) {
			r.Occasion = p.token
			break
		}
	}

	for _, p := range interestPatterns {
		if p.pattern.MatchString(question) {
			r.Interests = append(r.Interests, p.token)
		}
	}

	switch {
	case budgetRegex.MatchString(question):
		r.PriceRange = PriceBudget
	case premiumRegex.MatchString(question):
		r.PriceRange = PricePremium
	}

	return r
}

func mineAgeGroup(question string) string {
	if childrenRegex.MatchString(question) {
		return AgeChildren
	}
	if m := firstNumberRegex.FindString(question); m != "" {
		if n, err := strconv.Atoi(understanding.FoldDigits(m)); err == nil && n < 14 {
			return AgeChildren
		}
	}
	switch {
	case teenRegex.MatchString(question):
		return AgeTeen
	case youngAdultRegex.MatchString(question):
		return AgeYoungAdult
	case elderlyRegex.MatchString(question):
		return AgeElderly
	}
	return ""
}
