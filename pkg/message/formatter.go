package message

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/understanding"
)

// Input is everything the formatter reads to phrase a reply.
type Input struct {
	Context     understanding.Context
	Preferences preference.Record
	Products    []*entity.Product
}

// Formatter renders colloquial Egyptian Arabic replies. Wording is drawn at
// random from template pools; the source is injected so output is
// reproducible in tests.
type Formatter struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewFormatter(rng *rand.Rand, now func() time.Time) *Formatter {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Formatter{rng: rng, now: now}
}

func (f *Formatter) Format(in Input) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	style := f.pick(stylesFor(in.Context))
	if len(in.Products) == 0 {
		return f.noResults(in, style)
	}

	var parts []string
	if f.rng.Float64() < greetingChance {
		parts = append(parts, f.greeting(style))
	}

	set := intros[style]
	if len(in.Products) <= fewProducts {
		parts = append(parts, f.pick(set.few))
	} else {
		parts = append(parts, f.pick(set.many))
	}

	if cats := productCategories(in.Products); len(cats) > 0 {
		parts = append(parts, "("+strings.Join(cats, " و ")+")")
	}
	if in.Context.Occasion != "" {
		parts = append(parts, f.occasionPhrase(in.Context.Occasion))
	}
	if p := f.recipientPhrase(in.Context); p != "" {
		parts = append(parts, p)
	}
	if interests := interestNames(in); len(interests) > 0 {
		parts = append(parts, "مناسبة للي بيحب "+strings.Join(interests, "، ")+".")
	}
	if price := priceText(in); price != "" {
		parts = append(parts, fmt.Sprintf(f.pick(pricePhrases[style]), price))
	}
	if isUrgent(in.Context.Urgency) {
		parts = append(parts, f.pick(urgentPhrases))
	}

	return strings.Join(parts, " ")
}

// stylesFor narrows the style pool: urgent requests get practical styles,
// happy occasions get lively ones.
func stylesFor(ctx understanding.Context) []string {
	styles := allStyles
	if isUrgent(ctx.Urgency) {
		styles = []string{StylePractical, StyleHelpful}
	}
	for _, happy := range []string{"عيد ميلاد", "خطوب", "فرح", "زواج"} {
		if strings.Contains(ctx.Occasion, happy) {
			return []string{StyleEnthusiastic, StylePlayful, StyleFriendly}
		}
	}
	return styles
}

func isUrgent(urgency string) bool {
	return urgency != "" && (strings.Contains(urgency, "عاجل") || strings.Contains(urgency, "سريع")) &&
		!strings.HasPrefix(urgency, "غير")
}

func periodOf(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return periodMorning
	case h >= 12 && h < 17:
		return periodNoon
	case h >= 17 && h < 22:
		return periodEvening
	default:
		return periodNight
	}
}

func (f *Formatter) greeting(style string) string {
	g := f.pick(greetings[periodOf(f.now())])
	if style == StyleEnthusiastic || style == StylePlayful {
		return g + "!"
	}
	return g + "."
}

func (f *Formatter) occasionPhrase(occasion string) string {
	for _, o := range occasionPhrases {
		if strings.Contains(occasion, o.key) {
			return f.pick(o.phrases)
		}
	}
	return "مناسبة لـ" + occasion
}

func (f *Formatter) recipientPhrase(ctx understanding.Context) string {
	who := ctx.RecipientType
	if who == "" {
		return ""
	}
	for _, r := range recipientPhrases {
		if who == r.key {
			return f.pick(r.phrases)
		}
	}
	if ctx.Age.Group != "" {
		return fmt.Sprintf("مناسبة لـ%s من فئة %s", who, ctx.Age.Group)
	}
	return "مناسبة لـ" + who
}

func (f *Formatter) noResults(in Input, style string) string {
	base := f.pick(noResults[style])

	var ideas []string
	switch in.Context.Gender {
	case understanding.GenderFemale:
		ideas = append(ideas, f.pick(femaleIdeas))
	case understanding.GenderMale:
		ideas = append(ideas, f.pick(maleIdeas))
	}
	if in.Context.Occasion != "" {
		ideas = append(ideas, "فيه هدايا تانية كتير ممكن تناسب "+in.Context.Occasion)
	}
	switch in.Context.Budget.Qualitative {
	case understanding.BudgetCheap:
		ideas = append(ideas, "ممكن نشوف هدايا أكتر في نطاق سعر أعلى شوية؟")
	case understanding.BudgetExpensive:
		ideas = append(ideas, "عندنا منتجات مميزة في فئة أسعار أقل بجودة عالية برضه")
	}

	if len(ideas) == 0 {
		return base + " " + fallbackClosing
	}
	if len(ideas) > maxSuggestions {
		ideas = ideas[:maxSuggestions]
	}
	return base + " " + f.pick(suggestionIntros) + strings.Join(ideas, " وكمان ") + f.pick(encouragements)
}

// caller holds f.mu
func (f *Formatter) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[f.rng.Intn(len(options))]
}

func translate(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if name, ok := categoryNames[token]; ok {
		return name
	}
	return token
}

func productCategories(products []*entity.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		for _, c := range []string{p.Category, p.SubCategory} {
			if c = translate(c); c != "" && !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	sort.Strings(out)
	return out
}

func interestNames(in Input) []string {
	if len(in.Context.Interests) > 0 {
		return in.Context.Interests
	}
	var out []string
	for _, i := range in.Preferences.Interests {
		if i == "gifts" || i == "men" || i == "women" {
			continue
		}
		out = append(out, translate(i))
	}
	return out
}

func priceText(in Input) string {
	b := in.Context.Budget
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("من %d لـ %d جنيه", *b.Min, *b.Max)
	case b.Approx != nil:
		return fmt.Sprintf("حوالي %d جنيه", *b.Approx)
	case b.Qualitative != "":
		return b.Qualitative
	}
	switch in.Preferences.PriceRange {
	case preference.PriceBudget:
		return "اقتصادي"
	case preference.PricePremium:
		return "فاخر"
	}
	return ""
}
