package understanding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// RE2 has no Unicode-aware \b, so word edges are spelled out as
// "start of text or a non-word rune" and its mirror.
const (
	wordStart = `(?:^|[^\p{L}\p{M}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{M}\p{N}_])`

	// Arabic attaches the definite article and a few particles to the noun.
	articlePrefix = `(?:ال|وال|بال|لل)?`

	currencies = `جني?ه|ج|ريال|درهم|دينار|دولار|يورو|ل\.? ?م\.?|egp|sar|aed|kwd|usd|eur`
)

var (
	ageRegex = regexp.MustCompile(`(?i)(\d{1,3})\s*(?:سنه|سنة|عام|عمر|عمره|عمرها|سن|سنها)` + wordEnd)

	budgetRangeRegex  = regexp.MustCompile(`(?i)` + wordStart + `(?:من|حوالي|في حدود)\s*(\d+)\s*(?:ل|الى|لحد)\s*(\d+)\s*(?:جني?ه|ج|egp)?` + wordEnd)
	budgetApproxRegex = regexp.MustCompile(`(?i)` + wordStart + `(?:حوالي|تقريبا|في حدود)\s*(\d+)\s*(?:جني?ه|ج|egp)?` + wordEnd)
	budgetNumberRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:` + currencies + `)?` + wordEnd)
)

type categoryMatcher struct {
	name    string
	pattern *regexp.Regexp
}

type matcherTable []categoryMatcher

func compileTable(table string, categories []Category) (matcherTable, error) {
	out := make(matcherTable, 0, len(categories))
	for _, c := range categories {
		alternatives := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = Normalize(kw)
			if kw == "" {
				continue
			}
			alternatives = append(alternatives, regexp.QuoteMeta(kw))
		}
		if len(alternatives) == 0 {
			return nil, fmt.Errorf("compile %s %q: no usable keywords", table, c.Name)
		}
		expr := `(?i)` + wordStart + articlePrefix + `(?:` + strings.Join(alternatives, "|") + `)` + wordEnd
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile %s %q: %w", table, c.Name, err)
		}
		out = append(out, categoryMatcher{name: c.Name, pattern: re})
	}
	return out, nil
}

// first returns the first category in table order with a match.
func (m matcherTable) first(text string) string {
	for _, c := range m {
		if c.pattern.MatchString(text) {
			return c.name
		}
	}
	return ""
}

// all returns every matching category in table order.
func (m matcherTable) all(text string) []string {
	found := make([]string, 0)
	for _, c := range m {
		if c.pattern.MatchString(text) {
			found = append(found, c.name)
		}
	}
	return found
}

// Extractor turns free text into a Context. It is immutable after construction
// and safe for concurrent use.
type Extractor struct {
	occasions         matcherTable
	recipients        matcherTable
	relationships     matcherTable
	interests         matcherTable
	ageGroups         matcherTable
	budgetQualitative matcherTable
	urgency           matcherTable
	genders           matcherTable

	femaleRecipients    map[string]struct{}
	maleRecipients      map[string]struct{}
	femaleRelationships map[string]struct{}
	maleRelationships   map[string]struct{}
}

func NewExtractor(t Taxonomy) (*Extractor, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	e := &Extractor{
		femaleRecipients:    toSet(t.GenderInference.FemaleRecipients),
		maleRecipients:      toSet(t.GenderInference.MaleRecipients),
		femaleRelationships: toSet(t.GenderInference.FemaleRelationships),
		maleRelationships:   toSet(t.GenderInference.MaleRelationships),
	}

	tables := []struct {
		name string
		src  []Category
		dst  *matcherTable
	}{
		{"occasions", t.Occasions, &e.occasions},
		{"recipient_types", t.RecipientTypes, &e.recipients},
		{"relationships", t.Relationships, &e.relationships},
		{"interests", t.Interests, &e.interests},
		{"age_groups", t.AgeGroups, &e.ageGroups},
		{"budget_qualitative", t.BudgetQualitative, &e.budgetQualitative},
		{"urgency", t.Urgency, &e.urgency},
		{"genders", t.Genders, &e.genders},
	}
	for _, tb := range tables {
		compiled, err := compileTable(tb.name, tb.src)
		if err != nil {
			return nil, err
		}
		*tb.dst = compiled
	}
	return e, nil
}

var (
	defaultExtractor     *Extractor
	defaultExtractorOnce sync.Once
)

// Default returns a process-wide extractor over DefaultTaxonomy.
func Default() *Extractor {
	defaultExtractorOnce.Do(func() {
		e, err := NewExtractor(DefaultTaxonomy())
		if err != nil {
			panic(fmt.Sprintf("understanding: built-in taxonomy does not compile: %v", err))
		}
		defaultExtractor = e
	})
	return defaultExtractor
}

// Extract never fails. Fields that find no match keep their empty value.
func (e *Extractor) Extract(text string) Context {
	processed := Normalize(text)

	ctx := Context{
		Occasion:      e.occasions.first(processed),
		RecipientType: e.recipients.first(processed),
		Relationship:  e.relationships.first(processed),
		Urgency:       e.urgency.first(processed),
		Gender:        e.genders.first(processed),
		Age:           e.extractAge(processed),
		Budget:        e.extractBudget(processed),
		Interests:     e.interests.all(processed),
		OtherDetails:  processed,
	}

	if ctx.Gender == "" {
		ctx.Gender = e.inferGender(ctx.RecipientType, ctx.Relationship)
	}
	return ctx
}

func (e *Extractor) extractAge(text string) Age {
	var age Age
	if m := ageRegex.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			age.Numerical = &n
		}
	}

	age.Group = e.ageGroups.first(text)

	if age.Numerical != nil && age.Group == "" {
		age.Group = AgeGroupFor(*age.Numerical)
	}
	return age
}

// AgeGroupFor maps a numeric age onto the age-group bands.
func AgeGroupFor(years int) string {
	switch {
	case years <= 12:
		return AgeGroupChild
	case years <= 19:
		return AgeGroupTeen
	case years <= 29:
		return AgeGroupYoung
	case years <= 49:
		return AgeGroupMiddleAge
	default:
		return AgeGroupSenior
	}
}

func (e *Extractor) extractBudget(text string) Budget {
	var budget Budget

	if m := budgetRangeRegex.FindStringSubmatch(text); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil {
			budget.Min = &lo
			budget.Max = &hi
			return budget
		}
	}

	if m := budgetApproxRegex.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			budget.Approx = &n
		}
	}

	if budget.Approx == nil {
		if m := budgetNumberRegex.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				budget.Approx = &n
			}
		}
	}

	budget.Qualitative = e.budgetQualitative.first(text)
	return budget
}

func (e *Extractor) inferGender(recipientType, relationship string) string {
	if recipientType != "" {
		if _, ok := e.femaleRecipients[recipientType]; ok {
			return GenderFemale
		}
		if _, ok := e.maleRecipients[recipientType]; ok {
			return GenderMale
		}
	}
	if relationship != "" {
		if _, ok := e.femaleRelationships[relationship]; ok {
			return GenderFemale
		}
		if _, ok := e.maleRelationships[relationship]; ok {
			return GenderMale
		}
	}
	return ""
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
