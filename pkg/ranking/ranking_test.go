package ranking

import (
	"testing"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, sim float64, mutate func(p *entity.Product)) scoring.Candidate {
	p := &entity.Product{Name: name}
	if mutate != nil {
		mutate(p)
	}
	return scoring.Candidate{Product: p, Similarity: sim}
}

func names(cs []scoring.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Product.Name
	}
	return out
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 12, 0, 0, 0, time.UTC) }
}

func TestFilter_Gender(t *testing.T) {
	cs := []scoring.Candidate{
		candidate("female", 0.5, func(p *entity.Product) { p.TargetGender = "Female" }),
		candidate("unisex", 0.5, func(p *entity.Product) { p.TargetGender = "unisex" }),
		candidate("male", 0.5, func(p *entity.Product) { p.TargetGender = "male" }),
		candidate("untargeted", 0.5, nil),
	}

	got := Filter(cs, preference.Record{Gender: preference.GenderFemale})
	assert.Equal(t, []string{"female", "unisex"}, names(got))
	assert.Equal(t, 3, got[0].PreferenceScore)
	assert.Equal(t, 3, got[1].PreferenceScore)
}

func TestFilter_NeverEmpties(t *testing.T) {
	cs := []scoring.Candidate{
		candidate("female-a", 0.5, func(p *entity.Product) { p.TargetGender = "female" }),
		candidate("female-b", 0.4, func(p *entity.Product) { p.TargetGender = "female" }),
	}

	got := Filter(cs, preference.Record{Gender: preference.GenderMale})
	assert.Equal(t, cs, got)
}

func TestFilter_EmptyPreferences(t *testing.T) {
	cs := []scoring.Candidate{candidate("a", 0.5, nil)}
	assert.Equal(t, cs, Filter(cs, preference.Record{}))
}

func TestFilter_AgeGroup(t *testing.T) {
	cs := []scoring.Candidate{
		candidate("kids", 0.5, func(p *entity.Product) { p.AgeGroup = "Kids 3-8" }),
		candidate("adults", 0.5, func(p *entity.Product) { p.AgeGroup = "adults" }),
		candidate("any", 0.5, func(p *entity.Product) { p.Price = 100 }),
	}

	got := Filter(cs, preference.Record{AgeGroup: preference.AgeChildren, PriceRange: preference.PriceBudget})
	assert.Equal(t, []string{"kids", "any"}, names(got))
	assert.Equal(t, 5, got[0].PreferenceScore)
	assert.Equal(t, 2, got[1].PreferenceScore)

	teen := []scoring.Candidate{
		candidate("teens", 0.5, func(p *entity.Product) { p.AgeGroup = "Teens" }),
		candidate("adult", 0.5, func(p *entity.Product) { p.AgeGroup = "adult" }),
	}
	got = Filter(teen, preference.Record{AgeGroup: preference.AgeTeen})
	assert.Equal(t, []string{"teens"}, names(got))
	assert.Equal(t, 2, got[0].PreferenceScore)
}

func TestFilter_OccasionInterestsPrice(t *testing.T) {
	cs := []scoring.Candidate{
		candidate("all", 0.5, func(p *entity.Product) {
			p.Occasion = entity.StringList{"Mother's Day"}
			p.Tags = entity.StringList{"Watches", "Bags", "x"}
			p.Price = 650
		}),
		candidate("cheap", 0.5, func(p *entity.Product) { p.Price = 300 }),
		candidate("none", 0.5, func(p *entity.Product) { p.Price = 450 }),
	}

	got := Filter(cs, preference.Record{
		Occasion:   "mothers_day",
		Interests:  []string{"watches", "bags", "perfumes"},
		PriceRange: preference.PricePremium,
	})
	require.Equal(t, []string{"all"}, names(got))
	assert.Equal(t, 4+2+2+2, got[0].PreferenceScore)

	got = Filter(cs, preference.Record{PriceRange: preference.PriceBudget})
	assert.Equal(t, []string{"cheap"}, names(got))
}

func TestRank_ScoresAndStableOrder(t *testing.T) {
	cs := []scoring.Candidate{
		candidate("a", 0.5, nil),
		candidate("b", 0.5, func(p *entity.Product) { p.Seasons = entity.StringList{"الصيف"} }),
		candidate("c", 0.5, nil),
		candidate("d", 0.5, nil),
	}
	cs[2].PreferenceScore = 20

	got := NewReranker(fixedClock(2025, time.July, 10)).Rank(cs)

	assert.Equal(t, []string{"c", "b", "a", "d"}, names(got))
	assert.InDelta(t, 0.65, got[0].FinalScore, 1e-9)
	assert.InDelta(t, 0.45, got[1].FinalScore, 1e-9)
	assert.InDelta(t, 0.35, got[2].FinalScore, 1e-9)
	assert.InDelta(t, 0.35, got[3].FinalScore, 1e-9)

	// input is left untouched
	assert.Zero(t, cs[0].FinalScore)
	assert.Equal(t, "a", cs[0].Product.Name)
}

func TestRank_OccasionBoostAppliesOnce(t *testing.T) {
	cs := []scoring.Candidate{
		candidate("plain", 0.4, nil),
		candidate("valentine", 0.2, func(p *entity.Product) {
			p.Occasion = entity.StringList{"Valentine", "عيد الحب", "birthday"}
			p.Season = entity.StringList{"Winter"}
		}),
	}

	got := NewReranker(fixedClock(2025, time.February, 1)).Rank(cs)
	assert.Equal(t, []string{"valentine", "plain"}, names(got))
	assert.InDelta(t, 0.2*0.7+0.15+0.1, got[0].FinalScore, 1e-9)
	assert.InDelta(t, 0.4*0.7, got[1].FinalScore, 1e-9)
}

func TestRank_Empty(t *testing.T) {
	got := NewReranker(nil).Rank(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSeasonFor(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, SeasonWinter},
		{time.March, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.August, SeasonSummer},
		{time.September, SeasonFall},
		{time.November, SeasonFall},
		{time.December, SeasonWinter},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeasonFor(time.Date(2025, tt.month, 1, 0, 0, 0, 0, time.UTC)))
	}
}

func TestUpcomingOccasions(t *testing.T) {
	at := func(y int, m time.Month) time.Time { return time.Date(y, m, 15, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, []string{"new year"}, UpcomingOccasions(at(2025, time.January)))
	assert.Equal(t, []string{"mother's day"}, UpcomingOccasions(at(2025, time.March)))
	assert.Equal(t, []string{"ramadan", "eid"}, UpcomingOccasions(at(2025, time.April)))
	assert.Empty(t, UpcomingOccasions(at(2026, time.April)))
	assert.Equal(t, []string{"christmas"}, UpcomingOccasions(at(2025, time.December)))
	assert.Empty(t, UpcomingOccasions(at(2025, time.July)))
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" Mothers_Day ", "mothers-day"},
		{"mother's day", "mothers-day"},
		{"عيد الام", "mothers-day"},
		{"EID", "eid-al-fitr"},
		{"eid_al_adha", "eid-al-adha"},
		{"New Year", "new-year"},
		{"الشتاء", "winter"},
		{"graduation", "graduation"},
		{"back–to–school", "back-to-school"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.in), "input %q", tt.in)
	}
}
