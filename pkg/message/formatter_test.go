package message

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/understanding"

	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time { return time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC) }

func intPtr(v int) *int { return &v }

func TestFormat_Deterministic(t *testing.T) {
	in := Input{
		Context: understanding.Context{
			Occasion:      understanding.OccasionBirthday,
			RecipientType: "بنت",
			Budget:        understanding.Budget{Min: intPtr(500), Max: intPtr(1000)},
		},
		Products: []*entity.Product{{Name: "ساعة", Category: "watches"}},
	}

	a := NewFormatter(rand.New(rand.NewSource(7)), fixedNow).Format(in)
	b := NewFormatter(rand.New(rand.NewSource(7)), fixedNow).Format(in)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "(ساعات)")
	assert.Contains(t, a, "من 500 لـ 1000 جنيه")
}

func TestFormat_UsesHappyStyleForBirthday(t *testing.T) {
	styles := stylesFor(understanding.Context{Occasion: understanding.OccasionBirthday, Urgency: understanding.UrgencyUrgent})
	assert.Equal(t, []string{StyleEnthusiastic, StylePlayful, StyleFriendly}, styles)

	styles = stylesFor(understanding.Context{Urgency: understanding.UrgencyUrgent})
	assert.Equal(t, []string{StylePractical, StyleHelpful}, styles)

	styles = stylesFor(understanding.Context{Urgency: "غير عاجل"})
	assert.Equal(t, allStyles, styles)
}

func TestFormat_NoResults(t *testing.T) {
	f := NewFormatter(rand.New(rand.NewSource(1)), fixedNow)

	plain := f.Format(Input{})
	assert.True(t, strings.HasSuffix(plain, fallbackClosing))

	withIdeas := f.Format(Input{Context: understanding.Context{
		Gender:   understanding.GenderFemale,
		Occasion: understanding.OccasionGraduation,
	}})
	assert.Contains(t, withIdeas, "فيه هدايا تانية كتير ممكن تناسب تخرج")
}

func TestFormat_InterestsFallBackToPreferences(t *testing.T) {
	in := Input{
		Preferences: preference.Record{Interests: []string{"watches", "gifts", "perfumes"}},
		Products:    []*entity.Product{{Name: "x"}},
	}
	assert.Equal(t, []string{"ساعات", "عطور"}, interestNames(in))

	msg := NewFormatter(rand.New(rand.NewSource(3)), fixedNow).Format(in)
	assert.Contains(t, msg, "مناسبة للي بيحب ساعات، عطور.")
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, periodMorning},
		{13, periodNoon},
		{18, periodEvening},
		{23, periodNight},
		{3, periodNight},
	}
	for _, tt := range tests {
		got := periodOf(time.Date(2025, 1, 1, tt.hour, 0, 0, 0, time.UTC))
		assert.Equal(t, tt.want, got, "hour %d", tt.hour)
	}
}

func TestPriceText(t *testing.T) {
	assert.Equal(t, "حوالي 300 جنيه", priceText(Input{Context: understanding.Context{Budget: understanding.Budget{Approx: intPtr(300)}}}))
	assert.Equal(t, "فاخر", priceText(Input{Preferences: preference.Record{PriceRange: preference.PricePremium}}))
	assert.Equal(t, "", priceText(Input{}))
}
