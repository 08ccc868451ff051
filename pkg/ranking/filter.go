package ranking

import (
	"strings"

	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/scoring"
)

const unisex = "unisex"

// Filter scores every candidate against prefs and keeps those with a positive
// preference score. Products aimed at the other gender, and non-children
// products when children were asked for, are excluded outright. If nothing
// survives, the input is returned unchanged.
func Filter(candidates []scoring.Candidate, prefs preference.Record) []scoring.Candidate {
	if prefs.IsEmpty() {
		return candidates
	}

	filtered := make([]scoring.Candidate, 0, len(candidates))
	for _, c := range candidates {
		score, keep := preferenceScore(c, prefs)
		if !keep || score <= 0 {
			continue
		}
		c.PreferenceScore = score
		filtered = append(filtered, c)
	}

	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

func preferenceScore(c scoring.Candidate, prefs preference.Record) (int, bool) {
	p := c.Product
	score := 0

	if prefs.Gender != "" {
		target := strings.ToLower(strings.TrimSpace(p.TargetGender))
		switch {
		case target == prefs.Gender || target == unisex:
			score += 3
		case target != "":
			return 0, false
		}
	}

	if prefs.AgeGroup != "" && p.AgeGroup != "" {
		ageGroup := strings.ToLower(p.AgeGroup)
		if prefs.AgeGroup == preference.AgeChildren {
			if !strings.Contains(ageGroup, "children") && !strings.Contains(ageGroup, "kids") {
				return 0, false
			}
			score += 3
		} else if strings.Contains(ageGroup, prefs.AgeGroup) {
			score += 2
		}
	}

	if prefs.Occasion != "" {
		if _, ok := canonicalSet(p.Occasion)[Canonical(prefs.Occasion)]; ok {
			score += 4
		}
	}

	if len(prefs.Interests) > 0 {
		tags := make(map[string]struct{}, len(p.Tags))
		for _, tag := range p.Tags.Lower() {
			tags[tag] = struct{}{}
		}
		for _, interest := range prefs.Interests {
			if _, ok := tags[strings.ToLower(interest)]; ok {
				score += 2
			}
		}
	}

	switch {
	case prefs.PriceRange == preference.PriceBudget && p.Price <= 300:
		score += 2
	case prefs.PriceRange == preference.PricePremium && p.Price >= 500:
		score += 2
	}

	return score, true
}
