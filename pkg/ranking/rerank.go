package ranking

import (
	"sort"
	"time"

	"gift-recommender-be/pkg/scoring"
)

const (
	SimilarityWeight = 0.7
	PreferenceWeight = 0.3
	SeasonBoost      = 0.10
	OccasionBoost    = 0.15

	preferenceScale = 10.0
)

type Reranker struct {
	now func() time.Time
}

// NewReranker takes the clock used for the seasonal and occasion boosts.
// A nil clock means time.Now.
func NewReranker(now func() time.Time) *Reranker {
	if now == nil {
		now = time.Now
	}
	return &Reranker{now: now}
}

// Rank computes FinalScore for each candidate and returns a new slice sorted
// best-first. Equal scores keep their input order.
func (r *Reranker) Rank(candidates []scoring.Candidate) []scoring.Candidate {
	if len(candidates) == 0 {
		return []scoring.Candidate{}
	}

	today := r.now()
	season := Canonical(SeasonFor(today))
	upcoming := canonicalSet(UpcomingOccasions(today))

	ranked := make([]scoring.Candidate, len(candidates))
	copy(ranked, candidates)

	for i := range ranked {
		c := &ranked[i]

		pref := float64(c.PreferenceScore) / preferenceScale
		if pref > 1 {
			pref = 1
		}
		final := c.Similarity*SimilarityWeight + pref*PreferenceWeight

		if _, ok := canonicalSet(c.Product.AllSeasons())[season]; ok {
			final += SeasonBoost
		}

		for occasion := range canonicalSet(c.Product.Occasion) {
			if _, ok := upcoming[occasion]; ok {
				final += OccasionBoost
				break
			}
		}

		c.FinalScore = final
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
	return ranked
}
