package recommend

import (
	"math"
	"strconv"
	"strings"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/scoring"
	"gift-recommender-be/pkg/understanding"

	"github.com/goccy/go-json"
)

const DefaultTopK = 5

const (
	MessageSystemError  = "حصل مشكلة في النظام، ممكن تحاول تاني؟"
	MessageEmptyCatalog = "مفيش منتجات متاحة دلوقتي، جرب تسألني بعدين!"
)

// Request is one raw suggestion query. TopK is whatever the caller sent and
// is coerced before use.
type Request struct {
	Question  string
	TopK      interface{}
	SessionID string
}

// Item is the outward projection of a ranked candidate.
type Item struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Image           string   `json:"image"`
	Score           float64  `json:"score"`
	PreferenceScore int      `json:"preference_score"`
	FinalScore      float64  `json:"final_score"`
	Tags            []string `json:"tags"`
	Occasion        []string `json:"occasion"`
	Season          []string `json:"season"`
	Seasons         []string `json:"seasons"`
	Category        string   `json:"category"`
	SubCategory     string   `json:"subCategory"`
	Brand           string   `json:"brand"`
	TargetGender    string   `json:"targetGender"`
	AgeGroup        string   `json:"ageGroup"`
	Url             string   `json:"url"`
}

// ResultContext is the structured reading of the question together with the
// preferences that drove ranking.
type ResultContext struct {
	understanding.Context
	Preferences preference.Record `json:"preferences"`
}

type Result struct {
	Message       string         `json:"message"`
	Products      []Item         `json:"products"`
	Context       *ResultContext `json:"context,omitempty"`
	ExecutionTime float64        `json:"execution_time"`
	SessionID     string         `json:"session_id,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// CoerceTopK turns any caller-supplied count into a positive integer.
// Integral numbers and numeric strings are accepted; everything else,
// including collections and non-positive values, yields DefaultTopK.
func CoerceTopK(v interface{}) int {
	return coerceTopK(v, DefaultTopK)
}

func coerceTopK(v interface{}, fallback int) int {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		n = int(t)
	case uint:
		n = int(t)
	case float32:
		n = truncate(float64(t))
	case float64:
		n = truncate(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return fallback
		}
		n = truncate(f)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return fallback
		}
		n = parsed
	default:
		return fallback
	}
	if n <= 0 {
		return fallback
	}
	return n
}

func truncate(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func toItem(c scoring.Candidate) Item {
	p := c.Product
	return Item{
		ID:              p.Id.String(),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Image:           p.Image,
		Score:           c.Similarity,
		PreferenceScore: c.PreferenceScore,
		FinalScore:      c.FinalScore,
		Tags:            orEmpty(p.Tags),
		Occasion:        orEmpty(p.Occasion),
		Season:          orEmpty(p.Season),
		Seasons:         orEmpty(p.Seasons),
		Category:        p.Category,
		SubCategory:     p.SubCategory,
		Brand:           p.Brand,
		TargetGender:    p.TargetGender,
		AgeGroup:        p.AgeGroup,
		Url:             p.Url,
	}
}

func orEmpty(l entity.StringList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
