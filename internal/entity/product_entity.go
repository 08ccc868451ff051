package entity

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// StringList decodes from either a JSON string or a JSON array of strings.
// Catalog records are inconsistent about tags, occasion and season.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var raw []interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(StringList, 0, len(raw))
		for _, v := range raw {
			if s := scalarString(v); s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}

	var single interface{}
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if s := scalarString(single); s != "" {
		*l = StringList{s}
	} else {
		*l = StringList{}
	}
	return nil
}

// Lower returns the trimmed, lowercased non-empty values.
func (l StringList) Lower() []string {
	out := make([]string, 0, len(l))
	for _, v := range l {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

type Product struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Image        string     `json:"image"`
	Url          string     `json:"url"`
	Tags         StringList `json:"tags"`
	Occasion     StringList `json:"occasion"`
	Season       StringList `json:"season"`
	Seasons      StringList `json:"seasons"`
	Category     string     `json:"category"`
	SubCategory  string     `json:"subCategory"`
	Brand        string     `json:"brand"`
	TargetGender string     `json:"targetGender"`
	AgeGroup     string     `json:"ageGroup"`
	Interests    StringList `json:"interests"`
	CreatedAt    time.Time  `json:"-"`
	UpdatedAt    *time.Time `json:"-"`
}

// AllSeasons is the union of Season and Seasons.
func (p *Product) AllSeasons() StringList {
	out := make(StringList, 0, len(p.Season)+len(p.Seasons))
	out = append(out, p.Seasons...)
	out = append(out, p.Season...)
	return out
}

type ProductEmbedding struct {
	Id             uuid.UUID
	ContentHash    string
	Model          string
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
