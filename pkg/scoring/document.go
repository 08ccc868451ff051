package scoring

import (
	"strings"

	"gift-recommender-be/internal/entity"
)

// ContentFields lists the product fields that make up the embedded document,
// in the order they are concatenated.
var ContentFields = []string{
	"name", "description", "tags", "occasion", "season",
	"seasons", "category", "subCategory", "brand",
	"targetGender", "ageGroup", "interests",
}

// DefaultFieldWeights biases the document toward the more telling fields.
// A weight is floored to a whole repeat count, never below one.
var DefaultFieldWeights = map[string]float64{
	"tags":         1.5,
	"occasion":     2.0,
	"category":     1.3,
	"subCategory":  1.2,
	"targetGender": 1.8,
	"ageGroup":     1.5,
	"interests":    1.7,
	"description":  1.0,
	"name":         0.8,
	"season":       1.3,
	"seasons":      1.3,
	"brand":        0.7,
}

func fieldValues(p *entity.Product, field string) []string {
	scalar := func(s string) []string {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	list := func(l entity.StringList) []string {
		out := make([]string, 0, len(l))
		for _, v := range l {
			if v != "" {
				out = append(out, v)
			}
		}
		return out
	}

	switch field {
	case "name":
		return scalar(p.Name)
	case "description":
		return scalar(p.Description)
	case "tags":
		return list(p.Tags)
	case "occasion":
		return list(p.Occasion)
	case "season":
		return list(p.Season)
	case "seasons":
		return list(p.Seasons)
	case "category":
		return scalar(p.Category)
	case "subCategory":
		return scalar(p.SubCategory)
	case "brand":
		return scalar(p.Brand)
	case "targetGender":
		return scalar(p.TargetGender)
	case "ageGroup":
		return scalar(p.AgeGroup)
	case "interests":
		return list(p.Interests)
	}
	return nil
}

func repeatCount(weights map[string]float64, field string) int {
	w, ok := weights[field]
	if !ok {
		return 1
	}
	if n := int(w); n >= 1 {
		return n
	}
	return 1
}

// BuildDocument joins the content fields of p, repeating each field's
// values by its weight.
func BuildDocument(p *entity.Product, fields []string, weights map[string]float64) string {
	parts := make([]string, 0, len(fields)*2)
	for _, field := range fields {
		values := fieldValues(p, field)
		if len(values) == 0 {
			continue
		}
		for i := repeatCount(weights, field); i > 0; i-- {
			parts = append(parts, values...)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
