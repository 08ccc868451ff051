package understanding

// Age carries the numeric age and/or the age-group category found in text.
type Age struct {
	Numerical *int   `json:"numerical"`
	Group     string `json:"group"`
}

func (a Age) IsEmpty() bool {
	return a.Numerical == nil && a.Group == ""
}

// Budget is the spending signal found in text. A range match fills Min and Max
// only; otherwise Approx and Qualitative may both be set.
type Budget struct {
	Min         *int   `json:"min"`
	Max         *int   `json:"max"`
	Approx      *int   `json:"approx"`
	Qualitative string `json:"qualitative"`
}

func (b Budget) IsEmpty() bool {
	return b.Min == nil && b.Max == nil && b.Approx == nil && b.Qualitative == ""
}

// Context is the structured reading of one request. Unmatched single-valued
// fields are the empty string and Interests is never nil.
type Context struct {
	Occasion      string   `json:"occasion"`
	RecipientType string   `json:"recipient_type"`
	Relationship  string   `json:"relationship"`
	Age           Age      `json:"age"`
	Interests     []string `json:"interests"`
	Budget        Budget   `json:"budget"`
	Urgency       string   `json:"urgency"`
	Gender        string   `json:"gender"`
	OtherDetails  string   `json:"other_details"`
}

// IsEmpty reports whether nothing beyond the normalized text was extracted.
func (c Context) IsEmpty() bool {
	return c.Occasion == "" && c.RecipientType == "" && c.Relationship == "" &&
		c.Age.IsEmpty() && len(c.Interests) == 0 && c.Budget.IsEmpty() &&
		c.Urgency == "" && c.Gender == ""
}
