package recommend

import (
	"strings"

	"gift-recommender-be/pkg/preference"
)

const historyWindow = 3

// BuildConversationContext is the text embedded as the query: a hint built
// from accumulated preferences, the most recent earlier questions, then the
// current question. prior must not contain the current question.
func BuildConversationContext(question string, prior []string, prefs preference.Record) string {
	var parts []string

	var hints []string
	if len(prefs.Interests) > 0 {
		hints = append(hints, "يحب/تحب: "+strings.Join(prefs.Interests, ", "))
	}
	if prefs.Occasion != "" {
		hints = append(hints, "مناسبات: "+prefs.Occasion)
	}
	if len(hints) > 0 {
		parts = append(parts, "[معلومات المستخدم: "+strings.Join(hints, "; ")+"]")
	}

	if len(prior) > historyWindow {
		prior = prior[len(prior)-historyWindow:]
	}
	if len(prior) > 0 {
		parts = append(parts, "[أسئلة سابقة: "+strings.Join(prior, " ... ")+"]")
	}

	parts = append(parts, question)
	return strings.Join(parts, " ")
}
