package store

import (
	"errors"
	"time"

	"gift-recommender-be/pkg/preference"
)

var ErrSessionNotFound = errors.New("session not found")

// Message is one turn of a conversation log.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session represents the per-conversation state shared between requests
type Session struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`

	// Most recent last
	QuestionHistory []string          `json:"question_history"`
	Preferences     preference.Record `json:"user_preferences"`

	Messages []Message `json:"messages,omitempty"`

	// Free-form, merged key by key on update
	Context  map[string]interface{} `json:"context"`
	Metadata map[string]interface{} `json:"metadata"`
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:              id,
		CreatedAt:       now,
		LastAccessed:    now,
		QuestionHistory: []string{},
		Context:         map[string]interface{}{},
		Metadata:        map[string]interface{}{"session_count": 1},
	}
}

// Clone returns a deep copy so callers never alias stored state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.QuestionHistory = append([]string{}, s.QuestionHistory...)
	out.Preferences = s.Preferences.Clone()
	if s.Messages != nil {
		out.Messages = append([]Message{}, s.Messages...)
	}
	out.Context = CopyMap(s.Context)
	out.Metadata = CopyMap(s.Metadata)
	return &out
}

// PushQuestion appends q and drops the oldest entries beyond limit.
func (s *Session) PushQuestion(q string, limit int) {
	s.QuestionHistory = append(s.QuestionHistory, q)
	if limit > 0 && len(s.QuestionHistory) > limit {
		s.QuestionHistory = append([]string{}, s.QuestionHistory[len(s.QuestionHistory)-limit:]...)
	}
}

// Patch is a partial update. Nil fields are left untouched; Context and
// Metadata are merged recursively.
type Patch struct {
	QuestionHistory []string
	Preferences     *preference.Record
	Context         map[string]interface{}
	Metadata        map[string]interface{}
}

func (s *Session) Apply(p Patch) {
	if p.QuestionHistory != nil {
		s.QuestionHistory = append([]string{}, p.QuestionHistory...)
	}
	if p.Preferences != nil {
		s.Preferences = p.Preferences.Clone()
	}
	if p.Context != nil {
		if s.Context == nil {
			s.Context = map[string]interface{}{}
		}
		MergeMaps(s.Context, p.Context)
	}
	if p.Metadata != nil {
		if s.Metadata == nil {
			s.Metadata = map[string]interface{}{}
		}
		MergeMaps(s.Metadata, p.Metadata)
	}
}

// MergeMaps writes updates into dst. When both sides hold a map under the
// same key the maps are merged instead of replaced.
func MergeMaps(dst, updates map[string]interface{}) {
	for k, v := range updates {
		if cur, ok := dst[k].(map[string]interface{}); ok {
			if next, ok := v.(map[string]interface{}); ok {
				MergeMaps(cur, next)
				continue
			}
		}
		dst[k] = copyValue(v)
	}
}

func CopyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return CopyMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = copyValue(t[i])
		}
		return out
	case []string:
		return append([]string{}, t...)
	default:
		return v
	}
}
