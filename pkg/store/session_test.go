package store

import (
	"testing"
	"time"

	"gift-recommender-be/pkg/preference"

	"github.com/stretchr/testify/assert"
)

func TestMergeMaps_Nested(t *testing.T) {
	dst := map[string]interface{}{
		"last_message": nil,
		"preferences":  map[string]interface{}{"language": "ar", "theme": "dark"},
	}
	MergeMaps(dst, map[string]interface{}{
		"preferences": map[string]interface{}{"language": "en", "currency": "EGP"},
		"channel":     "web",
	})

	assert.Equal(t, map[string]interface{}{
		"last_message": nil,
		"preferences":  map[string]interface{}{"language": "en", "theme": "dark", "currency": "EGP"},
		"channel":      "web",
	}, dst)
}

func TestMergeMaps_ScalarReplacesMap(t *testing.T) {
	dst := map[string]interface{}{"preferences": map[string]interface{}{"a": 1}}
	MergeMaps(dst, map[string]interface{}{"preferences": "none"})
	assert.Equal(t, "none", dst["preferences"])
}

func TestPushQuestion_KeepsMostRecent(t *testing.T) {
	s := New("s1", time.Now())
	for _, q := range []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7"} {
		s.PushQuestion(q, 5)
	}
	assert.Equal(t, []string{"q3", "q4", "q5", "q6", "q7"}, s.QuestionHistory)
}

func TestClone_DoesNotAlias(t *testing.T) {
	s := New("s1", time.Now())
	s.Context["nested"] = map[string]interface{}{"k": "v"}
	s.Preferences = preference.Record{Interests: []string{"watches"}}
	s.PushQuestion("q1", 5)

	c := s.Clone()
	c.Context["nested"].(map[string]interface{})["k"] = "changed"
	c.Preferences.Interests[0] = "bags"
	c.QuestionHistory[0] = "other"

	assert.Equal(t, "v", s.Context["nested"].(map[string]interface{})["k"])
	assert.Equal(t, "watches", s.Preferences.Interests[0])
	assert.Equal(t, "q1", s.QuestionHistory[0])
}

func TestApply(t *testing.T) {
	s := New("s1", time.Now())
	prefs := preference.Record{Gender: preference.GenderFemale}

	s.Apply(Patch{
		Preferences: &prefs,
		Metadata:    map[string]interface{}{"user_agent": "curl"},
	})

	assert.Equal(t, preference.GenderFemale, s.Preferences.Gender)
	assert.Equal(t, "curl", s.Metadata["user_agent"])
	assert.Equal(t, 1, s.Metadata["session_count"])
	assert.Empty(t, s.QuestionHistory)
}
