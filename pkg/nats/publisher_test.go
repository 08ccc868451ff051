package nats

import (
	"testing"

	"gift-recommender-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "gift.events.recommendation_served", Subject(events.TypeRecommendationServed))
	assert.Equal(t, "gift.events.sessions_swept", Subject(events.TypeSessionsSwept))
}
