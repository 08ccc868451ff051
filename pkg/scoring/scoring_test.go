package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingOn struct {
	inner  embedding.EmbeddingProvider
	needle string
}

func (p failingOn) Generate(ctx context.Context, text, task string) (*embedding.EmbeddingResponse, error) {
	if strings.Contains(text, p.needle) {
		return nil, errors.New("provider rejected input")
	}
	return p.inner.Generate(ctx, text, task)
}

func TestBuildDocument(t *testing.T) {
	p := &entity.Product{
		Name:        "ساعة",
		Description: "ساعة يد",
		Tags:        entity.StringList{"a", "", "b"},
		Occasion:    entity.StringList{"birthday"},
		Brand:       "X",
	}
	got := BuildDocument(p, ContentFields, DefaultFieldWeights)
	assert.Equal(t, "ساعة ساعة يد a b birthday birthday X", got)

	assert.Equal(t, "", BuildDocument(&entity.Product{}, ContentFields, DefaultFieldWeights))
}

func TestRepeatCount(t *testing.T) {
	weights := map[string]float64{"low": 0.2, "mid": 2.9, "zero": 0}
	assert.Equal(t, 1, repeatCount(weights, "low"))
	assert.Equal(t, 2, repeatCount(weights, "mid"))
	assert.Equal(t, 1, repeatCount(weights, "zero"))
	assert.Equal(t, 1, repeatCount(weights, "unknown"))
}

func TestIsMeaningful(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"ab", false},
		{"word", false},
		{"aaaa bbb", false},
		{"هديييية حلوة", false},
		{"123 456", false},
		{"12.5, 30", false},
		{"!!! ???", false},
		{"ساعة يد", true},
		{"aaa bbb", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMeaningful(tt.text), "text %q", tt.text)
	}
}

func TestScorer_Score(t *testing.T) {
	match := &entity.Product{
		Id:          uuid.New(),
		Name:        "ساعة رجالي جلد",
		Description: "ساعة يد رجالي فخمة",
		Tags:        entity.StringList{"ساعات", "رجالي"},
	}
	unrelated := &entity.Product{Id: uuid.New(), Name: "qqq www", Description: "zzz vvv"}
	broken := &entity.Product{Id: uuid.New(), Name: "boom item", Description: "boom description"}
	thin := &entity.Product{Id: uuid.New(), Name: "x"}

	provider := failingOn{inner: embedding.NewLocalProvider(0), needle: "boom"}
	s := NewScorer(provider, logger.NewNopLogger())

	ctx := context.Background()
	query, err := s.EmbedQuery(ctx, "ساعة رجالي")
	require.NoError(t, err)

	got, err := s.Score(ctx, []*entity.Product{unrelated, broken, match, nil, thin}, query)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Same(t, match, got[0].Product)
	assert.GreaterOrEqual(t, got[0].Similarity, DefaultSimilarityThreshold)
	assert.Zero(t, got[0].PreferenceScore)
}

func TestScorer_ThresholdOption(t *testing.T) {
	p := &entity.Product{Id: uuid.New(), Name: "ساعة رجالي جلد", Description: "ساعة يد رجالي فخمة"}
	s := NewScorer(embedding.NewLocalProvider(0), logger.NewNopLogger(), WithThreshold(1.01))

	query, err := s.EmbedQuery(context.Background(), "ساعة رجالي")
	require.NoError(t, err)
	got, err := s.Score(context.Background(), []*entity.Product{p}, query)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScorer_CancelledContext(t *testing.T) {
	s := NewScorer(embedding.NewLocalProvider(0), logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Score(ctx, []*entity.Product{{Name: "ساعة يد", Description: "ساعة يد"}}, []float32{1})
	assert.ErrorIs(t, err, context.Canceled)
}
