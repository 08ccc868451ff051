package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/repository/memory"
	"gift-recommender-be/pkg/catalog"
	"gift-recommender-be/pkg/embedding"
	"gift-recommender-be/pkg/events"
	"gift-recommender-be/pkg/message"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/scoring"
	"gift-recommender-be/pkg/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 2, 20, 11, 0, 0, 0, time.UTC) }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

type failingSource struct{ err error }

func (s failingSource) All(context.Context) ([]*entity.Product, error) { return nil, s.err }

type panickingSource struct{}

func (panickingSource) All(context.Context) ([]*entity.Product, error) { panic("catalog exploded") }

// keyedProvider returns an orthogonal vector for any text containing needle.
type keyedProvider struct{ needle string }

func (p keyedProvider) Generate(_ context.Context, text, _ string) (*embedding.EmbeddingResponse, error) {
	vec := []float32{1, 0}
	if strings.Contains(text, p.needle) {
		vec = []float32{0, 1}
	}
	return &embedding.EmbeddingResponse{Embedding: embedding.EmbeddingResponseEmbedding{Values: vec}}, nil
}

func product(name, description, gender string, occasions, tags []string, price float64) *entity.Product {
	return &entity.Product{
		Id:           uuid.New(),
		Name:         name,
		Description:  description,
		TargetGender: gender,
		Occasion:     entity.StringList(occasions),
		Tags:         entity.StringList(tags),
		Price:        price,
	}
}

func newTestPipeline(src catalog.Source, opts ...func(*Deps)) *Pipeline {
	log := logger.NewNopLogger()
	d := Deps{
		Catalog:   src,
		Scorer:    scoring.NewScorer(embedding.NewLocalProvider(0), log, scoring.WithThreshold(0)),
		Formatter: message.NewFormatter(rand.New(rand.NewSource(1)), fixedNow),
		Logger:    log,
		Now:       fixedNow,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return NewPipeline(d)
}

func TestSuggest_BirthdayGiftForSister(t *testing.T) {
	watch := product("ساعة يد نسائية", "ساعة أنيقة بسوار جلد", "female", []string{"birthday"}, []string{"watches"}, 800)
	wallet := product("محفظة جلد رجالي", "محفظة عملية بجيوب كتير", "male", []string{"birthday"}, []string{"wallets"}, 400)
	toy := product("لعبة تركيب خشب", "لعبة تنمي الذكاء للصغار", "", []string{"eid"}, nil, 900)

	pub := &recordingPublisher{}
	p := newTestPipeline(catalog.StaticSource{watch, wallet, toy}, func(d *Deps) { d.Publisher = pub })

	res := p.Suggest(context.Background(), Request{Question: "عايز هدية عيد ميلاد لأختي بتحب الساعات", TopK: 3})

	require.Empty(t, res.Error)
	require.Len(t, res.Products, 1)
	assert.Equal(t, watch.Id.String(), res.Products[0].ID)
	assert.Greater(t, res.Products[0].PreferenceScore, 0)
	assert.NotEmpty(t, res.Message)

	require.NotNil(t, res.Context)
	assert.Equal(t, preference.GenderFemale, res.Context.Preferences.Gender)
	assert.Equal(t, "birthday", res.Context.Preferences.Occasion)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeRecommendationServed, pub.events[0].EventType())
	assert.Equal(t, []string{watch.Id.String()}, pub.events[0].Payload()["product_ids"])
}

func TestSuggest_EmptyCatalogKeepsContext(t *testing.T) {
	p := newTestPipeline(catalog.StaticSource{})

	res := p.Suggest(context.Background(), Request{Question: "هدية عيد ميلاد لبنت"})

	assert.Equal(t, MessageEmptyCatalog, res.Message)
	assert.Empty(t, res.Products)
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Error)
	require.NotNil(t, res.Context)
	assert.Equal(t, "birthday", res.Context.Preferences.Occasion)
}

func TestSuggest_TopKCoercion(t *testing.T) {
	var products catalog.StaticSource
	for i := 0; i < 8; i++ {
		products = append(products, product(
			fmt.Sprintf("شنطة يد رقم %d", i),
			fmt.Sprintf("شنطة جلد طبيعي موديل %d", i),
			"female", []string{"birthday"}, []string{"bags"}, 500,
		))
	}
	p := newTestPipeline(products)

	res := p.Suggest(context.Background(), Request{Question: "شنطة لأختي", TopK: []int{1, 2}})
	assert.Len(t, res.Products, DefaultTopK)

	res = p.Suggest(context.Background(), Request{Question: "شنطة لأختي", TopK: "2"})
	assert.Len(t, res.Products, 2)
}

func TestCoerceTopK(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want int
	}{
		{"int", 3, 3},
		{"float truncates", 2.9, 2},
		{"numeric string", " 7 ", 7},
		{"zero", 0, DefaultTopK},
		{"negative", -4, DefaultTopK},
		{"slice", []int{1, 2}, DefaultTopK},
		{"map", map[string]int{"a": 1}, DefaultTopK},
		{"garbage string", "many", DefaultTopK},
		{"nil", nil, DefaultTopK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceTopK(tt.in))
		})
	}
}

func TestSuggest_SimilarityFloor(t *testing.T) {
	match := product("ساعة يد كلاسيك", "ساعة بسوار معدن", "", nil, nil, 300)
	unrelated := product("خرطوم جنينة طويل", "خرطوم مياه garden للري", "", nil, nil, 100)

	p := newTestPipeline(catalog.StaticSource{match, unrelated}, func(d *Deps) {
		d.Scorer = scoring.NewScorer(keyedProvider{needle: "garden"}, logger.NewNopLogger())
	})

	res := p.Suggest(context.Background(), Request{Question: "عايز ساعة"})
	require.Len(t, res.Products, 1)
	assert.Equal(t, match.Id.String(), res.Products[0].ID)
	assert.InDelta(t, 1.0, res.Products[0].Score, 1e-6)
}

func TestSuggest_QualityGateDropsThinProducts(t *testing.T) {
	good := product("ساعة يد كلاسيك", "ساعة بسوار معدن", "", nil, nil, 300)
	thin := product("ساعة", "ساعة بسوار معدن", "", nil, nil, 300)

	p := newTestPipeline(catalog.StaticSource{good, thin})
	res := p.Suggest(context.Background(), Request{Question: "عايز ساعة"})

	require.Len(t, res.Products, 1)
	assert.Equal(t, good.Id.String(), res.Products[0].ID)
}

func TestSuggest_SessionAccumulatesAndCapsHistory(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(memory.NewSessionRepository(), logger.NewNopLogger(), session.WithClock(fixedNow))
	p := newTestPipeline(catalog.StaticSource{
		product("ساعة يد نسائية", "ساعة أنيقة بسوار جلد", "female", []string{"birthday"}, []string{"watches"}, 800),
	}, func(d *Deps) { d.Sessions = sessions })

	first := p.Suggest(ctx, Request{Question: "هدية عيد ميلاد", SessionID: "conv-1"})
	require.Empty(t, first.Error)
	assert.Equal(t, "conv-1", first.SessionID)

	second := p.Suggest(ctx, Request{Question: "لأختي", SessionID: "conv-1"})
	require.NotNil(t, second.Context)
	assert.Equal(t, "birthday", second.Context.Preferences.Occasion)
	assert.Equal(t, preference.GenderFemale, second.Context.Preferences.Gender)

	for i := 0; i < 5; i++ {
		p.Suggest(ctx, Request{Question: fmt.Sprintf("سؤال رقم %d", i), SessionID: "conv-1"})
	}

	s, err := sessions.Get(ctx, "conv-1")
	require.NoError(t, err)
	require.Len(t, s.QuestionHistory, session.DefaultHistoryLimit)
	assert.Equal(t, "سؤال رقم 4", s.QuestionHistory[len(s.QuestionHistory)-1])
}

func TestSuggest_SessionlessRequestCreatesNoSession(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManager(memory.NewSessionRepository(), logger.NewNopLogger(), session.WithClock(fixedNow))
	p := newTestPipeline(catalog.StaticSource{}, func(d *Deps) { d.Sessions = sessions })

	p.Suggest(ctx, Request{Question: "هدية"})

	ids, err := sessions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSuggest_CatalogFailureFallsBack(t *testing.T) {
	p := newTestPipeline(failingSource{err: errors.New("connection refused")})

	res := p.Suggest(context.Background(), Request{Question: "هدية", SessionID: "s1"})

	assert.Equal(t, MessageSystemError, res.Message)
	assert.Empty(t, res.Products)
	assert.Contains(t, res.Error, "connection refused")
	assert.Equal(t, "s1", res.SessionID)
	assert.Nil(t, res.Context)
}

func TestSuggest_RecoversFromPanic(t *testing.T) {
	p := newTestPipeline(panickingSource{})

	var res Result
	require.NotPanics(t, func() {
		res = p.Suggest(context.Background(), Request{Question: "هدية"})
	})
	assert.Equal(t, MessageSystemError, res.Message)
	assert.Contains(t, res.Error, "catalog exploded")
}

func TestBuildConversationContext(t *testing.T) {
	tests := []struct {
		name     string
		question string
		prior    []string
		prefs    preference.Record
		want     string
	}{
		{
			name:     "question only",
			question: "عايز هدية",
			want:     "عايز هدية",
		},
		{
			name:     "preferences hint",
			question: "عايز هدية",
			prefs:    preference.Record{Interests: []string{"watches", "perfumes"}, Occasion: "birthday"},
			want:     "[معلومات المستخدم: يحب/تحب: watches, perfumes; مناسبات: birthday] عايز هدية",
		},
		{
			name:     "keeps last three prior questions",
			question: "q5",
			prior:    []string{"q1", "q2", "q3", "q4"},
			want:     "[أسئلة سابقة: q2 ... q3 ... q4] q5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildConversationContext(tt.question, tt.prior, tt.prefs))
		})
	}
}
