package scoring

import (
	"context"
	"fmt"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/metrics"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/embedding"
)

const DefaultSimilarityThreshold = 0.15

// Candidate is a catalog product annotated with its scores for one request.
type Candidate struct {
	Product         *entity.Product
	Similarity      float64
	PreferenceScore int
	FinalScore      float64
}

type Scorer struct {
	provider  embedding.EmbeddingProvider
	logger    logger.ILogger
	fields    []string
	weights   map[string]float64
	threshold float64
}

type Option func(*Scorer)

func WithThreshold(threshold float64) Option {
	return func(s *Scorer) { s.threshold = threshold }
}

func WithFieldWeights(weights map[string]float64) Option {
	return func(s *Scorer) { s.weights = weights }
}

func NewScorer(provider embedding.EmbeddingProvider, log logger.ILogger, opts ...Option) *Scorer {
	s := &Scorer{
		provider:  provider,
		logger:    log,
		fields:    ContentFields,
		weights:   DefaultFieldWeights,
		threshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EmbedQuery embeds the conversation context once per request.
func (s *Scorer) EmbedQuery(ctx context.Context, conversationContext string) ([]float32, error) {
	return s.embed(ctx, conversationContext, embedding.TaskQuery)
}

// Score embeds every meaningful product and keeps those at or above the
// similarity threshold, in catalog order. A product whose embedding fails is
// logged and skipped. Only a cancelled context aborts the batch.
func (s *Scorer) Score(ctx context.Context, products []*entity.Product, query []float32) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(products))

	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}

		doc := BuildDocument(p, s.fields, s.weights)
		if !IsMeaningful(doc) {
			metrics.ItemsSkipped.WithLabelValues("not_meaningful").Inc()
			continue
		}

		vec, err := s.embed(ctx, doc, embedding.TaskDocument)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			metrics.ItemsSkipped.WithLabelValues("embed_error").Inc()
			s.logger.Warn("Scorer", "Failed to embed product, skipping", map[string]interface{}{
				"product_id": p.Id.String(),
				"name":       p.Name,
				"error":      err.Error(),
			})
			continue
		}

		similarity := embedding.CosineSimilarity(query, vec)
		if similarity < s.threshold {
			metrics.ItemsSkipped.WithLabelValues("below_threshold").Inc()
			continue
		}

		candidates = append(candidates, Candidate{Product: p, Similarity: similarity})
	}

	s.logger.Debug("Scorer", "Scored catalog", map[string]interface{}{
		"products":   len(products),
		"candidates": len(candidates),
	})
	return candidates, nil
}

func (s *Scorer) embed(ctx context.Context, text, task string) ([]float32, error) {
	started := time.Now()
	resp, err := s.provider.Generate(ctx, text, task)
	metrics.ObserveEmbedding(task, started)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding for %s", task)
	}
	return resp.Embedding.Values, nil
}
