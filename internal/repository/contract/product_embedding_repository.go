package contract

import (
	"context"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/repository/specification"
)

// ScoredProductEmbedding wraps ProductEmbedding with its similarity score
type ScoredProductEmbedding struct {
	Embedding  *entity.ProductEmbedding
	Similarity float64
}

type ProductEmbeddingRepository interface {
	// Upsert inserts the row or refreshes the vector stored for the same
	// content hash and model.
	Upsert(ctx context.Context, embedding *entity.ProductEmbedding) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByModel(ctx context.Context, model string) error
	SearchSimilarWithScore(ctx context.Context, embedding []float32, model string, limit int, threshold float64) ([]*ScoredProductEmbedding, error)
}
