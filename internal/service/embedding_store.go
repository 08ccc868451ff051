package service

import (
	"context"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/repository/specification"
	"gift-recommender-be/internal/repository/unitofwork"
	"gift-recommender-be/pkg/embedding"

	"github.com/google/uuid"
)

// productEmbeddingStore persists computed vectors in product_embeddings so a
// restart does not re-embed the whole catalog.
type productEmbeddingStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProductEmbeddingStore(uowFactory unitofwork.RepositoryFactory) embedding.VectorStore {
	return &productEmbeddingStore{uowFactory: uowFactory}
}

func (s *productEmbeddingStore) Lookup(ctx context.Context, contentHash, model string) ([]float32, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	found, err := uow.ProductEmbeddingRepository().FindOne(ctx, specification.ByContentHash{Hash: contentHash, Model: model})
	if err != nil {
		return nil, false, err
	}
	if found == nil || len(found.EmbeddingValue) == 0 {
		return nil, false, nil
	}
	return found.EmbeddingValue, true, nil
}

func (s *productEmbeddingStore) Store(ctx context.Context, contentHash, model, document string, values []float32) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductEmbeddingRepository().Upsert(ctx, &entity.ProductEmbedding{
		Id:             uuid.New(),
		ContentHash:    contentHash,
		Model:          model,
		Document:       document,
		EmbeddingValue: values,
		CreatedAt:      time.Now(),
	})
}
