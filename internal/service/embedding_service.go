package service

import (
	"context"
	"fmt"

	"gift-recommender-be/internal/dto"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/repository/specification"
	"gift-recommender-be/internal/repository/unitofwork"
	"gift-recommender-be/pkg/embedding"

	"github.com/gofiber/fiber/v2"
)

const defaultSearchThreshold = 0.3

type IEmbeddingService interface {
	Search(ctx context.Context, req *dto.EmbeddingSearchRequest) ([]*dto.EmbeddingSearchResult, error)
	Stats(ctx context.Context) (*dto.EmbeddingStatsResponse, error)
	Purge(ctx context.Context) error
}

type embeddingService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   embedding.EmbeddingProvider
	cache      *embedding.CachedProvider
	model      string
	logger     logger.ILogger
}

// NewEmbeddingService serves the operator view of the persisted vector cache.
// uowFactory may be nil when no database is configured.
func NewEmbeddingService(
	uowFactory unitofwork.RepositoryFactory,
	provider embedding.EmbeddingProvider,
	cache *embedding.CachedProvider,
	model string,
	log logger.ILogger,
) IEmbeddingService {
	return &embeddingService{
		uowFactory: uowFactory,
		provider:   provider,
		cache:      cache,
		model:      model,
		logger:     log,
	}
}

func (s *embeddingService) Search(ctx context.Context, req *dto.EmbeddingSearchRequest) ([]*dto.EmbeddingSearchResult, error) {
	if s.uowFactory == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "embedding store is not configured")
	}

	resp, err := s.provider.Generate(ctx, req.Query, embedding.TaskQuery)
	if err != nil {
		return nil, fmt.Errorf("embed search query: %w", err)
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = defaultSearchThreshold
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.ProductEmbeddingRepository().SearchSimilarWithScore(ctx, resp.Embedding.Values, s.model, req.Limit, threshold)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.EmbeddingSearchResult, 0, len(scored))
	for _, sc := range scored {
		out = append(out, &dto.EmbeddingSearchResult{
			Id:         sc.Embedding.Id.String(),
			Document:   sc.Embedding.Document,
			Similarity: sc.Similarity,
		})
	}
	return out, nil
}

func (s *embeddingService) Stats(ctx context.Context) (*dto.EmbeddingStatsResponse, error) {
	res := &dto.EmbeddingStatsResponse{Model: s.model}
	if s.cache != nil {
		res.Memoized = s.cache.ItemCount()
	}
	if s.uowFactory == nil {
		return res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ProductEmbeddingRepository().Count(ctx, specification.ByModel{Model: s.model})
	if err != nil {
		return nil, err
	}
	res.Stored = count
	return res, nil
}

// Purge forgets every vector of the active model, in memory and in the database.
func (s *embeddingService) Purge(ctx context.Context) error {
	if s.cache != nil {
		s.cache.Flush()
	}
	if s.uowFactory == nil {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProductEmbeddingRepository().DeleteByModel(ctx, s.model); err != nil {
		return err
	}
	s.logger.Info("EmbeddingService", "Purged persisted embeddings", map[string]interface{}{"model": s.model})
	return nil
}
