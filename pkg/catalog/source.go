package catalog

import (
	"context"
	"fmt"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/repository/specification"
	"gift-recommender-be/internal/repository/unitofwork"
)

// Source yields the full catalog snapshot scored by one request. An empty
// slice is a legitimate answer, not an error.
type Source interface {
	All(ctx context.Context) ([]*entity.Product, error)
}

// RepositorySource reads the products table through a unit of work.
type RepositorySource struct {
	factory unitofwork.RepositoryFactory
}

func NewRepositorySource(factory unitofwork.RepositoryFactory) *RepositorySource {
	return &RepositorySource{factory: factory}
}

func (s *RepositorySource) All(ctx context.Context) ([]*entity.Product, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return products, nil
}

// StaticSource serves a fixed in-memory snapshot.
type StaticSource []*entity.Product

func (s StaticSource) All(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, len(s))
	copy(out, s)
	return out, nil
}
