package integration

import (
	"context"
	"testing"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/repository/specification"
	"gift-recommender-be/internal/repository/unitofwork"
	"gift-recommender-be/internal/service"
	"gift-recommender-be/pkg/catalog"
	"gift-recommender-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Exec("DELETE FROM products").Error)

	factory := unitofwork.NewRepositoryFactory(db)
	uow := factory.NewUnitOfWork(ctx)

	watch := &entity.Product{
		Id:           uuid.New(),
		Name:         "ساعة يد نسائية",
		Description:  "ساعة أنيقة بسوار جلد",
		Price:        800,
		Category:     "accessories",
		TargetGender: "female",
		Tags:         entity.StringList{"watches"},
		Occasion:     entity.StringList{"birthday"},
	}
	book := &entity.Product{
		Id:          uuid.New(),
		Name:        "مكتبة روايات",
		Description: "خمس روايات في علبة هدايا",
		Price:       300,
		Category:    "books",
	}

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ProductRepository().CreateBulk(ctx, []*entity.Product{watch, book}))
	require.NoError(t, uow.Commit())

	t.Run("FindOne by id", func(t *testing.T) {
		found, err := factory.NewUnitOfWork(ctx).ProductRepository().FindOne(ctx, specification.ByID{ID: watch.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, watch.Name, found.Name)
		assert.Equal(t, []string{"birthday"}, []string(found.Occasion))
	})

	t.Run("FindOne missing", func(t *testing.T) {
		found, err := factory.NewUnitOfWork(ctx).ProductRepository().FindOne(ctx, specification.ByID{ID: uuid.New()})
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Filter by category and price", func(t *testing.T) {
		repo := factory.NewUnitOfWork(ctx).ProductRepository()
		books, err := repo.FindAll(ctx, specification.ByCategory{Category: "books"})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, book.Id, books[0].Id)

		n, err := repo.Count(ctx, specification.PriceBetween{Min: 500})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("RepositorySource", func(t *testing.T) {
		all, err := catalog.NewRepositorySource(factory).All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Rollback discards writes", func(t *testing.T) {
		tx := factory.NewUnitOfWork(ctx)
		require.NoError(t, tx.Begin(ctx))
		require.NoError(t, tx.ProductRepository().Create(ctx, &entity.Product{Id: uuid.New(), Name: "مؤقت", Description: "منتج مؤقت"}))
		require.NoError(t, tx.Rollback())

		n, err := factory.NewUnitOfWork(ctx).ProductRepository().Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})
}

func TestProductEmbeddingStore(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	const modelKey = "local:16"
	require.NoError(t, db.Exec("DELETE FROM product_embeddings").Error)

	factory := unitofwork.NewRepositoryFactory(db)
	store := service.NewProductEmbeddingStore(factory)

	_, ok, err := store.Lookup(ctx, "missing", modelKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Store(ctx, "hash-a", modelKey, "ساعة", []float32{1, 0, 0, 0}))
	require.NoError(t, store.Store(ctx, "hash-b", modelKey, "كتاب", []float32{0, 1, 0, 0}))
	// same key refreshes the vector in place
	require.NoError(t, store.Store(ctx, "hash-a", modelKey, "ساعة", []float32{0.9, 0.1, 0, 0}))

	values, ok, err := store.Lookup(ctx, "hash-a", modelKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.9, values[0], 1e-6)

	repo := factory.NewUnitOfWork(ctx).ProductEmbeddingRepository()
	n, err := repo.Count(ctx, specification.ByModel{Model: modelKey})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	hits, err := repo.SearchSimilarWithScore(ctx, []float32{1, 0, 0, 0}, modelKey, 5, 0.5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "hash-a", hits[0].Embedding.ContentHash)
	assert.Greater(t, hits[0].Similarity, 0.9)

	t.Run("CachedProvider reads through the store", func(t *testing.T) {
		inner := embedding.NewLocalProvider(16)
		first := embedding.NewCachedProvider(inner, modelKey, time.Minute, store, logger.NewNopLogger())
		_, err := first.Generate(ctx, "هدية عيد ميلاد", embedding.TaskDocument)
		require.NoError(t, err)

		after, err := repo.Count(ctx, specification.ByModel{Model: modelKey})
		require.NoError(t, err)
		assert.EqualValues(t, 3, after)
	})

	require.NoError(t, repo.DeleteByModel(ctx, modelKey))
	n, err = repo.Count(ctx, specification.ByModel{Model: modelKey})
	require.NoError(t, err)
	assert.Zero(t, n)
}
