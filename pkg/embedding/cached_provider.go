package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"gift-recommender-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// VectorStore persists embeddings across restarts, keyed by content hash.
type VectorStore interface {
	Lookup(ctx context.Context, contentHash, model string) ([]float32, bool, error)
	Store(ctx context.Context, contentHash, model, document string, values []float32) error
}

// CachedProvider memoizes embeddings in process and, when a VectorStore is
// set, in the database. Store failures are logged and never fail a request.
type CachedProvider struct {
	inner  EmbeddingProvider
	model  string
	memo   *cache.Cache
	store  VectorStore
	logger logger.ILogger
}

func NewCachedProvider(inner EmbeddingProvider, model string, ttl time.Duration, store VectorStore, log logger.ILogger) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		model:  model,
		memo:   cache.New(ttl, 2*ttl),
		store:  store,
		logger: log,
	}
}

// ContentHash is the cache key for text under a given task.
func ContentHash(taskType, text string) string {
	sum := sha256.Sum256([]byte(taskType + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

func (p *CachedProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	key := ContentHash(taskType, text)

	if v, found := p.memo.Get(key); found {
		return newResponse(v.([]float32)), nil
	}

	if p.store != nil {
		values, ok, err := p.store.Lookup(ctx, key, p.model)
		if err != nil {
			p.logger.Warn("EmbeddingCache", "Vector store lookup failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else if ok {
			p.memo.SetDefault(key, values)
			return newResponse(values), nil
		}
	}

	resp, err := p.inner.Generate(ctx, text, taskType)
	if err != nil {
		return nil, err
	}
	values := resp.Embedding.Values
	p.memo.SetDefault(key, values)

	if p.store != nil {
		if err := p.store.Store(ctx, key, p.model, text, values); err != nil {
			p.logger.Warn("EmbeddingCache", "Vector store write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return resp, nil
}

func (p *CachedProvider) ItemCount() int {
	return p.memo.ItemCount()
}

func (p *CachedProvider) Flush() {
	p.memo.Flush()
}
