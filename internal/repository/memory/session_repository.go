package memory

import (
	"context"
	"time"

	"gift-recommender-be/internal/metrics"
	"gift-recommender-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in process memory. Entries never expire on
// their own; age-based removal is left to Sweep so the idle clock follows the
// session's LastAccessed field rather than cache insertion time.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session).Clone(), nil
	}
	return nil, store.ErrSessionNotFound
}

func (r *SessionRepository) Save(ctx context.Context, s *store.Session) error {
	r.cache.Set(s.ID, s.Clone(), cache.NoExpiration)
	metrics.SessionsActive.Set(float64(r.cache.ItemCount()))
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, found := r.cache.Get(id); !found {
		return false, nil
	}
	r.cache.Delete(id)
	metrics.SessionsActive.Set(float64(r.cache.ItemCount()))
	return true, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]string, error) {
	items := r.cache.Items()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *SessionRepository) Sweep(ctx context.Context, maxAge time.Duration, now time.Time) (int, error) {
	removed := 0
	for id, item := range r.cache.Items() {
		s, ok := item.Object.(*store.Session)
		if !ok || now.Sub(s.LastAccessed) > maxAge {
			r.cache.Delete(id)
			removed++
		}
	}
	metrics.SessionsExpired.Add(float64(removed))
	metrics.SessionsActive.Set(float64(r.cache.ItemCount()))
	return removed, nil
}
