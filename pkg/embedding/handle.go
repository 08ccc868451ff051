package embedding

import (
	"context"
	"errors"
	"io"
	"sync"
)

var ErrHandleClosed = errors.New("embedding handle closed")

type Factory func() (EmbeddingProvider, error)

// Handle owns the process-wide provider. The factory runs at most once, on the
// first Generate or Get, no matter how many goroutines race to trigger it.
// Close releases the provider; a closed handle refuses further calls.
type Handle struct {
	factory Factory

	once     sync.Once
	provider EmbeddingProvider
	initErr  error

	mu     sync.RWMutex
	closed bool
}

func NewHandle(factory Factory) *Handle {
	return &Handle{factory: factory}
}

func (h *Handle) Get() (EmbeddingProvider, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil, ErrHandleClosed
	}

	h.once.Do(func() {
		h.provider, h.initErr = h.factory()
	})
	return h.provider, h.initErr
}

func (h *Handle) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	p, err := h.Get()
	if err != nil {
		return nil, err
	}
	return p.Generate(ctx, text, taskType)
}

func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	if c, ok := h.provider.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
