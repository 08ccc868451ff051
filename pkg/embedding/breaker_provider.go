package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gift-recommender-be/internal/pkg/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

type BreakerSettings struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
}

// BreakerProvider stops calling a failing provider for a while after
// MaxFailures consecutive errors.
type BreakerProvider struct {
	inner EmbeddingProvider
	cb    *gobreaker.CircuitBreaker[*EmbeddingResponse]
}

func NewBreakerProvider(inner EmbeddingProvider, settings BreakerSettings, log logger.ILogger) *BreakerProvider {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 5
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = 30 * time.Second
	}
	if settings.Name == "" {
		settings.Name = "embedding"
	}

	cb := gobreaker.NewCircuitBreaker[*EmbeddingResponse](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// a cancelled caller says nothing about provider health
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("EmbeddingBreaker", "Circuit state changed", map[string]interface{}{
				"name": name,
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return &BreakerProvider{inner: inner, cb: cb}
}

func (p *BreakerProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	resp, err := p.cb.Execute(func() (*EmbeddingResponse, error) {
		return p.inner.Generate(ctx, text, taskType)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return resp, err
}

func (p *BreakerProvider) State() string {
	return p.cb.State().String()
}
