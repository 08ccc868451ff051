package bootstrap

import (
	"context"
	"testing"

	"gift-recommender-be/internal/config"
	"gift-recommender-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingFactory(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AIConfig
		model    string
		buildErr bool
	}{
		{"local", config.AIConfig{EmbeddingProvider: "local", LocalDimensions: 64}, "local:64", false},
		{"ollama", config.AIConfig{EmbeddingProvider: "ollama", OllamaModel: "nomic-embed-text"}, "ollama:nomic-embed-text", false},
		{"gemini without key", config.AIConfig{EmbeddingProvider: "gemini", GeminiModel: "text-embedding-004"}, "gemini:text-embedding-004", true},
		{"jina without key", config.AIConfig{EmbeddingProvider: "jina"}, "jina:jina-embeddings-v3", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, model, err := embeddingFactory(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.model, model)

			_, err = factory()
			if tt.buildErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, _, err := embeddingFactory(config.AIConfig{EmbeddingProvider: "word2vec"})
	assert.Error(t, err)
}

func TestEmbeddingFactory_LocalGenerates(t *testing.T) {
	factory, _, err := embeddingFactory(config.AIConfig{EmbeddingProvider: "local", LocalDimensions: 32})
	require.NoError(t, err)

	p, err := factory()
	require.NoError(t, err)
	resp, err := p.Generate(context.Background(), "ساعة يد", embedding.TaskQuery)
	require.NoError(t, err)
	assert.Len(t, resp.Embedding.Values, 32)
}
