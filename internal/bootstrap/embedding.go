package bootstrap

import (
	"fmt"
	"strconv"

	"gift-recommender-be/internal/config"
	"gift-recommender-be/pkg/embedding"
	"gift-recommender-be/pkg/embedding/jina"
)

// embeddingFactory picks the provider named in config. The returned model key
// namespaces persisted vectors so switching providers never mixes spaces.
func embeddingFactory(cfg config.AIConfig) (embedding.Factory, string, error) {
	switch cfg.EmbeddingProvider {
	case "", "local":
		return func() (embedding.EmbeddingProvider, error) {
			return embedding.NewLocalProvider(cfg.LocalDimensions), nil
		}, "local:" + strconv.Itoa(cfg.LocalDimensions), nil

	case "ollama":
		return func() (embedding.EmbeddingProvider, error) {
			return embedding.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout), nil
		}, "ollama:" + cfg.OllamaModel, nil

	case "gemini":
		return func() (embedding.EmbeddingProvider, error) {
			if cfg.GeminiAPIKey == "" {
				return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY is required for the gemini provider")
			}
			return embedding.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout), nil
		}, "gemini:" + cfg.GeminiModel, nil

	case "jina":
		return func() (embedding.EmbeddingProvider, error) {
			if cfg.JinaAPIKey == "" {
				return nil, fmt.Errorf("JINA_API_KEY is required for the jina provider")
			}
			return jina.NewJinaProvider(cfg.JinaAPIKey, "", cfg.Timeout), nil
		}, "jina:jina-embeddings-v3", nil
	}

	return nil, "", fmt.Errorf("unknown embedding provider %q", cfg.EmbeddingProvider)
}
