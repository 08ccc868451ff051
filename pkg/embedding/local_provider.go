package embedding

import (
	"context"
	"hash/fnv"
	"strings"

	"gift-recommender-be/pkg/understanding"
)

const LocalDefaultDimensions = 384

// LocalProvider is an offline, deterministic embedder. It hashes normalized
// words and character trigrams into a fixed number of buckets, so texts that
// share vocabulary land close together and disjoint texts score zero.
type LocalProvider struct {
	dimensions int
}

func NewLocalProvider(dimensions int) EmbeddingProvider {
	if dimensions <= 0 {
		dimensions = LocalDefaultDimensions
	}
	return &LocalProvider{dimensions: dimensions}
}

func (p *LocalProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]float32, p.dimensions)
	for _, word := range strings.Fields(understanding.Normalize(text)) {
		values[p.bucket("w:"+word)] += 2

		runes := []rune(" " + word + " ")
		for i := 0; i+3 <= len(runes); i++ {
			values[p.bucket("t:"+string(runes[i:i+3]))]++
		}
	}

	return newResponse(normalizeVector(values)), nil
}

func (p *LocalProvider) bucket(feature string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(feature))
	return int(h.Sum32() % uint32(p.dimensions))
}
