package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ProductEmbedding caches the vector of a product document. Rows are keyed by
// the document's content hash and the model that produced the vector, so an
// edited product or a provider switch simply misses. The column is an
// untyped vector so any provider dimension fits.
type ProductEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContentHash    string          `gorm:"type:char(64);not null;uniqueIndex:idx_product_embeddings_hash_model"`
	Model          string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_embeddings_hash_model"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (ProductEmbedding) TableName() string {
	return "product_embeddings"
}
