package mapper

import (
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Product{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Image:        p.Image,
		Url:          p.Url,
		Tags:         entity.StringList(p.Tags),
		Occasion:     entity.StringList(p.Occasion),
		Season:       entity.StringList(p.Season),
		Seasons:      entity.StringList(p.Seasons),
		Interests:    entity.StringList(p.Interests),
		Category:     p.Category,
		SubCategory:  p.SubCategory,
		Brand:        p.Brand,
		TargetGender: p.TargetGender,
		AgeGroup:     p.AgeGroup,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Image:        p.Image,
		Url:          p.Url,
		Tags:         datatypes.JSONSlice[string](p.Tags),
		Occasion:     datatypes.JSONSlice[string](p.Occasion),
		Season:       datatypes.JSONSlice[string](p.Season),
		Seasons:      datatypes.JSONSlice[string](p.Seasons),
		Interests:    datatypes.JSONSlice[string](p.Interests),
		Category:     p.Category,
		SubCategory:  p.SubCategory,
		Brand:        p.Brand,
		TargetGender: p.TargetGender,
		AgeGroup:     p.AgeGroup,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type ProductEmbeddingMapper struct{}

func NewProductEmbeddingMapper() *ProductEmbeddingMapper {
	return &ProductEmbeddingMapper{}
}

func (m *ProductEmbeddingMapper) ToEntity(e *model.ProductEmbedding) *entity.ProductEmbedding {
	if e == nil {
		return nil
	}
	return &entity.ProductEmbedding{
		Id:             e.Id,
		ContentHash:    e.ContentHash,
		Model:          e.Model,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ProductEmbeddingMapper) ToModel(e *entity.ProductEmbedding) *model.ProductEmbedding {
	if e == nil {
		return nil
	}
	return &model.ProductEmbedding{
		Id:             e.Id,
		ContentHash:    e.ContentHash,
		Model:          e.Model,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}
