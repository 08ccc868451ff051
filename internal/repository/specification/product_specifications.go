package specification

import "gorm.io/gorm"

// ByCategory filters products by category
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// PriceBetween filters products by an inclusive price range. A zero bound is open.
type PriceBetween struct {
	Min float64
	Max float64
}

func (s PriceBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.Min > 0 {
		db = db.Where("price >= ?", s.Min)
	}
	if s.Max > 0 {
		db = db.Where("price <= ?", s.Max)
	}
	return db
}

// ByContentHash selects the cached embedding of a document for one model
type ByContentHash struct {
	Hash  string
	Model string
}

func (s ByContentHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content_hash = ? AND model = ?", s.Hash, s.Model)
}

// ByModel selects cached embeddings produced by one model
type ByModel struct {
	Model string
}

func (s ByModel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("model = ?", s.Model)
}
