package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string                      `gorm:"type:varchar(255);not null"`
	Description  string                      `gorm:"type:text"`
	Price        float64                     `gorm:"type:numeric(12,2);default:0"`
	Image        string                      `gorm:"type:text"`
	Url          string                      `gorm:"type:text"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Occasion     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Season       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Seasons      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Interests    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Category     string                      `gorm:"type:varchar(100);index"`
	SubCategory  string                      `gorm:"type:varchar(100)"`
	Brand        string                      `gorm:"type:varchar(100)"`
	TargetGender string                      `gorm:"type:varchar(20)"`
	AgeGroup     string                      `gorm:"type:varchar(50)"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt              `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
