package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Passage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalId string    `gorm:"size:64;uniqueIndex"`
	Text       string    `gorm:"type:text"`
	Kanda      string    `gorm:"size:64;index"`
	Topic      string    `gorm:"size:128"`
	Characters datatypes.JSON
	// text-embedding-004 / nomic-embed-text both produce 768 dimensions
	Embedding *pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (Passage) TableName() string {
	return "passages"
}
