package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is an indexed corpus excerpt. Rows are immutable once seeded; only
// the embedding is filled in after the fact by the consumer service.
type Passage struct {
	Id         uuid.UUID
	ExternalId string // corpus record id, e.g. "bala_001"
	Text       string
	Kanda      string
	Topic      string
	Characters []string
	Embedding  []float32 // nil until embedded
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Embedded reports whether this passage is visible to vector search.
func (p *Passage) Embedded() bool {
	return len(p.Embedding) > 0
}
