package contract

import (
	"context"

	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/repository/specification"

	"github.com/google/uuid"
)

// PassageRepository owns the persisted corpus. Passages are written by the
// seeding path and the embedding consumer only; the pipeline reads.
type PassageRepository interface {
	Create(ctx context.Context, passage *entity.Passage) error
	CreateBulk(ctx context.Context, passages []*entity.Passage) error
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
	DeleteAll(ctx context.Context) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Passage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar ranks embedded passages by cosine distance to the query
	// vector, nearest first. Passages without an embedding never match.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.Passage, error)
}
