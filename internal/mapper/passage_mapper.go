package mapper

import (
	"encoding/json"

	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToModel(e *entity.Passage) *model.Passage {
	characters, _ := json.Marshal(e.Characters)

	p := &model.Passage{
		Id:         e.Id,
		ExternalId: e.ExternalId,
		Text:       e.Text,
		Kanda:      e.Kanda,
		Topic:      e.Topic,
		Characters: datatypes.JSON(characters),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if len(e.Embedding) > 0 {
		vec := pgvector.NewVector(e.Embedding)
		p.Embedding = &vec
	}
	return p
}

func (m *PassageMapper) ToEntity(p *model.Passage) *entity.Passage {
	var characters []string
	if len(p.Characters) > 0 {
		// A malformed column is treated as no characters rather than an error.
		_ = json.Unmarshal(p.Characters, &characters)
	}

	e := &entity.Passage{
		Id:         p.Id,
		ExternalId: p.ExternalId,
		Text:       p.Text,
		Kanda:      p.Kanda,
		Topic:      p.Topic,
		Characters: characters,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if p.Embedding != nil {
		e.Embedding = p.Embedding.Slice()
	}
	return e
}
