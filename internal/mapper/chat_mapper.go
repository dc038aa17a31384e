package mapper

import (
	"encoding/json"

	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToModel(e *entity.ChatSession) *model.ChatSession {
	return &model.ChatSession{
		Id:        e.Id,
		Title:     e.Title,
		Language:  e.Language,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	return &entity.ChatSession{
		Id:        s.Id,
		Title:     s.Title,
		Language:  s.Language,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) TurnToModel(e *entity.ChatTurn) *model.ChatTurn {
	passages, _ := json.Marshal(e.Passages)

	return &model.ChatTurn{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Query:         e.Query,
		Answer:        e.Answer,
		Language:      e.Language,
		QueryEn:       e.QueryEn,
		Passages:      datatypes.JSON(passages),
		CreatedAt:     e.CreatedAt,
	}
}

func (m *ChatMapper) TurnToEntity(t *model.ChatTurn) *entity.ChatTurn {
	var passages []entity.PassageExcerpt
	if len(t.Passages) > 0 {
		_ = json.Unmarshal(t.Passages, &passages)
	}

	return &entity.ChatTurn{
		Id:            t.Id,
		ChatSessionId: t.ChatSessionId,
		Query:         t.Query,
		Answer:        t.Answer,
		Language:      t.Language,
		QueryEn:       t.QueryEn,
		Passages:      passages,
		CreatedAt:     t.CreatedAt,
	}
}
