package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Language string `json:"language"`
}

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Language string    `json:"language"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Language  string     `json:"language"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type PassageExcerptDTO struct {
	Text  string `json:"text"`
	Kanda string `json:"kanda"`
	Topic string `json:"topic"`
}

type GetChatHistoryResponse struct {
	Id        uuid.UUID           `json:"id"`
	Query     string              `json:"query"`
	Answer    string              `json:"answer"`
	Language  string              `json:"language"`
	Passages  []PassageExcerptDTO `json:"passages,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type AskRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Query         string    `json:"query" validate:"required"`
	Language      string    `json:"language"`
}

// AskResponse mirrors the pipeline contract: exactly one of answer or error
// is present. Callers must render the error verbatim and never show a stale
// answer next to it.
type AskResponse struct {
	ChatSessionId uuid.UUID           `json:"chat_session_id"`
	Answer        *string             `json:"answer"`
	Passages      []PassageExcerptDTO `json:"passages"`
	Language      string              `json:"language"`
	QueryEn       *string             `json:"query_en,omitempty"`
	Error         *string             `json:"error"`
}
