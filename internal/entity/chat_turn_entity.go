package entity

import (
	"time"

	"github.com/google/uuid"
)

// PassageExcerpt is the slice of a retrieved passage stored alongside a
// turn, enough to render provenance in the history view.
type PassageExcerpt struct {
	Text  string `json:"text"`
	Kanda string `json:"kanda"`
	Topic string `json:"topic"`
}

// ChatTurn is one answered question. Turns are append-only: created once per
// successful pipeline run, never mutated, removed only when the whole
// session history is cleared.
type ChatTurn struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Query         string
	Answer        string
	Language      string
	QueryEn       string
	Passages      []PassageExcerpt
	CreatedAt     time.Time
}
