package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	Title     string
	Language  string // display name of the session's selected language
	CreatedAt time.Time
	UpdatedAt *time.Time
}
