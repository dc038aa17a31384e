package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"size:128"`
	Language  string    `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatTurn struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;index"`
	Query         string    `gorm:"type:text"`
	Answer        string    `gorm:"type:text"`
	Language      string    `gorm:"size:32"`
	QueryEn       string    `gorm:"type:text"`
	Passages      datatypes.JSON
	CreatedAt     time.Time
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
