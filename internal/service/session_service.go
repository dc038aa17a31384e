package service

import (
	"context"
	"fmt"
	"time"

	"ramayana-qa-be/internal/constant"
	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/repository/contract"
	"ramayana-qa-be/internal/repository/specification"
	"ramayana-qa-be/pkg/language"

	"github.com/google/uuid"
)

type ISessionService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context) ([]dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]dto.GetChatHistoryResponse, error)
	ClearHistory(ctx context.Context, sessionId uuid.UUID) error
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

type sessionService struct {
	sessions contract.ChatSessionRepository
	turns    contract.ChatTurnRepository
}

func NewSessionService(sessions contract.ChatSessionRepository, turns contract.ChatTurnRepository) ISessionService {
	return &sessionService{sessions: sessions, turns: turns}
}

func (s *sessionService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	profile := language.Resolve(request.Language)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		Title:     constant.DefaultSessionTitle,
		Language:  profile.Name,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: session.Id, Language: session.Language}, nil
}

func (s *sessionService) GetAllSessions(ctx context.Context) ([]dto.GetAllSessionsResponse, error) {
	sessions, err := s.sessions.FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GetAllSessionsResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = dto.GetAllSessionsResponse{
			Id:        session.Id,
			Title:     session.Title,
			Language:  session.Language,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		}
	}
	return responses, nil
}

func (s *sessionService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]dto.GetChatHistoryResponse, error) {
	session, err := s.sessions.FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}

	turns, err := s.turns.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GetChatHistoryResponse, len(turns))
	for i, turn := range turns {
		responses[i] = dto.GetChatHistoryResponse{
			Id:        turn.Id,
			Query:     turn.Query,
			Answer:    turn.Answer,
			Language:  turn.Language,
			Passages:  toExcerptDTOs(turn.Passages),
			CreatedAt: turn.CreatedAt,
		}
	}
	return responses, nil
}

func (s *sessionService) ClearHistory(ctx context.Context, sessionId uuid.UUID) error {
	return s.turns.DeleteByChatSessionId(ctx, sessionId)
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if err := s.turns.DeleteByChatSessionId(ctx, sessionId); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, sessionId)
}
