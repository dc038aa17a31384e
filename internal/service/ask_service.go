package service

import (
	"context"
	"fmt"
	"time"

	"ramayana-qa-be/internal/constant"
	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/internal/repository/contract"
	"ramayana-qa-be/internal/repository/specification"
	"ramayana-qa-be/pkg/events"
	"ramayana-qa-be/pkg/rag"

	"github.com/google/uuid"
)

// EventPublisher is the analytics sink. A nil publisher disables events;
// publish failures are logged and never fail the request.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IAskService interface {
	Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error)
}

type askService struct {
	pipeline  *rag.Pipeline
	sessions  contract.ChatSessionRepository
	turns     contract.ChatTurnRepository
	publisher EventPublisher
	log       logger.ILogger
}

func NewAskService(
	pipeline *rag.Pipeline,
	sessions contract.ChatSessionRepository,
	turns contract.ChatTurnRepository,
	publisher EventPublisher,
	log logger.ILogger,
) IAskService {
	return &askService{
		pipeline:  pipeline,
		sessions:  sessions,
		turns:     turns,
		publisher: publisher,
		log:       log,
	}
}

// Ask runs the pipeline for one question and appends the turn to the session
// history. A failed pipeline run is not a service error: the result's error
// channel is passed through to the caller and nothing is persisted, so the
// history never contains a partial answer.
func (s *askService) Ask(ctx context.Context, request *dto.AskRequest) (*dto.AskResponse, error) {
	session, err := s.sessions.FindOne(ctx, specification.ByID{ID: request.ChatSessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}

	languageName := request.Language
	if languageName == "" {
		languageName = session.Language
	}

	started := time.Now()
	result := s.pipeline.Ask(ctx, request.Query, languageName)

	if result.Failed() {
		errMsg := result.Err
		return &dto.AskResponse{
			ChatSessionId: session.Id,
			Passages:      []dto.PassageExcerptDTO{},
			Language:      result.Language,
			Error:         &errMsg,
		}, nil
	}

	now := time.Now()
	turn := &entity.ChatTurn{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Query:         request.Query,
		Answer:        result.Answer,
		Language:      result.Language,
		QueryEn:       result.QueryEN,
		Passages:      toExcerpts(result.Passages),
		CreatedAt:     now,
	}
	if err := s.turns.Create(ctx, turn); err != nil {
		return nil, err
	}

	if session.Title == constant.DefaultSessionTitle {
		session.Title = truncateTitle(request.Query)
		session.UpdatedAt = &now
		if err := s.sessions.Update(ctx, session); err != nil {
			s.log.Warn("ask", "failed to update session title", map[string]interface{}{"error": err.Error()})
		}
	}

	s.publishAnswered(ctx, session.Id, result, time.Since(started))

	answer := result.Answer
	queryEn := result.QueryEN
	return &dto.AskResponse{
		ChatSessionId: session.Id,
		Answer:        &answer,
		Passages:      toExcerptDTOs(turn.Passages),
		Language:      result.Language,
		QueryEn:       &queryEn,
	}, nil
}

func (s *askService) publishAnswered(ctx context.Context, sessionId uuid.UUID, result *rag.Result, latency time.Duration) {
	if s.publisher == nil {
		return
	}
	event := events.NewQuestionAnswered(sessionId.String(), result.Language, len(result.Passages), latency.Milliseconds())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("ask", "failed to publish "+constant.EventQuestionAnswered, map[string]interface{}{"error": err.Error()})
	}
}

func truncateTitle(query string) string {
	runes := []rune(query)
	if len(runes) <= constant.SessionTitleMaxLen {
		return query
	}
	return string(runes[:constant.SessionTitleMaxLen])
}

func toExcerpts(passages []rag.Passage) []entity.PassageExcerpt {
	out := make([]entity.PassageExcerpt, len(passages))
	for i, p := range passages {
		out[i] = entity.PassageExcerpt{Text: p.Text, Kanda: p.Kanda, Topic: p.Topic}
	}
	return out
}

func toExcerptDTOs(excerpts []entity.PassageExcerpt) []dto.PassageExcerptDTO {
	out := make([]dto.PassageExcerptDTO, len(excerpts))
	for i, e := range excerpts {
		out[i] = dto.PassageExcerptDTO{Text: e.Text, Kanda: e.Kanda, Topic: e.Topic}
	}
	return out
}
