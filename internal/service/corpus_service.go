package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/internal/repository/contract"
	"ramayana-qa-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// DefaultPassageListLimit caps unbounded corpus listings.
const DefaultPassageListLimit = 50

type ICorpusService interface {
	GetStats(ctx context.Context) (*dto.CorpusStatsResponse, error)
	Reindex(ctx context.Context) (*dto.ReindexResponse, error)
	ListPassages(ctx context.Context, kanda string, limit int) ([]dto.PassageResponse, error)
	GetPassage(ctx context.Context, externalId string) (*dto.PassageResponse, error)
}

type corpusService struct {
	passages  contract.PassageRepository
	publisher message.Publisher
	topicName string
	log       logger.ILogger
}

func NewCorpusService(
	passages contract.PassageRepository,
	publisher message.Publisher,
	topicName string,
	log logger.ILogger,
) ICorpusService {
	return &corpusService{
		passages:  passages,
		publisher: publisher,
		topicName: topicName,
		log:       log,
	}
}

func (s *corpusService) GetStats(ctx context.Context) (*dto.CorpusStatsResponse, error) {
	total, err := s.passages.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.passages.Count(ctx, specification.MissingEmbedding{})
	if err != nil {
		return nil, err
	}

	return &dto.CorpusStatsResponse{
		Passages: total,
		Embedded: total - pending,
		Pending:  pending,
	}, nil
}

// Reindex enqueues one embedding job per passage that has no vector yet. The
// consumer picks these up asynchronously; the call returns as soon as the
// messages are published.
func (s *corpusService) Reindex(ctx context.Context) (*dto.ReindexResponse, error) {
	pending, err := s.passages.FindAll(ctx, specification.MissingEmbedding{})
	if err != nil {
		return nil, err
	}

	enqueued := 0
	for _, passage := range pending {
		payload, err := json.Marshal(dto.PublishEmbedPassageMessage{PassageId: passage.Id})
		if err != nil {
			return nil, err
		}
		if err := s.publisher.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
			return nil, err
		}
		enqueued++
	}

	s.log.Info("corpus", "reindex enqueued", map[string]interface{}{"count": enqueued})
	return &dto.ReindexResponse{Enqueued: enqueued}, nil
}

// ListPassages browses the corpus, optionally filtered to one kanda, in
// stable external-id order.
func (s *corpusService) ListPassages(ctx context.Context, kanda string, limit int) ([]dto.PassageResponse, error) {
	if limit <= 0 {
		limit = DefaultPassageListLimit
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "external_id"},
		specification.Limit{N: limit},
	}
	if kanda != "" {
		specs = append(specs, specification.ByKanda{Kanda: kanda})
	}

	found, err := s.passages.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PassageResponse, len(found))
	for i, p := range found {
		responses[i] = toPassageResponse(p)
	}
	return responses, nil
}

func (s *corpusService) GetPassage(ctx context.Context, externalId string) (*dto.PassageResponse, error) {
	passage, err := s.passages.FindOne(ctx, specification.ByExternalID{ExternalID: externalId})
	if err != nil {
		return nil, err
	}
	if passage == nil {
		return nil, fmt.Errorf("passage not found")
	}

	res := toPassageResponse(passage)
	return &res, nil
}

func toPassageResponse(p *entity.Passage) dto.PassageResponse {
	return dto.PassageResponse{
		Id:         p.Id,
		ExternalId: p.ExternalId,
		Text:       p.Text,
		Kanda:      p.Kanda,
		Topic:      p.Topic,
		Characters: p.Characters,
		Embedded:   p.Embedded(),
	}
}
