package service

import (
	"context"
	"encoding/json"

	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/internal/repository/contract"
	"ramayana-qa-be/internal/repository/specification"
	"ramayana-qa-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	passages          contract.PassageRepository
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	passages contract.PassageRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		passages:          passages,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPassageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads never become valid, do not retry
		return
	}

	passage, err := cs.passages.FindOne(ctx, specification.ByID{ID: payload.PassageId})
	if err != nil {
		cs.log.Error("consumer", "failed to fetch passage", map[string]interface{}{
			"passage_id": payload.PassageId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if passage == nil {
		// deleted between publish and consume
		msg.Ack()
		return
	}

	res, err := cs.embeddingProvider.Generate(passage.Text, embedding.TaskRetrievalDocument)
	if err != nil {
		cs.log.Error("consumer", "failed to generate embedding", map[string]interface{}{
			"passage_id": passage.Id.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	if err := cs.passages.UpdateEmbedding(ctx, passage.Id, res.Embedding.Values); err != nil {
		cs.log.Error("consumer", "failed to store embedding", map[string]interface{}{
			"passage_id": passage.Id.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "passage embedded", map[string]interface{}{"passage_id": passage.Id.String()})
	msg.Ack()
}
