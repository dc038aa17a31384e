package service

import (
	"context"
	"encoding/json"
	"testing"

	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePassageRepo struct {
	passages []*entity.Passage
}

func (r *fakePassageRepo) Create(ctx context.Context, p *entity.Passage) error {
	r.passages = append(r.passages, p)
	return nil
}

func (r *fakePassageRepo) CreateBulk(ctx context.Context, ps []*entity.Passage) error {
	r.passages = append(r.passages, ps...)
	return nil
}

func (r *fakePassageRepo) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	for _, p := range r.passages {
		if p.Id == id {
			p.Embedding = embedding
		}
	}
	return nil
}

func (r *fakePassageRepo) DeleteAll(ctx context.Context) error {
	r.passages = nil
	return nil
}

func (r *fakePassageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Passage, error) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			for _, p := range r.passages {
				if p.Id == s.ID {
					return p, nil
				}
			}
		case specification.ByExternalID:
			for _, p := range r.passages {
				if p.ExternalId == s.ExternalID {
					return p, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakePassageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error) {
	out := r.passages
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.MissingEmbedding:
			pending := make([]*entity.Passage, 0)
			for _, p := range out {
				if !p.Embedded() {
					pending = append(pending, p)
				}
			}
			out = pending
		case specification.ByKanda:
			matched := make([]*entity.Passage, 0)
			for _, p := range out {
				if p.Kanda == s.Kanda {
					matched = append(matched, p)
				}
			}
			out = matched
		case specification.Limit:
			if len(out) > s.N {
				out = out[:s.N]
			}
		}
	}
	return out, nil
}

func (r *fakePassageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(found)), nil
}

func (r *fakePassageRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.Passage, error) {
	embedded := make([]*entity.Passage, 0)
	for _, p := range r.passages {
		if p.Embedded() {
			embedded = append(embedded, p)
		}
	}
	if len(embedded) > limit {
		embedded = embedded[:limit]
	}
	return embedded, nil
}

type capturingPublisher struct {
	topic    string
	messages []*message.Message
}

func (p *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	p.topic = topic
	p.messages = append(p.messages, messages...)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func TestCorpusStats(t *testing.T) {
	repo := &fakePassageRepo{passages: []*entity.Passage{
		{Id: uuid.New(), Embedding: []float32{0.1, 0.2}},
		{Id: uuid.New(), Embedding: []float32{0.3, 0.4}},
		{Id: uuid.New()},
	}}
	svc := NewCorpusService(repo, &capturingPublisher{}, "EMBED_PASSAGE", logger.NopLogger{})

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Passages)
	assert.Equal(t, int64(2), stats.Embedded)
	assert.Equal(t, int64(1), stats.Pending)
}

func TestReindexEnqueuesOnlyPending(t *testing.T) {
	pendingId := uuid.New()
	repo := &fakePassageRepo{passages: []*entity.Passage{
		{Id: uuid.New(), Embedding: []float32{0.1}},
		{Id: pendingId},
	}}
	publisher := &capturingPublisher{}
	svc := NewCorpusService(repo, publisher, "EMBED_PASSAGE", logger.NopLogger{})

	res, err := svc.Reindex(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Enqueued)
	assert.Equal(t, "EMBED_PASSAGE", publisher.topic)
	require.Len(t, publisher.messages, 1)

	var payload dto.PublishEmbedPassageMessage
	require.NoError(t, json.Unmarshal(publisher.messages[0].Payload, &payload))
	assert.Equal(t, pendingId, payload.PassageId)
}

func TestListPassagesFiltersByKanda(t *testing.T) {
	repo := &fakePassageRepo{passages: []*entity.Passage{
		{Id: uuid.New(), ExternalId: "bala_001", Kanda: "Bala Kanda"},
		{Id: uuid.New(), ExternalId: "sundara_001", Kanda: "Sundara Kanda"},
		{Id: uuid.New(), ExternalId: "sundara_002", Kanda: "Sundara Kanda"},
	}}
	svc := NewCorpusService(repo, &capturingPublisher{}, "EMBED_PASSAGE", logger.NopLogger{})

	res, err := svc.ListPassages(context.Background(), "Sundara Kanda", 0)
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, "sundara_001", res[0].ExternalId)
	assert.Equal(t, "sundara_002", res[1].ExternalId)
}

func TestListPassagesHonorsLimit(t *testing.T) {
	repo := &fakePassageRepo{passages: []*entity.Passage{
		{Id: uuid.New(), ExternalId: "bala_001", Kanda: "Bala Kanda"},
		{Id: uuid.New(), ExternalId: "bala_002", Kanda: "Bala Kanda"},
		{Id: uuid.New(), ExternalId: "bala_003", Kanda: "Bala Kanda"},
	}}
	svc := NewCorpusService(repo, &capturingPublisher{}, "EMBED_PASSAGE", logger.NopLogger{})

	res, err := svc.ListPassages(context.Background(), "", 2)
	require.NoError(t, err)

	assert.Len(t, res, 2)
}

func TestGetPassageByExternalId(t *testing.T) {
	repo := &fakePassageRepo{passages: []*entity.Passage{
		{Id: uuid.New(), ExternalId: "sundara_001", Kanda: "Sundara Kanda", Topic: "Hanuman's Leap to Lanka", Embedding: []float32{0.1}},
	}}
	svc := NewCorpusService(repo, &capturingPublisher{}, "EMBED_PASSAGE", logger.NopLogger{})

	res, err := svc.GetPassage(context.Background(), "sundara_001")
	require.NoError(t, err)

	assert.Equal(t, "Hanuman's Leap to Lanka", res.Topic)
	assert.True(t, res.Embedded)

	_, err = svc.GetPassage(context.Background(), "sundara_999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passage not found")
}
