package rag

import (
	"context"
	"fmt"

	"ramayana-qa-be/internal/repository/contract"
	"ramayana-qa-be/pkg/embedding"
)

// Store is the pgvector-backed Retriever. It embeds the query and delegates
// ranking to the passage repository's cosine-distance search; it performs no
// indexing or persistence itself. Construct it once at bootstrap and hold it
// for the process lifetime.
type Store struct {
	provider embedding.EmbeddingProvider
	passages contract.PassageRepository
}

func NewStore(provider embedding.EmbeddingProvider, passages contract.PassageRepository) *Store {
	return &Store{
		provider: provider,
		passages: passages,
	}
}

func (s *Store) Retrieve(ctx context.Context, query string, k int) ([]Passage, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	res, err := s.provider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	entities, err := s.passages.SearchSimilar(ctx, res.Embedding.Values, k)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	passages := make([]Passage, 0, len(entities))
	for _, e := range entities {
		passages = append(passages, Passage{
			Text:       e.Text,
			Kanda:      e.Kanda,
			Topic:      e.Topic,
			Characters: e.Characters,
		})
	}
	return passages, nil
}
