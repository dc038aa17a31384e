package rag

import (
	"context"
)

// Passage is the unit of retrieval: an indexed excerpt of the corpus with
// its provenance metadata.
type Passage struct {
	Text       string   `json:"text"`
	Kanda      string   `json:"kanda"`
	Topic      string   `json:"topic"`
	Characters []string `json:"characters,omitempty"`
}

// Retriever returns the passages most semantically similar to a plain query
// string, ranked by descending similarity. Asking for k may yield fewer when
// the store holds fewer candidates; that is not an error.
type Retriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]Passage, error)
}

// Translator converts text between two language codes. Implementations must
// return the input unchanged when source and target match.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
