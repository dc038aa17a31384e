package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/pkg/language"
	"ramayana-qa-be/pkg/llm"
	"ramayana-qa-be/pkg/rag/prompt"
	"ramayana-qa-be/pkg/sarvam"
)

// DefaultTopK is the fixed number of passages requested per question. No
// relevance threshold is applied; low-similarity passages can still appear
// as context.
const DefaultTopK = 3

// Pipeline chains query translation, retrieval, generation and
// back-translation into one synchronous request/response flow. Stages run
// strictly in sequence; the first failure aborts the rest and is converted
// into the Result error channel. No stage is retried.
type Pipeline struct {
	translator Translator
	retriever  Retriever
	provider   llm.LLMProvider
	log        logger.ILogger
	topK       int
}

type PipelineOption func(*Pipeline)

func WithTopK(k int) PipelineOption {
	return func(p *Pipeline) {
		p.topK = k
	}
}

func NewPipeline(translator Translator, retriever Retriever, provider llm.LLMProvider, log logger.ILogger, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		translator: translator,
		retriever:  retriever,
		provider:   provider,
		log:        log,
		topK:       DefaultTopK,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask answers a free-text question in the session's display-name language.
// Retrieval and generation always run in the working language (English);
// other sessions get a translate-in / translate-out bracket around them.
func (p *Pipeline) Ask(ctx context.Context, query, languageName string) *Result {
	profile := language.Resolve(languageName)

	queryEN := query
	if profile.Code != language.WorkingCode {
		translated, err := p.translator.Translate(ctx, query, profile.Code, language.WorkingCode)
		if err != nil {
			return p.failure(languageName, "translate query", err)
		}
		queryEN = translated
	}

	passages, err := p.retriever.Retrieve(ctx, queryEN, p.topK)
	if err != nil {
		return p.failure(languageName, "retrieve passages", err)
	}

	excerpts := make([]prompt.Passage, len(passages))
	for i, passage := range passages {
		excerpts[i] = prompt.Passage{Text: passage.Text, Kanda: passage.Kanda, Topic: passage.Topic}
	}

	builder := prompt.NewBuilder(queryEN, excerpts)
	answerEN, err := p.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: prompt.SystemPersona},
		{Role: "user", Content: builder.Build()},
	}, llm.WithMaxTokens(512))
	if err != nil {
		return p.failure(languageName, "generate answer", err)
	}
	answerEN = strings.TrimSpace(answerEN)
	if answerEN == "" {
		return p.failure(languageName, "generate answer", errors.New("empty response from generation model"))
	}

	answer := answerEN
	if profile.Code != language.WorkingCode {
		translated, err := p.translator.Translate(ctx, answerEN, language.WorkingCode, profile.Code)
		if err != nil {
			return p.failure(languageName, "translate answer", err)
		}
		answer = translated
	}

	if passages == nil {
		passages = []Passage{}
	}

	return &Result{
		Answer:   answer,
		Passages: passages,
		Language: languageName,
		QueryEN:  queryEN,
	}
}

// failure converts the first failing stage's error into the Result error
// channel. Transport failures keep their status code and response body
// verbatim; everything else carries the raw failure description.
func (p *Pipeline) failure(languageName, stage string, err error) *Result {
	msg := err.Error()
	var apiErr *sarvam.APIError
	if errors.As(err, &apiErr) {
		msg = fmt.Sprintf("API error: %d — %s", apiErr.StatusCode, apiErr.Body)
	}

	p.log.Error("rag", "pipeline stage failed", map[string]interface{}{
		"stage":    stage,
		"language": languageName,
		"error":    msg,
	})

	return &Result{
		Passages: []Passage{},
		Language: languageName,
		Err:      msg,
	}
}
