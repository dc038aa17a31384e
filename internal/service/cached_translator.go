package service

import (
	"context"

	"ramayana-qa-be/internal/repository/memory"
	"ramayana-qa-be/pkg/rag"
)

// CachedTranslator memoizes an inner translator. Identity translations are
// delegated untouched so they stay network free and never occupy cache slots.
type CachedTranslator struct {
	inner rag.Translator
	cache *memory.TranslationCache
}

func NewCachedTranslator(inner rag.Translator, cache *memory.TranslationCache) *CachedTranslator {
	return &CachedTranslator{inner: inner, cache: cache}
}

func (t *CachedTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	if sourceCode == targetCode {
		return t.inner.Translate(ctx, text, sourceCode, targetCode)
	}
	if translated, ok := t.cache.Get(text, sourceCode, targetCode); ok {
		return translated, nil
	}
	translated, err := t.inner.Translate(ctx, text, sourceCode, targetCode)
	if err != nil {
		return "", err
	}
	t.cache.Save(text, sourceCode, targetCode, translated)
	return translated, nil
}
