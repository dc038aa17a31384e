package service

import (
	"context"
	"testing"

	"ramayana-qa-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTranslator struct {
	calls int
}

func (t *countingTranslator) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	t.calls++
	return "[" + targetCode + "] " + text, nil
}

func TestCachedTranslatorMemoizes(t *testing.T) {
	inner := &countingTranslator{}
	translator := NewCachedTranslator(inner, memory.NewTranslationCache())

	first, err := translator.Translate(context.Background(), "who is Rama", "en-IN", "hi-IN")
	require.NoError(t, err)
	second, err := translator.Translate(context.Background(), "who is Rama", "en-IN", "hi-IN")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedTranslatorKeysOnDirection(t *testing.T) {
	inner := &countingTranslator{}
	translator := NewCachedTranslator(inner, memory.NewTranslationCache())

	_, err := translator.Translate(context.Background(), "who is Rama", "en-IN", "hi-IN")
	require.NoError(t, err)
	_, err = translator.Translate(context.Background(), "who is Rama", "hi-IN", "en-IN")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedTranslatorSkipsIdentity(t *testing.T) {
	inner := &countingTranslator{}
	translator := NewCachedTranslator(inner, memory.NewTranslationCache())

	_, err := translator.Translate(context.Background(), "who is Rama", "en-IN", "en-IN")
	require.NoError(t, err)
	_, err = translator.Translate(context.Background(), "who is Rama", "en-IN", "en-IN")
	require.NoError(t, err)

	// identity calls are always delegated, never cached
	assert.Equal(t, 2, inner.calls)
}
