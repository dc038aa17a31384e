package sarvam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateIdentityShortCircuit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"translated_text":"should never be seen"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	got, err := client.Translate(context.Background(), "नमस्ते", "hi-IN", "hi-IN")
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", got)
	assert.Equal(t, 0, calls, "identity translation must not hit the network")
}

func TestTranslateSendsFormalMayuraRequest(t *testing.T) {
	var captured translateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api-subscription-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"translated_text":"Why did Ravana abduct Sita?"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	got, err := client.Translate(context.Background(), "रावण ने सीता का अपहरण क्यों किया?", "hi-IN", "en-IN")
	require.NoError(t, err)
	assert.Equal(t, "Why did Ravana abduct Sita?", got)
	assert.Equal(t, "mayura:v1", captured.Model)
	assert.Equal(t, "formal", captured.Mode)
	assert.Equal(t, "hi-IN", captured.SourceLanguageCode)
	assert.Equal(t, "en-IN", captured.TargetLanguageCode)
}

func TestTranslateFallsBackWhenFieldMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	got, err := client.Translate(context.Background(), "original", "hi-IN", "en-IN")
	require.NoError(t, err)
	assert.Equal(t, "original", got)
}

func TestTranslateSurfacesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Translate(context.Background(), "text", "hi-IN", "en-IN")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "rate limited")
	assert.Contains(t, apiErr.Error(), "429")
}
