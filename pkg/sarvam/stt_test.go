package sarvam

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribeUploadsMultipartAudio(t *testing.T) {
	audio := []byte("fake wav bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/speech-to-text", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("api-subscription-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "saarika:v2.5", r.FormValue("model"))
		assert.Equal(t, "hi-IN", r.FormValue("language_code"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "audio.wav", header.Filename)
		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, audio, uploaded)

		w.Write([]byte(`{"transcript":"राम कौन हैं?","language_code":"hi-IN"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	got, err := client.Transcribe(context.Background(), audio, "hi-IN")
	require.NoError(t, err)
	assert.Equal(t, "राम कौन हैं?", got.Transcript)
	assert.Equal(t, "hi-IN", got.LanguageCode)
}

func TestTranscribeDefaultsLanguageCodeFromRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transcript":"who is Rama"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	got, err := client.Transcribe(context.Background(), []byte("wav"), "en-IN")
	require.NoError(t, err)
	assert.Equal(t, "en-IN", got.LanguageCode)
}

func TestTranscribeSurfacesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Transcribe(context.Background(), []byte("wav"), "en-IN")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Body)
}
