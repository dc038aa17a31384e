package service

import (
	"context"
	"encoding/base64"
	"testing"

	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/pkg/sarvam"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriber struct {
	gotLanguageCode string
	transcript      string
	err             error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, languageCode string) (*sarvam.Transcription, error) {
	f.gotLanguageCode = languageCode
	if f.err != nil {
		return nil, f.err
	}
	return &sarvam.Transcription{Transcript: f.transcript, LanguageCode: languageCode}, nil
}

type fakeSynthesizer struct {
	gotLanguageCode string
	gotSpeaker      string
	audio           []byte
	err             error
	calls           int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, languageCode, speaker string) ([]byte, error) {
	f.calls++
	f.gotLanguageCode = languageCode
	f.gotSpeaker = speaker
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func TestSpeechToTextResolvesLanguage(t *testing.T) {
	transcriber := &fakeTranscriber{transcript: "राम कौन हैं"}
	svc := NewSpeechService(transcriber, &fakeSynthesizer{}, nil, logger.NopLogger{})

	resp := svc.SpeechToText(context.Background(), []byte{1, 2, 3}, "Hindi")

	assert.Equal(t, "hi-IN", transcriber.gotLanguageCode)
	assert.Equal(t, "राम कौन हैं", resp.Transcript)
	assert.Equal(t, "hi-IN", resp.LanguageCode)
	assert.Nil(t, resp.Error)
}

func TestSpeechToTextUnknownLanguageFallsBack(t *testing.T) {
	transcriber := &fakeTranscriber{transcript: "who is Rama"}
	svc := NewSpeechService(transcriber, &fakeSynthesizer{}, nil, logger.NopLogger{})

	resp := svc.SpeechToText(context.Background(), []byte{1}, "Klingon")

	assert.Equal(t, "en-IN", transcriber.gotLanguageCode)
	assert.Nil(t, resp.Error)
}

func TestSpeechToTextNeverRaises(t *testing.T) {
	transcriber := &fakeTranscriber{err: &sarvam.APIError{StatusCode: 502, Body: "bad gateway"}}
	svc := NewSpeechService(transcriber, &fakeSynthesizer{}, nil, logger.NopLogger{})

	resp := svc.SpeechToText(context.Background(), []byte{1}, "Tamil")

	assert.Empty(t, resp.Transcript)
	assert.Equal(t, "ta-IN", resp.LanguageCode)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "API error: 502 — bad gateway", *resp.Error)
}

func TestTextToSpeechUsesProfileSpeaker(t *testing.T) {
	synth := &fakeSynthesizer{audio: []byte("RIFFwav")}
	svc := NewSpeechService(&fakeTranscriber{}, synth, nil, logger.NopLogger{})

	resp := svc.TextToSpeech(context.Background(), "राम अयोध्या के राजकुमार हैं", "Hindi")

	assert.Equal(t, "hi-IN", synth.gotLanguageCode)
	assert.Equal(t, "anushka", synth.gotSpeaker)
	require.NotNil(t, resp.AudioBase64)
	decoded, err := base64.StdEncoding.DecodeString(*resp.AudioBase64)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFwav"), decoded)
	assert.Nil(t, resp.Error)
}

func TestTextToSpeechNeverRaises(t *testing.T) {
	synth := &fakeSynthesizer{err: assert.AnError}
	svc := NewSpeechService(&fakeTranscriber{}, synth, nil, logger.NopLogger{})

	resp := svc.TextToSpeech(context.Background(), "some text", "Bengali")

	assert.Nil(t, resp.AudioBase64)
	require.NotNil(t, resp.Error)
	assert.Equal(t, assert.AnError.Error(), *resp.Error)
}
