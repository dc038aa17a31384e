package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/pkg/logger"
	"ramayana-qa-be/pkg/language"
	"ramayana-qa-be/pkg/sarvam"

	"github.com/redis/go-redis/v9"
)

const ttsCacheTTL = 24 * time.Hour

// Transcriber and Synthesizer are the speech halves of the Sarvam client.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, languageCode string) (*sarvam.Transcription, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text, languageCode, speaker string) ([]byte, error)
}

// ISpeechService wraps speech I/O in a never-raise contract: every outcome is
// a response value, with failures carried in the Error field.
type ISpeechService interface {
	SpeechToText(ctx context.Context, audio []byte, languageName string) *dto.TranscribeResponse
	TextToSpeech(ctx context.Context, text, languageName string) *dto.SynthesizeResponse
}

type speechService struct {
	transcriber Transcriber
	synthesizer Synthesizer
	audioCache  redis.UniversalClient
	log         logger.ILogger
}

// NewSpeechService builds the speech adapter. audioCache may be nil, in which
// case every synthesis call hits the upstream service.
func NewSpeechService(transcriber Transcriber, synthesizer Synthesizer, audioCache redis.UniversalClient, log logger.ILogger) ISpeechService {
	return &speechService{
		transcriber: transcriber,
		synthesizer: synthesizer,
		audioCache:  audioCache,
		log:         log,
	}
}

func (s *speechService) SpeechToText(ctx context.Context, audio []byte, languageName string) *dto.TranscribeResponse {
	profile := language.Resolve(languageName)

	transcription, err := s.transcriber.Transcribe(ctx, audio, profile.Code)
	if err != nil {
		msg := describeSpeechError(err)
		s.log.Error("speech", "transcription failed", map[string]interface{}{
			"language": profile.Name,
			"error":    msg,
		})
		return &dto.TranscribeResponse{LanguageCode: profile.Code, Error: &msg}
	}

	return &dto.TranscribeResponse{
		Transcript:   transcription.Transcript,
		LanguageCode: transcription.LanguageCode,
	}
}

func (s *speechService) TextToSpeech(ctx context.Context, text, languageName string) *dto.SynthesizeResponse {
	profile := language.Resolve(languageName)
	cacheKey := ttsCacheKey(profile.Code, profile.Speaker, text)

	if audio := s.cachedAudio(ctx, cacheKey); audio != nil {
		encoded := base64.StdEncoding.EncodeToString(audio)
		return &dto.SynthesizeResponse{AudioBase64: &encoded}
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, profile.Code, profile.Speaker)
	if err != nil {
		msg := describeSpeechError(err)
		s.log.Error("speech", "synthesis failed", map[string]interface{}{
			"language": profile.Name,
			"error":    msg,
		})
		return &dto.SynthesizeResponse{Error: &msg}
	}

	s.storeAudio(ctx, cacheKey, audio)

	encoded := base64.StdEncoding.EncodeToString(audio)
	return &dto.SynthesizeResponse{AudioBase64: &encoded}
}

func (s *speechService) cachedAudio(ctx context.Context, key string) []byte {
	if s.audioCache == nil {
		return nil
	}
	audio, err := s.audioCache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("speech", "audio cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
	return audio
}

func (s *speechService) storeAudio(ctx context.Context, key string, audio []byte) {
	if s.audioCache == nil {
		return
	}
	if err := s.audioCache.Set(ctx, key, audio, ttsCacheTTL).Err(); err != nil {
		s.log.Warn("speech", "audio cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

func ttsCacheKey(languageCode, speaker, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("tts:%s:%s:%x", languageCode, speaker, sum)
}

func describeSpeechError(err error) string {
	var apiErr *sarvam.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("API error: %d — %s", apiErr.StatusCode, apiErr.Body)
	}
	return err.Error()
}
