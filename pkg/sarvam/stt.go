package sarvam

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

const sttModel = "saarika:v2.5"

// Transcription is the result of a speech-to-text call. LanguageCode is the
// code the service detected, which may differ from the requested one.
type Transcription struct {
	Transcript   string `json:"transcript"`
	LanguageCode string `json:"language_code"`
}

// Transcribe uploads a WAV clip and returns its transcript. The audio is
// tagged with the given language code to steer the model.
func (c *Client) Transcribe(ctx context.Context, audio []byte, languageCode string) (*Transcription, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", "audio.wav")
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("failed to write audio part: %w", err)
	}
	if err := mw.WriteField("model", sttModel); err != nil {
		return nil, fmt.Errorf("failed to write model field: %w", err)
	}
	if err := mw.WriteField("language_code", languageCode); err != nil {
		return nil, fmt.Errorf("failed to write language field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/speech-to-text", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("api-subscription-key", c.apiKey)

	var result Transcription
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	if result.LanguageCode == "" {
		result.LanguageCode = languageCode
	}
	return &result, nil
}
