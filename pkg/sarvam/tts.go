package sarvam

import (
	"context"
	"encoding/base64"
	"fmt"
)

const (
	ttsModel = "bulbul:v3"

	// Bulbul rejects inputs over 2500 characters. Oversized text is cut to
	// the first 2490 characters with a marker appended; synthesis must never
	// fail merely because an answer ran long.
	maxSynthesisChars   = 2500
	truncatedSynthChars = 2490
	truncationMarker    = "..."
)

type synthesizeRequest struct {
	Text               string `json:"text"`
	TargetLanguageCode string `json:"target_language_code"`
	Model              string `json:"model"`
	Speaker            string `json:"speaker"`
}

type synthesizeResponse struct {
	Audios []string `json:"audios"`
}

// truncateForSynthesis enforces the model's input limit, counting characters
// the way the limit is documented (code points, not bytes).
func truncateForSynthesis(text string) string {
	runes := []rune(text)
	if len(runes) <= maxSynthesisChars {
		return text
	}
	return string(runes[:truncatedSynthChars]) + truncationMarker
}

// Synthesize converts text to a WAV waveform in the given language using the
// given speaker. The service returns base64-encoded audio; the decoded raw
// bytes are returned.
func (c *Client) Synthesize(ctx context.Context, text, languageCode, speaker string) ([]byte, error) {
	payload := synthesizeRequest{
		Text:               truncateForSynthesis(text),
		TargetLanguageCode: languageCode,
		Model:              ttsModel,
		Speaker:            speaker,
	}

	var resp synthesizeResponse
	if err := c.postJSON(ctx, "/text-to-speech", payload, &resp); err != nil {
		return nil, err
	}
	if len(resp.Audios) == 0 {
		return nil, fmt.Errorf("empty audio in synthesis response")
	}

	audio, err := base64.StdEncoding.DecodeString(resp.Audios[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode synthesized audio: %w", err)
	}
	return audio, nil
}
