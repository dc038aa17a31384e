package sarvam

import (
	"context"
)

const translateModel = "mayura:v1"

type translateRequest struct {
	Input              string `json:"input"`
	SourceLanguageCode string `json:"source_language_code"`
	TargetLanguageCode string `json:"target_language_code"`
	Model              string `json:"model"`
	Mode               string `json:"mode"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Translate converts text between two language codes in formal register.
// When source and target are the same code it returns the input unchanged
// without touching the network; monolingual sessions must never be able to
// fail on translation.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == targetLang {
		return text, nil
	}

	payload := translateRequest{
		Input:              text,
		SourceLanguageCode: sourceLang,
		TargetLanguageCode: targetLang,
		Model:              translateModel,
		Mode:               "formal",
	}

	var resp translateResponse
	if err := c.postJSON(ctx, "/translate", payload, &resp); err != nil {
		return "", err
	}

	// The service occasionally omits the field; fall back to the original
	// text rather than returning an empty answer.
	if resp.TranslatedText == "" {
		return text, nil
	}
	return resp.TranslatedText, nil
}
