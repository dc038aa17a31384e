package dto

// TranscribeResponse is the speech-to-text adapter result. The adapter never
// raises: transport failures land in Error with an empty transcript.
type TranscribeResponse struct {
	Transcript   string  `json:"transcript"`
	LanguageCode string  `json:"language_code"`
	Error        *string `json:"error"`
}

type SynthesizeRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

// SynthesizeResponse carries base64 WAV audio, or an error, never both.
type SynthesizeResponse struct {
	AudioBase64 *string `json:"audio_base64"`
	Error       *string `json:"error"`
}
