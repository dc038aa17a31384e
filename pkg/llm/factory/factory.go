package factory

import (
	"fmt"

	"ramayana-qa-be/pkg/llm"
	"ramayana-qa-be/pkg/llm/ollama"
	"ramayana-qa-be/pkg/llm/sarvamchat"
)

// NewLLMProvider builds the generation backend selected by config. Sarvam-M
// is the production backend; Ollama serves local development.
func NewLLMProvider(providerType, modelName, sarvamAPIKey, sarvamBaseURL, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "sarvam":
		if sarvamAPIKey == "" {
			return nil, fmt.Errorf("sarvam provider requires an api key")
		}
		return sarvamchat.NewSarvamProvider(sarvamAPIKey, sarvamBaseURL, modelName), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
