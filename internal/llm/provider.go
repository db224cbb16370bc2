package llm

import (
	"fmt"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/domain"
)

// Provider constants
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// NewReasoner creates a text reasoner based on the provider name.
// Returns an error if the provider is unknown or the API key is empty
// (except for mock).
func NewReasoner(provider, apiKey string, timeout time.Duration) (domain.TextReasoner, error) {
	switch provider {
	case ProviderGroq:
		if apiKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for Groq provider")
		}
		return NewGroqClient(apiKey, timeout), nil

	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for OpenAI provider")
		}
		return NewOpenAIClient(apiKey, timeout), nil

	case ProviderMock:
		return NewMockReasoner(), nil

	default:
		return nil, fmt.Errorf("unknown reasoner provider: %s (valid options: groq, openai, mock)", provider)
	}
}
