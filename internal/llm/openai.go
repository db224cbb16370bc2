package llm

import (
	"net/http"
	"time"
)

const (
	openAIChatURL = "https://api.openai.com/v1/chat/completions"
	openAIModel   = "gpt-4o-mini"
)

func NewOpenAIClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		chatURL:    openAIChatURL,
		model:      openAIModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}
