package llm

import (
	"net/http"
	"time"
)

const (
	groqChatURL = "https://api.groq.com/openai/v1/chat/completions"
	groqModel   = "llama-3.1-70b-versatile"
)

func NewGroqClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		chatURL:    groqChatURL,
		model:      groqModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}
