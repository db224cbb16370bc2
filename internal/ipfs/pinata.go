package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultPinataURL = "https://api.pinata.cloud"

// PinataClient pins JSON payloads to IPFS through Pinata's pinning API.
type PinataClient struct {
	apiKey     string
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewPinataClient(apiKey, secretKey string, timeout time.Duration) *PinataClient {
	return &PinataClient{
		apiKey:     apiKey,
		secretKey:  secretKey,
		baseURL:    defaultPinataURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewPinataClientWithBaseURL builds a client against an explicit base URL,
// for tests.
func NewPinataClientWithBaseURL(apiKey, secretKey, baseURL string, timeout time.Duration) *PinataClient {
	c := NewPinataClient(apiKey, secretKey, timeout)
	c.baseURL = baseURL
	return c
}

type pinRequest struct {
	PinataContent  any         `json:"pinataContent"`
	PinataMetadata pinMetadata `json:"pinataMetadata"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinJSON submits the payload under the given name and returns the content
// hash. Any transport or non-2xx failure is returned as an error; the caller
// decides whether that is fatal.
func (c *PinataClient) PinJSON(ctx context.Context, name string, payload any) (string, error) {
	body, err := json.Marshal(pinRequest{
		PinataContent:  payload,
		PinataMetadata: pinMetadata{Name: name},
	})
	if err != nil {
		return "", fmt.Errorf("marshal pin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create pin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("pinata_api_key", c.apiKey)
	req.Header.Set("pinata_secret_api_key", c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pin request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read pin response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pinata API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result pinResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("unmarshal pin response: %w", err)
	}

	if result.IpfsHash == "" {
		return "", fmt.Errorf("pinata API returned empty hash")
	}

	return result.IpfsHash, nil
}
