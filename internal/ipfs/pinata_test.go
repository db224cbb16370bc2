package ipfs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinataClient_PinJSON(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "test-secret", r.Header.Get("pinata_secret_api_key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_, _ = w.Write([]byte(`{"IpfsHash":"QmTestHash123"}`))
	}))
	defer srv.Close()

	client := NewPinataClientWithBaseURL("test-key", "test-secret", srv.URL, 2*time.Second)

	payload := map[string]string{"match_id": "602129", "predicted_winner": "home"}
	hash, err := client.PinJSON(context.Background(), "rage-bet-prediction-602129", payload)

	require.NoError(t, err)
	assert.Equal(t, "QmTestHash123", hash)

	meta, ok := gotReq["pinataMetadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rage-bet-prediction-602129", meta["name"])

	content, ok := gotReq["pinataContent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "602129", content["match_id"])
}

func TestPinataClient_PinJSON_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer srv.Close()

	client := NewPinataClientWithBaseURL("bad-key", "bad-secret", srv.URL, 2*time.Second)

	_, err := client.PinJSON(context.Background(), "rage-bet-prediction-1", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPinataClient_PinJSON_EmptyHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewPinataClientWithBaseURL("k", "s", srv.URL, 2*time.Second)

	_, err := client.PinJSON(context.Background(), "rage-bet-prediction-1", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty hash")
}
