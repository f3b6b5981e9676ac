package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/image-analyzer/internal/domain/analysis"
)

type contentPart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

type chatRequest struct {
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
}

func TestCompleteBuildsExpectedPayload(t *testing.T) {
	var got chatRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"Conclusion\":{\"ok\":true}}"}}]}`)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "")
	img := analysis.EncodedImage{MimeType: "image/png", Base64: "aGVsbG8="}

	out, err := c.Complete(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, `{"Conclusion":{"ok":true}}`, out)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, DefaultModel, got.Model)
	assert.InDelta(t, 0.1, got.Temperature, 0.001)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)

	// system content is a plain string
	var sys string
	require.NoError(t, json.Unmarshal(got.Messages[0].Content, &sys))
	assert.Contains(t, sys, "Conclusion")

	// user content is a text part followed by an image_url part
	var parts []contentPart
	require.NoError(t, json.Unmarshal(got.Messages[1].Content, &parts))
	require.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].Type)
	assert.Contains(t, parts[0].Text, "Conclusion")
	require.Equal(t, "image_url", parts[1].Type)
	require.NotNil(t, parts[1].ImageURL)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", parts[1].ImageURL.URL)
}

func TestCompleteMapsQuotaErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "gemini-2.5-flash")
	_, err := c.Complete(context.Background(), analysis.EncodedImage{MimeType: "image/png", Base64: "AA=="})
	assert.ErrorIs(t, err, analysis.ErrQuotaExceeded)
}

func TestCompleteWrapsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL, "")
	_, err := c.Complete(context.Background(), analysis.EncodedImage{MimeType: "image/png", Base64: "AA=="})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create chat completion")
}
