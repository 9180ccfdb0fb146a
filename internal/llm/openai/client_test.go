package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/llm"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/llm/openai"
)

func TestComplete_ReturnsFirstChoice(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/chat/completions", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"total_amount":"10.00"}`}},
				{"message": map[string]any{"content": "second choice is ignored"}},
			},
		})
	}))
	defer srv.Close()

	c := openai.NewClient(openai.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
	}, nil)

	content, err := c.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{
			llm.TextMessage("system", "You extract invoice data from text."),
			llm.TextMessage("user", "INVOICE TEXT: ..."),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"total_amount":"10.00"}`, content)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.EqualValues(t, 0, gotBody["temperature"])
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
}

func TestComplete_MultimodalWireShape(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "{}"}},
			},
		})
	}))
	defer srv.Close()

	c := openai.NewClient(openai.Config{APIKey: "k", BaseURL: srv.URL, Model: "m"}, nil)

	_, err := c.Complete(context.Background(), llm.ChatRequest{
		Messages: llm.BuildImageMessages("image/png", []byte{1, 2, 3}),
	})
	require.NoError(t, err)

	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 2)

	// System message stays a plain string.
	sys := msgs[0].(map[string]any)
	_, isString := sys["content"].(string)
	assert.True(t, isString)

	// User message carries the mixed content list.
	user := msgs[1].(map[string]any)
	parts, ok := user["content"].([]any)
	require.True(t, ok)
	require.Len(t, parts, 2)

	img := parts[1].(map[string]any)
	assert.Equal(t, "image_url", img["type"])
	imgURL := img["image_url"].(map[string]any)
	assert.Contains(t, imgURL["url"], "data:image/png;base64,")
}

func TestComplete_NoChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := openai.NewClient(openai.Config{APIKey: "k", BaseURL: srv.URL, Model: "m"}, nil)

	_, err := c.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{llm.TextMessage("user", "hi")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestComplete_UpstreamStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := openai.NewClient(openai.Config{APIKey: "k", BaseURL: srv.URL, Model: "m"}, nil)

	_, err := c.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{llm.TextMessage("user", "hi")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}
