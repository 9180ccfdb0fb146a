package llm_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/llm"
)

func TestBuildTextMessages(t *testing.T) {
	t.Parallel()

	msgs := llm.BuildTextMessages("Acme Ltd\nInvoice #1001\nTotal: 250.00 USD")
	require.Len(t, msgs, 2)

	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, llm.SystemPromptText, msgs[0].Content)

	assert.Equal(t, "user", msgs[1].Role)
	assert.True(t, strings.HasPrefix(msgs[1].Content, llm.ExtractionPrompt))
	assert.Contains(t, msgs[1].Content, "INVOICE TEXT:\nAcme Ltd")
	assert.Empty(t, msgs[1].Parts)
}

func TestBuildImageMessages(t *testing.T) {
	t.Parallel()

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	msgs := llm.BuildImageMessages("image/png", data)
	require.Len(t, msgs, 2)

	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, llm.SystemPromptImage, msgs[0].Content)

	user := msgs[1]
	assert.Equal(t, "user", user.Role)
	require.Len(t, user.Parts, 2)

	assert.Equal(t, "text", user.Parts[0].Type)
	assert.Equal(t, llm.ExtractionPrompt, user.Parts[0].Text)

	assert.Equal(t, "image_url", user.Parts[1].Type)
	require.NotNil(t, user.Parts[1].ImageURL)
	wantURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
	assert.Equal(t, wantURL, user.Parts[1].ImageURL.URL)
}
