package llm

import "context"

// Message is a role-tagged chat message. Content carries plain text;
// Parts carries a mixed text+image content list for vision calls.
// Exactly one of the two should be set.
type Message struct {
	Role    string
	Content string
	Parts   []ContentPart
}

// ContentPart is one element of a mixed content list.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL references an image, typically as a data URI.
type ImageURL struct {
	URL string `json:"url"`
}

// ChatRequest is one chat-completion call.
type ChatRequest struct {
	Messages    []Message
	Temperature float32
}

// ChatClient is the interface the handler depends on. It returns the first
// completion choice's message text, verbatim. Implementations must not
// post-process the content; schema validation happens downstream.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

func TextMessage(role, content string) Message {
	return Message{Role: role, Content: content}
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

func ImagePart(dataURL string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: dataURL}}
}
