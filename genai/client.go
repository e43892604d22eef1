// Package genai wraps the external content-generation service. All
// "intelligence" lives behind this client; when no API key is configured it
// substitutes deterministic demo content instead of failing, so a missing
// credential is a valid mode rather than an error.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/hgapps/medicare-api/model"
)

// Model names per surface: the heavier model handles plans and chat, the
// flash model handles lookups and news.
const (
	planModel   = "gemini-3-pro-preview"
	chatModel   = "gemini-3-pro-preview"
	lookupModel = "gemini-2.5-flash"
	newsModel   = "gemini-2.5-flash"
)

// ImageAttachment is an optional inline image sent with a prompt (skin
// photo, lab report, medicine label).
type ImageAttachment struct {
	MIMEType string
	Data     []byte
}

// Client talks to the generation service. A nil inner client means demo
// mode.
type Client struct {
	ai *genai.Client
}

// NewClient creates a Client. An empty apiKey yields a demo-mode client and
// never an error; a non-empty key that fails to initialize is surfaced.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		log.Println("no API key configured, content generation runs in demo mode")
		return &Client{}, nil
	}
	ai, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation client: %w", err)
	}
	return &Client{ai: ai}, nil
}

// Demo reports whether the client substitutes placeholder content.
func (c *Client) Demo() bool { return c.ai == nil }

// userContent assembles a single-turn user message with optional image.
func userContent(prompt string, image *ImageAttachment) []*genai.Content {
	parts := []*genai.Part{{Text: prompt}}
	if image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: image.Data},
		})
	}
	return []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
}

func systemInstruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// generateJSON runs a schema-constrained generation and unmarshals the
// response document into dst.
func (c *Client) generateJSON(ctx context.Context, modelName, prompt, system string, schema *genai.Schema, image *ImageAttachment, dst interface{}) error {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if system != "" {
		config.SystemInstruction = systemInstruction(system)
	}
	resp, err := c.ai.Models.GenerateContent(ctx, modelName, userContent(prompt, image), config)
	if err != nil {
		return fmt.Errorf("content generation failed: %w", err)
	}
	if err := json.Unmarshal([]byte(resp.Text()), dst); err != nil {
		return fmt.Errorf("generation returned malformed document: %w", err)
	}
	return nil
}

// Chat sends a free-form message with optional image and returns the reply
// text. In demo mode a fixed placeholder reply is returned.
func (c *Client) Chat(ctx context.Context, text string, image *ImageAttachment, lang model.Language) (string, error) {
	if c.Demo() {
		return demoChatReply, nil
	}

	system := fmt.Sprintf(`You are a helpful and cautious medical assistant. Answer in %s.
If an image is provided, analyze it carefully for medical relevance (e.g., skin issues, lab reports, medicinal labels).
If the image is unrelated to health, politely decline to analyze it.
Always include a disclaimer that you are an AI and not a doctor.`, lang.Name())

	resp, err := c.ai.Models.GenerateContent(ctx, chatModel, userContent(text, image), &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction(system),
	})
	if err != nil {
		return "", fmt.Errorf("content generation failed: %w", err)
	}
	reply := resp.Text()
	if reply == "" {
		reply = "I'm sorry, I couldn't generate a response."
	}
	return reply, nil
}
