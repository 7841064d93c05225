// Package chat turns natural-language instructions into content update
// payloads using an OpenAI-compatible model (a local Ollama endpoint by
// default).
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"github.com/hoangvvo/llm-sdk/sdk-go/openai"

	"fieldnote.dev/consultant-site/internal/manager"
)

// DefaultBaseURL targets Ollama's OpenAI-compatible endpoint.
const DefaultBaseURL = "http://localhost:11434/v1"

// DefaultModel is the default local model name.
const DefaultModel = "llama3.1"

// ErrNoJSON is returned when the model reply carries no parseable JSON
// object.
var ErrNoJSON = errors.New("chat: no JSON object in model output")

// Options configures the client.
type Options struct {
	Model   string
	BaseURL string
	APIKey  string
}

// Client generates update payloads from instructions.
type Client struct {
	model llmsdk.LanguageModel
}

// New builds a client. Zero-value options fall back to the local defaults.
func New(opts Options) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.APIKey == "" {
		// Ollama ignores the key but the OpenAI client requires one.
		opts.APIKey = "ollama"
	}
	model := openai.NewOpenAIChatModel(opts.Model, openai.OpenAIChatModelOptions{
		BaseURL: opts.BaseURL,
		APIKey:  opts.APIKey,
	})
	return &Client{model: model}
}

// Payload asks the model to convert an instruction into an update payload.
// Invalid JSON output gets one repair round trip before giving up.
func (c *Client) Payload(ctx context.Context, instruction string) (manager.Payload, error) {
	raw, err := c.generate(ctx, buildPrompt(instruction))
	if err != nil {
		return manager.Payload{}, err
	}
	payload, err := ExtractPayload(raw)
	if err == nil {
		return payload, nil
	}

	raw2, err := c.generate(ctx, buildRepairPrompt(instruction, raw))
	if err != nil {
		return manager.Payload{}, err
	}
	return ExtractPayload(raw2)
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.Generate(ctx, &llmsdk.LanguageModelInput{
		Messages: []llmsdk.Message{
			llmsdk.NewUserMessage(llmsdk.NewTextPart(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat: generate: %w", err)
	}
	var b strings.Builder
	for _, part := range resp.Content {
		if part.TextPart != nil {
			b.WriteString(part.TextPart.Text)
		}
	}
	return b.String(), nil
}

// ExtractPayload pulls the first balanced JSON object out of model output
// and decodes it as an update payload. Models wrap JSON in prose and code
// fences often enough that plain unmarshal is not an option. Decoding is
// strict: a payload with extra keys fails here, which sends the model a
// repair prompt instead of silently dropping the keys.
func ExtractPayload(raw string) (manager.Payload, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return manager.Payload{}, err
	}
	payload, err := manager.DecodePayload([]byte(obj))
	if err != nil {
		return manager.Payload{}, fmt.Errorf("chat: decode payload: %w", err)
	}
	return payload, nil
}

func extractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", ErrNoJSON
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := raw[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return "", ErrNoJSON
				}
				return candidate, nil
			}
		}
	}
	return "", ErrNoJSON
}

func buildPrompt(instruction string) string {
	return `Convert the instruction into a website content update payload.
Return ONLY JSON.

Payload schema:
{
  "file": "site.json",
  "operation": "replace" | "append" | "delete",
  "content": { ... }
}

Operation notes:
- replace: content is the full new JSON for site.json (keys: bio, services, projects, contact)
- append/delete: use content with shape {"section": <bio|services|projects|contact>, "data": {...}}
  - bio append: data may include summary/highlights arrays and/or name/title/location strings
  - services/projects append: data may include intro string and must include services/projects array
  - services/projects delete: data must include name (string) or names (string[])
  - bio delete: data may include summary/highlights string[] to remove exact matches
  - contact append: data is partial merge of string fields (email/linkedin/github/filloutEmbedUrl)
  - contact delete: data keys are cleared to empty strings

Instruction: ` + instruction + "\n"
}

func buildRepairPrompt(instruction, badOutput string) string {
	return `You returned invalid JSON previously. Repair it.
Return ONLY a single valid JSON object. No markdown, no prose.

The JSON MUST match this payload schema exactly:
{
  "file": "site.json",
  "operation": "replace" | "append" | "delete",
  "content": { ... }
}

Reminder:
- replace: content is the full new JSON for site.json (keys: bio, services, projects, contact)
- append/delete: content has shape {"section": <bio|services|projects|contact>, "data": {...}}

Original instruction: ` + instruction + `

Bad output to repair (verbatim):
` + badOutput + "\n"
}
