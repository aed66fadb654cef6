package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mcqgen/internal/mcq"
)

// DefaultModel is the generation model used unless configured otherwise.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 60 * time.Second

// Client calls the Gemini API to generate MCQs from a text chunk.
// The API key is supplied by the caller of each request, so a Client is
// cheap, request-scoped state; the underlying SDK client is created per
// call because it binds the key at construction.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
	stats   *Stats
}

// NewClient creates a generation client for one caller-supplied API key.
// stats may be nil.
func NewClient(apiKey, model string, timeout time.Duration, stats *Stats) *Client {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		stats:   stats,
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one chunk to Gemini and parses the returned JSON array
// of MCQ records. A response that is valid JSON but not an array yields
// zero records and no error.
func (c *Client) Generate(ctx context.Context, chunk string, numOptions int) ([]mcq.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	gc, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	defer gc.Close()

	model := gc.GenerativeModel(c.model)
	prompt := mcq.BuildPrompt(chunk, numOptions)

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}
	if err != nil {
		return nil, fmt.Errorf("gemini api: %w", err)
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}
	return ParseRecords(raw)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		break
	}
	return strings.TrimSpace(sb.String())
}
