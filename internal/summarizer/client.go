package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Client performs the chat completion round trip. It holds no per-call
// state; concurrent calls are independent. No timeout is imposed here
// beyond transport defaults, so callers that need bounded latency must
// cancel through ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against the public OpenAI endpoint.
func NewClient() *Client {
	return NewClientWithBaseURL("")
}

// NewClientWithBaseURL points the client at an alternative chat
// completions host, such as a proxy or a test server. Empty means the
// public endpoint.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Summarize sends input, wrapped in <text> tags, to the chat completions
// endpoint and returns the first choice's message content unchanged. The
// input is not escaped: a closing tag inside it passes through as is.
func (c *Client) Summarize(ctx context.Context, input string, cfg ResolvedConfig) (string, error) {
	if err := checkHeaderValue(cfg.APIKey); err != nil {
		return "", err
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.HTTPClient = c.httpClient
	if c.baseURL != "" {
		clientConfig.BaseURL = c.baseURL
	}

	req := openai.ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: cfg.Prompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "<text>" + input + "</text>",
			},
		},
	}

	log.Debug().
		Str("model", cfg.Model).
		Int("input_len", len(input)).
		Msg("Sending chat completion request")

	resp, err := openai.NewClientWithConfig(clientConfig).CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(err)
	}

	// After decoding, an absent content field and an empty string are
	// indistinguishable, so both count as malformed.
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrMalformedResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyError maps the client library's failures onto the summarizer
// error taxonomy.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{Status: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	// Non-2xx responses whose body is not a parseable API error, e.g. an
	// empty 401 from a proxy.
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &APIError{Status: reqErr.HTTPStatusCode, Body: string(reqErr.Body)}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &TransportError{Err: urlErr}
	}

	// What remains is a success status whose body could not be decoded.
	return ErrMalformedResponse
}

// checkHeaderValue rejects API keys that cannot be carried in an
// Authorization header, per RFC 7230 field-content.
func checkHeaderValue(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < 0x20 && c != '\t') || c == 0x7f {
			return &RequestError{
				Reason: fmt.Sprintf("API key contains byte %#02x, which is not allowed in an HTTP header value", c),
			}
		}
	}
	return nil
}
