// Package nebius analyzes frames against an OpenAI-compatible chat
// completions endpoint hosting a vision-language model, for deployments that
// hold their own API key instead of going through the gateway.
package nebius

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riteshh/seeforme-core/core/vision"
)

const (
	defaultURL   = "https://api.studio.nebius.com/v1/chat/completions"
	defaultModel = "llava-hf/llava-1.5-7b-hf"
)

type Client struct {
	url        string
	model      string
	apiKey     string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) { c.apiKey = apiKey }
}

func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		url:    defaultURL,
		model:  defaultModel,
		apiKey: os.Getenv("NEBIUS_API_KEY"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("nebius api key not found")
	}
	return c, nil
}

type message struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type requestBody struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type responseBody struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Analyze(ctx context.Context, frame []byte, query string, opts ...vision.AnalysisOption) (string, error) {
	options := vision.AnalysisOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	reqBody := requestBody{
		Model:       c.model,
		Temperature: 0,
		Messages: []message{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: vision.BuildPrompt(query, options.Hint)},
				{Type: "image_url", ImageURL: &imageURL{
					URL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame),
				}},
			},
		}},
	}

	requestBodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshalling JSON: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, vision.TimeoutSeconds*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return "", fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("vision analysis timeout: %w", err)
		}
		return "", fmt.Errorf("vision service network failure: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image processing failed with status %d", resp.StatusCode)
	}

	var body responseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding vision response: %w", err)
	}

	if len(body.Choices) == 0 || strings.TrimSpace(body.Choices[0].Message.Content) == "" {
		return "", vision.ErrEmptyResult
	}
	return body.Choices[0].Message.Content, nil
}
