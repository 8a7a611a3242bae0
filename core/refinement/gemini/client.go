// Package gemini refines replies against the Gemini generateContent API
// directly, for deployments that hold their own API key instead of going
// through the gateway.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riteshh/seeforme-core/core/refinement"
)

const (
	defaultModel = "gemini-2.0-flash"

	temperature     = 0.2
	maxOutputTokens = 150
)

type Client struct {
	model      string
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
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
		model:  defaultModel,
		apiKey: os.Getenv("GEMINI_API_KEY"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout: refinement.TimeoutSeconds * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini api key not found")
	}
	return c, nil
}

type requestBody struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generation_config"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
}

type responseBody struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Refine builds the prompt template for the request and never fails: any
// transport problem degrades to the source text or the fixed fallback.
func (c *Client) Refine(ctx context.Context, sourceText, originalQuery string, queryType refinement.QueryType) string {
	prompt := refinement.BuildPrompt(sourceText, originalQuery, queryType)

	requestBodyBytes, err := json.Marshal(requestBody{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: temperature, MaxOutputTokens: maxOutputTokens},
	})
	if err != nil {
		return c.degrade(sourceText)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1/models/%s:generateContent?key=%s", c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return c.degrade(sourceText)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.degrade(sourceText)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.degrade(sourceText)
	}

	var body responseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.degrade(sourceText)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 ||
		strings.TrimSpace(body.Candidates[0].Content.Parts[0].Text) == "" {
		return refinement.FallbackReply
	}
	return body.Candidates[0].Content.Parts[0].Text
}

func (c *Client) degrade(sourceText string) string {
	if strings.TrimSpace(sourceText) != "" {
		return sourceText
	}
	return refinement.FallbackReply
}
