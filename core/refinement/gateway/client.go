// Package gateway refines replies through the API gateway's /refine
// endpoint.
package gateway

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

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = client }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.timeout = timeout }
}

func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(os.Getenv("GATEWAY_URL"), "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout: refinement.TimeoutSeconds * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("gateway url not configured")
	}
	return c, nil
}

// Refine never fails: any transport or decoding problem degrades to the
// source text (vision path) or the fixed fallback (conversational path).
func (c *Client) Refine(ctx context.Context, sourceText, originalQuery string, queryType refinement.QueryType) string {
	ctx, span := tracer.Start(ctx, "gateway refine")
	defer span.End()

	payload, err := json.Marshal(struct {
		LlavaResponse string `json:"llavaResponse,omitempty"`
		OriginalQuery string `json:"originalQuery"`
		QueryType     string `json:"queryType,omitempty"`
	}{
		LlavaResponse: sourceText,
		OriginalQuery: originalQuery,
		QueryType:     string(queryType),
	})
	if err != nil {
		return c.degrade(sourceText)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/refine", bytes.NewReader(payload))
	if err != nil {
		return c.degrade(sourceText)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WarnContext(ctx, "refinement unavailable, degrading", "error", err)
		return c.degrade(sourceText)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.WarnContext(ctx, "refinement returned non-success status, degrading", "status", resp.StatusCode)
		return c.degrade(sourceText)
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.degrade(sourceText)
	}

	if strings.TrimSpace(body.Result) == "" {
		return refinement.FallbackReply
	}
	return body.Result
}

func (c *Client) degrade(sourceText string) string {
	if strings.TrimSpace(sourceText) != "" {
		return sourceText
	}
	return refinement.FallbackReply
}
