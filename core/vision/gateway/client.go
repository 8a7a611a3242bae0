// Package gateway analyzes frames through the API gateway's /vision
// endpoint, which forwards to the vision-language model with credentials
// attached.
package gateway

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
		timeout: vision.TimeoutSeconds * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("gateway url not configured")
	}
	return c, nil
}

// Analyze posts the frame and the (hint-annotated) query. A non-success
// status, a timeout, or an empty result field all fail the call; the caller
// must never treat an empty description as an answer.
func (c *Client) Analyze(ctx context.Context, frame []byte, query string, opts ...vision.AnalysisOption) (string, error) {
	ctx, span := tracer.Start(ctx, "gateway vision analyze")
	defer span.End()

	options := vision.AnalysisOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	contextualized := query
	if options.Hint != "" {
		contextualized = fmt.Sprintf("%s (%s)", query, options.Hint)
	}

	payload, err := json.Marshal(struct {
		Image string `json:"image"`
		Query string `json:"query"`
	}{
		Image: base64.StdEncoding.EncodeToString(frame),
		Query: contextualized,
	})
	if err != nil {
		return "", fmt.Errorf("marshalling vision request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vision", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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

	var body struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding vision response: %w", err)
	}

	if strings.TrimSpace(body.Result) == "" {
		return "", vision.ErrEmptyResult
	}
	return body.Result, nil
}
