// Package gateway transcribes audio through the credential-injecting API
// gateway's /transcribe endpoint.
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
	"go.opentelemetry.io/otel/trace"

	"github.com/riteshh/seeforme-core/core/transcription"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = client }
}

func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(os.Getenv("GATEWAY_URL"), "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("gateway url not configured")
	}
	return c, nil
}

// Transcribe posts raw audio bytes and returns the recognized utterance. An
// empty or whitespace-only transcript maps to ErrNoSpeechDetected; any
// non-success status is a transport failure regardless of the body.
func (c *Client) Transcribe(ctx context.Context, audio []byte, opts ...transcription.TranscriptionOption) (transcription.Utterance, error) {
	ctx, span := tracer.Start(ctx, "gateway transcribe")
	defer span.End()
	span.SetAttributes(audioBytesAttribute(len(audio)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", bytes.NewReader(audio))
	if err != nil {
		return transcription.Utterance{}, fmt.Errorf("building transcribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transcription.Utterance{}, fmt.Errorf("transcription service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.AddEvent("non-success status", trace.WithAttributes(statusAttribute(resp.StatusCode)))
		return transcription.Utterance{}, fmt.Errorf("transcription service returned status %d", resp.StatusCode)
	}

	var body struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return transcription.Utterance{}, fmt.Errorf("decoding transcribe response: %w", err)
	}

	transcript := strings.TrimSpace(body.Transcript)
	if transcript == "" {
		return transcription.Utterance{}, transcription.ErrNoSpeechDetected
	}

	return transcription.Utterance{Text: transcript, RecognizedAt: time.Now()}, nil
}
