// Package deepgram transcribes recorded samples against Deepgram directly,
// for deployments that hold their own API key instead of going through the
// gateway.
package deepgram

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	listenapi "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces"
	listen "github.com/deepgram/deepgram-go-sdk/pkg/client/listen"

	"github.com/riteshh/seeforme-core/core/transcription"
)

const (
	defaultModel    = "nova-3"
	defaultLanguage = "en-US"
)

type TranscriptionClient struct {
	client *listenapi.Client
}

// NewTranscriptionClient reads DEEPGRAM_API_KEY from the environment.
func NewTranscriptionClient() *TranscriptionClient {
	rest := listen.NewRESTWithDefaults()
	return &TranscriptionClient{client: listenapi.New(rest)}
}

func (c *TranscriptionClient) Transcribe(ctx context.Context, audio []byte, opts ...transcription.TranscriptionOption) (transcription.Utterance, error) {
	options := &transcription.TranscriptionOptions{Model: defaultModel, Language: defaultLanguage}
	for _, opt := range opts {
		opt(options)
	}

	res, err := c.client.FromStream(ctx, bytes.NewReader(audio), &interfaces.PreRecordedTranscriptionOptions{
		Model:       options.Model,
		Language:    options.Language,
		SmartFormat: true,
		Punctuate:   true,
	})
	if err != nil {
		return transcription.Utterance{}, fmt.Errorf("deepgram transcription failed: %w", err)
	}

	transcript := ""
	if res != nil && len(res.Results.Channels) > 0 && len(res.Results.Channels[0].Alternatives) > 0 {
		transcript = strings.TrimSpace(res.Results.Channels[0].Alternatives[0].Transcript)
	}
	if transcript == "" {
		return transcription.Utterance{}, transcription.ErrNoSpeechDetected
	}

	return transcription.Utterance{Text: transcript, RecognizedAt: time.Now()}, nil
}
