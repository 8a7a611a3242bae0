// Package deepgram synthesizes speech through deepgram's aura REST endpoint.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riteshh/seeforme-core/core/audio"
	"github.com/riteshh/seeforme-core/core/speech"
)

type synthesisVoice string

const (
	VoiceAsteria synthesisVoice = "aura-asteria-en"
	VoiceLuna    synthesisVoice = "aura-luna-en"
	VoiceAngus   synthesisVoice = "aura-angus-en"
	VoiceAthena  synthesisVoice = "aura-athena-en"

	defaultVoice = VoiceAsteria
)

// voicesByLocale maps locales to an aura voice. Aura currently only ships
// english voices, unknown locales fall back to the default.
var voicesByLocale = map[string]synthesisVoice{
	"en-US": VoiceAsteria,
	"en-GB": VoiceAthena,
	"en-IE": VoiceAngus,
}

type SynthesisClient struct {
	apiKey       string
	voice        synthesisVoice
	httpClient   *http.Client
	encodingInfo audio.EncodingInfo
}

type SynthesisClientOption func(*SynthesisClient)

func WithVoice(voice synthesisVoice) SynthesisClientOption {
	return func(c *SynthesisClient) { c.voice = voice }
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) SynthesisClientOption {
	return func(c *SynthesisClient) {
		if encodingInfo.IsZero() {
			return
		}
		c.encodingInfo = encodingInfo
	}
}

func NewSynthesisClient(opts ...SynthesisClientOption) (*SynthesisClient, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	client := &SynthesisClient{
		apiKey: apiKey,
		voice:  defaultVoice,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		encodingInfo: audio.GetDefaultEncodingInfo(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Synthesize returns raw audio in the client's encoding. Rate and pitch
// options are accepted for interface compatibility but aura voices do not
// expose them, only the locale is mapped (to a voice).
func (c *SynthesisClient) Synthesize(ctx context.Context, text string, opts ...speech.SpeechOption) ([]byte, error) {
	options := speech.SpeechOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	voice := c.voice
	if v, ok := voicesByLocale[options.Locale]; ok {
		voice = v
	}

	urlValues := url.Values{}
	urlValues.Set("model", string(voice))
	urlValues.Set("encoding", c.encodingInfo.Format.Name())
	urlValues.Set("sample_rate", strconv.Itoa(c.encodingInfo.SampleRate))
	urlValues.Set("container", "none")

	payload, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	endpoint := (&url.URL{
		Scheme: "https",
		Host:   "api.deepgram.com", Path: "/v1/speak",
		RawQuery: urlValues.Encode(),
	}).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create synthesis request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach deepgram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deepgram synthesis returned status %d", resp.StatusCode)
	}

	audioBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	if len(audioBytes) == 0 {
		return nil, fmt.Errorf("deepgram synthesis returned no audio")
	}
	return audioBytes, nil
}

func (c *SynthesisClient) EncodingInfo() audio.EncodingInfo {
	return c.encodingInfo
}
