// Package speech turns reply text into audible output.
package speech

import "context"

type SpeechOptions struct {
	// Rate scales speaking speed, 1.0 being the synthesizer's native pace.
	Rate float64
	// Pitch scales voice pitch, 1.0 being the synthesizer's native pitch.
	Pitch float64
	// Locale selects the voice family, e.g. "en-US".
	Locale string
}

type SpeechOption func(*SpeechOptions)

func WithRate(rate float64) SpeechOption {
	return func(o *SpeechOptions) {
		if rate <= 0 {
			return
		}
		o.Rate = rate
	}
}

func WithPitch(pitch float64) SpeechOption {
	return func(o *SpeechOptions) {
		if pitch <= 0 {
			return
		}
		o.Pitch = pitch
	}
}

func WithLocale(locale string) SpeechOption {
	return func(o *SpeechOptions) {
		if locale == "" {
			return
		}
		o.Locale = locale
	}
}

func defaultOptions() SpeechOptions {
	return SpeechOptions{
		Rate:   0.9,
		Pitch:  1.0,
		Locale: "en-US",
	}
}

// Synthesizer produces playable audio for a piece of text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, opts ...SpeechOption) ([]byte, error)
}

// Playback accepts synthesized audio for immediate playout.
type Playback interface {
	SendAudio(audio []byte) error
	ClearBuffer()
}
