package speech

import (
	"context"
	"fmt"
	"sync"
)

// Speaker synthesizes replies and plays them out. Speaking is preemptive:
// a new Speak call clears whatever the previous one queued, it never waits
// behind it.
type Speaker struct {
	synthesizer Synthesizer
	playback    Playback
	options     SpeechOptions

	mu         sync.Mutex
	generation int
}

func NewSpeaker(synthesizer Synthesizer, playback Playback, opts ...SpeechOption) *Speaker {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Speaker{
		synthesizer: synthesizer,
		playback:    playback,
		options:     options,
	}
}

func (s *Speaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	s.playback.ClearBuffer()

	audio, err := s.synthesizer.Synthesize(ctx, text,
		WithRate(s.options.Rate),
		WithPitch(s.options.Pitch),
		WithLocale(s.options.Locale),
	)
	if err != nil {
		return fmt.Errorf("failed to synthesize speech: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		// A newer Speak preempted this one while it was synthesizing.
		return nil
	}

	if err := s.playback.SendAudio(audio); err != nil {
		return fmt.Errorf("failed to send audio to playback: %w", err)
	}
	return nil
}

// Stop silences any queued speech without starting new speech.
func (s *Speaker) Stop() error {
	s.mu.Lock()
	s.generation++
	s.mu.Unlock()

	s.playback.ClearBuffer()
	return nil
}
