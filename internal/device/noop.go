package device

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by backends that cannot reach the host service
var ErrUnavailable = errors.New("backend not available")

// NoopDialer is used when no telephony handler is available
type NoopDialer struct{}

// Name returns the backend identifier
func (NoopDialer) Name() string { return "noop" }

// IsEnabled always returns false for the noop backend
func (NoopDialer) IsEnabled() bool { return false }

// Dial returns ErrUnavailable
func (NoopDialer) Dial(ctx context.Context, number string) error {
	return ErrUnavailable
}

// NoopSpeaker is used when speech is disabled or no synthesizer exists
type NoopSpeaker struct{}

// Name returns the backend identifier
func (NoopSpeaker) Name() string { return "noop" }

// IsEnabled always returns false for the noop backend
func (NoopSpeaker) IsEnabled() bool { return false }

// Speak does nothing
func (NoopSpeaker) Speak(ctx context.Context, text string, voice Voice) error {
	return nil
}

func init() {
	RegisterDialer("noop", func() Dialer { return NoopDialer{} })
	RegisterSpeaker("noop", func() Speaker { return NoopSpeaker{} })
}
