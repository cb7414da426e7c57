// Package device hands contacts off to the host: phone numbers to the
// system's telephony handler and names to a speech synthesizer. Both are
// fire-and-forget; failures are logged and never retried.
package device

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Voice controls how an announcement is spoken
type Voice struct {
	Language string
	Rate     float64 // 1.0 is the synthesizer's normal speed
}

// Dialer hands a phone number to the host's telephony handler
type Dialer interface {
	// Name returns the backend identifier (e.g., "opener", "noop")
	Name() string

	// IsEnabled checks if the backend's helper program is available
	IsEnabled() bool

	// Dial starts a call to number
	Dial(ctx context.Context, number string) error
}

// Speaker speaks a short announcement aloud
type Speaker interface {
	Name() string
	IsEnabled() bool
	Speak(ctx context.Context, text string, voice Voice) error
}

// DialerFactory is a function that creates a new instance of a Dialer
type DialerFactory func() Dialer

// SpeakerFactory is a function that creates a new instance of a Speaker
type SpeakerFactory func() Speaker

// Runner executes a helper program
type Runner func(ctx context.Context, name string, args ...string) error

// Exec runs a helper program and includes its output in any error
func Exec(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w (output: %s)", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Available reports whether a helper program is on PATH
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
