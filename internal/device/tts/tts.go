// Package tts speaks announcements through the speech synthesizer CLIs found
// on desktop systems.
package tts

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/pdxmph/easy-contacts/internal/device"
)

// normal speaking speed in words per minute for espeak and say
const baseWPM = 175

// Backend implements device.Speaker for one synthesizer program
type Backend struct {
	command string
	argv    func(text string, voice device.Voice) []string
	enabled bool
	run     device.Runner
}

// Name returns the backend identifier, which is the program name
func (b *Backend) Name() string {
	return b.command
}

// IsEnabled returns whether the program was found
func (b *Backend) IsEnabled() bool {
	return b.enabled
}

// Speak runs the synthesizer and waits for it to finish
func (b *Backend) Speak(ctx context.Context, text string, voice device.Voice) error {
	if !b.enabled {
		return fmt.Errorf("%s: %w", b.command, device.ErrUnavailable)
	}
	if text == "" {
		return nil
	}
	if err := b.run(ctx, b.command, b.argv(text, voice)...); err != nil {
		return fmt.Errorf("speaking: %w", err)
	}
	return nil
}

// New creates a speaker for one of the supported programs
func New(command string, available func(string) bool, run device.Runner) (*Backend, error) {
	argv, ok := programs[command]
	if !ok {
		return nil, fmt.Errorf("unsupported speech program %s", command)
	}
	return &Backend{
		command: command,
		argv:    argv,
		enabled: available(command),
		run:     run,
	}, nil
}

var programs = map[string]func(string, device.Voice) []string{
	"espeak-ng": espeakArgs,
	"espeak":    espeakArgs,
	"spd-say":   spdSayArgs,
	"say":       sayArgs,
}

func espeakArgs(text string, voice device.Voice) []string {
	var args []string
	if voice.Language != "" {
		args = append(args, "-v", voice.Language)
	}
	return append(args, "-s", strconv.Itoa(wpm(voice.Rate)), text)
}

// spd-say takes a rate between -100 and 100 with 0 as normal, and -w waits
// until the message has been spoken.
func spdSayArgs(text string, voice device.Voice) []string {
	args := []string{"-w"}
	if voice.Language != "" {
		args = append(args, "-l", voice.Language)
	}
	rate := 0
	if voice.Rate > 0 {
		rate = int(math.Round((voice.Rate - 1) * 100))
		rate = max(-100, min(100, rate))
	}
	return append(args, "-r", strconv.Itoa(rate), text)
}

func sayArgs(text string, voice device.Voice) []string {
	return []string{"-r", strconv.Itoa(wpm(voice.Rate)), text}
}

func wpm(rate float64) int {
	if rate <= 0 {
		rate = 1
	}
	return int(math.Round(baseWPM * rate))
}

// Register every supported program
func init() {
	for command := range programs {
		device.RegisterSpeaker(command, func() device.Speaker {
			b, _ := New(command, device.Available, device.Exec)
			return b
		})
	}
}
