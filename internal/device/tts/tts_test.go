package tts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/easy-contacts/internal/device"
)

func TestSpeak_Arguments(t *testing.T) {
	voice := device.Voice{Language: "en", Rate: 0.9}
	tests := []struct {
		program string
		want    []string
	}{
		{"espeak-ng", []string{"-v", "en", "-s", "158", "Mia Wong"}},
		{"espeak", []string{"-v", "en", "-s", "158", "Mia Wong"}},
		{"spd-say", []string{"-w", "-l", "en", "-r", "-10", "Mia Wong"}},
		{"say", []string{"-r", "158", "Mia Wong"}},
	}
	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			run := func(ctx context.Context, name string, args ...string) error {
				gotName, gotArgs = name, args
				return nil
			}

			b, err := New(tt.program, func(string) bool { return true }, run)
			require.NoError(t, err)
			require.NoError(t, b.Speak(context.Background(), "Mia Wong", voice))
			assert.Equal(t, tt.program, gotName)
			assert.Equal(t, tt.want, gotArgs)
		})
	}
}

func TestSpeak_RateMapping(t *testing.T) {
	assert.Equal(t, 175, wpm(0))
	assert.Equal(t, 175, wpm(1))
	assert.Equal(t, 350, wpm(2))

	assert.Equal(t, []string{"-w", "-r", "100", "x"}, spdSayArgs("x", device.Voice{Rate: 5}))
	assert.Equal(t, []string{"-w", "-r", "0", "x"}, spdSayArgs("x", device.Voice{}))
	assert.Equal(t, []string{"-s", "175", "x"}, espeakArgs("x", device.Voice{}))
}

func TestSpeak_Unavailable(t *testing.T) {
	b, err := New("say", func(string) bool { return false }, device.Exec)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Speak(context.Background(), "hi", device.Voice{}), device.ErrUnavailable)
}

func TestNew_Unsupported(t *testing.T) {
	_, err := New("festival", func(string) bool { return true }, device.Exec)
	assert.Error(t, err)
}

func TestRegistered(t *testing.T) {
	names := device.ListSpeakers()
	for _, p := range []string{"espeak-ng", "espeak", "spd-say", "say"} {
		assert.Contains(t, names, p)
	}
}
