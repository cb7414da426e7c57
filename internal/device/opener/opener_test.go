package opener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/easy-contacts/internal/device"
)

type call struct {
	name string
	args []string
}

func recorder(calls *[]call, err error) device.Runner {
	return func(ctx context.Context, name string, args ...string) error {
		*calls = append(*calls, call{name, args})
		return err
	}
}

func always(string) bool { return true }
func never(string) bool  { return false }

func TestDial_PerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want call
	}{
		{"linux", call{"xdg-open", []string{"tel:+15550192834"}}},
		{"freebsd", call{"xdg-open", []string{"tel:+15550192834"}}},
		{"darwin", call{"open", []string{"tel:+15550192834"}}},
		{"windows", call{"rundll32", []string{"url.dll,FileProtocolHandler", "tel:+15550192834"}}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var calls []call
			b := New(tt.goos, always, recorder(&calls, nil))
			require.NoError(t, b.Dial(context.Background(), "+15550192834"))
			require.Len(t, calls, 1)
			assert.Equal(t, tt.want, calls[0])
		})
	}
}

func TestDial_Unavailable(t *testing.T) {
	var calls []call
	b := New("linux", never, recorder(&calls, nil))
	assert.False(t, b.IsEnabled())
	assert.ErrorIs(t, b.Dial(context.Background(), "+1555"), device.ErrUnavailable)
	assert.Empty(t, calls)
}

func TestDial_RejectsMalformedNumbers(t *testing.T) {
	var calls []call
	b := New("linux", always, recorder(&calls, nil))
	for _, n := range []string{"", "+", "555-0101", "+1 (555) 019-2834", "tel:+1"} {
		assert.Error(t, b.Dial(context.Background(), n), n)
	}
	assert.Empty(t, calls)
}

func TestDial_WrapsRunnerError(t *testing.T) {
	var calls []call
	boom := errors.New("exit status 3")
	b := New("linux", always, recorder(&calls, boom))
	assert.ErrorIs(t, b.Dial(context.Background(), "+15551234567"), boom)
}

func TestRegistered(t *testing.T) {
	assert.Contains(t, device.ListDialers(), "opener")
}
