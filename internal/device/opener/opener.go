// Package opener dials by handing a tel: URI to the operating system's URL
// opener, which forwards it to whatever telephony app is registered.
package opener

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/pdxmph/easy-contacts/internal/device"
)

// Backend implements device.Dialer using the OS URL opener
type Backend struct {
	command string
	args    []string
	enabled bool
	run     device.Runner
}

// NewBackend creates a dialer for the current platform
func NewBackend() device.Dialer {
	return New(runtime.GOOS, device.Available, device.Exec)
}

// New creates a dialer for goos. available and run are injectable for tests.
func New(goos string, available func(string) bool, run device.Runner) *Backend {
	command, args := openerCommand(goos)
	return &Backend{
		command: command,
		args:    args,
		enabled: available(command),
		run:     run,
	}
}

// Name returns the backend identifier
func (b *Backend) Name() string {
	return "opener"
}

// IsEnabled returns whether the URL opener was found
func (b *Backend) IsEnabled() bool {
	return b.enabled
}

// Dial hands tel:<number> to the URL opener
func (b *Backend) Dial(ctx context.Context, number string) error {
	if !b.enabled {
		return fmt.Errorf("%s: %w", b.command, device.ErrUnavailable)
	}

	number = strings.TrimSpace(number)
	if !validNumber(number) {
		return fmt.Errorf("invalid phone number %q", number)
	}

	args := append(append([]string{}, b.args...), "tel:"+number)
	if err := b.run(ctx, b.command, args...); err != nil {
		return fmt.Errorf("opening tel URI: %w", err)
	}
	return nil
}

// openerCommand returns the URL opener for a platform
func openerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// validNumber accepts an optional leading + followed by digits
func validNumber(number string) bool {
	digits := strings.TrimPrefix(number, "+")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Register the opener backend
func init() {
	device.RegisterDialer("opener", func() device.Dialer { return NewBackend() })
}
