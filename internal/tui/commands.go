package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pdxmph/easy-contacts/internal/contacts"
)

// frame interval for carousel motion
const frameInterval = 16 * time.Millisecond

// Device is the host capability the screens hand contacts to
type Device interface {
	Call(ctx context.Context, c contacts.Contact, announcement, screen string) error
	Announce(ctx context.Context, c contacts.Contact, text, screen string) error
}

// frameMsg advances carousel motion generation gen by one frame
type frameMsg struct{ gen int }

// settleMsg fires when the carousel has been idle after a free scroll
type settleMsg struct{ gen int }

// statusMsg replaces the status line
type statusMsg string

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func settleCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return settleMsg{gen: gen}
	})
}

func setStatus(s string) tea.Cmd {
	return func() tea.Msg { return statusMsg(s) }
}

// actions turns screen events into fire-and-forget device commands.
// Errors are logged by the device layer and dropped here.
type actions struct {
	ctx    context.Context
	device Device
	logger *zap.Logger
}

func (a actions) call(c contacts.Contact, announcement, screen string) tea.Cmd {
	do := func() tea.Msg {
		if err := a.device.Call(a.ctx, c, announcement, screen); err != nil {
			a.logger.Debug("call not placed", zap.String("contact", c.Name), zap.Error(err))
		}
		return nil
	}
	return tea.Batch(setStatus("Calling "+c.Name+"…"), do)
}

func (a actions) announce(c contacts.Contact, screen string) tea.Cmd {
	return func() tea.Msg {
		if err := a.device.Announce(a.ctx, c, c.Name, screen); err != nil {
			a.logger.Debug("announcement not spoken", zap.String("contact", c.Name), zap.Error(err))
		}
		return nil
	}
}
