package device

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pdxmph/easy-contacts/internal/contacts"
	"github.com/pdxmph/easy-contacts/internal/db"
)

// Backends tried, in order, when none is configured
var (
	DialerPreference  = []string{"opener", "noop"}
	SpeakerPreference = []string{"espeak-ng", "espeak", "spd-say", "say", "noop"}
)

// Recorder stores completed hand-offs
type Recorder interface {
	LogInteraction(i db.Interaction) (int64, error)
}

// Options configures a Manager
type Options struct {
	Dialer        string // empty picks by preference
	Speaker       string
	SpeechEnabled bool
	Voice         Voice
	Recorder      Recorder // optional
	Logger        *zap.Logger
}

// Manager routes calls and announcements to the selected backends
type Manager struct {
	dialer   Dialer
	speaker  Speaker
	voice    Voice
	recorder Recorder
	logger   *zap.Logger

	// held for the length of one utterance so announcements never overlap
	speech sync.Mutex
}

// NewManager creates a manager with the requested backends.
// Unknown backend names are an error; unavailable ones are not.
func NewManager(opts Options) (*Manager, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dialer, err := pickDialer(opts.Dialer)
	if err != nil {
		return nil, err
	}

	var speaker Speaker = NoopSpeaker{}
	if opts.SpeechEnabled {
		speaker, err = pickSpeaker(opts.Speaker)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("device backends selected",
		zap.String("dialer", dialer.Name()),
		zap.Bool("dialer_enabled", dialer.IsEnabled()),
		zap.String("speaker", speaker.Name()),
		zap.Bool("speaker_enabled", speaker.IsEnabled()))

	return &Manager{
		dialer:   dialer,
		speaker:  speaker,
		voice:    opts.Voice,
		recorder: opts.Recorder,
		logger:   logger,
	}, nil
}

func pickDialer(name string) (Dialer, error) {
	if name != "" {
		d, err := CreateDialer(name)
		if err != nil {
			return nil, fmt.Errorf("creating dialer %s: %w", name, err)
		}
		return d, nil
	}
	for _, candidate := range DialerPreference {
		d, err := CreateDialer(candidate)
		if err != nil {
			continue
		}
		if d.IsEnabled() {
			return d, nil
		}
	}
	return NoopDialer{}, nil
}

func pickSpeaker(name string) (Speaker, error) {
	if name != "" {
		s, err := CreateSpeaker(name)
		if err != nil {
			return nil, fmt.Errorf("creating speaker %s: %w", name, err)
		}
		return s, nil
	}
	for _, candidate := range SpeakerPreference {
		s, err := CreateSpeaker(candidate)
		if err != nil {
			continue
		}
		if s.IsEnabled() {
			return s, nil
		}
	}
	return NoopSpeaker{}, nil
}

// Dialer returns the selected dialer
func (m *Manager) Dialer() Dialer { return m.dialer }

// Speaker returns the selected speaker
func (m *Manager) Speaker() Speaker { return m.speaker }

// Voice returns the configured announcement voice
func (m *Manager) Voice() Voice { return m.voice }

// Announce speaks text about c. screen names the tab that triggered it.
func (m *Manager) Announce(ctx context.Context, c contacts.Contact, text, screen string) error {
	if !m.speaker.IsEnabled() || text == "" {
		return nil
	}

	if err := m.speak(ctx, text); err != nil {
		m.logger.Warn("announcement failed",
			zap.String("speaker", m.speaker.Name()),
			zap.String("contact", c.Name),
			zap.Error(err))
		return err
	}

	m.record(db.Interaction{
		ContactID:   c.ID,
		ContactName: c.Name,
		Kind:        db.KindAnnounce,
		Screen:      db.NewNullString(screen),
	})
	return nil
}

// Call speaks announcement (when non-empty) and then dials c's canonical
// phone number. A failed announcement does not prevent the call.
func (m *Manager) Call(ctx context.Context, c contacts.Contact, announcement, screen string) error {
	if announcement != "" && m.speaker.IsEnabled() {
		if err := m.speak(ctx, announcement); err != nil {
			m.logger.Warn("call announcement failed",
				zap.String("speaker", m.speaker.Name()),
				zap.String("contact", c.Name),
				zap.Error(err))
		}
	}

	if err := m.dialer.Dial(ctx, c.Phone); err != nil {
		m.logger.Warn("dial failed",
			zap.String("dialer", m.dialer.Name()),
			zap.String("contact", c.Name),
			zap.Error(err))
		return fmt.Errorf("calling %s: %w", c.Name, err)
	}

	m.logger.Info("call handed off",
		zap.String("dialer", m.dialer.Name()),
		zap.String("contact", c.Name))

	m.record(db.Interaction{
		ContactID:   c.ID,
		ContactName: c.Name,
		Phone:       db.NewNullString(c.Phone),
		Kind:        db.KindCall,
		Screen:      db.NewNullString(screen),
	})
	return nil
}

// speak runs one utterance at a time; callers arrive on separate goroutines
func (m *Manager) speak(ctx context.Context, text string) error {
	m.speech.Lock()
	defer m.speech.Unlock()
	return m.speaker.Speak(ctx, text, m.voice)
}

func (m *Manager) record(i db.Interaction) {
	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.LogInteraction(i); err != nil {
		m.logger.Warn("recording interaction failed", zap.String("kind", i.Kind), zap.Error(err))
	}
}
