package device

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages available dialer and speaker backends
type Registry struct {
	mu       sync.RWMutex
	dialers  map[string]DialerFactory
	speakers map[string]SpeakerFactory
}

// NewRegistry creates a new backend registry
func NewRegistry() *Registry {
	return &Registry{
		dialers:  make(map[string]DialerFactory),
		speakers: make(map[string]SpeakerFactory),
	}
}

// RegisterDialer adds a new dialer factory to the registry
func (r *Registry) RegisterDialer(name string, factory DialerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dialers[name]; exists {
		return fmt.Errorf("dialer %s already registered", name)
	}

	r.dialers[name] = factory
	return nil
}

// RegisterSpeaker adds a new speaker factory to the registry
func (r *Registry) RegisterSpeaker(name string, factory SpeakerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.speakers[name]; exists {
		return fmt.Errorf("speaker %s already registered", name)
	}

	r.speakers[name] = factory
	return nil
}

// Dialer instantiates a dialer by name
func (r *Registry) Dialer(name string) (Dialer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.dialers[name]
	if !exists {
		return nil, fmt.Errorf("dialer %s not registered", name)
	}

	return factory(), nil
}

// Speaker instantiates a speaker by name
func (r *Registry) Speaker(name string) (Speaker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.speakers[name]
	if !exists {
		return nil, fmt.Errorf("speaker %s not registered", name)
	}

	return factory(), nil
}

// DialerNames returns all registered dialer names, sorted
func (r *Registry) DialerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.dialers))
	for name := range r.dialers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpeakerNames returns all registered speaker names, sorted
func (r *Registry) SpeakerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.speakers))
	for name := range r.speakers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry instance
var defaultRegistry = NewRegistry()

// RegisterDialer adds a dialer to the global registry
func RegisterDialer(name string, factory DialerFactory) error {
	return defaultRegistry.RegisterDialer(name, factory)
}

// RegisterSpeaker adds a speaker to the global registry
func RegisterSpeaker(name string, factory SpeakerFactory) error {
	return defaultRegistry.RegisterSpeaker(name, factory)
}

// CreateDialer creates a dialer from the global registry
func CreateDialer(name string) (Dialer, error) {
	return defaultRegistry.Dialer(name)
}

// CreateSpeaker creates a speaker from the global registry
func CreateSpeaker(name string) (Speaker, error) {
	return defaultRegistry.Speaker(name)
}

// ListDialers returns all registered dialer names from the global registry
func ListDialers() []string {
	return defaultRegistry.DialerNames()
}

// ListSpeakers returns all registered speaker names from the global registry
func ListSpeakers() []string {
	return defaultRegistry.SpeakerNames()
}
