package conf

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReservedPrefix is the namespace owned by the engine's declared entries.
// Writes of unregistered keys under it are accepted but flagged, since they
// usually indicate a typo or a key from a newer schema.
const ReservedPrefix = "quarry."

// Settings is a per-session store of raw string overrides, resolved against
// the global registry at read time. It only ever holds strings; typing is
// applied per call by the matching entry's converter. Unregistered keys are
// stored verbatim, so the store doubles as a pass-through for runtime flags
// outside the typed schema.
//
// All operations are safe for concurrent use; a single mutex per instance
// guards the underlying map. Configuration is read far more often than
// written, and writes are infrequent administrative actions, so an exclusive
// lock is a deliberate simplification.
type Settings struct {
	mu     sync.RWMutex
	id     uuid.UUID
	values map[string]string
	log    zerolog.Logger
}

// Option configures a Settings instance.
type Option func(*Settings)

// WithLogger sets the logger used for advisory diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Settings) {
		s.log = log
	}
}

// NewSettings creates an empty per-session store.
func NewSettings(opts ...Option) *Settings {
	s := &Settings{
		id:     uuid.New(),
		values: make(map[string]string),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier for this store.
func (s *Settings) ID() uuid.UUID {
	return s.id
}

// SetString stores a raw value for key, overwriting any prior value. For
// registered keys the value first runs the entry's transform, allowed-value
// check, and converter; a failure rejects the write and leaves the store
// unchanged. Unregistered keys are stored verbatim, with an advisory log
// when they sit in the reserved namespace.
func (s *Settings) SetString(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	store := value
	if d, ok := Lookup(key); ok {
		normalized, err := d.normalize(value)
		if err != nil {
			return err
		}
		store = normalized
	} else if strings.HasPrefix(key, ReservedPrefix) {
		s.log.Warn().
			Str("session", s.id.String()).
			Str("key", key).
			Msg("setting unregistered key in reserved namespace")
	}

	s.mu.Lock()
	s.values[key] = store
	s.mu.Unlock()
	return nil
}

// SetAll applies SetString for every pair, failing fast on the first bad one.
// A failure can leave the batch partially applied; callers needing atomicity
// pre-validate before calling.
func (s *Settings) SetAll(values map[string]string) error {
	for k, v := range values {
		if err := s.SetString(k, v); err != nil {
			return fmt.Errorf("applying %s: %w", k, err)
		}
	}
	return nil
}

// GetString returns the stored raw value, else the registered entry's
// formatted fixed default, else ErrKeyNotFound.
func (s *Settings) GetString(key string) (string, error) {
	if v, ok := s.rawValue(key); ok {
		return v, nil
	}
	if d, ok := Lookup(key); ok && d.HasDefault() {
		return d.DefaultString(), nil
	}
	return "", &NotFoundError{Key: key}
}

// GetStringOr is GetString with a fallback in place of ErrKeyNotFound.
// When the key is registered and fallback is not the Undefined sentinel, the
// fallback itself is validated against the entry's converter even when a
// stored value or default is returned instead, so a bad call-site fallback
// surfaces on the first read rather than on the first miss.
func (s *Settings) GetStringOr(key, fallback string) (string, error) {
	d, registered := Lookup(key)
	if registered && fallback != Undefined {
		if _, err := d.normalize(fallback); err != nil {
			return "", err
		}
	}
	if v, ok := s.rawValue(key); ok {
		return v, nil
	}
	if registered && d.HasDefault() {
		return d.DefaultString(), nil
	}
	return fallback, nil
}

// All returns a point-in-time copy of the current overrides. Defaults are
// never included. The copy is taken atomically with respect to concurrent
// writers, so no half-applied write is observable.
func (s *Settings) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]string, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	return snapshot
}

// Unset removes the override for key; subsequent reads fall back to the
// entry's default, if any.
func (s *Settings) Unset(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}

// Clear removes all overrides.
func (s *Settings) Clear() {
	s.mu.Lock()
	s.values = make(map[string]string)
	s.mu.Unlock()
}

func (s *Settings) rawValue(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}
