package conf

import "slices"

// Undefined is the sentinel for "no value" in the stringly-typed API.
// GetStringOr skips fallback validation when the fallback is Undefined, and
// PublicEntries reports it as the default of optional entries.
const Undefined = "<undefined>"

// Descriptor is the kind-erased view of a typed entry, as held by the
// registry and by string-level store operations.
type Descriptor interface {
	// Key returns the unique, dot-separated entry key.
	Key() string

	// Doc returns the entry's documentation text.
	Doc() string

	// IsInternal reports whether the entry is excluded from the public
	// introspection surface.
	IsInternal() bool

	// HasDefault reports whether the entry declares a fixed default.
	HasDefault() bool

	// DefaultString returns the formatted fixed default, or Undefined for
	// optional entries.
	DefaultString() string

	// normalize applies the entry's transform, allowed-value check, and a
	// conversion check to a raw value, returning the transformed value to
	// store. The store is never touched when normalize fails.
	normalize(raw string) (string, error)
}

// Entry is an immutable, typed specification of one configuration key.
// Construction goes through the builder in builder.go, which registers the
// entry as a side effect; the entry never changes afterwards.
type Entry[T any] struct {
	key       string
	doc       string
	internal  bool
	transform func(string) string
	allowed   []string
	conv      converter[T]
	defVal    T
	hasDef    bool
}

// Key returns the entry's unique key.
func (e *Entry[T]) Key() string { return e.key }

// Doc returns the entry's documentation text.
func (e *Entry[T]) Doc() string { return e.doc }

// IsInternal reports whether the entry is hidden from introspection.
func (e *Entry[T]) IsInternal() bool { return e.internal }

// HasDefault reports whether the entry declares a fixed default.
func (e *Entry[T]) HasDefault() bool { return e.hasDef }

// Default returns the declared fixed default, if any.
func (e *Entry[T]) Default() (T, bool) { return e.defVal, e.hasDef }

// DefaultString returns the formatted fixed default, or Undefined.
func (e *Entry[T]) DefaultString() string {
	if !e.hasDef {
		return Undefined
	}
	return e.conv.format(e.defVal)
}

func (e *Entry[T]) normalize(raw string) (string, error) {
	v := raw
	if e.transform != nil {
		v = e.transform(v)
	}
	if len(e.allowed) > 0 && !slices.Contains(e.allowed, v) {
		return "", &IllegalValueError{Key: e.key, Value: v, Allowed: e.allowed}
	}
	if _, err := e.conv.parse(v); err != nil {
		return "", err
	}
	return v, nil
}

// parseStored converts a stored raw value to T. Values written through
// SetString were normalized on the way in, but a value may predate the
// entry's registration, so the transform and allowed-value check rerun here.
func (e *Entry[T]) parseStored(raw string) (T, error) {
	v := raw
	if e.transform != nil {
		v = e.transform(v)
	}
	if len(e.allowed) > 0 && !slices.Contains(e.allowed, v) {
		var zero T
		return zero, &IllegalValueError{Key: e.key, Value: v, Allowed: e.allowed}
	}
	return e.conv.parse(v)
}

// checkRegistered verifies this descriptor is the registry's entry for its
// key, guarding against stale or forked descriptors.
func (e *Entry[T]) checkRegistered() error {
	d, ok := Lookup(e.key)
	if !ok || d != Descriptor(e) {
		return &UnregisteredEntryError{Key: e.key}
	}
	return nil
}

// Get returns the session's value for this entry: the stored override if
// present, else the declared fixed default, else ErrKeyNotFound.
func (e *Entry[T]) Get(s *Settings) (T, error) {
	var zero T
	if err := e.checkRegistered(); err != nil {
		return zero, err
	}
	if raw, ok := s.rawValue(e.key); ok {
		return e.parseStored(raw)
	}
	if e.hasDef {
		return e.defVal, nil
	}
	return zero, &NotFoundError{Key: e.key}
}

// GetOr is Get with a call-site fallback in place of ErrKeyNotFound. It is
// the hook for defaults computed at read time from other entries' live
// values; the computation stays at the call site and is never cached.
func (e *Entry[T]) GetOr(s *Settings, fallback T) (T, error) {
	var zero T
	if err := e.checkRegistered(); err != nil {
		return zero, err
	}
	if raw, ok := s.rawValue(e.key); ok {
		return e.parseStored(raw)
	}
	if e.hasDef {
		return e.defVal, nil
	}
	return fallback, nil
}

// Set formats v and stores it for this entry's key. The formatted value goes
// back through SetString, so it is re-validated like any other write.
func (e *Entry[T]) Set(s *Settings, v T) error {
	if err := e.checkRegistered(); err != nil {
		return err
	}
	return s.SetString(e.key, e.conv.format(v))
}

// Unset removes the session's override; reads fall back to the default.
func (e *Entry[T]) Unset(s *Settings) {
	s.Unset(e.key)
}
