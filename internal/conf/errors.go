package conf

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidFormat indicates a raw value could not be parsed as the
	// entry's declared kind.
	ErrInvalidFormat = errors.New("invalid value format")

	// ErrIllegalValue indicates a value is outside an entry's allowed set.
	ErrIllegalValue = errors.New("illegal configuration value")

	// ErrDuplicateKey indicates an attempt to declare a second entry with
	// an already-registered key.
	ErrDuplicateKey = errors.New("configuration key already registered")

	// ErrUnregisteredEntry indicates a descriptor that is not the registry's
	// entry for its key (typically a stale or forked descriptor).
	ErrUnregisteredEntry = errors.New("entry not registered")

	// ErrKeyNotFound indicates a key with no stored value and no default.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyKey indicates an empty configuration key.
	ErrEmptyKey = errors.New("configuration key must not be empty")
)

// FormatError describes a raw value that failed conversion to an entry's kind.
type FormatError struct {
	// Value is the offending raw value.
	Value string
	// Kind is the human-readable kind name (e.g., "integer", "byte size").
	Kind string
	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s", e.Value, e.Kind)
}

// Unwrap returns ErrInvalidFormat so callers can match with errors.Is.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// IllegalValueError describes a value rejected by an entry's allowed-value set.
type IllegalValueError struct {
	// Key is the entry key.
	Key string
	// Value is the offending value (post-transform).
	Value string
	// Allowed lists the permitted values.
	Allowed []string
}

// Error implements the error interface.
func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("%s: value %q must be one of [%s]",
		e.Key, e.Value, strings.Join(e.Allowed, ", "))
}

// Unwrap returns ErrIllegalValue so callers can match with errors.Is.
func (e *IllegalValueError) Unwrap() error {
	return ErrIllegalValue
}

// NotFoundError describes a read of a key with no value and no default.
type NotFoundError struct {
	// Key is the key that was looked up.
	Key string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no value set and no default declared", e.Key)
}

// Unwrap returns ErrKeyNotFound so callers can match with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

// UnregisteredEntryError describes an operation through a descriptor that the
// registry does not recognize as the entry for its key.
type UnregisteredEntryError struct {
	// Key is the descriptor's key.
	Key string
}

// Error implements the error interface.
func (e *UnregisteredEntryError) Error() string {
	return fmt.Sprintf("%s: descriptor is not the registered entry for this key", e.Key)
}

// Unwrap returns ErrUnregisteredEntry so callers can match with errors.Is.
func (e *UnregisteredEntryError) Unwrap() error {
	return ErrUnregisteredEntry
}
