package conf

import (
	"fmt"
	"time"
)

// Builder assembles one Entry from a key and a chain of modifiers, ending in
// a kind selection and a default policy. The terminal methods register the
// entry as a side effect; a duplicate key or an invalid declared default
// panics, surfacing schema authoring bugs at process start.
//
//	var shufflePartitions = conf.New("quarry.exec.shuffle.partitions").
//		Doc("Number of partitions used when shuffling data between stages.").
//		Int().
//		WithDefault(200)
type Builder struct {
	key       string
	doc       string
	internal  bool
	transform func(string) string
	allowed   []string
}

// New starts a builder for the given key. Keys are namespaced and
// dot-separated (e.g., "quarry.exec.sort.buffer.rows").
func New(key string) *Builder {
	if key == "" {
		panic("conf: entry key must not be empty")
	}
	return &Builder{key: key}
}

// Doc attaches documentation text.
func (b *Builder) Doc(doc string) *Builder {
	b.doc = doc
	return b
}

// Internal excludes the entry from the public introspection surface. The
// entry stays fully settable and gettable through the typed and string APIs.
func (b *Builder) Internal() *Builder {
	b.internal = true
	return b
}

// Transform attaches a normalization applied to raw input before validation
// and conversion (e.g., strings.ToLower).
func (b *Builder) Transform(fn func(string) string) *Builder {
	b.transform = fn
	return b
}

// CheckValues restricts transformed input to the given set; anything else
// fails the write with ErrIllegalValue.
func (b *Builder) CheckValues(values ...string) *Builder {
	b.allowed = values
	return b
}

// TypedBuilder is a Builder after kind selection; only a default policy
// remains to be chosen.
type TypedBuilder[T any] struct {
	b    *Builder
	conv converter[T]
}

func typed[T any](b *Builder, conv converter[T]) *TypedBuilder[T] {
	return &TypedBuilder[T]{b: b, conv: conv}
}

// Bool selects the boolean kind.
func (b *Builder) Bool() *TypedBuilder[bool] { return typed(b, boolConverter()) }

// Int selects the integer kind.
func (b *Builder) Int() *TypedBuilder[int] { return typed(b, intConverter()) }

// Int64 selects the long integer kind.
func (b *Builder) Int64() *TypedBuilder[int64] { return typed(b, int64Converter()) }

// Float64 selects the floating point kind.
func (b *Builder) Float64() *TypedBuilder[float64] { return typed(b, float64Converter()) }

// String selects the string kind.
func (b *Builder) String() *TypedBuilder[string] { return typed(b, stringConverter()) }

// Bytes selects the byte-size kind. Bare numeric input is read in
// defaultUnit; suffixed input ("64m", "1gb") carries its own unit.
func (b *Builder) Bytes(defaultUnit ByteUnit) *TypedBuilder[int64] {
	return typed(b, bytesConverter(defaultUnit))
}

// Duration selects the duration kind. Bare numeric input is read in
// defaultUnit; suffixed input ("10s", "2h") carries its own unit.
func (b *Builder) Duration(defaultUnit time.Duration) *TypedBuilder[time.Duration] {
	return typed(b, durationConverter(defaultUnit))
}

func (tb *TypedBuilder[T]) entry() *Entry[T] {
	return &Entry[T]{
		key:       tb.b.key,
		doc:       tb.b.doc,
		internal:  tb.b.internal,
		transform: tb.b.transform,
		allowed:   tb.b.allowed,
		conv:      tb.conv,
	}
}

// WithDefault finishes the entry with a fixed default and registers it. The
// default is pushed through the entry's own transform, allowed-value check,
// and format/parse pair, so an invalid declared default fails at declaration
// time. The canonical (post-transform) value becomes the default.
func (tb *TypedBuilder[T]) WithDefault(v T) *Entry[T] {
	e := tb.entry()
	normalized, err := e.normalize(e.conv.format(v))
	if err != nil {
		panic(fmt.Sprintf("conf: invalid default for %s: %v", e.key, err))
	}
	canonical, err := e.conv.parse(normalized)
	if err != nil {
		panic(fmt.Sprintf("conf: invalid default for %s: %v", e.key, err))
	}
	e.defVal, e.hasDef = canonical, true
	mustRegister(e)
	return e
}

// Optional finishes the entry with no default and registers it. Reads of an
// unset optional entry need a call-site fallback or fail with ErrKeyNotFound.
func (tb *TypedBuilder[T]) Optional() *Entry[T] {
	e := tb.entry()
	mustRegister(e)
	return e
}

func mustRegister(d Descriptor) {
	if err := global.register(d); err != nil {
		panic(fmt.Sprintf("conf: %v", err))
	}
}
