// Package conf provides the typed configuration core for the Quarry engine.
//
// It has three pieces with a strict dependency order:
//
//   - A converter library: parse/format pairs for a closed set of primitive
//     kinds (boolean, integer, long integer, float, string, byte size with
//     unit, duration with unit).
//   - Entry descriptors and their builder: immutable, typed specifications of
//     one configuration key each, carrying documentation, visibility, an
//     optional input transform, an optional allowed-value set, and a default
//     policy. Finishing a builder chain registers the entry in the
//     process-wide registry; duplicate keys panic at bootstrap.
//   - Per-session Settings stores: thread-safe maps from key to raw string,
//     converter-agnostic by construction. Typing, validation, and defaulting
//     happen at read/write time by consulting the registry.
//
// Entry declarations run once at package initialization (see params for the
// engine's catalog). Each engine session owns one Settings store; all stores
// share the registry read-only.
//
// # Basic usage
//
// Declare an entry at init time:
//
//	var sortBufferRows = conf.New("quarry.exec.sort.buffer.rows").
//		Doc("Rows buffered in memory before the sorter spills to disk.").
//		Int64().
//		WithDefault(65536)
//
// Read and write per session:
//
//	s := conf.NewSettings()
//	rows, err := sortBufferRows.Get(s)      // 65536 until overridden
//	err = sortBufferRows.Set(s, 1<<20)
//	err = s.SetString("quarry.exec.sort.buffer.rows", "1048576") // string surface
//
// Unknown keys are accepted verbatim; the store also carries pass-through
// runtime flags outside the typed schema.
package conf
