// Package params declares the Quarry engine's configuration entries.
//
// Declarations run at package initialization and populate the global
// registry as a side effect; importing this package (possibly blank) is what
// makes the engine's schema visible to conf.Lookup and conf.PublicEntries.
package params

import (
	"strings"
	"time"

	"github.com/quarrydb/quarry/internal/conf"
)

// SortBufferRows bounds the in-memory sort buffer.
var SortBufferRows = conf.New("quarry.exec.sort.buffer.rows").
	Doc("Rows buffered in memory before the sorter spills to disk.").
	Int64().
	WithDefault(65536)

// SortSpillRows has no static default: when unset, callers derive it from
// SortBufferRows' live value via SortSpillThreshold.
var SortSpillRows = conf.New("quarry.exec.sort.spill.rows").
	Doc("Row count at which a running sort is forced to spill. " +
		"Defaults to one more than quarry.exec.sort.buffer.rows.").
	Int64().
	Optional()

// ShufflePartitions is the default partition count for exchanges.
var ShufflePartitions = conf.New("quarry.exec.shuffle.partitions").
	Doc("Number of partitions used when shuffling data between query stages.").
	Int().
	WithDefault(200)

// CompressionCodec selects the block codec for shuffle and spill files.
var CompressionCodec = conf.New("quarry.exec.compression.codec").
	Doc("Compression codec for shuffle and spill files. One of lz4, snappy, zstd, none.").
	Transform(strings.ToLower).
	CheckValues("lz4", "snappy", "zstd", "none").
	String().
	WithDefault("lz4")

// ScanBatchBytes sizes the vectorized reader's output batches.
var ScanBatchBytes = conf.New("quarry.exec.scan.batch.size").
	Doc("Target size of a single scan batch. Accepts a unit suffix, e.g. 4m or 512k.").
	Bytes(conf.Mebibyte).
	WithDefault(4 << 20)

// BroadcastThresholdBytes caps the build side of broadcast joins.
var BroadcastThresholdBytes = conf.New("quarry.exec.join.broadcast.threshold").
	Doc("Maximum estimated relation size that may be broadcast to all workers.").
	Bytes(conf.Mebibyte).
	WithDefault(10 << 20)

// MemoryFraction is the share of the session budget given to execution.
var MemoryFraction = conf.New("quarry.exec.memory.fraction").
	Doc("Fraction of session memory reserved for execution buffers.").
	Float64().
	WithDefault(0.6)

// AdaptiveEnabled gates adaptive re-planning between stages.
var AdaptiveEnabled = conf.New("quarry.exec.adaptive.enabled").
	Doc("Re-plan remaining query stages using runtime statistics.").
	Bool().
	WithDefault(true)

// NetworkTimeout bounds peer RPCs issued during query execution.
var NetworkTimeout = conf.New("quarry.network.timeout").
	Doc("Timeout for worker RPCs. Bare numbers are seconds; accepts unit suffixes, e.g. 90s or 2m.").
	Duration(time.Second).
	WithDefault(120 * time.Second)

// FetchRetryWait is the pause between shuffle fetch retries.
var FetchRetryWait = conf.New("quarry.network.fetch.retry.wait").
	Doc("Wait between retries of a failed shuffle fetch.").
	Duration(time.Second).
	WithDefault(5 * time.Second)

// PlanCacheEntries bounds the logical-plan cache. Internal: sizing it is an
// implementation detail subject to change between releases.
var PlanCacheEntries = conf.New("quarry.internal.plan.cache.entries").
	Internal().
	Doc("Maximum number of cached logical plans per session.").
	Int().
	WithDefault(128)

// TraceEvents toggles per-operator event capture.
var TraceEvents = conf.New("quarry.internal.trace.events").
	Internal().
	Doc("Capture per-operator execution events for debugging.").
	Bool().
	WithDefault(false)

// SortSpillThreshold returns the effective spill threshold for the session:
// the explicit quarry.exec.sort.spill.rows override when present, otherwise
// one more than the *current* value of quarry.exec.sort.buffer.rows. The
// derivation happens on every call; the buffer entry may itself be
// overridden at any time, so the result is never cached.
func SortSpillThreshold(s *conf.Settings) (int64, error) {
	rows, err := SortBufferRows.Get(s)
	if err != nil {
		return 0, err
	}
	return SortSpillRows.GetOr(s, rows+1)
}
