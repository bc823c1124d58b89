package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/conf"
)

func TestCatalogRegistered(t *testing.T) {
	for _, key := range []string{
		"quarry.exec.sort.buffer.rows",
		"quarry.exec.sort.spill.rows",
		"quarry.exec.shuffle.partitions",
		"quarry.exec.compression.codec",
		"quarry.exec.scan.batch.size",
		"quarry.network.timeout",
		"quarry.internal.plan.cache.entries",
	} {
		_, ok := conf.Lookup(key)
		assert.True(t, ok, "missing entry %s", key)
	}
}

func TestDeclaredDefaultsRoundTrip(t *testing.T) {
	// Every public default, pushed back through the string surface, must be
	// accepted by its own entry.
	s := conf.NewSettings()
	for _, info := range conf.PublicEntries() {
		if info.Default == conf.Undefined {
			continue
		}
		assert.NoError(t, s.SetString(info.Key, info.Default), "default of %s", info.Key)
	}
}

func TestInternalEntriesHiddenButSettable(t *testing.T) {
	for _, info := range conf.PublicEntries() {
		assert.NotEqual(t, "quarry.internal.plan.cache.entries", info.Key)
	}

	s := conf.NewSettings()
	require.NoError(t, s.SetString("quarry.internal.plan.cache.entries", "256"))
	v, err := PlanCacheEntries.Get(s)
	require.NoError(t, err)
	assert.Equal(t, 256, v)
}

func TestCompressionCodecNormalized(t *testing.T) {
	s := conf.NewSettings()

	require.NoError(t, s.SetString("quarry.exec.compression.codec", "ZSTD"))
	codec, err := CompressionCodec.Get(s)
	require.NoError(t, err)
	assert.Equal(t, "zstd", codec)

	err = s.SetString("quarry.exec.compression.codec", "gzip")
	assert.ErrorIs(t, err, conf.ErrIllegalValue)
}

func TestSortSpillThresholdTracksBufferRows(t *testing.T) {
	s := conf.NewSettings()

	// Derived from the buffer entry's default when neither is overridden.
	v, err := SortSpillThreshold(s)
	require.NoError(t, err)
	assert.Equal(t, int64(65537), v)

	// Tracks the buffer entry's live value, not its registration-time default.
	require.NoError(t, SortBufferRows.Set(s, 50))
	v, err = SortSpillThreshold(s)
	require.NoError(t, err)
	assert.Equal(t, int64(51), v)

	// An explicit override wins outright.
	require.NoError(t, SortSpillRows.Set(s, 10000))
	v, err = SortSpillThreshold(s)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), v)

	SortSpillRows.Unset(s)
	v, err = SortSpillThreshold(s)
	require.NoError(t, err)
	assert.Equal(t, int64(51), v, "clearing the override re-derives from the live buffer value")
}

func TestByteAndDurationDefaults(t *testing.T) {
	s := conf.NewSettings()

	batch, err := s.GetString("quarry.exec.scan.batch.size")
	require.NoError(t, err)
	assert.Equal(t, "4m", batch)

	require.NoError(t, s.SetString("quarry.network.timeout", "90"))
	d, err := NetworkTimeout.Get(s)
	require.NoError(t, err)
	assert.Equal(t, "1m30s", d.String(), "bare numerals are seconds")
}
