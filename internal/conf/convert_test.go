package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolConverter(t *testing.T) {
	conv := boolConverter()

	v, err := conv.parse("true")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = conv.parse("0")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = conv.parse("yes")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	assert.Equal(t, "true", conv.format(true))
}

func TestIntConverterRange(t *testing.T) {
	conv := int64Converter()

	v, err := conv.parse("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	// Out-of-range literals are format errors, not silent truncation.
	_, err = conv.parse("9223372036854775808")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = conv.parse("12abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFloatConverterRoundTrip(t *testing.T) {
	conv := float64Converter()

	for _, f := range []float64{0, 0.6, -1.25, 3e300, 0.1} {
		v, err := conv.parse(conv.format(f))
		require.NoError(t, err)
		assert.Equal(t, f, v)
	}
}

func TestByteSizeParse(t *testing.T) {
	conv := bytesConverter(Mebibyte)

	tests := []struct {
		raw  string
		want int64
	}{
		{"64m", 64 << 20},
		{"64MB", 64 << 20},
		{"512k", 512 << 10},
		{"1g", 1 << 30},
		{"2tb", 2 << 40},
		{"100b", 100},
		{"0", 0},
		{"16", 16 << 20}, // bare numeral takes the default unit
	}
	for _, tt := range tests {
		v, err := conv.parse(tt.raw)
		require.NoError(t, err, "parse(%q)", tt.raw)
		assert.Equal(t, tt.want, v, "parse(%q)", tt.raw)
	}
}

func TestByteSizeParseErrors(t *testing.T) {
	conv := bytesConverter(Byte)

	for _, raw := range []string{"", "m", "12x", "-1k", "12.5m", "9223372036854775807k"} {
		_, err := conv.parse(raw)
		assert.ErrorIs(t, err, ErrInvalidFormat, "parse(%q)", raw)
	}
}

func TestByteSizeFormatRoundTrip(t *testing.T) {
	// The formatted form carries an explicit suffix, so it reparses to the
	// same count regardless of the converter's default unit.
	for _, conv := range []converter[int64]{bytesConverter(Byte), bytesConverter(Gibibyte)} {
		for _, v := range []int64{0, 1, 1023, 1024, 64 << 20, 3 << 30, (5 << 40) + 1} {
			got, err := conv.parse(conv.format(v))
			require.NoError(t, err, "format(%d) = %q", v, conv.format(v))
			assert.Equal(t, v, got)
		}
	}
	assert.Equal(t, "64m", formatByteSize(64<<20))
	assert.Equal(t, "1025b", formatByteSize(1025))
}

func TestDurationParse(t *testing.T) {
	conv := durationConverter(time.Second)

	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"1500ms", 1500 * time.Millisecond},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"90", 90 * time.Second}, // bare numeral takes the default unit
		{"-5s", -5 * time.Second},
	}
	for _, tt := range tests {
		v, err := conv.parse(tt.raw)
		require.NoError(t, err, "parse(%q)", tt.raw)
		assert.Equal(t, tt.want, v, "parse(%q)", tt.raw)
	}

	_, err := conv.parse("soon")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDurationParseOutOfRange(t *testing.T) {
	conv := durationConverter(time.Second)

	// Out-of-range literals fail instead of silently wrapping.
	for _, raw := range []string{"999999999999999d", "-999999999999999d", "99999999999999999999"} {
		_, err := conv.parse(raw)
		assert.ErrorIs(t, err, ErrInvalidFormat, "parse(%q)", raw)
	}
}

func TestDurationFormatRoundTrip(t *testing.T) {
	conv := durationConverter(time.Millisecond)

	for _, d := range []time.Duration{0, time.Nanosecond, 120 * time.Second, 26*time.Hour + 3*time.Minute} {
		got, err := conv.parse(conv.format(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
