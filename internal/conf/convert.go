package conf

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// converter pairs a parse and a format function for one primitive kind.
// format is total and round-trips with parse for every value format produces.
type converter[T any] struct {
	// kind is the human-readable kind name used in error messages.
	kind   string
	parse  func(string) (T, error)
	format func(T) string
}

func boolConverter() converter[bool] {
	return converter[bool]{
		kind: "boolean",
		parse: func(raw string) (bool, error) {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return false, &FormatError{Value: raw, Kind: "boolean", Err: err}
			}
			return v, nil
		},
		format: strconv.FormatBool,
	}
}

func intConverter() converter[int] {
	return converter[int]{
		kind: "integer",
		parse: func(raw string) (int, error) {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return 0, &FormatError{Value: raw, Kind: "integer", Err: err}
			}
			return v, nil
		},
		format: strconv.Itoa,
	}
}

func int64Converter() converter[int64] {
	return converter[int64]{
		kind: "long integer",
		parse: func(raw string) (int64, error) {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return 0, &FormatError{Value: raw, Kind: "long integer", Err: err}
			}
			return v, nil
		},
		format: func(v int64) string { return strconv.FormatInt(v, 10) },
	}
}

func float64Converter() converter[float64] {
	return converter[float64]{
		kind: "float",
		parse: func(raw string) (float64, error) {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, &FormatError{Value: raw, Kind: "float", Err: err}
			}
			return v, nil
		},
		format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	}
}

func stringConverter() converter[string] {
	return converter[string]{
		kind:   "string",
		parse:  func(raw string) (string, error) { return raw, nil },
		format: func(v string) string { return v },
	}
}

// ByteUnit is a byte-size multiplier for bare numeric literals.
type ByteUnit int64

// Byte units, binary multiples.
const (
	Byte     ByteUnit = 1
	Kibibyte ByteUnit = 1 << 10
	Mebibyte ByteUnit = 1 << 20
	Gibibyte ByteUnit = 1 << 30
	Tebibyte ByteUnit = 1 << 40
	Pebibyte ByteUnit = 1 << 50
)

var byteSuffixes = map[string]ByteUnit{
	"b":  Byte,
	"k":  Kibibyte,
	"kb": Kibibyte,
	"m":  Mebibyte,
	"mb": Mebibyte,
	"g":  Gibibyte,
	"gb": Gibibyte,
	"t":  Tebibyte,
	"tb": Tebibyte,
	"p":  Pebibyte,
	"pb": Pebibyte,
}

// bytesConverter accepts a unit suffix (e.g., "64m", "1gb"); bare numerals
// take defaultUnit. Values are whole non-negative byte counts.
func bytesConverter(defaultUnit ByteUnit) converter[int64] {
	return converter[int64]{
		kind: "byte size",
		parse: func(raw string) (int64, error) {
			v, err := parseByteSize(raw, defaultUnit)
			if err != nil {
				return 0, &FormatError{Value: raw, Kind: "byte size", Err: err}
			}
			return v, nil
		},
		format: formatByteSize,
	}
}

func parseByteSize(raw string, defaultUnit ByteUnit) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	digits := strings.TrimRight(s, "bkmgtp")
	unit := defaultUnit
	if suffix := s[len(digits):]; suffix != "" {
		u, ok := byteSuffixes[suffix]
		if !ok {
			return 0, &FormatError{Value: raw, Kind: "byte size"}
		}
		unit = u
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &FormatError{Value: raw, Kind: "byte size"}
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, &FormatError{Value: raw, Kind: "byte size"}
	}
	return n * int64(unit), nil
}

// formatByteSize renders the largest exact unit, so the suffix is always
// explicit and the result reparses to the same byte count under any
// default unit.
func formatByteSize(v int64) string {
	if v < 0 {
		return strconv.FormatInt(v, 10) + "b"
	}
	units := []struct {
		unit   ByteUnit
		suffix string
	}{
		{Pebibyte, "p"},
		{Tebibyte, "t"},
		{Gibibyte, "g"},
		{Mebibyte, "m"},
		{Kibibyte, "k"},
	}
	for _, u := range units {
		if v >= int64(u.unit) && v%int64(u.unit) == 0 {
			return strconv.FormatInt(v/int64(u.unit), 10) + u.suffix
		}
	}
	return strconv.FormatInt(v, 10) + "b"
}

// durationConverter accepts time.ParseDuration syntax plus a "d" (day)
// suffix; bare numerals take defaultUnit.
func durationConverter(defaultUnit time.Duration) converter[time.Duration] {
	return converter[time.Duration]{
		kind: "duration",
		parse: func(raw string) (time.Duration, error) {
			v, err := parseDuration(raw, defaultUnit)
			if err != nil {
				return 0, &FormatError{Value: raw, Kind: "duration", Err: err}
			}
			return v, nil
		},
		format: time.Duration.String,
	}
}

func parseDuration(raw string, defaultUnit time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > int64(math.MaxInt64)/int64(defaultUnit) ||
			n < int64(math.MinInt64)/int64(defaultUnit) {
			return 0, &FormatError{Value: raw, Kind: "duration"}
		}
		return time.Duration(n) * defaultUnit, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		if n, err := strconv.ParseInt(days, 10, 64); err == nil {
			const day = 24 * time.Hour
			if n > int64(math.MaxInt64)/int64(day) ||
				n < int64(math.MinInt64)/int64(day) {
				return 0, &FormatError{Value: raw, Kind: "duration"}
			}
			return time.Duration(n) * day, nil
		}
	}
	return time.ParseDuration(s)
}
