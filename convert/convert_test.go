package convert

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jibsen/goarg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInteger_Signed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		expected int
	}{
		{"simple", "42", nil, 42},
		{"negative", "-42", nil, -42},
		{"zero", "0", nil, 0},
		{"base 16 prefix", "0x20", []Option{WithBase(16)}, 32},
		{"base 16 upper prefix", "0X20", []Option{WithBase(16)}, 32},
		{"base 16", "20", []Option{WithBase(16)}, 32},
		{"base 16 negative prefix", "-0x20", []Option{WithBase(16)}, -32},
		{"base 16 negative", "-20", []Option{WithBase(16)}, -32},
		{"base 16 letters", "fF", []Option{WithBase(16)}, 255},
		{"base 8 leading zero", "0644", []Option{WithBase(8)}, 0o644},
		{"base 8", "644", []Option{WithBase(8)}, 0o644},
		{"base 2 prefix", "0b1011", []Option{WithBase(2)}, 0b1011},
		{"base 2", "1011", []Option{WithBase(2)}, 0b1011},
		{"base 36", "zz", []Option{WithBase(36)}, 36*36 - 1},
		{"base 0 hex", "0x20", []Option{WithBase(0)}, 32},
		{"base 0 negative hex", "-0x20", []Option{WithBase(0)}, -32},
		{"base 0 octal", "0644", []Option{WithBase(0)}, 0o644},
		{"base 0 binary", "0b1011", []Option{WithBase(0)}, 0b1011},
		{"base 0 decimal", "644", []Option{WithBase(0)}, 644},
		{"base 0 lone zero", "0", []Option{WithBase(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInteger[int](tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToInteger_Unsigned(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []Option
		expected uint32
	}{
		{"simple", "42", nil, 42},
		{"negative wraps", "-42", nil, math.MaxUint32 - 41},
		{"base 16 prefix", "0x20", []Option{WithBase(16)}, 32},
		{"base 16 negative", "-0x20", []Option{WithBase(16)}, math.MaxUint32 - 31},
		{"base 8", "0644", []Option{WithBase(8)}, 0o644},
		{"base 2", "0b1011", []Option{WithBase(2)}, 0b1011},
		{"base 0 hex", "0x20", []Option{WithBase(0)}, 32},
		{"base 0 negative hex", "-0x20", []Option{WithBase(0)}, math.MaxUint32 - 31},
		{"base 0 octal", "0644", []Option{WithBase(0)}, 0o644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInteger[uint32](tt.input, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToInteger_Limits(t *testing.T) {
	i8, err := ToInteger[int8]("127")
	require.NoError(t, err)
	assert.Equal(t, int8(127), i8)

	_, err = ToInteger[int8]("128")
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	i8, err = ToInteger[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8)

	_, err = ToInteger[int8]("-129")
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	u8, err := ToInteger[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	_, err = ToInteger[uint8]("256")
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	u8, err = ToInteger[uint8]("-1")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	u8, err = ToInteger[uint8]("-255")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), u8)

	_, err = ToInteger[uint8]("-256")
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	i64, err := ToInteger[int64]("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)

	_, err = ToInteger[int64]("9223372036854775808")
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	u64, err := ToInteger[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u64)

	_, err = ToInteger[uint64]("18446744073709551616")
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))
}

func TestToInteger_UnsignedWraparoundBoundary(t *testing.T) {
	tests := []struct {
		input    string
		expected uint16
		inRange  bool
	}{
		{"-0", 0, true},
		{"-1", 65535, true},
		{"-65000", 536, true},
		{"-65535", 1, true},
		{"-65536", 0, false},
		{"-70000", 0, false},
		{"65535", 65535, true},
		{"65536", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToInteger[uint16](tt.input)
			if tt.inRange {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			} else {
				assert.True(t, errors.Is(err, errs.ErrOutOfRange), "got %v", err)
			}
		})
	}
}

func TestToInteger_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
	}{
		{"empty", "", nil},
		{"sign only", "-", nil},
		{"double sign", "--1", nil},
		{"plus sign", "+1", nil},
		{"trailing letter", "20h", nil},
		{"trailing space", "42 ", nil},
		{"leading space", " 42", nil},
		{"hex without prefix digits", "x20", []Option{WithBase(16)}},
		{"hex prefix only", "0x", []Option{WithBase(16)}},
		{"binary digit out of base", "0102010", []Option{WithBase(2)}},
		{"octal digit out of base", "0649", []Option{WithBase(8)}},
		{"decimal underscore", "1_000", nil},
		{"base 0 underscore", "1_000", []Option{WithBase(0)}},
		{"suffix without multiplier", "1k", nil},
		{"unknown suffix", "1z", []Option{WithMultiplier(Decimal)}},
		{"two suffixes", "1kk", []Option{WithMultiplier(Decimal)}},
		{"suffix only", "k", []Option{WithMultiplier(Binary)}},
		{"base 0 zero with letter", "0z", []Option{WithBase(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToInteger[int](tt.input, tt.opts...)
			assert.True(t, errors.Is(err, errs.ErrInvalidFormat), "got %v", err)
		})
	}

	_, err := ToInteger[int8]("300x")
	assert.True(t, errors.Is(err, errs.ErrInvalidFormat), "got %v", err)
}

func TestToInteger_InvalidBase(t *testing.T) {
	for _, base := range []int{-1, 1, 37} {
		_, err := ToInteger[int]("1", WithBase(base))
		assert.True(t, errors.Is(err, errs.ErrInvalidBase), "base %d", base)
	}
}

func TestToInteger_DecimalMultiplier(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"1k", 1_000},
		{"1K", 1_000},
		{"1m", 1_000_000},
		{"1M", 1_000_000},
		{"1g", 1_000_000_000},
		{"1G", 1_000_000_000},
		{"1t", 1_000_000_000_000},
		{"1T", 1_000_000_000_000},
		{"1p", 1_000_000_000_000_000},
		{"1P", 1_000_000_000_000_000},
		{"1e", 1_000_000_000_000_000_000},
		{"1E", 1_000_000_000_000_000_000},
		{"-2k", -2_000},
		{"7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToInteger[int64](tt.input, WithMultiplier(Decimal))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	i16, err := ToInteger[int16]("32k", WithMultiplier(Decimal))
	require.NoError(t, err)
	assert.Equal(t, int16(32_000), i16)

	i16, err = ToInteger[int16]("-32k", WithMultiplier(Decimal))
	require.NoError(t, err)
	assert.Equal(t, int16(-32_000), i16)

	_, err = ToInteger[int16]("33k", WithMultiplier(Decimal))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	_, err = ToInteger[int16]("-33k", WithMultiplier(Decimal))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	u16, err := ToInteger[uint16]("65k", WithMultiplier(Decimal))
	require.NoError(t, err)
	assert.Equal(t, uint16(65_000), u16)

	u16, err = ToInteger[uint16]("-65k", WithMultiplier(Decimal))
	require.NoError(t, err)
	assert.Equal(t, uint16(65536-65_000), u16)

	_, err = ToInteger[uint16]("66k", WithMultiplier(Decimal))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	_, err = ToInteger[int64]("10e", WithMultiplier(Decimal))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	u8, err := ToInteger[uint8]("0k", WithMultiplier(Decimal), WithBase(10))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), u8)
}

func TestToInteger_BinaryMultiplier(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"1k", 1 << 10},
		{"1K", 1 << 10},
		{"1m", 1 << 20},
		{"1M", 1 << 20},
		{"1g", 1 << 30},
		{"1G", 1 << 30},
		{"1t", 1 << 40},
		{"1T", 1 << 40},
		{"1p", 1 << 50},
		{"1P", 1 << 50},
		{"1e", 1 << 60},
		{"1E", 1 << 60},
		{"15e", 15 << 60},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToInteger[uint64](tt.input, WithMultiplier(Binary))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ToInteger[uint64]("16e", WithMultiplier(Binary))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	i16, err := ToInteger[int16]("31k", WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, int16(31*1024), i16)

	i16, err = ToInteger[int16]("-32k", WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, int16(-32*1024), i16)

	_, err = ToInteger[int16]("32k", WithMultiplier(Binary))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	_, err = ToInteger[int16]("-33k", WithMultiplier(Binary))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	u16, err := ToInteger[uint16]("63k", WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, uint16(63*1024), u16)

	_, err = ToInteger[uint16]("64k", WithMultiplier(Binary))
	assert.True(t, errors.Is(err, errs.ErrOutOfRange))

	i64, err := ToInteger[int64]("0x10k", WithBase(0), WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, int64(16*1024), i64)

	for _, in := range []string{"0k", "0K", "-0k"} {
		i64, err = ToInteger[int64](in, WithBase(0), WithMultiplier(Binary))
		require.NoError(t, err, in)
		assert.Equal(t, int64(0), i64, in)
	}

	i64, err = ToInteger[int64]("010k", WithBase(0), WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, int64(8*1024), i64)

	u8, err := ToInteger[uint8]("0m", WithBase(0), WithMultiplier(Decimal))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), u8)
}

func TestToInteger_HexDigitsWinOverSuffix(t *testing.T) {
	got, err := ToInteger[int64]("1e", WithBase(16), WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, int64(0x1e), got)

	got, err = ToInteger[int64]("1k", WithBase(16), WithMultiplier(Binary))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), got)
}

type port uint16

func TestToInteger_NamedType(t *testing.T) {
	got, err := ToInteger[port]("8080")
	require.NoError(t, err)
	assert.Equal(t, port(8080), got)
}

func TestToBool(t *testing.T) {
	truthy := []string{"yes", "true", "on", "1", "YeS", "tRuE", "On", "TRUE"}
	for _, s := range truthy {
		got, err := ToBool(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}

	falsy := []string{"no", "false", "off", "0", "nO", "FaLsE", "oFf"}
	for _, s := range falsy {
		got, err := ToBool(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}

	invalid := []string{"", " true", "true ", "yess", "noff", "0n", "2", "-1", "t", "y", "yeſ"}
	for _, s := range invalid {
		_, err := ToBool(s)
		assert.True(t, errors.Is(err, errs.ErrInvalidFormat), "%q", s)
	}
}

func TestToTime(t *testing.T) {
	got, err := ToTime("2024-03-15")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC).Equal(got), "got %v", got)

	got, err = ToTime("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC).Equal(got), "got %v", got)

	_, err = ToTime("not a date")
	assert.True(t, errors.Is(err, errs.ErrInvalidFormat))
}

func TestMultiplier_String(t *testing.T) {
	assert.Equal(t, "none", NoMultiplier.String())
	assert.Equal(t, "decimal", Decimal.String())
	assert.Equal(t, "binary", Binary.String())
}

func FuzzToInteger(f *testing.F) {
	f.Add("42", 10)
	f.Add("-0x20", 0)
	f.Add("1k", 16)
	f.Add("-128", 10)
	f.Add("0b", 2)

	f.Fuzz(func(t *testing.T, s string, base int) {
		if base < 0 || base > 36 {
			return
		}

		got, err := ToInteger[int8](s, WithBase(base), WithMultiplier(Decimal))
		if err != nil {
			assert.True(t, errors.Is(err, errs.ErrInvalidFormat) ||
				errors.Is(err, errs.ErrOutOfRange) ||
				errors.Is(err, errs.ErrInvalidBase), "unexpected error %v", err)
			return
		}

		wide, err := ToInteger[int64](s, WithBase(base), WithMultiplier(Decimal))
		require.NoError(t, err, "int8 accepted %q but int64 did not", s)
		assert.Equal(t, int64(got), wide)
	})
}
