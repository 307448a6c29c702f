// Package convert turns option argument strings into typed values.
//
// Every function is pure and reports failures as errs.ErrInvalidFormat (the text could
// not be read) or errs.ErrOutOfRange (the text was read but the value does not fit the
// target type).
package convert

import (
	"errors"
	"strconv"
	"time"
	"unsafe"

	"github.com/araddon/dateparse"
	"github.com/jibsen/goarg/errs"
)

// Integer is the set of types ToInteger can produce
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Multiplier selects how a magnitude suffix (k, m, g, t, p, e) is interpreted
type Multiplier int

const (
	// NoMultiplier rejects magnitude suffixes
	NoMultiplier Multiplier = iota
	// Decimal multiplies by powers of 1000 (k = 10^3 ... e = 10^18)
	Decimal
	// Binary multiplies by powers of 1024 (k = 2^10 ... e = 2^60)
	Binary
)

// String returns the string representation of a Multiplier
func (m Multiplier) String() string {
	switch m {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	default:
		return "none"
	}
}

type config struct {
	base       int
	multiplier Multiplier
}

// Option configures ToInteger
type Option func(*config)

// WithBase sets the numeric base. 0 detects the base from the prefix: "0x" is 16, "0b" is 2,
// a leading "0" followed by another digit is 8, anything else is 10. For base 16 and base 2
// the "0x" and "0b" prefixes are optional.
func WithBase(base int) Option {
	return func(c *config) {
		c.base = base
	}
}

// WithMultiplier enables a single trailing magnitude suffix
func WithMultiplier(m Multiplier) Option {
	return func(c *config) {
		c.multiplier = m
	}
}

// ToInteger converts s to the integer type T. The default base is 10 without magnitude suffixes.
//
// A leading '-' is accepted for signed and unsigned types alike; for unsigned types the
// magnitude is negated modulo 2^bits, so "-1" converted to uint8 is 255.
func ToInteger[T Integer](s string, opts ...Option) (T, error) {
	cfg := config{base: 10}
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	if cfg.base != 0 && (cfg.base < 2 || cfg.base > 36) {
		return zero, errs.ErrInvalidBase.WithArgs(cfg.base)
	}

	signed := ^zero < 0
	bitSize := int(unsafe.Sizeof(zero)) * 8
	maxUnsigned := uint64(1)<<(bitSize-1)<<1 - 1

	text := s
	negative := false
	if len(text) > 0 && text[0] == '-' {
		negative = true
		text = text[1:]
	}

	text, base := stripBasePrefix(text, cfg.base)

	digits, rest := splitDigits(text, base)

	// leftover text is a format error even when the digits alone are out of range
	var factor uint64 = 1
	if rest != "" {
		if cfg.multiplier == NoMultiplier || len(rest) != 1 {
			return zero, errs.ErrInvalidFormat.WithArgs(s)
		}
		var ok bool
		if factor, ok = suffixFactor(rest[0], cfg.multiplier); !ok {
			return zero, errs.ErrInvalidFormat.WithArgs(s)
		}
	}

	if digits == "" {
		return zero, errs.ErrInvalidFormat.WithArgs(s)
	}

	magnitude, err := strconv.ParseUint(digits, base, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return zero, errs.ErrOutOfRange.WithArgs(s)
		}
		return zero, errs.ErrInvalidFormat.WithArgs(s)
	}

	if magnitude != 0 && magnitude > maxUnsigned/factor {
		return zero, errs.ErrOutOfRange.WithArgs(s)
	}
	magnitude *= factor

	if signed {
		limit := maxUnsigned >> 1
		if negative {
			limit++
		}
		if magnitude > limit {
			return zero, errs.ErrOutOfRange.WithArgs(s)
		}
	}

	if negative {
		magnitude = -magnitude & maxUnsigned
	}

	return T(magnitude), nil
}

// ToBool converts s to a bool. "yes", "true", "on" and "1" are true, "no", "false", "off"
// and "0" are false, compared without regard to ASCII case. Anything else is invalid.
func ToBool(s string) (bool, error) {
	for _, v := range []string{"yes", "true", "on", "1"} {
		if equalFoldASCII(s, v) {
			return true, nil
		}
	}

	for _, v := range []string{"no", "false", "off", "0"} {
		if equalFoldASCII(s, v) {
			return false, nil
		}
	}

	return false, errs.ErrInvalidFormat.WithArgs(s)
}

// ToTime converts s to a time.Time, accepting the layouts understood by dateparse
// (RFC 3339, "2006-01-02", "02 Jan 2006", unix seconds and many more). Times without a
// zone are interpreted as UTC.
func ToTime(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, errs.ErrInvalidFormat.WithArgs(s).Wrap(err)
	}

	return t, nil
}

func stripBasePrefix(s string, base int) (string, int) {
	switch base {
	case 16:
		if hasPrefixFold(s, 'x') {
			return s[2:], 16
		}
	case 2:
		if hasPrefixFold(s, 'b') {
			return s[2:], 2
		}
	case 0:
		if len(s) > 1 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				return s[2:], 16
			case 'b', 'B':
				return s[2:], 2
			case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
				return s[1:], 8
			}
		}
		return s, 10
	}

	return s, base
}

// hasPrefixFold reports whether s starts with '0' followed by c in either case
func hasPrefixFold(s string, c byte) bool {
	return len(s) > 1 && s[0] == '0' && (s[1]|0x20) == c
}

// splitDigits splits s after the longest prefix of digits valid in base
func splitDigits(s string, base int) (string, string) {
	i := 0
	for i < len(s) && digitValue(s[i]) < base {
		i++
	}

	return s[:i], s[i:]
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}

	return 36
}

func suffixFactor(c byte, m Multiplier) (uint64, bool) {
	var exp uint
	switch c | 0x20 {
	case 'k':
		exp = 1
	case 'm':
		exp = 2
	case 'g':
		exp = 3
	case 't':
		exp = 4
	case 'p':
		exp = 5
	case 'e':
		exp = 6
	default:
		return 0, false
	}

	switch m {
	case Decimal:
		factor := uint64(1)
		for ; exp > 0; exp-- {
			factor *= 1000
		}
		return factor, true
	case Binary:
		return uint64(1) << (10 * exp), true
	}

	return 0, false
}

func equalFoldASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}

	for i := 0; i < len(s); i++ {
		a, b := s[i], t[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}

	return true
}
