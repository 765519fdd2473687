package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders x as a decimal string: an optional leading "-" followed
// by the unpadded most significant base-Base digit and then each
// remaining digit zero-padded to Width characters.
func (x *Int) Format() string {
	var b strings.Builder
	if x.IsNegative() {
		b.WriteByte('-')
	}
	n := len(x.mag)
	b.WriteString(strconv.FormatInt(x.mag[n-1], 10))
	for i := n - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%0*d", Width, x.mag[i])
	}
	return b.String()
}

// Parse parses a decimal string into an Int. An optional leading "+" or
// "-" may precede one or more decimal digits; leading zeros are permitted
// and stripped. The empty string and a lone "-" both parse as zero.
func Parse(s string) (*Int, error) {
	sign := true
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign = s[0] != '-'
		i = 1
	}
	digits := s[i:]
	if digits == "" {
		if s == "" || s[0] == '-' {
			return Zero(), nil
		}
		return nil, fmt.Errorf("bigint: no digits in %q", s)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("bigint: invalid digit %q in %q", c, s)
		}
	}
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}

	n := len(digits)
	numChunks := (n + Width - 1) / Width
	mag := make([]int64, numChunks)
	pos := n
	for i := 0; i < numChunks; i++ {
		start := pos - Width
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseInt(digits[start:pos], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bigint: parsing %q: %w", s, err)
		}
		mag[i] = v
		pos = start
	}
	return newInt(sign, mag), nil
}

// MustParse parses s as Parse does, panicking if s is not a valid decimal
// integer. It is meant for tests and literal constants, not for parsing
// untrusted input.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Scan implements fmt.Scanner, so Int satisfies fmt.Sscan, fmt.Fscan, and
// friends directly.
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, func(r rune) bool {
		return r == '+' || r == '-' || (r >= '0' && r <= '9')
	})
	if err != nil {
		return err
	}
	parsed, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*x = *parsed
	return nil
}
