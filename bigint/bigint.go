// Package bigint implements an arbitrary-precision signed integer: a value
// type representing integers of unbounded magnitude together with the
// arithmetic on them (addition, subtraction, FFT-accelerated multiplication,
// Newton-iteration division and square root, integer roots, binary GCD, and
// modular exponentiation).
//
// An Int is a pure value object. Once returned from a constructor or
// operator it is never mutated by this package, except by Scan, which
// overwrites its receiver as fmt.Scanner requires; assignment replaces the
// value wholesale. Every other method takes its receiver and arguments by
// read-only reference and returns a freshly built Int.
package bigint

import "fmt"

// Width is the number of decimal digits packed into each internal digit.
const Width = 8

// Base is 10^Width, the radix of the internal digit vector.
const Base int64 = 100_000_000

// Int is an arbitrary-precision signed integer: a pair (sign, mag) where
// mag is a little-endian base-Base magnitude (mag[i] in [0, Base)) and sign
// is true for non-negative values, false for negative. Canonical zero is
// mag = [0], sign = true; mag never carries a trailing zero digit unless it
// is that single zero.
type Int struct {
	sign bool
	mag  []int64
}

// trim drops trailing zero digits from mag, leaving a single zero digit if
// the magnitude is entirely zero. It mutates and returns its argument.
func trim(mag []int64) []int64 {
	n := len(mag)
	for n > 1 && mag[n-1] == 0 {
		n--
	}
	return mag[:n]
}

// newInt builds a canonical Int from a sign and a (possibly non-canonical)
// magnitude, trimming trailing zeros and forcing zero to be positive.
func newInt(sign bool, mag []int64) *Int {
	mag = trim(mag)
	if len(mag) == 1 && mag[0] == 0 {
		sign = true
	}
	return &Int{sign: sign, mag: mag}
}

// Zero returns the canonical zero value.
func Zero() *Int { return &Int{sign: true, mag: []int64{0}} }

// One returns the value 1.
func One() *Int { return &Int{sign: true, mag: []int64{1}} }

// Copy returns a value equal to x, sharing no storage with it.
func (x *Int) Copy() *Int {
	mag := make([]int64, len(x.mag))
	copy(mag, x.mag)
	return &Int{sign: x.sign, mag: mag}
}

// digitsFromUint64 returns the little-endian base-Base digit vector for v.
func digitsFromUint64(v uint64) []int64 {
	if v == 0 {
		return []int64{0}
	}
	var mag []int64
	for v > 0 {
		mag = append(mag, int64(v%uint64(Base)))
		v /= uint64(Base)
	}
	return mag
}

// FromInt64 converts a machine int64 to an Int.
func FromInt64(v int64) *Int {
	if v == 0 {
		return Zero()
	}
	if v < 0 {
		// For math.MinInt64, -v wraps back to math.MinInt64, and its
		// uint64 conversion is 2^63, the correct magnitude.
		return newInt(false, digitsFromUint64(uint64(-(v))))
	}
	return newInt(true, digitsFromUint64(uint64(v)))
}

// ToInt64 reports whether x fits in an int64 and, if so, returns its value.
func (x *Int) ToInt64() (int64, bool) {
	var acc uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		d := uint64(x.mag[i])
		if acc > (^uint64(0)-d)/uint64(Base) {
			return 0, false
		}
		acc = acc*uint64(Base) + d
	}
	const maxInt64 = 1<<63 - 1
	if x.sign {
		if acc > maxInt64 {
			return 0, false
		}
		return int64(acc), true
	}
	if acc > maxInt64+1 {
		return 0, false
	}
	if acc == maxInt64+1 {
		return -1 << 63, true
	}
	return -int64(acc), true
}

// cmpMag compares two magnitudes, length-first then digit-by-digit from the
// most significant digit down. Returns -1, 0, or +1.
func cmpMag(a, b []int64) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp returns -1 if x < y, 0 if x == y, and +1 if x > y. Positive values
// compare greater than negative ones; same-sign values compare by
// magnitude, with the comparison negated when both are negative.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign {
			return 1
		}
		return -1
	}
	c := cmpMag(x.mag, y.mag)
	if !x.sign {
		c = -c
	}
	return c
}

// Equal reports whether x and y represent the same value.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool { return x.Cmp(y) < 0 }

// LessOrEqual reports whether x <= y.
func (x *Int) LessOrEqual(y *Int) bool { return x.Cmp(y) <= 0 }

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool { return x.Cmp(y) > 0 }

// GreaterOrEqual reports whether x >= y.
func (x *Int) GreaterOrEqual(y *Int) bool { return x.Cmp(y) >= 0 }

// IsZero reports whether x is the canonical zero.
func (x *Int) IsZero() bool { return len(x.mag) == 1 && x.mag[0] == 0 }

// IsPositive reports whether x > 0.
func (x *Int) IsPositive() bool { return x.sign && !x.IsZero() }

// IsNegative reports whether x < 0.
func (x *Int) IsNegative() bool { return !x.sign }

// Sign returns -1, 0, or +1 according to the sign of x.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.sign {
		return 1
	}
	return -1
}

// Mod2 returns 0 or 1: the value of x modulo 2, ignoring sign (i.e. the
// parity of |x|).
func (x *Int) Mod2() int { return int(x.mag[0] & 1) }

// Neg returns -x.
func (x *Int) Neg() *Int {
	if x.IsZero() {
		return Zero()
	}
	mag := make([]int64, len(x.mag))
	copy(mag, x.mag)
	return newInt(!x.sign, mag)
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	mag := make([]int64, len(x.mag))
	copy(mag, x.mag)
	return newInt(true, mag)
}

// digits returns the number of base-Base digits in x's magnitude.
func (x *Int) digits() int { return len(x.mag) }

// moveL returns x * Base^k (shift the magnitude left by k digits).
func moveL(mag []int64, k int) []int64 {
	if k <= 0 || (len(mag) == 1 && mag[0] == 0) {
		out := make([]int64, len(mag))
		copy(out, mag)
		return out
	}
	out := make([]int64, len(mag)+k)
	copy(out[k:], mag)
	return out
}

// moveR returns ⌊|x| / Base^k⌋ (drop the lowest k digits).
func moveR(mag []int64, k int) []int64 {
	if k <= 0 {
		out := make([]int64, len(mag))
		copy(out, mag)
		return out
	}
	if k >= len(mag) {
		return []int64{0}
	}
	out := make([]int64, len(mag)-k)
	copy(out, mag[k:])
	return out
}

// String renders x formatted as defined by Format.
func (x *Int) String() string { return x.Format() }

// GoString supports %#v for debugging.
func (x *Int) GoString() string {
	return fmt.Sprintf("bigint.Int(%s)", x.String())
}
