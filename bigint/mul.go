package bigint

import "github.com/agbruneau/bigint/internal/config"

// mulSchoolbook multiplies two magnitudes by O(n·m) long multiplication,
// carrying after every digit product so no int64 accumulator exceeds
// Base² at any operand size. Mul and Square use it below FFTLimit, with
// DisableFFT, and when the FFT transform would exceed FFTMaxK.
func mulSchoolbook(a, b []int64) []int64 {
	if (len(a) == 1 && a[0] == 0) || (len(b) == 1 && b[0] == 0) {
		return []int64{0}
	}
	raw := make([]int64, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry int64
		for j, bj := range b {
			v := raw[i+j] + ai*bj + carry
			raw[i+j] = v % Base
			carry = v / Base
		}
		raw[i+len(b)] = carry
	}
	var carry int64
	for i := range raw {
		v := raw[i] + carry
		raw[i] = v % Base
		carry = v / Base
	}
	for carry != 0 {
		raw = append(raw, carry%Base)
		carry /= Base
	}
	return trim(raw)
}

// Mul returns x*y. Operands whose digit-length product is below the
// configured FFTLimit are multiplied by the schoolbook kernel; larger
// operands dispatch to the FFT engine. If the ideal FFT transform would
// exceed the configured FFTMaxK, Mul falls back to the schoolbook kernel
// rather than failing — ordinary multiplication is a total operation.
// Callers who want FFTLimitExceededError reported directly should call
// MulFFT.
func (x *Int) Mul(y *Int) *Int { return x.MulT(y, nil) }

// MulT is Mul with an explicit Tunables override (nil selects the package
// default, resolved once from the environment at init).
func (x *Int) MulT(y *Int, t *config.Tunables) *Int {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}
	tt := resolveTunables(t)
	sign := x.sign == y.sign
	if !tt.DisableFFT && x.digits()*y.digits() >= tt.FFTLimit {
		if mag, err := fftMulMag(x.mag, y.mag, tt.FFTMaxK); err == nil {
			return newInt(sign, mag)
		}
	}
	return newInt(sign, mulSchoolbook(x.mag, y.mag))
}

// Square returns x*x, dispatched identically to Mul between the
// schoolbook and FFT kernels.
func (x *Int) Square() *Int { return x.SquareT(nil) }

// SquareT is Square with an explicit Tunables override.
func (x *Int) SquareT(t *config.Tunables) *Int {
	if x.IsZero() {
		return Zero()
	}
	tt := resolveTunables(t)
	if !tt.DisableFFT && x.digits()*x.digits() >= tt.FFTLimit {
		if mag, err := fftSquareMag(x.mag, tt.FFTMaxK); err == nil {
			return newInt(true, mag)
		}
	}
	return newInt(true, mulSchoolbook(x.mag, x.mag))
}

// MulScalar returns x*k for a 32-bit k, via a single carry-propagating
// pass over x's digits.
func (x *Int) MulScalar(k int32) *Int {
	if k == 0 || x.IsZero() {
		return Zero()
	}
	neg := k < 0
	kk := int64(k)
	if neg {
		kk = -kk
	}
	out := make([]int64, len(x.mag)+2)
	var carry int64
	i := 0
	for ; i < len(x.mag); i++ {
		v := x.mag[i]*kk + carry
		out[i] = v % Base
		carry = v / Base
	}
	for carry != 0 {
		out[i] = carry % Base
		carry /= Base
		i++
	}
	out = trim(out[:i])
	sign := x.sign
	if neg {
		sign = !sign
	}
	return newInt(sign, out)
}

// half returns ⌊|x|/2⌋ with x's sign preserved (used internally by the
// Heron square-root iteration and Newton refinement). It scans from the
// most significant digit to the least, carrying the odd remainder into
// the next lower digit as half of Base.
func (x *Int) half() *Int {
	mag := make([]int64, len(x.mag))
	var carry int64
	for i := len(x.mag) - 1; i >= 0; i-- {
		v := carry*Base + x.mag[i]
		mag[i] = v / 2
		carry = v % 2
	}
	return newInt(x.sign, mag)
}

// Mul is the free-function form of x.Mul(y).
func Mul(x, y *Int) *Int { return x.Mul(y) }

// Square is the free-function form of x.Square().
func Square(x *Int) *Int { return x.Square() }
