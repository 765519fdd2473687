package bigint

import "math"

// halfWidth is the width, in decimal digits, of the half-digits the FFT
// multiplier packs two-per-slot into a single complex DFT (spec.md §4.5):
// each base-Base digit splits into two base-halfBase digits.
const halfWidth = Width / 2

// halfBase is 10^halfWidth.
const halfBase int64 = 10000

// splitHalfDigits splits a base-Base magnitude into its little-endian
// base-halfBase half-digits: each digit contributes two half-digits (lo,
// hi), doubling the length.
func splitHalfDigits(mag []int64) []int64 {
	out := make([]int64, len(mag)*2)
	for i, d := range mag {
		out[2*i] = d % halfBase
		out[2*i+1] = d / halfBase
	}
	return out
}

// mergeHalfDigits recombines a little-endian base-halfBase digit sequence
// (already carry-normalized, every element in [0, halfBase)) into a
// base-Base magnitude by pairing consecutive half-digits.
func mergeHalfDigits(half []int64) []int64 {
	if len(half)%2 != 0 {
		half = append(half, 0)
	}
	out := make([]int64, len(half)/2)
	for i := range out {
		out[i] = half[2*i] + half[2*i+1]*halfBase
	}
	return trim(out)
}

// fftConvolve computes the integer convolution of two half-digit sequences
// using the single-DFT packing trick from spec.md §4.5: pack a as the real
// part and b as the imaginary part of one complex signal z, transform,
// square pointwise (which computes the circular convolution z★z via the
// convolution theorem), invert, and read the cross term 2·(a★b) off the
// imaginary part. maxK bounds the transform size; exceeding it surfaces as
// FFTLimitExceededError rather than a silently wrong answer.
func fftConvolve(a, b []int64, maxK int) ([]int64, error) {
	n, m := len(a), len(b)
	l := nextPow2(2 * (n + m + 1))
	k := log2(l)
	if k > maxK {
		return nil, &FFTLimitExceededError{RequestedK: k, MaxK: maxK}
	}

	z := make([]complex128, l)
	for i, v := range a {
		z[i] = complex(float64(v), 0)
	}
	for i, v := range b {
		z[i] += complex(0, float64(v))
	}

	if err := transform(z, false, maxK); err != nil {
		return nil, err
	}
	for i := range z {
		z[i] = z[i] * z[i]
	}
	if err := transform(z, true, maxK); err != nil {
		return nil, err
	}

	convLen := n + m - 1
	if convLen < 1 {
		convLen = 1
	}
	scale := 1.0 / (2 * float64(l))
	conv := make([]int64, convLen)
	for i := 0; i < convLen; i++ {
		conv[i] = int64(math.Round(imag(z[i]) * scale))
	}
	return conv, nil
}

// carryNormalizeHalf carry-propagates a raw (possibly out-of-range or
// negative-free but multi-digit) convolution result through base halfBase,
// producing a canonical half-digit magnitude.
func carryNormalizeHalf(conv []int64) []int64 {
	out := make([]int64, len(conv))
	var carry int64
	for i, v := range conv {
		v += carry
		out[i] = v % halfBase
		carry = v / halfBase
	}
	for carry != 0 {
		out = append(out, carry%halfBase)
		carry /= halfBase
	}
	return out
}

// fftMulMag multiplies two base-Base magnitudes via the FFT engine,
// returning the product magnitude. maxK bounds the transform size;
// exceeding it is reported as FFTLimitExceededError.
func fftMulMag(aMag, bMag []int64, maxK int) ([]int64, error) {
	aHalf := splitHalfDigits(aMag)
	bHalf := splitHalfDigits(bMag)
	conv, err := fftConvolve(aHalf, bHalf, maxK)
	if err != nil {
		return nil, err
	}
	return mergeHalfDigits(carryNormalizeHalf(conv)), nil
}

// fftSquareMag squares a base-Base magnitude via the FFT engine, by
// convolving the operand with itself.
func fftSquareMag(aMag []int64, maxK int) ([]int64, error) {
	return fftMulMag(aMag, aMag, maxK)
}

// MulFFT multiplies x and y using the FFT engine unconditionally (bypassing
// the schoolbook/FFT size dispatch in Mul), returning FFTLimitExceededError
// if the required transform size exceeds maxK. This is the explicit,
// error-reporting entry point for callers who want direct control over (or
// visibility into) the FFT engine; Mul itself recovers from this error by
// falling back to schoolbook multiplication, since ordinary multiplication
// has no reason to fail just because the fast path's transform would be
// too large.
func (x *Int) MulFFT(y *Int, maxK int) (*Int, error) {
	if x.IsZero() || y.IsZero() {
		return Zero(), nil
	}
	mag, err := fftMulMag(x.mag, y.mag, maxK)
	if err != nil {
		return nil, err
	}
	return newInt(x.sign == y.sign, mag), nil
}

// SquareFFT squares x using the FFT engine unconditionally. See MulFFT.
func (x *Int) SquareFFT(maxK int) (*Int, error) {
	if x.IsZero() {
		return Zero(), nil
	}
	mag, err := fftSquareMag(x.mag, maxK)
	if err != nil {
		return nil, err
	}
	return newInt(true, mag), nil
}
