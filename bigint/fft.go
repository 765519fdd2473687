package bigint

import "math"

// RBase bounds how many twiddle-factor steps are taken by incremental
// complex multiplication before the running twiddle is re-synthesized
// directly from its angle. Accumulated rounding error in repeated complex
// multiplication grows with the number of multiplications performed
// without correction; re-synthesizing every RBase+1 steps is a numerical
// accuracy contract, not an incidental optimization, and must not be
// dropped when retuning the engine.
const RBase = 1<<10 - 1

// maxSpecializedK is the largest transform exponent the engine is built
// for (2^21 slots, the same value as the default FFTMaxK). transform does
// not read it: the limit transform enforces is the maxK its caller passes.
const maxSpecializedK = 21

// transform computes the forward (invert=false) or inverse (invert=true)
// discrete Fourier transform of a in place. len(a) must be a power of two;
// transform itself never rescales — the inverse transform's 1/N factor is
// left for the caller to fold into its own rounding step, per the FFT
// multiplication contract.
//
// maxK bounds the largest transform this call will attempt (2^maxK); a
// request for a larger size fails with FFTLimitExceededError rather than
// silently producing a wrong answer.
func transform(a []complex128, invert bool, maxK int) error {
	n := len(a)
	if n == 0 {
		return nil
	}
	if n&(n-1) != 0 {
		panic("bigint: FFT transform size must be a power of two")
	}
	k := 0
	for (1 << k) < n {
		k++
	}
	if k > maxK {
		return &FFTLimitExceededError{RequestedK: k, MaxK: maxK}
	}
	switch n {
	case 1:
		return nil
	case 2:
		fftBase2(a, invert)
	case 4:
		fftBase4(a, invert)
	default:
		fftGeneric(a, invert)
	}
	return nil
}

// fftBase2 is the specialized two-point DFT: X0 = a0+a1, X1 = a0-a1. The
// size-2 root of unity is real (±1), so the forward and inverse transforms
// coincide.
func fftBase2(a []complex128, invert bool) {
	_ = invert
	a0, a1 := a[0], a[1]
	a[0] = a0 + a1
	a[1] = a0 - a1
}

// fftBase4 is the specialized four-point DFT, computed directly from the
// DFT definition rather than via the generic butterfly path: cheap enough
// at this size that there is nothing to gain from the iterative machinery.
func fftBase4(a []complex128, invert bool) {
	sign := -1.0
	if invert {
		sign = 1.0
	}
	var out [4]complex128
	for kk := 0; kk < 4; kk++ {
		var sum complex128
		for j := 0; j < 4; j++ {
			theta := sign * 2 * math.Pi * float64(j*kk) / 4
			sum += a[j] * complex(math.Cos(theta), math.Sin(theta))
		}
		out[kk] = sum
	}
	copy(a, out[:])
}

// bitReversePermute reorders a into bit-reversed index order, the standard
// precondition for the in-place iterative Cooley-Tukey butterfly below.
func bitReversePermute(a []complex128) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// fftGeneric runs the iterative radix-2 Cooley-Tukey DFT with incremental
// twiddle-factor rotation, re-synthesizing the twiddle from its exact angle
// every RBase+1 butterfly steps to bound accumulated phase error. This is
// the size-generic routine the specification's per-size template
// specialization collapses to in a language without that feature; the
// dispatcher above picks it for every size above the n=2 and n=4 base
// cases.
func fftGeneric(a []complex128, invert bool) {
	n := len(a)
	bitReversePermute(a)
	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wlen := complex(math.Cos(ang), math.Sin(ang))
		half := length / 2
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			steps := 0
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v

				steps++
				if steps == RBase+1 {
					theta := ang * float64(j+1)
					w = complex(math.Cos(theta), math.Sin(theta))
					steps = 0
				} else {
					w *= wlen
				}
			}
		}
	}
}

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// log2 returns k such that 1<<k == n, for n a power of two.
func log2(n int) int {
	k := 0
	for (1 << k) < n {
		k++
	}
	return k
}
