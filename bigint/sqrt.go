package bigint

import "github.com/agbruneau/bigint/internal/config"

// maxInvSqrtIters bounds the number of fixed-precision Newton updates
// newtonInvSqrtSeed performs. Each update roughly doubles the number of
// correct digits, so this comfortably covers any operand size the engine
// is configured to accept; the correction loop in Sqrt is what actually
// guarantees an exact result regardless of how far short this falls.
const maxInvSqrtIters = 64

// heronSqrt computes ⌊√x⌋ for a non-negative x by Heron's method (the
// integer form of Newton's method applied directly to y ← (y + x/y)/2),
// seeded from a power-of-Base estimate and refined by exact division
// until an iterate no longer decreases, per spec.md §4.7's schoolbook
// fallback for small operands.
func heronSqrt(x *Int) *Int {
	if x.IsZero() {
		return Zero()
	}
	half := (x.digits() + 1) / 2
	y := basePow(half)
	for {
		q, _ := x.Div(y)
		next, _, _ := y.Add(q).DivScalar(2)
		if next.GreaterOrEqual(y) {
			break
		}
		y = next
	}
	return y
}

// newtonInvSqrtSeed approximates Y ≈ Base^n/√x by fixed-precision Newton
// iteration on the inverse square root, y ← y·(3 − x·y²)/2 (real-valued
// form), seeded from the power-of-Base estimate Base^(n−⌈|x|/2⌉) — exact
// by construction, since no division is needed to divide two powers of
// Base. Large operands dispatch here instead of to heronSqrt's per-
// iteration division, per spec.md §4.7.
func newtonInvSqrtSeed(x *Int, n int) *Int {
	half := (x.digits() + 1) / 2
	y := basePow(n - half)
	threeB2n := basePow(2 * n).MulScalar(3)
	for i := 0; i < maxInvSqrtIters; i++ {
		t := x.Mul(y).Mul(y)
		diff := threeB2n.Sub(t)
		if diff.IsNegative() {
			break
		}
		prod := moveRInt(y.Mul(diff), 2*n)
		next, _, _ := prod.DivScalar(2)
		if next.Equal(y) {
			break
		}
		y = next
	}
	return y
}

// Sqrt returns ⌊√x⌋, or NegativeRadicandError if x is negative.
func (x *Int) Sqrt() (*Int, error) { return x.SqrtT(nil) }

// SqrtT is Sqrt with an explicit Tunables override.
func (x *Int) SqrtT(t *config.Tunables) (*Int, error) {
	if x.IsNegative() {
		return nil, &NegativeRadicandError{Op: "Sqrt"}
	}
	if x.IsZero() {
		return Zero(), nil
	}
	tt := resolveTunables(t)

	var s *Int
	if x.digits() <= tt.NewtonSqrtLimit {
		s = heronSqrt(x)
	} else {
		n := (x.digits()+1)/2 + tt.NewtonSqrtMinLevel/4 + 4
		y := newtonInvSqrtSeed(x, n)
		s = moveRInt(x.Mul(y), n)
	}

	// Correction loop: Newton's approximation can land one unit off in
	// either direction, so nudge s until s² <= x < (s+1)².
	for {
		if s.Square().Greater(x) {
			s = s.Dec()
			continue
		}
		next := s.Inc()
		if next.Square().LessOrEqual(x) {
			s = next
			continue
		}
		return s, nil
	}
}

// Sqrt is the free-function form of x.Sqrt().
func Sqrt(x *Int) (*Int, error) { return x.Sqrt() }
