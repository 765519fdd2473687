package bigint

// double returns x+x, doubling in a single Add rather than a scalar
// multiply so it has no width restriction on the shift count.
func double(x *Int) *Int { return x.Add(x) }

// GCD returns the greatest common divisor of |x| and |y| using the binary
// (Stein's) algorithm: repeatedly strip common factors of two, then
// alternate stripping factors of two from the larger operand and
// subtracting the smaller from it, per spec.md §4.9. GCD(0, y) is |y| and
// GCD(x, 0) is |x|; GCD(0, 0) is 0.
func (x *Int) GCD(y *Int) *Int {
	a, b := x.Abs(), y.Abs()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	shift := 0
	for a.Mod2() == 0 && b.Mod2() == 0 {
		a, b = a.half(), b.half()
		shift++
	}
	for a.Mod2() == 0 {
		a = a.half()
	}
	for !b.IsZero() {
		for b.Mod2() == 0 {
			b = b.half()
		}
		if a.Greater(b) {
			a, b = b, a
		}
		b = b.Sub(a)
	}
	for i := 0; i < shift; i++ {
		a = double(a)
	}
	return a
}

// LCM returns the least common multiple of x and y: 0 if either is zero,
// otherwise |x*y| / GCD(x, y).
func (x *Int) LCM(y *Int) (*Int, error) {
	if x.IsZero() || y.IsZero() {
		return Zero(), nil
	}
	g := x.GCD(y)
	product := x.Abs().Mul(y.Abs())
	return product.Div(g)
}

// GCD is the free-function form of x.GCD(y).
func GCD(x, y *Int) *Int { return x.GCD(y) }

// LCM is the free-function form of x.LCM(y).
func LCM(x, y *Int) (*Int, error) { return x.LCM(y) }
