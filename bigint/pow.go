package bigint

// Pow returns x^e for e >= 0, via binary exponentiation (square-and-
// multiply on the binary digits of e from least to most significant),
// per spec.md §4.9. Pow(0) is 1, matching the usual convention that 0^0
// is 1.
func (x *Int) Pow(e uint64) *Int {
	if e == 0 {
		return One()
	}
	result := One()
	base := x.Copy()
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Square()
		}
	}
	return result
}

// PowMod returns x^e mod m for e >= 0 and nonzero m, reducing after every
// squaring and multiplication so intermediate magnitudes stay bounded by
// |m|² rather than growing with e. Returns ZeroDivisionError if m is zero.
func (x *Int) PowMod(e uint64, m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, &ZeroDivisionError{Op: "PowMod"}
	}
	if e == 0 {
		one, err := One().Mod(m)
		return one, err
	}
	base, err := x.Mod(m)
	if err != nil {
		return nil, err
	}
	result := One()
	for e > 0 {
		if e&1 == 1 {
			result, err = result.Mul(base).Mod(m)
			if err != nil {
				return nil, err
			}
		}
		e >>= 1
		if e > 0 {
			base, err = base.Square().Mod(m)
			if err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Pow is the free-function form of x.Pow(e).
func Pow(x *Int, e uint64) *Int { return x.Pow(e) }

// PowMod is the free-function form of x.PowMod(e, m).
func PowMod(x *Int, e uint64, m *Int) (*Int, error) { return x.PowMod(e, m) }
