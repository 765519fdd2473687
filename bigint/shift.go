package bigint

// two returns the constant 2 as an Int.
func two() *Int { return FromInt64(2) }

// Lsh returns x * 2^k.
func (x *Int) Lsh(k uint) *Int {
	if k == 0 {
		return x.Copy()
	}
	return x.Mul(two().Pow(uint64(k)))
}

// Rsh returns x / 2^k, truncated toward zero. Negative operands truncate
// the same way division does — (-3).Rsh(1) is -1, not -2 — matching this
// package's division convention rather than a machine arithmetic shift,
// per spec.md §9.
func (x *Int) Rsh(k uint) *Int {
	if k == 0 {
		return x.Copy()
	}
	q, _ := x.Div(two().Pow(uint64(k)))
	return q
}

// Lsh is the free-function form of x.Lsh(k).
func Lsh(x *Int, k uint) *Int { return x.Lsh(k) }

// Rsh is the free-function form of x.Rsh(k).
func Rsh(x *Int, k uint) *Int { return x.Rsh(k) }
