package bigint

// addMag returns a+b, both unsigned base-Base magnitudes.
func addMag(a, b []int64) []int64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]int64, len(a)+1)
	var carry int64
	for i := range a {
		s := a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		if s >= Base {
			s -= Base
			carry = 1
		} else {
			carry = 0
		}
		out[i] = s
	}
	out[len(a)] = carry
	return out
}

// subMag returns a-b assuming a >= b (as magnitudes).
func subMag(a, b []int64) []int64 {
	out := make([]int64, len(a))
	var borrow int64
	for i := range a {
		s := a[i] - borrow
		if i < len(b) {
			s -= b[i]
		}
		if s < 0 {
			s += Base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = s
	}
	return out
}

// Add returns x+y. If the operand signs differ it dispatches to Sub on the
// negation of y; otherwise it adds magnitudes digit-wise with carry,
// preserving the common sign.
func (x *Int) Add(y *Int) *Int {
	if x.sign != y.sign {
		return x.Sub(y.Neg())
	}
	return newInt(x.sign, addMag(x.mag, y.mag))
}

// Sub returns x-y. If the operand signs differ it dispatches to Add on the
// negation of y; otherwise it subtracts the smaller magnitude from the
// larger, with the result sign taken from the larger operand (flipped if
// |y| > |x|). Subtracting equal magnitudes yields canonical zero.
func (x *Int) Sub(y *Int) *Int {
	if x.sign != y.sign {
		return x.Add(y.Neg())
	}
	c := cmpMag(x.mag, y.mag)
	if c == 0 {
		return Zero()
	}
	if c > 0 {
		return newInt(x.sign, subMag(x.mag, y.mag))
	}
	return newInt(!x.sign, subMag(y.mag, x.mag))
}

// addMagScalar returns mag+k for 0 <= k < Base, touching only as many low
// digits as the carry propagates through.
func addMagScalar(mag []int64, k int64) []int64 {
	out := make([]int64, len(mag))
	copy(out, mag)
	carry := k
	for i := 0; i < len(out) && carry != 0; i++ {
		s := out[i] + carry
		out[i] = s % Base
		carry = s / Base
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

// subMagScalar returns mag-k for 0 <= k < Base, assuming mag (as a value)
// is >= k. Like addMagScalar, it stops as soon as the borrow is absorbed.
func subMagScalar(mag []int64, k int64) []int64 {
	out := make([]int64, len(mag))
	copy(out, mag)
	borrow := k
	for i := 0; i < len(out) && borrow != 0; i++ {
		s := out[i] - borrow
		if s < 0 {
			s += Base
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = s
	}
	return trim(out)
}

// AddScalar returns x+k for a 32-bit k. When x and k share a sign and
// |k| < Base it short-circuits through addMagScalar without building a
// full Int for k; anything else falls back to the general Add.
func (x *Int) AddScalar(k int32) *Int {
	if k == 0 {
		return x.Copy()
	}
	if x.sign && k >= 0 && int64(k) < Base {
		return newInt(true, addMagScalar(x.mag, int64(k)))
	}
	if !x.sign && k < 0 && -int64(k) < Base {
		return newInt(false, addMagScalar(x.mag, -int64(k)))
	}
	return x.Add(FromInt64(int64(k)))
}

// SubScalar returns x-k for a 32-bit k.
func (x *Int) SubScalar(k int32) *Int {
	if k == 0 {
		return x.Copy()
	}
	if x.sign && k >= 0 && int64(k) < Base && cmpMag(x.mag, []int64{int64(k)}) >= 0 {
		return newInt(true, subMagScalar(x.mag, int64(k)))
	}
	return x.Sub(FromInt64(int64(k)))
}

// Inc returns x+1.
func (x *Int) Inc() *Int { return x.AddScalar(1) }

// Dec returns x-1.
func (x *Int) Dec() *Int { return x.SubScalar(1) }

// Add is the free-function form of x.Add(y).
func Add(x, y *Int) *Int { return x.Add(y) }

// Sub is the free-function form of x.Sub(y).
func Sub(x, y *Int) *Int { return x.Sub(y) }
