package bigint

import "testing"

func TestBitwiseOpsAgainstNativeInt64(t *testing.T) {
	vals := []int64{0, 1, -1, 5, -5, 12345, -12345, 1 << 20, -(1 << 20)}
	for _, a := range vals {
		for _, b := range vals {
			x, y := FromInt64(a), FromInt64(b)

			if got, want := x.And(y), a&b; got.mustInt64(t) != want {
				t.Errorf("%d & %d = %d, want %d", a, b, got.mustInt64(t), want)
			}
			if got, want := x.Or(y), a|b; got.mustInt64(t) != want {
				t.Errorf("%d | %d = %d, want %d", a, b, got.mustInt64(t), want)
			}
			if got, want := x.Xor(y), a^b; got.mustInt64(t) != want {
				t.Errorf("%d ^ %d = %d, want %d", a, b, got.mustInt64(t), want)
			}
		}
		if got, want := FromInt64(a).Not(), ^a; got.mustInt64(t) != want {
			t.Errorf("^%d = %d, want %d", a, got.mustInt64(t), want)
		}
	}
}

// mustInt64 is a test helper converting an Int back to int64, failing the
// test rather than silently truncating if it doesn't fit.
func (x *Int) mustInt64(t *testing.T) int64 {
	t.Helper()
	v, ok := x.ToInt64()
	if !ok {
		t.Fatalf("%s does not fit in an int64", x.String())
	}
	return v
}
