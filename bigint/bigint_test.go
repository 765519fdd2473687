package bigint

import "testing"

func TestFromInt64ToInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, 1 << 62, -(1 << 62), -1 << 63, 1<<63 - 1}
	for _, v := range cases {
		x := FromInt64(v)
		got, ok := x.ToInt64()
		if !ok {
			t.Errorf("ToInt64(%d) reported overflow", v)
			continue
		}
		if got != v {
			t.Errorf("FromInt64(%d).ToInt64() = %d, want %d", v, got, v)
		}
	}
}

func TestToInt64Overflow(t *testing.T) {
	x := MustParse("100000000000000000000")
	if _, ok := x.ToInt64(); ok {
		t.Error("ToInt64 should report overflow for a value far beyond int64 range")
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "1", -1},
		{"-5", "-3", -1},
		{"-3", "-5", 1},
		{"123456789012345678901234567890", "123456789012345678901234567889", 1},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSignPredicates(t *testing.T) {
	if !Zero().IsZero() {
		t.Error("Zero() is not IsZero()")
	}
	if Zero().IsPositive() || Zero().IsNegative() {
		t.Error("Zero() must be neither positive nor negative")
	}
	if !One().IsPositive() {
		t.Error("One() should be positive")
	}
	if !MustParse("-1").IsNegative() {
		t.Error("-1 should be negative")
	}
	if MustParse("-0").Sign() != 0 {
		t.Error("-0 should canonicalize to sign 0")
	}
}

func TestNegAbs(t *testing.T) {
	x := MustParse("-12345")
	if got := x.Neg().String(); got != "12345" {
		t.Errorf("Neg() = %s, want 12345", got)
	}
	if got := x.Abs().String(); got != "12345" {
		t.Errorf("Abs() = %s, want 12345", got)
	}
	if !Zero().Neg().IsZero() {
		t.Error("Neg() of zero should still be zero")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	x := MustParse("42")
	y := x.Copy()
	if !x.Equal(y) {
		t.Fatal("Copy() should be equal to the original")
	}
	y.mag[0] = 7
	if x.mag[0] == 7 {
		t.Error("mutating the copy's magnitude affected the original")
	}
}
