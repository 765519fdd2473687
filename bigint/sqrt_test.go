package bigint

import (
	"errors"
	"testing"

	"github.com/agbruneau/bigint/internal/config"
)

func TestSqrtPerfectSquares(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"4", "2"},
		{"144", "12"},
		{"152399025", "12345"},
		{"15241578750190521", "123456789"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.x).Sqrt()
		if err != nil {
			t.Fatalf("Sqrt(%s): %v", tt.x, err)
		}
		if got.String() != tt.want {
			t.Errorf("Sqrt(%s) = %s, want %s", tt.x, got.String(), tt.want)
		}
	}
}

func TestSqrtNonPerfectSquareFloors(t *testing.T) {
	x := MustParse("10")
	s, err := x.Sqrt()
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "3" {
		t.Errorf("Sqrt(10) = %s, want 3", s.String())
	}
	if s.Square().Greater(x) {
		t.Error("s*s must not exceed x")
	}
	if s.Inc().Square().LessOrEqual(x) {
		t.Error("(s+1)*(s+1) must exceed x")
	}
}

func TestSqrtNegative(t *testing.T) {
	_, err := MustParse("-1").Sqrt()
	var nre *NegativeRadicandError
	if !errors.As(err, &nre) {
		t.Errorf("expected NegativeRadicandError, got %v", err)
	}
}

func TestSqrtLargeNewtonPathMatchesHeron(t *testing.T) {
	x := MustParse("123456789012345678901234567890123456789012345678901234567890")

	heronOnly := &config.Tunables{FFTLimit: 8, NewtonDivMinLevel: 8, NewtonDivLimit: 32, NewtonSqrtMinLevel: 6, NewtonSqrtLimit: 1 << 20, FFTMaxK: 21}
	newtonForced := &config.Tunables{FFTLimit: 8, NewtonDivMinLevel: 8, NewtonDivLimit: 32, NewtonSqrtMinLevel: 6, NewtonSqrtLimit: 1, FFTMaxK: 21}

	want, err := x.SqrtT(heronOnly)
	if err != nil {
		t.Fatal(err)
	}
	got, err := x.SqrtT(newtonForced)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("Newton sqrt disagrees with Heron:\n got  %s\n want %s", got.String(), want.String())
	}
}
