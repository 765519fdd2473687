package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestToBitsFromBitsRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 127, -128, 12345, -12345, 1 << 40, -(1 << 40)}
	for _, v := range cases {
		x := FromInt64(v)
		bits := x.ToBits(x.BitLen() + 2)
		got := FromBits(bits)
		if !got.Equal(x) {
			t.Errorf("FromBits(%d.ToBits(...)) = %s, want %d", v, got.String(), v)
		}
	}
}

func TestToBitsWidthIsRespected(t *testing.T) {
	x := FromInt64(5)
	bits := x.ToBits(8)
	if len(bits) != 8 {
		t.Fatalf("ToBits(8) returned %d bits, want 8", len(bits))
	}
}

// TestFromBitsToBitsInvariant checks from_bits(to_bits(a)) == a for every a,
// the universal round-trip property required of the bit-sequence interface.
func TestFromBitsToBitsInvariant(t *testing.T) {
	properties := gopter.NewProperties(defaultTestParameters())

	properties.Property("FromBits(x.ToBits(n)) == x", prop.ForAll(
		func(v int64) bool {
			x := FromInt64(v)
			n := x.BitLen() + 2
			return FromBits(x.ToBits(n)).Equal(x)
		},
		gen.Int64Range(-1<<62, 1<<62),
	))

	properties.TestingRun(t)
}
