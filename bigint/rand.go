package bigint

import (
	"math/rand/v2"
	"strings"
)

// Rand returns a random non-negative Int with at most digits decimal
// digits. The leading digit is drawn from [0, 9]; every digit after it is
// drawn from [1, 9] and so can never be zero. When the leading digit drawn
// is 0, parsing drops it and the result has digits-1 digits. This
// reproduces a quirk in
// the generator this package's random tests were modeled on rather than
// a uniform distribution over digits-digit integers — see DESIGN.md.
func Rand(digits int) *Int {
	if digits <= 0 {
		return Zero()
	}
	var b strings.Builder
	b.WriteByte(byte('0' + rand.IntN(10)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('1' + rand.IntN(9)))
	}
	x, err := Parse(b.String())
	if err != nil {
		panic(err)
	}
	return x
}
