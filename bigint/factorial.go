package bigint

// Factorial returns n!. Factorial(0) is 1.
func Factorial(n uint64) *Int {
	result := One()
	for i := uint64(2); i <= n; i++ {
		result = result.Mul(FromInt64(int64(i)))
	}
	return result
}
