package bigint

import "fmt"

// ZeroDivisionError is returned whenever a divisor is zero: in Div, Mod,
// DivMod, DivScalar, or PowMod with a zero modulus.
type ZeroDivisionError struct {
	Op string // operation that was attempted, e.g. "DivMod"
}

func (e *ZeroDivisionError) Error() string {
	return fmt.Sprintf("bigint: division by zero in %s", e.Op)
}

// FFTLimitExceededError is returned when a requested FFT transform size
// exceeds the largest specialized transform the engine supports (2^K for
// the configured FFTMaxK, 2^21 by default).
type FFTLimitExceededError struct {
	RequestedK int // log2 of the requested transform length
	MaxK       int // largest supported log2 transform length
}

func (e *FFTLimitExceededError) Error() string {
	return fmt.Sprintf("bigint: FFT size 2^%d exceeds limit 2^%d", e.RequestedK, e.MaxK)
}

// NegativeRadicandError is returned by Sqrt or an even-order Root applied
// to a negative value, or by Root with a non-positive root order.
type NegativeRadicandError struct {
	Op string
}

func (e *NegativeRadicandError) Error() string {
	return fmt.Sprintf("bigint: %s: negative radicand or invalid root order", e.Op)
}
