package mandel

import "strconv"

// EscapeRadiusSquared is the bailout on |z|^2. Exact for exponent 2;
// for higher exponents it is an accepted approximation of the escape bound.
const EscapeRadiusSquared = 4.0

// EscapeResult is the outcome of iterating one point.
// The zero value is Bounded: the orbit stayed within the escape radius.
type EscapeResult struct {
	iter    int32
	escaped bool
}

// Bounded marks a point that did not escape within the iteration cap
var Bounded = EscapeResult{}

// EscapedAt marks a point whose orbit left the escape radius on iteration k.
// k is clamped to 0..MaxMaxIterations.
func EscapedAt(k int) EscapeResult {
	return EscapeResult{iter: int32(min(max(k, 0), MaxMaxIterations)), escaped: true}
}

// Iterations returns the escape iteration and true, or 0 and false for Bounded
func (r EscapeResult) Iterations() (int, bool) {
	return int(r.iter), r.escaped
}

func (r EscapeResult) IsBounded() bool {
	return !r.escaped
}

func (r EscapeResult) String() string {
	if !r.escaped {
		return "bounded"
	}
	return "escaped(" + strconv.Itoa(int(r.iter)) + ")"
}

// Escape runs the escape-time iteration z = z^n + c from z = 0 for at most
// maxIter steps. maxIter is capped at MaxMaxIterations.
func Escape(c complex128, n, maxIter int) EscapeResult {
	maxIter = min(maxIter, MaxMaxIterations)
	var z complex128
	for k := range maxIter {
		z = ipow(z, n) + c
		re, im := real(z), imag(z)
		if re*re+im*im > EscapeRadiusSquared {
			return EscapedAt(k)
		}
	}
	return Bounded
}

// ipow raises z to a non-negative integer power by squaring
func ipow(z complex128, n int) complex128 {
	if n == 2 {
		return z * z
	}
	result := complex(1, 0)
	for n > 0 {
		if n&1 == 1 {
			result *= z
		}
		z *= z
		n >>= 1
	}
	return result
}
