// Package hints provides host-side calculators for hint witness values.
//
// A computation graph cannot derive these values algebraically; the caller
// computes them here, feeds them in with Builder.Hint, and proves them
// consistent by routing them through computed nodes and calling
// Builder.AssertEqual.
package hints

import (
	"errors"
	"fmt"
	"math"

	"github.com/Roee-87/succinct-take-home/graph"
)

// Sqrt returns the square root of v, erroring when v is not a perfect
// square. The witness of "r is the square root of v" is verified in-graph
// by multiplying r with itself.
func Sqrt[V graph.Value](v V) (V, error) {
	r := isqrt(uint64(v))
	if r*r != uint64(v) {
		return 0, fmt.Errorf("%d is not a perfect square", v)
	}
	return V(r), nil
}

// DivExact returns a / b, erroring when b is zero or does not divide a.
// The witness of "q is a divided by b" is verified in-graph by multiplying
// q back with b.
func DivExact[V graph.Value](a, b V) (V, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	if a%b != 0 {
		return 0, fmt.Errorf("%d does not divide %d", b, a)
	}
	return a / b, nil
}

// isqrt returns the integer square root of v. The float estimate can land
// one off in either direction; the corrections below never iterate more
// than a couple of times.
func isqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	x := uint64(math.Sqrt(float64(v)))
	if x > math.MaxUint32 {
		x = math.MaxUint32
	}
	for x*x > v {
		x--
	}
	for x < math.MaxUint32 && (x+1)*(x+1) <= v {
		x++
	}
	return x
}
