package hints

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestSqrt(t *testing.T) {
	assert := require.New(t)

	r, err := Sqrt(uint32(16))
	assert.NoError(err)
	assert.Equal(uint32(4), r)

	r64, err := Sqrt(uint64(1) << 62)
	assert.NoError(err)
	assert.Equal(uint64(1)<<31, r64)

	r, err = Sqrt(uint32(0))
	assert.NoError(err)
	assert.Equal(uint32(0), r)

	_, err = Sqrt(uint32(17))
	assert.Error(err)

	// largest uint64 square
	r64, err = Sqrt(uint64(0xffffffff) * 0xffffffff)
	assert.NoError(err)
	assert.Equal(uint64(0xffffffff), r64)

	_, err = Sqrt(uint64(math.MaxUint64))
	assert.Error(err)
}

func TestDivExact(t *testing.T) {
	assert := require.New(t)

	q, err := DivExact(uint32(8), 8)
	assert.NoError(err)
	assert.Equal(uint32(1), q)

	q, err = DivExact(uint32(42), 7)
	assert.NoError(err)
	assert.Equal(uint32(6), q)

	_, err = DivExact(uint32(7), 0)
	assert.Error(err)

	_, err = DivExact(uint32(7), 3)
	assert.Error(err)
}

func TestSqrtProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("sqrt(x*x) == x", prop.ForAll(
		func(x uint32) bool {
			r, err := Sqrt(uint64(x) * uint64(x))
			return err == nil && r == uint64(x)
		},
		gen.UInt32(),
	))

	properties.Property("sqrt errors on x*x+1 for x > 1", prop.ForAll(
		func(x uint32) bool {
			_, err := Sqrt(uint64(x)*uint64(x) + 1)
			return err != nil
		},
		gen.UInt32Range(2, 1<<31),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
