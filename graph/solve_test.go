package graph_test

import (
	"math"
	"testing"

	"github.com/Roee-87/succinct-take-home/graph"
	"github.com/stretchr/testify/require"
)

// buildPolynomial constructs the graph for f(x) = x*x + 5 + x and returns
// the input and output nodes.
func buildPolynomial(t *testing.T) (*graph.Builder[uint32], graph.NodeID, graph.NodeID) {
	t.Helper()
	builder, err := graph.NewBuilder[uint32]()
	require.NoError(t, err)

	x := builder.Init()
	xSquared := builder.Mul(x, x)
	five := builder.Constant(5)
	sum := builder.Add(xSquared, five)
	y := builder.Add(sum, x)
	return builder, x, y
}

func TestPolynomialEvaluation(t *testing.T) {
	assert := require.New(t)

	builder, x, y := buildPolynomial(t)

	assert.NoError(builder.Solve(x, 6))
	assert.NoError(builder.CheckConstraints())

	got, err := builder.Output(y)
	assert.NoError(err)
	assert.Equal(uint32(47), got)
}

func TestPolynomialAssertion(t *testing.T) {
	assert := require.New(t)

	builder, x, y := buildPolynomial(t)
	claim := builder.Hint(47, y)
	fortySeven := builder.Constant(47)
	fortySix := builder.Constant(46)

	assert.NoError(builder.Solve(x, 6))
	assert.NoError(builder.CheckConstraints())

	assert.NoError(builder.AssertEqual(claim, fortySeven))
	assert.ErrorIs(builder.AssertEqual(claim, fortySix), graph.ErrHintMismatch)
}

func TestSqrtHint(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint32]()
	assert.NoError(err)

	x := builder.Init()
	seven := builder.Constant(7)
	sum := builder.Add(x, seven)
	root := builder.Hint(4, sum)
	square := builder.Mul(root, root)

	// sqrt(9 + 7) == 4
	assert.NoError(builder.Solve(x, 9))
	assert.NoError(builder.CheckConstraints())
	assert.NoError(builder.AssertEqual(root, square))

	// 4*4 != 10 + 7
	assert.NoError(builder.Solve(x, 10))
	assert.NoError(builder.CheckConstraints())
	assert.ErrorIs(builder.AssertEqual(root, square), graph.ErrHintMismatch)
}

func TestDivisionHint(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint32]()
	assert.NoError(err)

	a := builder.Init()
	one := builder.Constant(1)
	b := builder.Add(a, one)
	quotient := builder.Hint(1, b)
	eight := builder.Constant(8)
	product := builder.Mul(quotient, eight)

	// (7 + 1) / 8 == 1
	assert.NoError(builder.Solve(a, 7))
	assert.NoError(builder.CheckConstraints())
	assert.NoError(builder.AssertEqual(quotient, product))

	// 1*8 != 6 + 1
	assert.NoError(builder.Solve(a, 6))
	assert.NoError(builder.CheckConstraints())
	assert.ErrorIs(builder.AssertEqual(quotient, product), graph.ErrHintMismatch)
}

func TestAssertEqualMisuse(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint32]()
	assert.NoError(err)

	x := builder.Init()
	five := builder.Constant(5)
	sum := builder.Add(x, five)
	h := builder.Hint(11, sum)

	assert.ErrorIs(builder.AssertEqual(sum, five), graph.ErrNotHint)
	assert.ErrorIs(builder.AssertEqual(h, five), graph.ErrOutputNotSet,
		"the linked node has no output before solving")
	assert.ErrorIs(builder.AssertEqual(42, five), graph.ErrInvalidNode)
	assert.ErrorIs(builder.AssertEqual(h, 42), graph.ErrInvalidNode)
}

func TestSolveDesignatedInput(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint32]()
	assert.NoError(err)

	x := builder.Init()
	five := builder.Constant(5)
	builder.Add(x, five)

	assert.ErrorIs(builder.Solve(five, 1), graph.ErrNotInput)
	assert.ErrorIs(builder.Solve(99, 1), graph.ErrInvalidNode)
	assert.NoError(builder.Solve(x, 1))
}

func TestSolveUnsetOperand(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint32]()
	assert.NoError(err)

	x := builder.Init()
	y := builder.Init()
	sum := builder.Add(x, y)

	// y is never designated, so the sum cannot be computed
	assert.ErrorIs(builder.Solve(x, 1), graph.ErrOutputNotSet)

	_, err = builder.Output(sum)
	assert.ErrorIs(err, graph.ErrOutputNotSet)
}

func TestSolveOverflow(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint32]()
	assert.NoError(err)

	x := builder.Init()
	max := builder.Constant(math.MaxUint32)
	sum := builder.Add(x, max)

	assert.ErrorIs(builder.Solve(x, 1), graph.ErrOverflow)

	assert.NoError(builder.Solve(x, 1, graph.WithWraparound()))
	got, err := builder.Output(sum)
	assert.NoError(err)
	assert.Equal(uint32(0), got)

	// the checker applies the same overflow policy
	assert.ErrorIs(builder.CheckConstraints(), graph.ErrOverflow)
	assert.NoError(builder.CheckConstraints(graph.WithWraparound()))
}

func TestSolveOverflowMul(t *testing.T) {
	assert := require.New(t)

	builder, err := graph.NewBuilder[uint64]()
	assert.NoError(err)

	x := builder.Init()
	half := builder.Constant(uint64(1) << 63)
	product := builder.Mul(x, half)

	assert.ErrorIs(builder.Solve(x, 2), graph.ErrOverflow)

	assert.NoError(builder.Solve(x, 2, graph.WithWraparound()))
	got, err := builder.Output(product)
	assert.NoError(err)
	assert.Equal(uint64(0), got)
}

func TestSolveInvalidOption(t *testing.T) {
	assert := require.New(t)

	builder, x, _ := buildPolynomial(t)
	assert.Error(builder.Solve(x, 1, graph.WithNbTasks(0)))
}
