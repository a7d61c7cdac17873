// Package test provides helpers to test computation graphs.
package test

import (
	"strings"
	"testing"

	"github.com/Roee-87/succinct-take-home/graph"
	"github.com/stretchr/testify/require"
)

// Assert is a helper to test graphs
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized by
// the description strings descs.
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		assert := &Assert{t, require.New(t)}
		fn(assert)
	})
}

// Log logs using the test instance logger.
func (assert *Assert) Log(v ...interface{}) {
	assert.t.Log(v...)
}

// SolveSucceeded fails the test if solving the graph at the given input
// value errors, or if the filled graph does not pass CheckConstraints.
func SolveSucceeded[V graph.Value](assert *Assert, builder *graph.Builder[V], input graph.NodeID, value V, opts ...graph.SolveOption) {
	assert.NoError(builder.Solve(input, value, opts...))
	assert.NoError(builder.CheckConstraints(opts...))
}

// SolveFailed fails the test unless solving the graph at the given input
// value errors.
func SolveFailed[V graph.Value](assert *Assert, builder *graph.Builder[V], input graph.NodeID, value V, opts ...graph.SolveOption) {
	assert.Error(builder.Solve(input, value, opts...))
}

// HintHolds fails the test unless the hint's claim verifies against
// target.
func HintHolds[V graph.Value](assert *Assert, builder *graph.Builder[V], hint, target graph.NodeID) {
	assert.NoError(builder.AssertEqual(hint, target))
}

// HintFails fails the test unless verifying the hint's claim against
// target fails with a mismatch.
func HintFails[V graph.Value](assert *Assert, builder *graph.Builder[V], hint, target graph.NodeID) {
	assert.ErrorIs(builder.AssertEqual(hint, target), graph.ErrHintMismatch)
}
