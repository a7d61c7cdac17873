package graph_test

import (
	"testing"

	"github.com/Roee-87/succinct-take-home/graph"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// render returns the per-node debug representation of the graph.
func render(t *testing.T, builder *graph.Builder[uint32]) []string {
	t.Helper()
	lines := make([]string, builder.Len())
	for i := range lines {
		n, err := builder.Node(graph.NodeID(i))
		require.NoError(t, err)
		lines[i] = n.String(builder)
	}
	return lines
}

func TestClone(t *testing.T) {
	assert := require.New(t)

	builder, x, y := buildPolynomial(t)
	assert.NoError(builder.Solve(x, 6))

	clone := builder.Clone()
	if diff := cmp.Diff(render(t, builder), render(t, clone)); diff != "" {
		t.Fatalf("clone differs from original (-original +clone):\n%s", diff)
	}
	assert.Equal(builder.Fingerprint(), clone.Fingerprint())

	// the copies evaluate independently
	assert.NoError(clone.Solve(x, 7))

	got, err := clone.Output(y)
	assert.NoError(err)
	assert.Equal(uint32(61), got)

	got, err = builder.Output(y)
	assert.NoError(err)
	assert.Equal(uint32(47), got)
}

func TestCloneUnsolved(t *testing.T) {
	assert := require.New(t)

	builder, x, y := buildPolynomial(t)
	clone := builder.Clone()

	_, err := clone.Output(y)
	assert.ErrorIs(err, graph.ErrOutputNotSet)

	assert.NoError(clone.Solve(x, 6))
	got, err := clone.Output(y)
	assert.NoError(err)
	assert.Equal(uint32(47), got)

	_, err = builder.Output(y)
	assert.ErrorIs(err, graph.ErrOutputNotSet)
}
