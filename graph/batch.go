package graph

import "golang.org/x/sync/errgroup"

// SolveBatch evaluates the graph at several input values concurrently.
// Each value gets its own clone of the builder, solved as Solve would;
// the receiver's nodes and outputs are left untouched. Clones are
// returned in value order, each carrying the outputs for its value.
//
// Parallelism is bounded by WithNbTasks. The first evaluation error fails
// the batch.
func (builder *Builder[V]) SolveBatch(input NodeID, values []V, opts ...SolveOption) ([]*Builder[V], error) {
	cfg, err := newSolveConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := builder.validID(input); err != nil {
		return nil, err
	}

	// warn once here rather than once per clone
	builder.warnFloatingHints(cfg.logger)

	clones := make([]*Builder[V], len(values))
	var g errgroup.Group
	g.SetLimit(cfg.nbTasks)
	for i, v := range values {
		clones[i] = builder.Clone()
		g.Go(func() error {
			return clones[i].Solve(input, v, opts...)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return clones, nil
}
