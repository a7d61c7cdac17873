package graph

import "fmt"

// CheckConstraints re-verifies, after evaluation, that every computed
// node's stored output equals its operation applied to its operands'
// current outputs. The recomputation is intentionally redundant with
// Solve: it catches any post-fill mutation of outputs that would break the
// graph's algebraic relations, and is the seam where a proof system would
// put its own verification.
//
// The first mismatch fails with ErrUnsatisfiedConstraint, naming the node
// and both values. Unassigned outputs fail with ErrOutputNotSet: checking
// before solving is a misuse, not a violation.
func (builder *Builder[V]) CheckConstraints(opts ...SolveOption) error {
	cfg, err := newSolveConfig(opts...)
	if err != nil {
		return err
	}

	for id, n := range builder.nodes {
		if n.kind != KindComputed {
			continue
		}
		a, err := builder.Output(n.a)
		if err != nil {
			return err
		}
		b, err := builder.Output(n.b)
		if err != nil {
			return err
		}
		got, err := builder.Output(NodeID(id))
		if err != nil {
			return err
		}
		want, err := eval(n.op, a, b, cfg.wraparound)
		if err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
		if want != got {
			return fmt.Errorf("%w: node %d: %d %s %d != %d", ErrUnsatisfiedConstraint, id, a, n.op, b, got)
		}
	}

	cfg.logger.Debug().Int("nbNodes", len(builder.nodes)).Msg("constraints verified")
	return nil
}
