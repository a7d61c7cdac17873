package graph

import "fmt"

// AssertEqual verifies the claim a hint node makes: it reads the output of
// the node hint links to and the output of target, and requires the two to
// be equal. Note the hint's own value is not part of the comparison; the
// caller proves it indirectly, by wiring the hint through computed nodes
// that reconstruct the linked value and passing the reconstruction as
// target.
//
// Both outputs must be assigned, so AssertEqual is called after Solve.
// A mismatch fails with ErrHintMismatch; passing a non-hint node fails
// with ErrNotHint.
func (builder *Builder[V]) AssertEqual(hint, target NodeID) error {
	if err := builder.validID(hint); err != nil {
		return err
	}
	if err := builder.validID(target); err != nil {
		return err
	}
	h := builder.nodes[hint]
	if h.kind != KindHint {
		return fmt.Errorf("%w: node %d is a %s node", ErrNotHint, hint, h.kind)
	}
	claimed, err := builder.Output(h.link)
	if err != nil {
		return err
	}
	got, err := builder.Output(target)
	if err != nil {
		return err
	}
	if claimed != got {
		return fmt.Errorf("%w: node %d = %d, node %d = %d", ErrHintMismatch, h.link, claimed, target, got)
	}
	return nil
}
