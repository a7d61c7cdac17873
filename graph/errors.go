package graph

import "errors"

// ErrInvalidNode is returned when a node id does not reference an
// allocated node.
var ErrInvalidNode = errors.New("node is not allocated")

// ErrOutputNotSet is returned when an operation reads the output of a node
// that has not been assigned one. Unset outputs are never substituted with
// a default value.
var ErrOutputNotSet = errors.New("node output is not set")

// ErrNotInput is returned by Solve when the designated node is not an
// input node.
var ErrNotInput = errors.New("node is not an input")

// ErrNotHint is returned by AssertEqual when the first argument is not a
// hint node.
var ErrNotHint = errors.New("node is not a hint")

// ErrUnsatisfiedConstraint is returned by CheckConstraints when a computed
// node's stored output does not match the recomputation from its operands.
var ErrUnsatisfiedConstraint = errors.New("constraint is not satisfied")

// ErrHintMismatch is returned by AssertEqual when the output of the node a
// hint links to differs from the target's output.
var ErrHintMismatch = errors.New("hint is not consistent")

// ErrOverflow is returned when an addition or multiplication exceeds the
// value width and wraparound mode is off.
var ErrOverflow = errors.New("arithmetic overflow")
