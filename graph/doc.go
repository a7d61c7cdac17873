// Package graph implements an append-only arithmetic computation graph
// with hint nodes, together with its evaluator and constraint checker.
//
// A Builder owns an arena of nodes addressed by NodeID, the node's position
// in construction order. Referencing a node requires it to exist already,
// so a graph is topologically ordered by construction: operands always have
// smaller ids than the nodes computing over them.
//
// Evaluation is two-phased. Solve designates one input node, assigns it a
// value and fills every computed node in id order. CheckConstraints then
// independently recomputes each node and verifies the stored outputs, the
// structural hook where a proof system would substitute its own checks.
// Hint nodes carry witness values produced outside the graph; AssertEqual
// ties a hint back to the node it claims to stand for.
package graph
