package graph

import "fmt"

// Value is the set of machine words a graph computes over. Arithmetic is
// fixed-width and unsigned; uint32 is the width used by the examples and
// the default throughout the documentation.
type Value interface {
	~uint32 | ~uint64
}

// NodeID addresses a node inside a Builder. A node's identity is its
// position in the arena: ids are assigned in strictly increasing
// construction order and never reused.
type NodeID int

// Kind partitions nodes by the way their output is produced.
type Kind uint8

const (
	// KindInput marks a node whose value is assigned at evaluation time
	// through Solve.
	KindInput Kind = iota
	// KindConstant marks a node carrying a fixed value set at construction.
	KindConstant
	// KindComputed marks a node computing an operation over two operands.
	KindComputed
	// KindHint marks a node carrying an externally computed value tied to
	// another node for later verification.
	KindHint
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConstant:
		return "constant"
	case KindComputed:
		return "computed"
	case KindHint:
		return "hint"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Op is the operation of a computed node.
type Op uint8

const (
	OpAdd Op = iota
	OpMul
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// node is the stored record. Which fields are meaningful depends on kind;
// the Builder constructors are the only write path and keep illegal
// combinations (an operation without operands, a link on a computed node)
// out of the arena.
type node[V Value] struct {
	kind Kind
	op   Op     // computed only
	a, b NodeID // operands, computed only
	link NodeID // claimed node, hint only
	cst  V      // construction-time value, constant and hint only
}

// Node is a read-only copy of a node record and of its output at the time
// of the lookup. It is detached from the Builder: later Solve calls do not
// change a snapshot already taken.
type Node[V Value] struct {
	ID   NodeID
	Kind Kind
	Op   Op     // meaningful when Kind is KindComputed
	A, B NodeID // operands when Kind is KindComputed
	Link NodeID // claimed node when Kind is KindHint
	Cst  V      // construction value when Kind is KindConstant or KindHint

	output    V
	hasOutput bool
}

// Output returns the node's output and whether it was assigned when the
// snapshot was taken.
func (n Node[V]) Output() (V, bool) {
	return n.output, n.hasOutput
}
