package graph

import (
	"fmt"

	"github.com/Roee-87/succinct-take-home/profile"
	"github.com/bits-and-blooms/bitset"
)

// Builder constructs and owns an arithmetic computation graph.
//
// The arena only grows: nodes are appended by the constructors below and
// are never deleted or reordered. Construction records structure; outputs
// are produced by Solve and re-verified by CheckConstraints. Constants and
// hints are the exception: their output is fixed when they are appended.
//
// A Builder is not safe for concurrent use. Evaluation mutates outputs in
// place, so concurrent evaluations of one graph require a Clone per
// goroutine; SolveBatch does exactly that.
type Builder[V Value] struct {
	nodes []node[V]

	// values is indexed by NodeID and carries the current outputs; the
	// assigned set tracks which entries are defined.
	values   []V
	assigned *bitset.BitSet

	warnedFloating bool
}

// BuilderOption defines an option for the construction of a Builder.
type BuilderOption func(*builderConfig) error

type builderConfig struct {
	capacity int
}

// WithCapacity preallocates the arena for the expected number of nodes.
func WithCapacity(capacity int) BuilderOption {
	return func(cfg *builderConfig) error {
		if capacity < 0 {
			return fmt.Errorf("invalid capacity: %d", capacity)
		}
		cfg.capacity = capacity
		return nil
	}
}

// NewBuilder returns an empty Builder.
func NewBuilder[V Value](opts ...BuilderOption) (*Builder[V], error) {
	cfg := builderConfig{}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Builder[V]{
		nodes:    make([]node[V], 0, cfg.capacity),
		values:   make([]V, 0, cfg.capacity),
		assigned: bitset.New(uint(cfg.capacity)),
	}, nil
}

// Len returns the number of nodes in the arena.
func (builder *Builder[V]) Len() int {
	return len(builder.nodes)
}

// newNode appends a record, seeds its output for the kinds fixed at
// construction, and returns its id.
func (builder *Builder[V]) newNode(n node[V]) NodeID {
	id := NodeID(len(builder.nodes))
	builder.nodes = append(builder.nodes, n)
	builder.values = append(builder.values, n.cst)
	if n.kind == KindConstant || n.kind == KindHint {
		builder.assigned.Set(uint(id))
	}
	profile.RecordNode()
	return id
}

// checkAllocated panics if id does not reference an already allocated
// node. Constructors referencing a forward or out-of-range id are a
// programming error, not a runtime condition.
func (builder *Builder[V]) checkAllocated(op string, id NodeID) {
	if id < 0 || int(id) >= len(builder.nodes) {
		panic(fmt.Sprintf("%s: node %d is not allocated (%d nodes)", op, id, len(builder.nodes)))
	}
}

// Init appends an input node; its value is supplied later through Solve.
func (builder *Builder[V]) Init() NodeID {
	return builder.newNode(node[V]{kind: KindInput})
}

// Constant appends a node carrying the fixed value v.
func (builder *Builder[V]) Constant(v V) NodeID {
	return builder.newNode(node[V]{kind: KindConstant, cst: v})
}

// Add appends a node computing a + b. Both operands must already be
// allocated, so the new node's id is strictly greater than theirs and the
// graph stays topologically ordered by id.
func (builder *Builder[V]) Add(a, b NodeID) NodeID {
	builder.checkAllocated("Add", a)
	builder.checkAllocated("Add", b)
	return builder.newNode(node[V]{kind: KindComputed, op: OpAdd, a: a, b: b})
}

// Mul appends a node computing a * b. Same preconditions as Add.
func (builder *Builder[V]) Mul(a, b NodeID) NodeID {
	builder.checkAllocated("Mul", a)
	builder.checkAllocated("Mul", b)
	return builder.newNode(node[V]{kind: KindComputed, op: OpMul, a: a, b: b})
}

// Hint appends a node whose output is pre-set to v, an externally computed
// witness claimed to relate to the node at link. The claim is not taken on
// faith: route the hint through computed nodes reconstructing the linked
// value and compare with AssertEqual.
func (builder *Builder[V]) Hint(v V, link NodeID) NodeID {
	builder.checkAllocated("Hint", link)
	return builder.newNode(node[V]{kind: KindHint, link: link, cst: v})
}

// Node returns a copy of the node at id, including its current output if
// assigned. The copy does not track later Solve calls.
func (builder *Builder[V]) Node(id NodeID) (Node[V], error) {
	if err := builder.validID(id); err != nil {
		return Node[V]{}, err
	}
	n := builder.nodes[id]
	s := Node[V]{
		ID:   id,
		Kind: n.kind,
		Op:   n.op,
		A:    n.a,
		B:    n.b,
		Link: n.link,
		Cst:  n.cst,
	}
	if builder.assigned.Test(uint(id)) {
		s.output = builder.values[id]
		s.hasOutput = true
	}
	return s, nil
}

// Output returns the output of the node at id.
func (builder *Builder[V]) Output(id NodeID) (V, error) {
	var zero V
	if err := builder.validID(id); err != nil {
		return zero, err
	}
	if !builder.assigned.Test(uint(id)) {
		return zero, fmt.Errorf("%w: node %d", ErrOutputNotSet, id)
	}
	return builder.values[id], nil
}

func (builder *Builder[V]) validID(id NodeID) error {
	if id < 0 || int(id) >= len(builder.nodes) {
		return fmt.Errorf("%w: node %d", ErrInvalidNode, id)
	}
	return nil
}

func (builder *Builder[V]) setValue(id NodeID, v V) {
	builder.values[id] = v
	builder.assigned.Set(uint(id))
}

// Clone returns a deep copy of the builder, structure and outputs alike.
// The copy evolves independently; cloning is how the same graph is
// evaluated concurrently under different inputs.
func (builder *Builder[V]) Clone() *Builder[V] {
	c := &Builder[V]{
		nodes:          make([]node[V], len(builder.nodes)),
		values:         make([]V, len(builder.values)),
		assigned:       builder.assigned.Clone(),
		warnedFloating: builder.warnedFloating,
	}
	copy(c.nodes, builder.nodes)
	copy(c.values, builder.values)
	return c
}
