package graph

import (
	"strconv"
	"strings"
)

// Resolver maps node ids to display names when pretty printing.
type Resolver interface {
	VariableToString(id NodeID) string
}

// StringBuilder is a helper to build string representations of nodes.
// It embeds a strings.Builder object for convenience.
type StringBuilder[V Value] struct {
	strings.Builder
	Resolver
}

// NewStringBuilder returns a new StringBuilder.
func NewStringBuilder[V Value](r Resolver) *StringBuilder[V] {
	return &StringBuilder[V]{Resolver: r}
}

// WriteNode appends the node's definition to the current buffer, followed
// by its output for the kinds whose definition does not already determine
// it (inputs and computed nodes).
func (sbb *StringBuilder[V]) WriteNode(n Node[V]) {
	sbb.WriteString(sbb.VariableToString(n.ID))
	sbb.WriteString(" = ")
	switch n.Kind {
	case KindInput:
		sbb.WriteString("input")
	case KindConstant:
		sbb.WriteValue(n.Cst)
		return
	case KindComputed:
		sbb.WriteString(sbb.VariableToString(n.A))
		sbb.WriteByte(' ')
		sbb.WriteString(n.Op.String())
		sbb.WriteByte(' ')
		sbb.WriteString(sbb.VariableToString(n.B))
	case KindHint:
		sbb.WriteString("hint(")
		sbb.WriteValue(n.Cst)
		sbb.WriteString(") -> ")
		sbb.WriteString(sbb.VariableToString(n.Link))
		return
	}
	if v, ok := n.Output(); ok {
		sbb.WriteString(" == ")
		sbb.WriteValue(v)
	}
}

// WriteValue appends the decimal representation of v to the current buffer.
func (sbb *StringBuilder[V]) WriteValue(v V) {
	sbb.WriteString(strconv.FormatUint(uint64(v), 10))
}

// String renders the node using r to name nodes. For more granularity use
// NewStringBuilder, which embeds a strings.Builder and has WriteNode and
// WriteValue methods.
func (n Node[V]) String(r Resolver) string {
	sbb := NewStringBuilder[V](r)
	sbb.WriteNode(n)
	return sbb.String()
}

// VariableToString implements Resolver, naming nodes x0, x1, ...
func (builder *Builder[V]) VariableToString(id NodeID) string {
	return "x" + strconv.Itoa(int(id))
}

// String renders the whole graph, one node per line in id order.
func (builder *Builder[V]) String() string {
	sbb := NewStringBuilder[V](builder)
	for id := range builder.nodes {
		n, _ := builder.Node(NodeID(id))
		sbb.WriteNode(n)
		sbb.WriteByte('\n')
	}
	return sbb.String()
}
