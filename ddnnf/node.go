package ddnnf

import "math/big"

// NodeType tags the variants of a linearized circuit node.
// The tag decides how cardinalities are combined during counting.
type NodeType uint8

const (
	// AndNode multiplies the cardinalities of its children.
	AndNode NodeType = iota

	// OrNode sums the cardinalities of its children.
	OrNode

	// LiteralNode carries a signed literal; its cardinality is one
	// unless a query fixes the opposite polarity.
	LiteralNode

	// TrueNode has cardinality one.
	TrueNode

	// FalseNode has cardinality zero.
	FalseNode
)

// String returns the lower-case tag name, matching the d4 dialect letters
// where one exists.
func (t NodeType) String() string {
	switch t {
	case AndNode:
		return "and"
	case OrNode:
		return "or"
	case LiteralNode:
		return "literal"
	case TrueNode:
		return "true"
	case FalseNode:
		return "false"
	default:
		return "unknown"
	}
}

// Node is one record of the linearized (post-order) circuit array.
//
// Children and Parents hold indices into the same array. Children are
// always strictly smaller than the node's own index; Parents are the
// derived back-edges and are rebuilt on every lowering, never mutated
// independently.
type Node struct {
	// Type selects the variant; Children is empty for leaf variants.
	Type NodeType

	// Children lists the node's operand indices (And/Or only).
	Children []int

	// Literal is the signed literal value (LiteralNode only). The sign
	// encodes polarity, the absolute value the variable id.
	Literal int32

	// Count caches the node's cardinality at lowering time.
	Count *big.Int

	// Temp holds the cardinality during query evaluation.
	Temp *big.Int

	// PartialDerivative is the second query scratch slot.
	PartialDerivative *big.Int

	// Parents lists the indices of all nodes that have this node as a
	// child. The root has none.
	Parents []int

	// marker flags the node during query-time upward propagation.
	marker bool
}

// newNode builds a Node with zeroed scratch slots and no parents.
func newNode(t NodeType, count *big.Int) Node {
	return Node{
		Type:              t,
		Count:             count,
		Temp:              new(big.Int),
		PartialDerivative: new(big.Int),
	}
}

// NewAnd creates an And node over the given child indices.
func NewAnd(count *big.Int, children []int) Node {
	n := newNode(AndNode, count)
	n.Children = children
	return n
}

// NewOr creates an Or node over the given child indices.
func NewOr(count *big.Int, children []int) Node {
	n := newNode(OrNode, count)
	n.Children = children
	return n
}

// NewLiteral creates a literal node with cardinality one.
func NewLiteral(literal int32) Node {
	n := newNode(LiteralNode, big.NewInt(1))
	n.Literal = literal
	return n
}

// NewBool creates a True node (cardinality one) or a False node
// (cardinality zero).
func NewBool(b bool) Node {
	if b {
		return newNode(TrueNode, big.NewInt(1))
	}
	return newNode(FalseNode, new(big.Int))
}

// calcAndCount returns the product of the children's cached counts.
func calcAndCount(nodes []Node, children []int) *big.Int {
	count := big.NewInt(1)
	for _, c := range children {
		count.Mul(count, nodes[c].Count)
	}
	return count
}

// calcOrCount returns the sum of the children's cached counts.
func calcOrCount(nodes []Node, children []int) *big.Int {
	count := new(big.Int)
	for _, c := range children {
		count.Add(count, nodes[c].Count)
	}
	return count
}
