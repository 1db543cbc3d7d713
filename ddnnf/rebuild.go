package ddnnf

import "fmt"

// Rebuild lowers the editable graph into the dense post-order node
// array used by all counting and query machinery.
//
// The walk starts at the graph root, or at altRoot if one is given, and
// emits every reachable vertex exactly once with all children placed
// before their parents. Cardinalities are computed at emission time:
// products over And children, sums over Or children, one for literals
// and True, zero for False. Vertices unreachable from the chosen root
// are simply not lowered (this is how detached subcircuits are garbage
// collected after a splice).
//
// Returns the node array, a map from signed literal to node index (last
// occurrence wins; real variables are unique, while synthetic auxiliary
// values may recur across spliced subcircuits), and the positions of
// True nodes.
//
// Precondition: the graph is acyclic. Behavior on cyclic input is
// undefined; InsertClause and the parsers verify acyclicity at every
// point where the topology changes.
// Complexity: O(V+E) graph work plus the big-integer arithmetic, which
// dominates on industrial circuits.
func (g *Graph) Rebuild(altRoot ...Vertex) (nodes []Node, literals map[int32]int, trueNodes []int) {
	root := g.root
	if len(altRoot) > 0 {
		root = altRoot[0]
	}

	order := g.postOrder(root)
	index := make(map[Vertex]int, len(order))
	nodes = make([]Node, 0, len(order))
	literals = make(map[int32]int)

	for _, v := range order {
		// 1. Children are already emitted; translate handles to indices.
		kids := g.slots[v.slot].children
		children := make([]int, len(kids))
		for i, c := range kids {
			children[i] = index[c]
		}

		// 2. Build the linearized node for this vertex kind.
		var next Node
		switch g.slots[v.slot].kind {
		case LiteralNode:
			lit, ok := g.literalOf[v]
			if !ok {
				panic(fmt.Sprintf("ddnnf: literal vertex %v missing from literalOf", v))
			}
			next = NewLiteral(lit)
		case AndNode:
			next = NewAnd(calcAndCount(nodes, children), children)
		case OrNode:
			next = NewOr(calcOrCount(nodes, children), children)
		case TrueNode:
			next = NewBool(true)
		case FalseNode:
			next = NewBool(false)
		default:
			panic(fmt.Sprintf("ddnnf: vertex kind %v cannot be lowered", g.slots[v.slot].kind))
		}

		// 3. Emit and wire the derived back-edges / side indices.
		nextIndex := len(nodes)
		switch next.Type {
		case AndNode, OrNode:
			for _, c := range children {
				nodes[c].Parents = append(nodes[c].Parents, nextIndex)
			}
		case LiteralNode:
			literals[next.Literal] = nextIndex
		case TrueNode:
			trueNodes = append(trueNodes, nextIndex)
		}
		index[v] = nextIndex
		nodes = append(nodes, next)
	}

	return nodes, literals, trueNodes
}
