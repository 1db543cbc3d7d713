package ddnnf

import "math/big"

// Ddnnf couples an editable circuit graph with its current linearized
// snapshot. The snapshot is immutable: every structural edit on the
// graph invalidates it, and Rebuild derives a fresh one.
type Ddnnf struct {
	// Graph is the editable form the snapshot was lowered from.
	Graph *Graph

	// Nodes is the dense post-order array; the root is the last entry.
	Nodes []Node

	// Literals maps each signed literal to its node index.
	Literals map[int32]int

	// TrueNodes lists the positions of True nodes.
	TrueNodes []int

	// NumberOfVariables is the size of the user-visible variable space
	// (features 1..n). Synthetic literals introduced by edits live
	// beyond SyntheticLiteralOffset and are never reported.
	NumberOfVariables uint32
}

// FromGraph lowers g and returns the counting facade. If features is
// zero the variable count is inferred from the largest real variable in
// the lowering.
func FromGraph(g *Graph, features uint32) *Ddnnf {
	d := &Ddnnf{Graph: g, NumberOfVariables: features}
	d.Rebuild()
	return d
}

// Rebuild re-lowers the graph, replacing the node array, literal index,
// and True positions. Call after every successful InsertClause.
func (d *Ddnnf) Rebuild() {
	d.Nodes, d.Literals, d.TrueNodes = d.Graph.Rebuild()
	if d.NumberOfVariables == 0 {
		var max int32
		for lit := range d.Literals {
			if v := abs32(lit); v < SyntheticLiteralOffset && v > max {
				max = v
			}
		}
		d.NumberOfVariables = uint32(max)
	}
}

// RootCount returns the cached model count of the whole circuit.
func (d *Ddnnf) RootCount() *big.Int {
	if len(d.Nodes) == 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(d.Nodes[len(d.Nodes)-1].Count)
}
