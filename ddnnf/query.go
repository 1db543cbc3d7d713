package ddnnf

import (
	"math/big"
	"sort"
)

// Query counts the models consistent with a partial assignment.
//
// Only the part of the array influenced by the assumptions is
// recomputed: the nodes carrying the negated assumption literals get a
// temporary cardinality of zero, the markers propagate upward along the
// parent back-edges, and each marked And/Or recombines its children
// using their temporary value when marked and their cached count
// otherwise. An assumption over a variable that does not occur in the
// snapshot leaves the count unchanged; assuming both polarities of a
// variable yields zero.
//
// The scratch slots and markers are restored before returning, so
// queries may be issued back to back (but not concurrently).
// Complexity: O(marked subgraph) big-integer operations.
func (d *Ddnnf) Query(assumptions []int32) *big.Int {
	if len(d.Nodes) == 0 {
		return new(big.Int)
	}
	if len(assumptions) == 0 {
		return d.RootCount()
	}

	// 1. Seed: zero out the literals contradicting the assumptions.
	var marked []int
	for _, lit := range assumptions {
		if idx, ok := d.Literals[-lit]; ok && !d.Nodes[idx].marker {
			d.Nodes[idx].marker = true
			d.Nodes[idx].Temp.SetInt64(0)
			marked = append(marked, idx)
		}
	}

	// 2. Propagate markers to all ancestors.
	for i := 0; i < len(marked); i++ {
		for _, p := range d.Nodes[marked[i]].Parents {
			if !d.Nodes[p].marker {
				d.Nodes[p].marker = true
				marked = append(marked, p)
			}
		}
	}

	// 3. Recompute marked gates in ascending index order; children
	//    always precede parents in the array.
	sort.Ints(marked)
	for _, idx := range marked {
		n := &d.Nodes[idx]
		switch n.Type {
		case AndNode:
			n.Temp.SetInt64(1)
			for _, c := range n.Children {
				n.Temp.Mul(n.Temp, d.childCount(c))
			}
		case OrNode:
			n.Temp.SetInt64(0)
			for _, c := range n.Children {
				n.Temp.Add(n.Temp, d.childCount(c))
			}
		}
	}

	// 4. Read the root, then restore the scratch state.
	root := len(d.Nodes) - 1
	result := new(big.Int)
	if d.Nodes[root].marker {
		result.Set(d.Nodes[root].Temp)
	} else {
		result.Set(d.Nodes[root].Count)
	}
	for _, idx := range marked {
		d.Nodes[idx].marker = false
		d.Nodes[idx].Temp.SetInt64(0)
	}
	return result
}

// childCount selects the temporary value of a marked child and the
// cached count of an unmarked one.
func (d *Ddnnf) childCount(c int) *big.Int {
	if d.Nodes[c].marker {
		return d.Nodes[c].Temp
	}
	return d.Nodes[c].Count
}

// IsSat reports whether any model is consistent with the assumptions.
func (d *Ddnnf) IsSat(assumptions []int32) bool {
	return d.Query(assumptions).Sign() > 0
}

// Marginals returns the model count of each feature 1..n, i.e. the
// number of models in which the feature is selected. Synthetic literals
// are outside the feature range and never reported.
func (d *Ddnnf) Marginals() []*big.Int {
	out := make([]*big.Int, d.NumberOfVariables)
	for f := uint32(1); f <= d.NumberOfVariables; f++ {
		out[f-1] = d.Query([]int32{int32(f)})
	}
	return out
}
