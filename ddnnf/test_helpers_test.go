package ddnnf_test

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
)

// diamondCircuit is (1 ∨ 2) ∧ 3 as a smooth d-DNNF:
//
//	root = And( Or( And(1, Or(2,¬2)), And(¬1, 2) ), 3 )
//
// Models: (1,2,3), (1,¬2,3), (¬1,2,3) - count 3.
type diamondCircuit struct {
	g *ddnnf.Graph

	or2, and1, and2, or1 ddnnf.Vertex
	root                 ddnnf.Vertex
	l1, l2, ln1, ln2, l3 ddnnf.Vertex
}

func buildDiamond(t *testing.T) *diamondCircuit {
	t.Helper()
	g := ddnnf.NewGraph()
	c := &diamondCircuit{g: g}
	c.l1 = g.AddLiteral(1)
	c.l2 = g.AddLiteral(2)
	c.ln2 = g.AddLiteral(-2)
	c.ln1 = g.AddLiteral(-1)
	c.l3 = g.AddLiteral(3)

	c.or2 = g.AddVertex(ddnnf.OrNode)
	mustEdge(t, g, c.or2, c.l2)
	mustEdge(t, g, c.or2, c.ln2)

	c.and1 = g.AddVertex(ddnnf.AndNode)
	mustEdge(t, g, c.and1, c.l1)
	mustEdge(t, g, c.and1, c.or2)

	c.and2 = g.AddVertex(ddnnf.AndNode)
	mustEdge(t, g, c.and2, c.ln1)
	mustEdge(t, g, c.and2, c.l2)

	c.or1 = g.AddVertex(ddnnf.OrNode)
	mustEdge(t, g, c.or1, c.and1)
	mustEdge(t, g, c.or1, c.and2)

	c.root = g.AddVertex(ddnnf.AndNode)
	mustEdge(t, g, c.root, c.or1)
	mustEdge(t, g, c.root, c.l3)

	require.NoError(t, g.SetRoot(c.root))
	require.NoError(t, g.Validate())
	g.RecomputeSupport()
	return c
}

// blocksCircuit is two independent equivalence blocks plus two forced
// features:
//
//	m12  = And( Or(And(1,2), And(¬1,¬2)), 5 )
//	m34  = And( Or(And(3,4), And(¬3,¬4)), 6 )
//	root = And(m12, m34)
//
// Models: {1,2 | ¬1,¬2} × {3,4 | ¬3,¬4} × 5 × 6 - count 4.
type blocksCircuit struct {
	g *ddnnf.Graph

	a12, b12, or12, m12 ddnnf.Vertex
	a34, b34, or34, m34 ddnnf.Vertex
	root                ddnnf.Vertex
}

func buildBlocks(t *testing.T) *blocksCircuit {
	t.Helper()
	g := ddnnf.NewGraph()
	c := &blocksCircuit{g: g}

	block := func(x, y int32) (a, b, or ddnnf.Vertex) {
		a = g.AddVertex(ddnnf.AndNode)
		mustEdge(t, g, a, g.AddLiteral(x))
		mustEdge(t, g, a, g.AddLiteral(y))
		b = g.AddVertex(ddnnf.AndNode)
		mustEdge(t, g, b, g.AddLiteral(-x))
		mustEdge(t, g, b, g.AddLiteral(-y))
		or = g.AddVertex(ddnnf.OrNode)
		mustEdge(t, g, or, a)
		mustEdge(t, g, or, b)
		return a, b, or
	}

	c.a12, c.b12, c.or12 = block(1, 2)
	c.m12 = g.AddVertex(ddnnf.AndNode)
	mustEdge(t, g, c.m12, c.or12)
	mustEdge(t, g, c.m12, g.AddLiteral(5))

	c.a34, c.b34, c.or34 = block(3, 4)
	c.m34 = g.AddVertex(ddnnf.AndNode)
	mustEdge(t, g, c.m34, c.or34)
	mustEdge(t, g, c.m34, g.AddLiteral(6))

	c.root = g.AddVertex(ddnnf.AndNode)
	mustEdge(t, g, c.root, c.m12)
	mustEdge(t, g, c.root, c.m34)

	require.NoError(t, g.SetRoot(c.root))
	require.NoError(t, g.Validate())
	g.RecomputeSupport()
	return c
}

func mustEdge(t *testing.T, g *ddnnf.Graph, parent, child ddnnf.Vertex) {
	t.Helper()
	require.NoError(t, g.AddEdge(parent, child))
}

// supportOf snapshots a cached support set as a sorted slice.
func supportOf(t *testing.T, g *ddnnf.Graph, v ddnnf.Vertex) []int32 {
	t.Helper()
	set, ok := g.Support(v)
	require.True(t, ok, "vertex has no cached support")
	out := make([]int32, 0, len(set))
	for lit := range set {
		out = append(out, lit)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// sortByVar orders a single configuration by variable id.
func sortByVar(config []int32) {
	sort.Slice(config, func(i, j int) bool { return abs(config[i]) < abs(config[j]) })
}

// sortConfigs orders configurations lexicographically for set comparison.
func sortConfigs(configs [][]int32) {
	sort.Slice(configs, func(i, j int) bool {
		a, b := configs[i], configs[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}

// checkSnapshotInvariants verifies the structural properties every
// linearization must satisfy: post-order child<parent, the cardinality
// laws, consistent parent back-edges, and uniqueness of real-variable
// literals. Synthetic auxiliaries are exempt from uniqueness - each
// edit allocates its own, and the literal index keeps the last
// occurrence.
func checkSnapshotInvariants(t *testing.T, d *ddnnf.Ddnnf) {
	t.Helper()
	realLiteralNodes := 0
	for i := range d.Nodes {
		n := &d.Nodes[i]
		for _, c := range n.Children {
			require.Less(t, c, i, "child index must precede parent")
		}
		switch n.Type {
		case ddnnf.AndNode:
			want := big.NewInt(1)
			for _, c := range n.Children {
				want.Mul(want, d.Nodes[c].Count)
			}
			require.Zero(t, want.Cmp(n.Count), "And cardinality law at %d", i)
		case ddnnf.OrNode:
			want := new(big.Int)
			for _, c := range n.Children {
				want.Add(want, d.Nodes[c].Count)
			}
			require.Zero(t, want.Cmp(n.Count), "Or cardinality law at %d", i)
		case ddnnf.LiteralNode:
			if abs(n.Literal) <= ddnnf.SyntheticLiteralOffset {
				realLiteralNodes++
				require.Equal(t, i, d.Literals[n.Literal], "literal index out of sync")
			}
		}
		for _, c := range n.Children {
			require.Contains(t, d.Nodes[c].Parents, i, "missing parent back-edge")
		}
	}
	realKeys := 0
	for lit := range d.Literals {
		if abs(lit) <= ddnnf.SyntheticLiteralOffset {
			realKeys++
		}
	}
	require.Equal(t, realLiteralNodes, realKeys, "duplicate real literal values in snapshot")
}
