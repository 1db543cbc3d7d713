package ddnnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
)

func TestGraph_AddLiteralUnifies(t *testing.T) {
	g := ddnnf.NewGraph()
	a := g.AddLiteral(4)
	b := g.AddLiteral(4)
	c := g.AddLiteral(-4)

	assert.Equal(t, a, b, "same signed value must reuse the vertex")
	assert.NotEqual(t, a, c, "opposite polarities are distinct vertices")

	lit, ok := g.LiteralOf(a)
	require.True(t, ok)
	assert.Equal(t, int32(4), lit)

	v, ok := g.VertexForLiteral(-4)
	require.True(t, ok)
	assert.Equal(t, c, v)
}

func TestGraph_AddSyntheticLiteralNeverUnifies(t *testing.T) {
	g := ddnnf.NewGraph()
	a := g.AddSyntheticLiteral(1_000_004)
	b := g.AddSyntheticLiteral(1_000_004)
	assert.NotEqual(t, a, b, "each call allocates a fresh gate literal")

	lit, ok := g.LiteralOf(b)
	require.True(t, ok)
	assert.Equal(t, int32(1_000_004), lit)

	// Value lookup keeps resolving to the first live vertex.
	v, ok := g.VertexForLiteral(1_000_004)
	require.True(t, ok)
	assert.Equal(t, a, v)

	// Removing the indexed vertex leaves the sibling's mapping intact.
	require.NoError(t, g.RemoveVertex(a))
	lit, ok = g.LiteralOf(b)
	require.True(t, ok)
	assert.Equal(t, int32(1_000_004), lit)
}

func TestGraph_AddVertexRejectsLiteralKind(t *testing.T) {
	g := ddnnf.NewGraph()
	assert.Panics(t, func() { g.AddVertex(ddnnf.LiteralNode) })
}

func TestGraph_ChildrenAndParents(t *testing.T) {
	g := ddnnf.NewGraph()
	and := g.AddVertex(ddnnf.AndNode)
	l1 := g.AddLiteral(1)
	l2 := g.AddLiteral(2)
	require.NoError(t, g.AddEdge(and, l1))
	require.NoError(t, g.AddEdge(and, l2))

	kids, err := g.Children(and)
	require.NoError(t, err)
	assert.Equal(t, []ddnnf.Vertex{l1, l2}, kids, "child order is insertion order")

	parents, err := g.Parents(l1)
	require.NoError(t, err)
	assert.Equal(t, []ddnnf.Vertex{and}, parents)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := ddnnf.NewGraph()
	and := g.AddVertex(ddnnf.AndNode)
	lit := g.AddLiteral(1)
	require.NoError(t, g.AddEdge(and, lit))
	require.NoError(t, g.AddEdge(and, lit)) // parallel edge

	require.NoError(t, g.RemoveEdge(and, lit))
	kids, err := g.Children(and)
	require.NoError(t, err)
	assert.Len(t, kids, 1, "only the first parallel edge is removed")

	require.NoError(t, g.RemoveEdge(and, lit))
	assert.ErrorIs(t, g.RemoveEdge(and, lit), ddnnf.ErrVertexNotFound)
}

func TestGraph_RemoveVertexStalesHandle(t *testing.T) {
	g := ddnnf.NewGraph()
	v := g.AddVertex(ddnnf.OrNode)
	require.NoError(t, g.RemoveVertex(v))

	_, err := g.Kind(v)
	assert.ErrorIs(t, err, ddnnf.ErrVertexNotFound)

	// The slot is reused, but the stale handle stays invalid.
	w := g.AddVertex(ddnnf.AndNode)
	kind, err := g.Kind(w)
	require.NoError(t, err)
	assert.Equal(t, ddnnf.AndNode, kind)
	_, err = g.Kind(v)
	assert.ErrorIs(t, err, ddnnf.ErrVertexNotFound)
}

func TestGraph_RemoveLiteralFreesValue(t *testing.T) {
	g := ddnnf.NewGraph()
	v := g.AddLiteral(9)
	require.NoError(t, g.RemoveVertex(v))

	_, ok := g.VertexForLiteral(9)
	assert.False(t, ok)

	w := g.AddLiteral(9)
	assert.NotEqual(t, v, w)
}

func TestGraph_IsCyclic(t *testing.T) {
	c := buildDiamond(t)
	assert.False(t, c.g.IsCyclic())

	g := ddnnf.NewGraph()
	a := g.AddVertex(ddnnf.AndNode)
	b := g.AddVertex(ddnnf.OrNode)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, a))
	assert.True(t, g.IsCyclic())
	assert.ErrorIs(t, g.Validate(), ddnnf.ErrCyclic)
}

func TestGraph_RecomputeSupport(t *testing.T) {
	c := buildDiamond(t)

	assert.Equal(t, []int32{-2, 2}, supportOf(t, c.g, c.or2))
	assert.Equal(t, []int32{-2, 1, 2}, supportOf(t, c.g, c.and1))
	assert.Equal(t, []int32{-1, 2}, supportOf(t, c.g, c.and2))
	assert.Equal(t, []int32{-2, -1, 1, 2}, supportOf(t, c.g, c.or1))
	assert.Equal(t, []int32{-2, -1, 1, 2, 3}, supportOf(t, c.g, c.root))

	// Literal vertices carry no cached support.
	_, ok := c.g.Support(c.l1)
	assert.False(t, ok)
}

func TestGraph_VertexCount(t *testing.T) {
	c := buildBlocks(t)
	// 8 block literals + 5/6 + 4 block Ands + 2 Ors + m12/m34 + root.
	assert.Equal(t, 19, c.g.VertexCount())
}
