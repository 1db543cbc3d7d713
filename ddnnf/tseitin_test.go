package ddnnf_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
	"github.com/raabh/d-dnnf-reasoner/nnf"
	"github.com/raabh/d-dnnf-reasoner/satcheck"
)

func TestTransformToCNF_Structure(t *testing.T) {
	c := buildBlocks(t)

	cnf, inverse := c.g.TransformToCNF(c.m12, nil)
	// 3 original variables (1, 2, 5) plus 4 gates.
	assert.Equal(t, "p cnf 7 13", cnf[0])
	assert.Equal(t, "7 0", cnf[len(cnf)-1], "unit clause asserts the post-order root")
	assert.Equal(t, map[int32]int32{1: 1, 2: 2, 3: 5}, inverse)
}

func TestTransformToCNF_ExtraClause(t *testing.T) {
	c := buildBlocks(t)

	cnf, _ := c.g.TransformToCNF(c.m12, []int32{-1})
	assert.Equal(t, "p cnf 7 14", cnf[0])
	assert.Equal(t, "-1 0", cnf[len(cnf)-1], "extra clause is renumbered and appended")
}

func TestTransformToCNF_Equisatisfiable(t *testing.T) {
	c := buildBlocks(t)

	cnf, inverse := c.g.TransformToCNF(c.m12, nil)
	clauses, numVars, err := satcheck.ReadDimacs(strings.Join(cnf, "\n"))
	require.NoError(t, err)

	models, err := satcheck.Models(clauses, numVars)
	require.NoError(t, err)
	require.Len(t, models, 2, "m12 has two models; gate values are determined")

	var projected [][]int32
	for _, model := range models {
		var config []int32
		for _, lit := range model {
			if orig, ok := inverse[abs(lit)]; ok {
				if lit > 0 {
					config = append(config, orig)
				} else {
					config = append(config, -orig)
				}
			}
		}
		projected = append(projected, config)
	}
	sortConfigs(projected)
	assert.Equal(t, [][]int32{{-1, -2, 5}, {1, 2, 5}}, projected)
}

func TestTransformToCNF_ClauseOutsideSupportPanics(t *testing.T) {
	c := buildBlocks(t)
	assert.Panics(t, func() { c.g.TransformToCNF(c.m12, []int32{6}) })
}

func TestTransformToCNF_StartWithoutSupportPanics(t *testing.T) {
	g := ddnnf.NewGraph()
	lit := g.AddLiteral(1)
	require.NoError(t, g.SetRoot(lit))
	g.RecomputeSupport()
	assert.Panics(t, func() { g.TransformToCNF(lit, nil) })
}

// TestTransformToCNF_RecompileRoundTrip checks the full reverse
// translation: transform the whole circuit to CNF, recompile it, and
// compare the enumerated configurations (with the renumbering undone
// and gate variables dropped) against the original circuit's.
func TestTransformToCNF_RecompileRoundTrip(t *testing.T) {
	circuits := []struct {
		name  string
		graph func(*testing.T) *ddnnf.Graph
	}{
		{"diamond", func(t *testing.T) *ddnnf.Graph { return buildDiamond(t).g }},
		{"blocks", func(t *testing.T) *ddnnf.Graph { return buildBlocks(t).g }},
	}

	for _, tc := range circuits {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.graph(t)
			d := ddnnf.FromGraph(g, 0)
			direct, err := d.Enumerate(nil, 1000)
			require.NoError(t, err)

			cnf, inverse := g.TransformToCNF(g.Root(), nil)
			dir := t.TempDir()
			cnfPath := filepath.Join(dir, "redone.cnf")
			nnfPath := filepath.Join(dir, "redone.nnf")
			require.NoError(t, ddnnf.WriteCNF(cnfPath, cnf))
			require.NoError(t, satcheck.EnumerationCompiler(0)(cnfPath, nnfPath))

			g2, err := nnf.Parse(nnfPath)
			require.NoError(t, err)
			d2 := ddnnf.FromGraph(g2, 0)
			recompiled, err := d2.Enumerate(nil, 1000)
			require.NoError(t, err)
			require.Len(t, recompiled, len(direct))

			var undone [][]int32
			for _, config := range recompiled {
				var mapped []int32
				for _, lit := range config {
					if orig, ok := inverse[abs(lit)]; ok {
						if lit > 0 {
							mapped = append(mapped, orig)
						} else {
							mapped = append(mapped, -orig)
						}
					}
				}
				sortByVar(mapped)
				undone = append(undone, mapped)
			}
			sortConfigs(undone)
			sortConfigs(direct)
			assert.Equal(t, direct, undone)
		})
	}
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
