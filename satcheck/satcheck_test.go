package satcheck_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raabh/d-dnnf-reasoner/satcheck"
)

func TestSolve(t *testing.T) {
	clauses := [][]int32{{1, 2}, {-1, -2}}

	sat, err := satcheck.Solve(clauses)
	require.NoError(t, err)
	assert.True(t, sat)

	sat, err = satcheck.Solve(clauses, 1, 2)
	require.NoError(t, err)
	assert.False(t, sat, "assumptions violate the exclusion clause")
}

func TestSolveDimacs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.cnf")
	require.NoError(t, os.WriteFile(path, []byte("p cnf 2 2\n1 0\n-1 2 0\n"), 0o644))

	sat, err := satcheck.SolveDimacs(path)
	require.NoError(t, err)
	assert.True(t, sat)
}

func TestEntails(t *testing.T) {
	// 1 ∧ (¬1 ∨ 2) entails 2 but not ¬2.
	clauses := [][]int32{{1}, {-1, 2}}

	entailed, err := satcheck.Entails(clauses, []int32{2})
	require.NoError(t, err)
	assert.True(t, entailed)

	entailed, err = satcheck.Entails(clauses, []int32{-2})
	require.NoError(t, err)
	assert.False(t, entailed)
}

func TestModels(t *testing.T) {
	models, err := satcheck.Models([][]int32{{1, 2}}, 2)
	require.NoError(t, err)
	assert.Len(t, models, 3, "all assignments except ¬1∧¬2")
	for _, m := range models {
		assert.Len(t, m, 2, "every variable is assigned")
	}

	models, err = satcheck.Models([][]int32{{1}, {-1}}, 1)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestReadDimacs(t *testing.T) {
	clauses, numVars, err := satcheck.ReadDimacs("c comment\np cnf 3 2\n1 -2 0\n3 0\n")
	require.NoError(t, err)
	assert.Equal(t, int32(3), numVars)
	assert.Equal(t, [][]int32{{1, -2}, {3}}, clauses)

	_, _, err = satcheck.ReadDimacs("1 2 0\n")
	assert.Error(t, err, "header is mandatory")
}

func TestEnumerationCompiler(t *testing.T) {
	dir := t.TempDir()
	cnfPath := filepath.Join(dir, "in.cnf")
	nnfPath := filepath.Join(dir, "out.nnf")
	require.NoError(t, os.WriteFile(cnfPath, []byte("p cnf 2 1\n1 2 0\n"), 0o644))

	require.NoError(t, satcheck.EnumerationCompiler(0)(cnfPath, nnfPath))
	data, err := os.ReadFile(nnfPath)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "a 1 0\n", "root is a conjunction")
	assert.Contains(t, out, "o 2 0\n")
	// Three models → three labelled edges below the Or.
	assert.Equal(t, 3, strings.Count(out, "\n2 3 "))
}

func TestEnumerationCompiler_Unsat(t *testing.T) {
	dir := t.TempDir()
	cnfPath := filepath.Join(dir, "in.cnf")
	nnfPath := filepath.Join(dir, "out.nnf")
	require.NoError(t, os.WriteFile(cnfPath, []byte("p cnf 1 2\n1 0\n-1 0\n"), 0o644))

	require.NoError(t, satcheck.EnumerationCompiler(0)(cnfPath, nnfPath))
	data, err := os.ReadFile(nnfPath)
	require.NoError(t, err)
	assert.Equal(t, "f 1 0\n", string(data))
}

func TestEnumerationCompiler_TooManyVariables(t *testing.T) {
	dir := t.TempDir()
	cnfPath := filepath.Join(dir, "in.cnf")
	require.NoError(t, os.WriteFile(cnfPath, []byte("p cnf 40 1\n1 0\n"), 0o644))

	err := satcheck.EnumerationCompiler(16)(cnfPath, filepath.Join(dir, "out.nnf"))
	assert.ErrorIs(t, err, satcheck.ErrTooManyVariables)
}
