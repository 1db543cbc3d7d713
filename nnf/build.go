package nnf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
)

// Parse reads a d-DNNF file, auto-detecting the dialect from the first
// token: `nnf` selects c2d, a d4 node letter (o, a, t, f) selects d4,
// and anything else is ErrUnknownDialect. Parse satisfies
// ddnnf.ParseFunc and is the hook handed to the editing pipeline.
func Parse(path string) (*ddnnf.Graph, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "nnf" {
			return ParseC2D(lines)
		}
		switch fields[0] {
		case "o", "a", "t", "f":
			return ParseD4(lines)
		}
		return nil, errors.Wrapf(ErrUnknownDialect, "first token %q", fields[0])
	}
	return nil, ErrEmpty
}

// BuildDdnnf loads a circuit from path and returns the counting facade.
//
// d-DNNF inputs (.nnf and friends) are parsed directly. DIMACS inputs
// (.cnf/.dimacs) are first compiled through the configured compiler and
// the intermediate d-DNNF is parsed and removed. features fixes the
// user-visible variable count; pass 0 to infer it from the circuit.
func BuildDdnnf(path string, features uint32, opts ...BuildOption) (*ddnnf.Ddnnf, error) {
	o := DefaultBuildOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cnf", ".dimacs":
		if o.Compiler == nil {
			return nil, ErrNoCompiler
		}
		nnfPath := filepath.Join(o.TempDir, filepath.Base(path)+".nnf")
		defer os.Remove(nnfPath)
		if err := o.Compiler(path, nnfPath); err != nil {
			return nil, errors.Wrapf(err, "nnf: compiling %s", path)
		}
		g, err := Parse(nnfPath)
		if err != nil {
			return nil, err
		}
		return ddnnf.FromGraph(g, features), nil
	default:
		g, err := Parse(path)
		if err != nil {
			return nil, err
		}
		return ddnnf.FromGraph(g, features), nil
	}
}

// readLines loads a whole file as trimmed lines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "nnf: reading %s", path)
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}
