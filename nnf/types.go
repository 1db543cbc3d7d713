package nnf

import (
	stderrors "errors"

	"github.com/raabh/d-dnnf-reasoner/compile"
)

var (
	// ErrEmpty indicates the input file declares no nodes.
	ErrEmpty = stderrors.New("nnf: empty input")

	// ErrUnknownDialect indicates the input matches neither the c2d nor
	// the d4 dialect.
	ErrUnknownDialect = stderrors.New("nnf: unknown d-DNNF dialect")

	// ErrMalformed indicates a structurally invalid input line.
	ErrMalformed = stderrors.New("nnf: malformed input")

	// ErrNoCompiler indicates a DIMACS input was given without a
	// compiler hook to turn it into d-DNNF first.
	ErrNoCompiler = stderrors.New("nnf: DIMACS input requires a compiler")
)

// BuildOption configures BuildDdnnf.
type BuildOption func(*BuildOptions)

// BuildOptions holds the collaborators BuildDdnnf may need: a compiler
// for DIMACS inputs and the directory for its intermediate output.
type BuildOptions struct {
	// Compiler turns a DIMACS file into d-DNNF. Only consulted for
	// .cnf/.dimacs inputs.
	Compiler compile.Func

	// TempDir receives the intermediate d-DNNF file when compiling a
	// DIMACS input. Defaults to the current directory.
	TempDir string
}

// DefaultBuildOptions returns BuildOptions with no compiler and the
// current directory as temp dir.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{TempDir: "."}
}

// WithCompiler sets the CNF→d-DNNF compiler used for DIMACS inputs.
func WithCompiler(fn compile.Func) BuildOption {
	return func(o *BuildOptions) { o.Compiler = fn }
}

// WithTempDir sets the directory for the intermediate d-DNNF file.
func WithTempDir(dir string) BuildOption {
	return func(o *BuildOptions) {
		if dir != "" {
			o.TempDir = dir
		}
	}
}
