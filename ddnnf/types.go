package ddnnf

import (
	"errors"

	"github.com/raabh/d-dnnf-reasoner/compile"
)

// SyntheticLiteralOffset partitions Tseitin auxiliary literals from real
// variables after a splice. Formulae whose variable ids exceed this
// offset are not supported; choose a larger offset (and recompile) for
// such inputs.
const SyntheticLiteralOffset = 1_000_000

var (
	// ErrNilGraph is returned when a nil *Graph is passed to an operation.
	ErrNilGraph = errors.New("ddnnf: graph is nil")

	// ErrVertexNotFound indicates a stale or foreign vertex handle.
	ErrVertexNotFound = errors.New("ddnnf: vertex not found")

	// ErrCyclic indicates the graph contains a directed cycle.
	ErrCyclic = errors.New("ddnnf: graph is cyclic")

	// ErrNoCompiler is returned by InsertClause when no compiler hook
	// was configured.
	ErrNoCompiler = errors.New("ddnnf: no compiler hook configured")

	// ErrNoParser is returned by InsertClause when no parser hook was
	// configured.
	ErrNoParser = errors.New("ddnnf: no parser hook configured")

	// ErrUnknownVariable is returned by InsertClause for a clause over a
	// variable the circuit does not mention.
	ErrUnknownVariable = errors.New("ddnnf: clause variable not in circuit")

	// ErrRenumberMiss indicates the externally compiled d-DNNF refers to
	// a variable that is neither an original variable nor a plausible
	// Tseitin auxiliary - a compiler contract violation.
	ErrRenumberMiss = errors.New("ddnnf: compiled output outside renumber range")

	// ErrEnumerationLimit indicates Enumerate was asked to materialize
	// more configurations than its limit allows.
	ErrEnumerationLimit = errors.New("ddnnf: enumeration limit exceeded")
)

// Vertex is a stable handle into a Graph's vertex arena. Handles remain
// valid across deletions of other vertices; deleting a vertex bumps its
// slot's generation so stale handles are detectable.
//
// The zero Vertex addresses slot 0 at generation 0 and is also used as
// the sentinel returned by ClosestUnsplittableAnd for an empty clause.
type Vertex struct {
	slot uint32
	gen  uint32
}

// ParseFunc parses a d-DNNF file produced by the external compiler into
// a fresh editable Graph. The parser is an external collaborator of the
// editing core and is injected via WithParser.
type ParseFunc func(nnfPath string) (*Graph, error)

// InsertOption configures a single InsertClause call.
// Use with g.InsertClause(clause, opts...).
type InsertOption func(*InsertOptions)

// InsertOptions holds the configurable collaborators of a clause
// insertion: the CNF→d-DNNF compiler, the d-DNNF parser, and the
// directory holding the two temporary marshalling files.
type InsertOptions struct {
	// Compiler produces a d-DNNF file from a DIMACS CNF file. Required.
	Compiler compile.Func

	// Parser reads the compiler's output into a Graph. Required.
	Parser ParseFunc

	// TempDir is the directory for intermediate.cnf / intermediate.nnf.
	// The insertion assumes exclusive ownership of those two paths for
	// its duration. Defaults to the current directory.
	TempDir string
}

// DefaultInsertOptions returns InsertOptions with no hooks and the
// current directory as temp dir. Both hooks must be supplied before an
// insertion can run.
func DefaultInsertOptions() InsertOptions {
	return InsertOptions{TempDir: "."}
}

// WithCompiler sets the external CNF→d-DNNF compiler hook.
func WithCompiler(fn compile.Func) InsertOption {
	return func(o *InsertOptions) { o.Compiler = fn }
}

// WithParser sets the d-DNNF parser hook used on the compiler's output.
func WithParser(fn ParseFunc) InsertOption {
	return func(o *InsertOptions) { o.Parser = fn }
}

// WithTempDir sets the directory for the temporary CNF/NNF files.
func WithTempDir(dir string) InsertOption {
	return func(o *InsertOptions) {
		if dir != "" {
			o.TempDir = dir
		}
	}
}
