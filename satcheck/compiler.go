package satcheck

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/raabh/d-dnnf-reasoner/compile"
)

// DefaultEnumerationBound caps the variable count the enumeration
// compiler accepts; 2^bound models is the worst case.
const DefaultEnumerationBound = 16

// EnumerationCompiler returns a compile.Func that compiles a DIMACS CNF
// into a d4-dialect d-DNNF by enumerating all models with gini.
//
// The output is an And root over an Or of one And per model (each
// model-And lists every variable of the CNF exactly once), which is
// deterministic and decomposable by construction. An unsatisfiable CNF
// yields a single False node.
//
// maxVars bounds the accepted variable count (DefaultEnumerationBound
// if non-positive); beyond it the compiler refuses with
// ErrTooManyVariables rather than enumerate an exponential model set.
func EnumerationCompiler(maxVars int) compile.Func {
	if maxVars <= 0 {
		maxVars = DefaultEnumerationBound
	}

	return func(cnfPath, nnfPath string) error {
		data, err := os.ReadFile(cnfPath)
		if err != nil {
			return errors.Wrapf(err, "satcheck: reading %s", cnfPath)
		}
		clauses, numVars, err := ReadDimacs(string(data))
		if err != nil {
			return err
		}
		if int(numVars) > maxVars {
			return errors.Wrapf(ErrTooManyVariables, "%d > %d", numVars, maxVars)
		}

		models, err := Models(clauses, numVars)
		if err != nil {
			return err
		}
		return os.WriteFile(nnfPath, []byte(renderD4(models)), 0o644)
	}
}

// renderD4 emits the enumerated models as a d4-dialect circuit: an And
// root over an Or of one And per model. The And root matters for
// editing - the locator relies on a root conjunction whose support
// covers the whole variable space, as the external compilers produce.
func renderD4(models [][]int32) string {
	var sb strings.Builder
	if len(models) == 0 {
		sb.WriteString("f 1 0\n")
		return sb.String()
	}
	sb.WriteString("a 1 0\n")
	sb.WriteString("o 2 0\n")
	sb.WriteString("t 3 0\n")
	sb.WriteString("1 2 0\n")
	for _, model := range models {
		sb.WriteString("2 3")
		for _, lit := range model {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatInt(int64(lit), 10))
		}
		sb.WriteString(" 0\n")
	}
	return sb.String()
}
