package satcheck

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

var (
	// ErrTooManyVariables indicates the CNF exceeds the enumeration
	// compiler's variable bound.
	ErrTooManyVariables = errors.New("satcheck: too many variables to enumerate")

	// ErrIncomplete indicates the solver gave up without a verdict.
	ErrIncomplete = errors.New("satcheck: solver returned no verdict")
)

// Solve reports whether the clauses are satisfiable under the given
// assumptions. Literals are signed DIMACS integers.
func Solve(clauses [][]int32, assumptions ...int32) (bool, error) {
	g := gini.New()
	addClauses(g, clauses)
	for _, lit := range assumptions {
		g.Assume(z.Dimacs2Lit(int(lit)))
	}
	switch g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, ErrIncomplete
	}
}

// SolveDimacs reports whether the DIMACS CNF file at path is
// satisfiable.
func SolveDimacs(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "satcheck: reading %s", path)
	}
	clauses, _, err := ReadDimacs(string(data))
	if err != nil {
		return false, err
	}
	return Solve(clauses)
}

// Entails reports whether the CNF entails the clause: CNF ∧ ¬C must be
// unsatisfiable. Used to verify that an inserted clause actually holds
// afterwards.
func Entails(clauses [][]int32, clause []int32) (bool, error) {
	negated := make([]int32, len(clause))
	for i, lit := range clause {
		negated[i] = -lit
	}
	sat, err := Solve(clauses, negated...)
	if err != nil {
		return false, err
	}
	return !sat, nil
}

// Models enumerates every model of the clauses over variables
// 1..numVars by repeated solving with blocking clauses. Each model
// lists every variable exactly once, signed by its assignment. The
// result grows exponentially with numVars; callers bound it.
func Models(clauses [][]int32, numVars int32) ([][]int32, error) {
	g := gini.New()
	addClauses(g, clauses)

	var models [][]int32
	for {
		verdict := g.Solve()
		if verdict == -1 {
			return models, nil
		}
		if verdict != 1 {
			return nil, ErrIncomplete
		}
		model := make([]int32, 0, numVars)
		blocking := make([]z.Lit, 0, numVars)
		for v := int32(1); v <= numVars; v++ {
			lit := z.Dimacs2Lit(int(v))
			if g.Value(lit) {
				model = append(model, v)
				blocking = append(blocking, lit.Not())
			} else {
				model = append(model, -v)
				blocking = append(blocking, lit)
			}
		}
		models = append(models, model)
		for _, lit := range blocking {
			g.Add(lit)
		}
		g.Add(z.LitNull)
	}
}

// addClauses feeds signed DIMACS clauses into the solver.
func addClauses(g *gini.Gini, clauses [][]int32) {
	for _, clause := range clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}
}

// ReadDimacs parses a DIMACS CNF file's contents into clauses and the
// declared variable count. Comment lines are skipped; the `p cnf`
// header is required.
func ReadDimacs(data string) (clauses [][]int32, numVars int32, err error) {
	sawHeader := false
	for lineNo, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if fields[0] == "p" {
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, 0, errors.Errorf("satcheck: line %d: bad DIMACS header", lineNo+1)
			}
			v, convErr := strconv.ParseInt(fields[2], 10, 32)
			if convErr != nil {
				return nil, 0, errors.Errorf("satcheck: line %d: variable count %q", lineNo+1, fields[2])
			}
			numVars = int32(v)
			sawHeader = true
			continue
		}
		var clause []int32
		for _, f := range fields {
			lit, convErr := strconv.ParseInt(f, 10, 32)
			if convErr != nil {
				return nil, 0, errors.Errorf("satcheck: line %d: literal %q", lineNo+1, f)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, int32(lit))
		}
		if len(clause) > 0 {
			clauses = append(clauses, clause)
		}
	}
	if !sawHeader {
		return nil, 0, errors.New("satcheck: missing DIMACS header")
	}
	return clauses, numVars, nil
}
