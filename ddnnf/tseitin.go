package ddnnf

import (
	"fmt"
	"strconv"
	"strings"
)

// TransformToCNF reverses the subcircuit rooted at start into DIMACS
// CNF via the standard Tseitin encoding, optionally conjoining an extra
// clause.
//
// Variables are renumbered densely: compact ids 1..V are assigned to
// the original variables of start's literal support in first-encounter
// order, and one fresh auxiliary id per internal And/Or gate follows
// from V+1. The emitted CNF is equisatisfiable with (subcircuit ∧
// clause), and its models projected onto ids 1..V coincide with the
// subcircuit's models over its own variables.
//
// The unit clause asserting the circuit true names the last-emitted
// node, which is the post-order root; callers must therefore pass the
// semantic root of the subcircuit they mean to encode (the locator
// guarantees this for the editing pipeline).
//
// The first returned line is the `p cnf <vars> <clauses>` header;
// clause lines are space-separated signed decimals terminated by 0,
// without trailing newlines. The second return value is the inverse
// renumber map (compact id → original variable id) used to re-identify
// literals after recompilation.
//
// start must be a vertex with cached literal support (an And or Or
// reachable from the root); anything else is a programmer error and
// panics. True and False
// nodes inside the lowered sequence become auxiliaries pinned by unit
// clauses. A clause variable outside the subcircuit's support likewise
// panics: the locator contract was violated.
func (g *Graph) TransformToCNF(start Vertex, clause []int32) ([]string, map[int32]int32) {
	cnf, inverse, _ := g.transformToCNF(start, clause)
	return cnf, inverse
}

// transformToCNF additionally returns the total variable count of the
// emitted CNF, which InsertClause uses to validate the compiler output.
func (g *Graph) transformToCNF(start Vertex, clause []int32) (cnf []string, inverse map[int32]int32, numVars int32) {
	// 1. Lower the subcircuit; children precede parents.
	nodes, _, _ := g.Rebuild(start)
	if len(nodes) == 0 {
		panic("ddnnf: Tseitin transform of an empty subcircuit")
	}

	// 2. Reserve compact ids 1..V for the subcircuit's variables.
	sup, ok := g.support[start]
	if !ok {
		panic(fmt.Sprintf("ddnnf: Tseitin start vertex %v has no literal support", start))
	}
	vars := make(map[int32]struct{}, len(sup))
	for lit := range sup {
		vars[abs32(lit)] = struct{}{}
	}
	counter := int32(len(vars)) + 1 // next Tseitin auxiliary id
	litCounter := int32(1)          // next compact variable id

	renumber := make(map[int32]int32, len(vars)) // original → compact
	aux := make([]int32, len(nodes))             // signed CNF literal per node
	cnf = []string{""}                           // header slot, filled last

	// 3. Emit gate clauses in index order.
	for i := range nodes {
		switch nodes[i].Type {
		case AndNode:
			// a ⇔ c1∧…∧cm
			for _, c := range nodes[i].Children {
				cnf = append(cnf, formatClause(-counter, aux[c]))
			}
			long := make([]int32, 0, len(nodes[i].Children)+1)
			long = append(long, counter)
			for _, c := range nodes[i].Children {
				long = append(long, -aux[c])
			}
			cnf = append(cnf, formatClause(long...))
			aux[i] = counter
			counter++
		case OrNode:
			// a ⇔ c1∨…∨cm
			for _, c := range nodes[i].Children {
				cnf = append(cnf, formatClause(counter, -aux[c]))
			}
			long := make([]int32, 0, len(nodes[i].Children)+1)
			long = append(long, -counter)
			for _, c := range nodes[i].Children {
				long = append(long, aux[c])
			}
			cnf = append(cnf, formatClause(long...))
			aux[i] = counter
			counter++
		case LiteralNode:
			v := abs32(nodes[i].Literal)
			re, seen := renumber[v]
			if !seen {
				re = litCounter
				renumber[v] = re
				litCounter++
			}
			if nodes[i].Literal > 0 {
				aux[i] = re
			} else {
				aux[i] = -re
			}
		case TrueNode:
			// A constant gets an auxiliary pinned by a unit clause.
			cnf = append(cnf, formatClause(counter))
			aux[i] = counter
			counter++
		case FalseNode:
			cnf = append(cnf, formatClause(-counter))
			aux[i] = counter
			counter++
		default:
			panic(fmt.Sprintf("ddnnf: %v node cannot appear in a Tseitin lowering", nodes[i].Type))
		}
	}

	// 4. Assert the subcircuit root.
	cnf = append(cnf, formatClause(aux[len(nodes)-1]))

	// 5. Conjoin the extra clause, renumbered with signs preserved.
	if clause != nil {
		mapped := make([]int32, len(clause))
		for i, lit := range clause {
			re, seen := renumber[abs32(lit)]
			if !seen {
				panic(fmt.Sprintf("ddnnf: clause variable %d outside subcircuit support", abs32(lit)))
			}
			if lit > 0 {
				mapped[i] = re
			} else {
				mapped[i] = -re
			}
		}
		cnf = append(cnf, formatClause(mapped...))
	}

	// 6. Header: variable count is counter-1, clause count excludes the
	//    header slot.
	cnf[0] = fmt.Sprintf("p cnf %d %d", counter-1, len(cnf)-1)

	// 7. Invert the renumbering for re-identification after recompile.
	inverse = make(map[int32]int32, len(renumber))
	for orig, compact := range renumber {
		inverse[compact] = orig
	}
	return cnf, inverse, counter - 1
}

// formatClause renders literals as a DIMACS clause line, 0-terminated.
func formatClause(lits ...int32) string {
	var sb strings.Builder
	for _, lit := range lits {
		sb.WriteString(strconv.FormatInt(int64(lit), 10))
		sb.WriteByte(' ')
	}
	sb.WriteByte('0')
	return sb.String()
}
