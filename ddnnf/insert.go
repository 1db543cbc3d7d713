package ddnnf

import (
	"fmt"
	"os"
	"strings"

	"github.com/raabh/d-dnnf-reasoner/compile"
)

// InsertClause conjoins a clause onto the circuit without recompiling
// the whole formula. The resulting graph is semantically equal to
// (original ∧ clause); it is not guaranteed to stay smooth or in the
// same normal-form subclass as the input.
//
// Pipeline: the locator picks the replacement subroot, TransformToCNF
// re-encodes that subcircuit together with the clause, the configured
// compiler hook recompiles the CNF, the configured parser hook reads
// the result, and the imported circuit is grafted in place of the
// subroot. Literals of the imported circuit are unified back onto the
// host's literal vertices through the inverse renumber map; Tseitin
// auxiliaries become fresh synthetic literals offset by
// ±SyntheticLiteralOffset.
//
// An empty clause is a no-op. Every clause variable must occur
// somewhere in the circuit (ErrUnknownVariable otherwise). A clause
// already entailed by the circuit leaves the model set unchanged; no
// entailment test is performed here.
//
// Mutations are staged: the host graph is touched only after the
// compiler output has been parsed and validated, so on any failure
// (compiler exit, unreadable output, renumber miss, temp-file I/O) the
// graph is left unchanged and the error is returned. The two temporary
// files are removed on all exit paths. Current linearized snapshots are
// invalidated by a successful insertion; re-lower with Rebuild.
func (g *Graph) InsertClause(clause []int32, opts ...InsertOption) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(clause) == 0 {
		return nil
	}

	o := DefaultInsertOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Compiler == nil {
		return ErrNoCompiler
	}
	if o.Parser == nil {
		return ErrNoParser
	}

	// 1. Reject clauses over variables the circuit never mentions; the
	//    Tseitin renumbering could not map them.
	rootSup, ok := g.support[g.root]
	if !ok {
		g.RecomputeSupport()
		rootSup = g.support[g.root]
	}
	for _, lit := range clause {
		if _, pos := rootSup[abs32(lit)]; !pos {
			if _, neg := rootSup[-abs32(lit)]; !neg {
				return fmt.Errorf("%w: %d", ErrUnknownVariable, abs32(lit))
			}
		}
	}

	// 2. Locate the replacement subroot. If the located support misses a
	//    clause variable (possible when a multi-variable clause scatters
	//    across incomparable candidates), the whole circuit is the only
	//    subcircuit that can absorb the clause.
	replace, located := g.ClosestUnsplittableAnd(clause)
	if !supportCoversClause(located, clause) {
		replace = g.root
	}
	cnf, inverse, numVars := g.transformToCNF(replace, clause)

	// 3. Marshal the CNF across the compiler boundary.
	cnfPath, nnfPath := compile.TempPaths(o.TempDir)
	defer os.Remove(cnfPath)
	defer os.Remove(nnfPath)
	if err := os.WriteFile(cnfPath, []byte(strings.Join(cnf, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("ddnnf: writing %s: %w", cnfPath, err)
	}
	if err := o.Compiler(cnfPath, nnfPath); err != nil {
		return fmt.Errorf("ddnnf: compiling %s: %w", cnfPath, err)
	}
	sub, err := o.Parser(nnfPath)
	if err != nil {
		return fmt.Errorf("ddnnf: parsing compiler output %s: %w", nnfPath, err)
	}

	// 4. Validate the imported literal space before touching the host:
	//    every literal must be an original variable (in the inverse
	//    renumber map) or a plausible Tseitin auxiliary (≤ numVars).
	subOrder := sub.postOrder(sub.Root())
	for _, v := range subOrder {
		if sub.slots[v.slot].kind != LiteralNode {
			continue
		}
		lit := sub.literalOf[v]
		if abs32(lit) > numVars {
			return fmt.Errorf("%w: literal %d of %d variables", ErrRenumberMiss, lit, numVars)
		}
	}

	// 5. Graft: post-order walk of the imported circuit, mapping each of
	//    its vertices to a host vertex. Original literals are unified
	//    onto the host's existing vertices, auxiliaries become synthetic
	//    literals, everything else is allocated fresh.
	mapping := make(map[Vertex]Vertex, len(subOrder))
	for _, v := range subOrder {
		var nv Vertex
		if sub.slots[v.slot].kind == LiteralNode {
			lit := sub.literalOf[v]
			if orig, isOrig := inverse[abs32(lit)]; isOrig {
				if lit > 0 {
					nv = g.AddLiteral(orig)
				} else {
					nv = g.AddLiteral(-orig)
				}
			} else {
				// Tseitin auxiliary: offset into the synthetic range,
				// partitioned from every real variable. Allocated fresh,
				// never unified - an earlier edit's auxiliary with the
				// same offset value is a different gate.
				if lit > 0 {
					nv = g.AddSyntheticLiteral(lit + SyntheticLiteralOffset)
				} else {
					nv = g.AddSyntheticLiteral(lit - SyntheticLiteralOffset)
				}
			}
		} else {
			nv = g.AddVertex(sub.slots[v.slot].kind)
		}
		mapping[v] = nv
		for _, c := range sub.slots[v.slot].children {
			if err := g.AddEdge(nv, mapping[c]); err != nil {
				panic(fmt.Sprintf("ddnnf: graft edge into unmapped child: %v", err))
			}
		}
	}

	// 6. Rewire every edge into the replaced subroot onto the imported
	//    root. The old subcircuit becomes unreachable and is dropped by
	//    the next lowering.
	rNew := mapping[sub.Root()]
	for slot := range g.slots {
		if !g.slots[slot].live {
			continue
		}
		kids := g.slots[slot].children
		for i := range kids {
			if kids[i] == replace {
				kids[i] = rNew
			}
		}
	}
	if replace == g.root {
		g.root = rNew
	}

	// 7. Re-derive the support cache and re-verify acyclicity.
	g.RecomputeSupport()
	if g.IsCyclic() {
		panic("ddnnf: splice introduced a cycle")
	}
	return nil
}

// supportCoversClause reports whether every clause variable occurs, in
// either polarity, in the support snapshot.
func supportCoversClause(support []int32, clause []int32) bool {
	vars := make(map[int32]struct{}, len(support))
	for _, lit := range support {
		vars[abs32(lit)] = struct{}{}
	}
	for _, lit := range clause {
		if _, ok := vars[abs32(lit)]; !ok {
			return false
		}
	}
	return true
}

// WriteCNF writes Tseitin output lines as a DIMACS file.
func WriteCNF(path string, cnf []string) error {
	return os.WriteFile(path, []byte(strings.Join(cnf, "\n")+"\n"), 0o644)
}
