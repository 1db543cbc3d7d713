// Package ddnnife is the umbrella for a d-DNNF reasoner: model counting
// and query answering over compiled deterministic Decomposable Negation
// Normal Form circuits, plus incremental editing of a compiled circuit
// by conjoining new clauses without recompiling the whole formula.
//
// What lives where:
//
//   - ddnnf    - the core: editable circuit graph, post-order lowering,
//     counting and queries, and the clause-insertion pipeline
//     (locator → Tseitin back-translation → external compile → splice).
//   - nnf      - parsers and a serializer for the c2d and d4 text
//     dialects, and circuit construction from DIMACS inputs.
//   - compile  - the external CNF→d-DNNF compiler boundary.
//   - satcheck - SAT-backed verification helpers and the bounded
//     enumeration compiler (gini).
//   - sampler  - configuration containers for sampling tooling.
//   - cmd/ddnnife - the command line front end.
//
// A typical round trip:
//
//	d, err := nnf.BuildDdnnf("model.nnf", 42)
//	// d.RootCount(), d.Query([]int32{4, -5}), d.Marginals(), ...
//
//	err = d.Graph.InsertClause([]int32{-4, -5},
//	        ddnnf.WithCompiler(compile.D4("d4")),
//	        ddnnf.WithParser(nnf.Parse))
//	d.Rebuild() // fresh counts for the edited circuit
//
// The edited circuit is semantically equal to (original ∧ clause);
// see package ddnnf for the invariants this preserves.
package ddnnife
