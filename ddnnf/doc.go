// Package ddnnf implements the intermediate representation for
// deterministic Decomposable Negation Normal Form (d-DNNF) circuits,
// model counting over them, and incremental clause insertion.
//
// Two representations coexist:
//
//   - Graph: an editable directed acyclic multigraph with stable vertex
//     handles (generational arena). This is the form that structural
//     edits operate on. Vertices carry only a kind tag; literal values
//     and per-vertex literal support live in side maps.
//   - []Node: a dense post-order array produced by Graph.Rebuild. All
//     counting and query machinery runs on this immutable snapshot;
//     every edit invalidates the current snapshot.
//
// The editing core is the pipeline behind Graph.InsertClause: the
// ClosestUnsplittableAnd locator picks the smallest subcircuit whose
// variable support covers the new clause, TransformToCNF reverses that
// subcircuit to DIMACS CNF via a Tseitin encoding, an external
// CNF→d-DNNF compiler (injected as a compile.Func) recompiles it
// together with the clause, and the resulting circuit is spliced back
// into the host graph with literal vertices unified through the inverse
// renumber map. The edited graph is semantically equal to
// (original ∧ clause).
//
// Key guarantees:
//
//   - The graph is acyclic at all times; InsertClause re-verifies this
//     after every splice.
//   - A real-variable literal vertex is unique per signed value;
//     splicing unifies those literals instead of duplicating them.
//     Synthetic auxiliaries are allocated fresh per edit: recurring
//     offset values name different gates and never merge.
//   - In every linearization each child index is strictly smaller than
//     its parent index (post-order emission).
//   - Cardinalities are arbitrary precision (math/big): products over
//     And children, sums over Or children.
//
// Tseitin auxiliary variables introduced by recompilation persist in
// the host graph as synthetic literals offset by ±SyntheticLiteralOffset;
// user-visible reports (counts, enumeration, marginals) exclude them.
//
// Errors:
//
//   - ErrNilGraph            - nil *Graph passed to an operation.
//   - ErrVertexNotFound      - stale or unknown vertex handle.
//   - ErrCyclic              - constructed graph contains a cycle.
//   - ErrNoCompiler          - InsertClause without a compiler hook.
//   - ErrNoParser            - InsertClause without a parser hook.
//   - ErrRenumberMiss        - compiled output references an impossible variable.
//   - ErrEnumerationLimit    - Enumerate would exceed the configured limit.
package ddnnf
