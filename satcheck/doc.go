// Package satcheck provides SAT-backed checks for CNF formulae built on
// the gini solver: satisfiability, clause entailment, and a bounded
// model-enumeration compiler.
//
// The enumeration compiler satisfies compile.Func and turns a small
// DIMACS CNF into a d4-dialect d-DNNF by enumerating all models with
// blocking clauses and emitting an And-rooted Or over one And per
// model - a deterministic and decomposable circuit by construction. It refuses
// formulae beyond its variable bound because enumeration is
// exponential. It backs the test suites and doubles as a fallback when
// no external knowledge compiler is installed; production edits on
// industrial circuits should use compile.D4.
//
// Errors:
//
//   - ErrTooManyVariables - input exceeds the enumeration bound.
//   - ErrIncomplete       - the solver returned without a verdict.
package satcheck
