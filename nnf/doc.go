// Package nnf parses d-DNNF circuits from the two text dialects emitted
// by the common knowledge compilers, and builds the counting facade
// from any supported input file.
//
// Dialects:
//
//   - c2d: a `nnf <nodes> <edges> <vars>` header followed by one node
//     per line - `L <lit>`, `A <c> <children...>`, `O <j> <c>
//     <children...>`. `A 0` denotes True and `O 0 0` denotes False.
//     Children reference earlier lines, so the file is itself a
//     post-order listing.
//   - d4: no header; node declarations `o|a|t|f <id> 0` mixed with edge
//     lines `<from> <to> [literals...] 0`. Literals on an edge imply an
//     intermediate And over the target and the literals. The first
//     declared node is the root.
//
// DIMACS `.cnf`/`.dimacs` inputs are supported by compiling them
// through a compile.Func first and parsing the compiler's d4 output.
//
// Parse (dialect auto-detection) satisfies ddnnf.ParseFunc and is the
// parser hook the editing pipeline uses on recompiled subcircuits.
//
// Errors:
//
//   - ErrEmpty          - input holds no nodes.
//   - ErrUnknownDialect - input matches neither dialect.
//   - ErrMalformed      - structurally invalid line (wrapped with position).
//   - ErrNoCompiler     - DIMACS input without a compiler hook.
package nnf
