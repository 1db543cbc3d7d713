// Package compile defines the boundary to the external CNF→d-DNNF
// knowledge compiler.
//
// The editing core never talks to a compiler binary directly: it writes
// a DIMACS CNF file, invokes a Func, and parses the d-DNNF file the Func
// produced. Anything that satisfies that contract can be plugged in -
// the subprocess-backed D4 wrapper from this package, the bounded
// in-process enumeration compiler from package satcheck, or a test
// double.
//
// The boundary is synchronous: a Func call blocks until the compiler
// has finished, and the core does not support cancelling an edit
// halfway. The compiler is assumed deterministic; failures are not
// retried.
package compile
