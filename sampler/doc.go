// Package sampler provides the configuration containers used by
// sampling and coverage tooling on top of a d-DNNF reasoner.
//
// A Config is a partial assignment: a sorted, duplicate-free vector of
// signed literals (positive = selected, negative = deselected). A
// Sample collects Configs over a declared variable set and keeps
// complete configurations (mentioning every declared variable) apart
// from partial ones.
//
// The containers are deliberately plain - the sampling strategies
// themselves live elsewhere and only need cheap conflict/coverage
// predicates over these values.
package sampler
