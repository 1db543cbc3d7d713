package sampler

// Sample is a collection of configurations over a declared variable
// set. A configuration is complete in the context of a sample when it
// mentions every declared variable, and partial otherwise; the two are
// stored apart because coverage algorithms treat them differently.
type Sample struct {
	complete []Config
	partial  []Config
	vars     map[uint32]struct{}
	literals map[int32]struct{}
}

// New creates an empty sample over the given variables.
func New(vars map[uint32]struct{}) *Sample {
	s := &Sample{
		vars:     make(map[uint32]struct{}, len(vars)),
		literals: make(map[int32]struct{}),
	}
	for v := range vars {
		s.vars[v] = struct{}{}
	}
	return s
}

// Empty creates a sample with no variables declared.
func Empty() *Sample {
	return New(nil)
}

// NewFromConfigs creates a sample whose variable set is derived from
// the configs themselves; every config is then classified and added.
func NewFromConfigs(configs ...Config) *Sample {
	vars := make(map[uint32]struct{})
	for _, c := range configs {
		for _, lit := range c.Literals() {
			vars[absVar(lit)] = struct{}{}
		}
	}
	s := New(vars)
	for _, c := range configs {
		s.Add(c)
	}
	return s
}

// NewFromSamples creates an empty sample over the union of the given
// samples' variable sets.
func NewFromSamples(samples ...*Sample) *Sample {
	vars := make(map[uint32]struct{})
	for _, other := range samples {
		for v := range other.vars {
			vars[v] = struct{}{}
		}
	}
	return New(vars)
}

// FromLiteral creates a sample over one variable holding the single
// configuration that selects the literal.
func FromLiteral(literal int32) *Sample {
	s := New(map[uint32]struct{}{absVar(literal): {}})
	s.AddComplete(NewConfig([]int32{literal}))
	return s
}

// Literals returns the set of literals occurring in the sample.
// Callers must not mutate it.
func (s *Sample) Literals() map[int32]struct{} { return s.literals }

// CompleteConfigs returns the complete configurations in insertion order.
func (s *Sample) CompleteConfigs() []Config { return s.complete }

// PartialConfigs returns the partial configurations in insertion order.
func (s *Sample) PartialConfigs() []Config { return s.partial }

// AddComplete records a configuration known to be complete; no check is
// performed.
func (s *Sample) AddComplete(c Config) {
	s.noteLiterals(c)
	s.complete = append(s.complete, c)
}

// AddPartial records a configuration known to be partial; no check is
// performed.
func (s *Sample) AddPartial(c Config) {
	s.noteLiterals(c)
	s.partial = append(s.partial, c)
}

// Add classifies the configuration against the declared variable set
// and records it.
func (s *Sample) Add(c Config) {
	if s.IsConfigComplete(c) {
		s.AddComplete(c)
	} else {
		s.AddPartial(c)
	}
}

// IsConfigComplete reports whether the configuration mentions every
// declared variable.
func (s *Sample) IsConfigComplete(c Config) bool {
	return c.Len() == len(s.vars)
}

// Iter visits complete configurations first, then partial ones. The
// callback's second argument reports completeness; returning false
// stops the iteration.
func (s *Sample) Iter(fn func(c Config, complete bool) bool) {
	for _, c := range s.complete {
		if !fn(c, true) {
			return
		}
	}
	for _, c := range s.partial {
		if !fn(c, false) {
			return
		}
	}
}

// Len returns the total number of configurations.
func (s *Sample) Len() int { return len(s.complete) + len(s.partial) }

// IsEmpty reports whether the sample holds no configurations.
func (s *Sample) IsEmpty() bool { return s.Len() == 0 }

// Covers reports whether any configuration covers the interaction.
func (s *Sample) Covers(interaction []int32) bool {
	covered := false
	s.Iter(func(c Config, _ bool) bool {
		if c.Covers(interaction) {
			covered = true
			return false
		}
		return true
	})
	return covered
}

// noteLiterals folds a configuration's literals into the sample's set.
func (s *Sample) noteLiterals(c Config) {
	for _, lit := range c.Literals() {
		s.literals[lit] = struct{}{}
	}
}

// absVar returns the variable id of a signed literal.
func absVar(lit int32) uint32 {
	if lit < 0 {
		return uint32(-lit)
	}
	return uint32(lit)
}
