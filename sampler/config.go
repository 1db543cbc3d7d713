package sampler

import "sort"

// Config is a (partial) configuration: selected features appear as
// positive literals, deselected features as negative ones. The literal
// vector is kept sorted and duplicate-free.
type Config struct {
	literals []int32
}

// NewConfig creates a configuration from the given literals.
func NewConfig(literals []int32) Config {
	c := Config{}
	c.Extend(literals...)
	return c
}

// FromDisjoint merges two configurations over disjoint variable sets.
func FromDisjoint(left, right Config) Config {
	merged := make([]int32, 0, len(left.literals)+len(right.literals))
	merged = append(merged, left.literals...)
	merged = append(merged, right.literals...)
	return NewConfig(merged)
}

// Extend adds literals, restoring sortedness and uniqueness.
func (c *Config) Extend(literals ...int32) {
	c.literals = append(c.literals, literals...)
	sort.Slice(c.literals, func(i, j int) bool { return c.literals[i] < c.literals[j] })
	dedup := c.literals[:0]
	for i, lit := range c.literals {
		if i == 0 || lit != c.literals[i-1] {
			dedup = append(dedup, lit)
		}
	}
	c.literals = dedup
}

// Literals returns the sorted literal vector. Callers must not mutate it.
func (c *Config) Literals() []int32 { return c.literals }

// Len returns the number of literals in the configuration.
func (c *Config) Len() int { return len(c.literals) }

// contains reports whether the sorted vector holds lit.
func (c *Config) contains(lit int32) bool {
	i := sort.Search(len(c.literals), func(i int) bool { return c.literals[i] >= lit })
	return i < len(c.literals) && c.literals[i] == lit
}

// ConflictsWith reports whether the configuration contradicts the
// interaction: some interaction literal appears here negated.
func (c *Config) ConflictsWith(interaction []int32) bool {
	for _, lit := range interaction {
		if c.contains(-lit) {
			return true
		}
	}
	return false
}

// Covers reports whether every interaction literal appears in the
// configuration.
func (c *Config) Covers(interaction []int32) bool {
	for _, lit := range interaction {
		if !c.contains(lit) {
			return false
		}
	}
	return true
}

// Equal reports literal-vector equality.
func (c *Config) Equal(other Config) bool {
	if len(c.literals) != len(other.literals) {
		return false
	}
	for i, lit := range c.literals {
		if other.literals[i] != lit {
			return false
		}
	}
	return true
}
