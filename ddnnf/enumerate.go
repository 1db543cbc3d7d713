package ddnnf

import "sort"

// Enumerate materializes the complete configurations consistent with a
// partial assignment: every model of the circuit over features 1..n,
// with synthetic literals dropped and variables the circuit leaves free
// expanded into both polarities.
//
// A limit > 0 bounds the number of configurations; if the count under
// the assumptions exceeds it, ErrEnumerationLimit is returned before
// any materialization. A limit <= 0 means unbounded - configuration
// counts grow exponentially, so use with care.
//
// Each configuration is sorted by variable id. The order of
// configurations follows the traversal and is deterministic.
func (d *Ddnnf) Enumerate(assumptions []int32, limit int) ([][]int32, error) {
	if len(d.Nodes) == 0 {
		return nil, nil
	}
	if limit > 0 {
		count := d.Query(assumptions)
		if !count.IsInt64() || count.Int64() > int64(limit) {
			return nil, ErrEnumerationLimit
		}
	}

	assumed := make(map[int32]struct{}, len(assumptions))
	for _, lit := range assumptions {
		assumed[lit] = struct{}{}
	}

	// 1. Collect partial configurations bottom-up. Decomposability makes
	//    And a plain concatenation of disjoint parts; determinism makes
	//    Or a duplicate-free union.
	memo := make([][][]int32, len(d.Nodes))
	for i := range d.Nodes {
		n := &d.Nodes[i]
		switch n.Type {
		case LiteralNode:
			if _, conflict := assumed[-n.Literal]; conflict {
				memo[i] = nil
			} else {
				memo[i] = [][]int32{{n.Literal}}
			}
		case TrueNode:
			memo[i] = [][]int32{{}}
		case FalseNode:
			memo[i] = nil
		case OrNode:
			var union [][]int32
			for _, c := range n.Children {
				union = append(union, memo[c]...)
			}
			memo[i] = union
		case AndNode:
			product := [][]int32{{}}
			for _, c := range n.Children {
				if len(memo[c]) == 0 {
					product = nil
					break
				}
				next := make([][]int32, 0, len(product)*len(memo[c]))
				for _, left := range product {
					for _, right := range memo[c] {
						merged := make([]int32, 0, len(left)+len(right))
						merged = append(merged, left...)
						merged = append(merged, right...)
						next = append(next, merged)
					}
				}
				product = next
			}
			memo[i] = product
		}
	}

	// 2. Project away synthetic literals and complete each configuration
	//    over the feature range, honoring the assumptions for variables
	//    the circuit leaves free.
	var out [][]int32
	for _, partial := range memo[len(d.Nodes)-1] {
		seen := make(map[int32]struct{}, len(partial))
		config := make([]int32, 0, d.NumberOfVariables)
		for _, lit := range partial {
			if abs32(lit) > SyntheticLiteralOffset {
				continue
			}
			if _, dup := seen[abs32(lit)]; dup {
				continue
			}
			seen[abs32(lit)] = struct{}{}
			config = append(config, lit)
		}

		expanded := [][]int32{config}
		for f := int32(1); f <= int32(d.NumberOfVariables); f++ {
			if _, ok := seen[f]; ok {
				continue
			}
			var polarities []int32
			if _, pos := assumed[f]; pos {
				polarities = []int32{f}
			} else if _, neg := assumed[-f]; neg {
				polarities = []int32{-f}
			} else {
				polarities = []int32{f, -f}
			}
			next := make([][]int32, 0, len(expanded)*len(polarities))
			for _, cfg := range expanded {
				for _, p := range polarities {
					withVar := make([]int32, len(cfg), len(cfg)+1)
					copy(withVar, cfg)
					next = append(next, append(withVar, p))
				}
			}
			expanded = next
			if limit > 0 && len(out)+len(expanded) > limit {
				return nil, ErrEnumerationLimit
			}
		}
		for _, cfg := range expanded {
			sort.Slice(cfg, func(i, j int) bool { return abs32(cfg[i]) < abs32(cfg[j]) })
			out = append(out, cfg)
		}
		if limit > 0 && len(out) > limit {
			return nil, ErrEnumerationLimit
		}
	}
	return out, nil
}
