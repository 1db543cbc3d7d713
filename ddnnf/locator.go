package ddnnf

import "sort"

// ClosestUnsplittableAnd locates the And vertex whose subcircuit can
// locally absorb the given clause: the deepest And whose literal
// support touches the clause, subject to remaining an ancestor of all
// smaller candidates that touch the clause (so that splicing below it
// is semantically safe).
//
// A support matches a clause literal by its signed value: a subcircuit
// mentioning only ¬x is not a candidate for a clause containing x. The
// two polarities of a variable therefore resolve to different vertices
// when they occur under incomparable Ands, which is how compiled
// implication chains behave.
//
// The empty clause returns the sentinel (zero Vertex, nil) that callers
// use to short-circuit. If no And vertex matches, the root is returned.
//
// Candidates are ranked by descending support size (closest to the
// leaves first); ties keep breadth-first discovery order, root-ward
// first. The walk descends to the next candidate only while every later
// candidate's support is a subset of the current one, and returns the
// last candidate for which that held.
//
// The returned support is a sorted snapshot, detached from the cache.
// Complexity: O(V+E) traversal plus O(k² · S) subset checks over the k
// candidates.
func (g *Graph) ClosestUnsplittableAnd(clause []int32) (Vertex, []int32) {
	if len(clause) == 0 {
		return Vertex{}, nil
	}

	// 1. BFS from the root collecting And vertices whose support
	//    contains any clause literal.
	type candidate struct {
		v       Vertex
		support map[int32]struct{}
	}
	var candidates []candidate
	visited := map[Vertex]struct{}{g.root: {}}
	queue := []Vertex{g.root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if !g.valid(v) {
			continue
		}
		if g.slots[v.slot].kind == AndNode {
			if sup, ok := g.support[v]; ok && supportIntersects(sup, clause) {
				candidates = append(candidates, candidate{v: v, support: sup})
			}
		}
		for _, c := range g.slots[v.slot].children {
			if _, ok := visited[c]; !ok {
				visited[c] = struct{}{}
				queue = append(queue, c)
			}
		}
	}
	if len(candidates) == 0 {
		if sup, ok := g.support[g.root]; ok {
			return g.root, sortedSupport(sup)
		}
		return g.root, nil
	}

	// 2. Descending support size; stable keeps discovery order on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].support) > len(candidates[j].support)
	})

	// 3. Advance while all later candidates nest inside the current one.
	chosen := candidates[0]
	for i := range candidates {
		nested := true
		for _, later := range candidates[i+1:] {
			if !isSubset(later.support, candidates[i].support) {
				nested = false
				break
			}
		}
		if !nested {
			break
		}
		chosen = candidates[i]
	}

	return chosen.v, sortedSupport(chosen.support)
}

// supportIntersects reports whether the support contains any clause
// literal, matched on the signed value.
func supportIntersects(support map[int32]struct{}, clause []int32) bool {
	for _, lit := range clause {
		if _, ok := support[lit]; ok {
			return true
		}
	}
	return false
}

// isSubset reports whether a ⊆ b over signed literal values.
func isSubset(a, b map[int32]struct{}) bool {
	if len(a) > len(b) {
		return false
	}
	for lit := range a {
		if _, ok := b[lit]; !ok {
			return false
		}
	}
	return true
}

// sortedSupport snapshots a support set as an ascending slice.
func sortedSupport(support map[int32]struct{}) []int32 {
	out := make([]int32, 0, len(support))
	for lit := range support {
		out = append(out, lit)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// abs32 returns |v| for a signed literal.
func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
