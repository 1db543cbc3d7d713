package nnf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
)

// ParseD4 reads a circuit in the d4 dialect from the given lines.
//
// Node declarations (`o|a|t|f <id> 0`) may be interleaved with edge
// lines (`<from> <to> [literals...] 0`). An edge without literals is a
// plain parent→child edge; an edge with literals becomes an
// intermediate And over the target and the literal vertices. The first
// declared node is the root.
func ParseD4(lines []string) (*ddnnf.Graph, error) {
	g := ddnnf.NewGraph()
	byID := make(map[int]ddnnf.Vertex)
	rootID := 0

	for lineNo, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[len(fields)-1] != "0" {
			return nil, errors.Wrapf(ErrMalformed, "line %d: missing 0 terminator", lineNo+1)
		}
		body := fields[:len(fields)-1]

		switch fields[0] {
		case "o", "a", "t", "f":
			if len(body) != 2 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: node arity", lineNo+1)
			}
			id, err := strconv.Atoi(body[1])
			if err != nil || id <= 0 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: node id %q", lineNo+1, body[1])
			}
			if _, dup := byID[id]; dup {
				return nil, errors.Wrapf(ErrMalformed, "line %d: duplicate node id %d", lineNo+1, id)
			}
			var kind ddnnf.NodeType
			switch fields[0] {
			case "o":
				kind = ddnnf.OrNode
			case "a":
				kind = ddnnf.AndNode
			case "t":
				kind = ddnnf.TrueNode
			case "f":
				kind = ddnnf.FalseNode
			}
			byID[id] = g.AddVertex(kind)
			if rootID == 0 {
				rootID = id
			}

		default:
			if len(body) < 2 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: edge arity", lineNo+1)
			}
			from, err1 := strconv.Atoi(body[0])
			to, err2 := strconv.Atoi(body[1])
			if err1 != nil || err2 != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: edge endpoints %q %q", lineNo+1, body[0], body[1])
			}
			parent, okFrom := byID[from]
			child, okTo := byID[to]
			if !okFrom || !okTo {
				return nil, errors.Wrapf(ErrMalformed, "line %d: edge to undeclared node", lineNo+1)
			}

			if len(body) == 2 {
				if err := g.AddEdge(parent, child); err != nil {
					return nil, err
				}
				continue
			}

			// Literals on the edge: interpose And(target, literals...).
			// A True target adds nothing to the conjunction and is
			// dropped, keeping grafted subcircuits constant-free.
			and := g.AddVertex(ddnnf.AndNode)
			if kind, kindErr := g.Kind(child); kindErr != nil {
				return nil, kindErr
			} else if kind != ddnnf.TrueNode {
				if err := g.AddEdge(and, child); err != nil {
					return nil, err
				}
			}
			for _, f := range body[2:] {
				lit, convErr := strconv.ParseInt(f, 10, 32)
				if convErr != nil || lit == 0 {
					return nil, errors.Wrapf(ErrMalformed, "line %d: edge literal %q", lineNo+1, f)
				}
				if err := g.AddEdge(and, g.AddLiteral(int32(lit))); err != nil {
					return nil, err
				}
			}
			if err := g.AddEdge(parent, and); err != nil {
				return nil, err
			}
		}
	}
	if rootID == 0 {
		return nil, ErrEmpty
	}

	if err := g.SetRoot(byID[rootID]); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.RecomputeSupport()
	return g, nil
}
