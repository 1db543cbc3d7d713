package nnf

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
)

// ParseC2D reads a circuit in the c2d dialect from the given lines.
//
// Every node line appends one vertex; children reference earlier lines.
// `A 0` becomes a True vertex and `O 0 0` a False vertex, so And/Or
// vertices in the resulting graph always have children. The last line
// is the root. Literal vertices are unified per signed value.
func ParseC2D(lines []string) (*ddnnf.Graph, error) {
	if len(lines) == 0 {
		return nil, ErrEmpty
	}
	header := strings.Fields(lines[0])
	if len(header) != 4 || header[0] != "nnf" {
		return nil, errors.Wrap(ErrMalformed, "c2d header must be `nnf <nodes> <edges> <vars>`")
	}
	declared, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "c2d header node count %q", header[1])
	}

	g := ddnnf.NewGraph()
	vertices := make([]ddnnf.Vertex, 0, declared)

	for lineNo, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		var v ddnnf.Vertex
		switch fields[0] {
		case "L":
			if len(fields) != 2 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: literal arity", lineNo+2)
			}
			lit, convErr := strconv.ParseInt(fields[1], 10, 32)
			if convErr != nil || lit == 0 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: literal %q", lineNo+2, fields[1])
			}
			v = g.AddLiteral(int32(lit))
		case "A":
			if len(fields) < 2 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: and arity", lineNo+2)
			}
			children, convErr := parseIndices(fields[1:])
			if convErr != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: %v", lineNo+2, convErr)
			}
			if len(children) == 0 {
				v = g.AddVertex(ddnnf.TrueNode)
				break
			}
			v = g.AddVertex(ddnnf.AndNode)
			if err := addChildEdges(g, v, vertices, children, lineNo+2); err != nil {
				return nil, err
			}
		case "O":
			if len(fields) < 3 {
				return nil, errors.Wrapf(ErrMalformed, "line %d: or arity", lineNo+2)
			}
			// fields[1] is the decision variable, unused here.
			children, convErr := parseIndices(fields[2:])
			if convErr != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: %v", lineNo+2, convErr)
			}
			if len(children) == 0 {
				v = g.AddVertex(ddnnf.FalseNode)
				break
			}
			v = g.AddVertex(ddnnf.OrNode)
			if err := addChildEdges(g, v, vertices, children, lineNo+2); err != nil {
				return nil, err
			}
		default:
			return nil, errors.Wrapf(ErrMalformed, "line %d: unknown c2d node %q", lineNo+2, fields[0])
		}
		vertices = append(vertices, v)
	}
	if len(vertices) == 0 {
		return nil, ErrEmpty
	}

	if err := g.SetRoot(vertices[len(vertices)-1]); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.RecomputeSupport()
	return g, nil
}

// parseIndices reads `<count> <idx...>` and checks the arity.
func parseIndices(fields []string) ([]int, error) {
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, errors.Errorf("child count %q", fields[0])
	}
	if len(fields)-1 != count {
		return nil, errors.Errorf("declared %d children, found %d", count, len(fields)-1)
	}
	out := make([]int, count)
	for i, f := range fields[1:] {
		idx, convErr := strconv.Atoi(f)
		if convErr != nil {
			return nil, errors.Errorf("child index %q", f)
		}
		out[i] = idx
	}
	return out, nil
}

// addChildEdges wires v to the already-parsed child vertices.
func addChildEdges(g *ddnnf.Graph, v ddnnf.Vertex, vertices []ddnnf.Vertex, children []int, lineNo int) error {
	for _, idx := range children {
		if idx < 0 || idx >= len(vertices) {
			return errors.Wrapf(ErrMalformed, "line %d: forward or out-of-range child %d", lineNo, idx)
		}
		if err := g.AddEdge(v, vertices[idx]); err != nil {
			return err
		}
	}
	return nil
}
