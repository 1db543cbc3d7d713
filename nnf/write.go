package nnf

import (
	"fmt"
	"io"

	"github.com/raabh/d-dnnf-reasoner/ddnnf"
)

// WriteC2D serializes a linearized circuit in the c2d dialect. The node
// array is already a post-order listing, so it maps one line per node;
// True serializes as `A 0` and False as `O 0 0`. Synthetic literals are
// written as-is; re-parsing unifies literal lines by value, so distinct
// same-valued auxiliaries from separate edits collapse on a round trip.
// Counts are preserved.
func WriteC2D(w io.Writer, nodes []ddnnf.Node, numVars uint32) error {
	edges := 0
	for i := range nodes {
		edges += len(nodes[i].Children)
	}
	if _, err := fmt.Fprintf(w, "nnf %d %d %d\n", len(nodes), edges, numVars); err != nil {
		return err
	}
	for i := range nodes {
		var err error
		switch nodes[i].Type {
		case ddnnf.LiteralNode:
			_, err = fmt.Fprintf(w, "L %d\n", nodes[i].Literal)
		case ddnnf.AndNode:
			_, err = fmt.Fprintf(w, "A%s\n", renderChildren(nodes[i].Children))
		case ddnnf.OrNode:
			_, err = fmt.Fprintf(w, "O 0%s\n", renderChildren(nodes[i].Children))
		case ddnnf.TrueNode:
			_, err = fmt.Fprintln(w, "A 0")
		case ddnnf.FalseNode:
			_, err = fmt.Fprintln(w, "O 0 0")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// renderChildren renders ` <count> <idx...>`.
func renderChildren(children []int) string {
	out := fmt.Sprintf(" %d", len(children))
	for _, c := range children {
		out += fmt.Sprintf(" %d", c)
	}
	return out
}
