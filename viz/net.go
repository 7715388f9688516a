// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

/*
Package viz renders a net's structure and a Kripke structure's reachability
graph as Graphviz DOT, in the same Fprint(io.Writer)/String() convention the
rest of this module uses for textual output.
*/
package viz

import (
	"bytes"
	"fmt"
	"io"

	nets "github.com/erwanm/petrikripke"
)

// FprintNet writes a DOT digraph of net to w: one circle node per place
// (annotated with its label and, if marked, its initial token count), one
// box node per transition, and arcs following each transition's preset and
// postset.
func FprintNet(w io.Writer, net *nets.Net) {
	fmt.Fprintf(w, "digraph %q {\n", net.Name)
	fmt.Fprint(w, "  rankdir=LR;\n")

	for k, p := range net.Places {
		display := p.Label
		if display == "" {
			display = p.Name
		}
		label := fmt.Sprintf("p%d:(%s)", k, display)
		if n := net.Initial.Get(k); n > 0 {
			label = fmt.Sprintf("%s\\ntks:%d", label, n)
		}
		fmt.Fprintf(w, "  p%d [shape=circle, label=\"%s\"];\n", k, label)
	}
	for k, t := range net.Transitions {
		fmt.Fprintf(w, "  t%d [shape=box, label=%q];\n", k, t.Name)
		for _, a := range t.Preset {
			fmt.Fprintf(w, "  p%d -> t%d", a.Pl, k)
			if a.Mult != 1 {
				fmt.Fprintf(w, " [label=%q]", fmt.Sprintf("%d", a.Mult))
			}
			fmt.Fprint(w, ";\n")
		}
		for _, a := range t.Postset {
			fmt.Fprintf(w, "  t%d -> p%d", k, a.Pl)
			if a.Mult != 1 {
				fmt.Fprintf(w, " [label=%q]", fmt.Sprintf("%d", a.Mult))
			}
			fmt.Fprint(w, ";\n")
		}
	}
	fmt.Fprint(w, "}\n")
}

// Net returns a DOT digraph of net as a string.
func Net(net *nets.Net) string {
	var buf bytes.Buffer
	FprintNet(&buf, net)
	return buf.String()
}
