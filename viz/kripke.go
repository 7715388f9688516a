// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package viz

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	nets "github.com/erwanm/petrikripke"
	"github.com/erwanm/petrikripke/kripke"
)

// FprintKripke writes a DOT digraph of ks to w: one node per state, labelled
// with a newline-separated list of "@pID(label):count" for every marked
// place plus, if the state carries a tag, a trailing "prev:<tag>" line, an
// invisible "start" node pointing at state 0, and one edge per outgoing
// transition.
func FprintKripke(w io.Writer, net *nets.Net, ks *kripke.Structure) {
	fmt.Fprint(w, "digraph KripkeStructure {\n")
	fmt.Fprint(w, "  rankdir=LR;\n")
	fmt.Fprint(w, "  node [shape=circle];\n")
	fmt.Fprint(w, "  start [shape=point];\n")
	if len(ks.States) > 0 {
		fmt.Fprint(w, "  start -> s0;\n")
	}

	for i, rec := range ks.States {
		fmt.Fprintf(w, "  s%d [label=\"%s\"];\n", i, doapLabel(net, rec.State))
	}
	for i, rec := range ks.States {
		for _, j := range rec.Outgoing {
			fmt.Fprintf(w, "  s%d -> s%d;\n", i, j)
		}
	}
	fmt.Fprint(w, "}\n")
}

// doapLabel builds a state's DOT label: one "@pID(label):count" line per
// place holding tokens, in marking order, followed by "prev:<tag>" when the
// state carries a tag.
func doapLabel(net *nets.Net, st kripke.State) string {
	var lines []string
	for _, a := range st.Marking {
		if a.Mult <= 0 {
			continue
		}
		display := net.Places[a.Pl].Label
		if display == "" {
			display = net.Places[a.Pl].Name
		}
		lines = append(lines, fmt.Sprintf("@p%d(%s):%d", a.Pl, display, a.Mult))
	}
	if st.HasTag() {
		lines = append(lines, fmt.Sprintf("prev:%s", st.Tag))
	}
	return strings.Join(lines, "\\n")
}

// Kripke returns a DOT digraph of ks as a string.
func Kripke(net *nets.Net, ks *kripke.Structure) string {
	var buf bytes.Buffer
	FprintKripke(&buf, net, ks)
	return buf.String()
}
