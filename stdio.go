// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"bytes"
	"fmt"
	"io"
)

// Fprint formats the net structure and writes it to w.
func (net *Net) Fprint(w io.Writer) {
	fmt.Fprintf(w, "#\n# net %s\n", net.Name)
	fmt.Fprintf(w, "# %d places, %d transitions\n#\n\n", len(net.Places), len(net.Transitions))

	for k, p := range net.Places {
		fmt.Fprintf(w, "pl %s", p.Name)
		if p.Label != "" {
			fmt.Fprintf(w, " : %s", p.Label)
		}
		if n := net.Initial.Get(k); n != 0 {
			fmt.Fprintf(w, " (%d)", n)
		}
		fmt.Fprint(w, "\n")
	}
	for _, t := range net.Transitions {
		fmt.Fprintf(w, "tr %s", t.Name)
		if t.Label != "" {
			fmt.Fprintf(w, " : %s", t.Label)
		}
		fmt.Fprint(w, " ")
		for _, a := range t.Preset {
			if a.Mult == 1 {
				fmt.Fprintf(w, "%s ", net.Places[a.Pl].Name)
			} else {
				fmt.Fprintf(w, "%s*%d ", net.Places[a.Pl].Name, a.Mult)
			}
		}
		fmt.Fprint(w, "->")
		for _, a := range t.Postset {
			if a.Mult == 1 {
				fmt.Fprintf(w, " %s", net.Places[a.Pl].Name)
			} else {
				fmt.Fprintf(w, " %s*%d", net.Places[a.Pl].Name, a.Mult)
			}
		}
		fmt.Fprint(w, "\n")
	}
}

// String returns a textual representation of the net structure.
func (net *Net) String() string {
	var buf bytes.Buffer
	net.Fprint(&buf)
	return buf.String()
}
