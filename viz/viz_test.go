// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package viz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	nets "github.com/erwanm/petrikripke"
	"github.com/erwanm/petrikripke/kripke"
	"github.com/erwanm/petrikripke/viz"
)

func TestNetIncludesPlacesAndTransitions(t *testing.T) {
	net := &nets.Net{Name: "sample"}
	p0 := net.AddPlace("p0", "")
	p1 := net.AddPlace("p1", "")
	net.AddTransition("t0", "", nets.Marking{{Pl: p0, Mult: 1}}, nets.Marking{{Pl: p1, Mult: 2}})
	net.Initial = nets.Marking{{Pl: p0, Mult: 1}}

	out := viz.Net(net)
	require.True(t, strings.HasPrefix(out, "digraph \"sample\""))
	require.Contains(t, out, `label="p0:(p0)\ntks:1"`)
	require.Contains(t, out, "p0 -> t0")
	require.Contains(t, out, `t0 -> p1 [label="2"]`)
}

func TestKripkeIncludesStatesAndEdges(t *testing.T) {
	net := &nets.Net{Name: "sample"}
	net.AddPlace("p0", "")
	net.AddPlace("p1", "locked")

	ks := &kripke.Structure{States: []kripke.Record{
		{State: kripke.State{Marking: nets.Marking{{Pl: 0, Mult: 1}}, Tag: ""}, Outgoing: []int{1}},
		{State: kripke.State{Marking: nets.Marking{{Pl: 1, Mult: 1}}, Tag: "lock"}, Outgoing: nil},
	}}

	out := viz.Kripke(net, ks)
	require.Contains(t, out, "start -> s0")
	require.Contains(t, out, "s0 -> s1")
	require.Contains(t, out, `label="@p0(p0):1"`)
	require.Contains(t, out, `label="@p1(locked):1\nprev:lock"`)
}
