// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package kripke_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	nets "github.com/erwanm/petrikripke"
	"github.com/erwanm/petrikripke/kripke"
)

// Not 1-safe: two places, one transition A:{p0}->{p0,p1}, initial {p0:1}; with
// a 1-safeness bound, expansion must report a KSafenessViolation naming place
// p1 and transition 0 the first time firing A would leave two tokens... here
// it is p0 itself that stays at 1 and p1 climbs past the bound on repeated
// firings, but a single firing already produces {p0:1,p1:1}, which is safe;
// firing again keeps p0 at 1 (already consumed and reproduced) and pushes p1
// to 2, which is unsafe.
func TestExpandKSafenessViolation(t *testing.T) {
	net := &nets.Net{Name: "not-1-safe"}
	p0 := net.AddPlace("p0", "")
	p1 := net.AddPlace("p1", "")
	net.AddTransition("A", "", nets.Marking{{Pl: p0, Mult: 1}}, nets.Marking{{Pl: p0, Mult: 1}, {Pl: p1, Mult: 1}})
	initial := nets.Marking{{Pl: p0, Mult: 1}}

	k := 1
	_, err := kripke.Expand(net, initial, nil, &k)
	require.Error(t, err)
	var violation *kripke.KSafenessViolation
	require.ErrorAs(t, err, &violation)
	require.Equal(t, p1, violation.Place)
	require.Equal(t, 0, violation.Transition)
}

// Lock/unlock mutex: the classic two-process mutual-exclusion net. Expansion
// without a safeness bound must succeed and never reach a state where both
// critical sections are occupied at once.
func TestExpandMutexNeverBothInCriticalSection(t *testing.T) {
	net := &nets.Net{Name: "mutex"}
	au := net.AddPlace("A_U", "")
	al := net.AddPlace("A_L", "")
	ctl := net.AddPlace("CTL", "")
	bu := net.AddPlace("B_U", "")
	bl := net.AddPlace("B_L", "")
	net.AddTransition("lockA", "lock", nets.Marking{{Pl: au, Mult: 1}, {Pl: ctl, Mult: 1}}, nets.Marking{{Pl: al, Mult: 1}})
	net.AddTransition("lockB", "lock", nets.Marking{{Pl: bu, Mult: 1}, {Pl: ctl, Mult: 1}}, nets.Marking{{Pl: bl, Mult: 1}})
	net.AddTransition("unlockA", "unlock", nets.Marking{{Pl: al, Mult: 1}}, nets.Marking{{Pl: au, Mult: 1}, {Pl: ctl, Mult: 1}})
	net.AddTransition("unlockB", "unlock", nets.Marking{{Pl: bl, Mult: 1}}, nets.Marking{{Pl: bu, Mult: 1}, {Pl: ctl, Mult: 1}})
	initial := nets.Marking{{Pl: au, Mult: 1}, {Pl: ctl, Mult: 1}, {Pl: bu, Mult: 1}}

	ks, err := kripke.Expand(net, initial, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, ks.States)

	for _, rec := range ks.States {
		require.False(t, rec.State.Marking.Get(al) > 0 && rec.State.Marking.Get(bl) > 0,
			"both critical sections occupied at once in state %+v", rec.State)
	}
}

// Tagging: when "lock" is in the tagged set, every state reached by firing a
// lock transition carries that tag; states reached by an untagged transition
// do not.
func TestExpandTagging(t *testing.T) {
	net := &nets.Net{Name: "tag"}
	p0 := net.AddPlace("p0", "")
	p1 := net.AddPlace("p1", "")
	net.AddTransition("t0", "go", nets.Marking{{Pl: p0, Mult: 1}}, nets.Marking{{Pl: p1, Mult: 1}})
	net.AddTransition("t1", "", nets.Marking{{Pl: p1, Mult: 1}}, nets.Marking{{Pl: p0, Mult: 1}})
	initial := nets.Marking{{Pl: p0, Mult: 1}}

	ks, err := kripke.Expand(net, initial, map[string]bool{"go": true}, nil)
	require.NoError(t, err)
	require.Len(t, ks.States, 2)
	require.Equal(t, "", ks.States[0].State.Tag)
	require.Equal(t, "go", ks.States[1].State.Tag)
}

// Outgoing edges never contain duplicates, even when more than one firing
// reaches the same successor.
func TestExpandDeduplicatesOutgoing(t *testing.T) {
	net := &nets.Net{Name: "dedup"}
	p0 := net.AddPlace("p0", "")
	p1 := net.AddPlace("p1", "")
	net.AddTransition("a", "", nets.Marking{{Pl: p0, Mult: 1}}, nets.Marking{{Pl: p1, Mult: 1}})
	net.AddTransition("b", "", nets.Marking{{Pl: p0, Mult: 1}}, nets.Marking{{Pl: p1, Mult: 1}})
	initial := nets.Marking{{Pl: p0, Mult: 1}}

	ks, err := kripke.Expand(net, initial, nil, nil)
	require.NoError(t, err)
	require.Len(t, ks.States, 2)
	require.Len(t, ks.States[0].Outgoing, 1)
}
