// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package ctl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erwanm/petrikripke/ctl"
	"github.com/erwanm/petrikripke/kripke"
)

// tagIs is a trivial AtomicProposition used only by these tests: it holds
// at a state whose tag equals want.
type tagIs struct{ want string }

func (t tagIs) IsSatisfied(s kripke.State) bool { return s.Tag == t.want }

// chain builds a 3-state linear Kripke structure 0 -> 1 -> 2, with state 1
// tagged "mid", and state 2 a dead end (no outgoing edges).
func chain() *kripke.Structure {
	return &kripke.Structure{States: []kripke.Record{
		{State: kripke.State{Tag: ""}, Outgoing: []int{1}},
		{State: kripke.State{Tag: "mid"}, Outgoing: []int{2}},
		{State: kripke.State{Tag: ""}, Outgoing: nil},
	}}
}

func TestModelCheckerBooleanConnectives(t *testing.T) {
	mc := ctl.NewModelChecker(chain())
	mid := ctl.Atomic{Prop: tagIs{"mid"}}

	require.True(t, mc.Holds(ctl.True{}, 0))
	require.False(t, mc.Holds(ctl.False{}, 0))
	require.True(t, mc.Holds(ctl.Not{F: mid}, 0))
	require.True(t, mc.Holds(mid, 1))
	require.True(t, mc.Holds(ctl.And{L: ctl.True{}, R: mid}, 1))
	require.False(t, mc.Holds(ctl.And{L: ctl.True{}, R: mid}, 0))
	require.True(t, mc.Holds(ctl.Or{L: mid, R: ctl.False{}}, 1))
	require.True(t, mc.Holds(ctl.Implies{L: ctl.False{}, R: mid}, 0))
}

func TestModelCheckerEX(t *testing.T) {
	mc := ctl.NewModelChecker(chain())
	mid := ctl.Atomic{Prop: tagIs{"mid"}}

	require.True(t, mc.Holds(ctl.EX{F: mid}, 0))
	require.False(t, mc.Holds(ctl.EX{F: mid}, 1))
	require.True(t, mc.Holds(ctl.AX{F: mid}, 0))
}

func TestModelCheckerEFAndAG(t *testing.T) {
	mc := ctl.NewModelChecker(chain())
	mid := ctl.Atomic{Prop: tagIs{"mid"}}

	require.True(t, mc.Holds(ctl.EF{F: mid}, 0))
	require.False(t, mc.Holds(ctl.EF{F: mid}, 2))
	require.True(t, mc.Holds(ctl.AG{F: ctl.Not{F: ctl.Atomic{Prop: tagIs{"never"}}}}, 0))
}

func TestModelCheckerEUAndAU(t *testing.T) {
	mc := ctl.NewModelChecker(chain())
	mid := ctl.Atomic{Prop: tagIs{"mid"}}
	root := ctl.Atomic{Prop: tagIs{""}}

	require.True(t, mc.Holds(ctl.EU{L: root, R: mid}, 0))
	require.True(t, mc.Holds(ctl.AU{L: root, R: mid}, 0))
}

func TestModelCheckerEGAndAF(t *testing.T) {
	// A cycle 0 <-> 1 where only 0 is tagged "loop": EG of a tautology holds
	// at 0, since the cycle is an infinite path, and AF loop holds at 1,
	// whose only successor is 0.
	ks := &kripke.Structure{States: []kripke.Record{
		{State: kripke.State{Tag: "loop"}, Outgoing: []int{1}},
		{State: kripke.State{Tag: ""}, Outgoing: []int{0}},
	}}
	mc := ctl.NewModelChecker(ks)
	loop := ctl.Atomic{Prop: tagIs{"loop"}}

	require.True(t, mc.Holds(ctl.EG{F: ctl.Or{L: loop, R: ctl.Not{F: loop}}}, 0))
	require.True(t, mc.Holds(ctl.AF{F: loop}, 1))
}

func TestParseFormula(t *testing.T) {
	leaf := func(src []rune, pos int) (ctl.Formula, int, error) {
		// test-only leaf: recognises the literal identifier "p" as an atom.
		if pos+1 <= len(src) && src[pos] == 'p' {
			return ctl.Atomic{Prop: tagIs{"p"}}, pos + 1, nil
		}
		return nil, pos, errUnexpectedLeaf
	}

	f, err := ctl.ParseFormula("AG (p => EF !p)", leaf)
	require.NoError(t, err)
	require.IsType(t, ctl.AG{}, f)

	_, err = ctl.ParseFormula("AG (p", leaf)
	require.Error(t, err)
}

type parseError string

func (e parseError) Error() string { return string(e) }

var errUnexpectedLeaf = parseError("unexpected leaf")
