// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package nets

// Reduce applies, to a fixpoint, seven structure-preserving rewrites to net
// and its initial marking, in the fixed order R1->R2->R3->R4->R5->R6->R7,
// restarting the search from R1 every time a rewrite succeeds (fusing one
// pair of places or transitions routinely exposes a new opportunity for any
// of the others). It returns the net's adjacency index, kept coherent with
// the net throughout the whole pass.
func Reduce(net *Net) *Info {
	info := BuildInfo(net)
	for {
		switch {
		case tryR1(net, info):
		case tryR2(net, info):
		case tryR3(net, info):
		case tryR4(net, info):
		case tryR5(net, info):
		case tryR6(net, info):
		case tryR7(net, info):
		default:
			return info
		}
	}
}

// tryR1 looks for series transitions, variant A: an unlabelled, tokenless
// place p with exactly one incoming transition t1 and one outgoing transition
// t2, where t2 is unlabelled, t2's preset is exactly {p:k}, and t1's postset
// holds p with the same multiplicity k. It folds t2's postset into t1's
// postset and deletes t2 and p.
func tryR1(net *Net, info *Info) bool {
	for p, place := range net.Places {
		if place.Label != "" || net.Initial.Get(p) != 0 {
			continue
		}
		in1, out1 := info.Places[p].Incoming, info.Places[p].Outgoing
		if len(in1) != 1 || len(out1) != 1 {
			continue
		}
		t1, k1 := onlyEntry(in1)
		t2, k2 := onlyEntry(out1)
		if k1 != k2 || net.Transitions[t2].Label != "" {
			continue
		}
		if pre := net.Transitions[t2].Preset; len(pre) != 1 || pre[0].Pl != p {
			continue
		}
		if !disjointOrEqual(net.Transitions[t1].Postset, net.Transitions[t2].Postset, p) {
			continue
		}
		for _, a := range net.Transitions[t2].Postset {
			if net.Transitions[t1].Postset.Get(a.Pl) == 0 {
				info.Places[a.Pl].Incoming[t1] = a.Mult
			}
		}
		net.Transitions[t1].Postset = foldMarkings(net.Transitions[t1].Postset, net.Transitions[t2].Postset)
		removeTransition(net, info, t2)
		removePlace(net, info, p)
		return true
	}
	return false
}

// tryR2 is the dual of tryR1 on the preset side: an unlabelled, tokenless
// place p with a single incoming transition t1 (unlabelled, postset exactly
// {p:k}) and a single outgoing transition t2. It folds t1's preset into t2's
// preset and deletes t1 and p.
func tryR2(net *Net, info *Info) bool {
	for p, place := range net.Places {
		if place.Label != "" || net.Initial.Get(p) != 0 {
			continue
		}
		in1, out1 := info.Places[p].Incoming, info.Places[p].Outgoing
		if len(in1) != 1 || len(out1) != 1 {
			continue
		}
		t1, k1 := onlyEntry(in1)
		t2, k2 := onlyEntry(out1)
		if k1 != k2 || net.Transitions[t1].Label != "" {
			continue
		}
		if post := net.Transitions[t1].Postset; len(post) != 1 || post[0].Pl != p {
			continue
		}
		if !disjointOrEqual(net.Transitions[t2].Preset, net.Transitions[t1].Preset, p) {
			continue
		}
		for _, a := range net.Transitions[t1].Preset {
			if net.Transitions[t2].Preset.Get(a.Pl) == 0 {
				info.Places[a.Pl].Outgoing[t2] = a.Mult
			}
		}
		net.Transitions[t2].Preset = foldMarkings(net.Transitions[t2].Preset, net.Transitions[t1].Preset)
		removeTransition(net, info, t1)
		removePlace(net, info, p)
		return true
	}
	return false
}

// tryR3 looks for series places: p1 and p2 sharing a label, joined by the
// single unlabelled transition t that is p1's only outgoing transition, with
// t's preset exactly {p1:1} and postset exactly {p2:1}. It merges p1 into p2
// (taking the max of their initial token counts, and redirecting every other
// producer of p1 to also produce into p2) and deletes t and p1.
func tryR3(net *Net, info *Info) bool {
	for p1, place1 := range net.Places {
		out1 := info.Places[p1].Outgoing
		if len(out1) != 1 {
			continue
		}
		t, _ := onlyEntry(out1)
		if net.Transitions[t].Label != "" {
			continue
		}
		pre, post := net.Transitions[t].Preset, net.Transitions[t].Postset
		if len(pre) != 1 || pre[0].Pl != p1 || pre[0].Mult != 1 {
			continue
		}
		if len(post) != 1 || post[0].Mult != 1 {
			continue
		}
		p2 := post[0].Pl
		if p2 == p1 || net.Places[p2].Label != place1.Label {
			continue
		}
		tok1, tok2 := net.Initial.Get(p1), net.Initial.Get(p2)
		if m := maxInt(tok1, tok2); m != tok2 {
			net.Initial = net.Initial.AddToPlace(p2, m-tok2)
		}
		for trID, mult := range info.Places[p1].Incoming {
			if trID == t {
				continue
			}
			net.Transitions[trID].Postset = net.Transitions[trID].Postset.AddToPlace(p2, mult)
			info.Places[p2].Incoming[trID] = net.Transitions[trID].Postset.Get(p2)
		}
		removeTransition(net, info, t)
		removePlace(net, info, p1)
		return true
	}
	return false
}

// tryR4 looks for a self-loop place: an unlabelled place p whose incoming and
// outgoing adjacency maps are identical, and which is either dead (no
// neighbours) or guaranteed never to block any neighbour (the initial
// marking holds at least as many tokens as the largest multiplicity any
// transition consumes). It drops p.
func tryR4(net *Net, info *Info) bool {
	for p, place := range net.Places {
		if place.Label != "" {
			continue
		}
		in, out := info.Places[p].Incoming, info.Places[p].Outgoing
		if !mapsEqual(in, out) {
			continue
		}
		if len(out) == 0 {
			removePlace(net, info, p)
			return true
		}
		maxConsumed := 0
		for _, v := range out {
			if v > maxConsumed {
				maxConsumed = v
			}
		}
		if net.Initial.Get(p) >= maxConsumed {
			removePlace(net, info, p)
			return true
		}
	}
	return false
}

// tryR5 looks for a self-loop transition: an unlabelled transition whose
// preset equals its postset, including the degenerate case of an empty
// preset/postset (a dead transition). It deletes t.
func tryR5(net *Net, info *Info) bool {
	for t, tr := range net.Transitions {
		if tr.Label != "" {
			continue
		}
		if tr.Preset.Equal(tr.Postset) {
			removeTransition(net, info, t)
			return true
		}
	}
	return false
}

// tryR6 looks for parallel places: two distinct places with identical
// labels, identical incoming and outgoing adjacency, and identical initial
// token counts. It deletes the second one.
func tryR6(net *Net, info *Info) bool {
	for p1 := 0; p1 < len(net.Places); p1++ {
		for p2 := p1 + 1; p2 < len(net.Places); p2++ {
			if net.Places[p1].Label != net.Places[p2].Label {
				continue
			}
			if !mapsEqual(info.Places[p1].Incoming, info.Places[p2].Incoming) {
				continue
			}
			if !mapsEqual(info.Places[p1].Outgoing, info.Places[p2].Outgoing) {
				continue
			}
			if net.Initial.Get(p1) != net.Initial.Get(p2) {
				continue
			}
			removePlace(net, info, p2)
			return true
		}
	}
	return false
}

// tryR7 looks for parallel transitions: two distinct transitions with
// identical labels, presets and postsets. It deletes the second one.
func tryR7(net *Net, info *Info) bool {
	for t1 := 0; t1 < len(net.Transitions); t1++ {
		for t2 := t1 + 1; t2 < len(net.Transitions); t2++ {
			a, b := net.Transitions[t1], net.Transitions[t2]
			if a.Label != b.Label {
				continue
			}
			if !a.Preset.Equal(b.Preset) || !a.Postset.Equal(b.Postset) {
				continue
			}
			removeTransition(net, info, t2)
			return true
		}
	}
	return false
}

// onlyEntry returns the single (key, value) pair of a one-element map. The
// rewrites above only call it after checking len(m) == 1.
func onlyEntry(m map[int]int) (int, int) {
	for k, v := range m {
		return k, v
	}
	return 0, 0
}

// disjointOrEqual reports whether, for every place q other than excl that
// appears in both m1 and m2, the two multiplicities agree. This is the
// compatibility side-condition of R1/R2: the two halves of the merged
// postset/preset may only disagree on the place being eliminated.
func disjointOrEqual(m1, m2 Marking, excl int) bool {
	for _, a := range m2 {
		if a.Pl == excl {
			continue
		}
		if v := m1.Get(a.Pl); v != 0 && v != a.Mult {
			return false
		}
	}
	return true
}

// foldMarkings returns base extended with every entry of other whose place is
// not already present in base; entries already in base are left untouched.
func foldMarkings(base, other Marking) Marking {
	res := base.Clone()
	for _, a := range other {
		if base.Get(a.Pl) == 0 {
			res = res.AddToPlace(a.Pl, a.Mult)
		}
	}
	return res
}

func mapsEqual(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func removeTransition(net *Net, info *Info, tr int) {
	net.RemoveTransition(tr)
	info.RemoveTransition(tr)
}

func removePlace(net *Net, info *Info, pl int) {
	net.RemovePlace(pl)
	info.RemovePlace(pl)
}
