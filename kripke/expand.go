// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package kripke

import (
	nets "github.com/erwanm/petrikripke"
)

// stateKey interns a (marking, tag) pair for the deduplication table. Two
// keys compare equal iff the underlying markings and tags are equal, since
// nets.Handle is itself the interned, comparable form of a Marking.
type stateKey struct {
	marking nets.Handle
	tag     string
}

// Expand builds the Kripke structure reachable from initial by repeatedly
// firing net's transitions. tagged names the set of transition labels whose
// firing should be recorded as a state's tag (the empty label is never
// tagged, since it denotes a silent transition). If k is non-nil, any
// reachable marking holding more than *k tokens in some place aborts
// expansion with a *KSafenessViolation naming the offending place and
// transition; no partial structure is returned in that case.
//
// States are discovered breadth-first and numbered in discovery order,
// starting at 0 for the initial state; outgoing edges are deduplicated so
// that firing several transitions into the same successor still produces a
// single edge.
func Expand(net *nets.Net, initial nets.Marking, tagged map[string]bool, k *int) (*Structure, error) {
	seen := map[stateKey]int{}
	ks := &Structure{}

	h0, err := initial.Unique()
	if err != nil {
		return nil, err
	}
	ks.States = append(ks.States, Record{State: State{Marking: initial.Clone()}})
	seen[stateKey{marking: h0}] = 0

	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		current := ks.States[i].State.Marking

		for tr := range net.Transitions {
			next, ok := net.TryFire(current, tr)
			if !ok {
				continue
			}
			if k != nil {
				for _, a := range next {
					if a.Mult > *k {
						return nil, &KSafenessViolation{Place: a.Pl, Transition: tr}
					}
				}
			}
			tag := ""
			if lbl := net.Transitions[tr].Label; lbl != "" && tagged[lbl] {
				tag = lbl
			}
			h, err := next.Unique()
			if err != nil {
				return nil, err
			}
			key := stateKey{marking: h, tag: tag}
			idx, known := seen[key]
			if !known {
				idx = len(ks.States)
				ks.States = append(ks.States, Record{State: State{Marking: next, Tag: tag}})
				seen[key] = idx
				queue = append(queue, idx)
			}
			if !containsInt(ks.States[i].Outgoing, idx) {
				ks.States[i].Outgoing = append(ks.States[i].Outgoing, idx)
			}
		}
	}
	return ks, nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
