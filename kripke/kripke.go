// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

/*
Package kripke expands a net's reachability graph into a finite Kripke
structure: an ordered list of (marking, previous-transition tag) states and
their deduplicated outgoing edges, suitable for evaluating branching-time
formulae over it.
*/
package kripke

import (
	"fmt"

	nets "github.com/erwanm/petrikripke"
)

// State is a single node of a Kripke structure: a marking, plus the label of
// the transition that was just fired to reach it, when that label is one the
// caller asked to have tagged. Tag is the empty string when absent — on the
// initial state, and on every state reached by firing an untagged or silent
// transition.
type State struct {
	Marking nets.Marking
	Tag     string
}

// HasTag reports whether s carries a previous-transition tag.
func (s State) HasTag() bool {
	return s.Tag != ""
}

// Record pairs a State with the indices of the states directly reachable
// from it by firing a single transition. Outgoing is deduplicated: a target
// index never appears twice, even if several transitions lead to it.
type Record struct {
	State    State
	Outgoing []int
}

// Structure is a finite Kripke structure: an ordered list of state records,
// the first of which is the initial state. It is built once by Expand and
// never mutated afterwards.
type Structure struct {
	States []Record
}

// Successors returns the indices of the states directly reachable from state
// i.
func (ks *Structure) Successors(i int) []int {
	return ks.States[i].Outgoing
}

// KSafenessViolation is returned by Expand when a declared safeness bound is
// exceeded: firing Transition at some reachable marking would leave more
// tokens in Place than the bound allows.
type KSafenessViolation struct {
	Place, Transition int
}

func (e *KSafenessViolation) Error() string {
	return fmt.Sprintf("k-safeness violated: place %d exceeds the bound after firing transition %d", e.Place, e.Transition)
}
