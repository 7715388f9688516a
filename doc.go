// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package nets defines a concrete type for labelled place/transition Petri nets
and the operations needed to analyze them symbolically: firing, a derived
adjacency index, a fixpoint of structure-preserving reductions, and the
initial-marking bookkeeping that keeps all of these mutually coherent.

The net model

A Net is an ordered list of places and an ordered list of transitions. A place
may carry an optional label; two places with distinct labels are never fused
by the reducer, while two unlabelled places may be. A transition may carry an
optional label (absent means silent, i.e. internal) together with a preset and
a postset, each a sparse mapping from place id to a strictly positive arc
multiplicity.

Identifiers are 0-based positions in the underlying slices. Removing a place
or transition renumbers every higher id and every map that refers to it
(preset, postset, initial marking); this package centralizes that bookkeeping
behind RemovePlace and RemoveTransition so that no other code needs to touch
the slices directly.

A Marking assigns a nonnegative token count to each place; places holding zero
tokens never appear as an entry, so that two markings with the same entries
compare and hash equal regardless of how they were built. Firing a transition
(TryFire) is side-effect-free: it either reports that the transition is
disabled or returns a new marking, leaving the one it started from untouched.

Reduction

Reduce applies, to a fixpoint, seven structure-preserving rewrites over a net
and its adjacency index (series transitions in both arc-weight orientations,
series places, self-loop places, self-loop transitions, parallel places, and
parallel transitions). Each successful rewrite restarts the search from the
first rewrite, since fusing one pair of places or transitions can expose a new
opportunity for any of the others.

Companion packages

The companion packages kripke, props, and ctl build a finite Kripke structure
from a net's reachability graph, evaluate atomic propositions about markings
and recent firings, and compile/evaluate CTL formulae over the result. Package
viz renders both nets and Kripke structures as Graphviz DOT for debugging.
Package internal/pnml reads and writes the PNML interchange format.
*/
package nets
