// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

/*
Package props provides the atomic propositions that ground CTL formulae in a
specific net, plus the glue that compiles the surface syntax
(tokens-count(...), is-fireable(...), is-previous(...)) into package ctl's
formula trees. It is the only library package that imports ctl, kripke and
nets together: ctl itself never imports props, so the two packages are tied together
structurally, through the ctl.AtomicProposition interface, rather than by a
direct dependency.
*/
package props

import "github.com/erwanm/petrikripke/kripke"

// Relation is a token-count comparison operator.
type Relation int

// The five relations the atomic-proposition grammar accepts.
const (
	LT Relation = iota
	LE
	EQ
	GE
	GT
)

func (r Relation) eval(a, b int) bool {
	switch r {
	case LT:
		return a < b
	case LE:
		return a <= b
	case EQ:
		return a == b
	case GE:
		return a >= b
	case GT:
		return a > b
	default:
		return false
	}
}

func (r Relation) String() string {
	switch r {
	case LT:
		return "<"
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	case GT:
		return ">"
	default:
		return "?"
	}
}

// Atom is one side of a TokenCount comparison: either the token count of a
// place in the state being evaluated, or a literal integer. An Atom built
// from a place name the compiler never heard of is Unknown: it still
// parses, since the surface grammar is unaware of any particular net, but
// it can never make a TokenCount comparison hold, the same way an unknown
// transition label can never make is-fireable/is-previous hold.
type Atom struct {
	IsPlace bool
	Place   int
	Value   int
	Unknown bool
}

// Literal builds an Atom holding a constant integer.
func Literal(n int) Atom { return Atom{Value: n} }

// PlaceTokens builds an Atom that resolves to the token count of place pl in
// whatever state it is evaluated against.
func PlaceTokens(pl int) Atom { return Atom{IsPlace: true, Place: pl} }

// UnknownPlace builds an Atom for a place name the compiler could not
// resolve.
func UnknownPlace() Atom { return Atom{Unknown: true} }

func (a Atom) resolve(state kripke.State) int {
	if a.IsPlace {
		return state.Marking.Get(a.Place)
	}
	return a.Value
}

// TokenCount is the atomic proposition "tokens-count(P) rel n" (and its
// mirror image, n rel tokens-count(P)): it holds at a state when Rel relates
// the resolved values of Left and Right. It never holds if either side
// references an unknown place.
type TokenCount struct {
	Rel         Relation
	Left, Right Atom
}

// IsSatisfied implements ctl.AtomicProposition.
func (t TokenCount) IsSatisfied(state kripke.State) bool {
	if t.Left.Unknown || t.Right.Unknown {
		return false
	}
	return t.Rel.eval(t.Left.resolve(state), t.Right.resolve(state))
}

// PreviousTagIs is the atomic proposition "is-previous(L)": it holds at a
// state whose previous-transition tag equals Tag.
type PreviousTagIs struct {
	Tag string
}

// IsSatisfied implements ctl.AtomicProposition.
func (p PreviousTagIs) IsSatisfied(state kripke.State) bool {
	return state.HasTag() && state.Tag == p.Tag
}
