// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

/*
Package ctl provides a CTL abstract syntax tree, a recursive-descent parser
for it, and a fixpoint model checker that evaluates it against a
kripke.Structure. It plays the role of an external CTL solver library: it
only knows states through the kripke package and leaf predicates through the
AtomicProposition interface, never through package props directly, so a
different solver could be substituted without touching the core net model.
*/
package ctl

import "github.com/erwanm/petrikripke/kripke"

// AtomicProposition is the leaf-level predicate a CTL formula can ask of a
// single Kripke state. Package props's TokenCount and PreviousTagIs satisfy
// this interface structurally; this package never imports props.
type AtomicProposition interface {
	IsSatisfied(state kripke.State) bool
}

// Formula is a node of a CTL abstract syntax tree.
type Formula interface {
	isFormula()
}

// Atomic wraps a leaf-level AtomicProposition as a Formula.
type Atomic struct{ Prop AtomicProposition }

// True is the formula that holds everywhere.
type True struct{}

// False is the formula that holds nowhere.
type False struct{}

// Not is Boolean negation.
type Not struct{ F Formula }

// And is Boolean conjunction.
type And struct{ L, R Formula }

// Or is Boolean disjunction.
type Or struct{ L, R Formula }

// Implies is material implication.
type Implies struct{ L, R Formula }

// EX holds at s iff F holds at some successor of s.
type EX struct{ F Formula }

// AX holds at s iff F holds at every successor of s.
type AX struct{ F Formula }

// EF holds at s iff F holds somewhere along some path from s.
type EF struct{ F Formula }

// AF holds at s iff F holds somewhere along every path from s.
type AF struct{ F Formula }

// EG holds at s iff F holds everywhere along some path from s.
type EG struct{ F Formula }

// AG holds at s iff F holds everywhere along every path from s.
type AG struct{ F Formula }

// EU holds at s iff some path from s satisfies L until R holds.
type EU struct{ L, R Formula }

// AU holds at s iff every path from s satisfies L until R holds.
type AU struct{ L, R Formula }

func (Atomic) isFormula()  {}
func (True) isFormula()    {}
func (False) isFormula()   {}
func (Not) isFormula()     {}
func (And) isFormula()     {}
func (Or) isFormula()      {}
func (Implies) isFormula() {}
func (EX) isFormula()      {}
func (AX) isFormula()      {}
func (EF) isFormula()      {}
func (AF) isFormula()      {}
func (EG) isFormula()      {}
func (AG) isFormula()      {}
func (EU) isFormula()      {}
func (AU) isFormula()      {}
