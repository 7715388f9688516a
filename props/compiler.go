// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package props

import (
	"fmt"

	nets "github.com/erwanm/petrikripke"
	"github.com/erwanm/petrikripke/ctl"
)

// DuplicatePlaceName is returned by NewCompiler when two distinct places
// share a name, making tokens-count("name") ambiguous.
type DuplicatePlaceName struct{ Name string }

func (e *DuplicatePlaceName) Error() string {
	return fmt.Sprintf("duplicate place name %q", e.Name)
}

// DuplicateTransitionLabel reports two distinct label values sharing one
// name. Labels here are plain Go strings, so two labels with the same name
// are the same label, and NewCompiler never returns this error.
type DuplicateTransitionLabel struct{ Label string }

func (e *DuplicateTransitionLabel) Error() string {
	return fmt.Sprintf("duplicate transition label %q", e.Label)
}

// Compiler translates the atomic-proposition surface syntax into ctl.Formula
// trees grounded in one specific net. It is built once per net and reused
// across every formula parsed against it.
type Compiler struct {
	net             *nets.Net
	placeByName     map[string]int
	firingCondition map[string]ctl.Formula
}

// NewCompiler indexes net's places by name and precomputes, for every
// non-empty transition label, the firing condition of that label: the
// disjunction, over every transition carrying it, of the conjunction of
// "enough tokens" checks over that transition's preset.
func NewCompiler(net *nets.Net) (*Compiler, error) {
	c := &Compiler{
		net:             net,
		placeByName:     map[string]int{},
		firingCondition: map[string]ctl.Formula{},
	}
	for i, pl := range net.Places {
		if _, dup := c.placeByName[pl.Name]; dup {
			return nil, &DuplicatePlaceName{Name: pl.Name}
		}
		c.placeByName[pl.Name] = i
	}

	byLabel := map[string][]int{}
	for i, tr := range net.Transitions {
		if tr.Label == "" {
			continue
		}
		byLabel[tr.Label] = append(byLabel[tr.Label], i)
	}
	for label, trs := range byLabel {
		var disjunction ctl.Formula = False{}
		for _, tr := range trs {
			var conjunction ctl.Formula = True{}
			for _, a := range net.Transitions[tr].Preset {
				leaf := ctl.Atomic{Prop: TokenCount{Rel: GE, Left: PlaceTokens(a.Pl), Right: Literal(a.Mult)}}
				conjunction = ctl.And{L: conjunction, R: leaf}
			}
			disjunction = ctl.Or{L: disjunction, R: conjunction}
		}
		c.firingCondition[label] = disjunction
	}
	return c, nil
}

// True and False let NewCompiler build formula trees without importing ctl's
// zero-value constants under a different name in every call site.
type True = ctl.True
type False = ctl.False

// IsFireable compiles is-fireable("label") into a CTL formula. An unknown
// label compiles to False: that is not an error, since no transition can
// ever make it hold.
func (c *Compiler) IsFireable(label string) ctl.Formula {
	if f, ok := c.firingCondition[label]; ok {
		return f
	}
	return False{}
}

// IsPrevious compiles is-previous("label") into a CTL formula. An unknown
// label still compiles successfully, for the same reason as IsFireable: it
// is simply a tag no expansion will ever attach to a state.
func (c *Compiler) IsPrevious(label string) ctl.Formula {
	return ctl.Atomic{Prop: PreviousTagIs{Tag: label}}
}

// TokensCount compiles tokens-count("place") rel n into a CTL formula,
// resolving place against the net this compiler was built from. An unknown
// place name still compiles, to a comparison that can never hold, for the
// same reason IsFireable's unknown-label case compiles to False.
func (c *Compiler) TokensCount(place string, rel Relation, n int) ctl.Formula {
	left := UnknownPlace()
	if pl, ok := c.placeByName[place]; ok {
		left = PlaceTokens(pl)
	}
	return ctl.Atomic{Prop: TokenCount{Rel: rel, Left: left, Right: Literal(n)}}
}

// ParseFormula parses a full CTL formula, including the atomic-proposition
// surface syntax, compiling every leaf against the net c was built from.
func (c *Compiler) ParseFormula(text string) (ctl.Formula, error) {
	return ctl.ParseFormula(text, c.ParseAtom)
}
