// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import "fmt"

// Net is the concrete type of labelled place/transition Petri nets. Places and
// transitions are referred to by their position (0-based) in the Places and
// Transitions slices; every other field that mentions a place or a transition
// — Preset, Postset, Initial — uses that same indexing.
//
// A place may carry an optional Label; two places with the same non-empty
// label are never distinguished by the reducer's place-fusion rewrites, while
// unlabelled places are free to be merged with any other unlabelled place. A
// transition may carry an optional Label; the empty label means the
// transition is silent (internal), and several transitions may share the same
// label (this is what makes props.Compiler's is-fireable predicate a disjunction).
type Net struct {
	Name        string       // Name of the net.
	Places      []Place      // List of places, in declaration order.
	Transitions []Transition // List of transitions, in declaration order.
	Initial     Marking      // Initial marking of places.
}

// Place is a single place of a Net.
type Place struct {
	Name  string // Name of the place, for display and PNML round-tripping.
	Label string // Optional label; the empty string means unlabelled.
}

// Transition is a single transition of a Net. Preset and Postset are sparse
// maps from place index to a strictly positive arc multiplicity; an entry
// with multiplicity 0 is never present, by the same convention Marking uses.
type Transition struct {
	Name    string  // Name of the transition, for display and PNML round-tripping.
	Label   string  // Optional label; the empty string means silent/internal.
	Preset  Marking // Input arcs: place -> multiplicity consumed when firing.
	Postset Marking // Output arcs: place -> multiplicity produced when firing.
}

// AddPlace appends a new place to net and returns its index.
func (net *Net) AddPlace(name, label string) int {
	net.Places = append(net.Places, Place{Name: name, Label: label})
	return len(net.Places) - 1
}

// AddTransition appends a new transition to net and returns its index. Preset
// and postset are copied, not aliased, so the caller's slices may be reused.
func (net *Net) AddTransition(name, label string, preset, postset Marking) int {
	net.Transitions = append(net.Transitions, Transition{
		Name:    name,
		Label:   label,
		Preset:  preset.Clone(),
		Postset: postset.Clone(),
	})
	return len(net.Transitions) - 1
}

// RemovePlace deletes place pl from net, renumbering every place index greater
// than pl in every transition's preset/postset and in the initial marking. It
// is the caller's responsibility to ensure pl is not otherwise referenced
// (e.g. by an Info index) without also updating that index; see Info.RemovePlace.
func (net *Net) RemovePlace(pl int) {
	net.Places = append(net.Places[:pl], net.Places[pl+1:]...)
	net.Initial = net.Initial.remove(pl)
	for k := range net.Transitions {
		net.Transitions[k].Preset = net.Transitions[k].Preset.remove(pl)
		net.Transitions[k].Postset = net.Transitions[k].Postset.remove(pl)
	}
}

// RemoveTransition deletes transition tr from net. No other transition or
// place references a transition index directly in this package, so there is
// no renumbering to do here; the Info index, which does keep transition
// indices, must be updated separately (see Info.RemoveTransition).
func (net *Net) RemoveTransition(tr int) {
	net.Transitions = append(net.Transitions[:tr], net.Transitions[tr+1:]...)
}

// RelabelPlaces overwrites the label of place pl.
func (net *Net) RelabelPlaces(pl int, label string) {
	net.Places[pl].Label = label
}

// RelabelTransitions overwrites the label of transition tr.
func (net *Net) RelabelTransitions(tr int, label string) {
	net.Transitions[tr].Label = label
}

// TryFire attempts to fire transition tr at marking m. It is side-effect free:
// m is never modified. Firing succeeds when m dominates the transition's
// preset pointwise; the result is m - preset + postset. On failure the
// returned bool is false and the returned Marking is nil.
func (net *Net) TryFire(m Marking, tr int) (Marking, bool) {
	t := net.Transitions[tr]
	for _, a := range t.Preset {
		if m.Get(a.Pl) < a.Mult {
			return nil, false
		}
	}
	res := m.Clone()
	for _, a := range t.Preset {
		res = res.AddToPlace(a.Pl, -a.Mult)
	}
	for _, a := range t.Postset {
		res = res.AddToPlace(a.Pl, a.Mult)
	}
	return res, true
}

// Clone returns a deep copy of net; mutating the result never affects net.
func (net *Net) Clone() *Net {
	c := &Net{
		Name:        net.Name,
		Places:      make([]Place, len(net.Places)),
		Transitions: make([]Transition, len(net.Transitions)),
		Initial:     net.Initial.Clone(),
	}
	copy(c.Places, net.Places)
	for k, t := range net.Transitions {
		c.Transitions[k] = Transition{
			Name:    t.Name,
			Label:   t.Label,
			Preset:  t.Preset.Clone(),
			Postset: t.Postset.Clone(),
		}
	}
	return c
}

// PlaceByName returns the index of the place named name, or -1 if none exists.
func (net *Net) PlaceByName(name string) int {
	for k, p := range net.Places {
		if p.Name == name {
			return k
		}
	}
	return -1
}

// TransitionByName returns the index of the transition named name, or -1 if
// none exists.
func (net *Net) TransitionByName(name string) int {
	for k, t := range net.Transitions {
		if t.Name == name {
			return k
		}
	}
	return -1
}

// validate reports a non-nil error if net references a place index out of
// range anywhere in its transitions or initial marking.
func (net *Net) validate() error {
	np := len(net.Places)
	check := func(m Marking, where string) error {
		for _, a := range m {
			if a.Pl < 0 || a.Pl >= np {
				return fmt.Errorf("%s: place index %d out of range [0,%d)", where, a.Pl, np)
			}
		}
		return nil
	}
	if err := check(net.Initial, "initial marking"); err != nil {
		return err
	}
	for k, t := range net.Transitions {
		if err := check(t.Preset, fmt.Sprintf("preset of transition %s", t.Name)); err != nil {
			return err
		}
		if err := check(t.Postset, fmt.Sprintf("postset of transition %s", t.Name)); err != nil {
			return err
		}
		_ = k
	}
	return nil
}
