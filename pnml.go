// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package nets

import (
	"io"

	"github.com/erwanm/petrikripke/internal/pnml"
)

// Read parses a PNML P/T-net document from r and returns the resulting Net
// together with its initial marking (already set on net.Initial). Places and
// transitions are named after their PNML id; neither carries a label, since
// PNML has no notion of one. A caller wanting is-fireable/is-previous/-tag to
// work against a PNML-loaded net must attach labels itself, after Read
// returns, with RelabelPlaces/RelabelTransitions.
func Read(r io.Reader) (*Net, error) {
	doc, err := pnml.Read(r)
	if err != nil {
		return nil, err
	}
	net := &Net{Name: doc.Name}

	placeIdx := make(map[string]int, len(doc.PlaceIDs))
	for _, id := range doc.PlaceIDs {
		placeIdx[id] = net.AddPlace(id, "")
	}
	trIdx := make(map[string]int, len(doc.TransitionIDs))
	for _, id := range doc.TransitionIDs {
		trIdx[id] = net.AddTransition(id, "", Marking{}, Marking{})
	}
	for trID, pre := range doc.Preset {
		m := Marking{}
		for plID, mult := range pre {
			m = m.AddToPlace(placeIdx[plID], mult)
		}
		net.Transitions[trIdx[trID]].Preset = m
	}
	for trID, post := range doc.Postset {
		m := Marking{}
		for plID, mult := range post {
			m = m.AddToPlace(placeIdx[plID], mult)
		}
		net.Transitions[trIdx[trID]].Postset = m
	}
	init := Marking{}
	for plID, n := range doc.InitialMarking {
		init = init.AddToPlace(placeIdx[plID], n)
	}
	net.Initial = init
	if err := net.validate(); err != nil {
		return nil, err
	}
	return net, nil
}

// Pnml marshals net into a P/T-net PNML document and writes it to w.
//
// We combine a place or transition's name and label for the PNML <name>
// element but build the id by adding a prefix ("pl_" for places, "tr_" for
// transitions), because the same string may be used as both a place name and
// a transition name in this package's net model.
func (net *Net) Pnml(w io.Writer) error {
	places := make([]pnml.Place, len(net.Places))
	trans := make([]pnml.Trans, len(net.Transitions))
	for k, p := range net.Places {
		places[k] = pnml.Place{
			Name:  p.Name,
			Label: p.Label,
			Init:  net.Initial.Get(k),
		}
	}
	for k, t := range net.Transitions {
		trans[k] = pnml.Trans{
			Name:  t.Name,
			Label: t.Label,
			In:    []pnml.Arc{},
			Out:   []pnml.Arc{},
		}
		for _, a := range t.Preset {
			trans[k].In = append(trans[k].In, pnml.Arc{Place: &places[a.Pl], Mult: a.Mult})
		}
		for _, a := range t.Postset {
			trans[k].Out = append(trans[k].Out, pnml.Arc{Place: &places[a.Pl], Mult: a.Mult})
		}
	}
	return pnml.Write(w, net.Name, places, trans)
}
