// Copyright (c) 2021 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package pnml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DOCTYPE for the generated PNML file
	DOCTYPE = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
)

// PT is the type of PNML for a P/T net without graphical information
type PT struct {
	XMLName xml.Name `xml:"http://www.pnml.org/version-2009/grammar/pnml pnml"`
	WNET    Net      `xml:"net"`
}

// Net is the type of PNML net, without graphical information, where all
// information is written in a single page.
type Net struct {
	Thetype string `xml:"type,attr"`
	ID      string `xml:"id,attr"`
	NAME    string `xml:"name>text"`
	PAGE    Page   `xml:"page"`
}

// Page is the unit for defining a P/T net inside a PNML file.
type Page struct {
	ID     string  `xml:"id,attr"`
	PLACES []Place `xml:"place"`
	TRANS  []Trans `xml:"transition"`
}

// Place is the type used to marshal places.
type Place struct {
	Name  string
	Label string
	Init  int
}

// Trans is the type used to marshal transitions. In and Out hold the arcs
// from and to places. We do not support inhibitor arcs.
type Trans struct {
	Name    string
	Label   string
	In, Out []Arc
}

// Arc is a pair of a place and a multiplicity, one input or output arc of a
// Trans.
type Arc struct {
	Place *Place
	Mult  int
}

// MarshalXML encodes the receiver as zero or more XML elements. This makes
// Place a xml.Marshaller
func (v Place) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "id"}, Value: "pl_" + v.Name}}
	e.EncodeToken(start)
	e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "name"}})
	if v.Label != "" {
		e.EncodeElement(v.Name+": "+v.Label, xml.StartElement{Name: xml.Name{Local: "text"}})
	} else {
		e.EncodeElement(v.Name, xml.StartElement{Name: xml.Name{Local: "text"}})

	}
	e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "name"}})
	if v.Init != 0 {
		e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "initialMarking"}})
		e.EncodeElement(v.Init, xml.StartElement{Name: xml.Name{Local: "text"}})
		e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "initialMarking"}})
	}
	e.EncodeToken(xml.EndElement{Name: start.Name})
	return nil
}

// MarshalXML encodes the receiver as zero or more XML elements. This makes
// Trans a xml.Marshaller
func (v Trans) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "id"}, Value: "tr_" + v.Name}}
	e.EncodeToken(start)
	e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "name"}})
	if v.Label != "" {
		e.EncodeElement(v.Name+": "+v.Label, xml.StartElement{Name: xml.Name{Local: "text"}})
	} else {
		e.EncodeElement(v.Name, xml.StartElement{Name: xml.Name{Local: "text"}})

	}
	e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "name"}})
	e.EncodeToken(xml.EndElement{Name: start.Name})

	for _, c := range v.In {
		encodeArc(e, fmt.Sprintf("p2t-%s-%s", c.Place.Name, v.Name), "pl_"+c.Place.Name, "tr_"+v.Name, c.Mult)
	}
	for _, c := range v.Out {
		encodeArc(e, fmt.Sprintf("t2p-%s-%s", v.Name, c.Place.Name), "tr_"+v.Name, "pl_"+c.Place.Name, c.Mult)
	}

	return nil
}

func encodeArc(e *xml.Encoder, id, src, tgt string, weight int) {
	arc := xml.StartElement{
		Name: xml.Name{Local: "arc"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "id"}, Value: id},
			{Name: xml.Name{Local: "source"}, Value: src},
			{Name: xml.Name{Local: "target"}, Value: tgt},
		},
	}
	e.EncodeToken(arc)
	if weight != 1 {
		e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "inscription"}})
		e.EncodeElement(weight, xml.StartElement{Name: xml.Name{Local: "text"}})
		e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "inscription"}})
	}
	e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "arc"}})
}

// Write prints a P/T net in PNML format on an io.Writer
func Write(w io.Writer, name string, pl []Place, tr []Trans) error {
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	// Now we output the file on the io.Writer
	wpnml := PT{
		WNET: Net{
			Thetype: "http://www.pnml.org/version-2009/grammar/ptnet",
			ID:      name,
			NAME:    name,
			PAGE: Page{
				ID:     "page",
				PLACES: pl,
				TRANS:  tr,
			},
		},
	}
	w.Write([]byte(DOCTYPE))
	return encoder.Encode(wpnml)
}

// MissingAttribute reports that a required XML attribute was absent on an
// element of kind Parent.
type MissingAttribute struct {
	Attr, Parent string
}

func (e *MissingAttribute) Error() string {
	return fmt.Sprintf("attribute %q missing under %s", e.Attr, e.Parent)
}

// UnknownTransition reports that an arc names a transition id that was never
// declared by a <transition> element.
type UnknownTransition struct {
	ID string
}

func (e *UnknownTransition) Error() string {
	return fmt.Sprintf("arc refers to unknown transition %q", e.ID)
}

// NeitherSourceNorTargetOfArcIsAPlace reports an arc whose source and target
// are both transitions (or both unknown places/transitions), which is never
// valid in a P/T net: every arc must connect a place to a transition.
type NeitherSourceNorTargetOfArcIsAPlace struct {
	Source, Target string
}

func (e *NeitherSourceNorTargetOfArcIsAPlace) Error() string {
	return fmt.Sprintf("neither source %q nor target %q of arc is a place", e.Source, e.Target)
}

// CouldNotParseInitialMarkingTokens reports that a place's <initialMarking>
// text could not be parsed as a nonnegative integer.
type CouldNotParseInitialMarkingTokens struct {
	Place, Text string
}

func (e *CouldNotParseInitialMarkingTokens) Error() string {
	return fmt.Sprintf("could not parse initial marking %q for place %q as an integer", e.Text, e.Place)
}

// rtext is the shape of a PNML <name>/<initialMarking>/<inscription>
// element's single <text> child.
type rtext struct {
	Text string `xml:"text"`
}

// rPlace is the unmarshalling shape of a <place> element.
type rPlace struct {
	ID             string `xml:"id,attr"`
	InitialMarking *rtext `xml:"initialMarking"`
}

// rTransition is the unmarshalling shape of a <transition> element.
type rTransition struct {
	ID string `xml:"id,attr"`
}

// rArc is the unmarshalling shape of an <arc> element.
type rArc struct {
	Source      string `xml:"source,attr"`
	Target      string `xml:"target,attr"`
	Inscription *rtext `xml:"inscription"`
}

// rPage is the unmarshalling shape of a <page> element; places, transitions
// and arcs may also appear directly under <net> without a <page> wrapper, so
// rNetXML (the <net> shape) embeds the same three slices.
type rPage struct {
	Places      []rPlace      `xml:"place"`
	Transitions []rTransition `xml:"transition"`
	Arcs        []rArc        `xml:"arc"`
}

// rNetXML is the unmarshalling shape of a <net> element.
type rNetXML struct {
	ID          string        `xml:"id,attr"`
	Name        *rtext        `xml:"name"`
	Places      []rPlace      `xml:"place"`
	Transitions []rTransition `xml:"transition"`
	Arcs        []rArc        `xml:"arc"`
	Pages       []rPage       `xml:"page"`
}

// rDoc is the unmarshalling shape of the root <pnml> element.
type rDoc struct {
	XMLName xml.Name  `xml:"pnml"`
	Nets    []rNetXML `xml:"net"`
}

// Document is the plain, intermediate representation produced by Read: ids in
// declaration order, and arcs already resolved into per-transition preset and
// postset maps keyed by place id. It deliberately knows nothing about package
// nets's Net/Marking types, so this package stays usable on its own.
type Document struct {
	Name          string
	PlaceIDs      []string
	TransitionIDs []string
	InitialMarking map[string]int
	// Preset[transitionID][placeID] is the multiplicity of the arc from
	// placeID to transitionID (tokens consumed on firing).
	Preset map[string]map[string]int
	// Postset[transitionID][placeID] is the multiplicity of the arc from
	// transitionID to placeID (tokens produced on firing).
	Postset map[string]map[string]int
}

// Read parses a PNML document from r. It reads the first <net> element found
// (a PNML file may declare several; only one is supported here, matching
// this package's own Write). Places and transitions may appear directly
// under <net> or nested inside one or more <page> elements; both forms are
// merged. Repeated <arc> elements between the same two endpoints accumulate:
// each contributes its own multiplicity (default 1) to the running total.
func Read(r io.Reader) (*Document, error) {
	var doc rDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if len(doc.Nets) == 0 {
		return nil, &MissingAttribute{Attr: "net", Parent: "pnml"}
	}
	n := doc.Nets[0]

	places := append([]rPlace{}, n.Places...)
	transitions := append([]rTransition{}, n.Transitions...)
	arcs := append([]rArc{}, n.Arcs...)
	for _, p := range n.Pages {
		places = append(places, p.Places...)
		transitions = append(transitions, p.Transitions...)
		arcs = append(arcs, p.Arcs...)
	}

	out := &Document{
		InitialMarking: map[string]int{},
		Preset:         map[string]map[string]int{},
		Postset:        map[string]map[string]int{},
	}
	if n.Name != nil {
		out.Name = n.Name.Text
	} else {
		out.Name = n.ID
	}

	isPlace := map[string]bool{}
	isTransition := map[string]bool{}
	for _, p := range places {
		if p.ID == "" {
			return nil, &MissingAttribute{Attr: "id", Parent: "place"}
		}
		isPlace[p.ID] = true
		out.PlaceIDs = append(out.PlaceIDs, p.ID)
		if p.InitialMarking != nil {
			n, err := strconv.Atoi(strings.TrimSpace(p.InitialMarking.Text))
			if err != nil || n < 0 {
				return nil, &CouldNotParseInitialMarkingTokens{Place: p.ID, Text: p.InitialMarking.Text}
			}
			out.InitialMarking[p.ID] = n
		}
	}
	for _, tr := range transitions {
		if tr.ID == "" {
			return nil, &MissingAttribute{Attr: "id", Parent: "transition"}
		}
		isTransition[tr.ID] = true
		out.TransitionIDs = append(out.TransitionIDs, tr.ID)
		out.Preset[tr.ID] = map[string]int{}
		out.Postset[tr.ID] = map[string]int{}
	}

	for _, a := range arcs {
		if a.Source == "" {
			return nil, &MissingAttribute{Attr: "source", Parent: "arc"}
		}
		if a.Target == "" {
			return nil, &MissingAttribute{Attr: "target", Parent: "arc"}
		}
		mult := 1
		if a.Inscription != nil {
			m, err := strconv.Atoi(strings.TrimSpace(a.Inscription.Text))
			if err == nil && m > 0 {
				mult = m
			}
		}
		switch {
		case isPlace[a.Source] && isTransition[a.Target]:
			out.Preset[a.Target][a.Source] += mult
		case isTransition[a.Source] && isPlace[a.Target]:
			out.Postset[a.Source][a.Target] += mult
		case isPlace[a.Source]:
			return nil, &UnknownTransition{ID: a.Target}
		case isPlace[a.Target]:
			return nil, &UnknownTransition{ID: a.Source}
		default:
			return nil, &NeitherSourceNorTargetOfArcIsAPlace{Source: a.Source, Target: a.Target}
		}
	}
	return out, nil
}
