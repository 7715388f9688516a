// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

// Command petrikripke loads a PNML net, builds its reachability graph, and
// evaluates a CTL formula at the initial state.
//
// Usage:
//
//	petrikripke -net FILE.pnml [-tag LABEL]... [-k N] 'FORMULA'
//
// Each -tag flag may be repeated; a state reached by firing a transition
// whose label is one of the tagged labels records that label for
// is-previous(...) to query. -k bounds every place's token count; expansion
// fails if some reachable marking would exceed it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	nets "github.com/erwanm/petrikripke"
	"github.com/erwanm/petrikripke/ctl"
	"github.com/erwanm/petrikripke/kripke"
	"github.com/erwanm/petrikripke/props"
)

// tagList collects repeated -tag flags into a set.
type tagList map[string]bool

func (t tagList) String() string {
	return fmt.Sprintf("%v", map[string]bool(t))
}

func (t tagList) Set(value string) error {
	t[value] = true
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("petrikripke: ")

	netPath := flag.String("net", "", "path to a PNML net file")
	k := flag.Int("k", 0, "safeness bound on every place's token count (0 means unbounded)")
	tags := make(tagList)
	flag.Var(tags, "tag", "transition label to record on states it leads to (may be repeated)")
	flag.Parse()

	if *netPath == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: petrikripke -net FILE.pnml [-tag LABEL]... [-k N] 'FORMULA'")
		os.Exit(2)
	}
	formulaText := flag.Arg(0)

	f, err := os.Open(*netPath)
	if err != nil {
		log.Fatalf("opening %s: %v", *netPath, err)
	}
	defer f.Close()

	net, err := nets.Read(f)
	if err != nil {
		log.Fatalf("reading %s: %v", *netPath, err)
	}

	var bound *int
	if *k > 0 {
		bound = k
	}
	ks, err := kripke.Expand(net, net.Initial, tags, bound)
	if err != nil {
		log.Fatalf("expanding reachability graph: %v", err)
	}

	compiler, err := props.NewCompiler(net)
	if err != nil {
		log.Fatalf("compiling net: %v", err)
	}
	formula, err := compiler.ParseFormula(formulaText)
	if err != nil {
		log.Fatalf("parsing formula: %v", err)
	}

	mc := ctl.NewModelChecker(ks)
	if mc.Holds(formula, 0) {
		fmt.Println("true")
	} else {
		fmt.Println("false")
		os.Exit(1)
	}
}
