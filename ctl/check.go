// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package ctl

import "github.com/erwanm/petrikripke/kripke"

// ModelChecker evaluates CTL formulae over a fixed Kripke structure. It
// precomputes the reverse adjacency once, at construction, for the EU
// worklist (which EF and AG are built on); the other operators walk
// successors.
type ModelChecker struct {
	ks           *kripke.Structure
	predecessors [][]int
}

// NewModelChecker builds a ModelChecker over ks.
func NewModelChecker(ks *kripke.Structure) *ModelChecker {
	mc := &ModelChecker{ks: ks, predecessors: make([][]int, len(ks.States))}
	for i, rec := range ks.States {
		for _, j := range rec.Outgoing {
			mc.predecessors[j] = append(mc.predecessors[j], i)
		}
	}
	return mc
}

// Holds reports whether f holds at state i.
func (mc *ModelChecker) Holds(f Formula, i int) bool {
	return mc.Check(f)[i]
}

// Check returns the set of state indices at which f holds, as a set encoded
// by presence in the returned map.
func (mc *ModelChecker) Check(f Formula) map[int]bool {
	switch n := f.(type) {
	case True:
		return mc.all()
	case False:
		return map[int]bool{}
	case Atomic:
		res := map[int]bool{}
		for i, rec := range mc.ks.States {
			if n.Prop.IsSatisfied(rec.State) {
				res[i] = true
			}
		}
		return res
	case Not:
		return mc.complement(mc.Check(n.F))
	case And:
		return mc.intersect(mc.Check(n.L), mc.Check(n.R))
	case Or:
		return mc.union(mc.Check(n.L), mc.Check(n.R))
	case Implies:
		return mc.union(mc.complement(mc.Check(n.L)), mc.Check(n.R))
	case EX:
		return mc.checkEX(mc.Check(n.F))
	case AX:
		return mc.complement(mc.checkEX(mc.complement(mc.Check(n.F))))
	case EF:
		return mc.checkEU(mc.all(), mc.Check(n.F))
	case AF:
		return mc.checkAF(mc.Check(n.F))
	case EG:
		return mc.checkEG(mc.Check(n.F))
	case AG:
		return mc.complement(mc.checkEU(mc.all(), mc.complement(mc.Check(n.F))))
	case EU:
		return mc.checkEU(mc.Check(n.L), mc.Check(n.R))
	case AU:
		return mc.checkAU(mc.Check(n.L), mc.Check(n.R))
	default:
		return map[int]bool{}
	}
}

func (mc *ModelChecker) all() map[int]bool {
	res := make(map[int]bool, len(mc.ks.States))
	for i := range mc.ks.States {
		res[i] = true
	}
	return res
}

func (mc *ModelChecker) complement(s map[int]bool) map[int]bool {
	res := map[int]bool{}
	for i := range mc.ks.States {
		if !s[i] {
			res[i] = true
		}
	}
	return res
}

func (mc *ModelChecker) union(a, b map[int]bool) map[int]bool {
	res := make(map[int]bool, len(a)+len(b))
	for i := range a {
		res[i] = true
	}
	for i := range b {
		res[i] = true
	}
	return res
}

func (mc *ModelChecker) intersect(a, b map[int]bool) map[int]bool {
	res := map[int]bool{}
	for i := range a {
		if b[i] {
			res[i] = true
		}
	}
	return res
}

// checkEX returns the states with at least one successor in s.
func (mc *ModelChecker) checkEX(s map[int]bool) map[int]bool {
	res := map[int]bool{}
	for i, rec := range mc.ks.States {
		for _, j := range rec.Outgoing {
			if s[j] {
				res[i] = true
				break
			}
		}
	}
	return res
}

// checkEU computes E[p U q]: start from q and repeatedly pull in any
// predecessor that satisfies p, by worklist, until the set stops growing.
func (mc *ModelChecker) checkEU(p, q map[int]bool) map[int]bool {
	res := make(map[int]bool, len(q))
	queue := make([]int, 0, len(q))
	for i := range q {
		res[i] = true
		queue = append(queue, i)
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, pred := range mc.predecessors[i] {
			if !res[pred] && p[pred] {
				res[pred] = true
				queue = append(queue, pred)
			}
		}
	}
	return res
}

// checkEG computes the greatest fixpoint E[G p]: start from p and repeatedly
// drop any state none of whose successors remain in the set.
func (mc *ModelChecker) checkEG(p map[int]bool) map[int]bool {
	res := map[int]bool{}
	for i := range p {
		res[i] = true
	}
	for {
		changed := false
		for i := range res {
			ok := false
			for _, j := range mc.ks.States[i].Outgoing {
				if res[j] {
					ok = true
					break
				}
			}
			if !ok {
				delete(res, i)
				changed = true
			}
		}
		if !changed {
			return res
		}
	}
}

// checkAF computes A[F p]: a state satisfies it if p holds there, or if it
// has at least one successor and every successor already satisfies it.
func (mc *ModelChecker) checkAF(p map[int]bool) map[int]bool {
	res := map[int]bool{}
	for i := range p {
		res[i] = true
	}
	for {
		changed := false
		for i, rec := range mc.ks.States {
			if res[i] || len(rec.Outgoing) == 0 {
				continue
			}
			all := true
			for _, j := range rec.Outgoing {
				if !res[j] {
					all = false
					break
				}
			}
			if all {
				res[i] = true
				changed = true
			}
		}
		if !changed {
			return res
		}
	}
}

// checkAU computes A[p U q]: start from q and add a state if p holds there,
// it has at least one successor, and every successor already satisfies it.
func (mc *ModelChecker) checkAU(p, q map[int]bool) map[int]bool {
	res := map[int]bool{}
	for i := range q {
		res[i] = true
	}
	for {
		changed := false
		for i, rec := range mc.ks.States {
			if res[i] || !p[i] || len(rec.Outgoing) == 0 {
				continue
			}
			all := true
			for _, j := range rec.Outgoing {
				if !res[j] {
					all = false
					break
				}
			}
			if all {
				res[i] = true
				changed = true
			}
		}
		if !changed {
			return res
		}
	}
}
