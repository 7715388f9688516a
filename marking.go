// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package nets

// Marking is the type of Petri net markings: a set of Atoms (place index and
// token count) sorted in increasing order of place index. Multiplicities are
// always strictly positive; a place holding zero tokens never appears as an
// entry, so two markings naming the same places with the same counts are
// always equal and hash equal, regardless of the order operations built them
// in.
type Marking []Atom

// Atom is a pair of a place index (an index in Net.Places) and a token count.
// We never store an atom with a zero count.
type Atom struct{ Pl, Mult int }

// AddToPlace returns the Marking obtained from m by adding mult tokens to
// place pl. The result may share m's underlying array, and m's entries may be
// modified in place. A negative mult removes tokens; the caller must ensure the result
// never goes negative for a place that matters (TryFire only ever subtracts
// what Get already reported as present).
func (m Marking) AddToPlace(pl int, mult int) Marking {
	if mult == 0 {
		return m
	}
	if m == nil {
		return Marking{Atom{pl, mult}}
	}
	for i := range m {
		if m[i].Pl == pl {
			m[i].Mult += mult
			if m[i].Mult == 0 {
				return append(m[:i], m[i+1:]...)
			}
			return m
		}
		if m[i].Pl > pl {
			return append(m[:i], append(Marking{Atom{pl, mult}}, m[i:]...)...)
		}
	}
	return append(m, Atom{pl, mult})
}

// Add returns the pointwise sum of two markings, m and m2.
func (m Marking) Add(m2 Marking) Marking {
	res := Marking{}
	k1, k2 := 0, 0
	for {
		switch {
		case k1 == len(m):
			return append(res, m2[k2:]...)
		case k2 == len(m2):
			return append(res, m[k1:]...)
		case m[k1].Pl == m2[k2].Pl:
			if mult := m[k1].Mult + m2[k2].Mult; mult != 0 {
				res = append(res, Atom{Pl: m[k1].Pl, Mult: mult})
			}
			k1++
			k2++
		case m[k1].Pl < m2[k2].Pl:
			res = append(res, m[k1])
			k1++
		default:
			res = append(res, m2[k2])
			k2++
		}
	}
}

// Get returns the multiplicity associated with place pl. The returned value is
// 0 if pl holds no tokens in m.
func (m Marking) Get(pl int) int {
	if m == nil {
		return 0
	}
	for _, a := range m {
		if a.Pl == pl {
			return a.Mult
		}
		if a.Pl > pl {
			return 0
		}
	}
	return 0
}

// remove deletes place pl's entry from m, if present, and shifts every entry
// for a place index greater than pl down by one. It is used by
// Net.RemovePlace to keep markings coherent after renumbering.
func (m Marking) remove(pl int) Marking {
	res := make(Marking, 0, len(m))
	for _, a := range m {
		switch {
		case a.Pl < pl:
			res = append(res, a)
		case a.Pl == pl:
			// dropped
		default:
			res = append(res, Atom{Pl: a.Pl - 1, Mult: a.Mult})
		}
	}
	return res
}

// Clone returns a copy of Marking m.
func (m Marking) Clone() Marking {
	mc := make(Marking, len(m))
	copy(mc, m)
	return mc
}

// Equal reports whether Marking m2 is equal to m.
func (m Marking) Equal(m2 Marking) bool {
	if len(m) != len(m2) {
		return false
	}
	for k := range m {
		if m[k] != m2[k] {
			return false
		}
	}
	return true
}
