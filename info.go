// Copyright 2025. Silvano DAL ZILIO. All rights reserved.
// Use of this source code is governed by the AGPL license
// that can be found in the LICENSE file.

package nets

// PlaceInfo is the adjacency record for a single place: which transitions
// consume from it (Outgoing) and which produce into it (Incoming), together
// with the arc multiplicity on each side.
type PlaceInfo struct {
	Incoming map[int]int // transition id -> tokens produced into this place (postset entry)
	Outgoing map[int]int // transition id -> tokens consumed from this place (preset entry)
}

// Info is the net-wide adjacency index used by the reducer. It mirrors a
// Net's preset/postset structure the other way round (per place instead of
// per transition) so that reduction rewrites can look up a place's
// neighbourhood in O(1) instead of scanning every transition.
type Info struct {
	Places []PlaceInfo
}

// BuildInfo computes the adjacency index of net from scratch.
func BuildInfo(net *Net) *Info {
	info := &Info{Places: make([]PlaceInfo, len(net.Places))}
	for k := range info.Places {
		info.Places[k] = PlaceInfo{Incoming: map[int]int{}, Outgoing: map[int]int{}}
	}
	for tr, t := range net.Transitions {
		for _, a := range t.Preset {
			info.Places[a.Pl].Outgoing[tr] = a.Mult
		}
		for _, a := range t.Postset {
			info.Places[a.Pl].Incoming[tr] = a.Mult
		}
	}
	return info
}

// Rebuild recomputes info in place from net, discarding whatever it held
// before. It is the in-place form of BuildInfo.
func (info *Info) Rebuild(net *Net) {
	*info = *BuildInfo(net)
}

// RemoveTransition drops transition tr from every place's adjacency maps and
// renumbers every transition id greater than tr down by one, mirroring
// Net.RemoveTransition.
func (info *Info) RemoveTransition(tr int) {
	for k := range info.Places {
		info.Places[k].Incoming = shiftDown(info.Places[k].Incoming, tr)
		info.Places[k].Outgoing = shiftDown(info.Places[k].Outgoing, tr)
	}
}

// RemovePlace drops place pl's adjacency record and shifts every place index
// above it down by one, mirroring Net.RemovePlace.
func (info *Info) RemovePlace(pl int) {
	info.Places = append(info.Places[:pl], info.Places[pl+1:]...)
}

// shiftDown returns a copy of m with key id removed and every key greater
// than id decremented by one.
func shiftDown(m map[int]int, id int) map[int]int {
	res := make(map[int]int, len(m))
	for k, v := range m {
		switch {
		case k < id:
			res[k] = v
		case k == id:
			// dropped
		default:
			res[k-1] = v
		}
	}
	return res
}
