/*
 * stereo.go, part of gosugar.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sugar

//StereoPair is a stereocentre: a ring carbon and the substituent used
//to judge its configuration. Either field is nil when the search could
//not identify the corresponding atom.
type StereoPair struct {
	Carbon      *SugarAtom
	Substituent *SugarAtom
}

//The radius passed to the neighbour searches. The grid index returns
//everything in the surrounding cells, so candidates farther than this
//are still considered and then filtered by actual distance.
const stereoSearchRadius = 1.2

//Maximum distance, in Angstroms, for a substituent to count as linked
//to its carbon.
const linkDistance = 1.8

//modelAtom builds a SugarAtom from a neighbour candidate, with the
//coordinates the atom has in the model (not those of the symmetry
//image).
func (S *Sugar) modelAtom(an AtomNear) *SugarAtom {
	return NewSugarAtom(S.nb.Atom(an), S.mol.Coord(an.Index))
}

//locateStereochemistry identifies the anomeric carbon (ring position
//1) with its substituent, and the configurational carbon with its
//substituent. The configurational carbon is the highest-ranked
//stereocentre: the search starts at the ring carbon next to the
//anomeric one, keeps the last qualifying in-ring carbon, and then
//walks outward along carbon substituents farther from the ring-closing
//atom, as long as they remain stereocentres.
func (S *Sugar) locateStereochemistry() (anomeric, config StereoPair) {
	ring := S.ring
	if len(ring) == 0 {
		return anomeric, config
	}
	if ring[1].Element() == "C" {
		anomeric.Carbon = ring[1]
		for _, an := range S.nb.AtomsNear(ring[1].Coord, stereoSearchRadius) {
			at := S.nb.Atom(an)
			if at.Element() == "H" || at.Name == ring[1].Name {
				continue
			}
			if !BondedDist(at.Element(), ring[1].Element(), S.nb.SymDistance(an, ring[1].Coord)) {
				continue
			}
			if partOfRing(at, ring) {
				continue
			}
			//prefer any element over carbon: a carbon is only kept
			//when nothing else qualifies
			if at.Element() != "C" {
				anomeric.Substituent = S.modelAtom(an)
			} else if anomeric.Substituent == nil {
				anomeric.Substituent = S.modelAtom(an)
			}
		}
	}
	//in-ring configurational carbon: the search records the last
	//(highest ranked) qualifying carbon
	for i := 2; i < len(ring); i++ {
		if ring[i].Element() != "C" || !S.isStereocentre(ring[i]) {
			continue
		}
		config.Carbon = ring[i]
		for _, an := range S.nb.AtomsNear(ring[i].Coord, stereoSearchRadius) {
			at := S.nb.Atom(an)
			if partOfRing(at, ring) || at.Element() == "H" {
				continue
			}
			if anomeric.Carbon != nil && !altEq(at.AltConf, anomeric.Carbon.AltConf) {
				continue
			}
			if Distance(S.mol.Coord(an.Index), ring[i].Coord) >= linkDistance {
				continue
			}
			if at.Name == ring[i-1].Name || at.Name == ring[0].Name || at.Name == ring[i].Name {
				continue
			}
			config.Substituent = S.modelAtom(an)
		}
	}
	//walk outward from the ring while the substituents remain
	//stereocentres
	next := config.Substituent
	for next != nil && next.Name != config.Carbon.Name && S.isStereocentre(next) {
		config.Carbon = next
		for _, an := range S.nb.AtomsNear(config.Carbon.Coord, stereoSearchRadius) {
			at := S.nb.Atom(an)
			if partOfRing(at, ring) || at.Element() == "H" || !altEq(at.AltConf, config.Carbon.AltConf) {
				continue
			}
			c := S.mol.Coord(an.Index)
			if Distance(c, config.Carbon.Coord) >= linkDistance {
				continue
			}
			if at.Element() == "C" {
				last := ring[len(ring)-1]
				if Distance(c, last.Coord) > Distance(config.Carbon.Coord, last.Coord) {
					next = S.modelAtom(an)
				}
			} else {
				config.Substituent = S.modelAtom(an)
			}
		}
	}
	return anomeric, config
}

//isStereocentre reports whether a carbon has more than two distinct
//non-hydrogen substituents, counting atoms of an element already seen
//only when that element is carbon, or when the candidate is the ring
//oxygen. Distances to symmetry images are measured against the
//nearest lattice copy.
func (S *Sugar) isStereocentre(at *SugarAtom) bool {
	if at.Element() != "C" {
		return false
	}
	var subs []*Atom
	for _, an := range S.nb.AtomsNear(at.Coord, stereoSearchRadius) {
		if S.nb.SymDistance(an, at.Coord) >= linkDistance {
			continue
		}
		cand := S.nb.Atom(an)
		if cand.Element() == "H" || cand.Name == at.Name || !altEq(cand.AltConf, at.AltConf) {
			continue
		}
		found := false
		for _, s := range subs {
			if s.Element() != "C" && s.Element() == cand.Element() {
				found = true
			}
		}
		if !found || cand.Name == S.ring[0].Name {
			subs = append(subs, cand)
		}
	}
	return len(subs) > 2
}
