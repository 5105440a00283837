/*
 * bonds.go, part of gosugar.
 *
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

import (
	v3 "github.com/rmera/gosugar/v3"
)

//A bondWindow is the open interval of distances, in Angstroms, within
//which two elements are considered covalently bonded.
type bondWindow struct {
	min, max float64
}

//Element-pair bond windows. Pairs are stored with the elements in
//lexicographic order.
var bondWindows = map[[2]string]bondWindow{
	{"C", "C"}: {1.18, 1.60},
	{"C", "N"}: {1.24, 1.52},
	{"C", "O"}: {1.16, 1.50},
	{"C", "H"}: {0.96, 1.14},
	{"H", "N"}: {0.90, 1.10},
	{"H", "O"}: {0.88, 1.04},
}

//Window for element pairs not in the table.
var defaultBondWindow = bondWindow{1.20, 1.80}

//Window used when enumerating candidate neighbours during the ring
//search, before the element-specific criterion is applied.
const (
	searchBondMin = 0.5
	searchBondMax = 1.61
)

//pairKey returns the canonical (lexicographically ordered) key for a
//pair of elements.
func pairKey(e1, e2 string) [2]string {
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	return [2]string{e1, e2}
}

//BondedDist reports whether two atoms of the given elements, separated
//by dist Angstroms, are considered covalently bonded. The windows are
//open intervals, and symmetric on the order of the elements.
func BondedDist(e1, e2 string, dist float64) bool {
	w, ok := bondWindows[pairKey(e1, e2)]
	if !ok {
		w = defaultBondWindow
	}
	return dist > w.min && dist < w.max
}

//Bonded reports whether the two given atoms are covalently bonded,
//judging by their elements and the euclidean distance between them.
func Bonded(a, b *SugarAtom) bool {
	return BondedDist(a.Element(), b.Element(), Distance(a.Coord, b.Coord))
}

//bondedCoord is as Bonded, but takes the coordinates separately, for
//use with symmetry-generated positions.
func bondedCoord(a, b *Atom, ca, cb *v3.Matrix) bool {
	return BondedDist(a.Element(), b.Element(), Distance(ca, cb))
}

//inSearchWindow reports whether a distance falls in the loose window
//used to enumerate neighbour candidates in the ring search.
func inSearchWindow(dist float64) bool {
	return dist > searchBondMin && dist < searchBondMax
}
