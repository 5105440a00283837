/*
 * bonds_test.go, part of gosugar.
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

import "testing"

func TestBondedDist(Te *testing.T) {
	cases := []struct {
		e1, e2 string
		d      float64
		want   bool
	}{
		{"C", "O", 1.43, true},
		{"O", "C", 1.43, true}, //element order must not matter
		{"C", "O", 1.55, false},
		{"C", "O", 1.10, false},
		{"C", "C", 1.53, true},
		{"C", "C", 1.62, false},
		{"C", "H", 1.05, true},
		{"H", "O", 0.95, true},
		{"H", "O", 1.10, false},
		{"S", "O", 1.70, true}, //unlisted pairs take the default window
		{"S", "O", 1.85, false},
		{"C", "C", 1.18, false}, //windows are open intervals
	}
	for _, c := range cases {
		if got := BondedDist(c.e1, c.e2, c.d); got != c.want {
			Te.Error(c.e1, c.e2, c.d, "got", got)
		}
	}
}

func TestBonded(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	mon := mol.Monomer(1, 'A')
	at := func(name string) *SugarAtom {
		i := mon.Lookup(name, ' ', LookupAny)
		if i < 0 {
			Te.Fatal("atom not found:", name)
		}
		return NewSugarAtom(mon.Atom(i), mon.Coord(i))
	}
	if !Bonded(at("C1"), at("C2")) {
		Te.Error("ring carbons not bonded")
	}
	if !Bonded(at("O5"), at("C1")) {
		Te.Error("ring oxygen not bonded to the anomeric carbon")
	}
	if Bonded(at("C1"), at("C3")) {
		Te.Error("1,3 carbons reported as bonded")
	}
	if Bonded(at("O1"), at("O5")) {
		Te.Error("geminal oxygens reported as bonded")
	}
}

func TestSearchWindow(Te *testing.T) {
	if !inSearchWindow(1.0) || !inSearchWindow(1.55) {
		Te.Error("typical bond lengths rejected")
	}
	if inSearchWindow(0.5) || inSearchWindow(1.61) || inSearchWindow(2.0) {
		Te.Error("window ends should be excluded")
	}
}
