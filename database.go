/*
 * database.go, part of gosugar.
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

//ReferenceEntry describes a sugar residue code: the names of its ring
//atoms in canonical order (ring oxygen first) and the expected anomer
//("A" or "B") and handedness ("D" or "L") of the idealized compound.
type ReferenceEntry struct {
	Code       string
	Name       string
	RingAtoms  []string
	Anomer     string
	Handedness string
}

//RefLookup finds the reference description for a residue code.
//A nil return means the code is not known.
type RefLookup interface {
	Lookup(code string) *ReferenceEntry
}

//RefDatabase is a simple in-memory RefLookup.
type RefDatabase map[string]*ReferenceEntry

func (d RefDatabase) Lookup(code string) *ReferenceEntry {
	if d == nil {
		return nil
	}
	return d[code]
}

var pyranoseRing = []string{"O5", "C1", "C2", "C3", "C4", "C5"}

//DefaultDatabase covers the monosaccharide residue codes most commonly
//found in glycoprotein models. Custom dictionaries can be supplied
//through the RefLookup interface.
var DefaultDatabase = RefDatabase{
	"NAG": {Code: "NAG", Name: "N-acetyl-D-glucosamine", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "D"},
	"NDG": {Code: "NDG", Name: "2-acetamido-2-deoxy-alpha-D-glucopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "D"},
	"MAN": {Code: "MAN", Name: "alpha-D-mannopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "D"},
	"BMA": {Code: "BMA", Name: "beta-D-mannopyranose", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "D"},
	"GLC": {Code: "GLC", Name: "alpha-D-glucopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "D"},
	"BGC": {Code: "BGC", Name: "beta-D-glucopyranose", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "D"},
	"GAL": {Code: "GAL", Name: "beta-D-galactopyranose", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "D"},
	"GLA": {Code: "GLA", Name: "alpha-D-galactopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "D"},
	"A2G": {Code: "A2G", Name: "2-acetamido-2-deoxy-alpha-D-galactopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "D"},
	"NGA": {Code: "NGA", Name: "2-acetamido-2-deoxy-beta-D-galactopyranose", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "D"},
	"FUC": {Code: "FUC", Name: "alpha-L-fucopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "L"},
	"FUL": {Code: "FUL", Name: "beta-L-fucopyranose", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "L"},
	"XYP": {Code: "XYP", Name: "beta-D-xylopyranose", RingAtoms: pyranoseRing, Anomer: "B", Handedness: "D"},
	"XYS": {Code: "XYS", Name: "alpha-D-xylopyranose", RingAtoms: pyranoseRing, Anomer: "A", Handedness: "D"},
	"SIA": {Code: "SIA", Name: "N-acetyl-alpha-neuraminic acid", RingAtoms: []string{"O6", "C2", "C3", "C4", "C5", "C6"}, Anomer: "A", Handedness: "D"},
	"FRU": {Code: "FRU", Name: "beta-D-fructofuranose", RingAtoms: []string{"O5", "C2", "C3", "C4", "C5"}, Anomer: "B", Handedness: "D"},
	"RIB": {Code: "RIB", Name: "beta-D-ribofuranose", RingAtoms: []string{"O4", "C1", "C2", "C3", "C4"}, Anomer: "B", Handedness: "D"},
}
