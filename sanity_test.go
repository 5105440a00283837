/*
 * sanity_test.go, part of gosugar.
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

func TestExamineRingPyranose(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	bonds, angles, torsions := S.RingBonds(), S.RingAngles(), S.RingTorsions()
	if len(bonds) != 6 || len(angles) != 6 || len(torsions) != 6 {
		Te.Fatal("internal coordinate counts:", len(bonds), len(angles), len(torsions))
	}
	//the C-O bonds open and close the sequence
	if !approx(bonds[0], 1.43, 0.001) || !approx(bonds[5], 1.43, 0.001) {
		Te.Error("C-O bonds:", bonds[0], bonds[5])
	}
	if !approx(bonds[2], 1.53, 0.001) {
		Te.Error("C-C bond:", bonds[2])
	}
	if !approx(angles[0], 112.0, 0.01) || !approx(angles[2], 109.0, 0.01) {
		Te.Error("ring angles:", angles[0], angles[2])
	}
	if S.BondRMSD() > 0.001 || S.AngleRMSD() > 0.01 {
		Te.Error("near-ideal ring with RMSDs", S.BondRMSD(), S.AngleRMSD())
	}
	//chair torsions alternate sign, around 55 degrees
	for i, t := range torsions {
		if !approx(t, 55, 15) && !approx(t, -55, 15) {
			Te.Error("torsion", i, "out of chair range:", t)
		}
		if i > 0 && (t > 0) == (torsions[i-1] > 0) {
			Te.Error("chair torsions do not alternate:", torsions)
		}
	}
}

func TestExamineRingFuranose(Te *testing.T) {
	mol := buildMolecule(Te, ribAtoms)
	mon := mol.Monomer(1, 'A')
	mon.Name = "RIB"
	S, err := NewSugar(mol, mon, nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	if len(S.RingBonds()) != 5 || len(S.RingAngles()) != 5 || len(S.RingTorsions()) != 5 {
		Te.Fatal("internal coordinate counts for a 5-ring")
	}
	if !approx(S.BondRMSD(), 0.007065, 0.001) {
		Te.Error("bond RMSD:", S.BondRMSD())
	}
	if !approx(S.AngleRMSD(), 6.296619, 0.05) {
		Te.Error("angle RMSD:", S.AngleRMSD())
	}
	d := S.Diagnostics()
	if !d.Ring || !d.Chirality || !d.Anomer || !d.BondRMSD || !d.AngleRMSD || !d.Sane {
		Te.Error("diagnostics:", d)
	}
}

//the same coordinates under a residue code with the opposite anomer
//must fail the anomer check and only that one.
func TestAnomerMismatch(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	for i := 0; i < mol.Len(); i++ {
		mol.Atom(i).Molname = "GLC" //alpha-D-glucopyranose
	}
	S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	d := S.Diagnostics()
	if d.Anomer {
		Te.Error("beta sugar passed an alpha reference check")
	}
	if !d.Ring || !d.Chirality || !d.BondRMSD || !d.AngleRMSD {
		Te.Error("unrelated checks failed:", d)
	}
	if S.Sane() {
		Te.Error("anomer mismatch flagged sane")
	}
}

//a stretched ring bond breaks both the closure check and the bond
//RMSD.
func TestBrokenRing(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	mon := mol.Monomer(1, 'A')
	i := mon.Lookup("C3", ' ', LookupAny)
	c := mon.Coord(i)
	c.Set(0, 0, c.At(0, 0)-0.28)
	c.Set(0, 1, c.At(0, 1)+0.28)
	S, err := NewSugar(mol, mon, nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	d := S.Diagnostics()
	if d.BondRMSD {
		Te.Error("distorted ring passed the bond check, RMSD", S.BondRMSD())
	}
	if S.Sane() {
		Te.Error("distorted ring flagged sane")
	}
}
