/*
 * cremerpople_test.go, part of gosugar.
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
	"math"
	"testing"
)

//applies a rotation of ang radians around the x axis plus a rigid
//shift, which must leave every puckering parameter unchanged.
func TestPuckerRigidInvariance(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	ref, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	ang := math.Pi / 7
	sin, cos := math.Sin(ang), math.Cos(ang)
	moved := buildMolecule(Te, glcAtoms)
	for i := 0; i < moved.Len(); i++ {
		c := moved.Coord(i)
		y, z := c.At(0, 1), c.At(0, 2)
		c.Set(0, 0, c.At(0, 0)+5.0)
		c.Set(0, 1, y*cos-z*sin-3.0)
		c.Set(0, 2, y*sin+z*cos+11.0)
	}
	S, err := NewSugar(moved, moved.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	p, q := ref.Pucker(), S.Pucker()
	if !approx(p.Amplitude, q.Amplitude, 1e-6) || !approx(p.Theta, q.Theta, 1e-4) ||
		!approx(p.Phi, q.Phi, 1e-3) {
		Te.Error("puckering changed under rigid motion:", p, "vs", q)
	}
	if S.Anomer() != ref.Anomer() || S.Handedness() != ref.Handedness() ||
		S.Conformation() != ref.Conformation() {
		Te.Error("stereo assignment changed under rigid motion")
	}
}

//mirroring through the xy plane inverts the chair and the handedness
//but not the anomer.
func TestMirroredChair(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		c.Set(0, 2, -c.At(0, 2))
	}
	S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	if !approx(S.Pucker().Theta, 180.0-3.744467, 1e-2) {
		Te.Error("mirrored theta", S.Pucker().Theta)
	}
	if S.Conformation() != Conf1C4 {
		Te.Error("mirrored conformation", S.Conformation())
	}
	if S.Anomer() != "beta" {
		Te.Error("anomer changed under mirroring:", S.Anomer())
	}
	if S.Handedness() != "L" {
		Te.Error("handedness did not flip under mirroring:", S.Handedness())
	}
	//an L sugar under a D reference entry cannot be sane
	if S.Sane() || S.Diagnostics().Chirality {
		Te.Error("mirrored sugar passed the chirality check")
	}
}

//rigid shifts place the ring differently relative to the neighbour
//grid; the substituent searches must not depend on that.
func TestTranslatedChair(Te *testing.T) {
	for _, shift := range []float64{4.435, -3.1, 7.999} {
		moved := make([]tatom, len(glcAtoms))
		copy(moved, glcAtoms)
		for i := range moved {
			moved[i].y += shift
		}
		mol := buildMolecule(Te, moved)
		S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
		if err != nil {
			Te.Fatal(err)
		}
		if S.Anomer() != "beta" || S.Handedness() != "D" {
			Te.Error("stereo assignment changed by a shift of", shift, ":",
				S.Anomer(), S.Handedness())
		}
		cf := S.ConfigPair()
		if cf.Carbon.Name != "C5" || cf.Substituent.Name != "C6" {
			Te.Error("configurational centre moved by a shift of", shift, ":",
				cf.Carbon.Name, cf.Substituent.Name)
		}
		if S.Conformation() != Conf4C1 {
			Te.Error("conformation changed by a shift of", shift)
		}
	}
}

//when the only non-hydrogen neighbours of the ring-closing carbon are
//ring atoms themselves, no handedness can be assigned.
func TestHandednessNoSubstituent(Te *testing.T) {
	trimmed := []tatom{}
	for _, ta := range glcAtoms {
		if ta.name == "C6" {
			continue
		}
		trimmed = append(trimmed, ta)
	}
	mol := buildMolecule(Te, trimmed)
	S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	if !S.Supported() {
		Te.Fatal("pyranose without C6 reported as unsupported")
	}
	if S.Handedness() != "N" {
		Te.Error("handedness without a substituent:", S.Handedness())
	}
	if S.Conformation() != Conf4C1 {
		Te.Error("ring geometry affected by a missing substituent:",
			S.Conformation())
	}
}

func TestPuckerConsistency(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	p := S.Pucker()
	//Q^2 = q2^2 + q3^2 holds exactly for 6-membered rings
	if !approx(p.Amplitude*p.Amplitude, p.Q2*p.Q2+p.Q3*p.Q3, 1e-9) {
		Te.Error("puckering decomposition broken:", p)
	}
	if !approx(p.Q2, p.Amplitude*math.Sin(p.Theta*math.Pi/180), 1e-9) {
		Te.Error("q2 inconsistent with theta:", p)
	}
}
