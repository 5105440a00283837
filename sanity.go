/*
 * sanity.go, part of gosugar.
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

//sanity.go measures the internal geometry of a detected ring against
//idealized values and combines the results with the stereochemical
//assignments into a set of per-sugar diagnostic flags.

package sugar

import "math"

//idealized ring internal coordinates. The C-O bonds and the angles at
//and around the ring oxygen differ from the pure-carbon ones.
const (
	idealCOBond      = 1.430
	idealCCBond      = 1.530
	idealOAngle      = 112.0
	idealCAngle      = 109.0
	pyranoseBondTol  = 0.035
	furanoseBondTol  = 0.040
	pyranoseAngleTol = 4.0
	furanoseAngleMin = 4.0
	furanoseAngleMax = 7.5
)

//SanityFlags is the outcome of the geometric and stereochemical checks
//on one sugar. Sane is the conjunction of the other five flags.
type SanityFlags struct {
	Ring      bool
	Chirality bool
	Anomer    bool
	BondRMSD  bool
	AngleRMSD bool
	Sane      bool
}

func rmsd(values, ideals []float64) float64 {
	var acc float64
	for i, v := range values {
		d := v - ideals[i]
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(values)))
}

//examineRing measures every ring bond, vertex angle and torsion,
//stores them in the Sugar together with the bond and angle RMSDs from
//ideality, and reports whether consecutive ring atoms are actually
//bonded, i.e. whether the ring closes.
func (S *Sugar) examineRing() bool {
	ring := S.ring
	n := len(ring)
	last := n - 1

	bonds := make([]float64, 0, n)
	bondIdeals := make([]float64, 0, n)
	ideal := func(i int) float64 {
		if i == 0 || i == last {
			return idealCOBond
		}
		return idealCCBond
	}
	//the oxygen-C(last) bond is measured from both ends; the
	//anomeric C-O bond is left out.
	bonds = append(bonds, Distance(ring[last].Coord, ring[0].Coord))
	bondIdeals = append(bondIdeals, idealCOBond)
	for i := 1; i <= n-2; i++ {
		bonds = append(bonds, Distance(ring[i+1].Coord, ring[i].Coord))
		bondIdeals = append(bondIdeals, ideal(i))
	}
	bonds = append(bonds, Distance(ring[0].Coord, ring[last].Coord))
	bondIdeals = append(bondIdeals, idealCOBond)

	angles := make([]float64, 0, n)
	angleIdeals := make([]float64, 0, n)
	angles = append(angles, VertexAngle(ring[last].Coord, ring[0].Coord, ring[1].Coord)*rad2Deg)
	angleIdeals = append(angleIdeals, idealOAngle)
	for i := 1; i <= n-2; i++ {
		angles = append(angles, VertexAngle(ring[i-1].Coord, ring[i].Coord, ring[i+1].Coord)*rad2Deg)
		angleIdeals = append(angleIdeals, idealCAngle)
	}
	angles = append(angles, VertexAngle(ring[n-2].Coord, ring[last].Coord, ring[0].Coord)*rad2Deg)
	angleIdeals = append(angleIdeals, idealOAngle)

	torsions := make([]float64, 0, n)
	torsions = append(torsions, Dihedral(ring[last].Coord, ring[0].Coord, ring[1].Coord, ring[2].Coord)*rad2Deg)
	for i := 1; i <= n-2; i++ {
		if i == n-2 {
			torsions = append(torsions, Dihedral(ring[i-1].Coord, ring[i].Coord, ring[i+1].Coord, ring[0].Coord)*rad2Deg)
		} else {
			torsions = append(torsions, Dihedral(ring[i-1].Coord, ring[i].Coord, ring[i+1].Coord, ring[i+2].Coord)*rad2Deg)
		}
	}
	torsions = append(torsions, Dihedral(ring[n-2].Coord, ring[last].Coord, ring[0].Coord, ring[1].Coord)*rad2Deg)

	S.ringBonds = bonds
	S.ringAngles = angles
	S.ringTorsions = torsions
	S.bondRMSD = rmsd(bonds, bondIdeals)
	S.angleRMSD = rmsd(angles, angleIdeals)

	for i := 0; i < last; i++ {
		if !Bonded(ring[i], ring[i+1]) {
			return false
		}
	}
	return Bonded(ring[last], ring[0])
}

//runDiagnostics fills in the sanity flags of the sugar. Without a
//reference entry only the ring closure can be judged; every other flag
//stays false, so such sugars are never reported as sane.
func (S *Sugar) runDiagnostics() {
	S.diag = SanityFlags{}
	S.diag.Ring = S.examineRing()
	if S.ref == nil {
		return
	}
	S.diag.Chirality = (S.handedness != "D" && S.ref.Handedness != "D") ||
		(S.handedness != "L" && S.ref.Handedness != "L")
	S.diag.Anomer = (S.anomer == "alpha" && S.ref.Anomer != "B") ||
		(S.anomer == "beta" && S.ref.Anomer != "A")
	if len(S.ring) == 5 {
		S.diag.BondRMSD = S.bondRMSD < furanoseBondTol
		S.diag.AngleRMSD = S.angleRMSD > furanoseAngleMin && S.angleRMSD < furanoseAngleMax
	} else {
		S.diag.BondRMSD = S.bondRMSD < pyranoseBondTol
		S.diag.AngleRMSD = S.angleRMSD < pyranoseAngleTol
	}
	S.diag.Sane = S.diag.Ring && S.diag.Chirality && S.diag.Anomer &&
		S.diag.BondRMSD && S.diag.AngleRMSD
}
