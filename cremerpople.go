/*
 * cremerpople.go, part of gosugar.
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

//cremerpople.go implements the Cremer-Pople puckering analysis
//(Cremer and Pople, JACS 97:1354-1358, 1975) for 5- and 6-membered
//sugar rings, plus the geometric assignment of anomer and handedness.

package sugar

import (
	"math"

	v3 "github.com/rmera/gosugar/v3"
)

//Pucker contains the Cremer-Pople puckering parameters of a ring.
//angles are in degrees. For furanoses, which only have one puckering
//degree of freedom besides the amplitude, Theta and Q3 are set to -1.
type Pucker struct {
	Amplitude float64
	Phi       float64
	Theta     float64
	Q2        float64
	Q3        float64
}

//ringPlaneNormal computes the mean-plane normal of the recentred ring
//coordinates, as the unit cross product of the two Cremer-Pople
//combination vectors.
func ringPlaneNormal(centred []*v3.Matrix) *v3.Matrix {
	N := float64(len(centred))
	rPrime := v3.Zeros(1)
	r2Prime := v3.Zeros(1)
	tmp := v3.Zeros(1)
	for j, c := range centred {
		argument := 2 * math.Pi * float64(j) / N
		tmp.Scale(math.Sin(argument), c)
		rPrime.Add(rPrime, tmp)
		tmp.Scale(math.Cos(argument), c)
		r2Prime.Add(r2Prime, tmp)
	}
	n := cross(rPrime, r2Prime)
	n.Unit(n)
	return n
}

//recentre returns coord minus centre as a new vector. A nil SugarAtom
//stands for a missing atom at the origin, which recentres to -centre.
func recentre(sa *SugarAtom, centre *v3.Matrix) *v3.Matrix {
	t := v3.Zeros(1)
	if sa == nil {
		t.Scale(-1, centre)
		return t
	}
	t.Sub(sa.Coord, centre)
	return t
}

//handednessSubstituent looks for the exocyclic substituent of the
//ring-closing carbon (the last ring atom), preferring anything over a
//carbon. checkOcc additionally requires the substituent to have the
//same occupancy as the carbon. Returns nil when nothing qualifies.
func (S *Sugar) handednessSubstituent(radius float64, checkOcc bool) *SugarAtom {
	ring := S.ring
	last := ring[len(ring)-1]
	var subst *SugarAtom
	for _, an := range S.nb.AtomsNear(last.Coord, radius) {
		at := S.nb.Atom(an)
		if at.Element() == "H" || at.Name == last.Name {
			continue
		}
		if Distance(S.mol.Coord(an.Index), last.Coord) >= linkDistance {
			continue
		}
		if partOfRing(at, ring) {
			continue
		}
		if checkOcc && last.Occupancy != at.Occupancy {
			continue
		}
		if at.Element() != "C" {
			subst = S.modelAtom(an)
		} else if subst == nil {
			subst = S.modelAtom(an)
		}
	}
	return subst
}

//assignAnomer classifies the sugar as alpha or beta: the anomeric and
//configurational substituents lying on the same side of the mean plane
//as their carbons (or both on the opposite side) means alpha, a mixed
//arrangement means beta. reverse flips the assignment; it accounts for
//the configurational switch that happens when the configurational
//carbon is the ring-closing atom, or lies outside the ring.
func assignAnomer(zAnomSub, zAnomC, zConfSub, zConfC float64, reverse bool) string {
	same := (zAnomSub > zAnomC && zConfSub > zConfC) || (zAnomSub < zAnomC && zConfSub < zConfC)
	if same != reverse {
		return "alpha"
	}
	return "beta"
}

//assignHandedness returns the D/L handedness from the projections of
//the ring-closing carbon and its substituent on the ring normal, or
//"N" when there is no usable substituent.
func (S *Sugar) assignHandedness(subst *SugarAtom, zLast, zSubst float64) string {
	if subst == nil || partOfRing(subst.Atom, S.ring) {
		return "N"
	}
	if zLast-zSubst < 0 {
		return "D"
	}
	return "L"
}

//cremerPoplePyranose runs the full puckering, anomer and handedness
//analysis of a 6-membered ring, storing the results in the Sugar.
func (S *Sugar) cremerPoplePyranose() {
	ring := S.ring
	S.anomeric, S.config = S.locateStereochemistry()

	lurdReverse := false
	if S.config.Carbon != nil {
		if ring[5].Name == S.config.Carbon.Name || !partOfRing(S.config.Carbon.Atom, ring) {
			lurdReverse = true
		}
	}
	centre := v3.Zeros(1)
	for _, at := range ring {
		centre.Add(centre, at.Coord)
	}
	centre.Scale(1.0/6.0, centre)
	S.centre = centre

	centred := make([]*v3.Matrix, 6)
	for i, at := range ring {
		centred[i] = recentre(at, centre)
	}
	n := ringPlaneNormal(centred)
	var z [6]float64
	for i, c := range centred {
		z[i] = c.Dot(n)
	}

	subst := S.handednessSubstituent(stereoSearchRadius, true)
	zSubst := recentre(subst, centre).Dot(n)

	zAnomC := recentre(S.anomeric.Carbon, centre).Dot(n)
	zAnomSub := recentre(S.anomeric.Substituent, centre).Dot(n)
	zConfC := recentre(S.config.Carbon, centre).Dot(n)
	zConfSub := recentre(S.config.Substituent, centre).Dot(n)

	totalPuckering := math.Sqrt(z[0]*z[0] + z[1]*z[1] + z[2]*z[2] + z[3]*z[3] + z[4]*z[4] + z[5]*z[5])
	q3 := math.Sqrt(1.0/6.0) * (z[2] + z[4] + z[0] - z[1] - z[3] - z[5])
	theta := math.Acos(q3 / totalPuckering)
	q2 := totalPuckering * math.Sin(theta)

	angleCos := math.Acos(math.Sqrt(1.0/3.0) * (z[0] + z[1]*math.Cos(4.0*math.Pi/6.0) + z[2]*math.Cos(8.0*math.Pi/6.0) + z[3]*math.Cos(12.0*math.Pi/6.0) + z[4]*math.Cos(16.0*math.Pi/6.0) + z[5]*math.Cos(20.0*math.Pi/6.0)) / q2)
	argASin := -math.Sqrt(1.0/3.0) * (z[1]*math.Sin(4.0*math.Pi/6.0) + z[2]*math.Sin(8.0*math.Pi/6.0) + z[3]*math.Sin(12.0*math.Pi/6.0) + z[4]*math.Sin(16.0*math.Pi/6.0) + z[5]*math.Sin(20.0*math.Pi/6.0))

	//two possible values for phi; eqn 13 of the Cremer-Pople paper
	//disambiguates through the sine expression. The comparison is done
	//at reduced precision, as the two sides only agree approximately.
	var phi2 float64
	if float32(q2*math.Sin(angleCos)) == float32(argASin) {
		phi2 = angleCos
	} else {
		phi2 = 2*math.Pi - angleCos
	}

	S.pucker = Pucker{
		Amplitude: totalPuckering,
		Phi:       phi2 * rad2Deg,
		Theta:     theta * rad2Deg,
		Q2:        q2,
		Q3:        q3,
	}
	S.anomer = assignAnomer(zAnomSub, zAnomC, zConfSub, zConfC, lurdReverse)
	S.handedness = S.assignHandedness(subst, z[5], zSubst)
}

//cremerPopleFuranose is the 5-membered ring version of the analysis.
//There is no theta and no q3: both are stored as -1.
func (S *Sugar) cremerPopleFuranose() {
	ring := S.ring
	S.anomeric, S.config = S.locateStereochemistry()

	lurdReverse := false
	if S.config.Carbon != nil {
		if ring[4].Name == S.config.Carbon.Name || !partOfRing(S.config.Carbon.Atom, ring) {
			lurdReverse = true
		}
	}
	centre := v3.Zeros(1)
	for _, at := range ring {
		centre.Add(centre, at.Coord)
	}
	centre.Scale(1.0/5.0, centre)
	S.centre = centre

	centred := make([]*v3.Matrix, 5)
	for i, at := range ring {
		centred[i] = recentre(at, centre)
	}
	n := ringPlaneNormal(centred)
	var z [5]float64
	for i, c := range centred {
		z[i] = c.Dot(n)
	}

	subst := S.handednessSubstituent(1.5, false)
	zSubst := recentre(subst, centre).Dot(n)

	zAnomC := recentre(S.anomeric.Carbon, centre).Dot(n)
	zAnomSub := recentre(S.anomeric.Substituent, centre).Dot(n)
	zConfC := recentre(S.config.Carbon, centre).Dot(n)
	zConfSub := recentre(S.config.Substituent, centre).Dot(n)

	totalPuckering := math.Sqrt(z[0]*z[0] + z[1]*z[1] + z[2]*z[2] + z[3]*z[3] + z[4]*z[4])

	argACos := math.Sqrt(1.0/3.0) * (z[0] + z[1]*math.Cos(4.0*math.Pi/5.0) + z[2]*math.Cos(8.0*math.Pi/5.0) + z[3]*math.Cos(12.0*math.Pi/5.0) + z[4]*math.Cos(16.0*math.Pi/5.0))
	argASin := -math.Sqrt(1.0/3.0) * (z[1]*math.Sin(4.0*math.Pi/5.0) + z[2]*math.Sin(8.0*math.Pi/5.0) + z[3]*math.Sin(12.0*math.Pi/5.0) + z[4]*math.Sin(16.0*math.Pi/5.0))

	//atan gives results in the [-pi/2, pi/2] range
	phi2 := math.Atan(argASin/argACos) + math.Pi/2
	q2 := argACos / math.Cos(phi2)

	S.pucker = Pucker{
		Amplitude: totalPuckering,
		Phi:       phi2 * rad2Deg,
		Theta:     -1,
		Q2:        q2,
		Q3:        -1,
	}
	S.anomer = assignAnomer(zAnomSub, zAnomC, zConfSub, zConfC, lurdReverse)
	S.handedness = S.assignHandedness(subst, z[4], zSubst)
}
