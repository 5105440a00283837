/*
 * geometry.go, part of gosugar.
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
	"fmt"
	"math"

	v3 "github.com/rmera/gosugar/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//deg2Rad and rad2Deg are the conversion factors between degrees and radians.
const (
	deg2Rad = math.Pi / 180
	rad2Deg = 180 / math.Pi
)

//cross returns the cross product of the first vectors of a and b in a
//newly allocated vector.
func cross(a, b *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	c.Cross(a, b)
	return c
}

//diff returns b-a in a newly allocated vector.
func diff(a, b *v3.Matrix) *v3.Matrix {
	t := v3.Zeros(1)
	t.Sub(b, a)
	return t
}

//Distance returns the euclidean distance between the first vectors of
//a and b.
func Distance(a, b *v3.Matrix) float64 {
	return diff(a, b).Norm(0)
}

//Angle returns the angle between the vectors v1 and v2, in radians.
func Angle(v1, v2 *v3.Matrix) float64 {
	arg := v1.Dot(v2) / (v1.Norm(0) * v2.Norm(0))
	//floating point math can push the quotient just out of [-1,1]
	switch {
	case math.Abs(arg-1) <= appzero:
		return 0
	case math.Abs(arg+1) <= appzero:
		return math.Pi
	}
	return math.Acos(arg)
}

//VertexAngle returns the angle defined at the vertex b by the points
//a, b and c, in radians.
func VertexAngle(a, b, c *v3.Matrix) float64 {
	return Angle(diff(b, a), diff(b, c))
}

//Dihedral calculates the dihedral between the points a, b, c, d, where
//the first plane is defined by abc and the second by bcd. The result is
//in radians, in the range (-pi, pi].
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	for i, point := range []*v3.Matrix{a, b, c, d} {
		if point == nil {
			panic(PanicMsg(fmt.Sprintf("gosugar: Vector %d is nil", i)))
		}
		pr, pc := point.Dims()
		if pr != 1 || pc != 3 {
			panic(PanicMsg(fmt.Sprintf("gosugar: Vector %d has invalid shape", i)))
		}
	}
	b1 := diff(a, b)
	b2 := diff(b, c)
	b3 := diff(c, d)
	n1 := cross(b1, b2)
	n2 := cross(b2, b3)
	scaled := v3.Zeros(1)
	scaled.Scale(b2.Norm(0), b1)
	return math.Atan2(scaled.Dot(n2), n1.Dot(n2))
}
