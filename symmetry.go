/*
 * symmetry.go, part of gosugar.
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

	v3 "github.com/rmera/gosugar/v3"
)

// UnitCell is a crystallographic unit cell. Cell lengths are in
// Angstroms and angles in degrees.
type UnitCell struct {
	A, B, C             float64
	Alpha, Beta, Gamma  float64
	orth, frac          *v3.Matrix //3x3 conversion matrices
}

// NewUnitCell builds a unit cell from its lengths (Angstroms) and
// angles (degrees), precomputing the orthogonalization and
// fractionalization matrices. It returns an error for degenerate
// cells.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	ca := math.Cos(alpha * deg2Rad)
	cb := math.Cos(beta * deg2Rad)
	cg := math.Cos(gamma * deg2Rad)
	sg := math.Sin(gamma * deg2Rad)
	vf := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if vf <= 0 || a <= 0 || b <= 0 || c <= 0 {
		return nil, CError{"degenerate unit cell", []string{"NewUnitCell"}}
	}
	vol := a * b * c * math.Sqrt(vf)
	orth, _ := v3.NewMatrix([]float64{
		a, b * cg, c * cb,
		0, b * sg, c * (ca - cb*cg) / sg,
		0, 0, vol / (a * b * sg),
	})
	frac := v3.Zeros(3)
	if err := frac.Invert(orth); err != nil {
		return nil, errDecorate(err, "NewUnitCell")
	}
	return &UnitCell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma, orth: orth, frac: frac}, nil
}

// Volume returns the cell volume in cubic Angstroms.
func (U *UnitCell) Volume() float64 {
	return U.orth.At(0, 0) * U.orth.At(1, 1) * U.orth.At(2, 2)
}

// apply3x3 multiplies the 3x3 matrix m by the first (row) vector of v,
// treating it as a column vector, and returns the result as a new row
// vector.
func apply3x3(m, v *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(1)
	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			s += m.At(i, j) * v.At(0, j)
		}
		ret.Set(0, i, s)
	}
	return ret
}

// Orthogonalize converts a fractional coordinate to an orthogonal
// (cartesian) one.
func (U *UnitCell) Orthogonalize(f *v3.Matrix) *v3.Matrix {
	return apply3x3(U.orth, f)
}

// Fractionalize converts an orthogonal (cartesian) coordinate to a
// fractional one.
func (U *UnitCell) Fractionalize(o *v3.Matrix) *v3.Matrix {
	return apply3x3(U.frac, o)
}

// Symop is a crystallographic symmetry operation in fractional
// coordinates: a 3x3 rotation and a translation.
type Symop struct {
	Rot   [9]float64
	Trans [3]float64
}

// Identity returns the identity operation.
func Identity() Symop {
	return Symop{Rot: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// IsIdentity reports whether the operation is the identity.
func (S Symop) IsIdentity() bool {
	return S == Identity()
}

// Apply transforms the fractional coordinate f by the operation,
// returning a new vector.
func (S Symop) Apply(f *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(1)
	for i := 0; i < 3; i++ {
		s := S.Trans[i]
		for j := 0; j < 3; j++ {
			s += S.Rot[3*i+j] * f.At(0, j)
		}
		ret.Set(0, i, s)
	}
	return ret
}

// P1 returns the symmetry operations of the P1 spacegroup, i.e. just
// the identity.
func P1() []Symop {
	return []Symop{Identity()}
}

// latticeCopyNear shifts the fractional coordinate f by whole lattice
// translations so it lands on the copy nearest to the fractional
// coordinate target. It returns a new vector.
func latticeCopyNear(f, target *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		d := target.At(0, j) - f.At(0, j)
		ret.Set(0, j, f.At(0, j)+math.Round(d))
	}
	return ret
}
