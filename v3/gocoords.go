/*
 * gocoords.go, part of gosugar.
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

package v3

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, make([]float64, 3*vecs))}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//AddVec adds the single vector vec to every vector of A, putting the
//result in the receiver. Panics on dimension mismatch.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	fr, fc := F.Dims()
	if vr != 1 || ac != vc || fc != ac || fr != ar {
		panic(ErrShape)
	}
	x, y, z := vec.At(0, 0), vec.At(0, 1), vec.At(0, 2)
	for i := 0; i < ar; i++ {
		F.Set(i, 0, A.At(i, 0)+x)
		F.Set(i, 1, A.At(i, 1)+y)
		F.Set(i, 2, A.At(i, 2)+z)
	}
}

//SubVec subtracts the single vector vec from every vector of A, putting
//the result in the receiver. A and vec must not reference the same Matrix.
func (F *Matrix) SubVec(A, vec *Matrix) {
	vec.Scale(-1, vec)
	F.AddVec(A, vec)
	vec.Scale(-1, vec)
}

//SomeVecs puts in the receiver the vectors of A whose indexes are in
//clist, in the order of clist. Panics on dimension mismatch.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for i, v := range clist {
		F.Set(i, 0, A.At(v, 0))
		F.Set(i, 1, A.At(v, 1))
		F.Set(i, 2, A.At(v, 2))
	}
}

//SomeVecsSafe is as SomeVecs, but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) error {
	var err error
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case Error:
				err = e
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

//Cross puts the cross product of the first vectors of a and b in the
//first vector of the receiver.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	ax, ay, az := a.At(0, 0), a.At(0, 1), a.At(0, 2)
	bx, by, bz := b.At(0, 0), b.At(0, 1), b.At(0, 2)
	F.Set(0, 0, ay*bz-az*by)
	F.Set(0, 1, az*bx-ax*bz)
	F.Set(0, 2, ax*by-ay*bx)
}

//Unit puts in the receiver the unit vector in the direction of the
//first vector of A.
func (F *Matrix) Unit(A *Matrix) {
	x, y, z := A.At(0, 0), A.At(0, 1), A.At(0, 2)
	n := math.Sqrt(x*x + y*y + z*z)
	F.Set(0, 0, x/n)
	F.Set(0, 1, y/n)
	F.Set(0, 2, z/n)
}
