/*
 * gonum.go, part of gosugar.
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

//gonum.go contains the Matrix container and everything needed to
//handle the gonum types behind it. All the *Vec functions operate on
//row vectors, the cartesian coordinates of one point in 3D space.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, stored as an Nx3 row-major
//matrix. Within the package it is understood that a "vector" is a row
//of the matrix, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//VecView returns a view of the ith vector of the matrix in the receiver.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Mul wraps mat.Mul to take care of the case when one of the
//arguments is also the receiver. Since the receiver is a Matrix,
//the gonum function could check A (mat.Dense) vs F (Matrix) and
//it would not know that internally F.Dense==A, hence the need for this
//function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

//dense unwraps a *Matrix argument to the Dense behind it, so the gonum
//aliasing checks can recognize an argument that is also the receiver.
func dense(A mat.Matrix) mat.Matrix {
	if a, ok := A.(*Matrix); ok {
		return a.Dense
	}
	return A
}

//Add, Sub and Scale wrap the corresponding mat.Dense methods for the
//same reason as Mul: with the bare promoted methods, in-place calls
//like F.Add(F, B) would panic inside gonum.
func (F *Matrix) Add(A, B mat.Matrix) {
	F.Dense.Add(dense(A), dense(B))
}

//Sub puts A-B in the receiver. See Add.
func (F *Matrix) Sub(A, B mat.Matrix) {
	F.Dense.Sub(dense(A), dense(B))
}

//Scale puts f*A in the receiver. See Add.
func (F *Matrix) Scale(f float64, A mat.Matrix) {
	F.Dense.Scale(f, dense(A))
}

//Dot returns the dot product between the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() < 1 || B.NVecs() < 1 {
		panic(ErrNotEnoughElements)
	}
	var d float64
	for j := 0; j < 3; j++ {
		d += F.At(0, j) * B.At(0, j)
	}
	return d
}

//Norm returns the norm of the matrix. ord 0 and 2 both give the
//Frobenius norm, which for a vector is the Euclidean norm.
func (F *Matrix) Norm(ord float64) float64 {
	if ord == 0 {
		ord = 2
	}
	return mat.Norm(F.Dense, ord)
}

//Invert puts the inverse of A in the receiver, or returns an error if
//A is not invertible. Mostly used for the 3x3 orthogonalization
//matrices of crystallographic cells.
func (F *Matrix) Invert(A *Matrix) error {
	err := F.Dense.Inverse(A.Dense)
	if err != nil {
		return Error{err.Error(), []string{"Invert"}, true}
	}
	return nil
}

//Errors

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("gosugar/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("gosugar/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("gosugar/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("gosugar/v3: Dimension mismatch")
)
