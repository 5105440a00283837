/*
 * v3_test.go
 *
 * Copyright 2024 Raul Mera <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package v3

import (
	"math"
	"testing"
)

func TestViewsAndCopies(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("change through a view not reflected in the viewed matrix: %v", A)
	}
	B := Zeros(3)
	B.Copy(A)
	B.Set(0, 0, -1)
	if A.At(0, 0) == -1 {
		Te.Errorf("change in a copy reflected in the original: %v", A)
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Error(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Error(err)
	}
	for key, val := range cind {
		for j := 0; j < 3; j++ {
			if B.At(key, j) != A.At(val, j) {
				Te.Errorf("vector %d not extracted: %v vs %v", val, B, A)
			}
		}
	}
	err = B.SomeVecsSafe(A, []int{1, 3, 25})
	if err == nil {
		Te.Error("out of range extraction did not return an error")
	}
}

func TestVecOps(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	if err != nil {
		Te.Error(err)
	}
	x := A.VecView(0)
	y := A.VecView(1)
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 || z.At(0, 1) != 0 {
		Te.Errorf("wrong cross product: %v", z)
	}
	if d := x.Dot(y); d != 0 {
		Te.Errorf("wrong dot product: %f", d)
	}
	v, _ := NewMatrix([]float64{3, 0, 4})
	if n := v.Norm(0); math.Abs(n-5) > appzero {
		Te.Errorf("wrong norm: %f", n)
	}
	v.Unit(v)
	if n := v.Norm(0); math.Abs(n-1) > appzero {
		Te.Errorf("unit vector with norm %f", n)
	}
	row, _ := NewMatrix([]float64{10, 20, 30})
	B := Zeros(2)
	B.AddVec(A, row)
	B.SubVec(B, row)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(B.At(i, j)-A.At(i, j)) > appzero {
				Te.Errorf("AddVec/SubVec do not cancel: %v vs %v", B, A)
			}
		}
	}
}

//accumulating operations take the receiver as an argument all over the
//library, so the wrappers must accept the aliasing.
func TestInPlaceOps(Te *testing.T) {
	v, err := NewMatrix([]float64{1, 2, 3})
	if err != nil {
		Te.Error(err)
	}
	w, _ := NewMatrix([]float64{10, 20, 30})
	v.Add(v, w)
	v.Scale(2, v)
	v.Sub(v, w)
	want := []float64{12, 24, 36}
	for j := 0; j < 3; j++ {
		if math.Abs(v.At(0, j)-want[j]) > appzero {
			Te.Errorf("in-place accumulation broken: %v", v)
		}
	}
}

func TestInvert(Te *testing.T) {
	A, err := NewMatrix([]float64{2, 0, 0, 0, 4, 0, 0, 0, 8})
	if err != nil {
		Te.Error(err)
	}
	inv := Zeros(3)
	if err := inv.Invert(A); err != nil {
		Te.Error(err)
	}
	prod := Zeros(3)
	prod.Mul(A, inv)
	for i := 0; i < 3; i++ {
		if math.Abs(prod.At(i, i)-1) > appzero {
			Te.Errorf("A*inv(A) is not the identity: %v", prod)
		}
	}
}
