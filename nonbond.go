/*
 * nonbond.go, part of gosugar.
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
	"sort"

	v3 "github.com/rmera/gosugar/v3"
)

// AtomNear identifies one neighbour candidate returned by a
// non-bonded search: the index of the atom in the molecule and the
// index of the symmetry operation that generated the image (0 for the
// atom itself).
type AtomNear struct {
	Index int
	Symop int
}

type symEntry struct {
	index, symop int
	coord        *v3.Matrix
}

// NonBondIndex is a cubic-grid spatial index over the atoms of a
// molecule, including their crystallographic symmetry images when the
// molecule carries a cell and symmetry operations. It supports fast,
// approximate neighbour queries.
type NonBondIndex struct {
	mol     *Molecule
	side    float64
	grid    map[[3]int][]symEntry
	fcenter *v3.Matrix //fractional center of the model, nil without a cell
}

// NewNonBondIndex builds the spatial index for the given molecule.
// side is the grid spacing in Angstroms; queries are efficient for
// radii up to about that value. If the molecule has a cell and more
// than one symmetry operation, one image of each atom per operation is
// added, in the lattice copy nearest to the center of the model.
func NewNonBondIndex(mol *Molecule, side float64) *NonBondIndex {
	nb := &NonBondIndex{mol: mol, side: side, grid: map[[3]int][]symEntry{}}
	for i := 0; i < mol.Len(); i++ {
		c := v3.Zeros(1)
		c.Copy(mol.Coord(i))
		nb.insert(symEntry{index: i, symop: 0, coord: c})
	}
	if mol.Cell == nil || len(mol.Symops) < 2 {
		return nb
	}
	center := v3.Zeros(1)
	for i := 0; i < mol.Len(); i++ {
		center.Add(center, mol.Coord(i))
	}
	center.Scale(1/float64(mol.Len()), center)
	nb.fcenter = mol.Cell.Fractionalize(center)
	for k := 1; k < len(mol.Symops); k++ {
		op := mol.Symops[k]
		for i := 0; i < mol.Len(); i++ {
			f := mol.Cell.Fractionalize(mol.Coord(i))
			fi := latticeCopyNear(op.Apply(f), nb.fcenter)
			nb.insert(symEntry{index: i, symop: k, coord: mol.Cell.Orthogonalize(fi)})
		}
	}
	return nb
}

func (N *NonBondIndex) cellOf(c *v3.Matrix) [3]int {
	var key [3]int
	for j := 0; j < 3; j++ {
		key[j] = int(math.Floor(c.At(0, j) / N.side))
	}
	return key
}

func (N *NonBondIndex) insert(e symEntry) {
	key := N.cellOf(e.coord)
	N.grid[key] = append(N.grid[key], e)
}

// AtomsNear returns the neighbour candidates within radius Angstroms
// of the given coordinate. The result is a superset: the enumerated
// region extends one full cell beyond the radius, so every atom (and
// symmetry image) within radius+side of the coordinate is guaranteed
// to be included, wherever the query point sits within its cell.
// Farther atoms from the same cells may also appear, so callers must
// check actual distances. The order is deterministic.
func (N *NonBondIndex) AtomsNear(coord *v3.Matrix, radius float64) []AtomNear {
	var lo, hi [3]int
	for j := 0; j < 3; j++ {
		lo[j] = int(math.Floor((coord.At(0, j)-radius)/N.side)) - 1
		hi[j] = int(math.Floor((coord.At(0, j)+radius)/N.side)) + 1
	}
	ret := make([]AtomNear, 0, 10)
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				for _, e := range N.grid[[3]int{x, y, z}] {
					ret = append(ret, AtomNear{Index: e.index, Symop: e.symop})
				}
			}
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Index != ret[j].Index {
			return ret[i].Index < ret[j].Index
		}
		return ret[i].Symop < ret[j].Symop
	})
	return ret
}

// Coord returns a copy of the coordinate of a neighbour candidate,
// i.e. the position of the corresponding symmetry image when the
// candidate is not in the original model.
func (N *NonBondIndex) Coord(an AtomNear) *v3.Matrix {
	if an.Symop == 0 || N.mol.Cell == nil {
		c := v3.Zeros(1)
		c.Copy(N.mol.Coord(an.Index))
		return c
	}
	f := N.mol.Cell.Fractionalize(N.mol.Coord(an.Index))
	fi := latticeCopyNear(N.mol.Symops[an.Symop].Apply(f), N.fcenter)
	return N.mol.Cell.Orthogonalize(fi)
}

// SymDistance returns the distance between a neighbour candidate and
// the given coordinate. For symmetry images, the candidate is moved to
// the lattice copy nearest to the coordinate before measuring.
func (N *NonBondIndex) SymDistance(an AtomNear, coord *v3.Matrix) float64 {
	if an.Symop == 0 || N.mol.Cell == nil {
		return Distance(N.mol.Coord(an.Index), coord)
	}
	f1 := N.mol.Cell.Fractionalize(N.mol.Coord(an.Index))
	f2 := N.mol.Cell.Fractionalize(coord)
	f1 = latticeCopyNear(N.mol.Symops[an.Symop].Apply(f1), f2)
	return Distance(N.mol.Cell.Orthogonalize(f1), coord)
}

// Atom returns the atom data of a neighbour candidate. The data is
// shared with the parent molecule.
func (N *NonBondIndex) Atom(an AtomNear) *Atom {
	return N.mol.Atom(an.Index)
}
