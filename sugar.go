/*
 * sugar.go, part of gosugar.
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

	v3 "github.com/rmera/gosugar/v3"
)

// Atom contains the per-atom data of a macromolecular model. The
// coordinates live separately, in a v3.Matrix, so the same atom data
// can be reused for several sets of coordinates.
type Atom struct {
	Name      string //PDB name of the atom
	Id        int    //The PDB index of the atom
	Molname   string //PDB name of the residue or monomer
	Molid     int    //PDB index of the corresponding residue or monomer
	Chain     byte   //One-character PDB name for a chain
	Occupancy float64
	Symbol    string //chemical element
	AltConf   byte   //PDB alternate location indicator, 0 or ' ' when absent
	Het       bool   //is the atom an hetatm in the pdb file?
}

// Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	Anew := *A
	return &Anew
}

// Element returns the chemical element of the atom: the Symbol field
// when present, or the first letter of the PDB name otherwise.
func (A *Atom) Element() string {
	if A.Symbol != "" {
		return A.Symbol
	}
	for i := 0; i < len(A.Name); i++ {
		c := A.Name[i]
		if c >= 'A' && c <= 'Z' {
			return string(c)
		}
	}
	return ""
}

// altMatch returns whether two alternate-location indicators are
// compatible. A blank indicator matches anything.
func altMatch(a, b byte) bool {
	return a == b || a == 0 || b == 0 || a == ' ' || b == ' '
}

// altEq returns whether two alternate-location indicators are equal,
// treating 0 and ' ' as the same blank indicator.
func altEq(a, b byte) bool {
	if a == 0 {
		a = ' '
	}
	if b == 0 {
		b = ' '
	}
	return a == b
}

// Molecule is a set of atoms with their coordinates, plus, optionally,
// the crystallographic cell and symmetry operations of the model.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Cell   *UnitCell //may be nil
	Symops []Symop   //fractional operations, identity first. May be empty.
}

// NewMolecule builds a molecule from atom data and coordinates. It
// returns an error if the number of atoms and coordinate vectors do not
// match.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil || coords == nil {
		return nil, CError{string(ErrNilData), []string{"NewMolecule"}}
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("%s: %d atoms, %d coordinates", ErrCoordsMismatch, len(atoms), coords.NVecs()), []string{"NewMolecule"}}
	}
	return &Molecule{Atoms: atoms, Coords: coords}, nil
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns the ith atom of the molecule. Panics if the atom is out
// of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic(ErrAtomOutOfRange)
	}
	return M.Atoms[i]
}

// Coord returns a view of the coordinates of the ith atom.
func (M *Molecule) Coord(i int) *v3.Matrix {
	if i >= M.Len() {
		panic(ErrAtomOutOfRange)
	}
	return M.Coords.VecView(i)
}

// SetCell gives the molecule a crystallographic cell and its symmetry
// operations, enabling symmetry-aware neighbour searches.
func (M *Molecule) SetCell(cell *UnitCell, symops []Symop) {
	M.Cell = cell
	M.Symops = symops
}

// Monomers partitions the molecule into its monomers, grouping
// consecutive atoms with the same residue number and chain.
func (M *Molecule) Monomers() []*Monomer {
	ret := make([]*Monomer, 0, 10)
	var curr *Monomer
	for i, at := range M.Atoms {
		if curr == nil || at.Molid != curr.Molid || at.Chain != curr.Chain {
			curr = &Monomer{Name: at.Molname, Molid: at.Molid, Chain: at.Chain, mol: M}
			ret = append(ret, curr)
		}
		curr.indexes = append(curr.indexes, i)
	}
	return ret
}

// Monomer returns the monomer with the given residue number and chain,
// or nil if the molecule doesn't contain it.
func (M *Molecule) Monomer(molid int, chain byte) *Monomer {
	for _, m := range M.Monomers() {
		if m.Molid == molid && m.Chain == chain {
			return m
		}
	}
	return nil
}

// Monomer is a view of one residue/monomer of a Molecule.
type Monomer struct {
	Name    string
	Molid   int
	Chain   byte
	indexes []int //indexes into the parent molecule
	mol     *Molecule
}

// Len returns the number of atoms in the monomer.
func (R *Monomer) Len() int {
	return len(R.indexes)
}

// Atom returns the ith atom of the monomer. Panics if out of range.
func (R *Monomer) Atom(i int) *Atom {
	return R.mol.Atom(R.indexes[i])
}

// Coord returns a view of the coordinates of the ith atom of the
// monomer.
func (R *Monomer) Coord(i int) *v3.Matrix {
	return R.mol.Coord(R.indexes[i])
}

// AtomIndex returns the index, in the parent molecule, of the ith atom
// of the monomer.
func (R *Monomer) AtomIndex(i int) int {
	return R.indexes[i]
}

// LookupMode selects how strictly Monomer.Lookup matches atoms.
type LookupMode int

const (
	// LookupAny returns the first atom with the requested name,
	// regardless of its alternate conformation.
	LookupAny LookupMode = iota
	// LookupUnique requires exactly one atom with the requested name
	// and alternate conformation.
	LookupUnique
)

// Lookup returns the index, within the monomer, of the atom with the
// given name, or -1 if there is no match (or, with LookupUnique, if the
// match is not unique).
func (R *Monomer) Lookup(name string, alt byte, mode LookupMode) int {
	found := -1
	for i := 0; i < R.Len(); i++ {
		at := R.Atom(i)
		if at.Name != name {
			continue
		}
		if mode == LookupAny {
			return i
		}
		if at.AltConf == alt || (alt == ' ' && at.AltConf == 0) {
			if found != -1 {
				return -1 //not unique
			}
			found = i
		}
	}
	return found
}

// SugarAtom pairs an atom with its own working copy of the
// coordinates, so ring analyses can recenter and project atoms without
// touching the parent molecule.
type SugarAtom struct {
	*Atom
	Coord *v3.Matrix //1x3, owned by the SugarAtom
}

// NewSugarAtom builds a SugarAtom, copying the given coordinates.
func NewSugarAtom(at *Atom, coord *v3.Matrix) *SugarAtom {
	c := v3.Zeros(1)
	c.Copy(coord)
	return &SugarAtom{Atom: at, Coord: c}
}

// Copy returns a deep copy of the SugarAtom.
func (S *SugarAtom) Copy() *SugarAtom {
	return NewSugarAtom(S.Atom, S.Coord)
}
