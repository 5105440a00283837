/*
 * analysis.go, part of gosugar.
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

//analysis.go ties the whole analysis together: ring detection,
//Cremer-Pople puckering, conformer assignment, anomer/handedness and
//the diagnostic flags, all run when a Sugar is built.

package sugar

import (
	"strings"

	v3 "github.com/rmera/gosugar/v3"
)

//cell side, in Angstroms, for the neighbour-search grids built here.
const nonbondSide = 2.0

//Sugar is the analysis of one monosaccharide monomer. All results are
//computed on construction; a Sugar does not change afterwards.
type Sugar struct {
	mol *Molecule
	mon *Monomer
	nb  *NonBondIndex
	db  RefLookup
	ref *ReferenceEntry

	supported bool
	altconf   byte
	ring      []*SugarAtom
	centre    *v3.Matrix
	anomeric  StereoPair
	config    StereoPair
	pucker    Pucker
	conf      Conformation

	anomer       string
	handedness   string
	denomination string

	ringBonds    []float64
	ringAngles   []float64
	ringTorsions []float64
	bondRMSD     float64
	angleRMSD    float64
	diag         SanityFlags
}

//a detected ring is only taken as a sugar ring when it has the right
//size and composition: one ring oxygen (canonically first) and the
//rest carbons. This keeps proline and aromatic side-chain rings out.
func isSugarRing(ring []*SugarAtom) bool {
	if len(ring) != 5 && len(ring) != 6 {
		return false
	}
	if ring[0].Element() != "O" {
		return false
	}
	for _, at := range ring[1:] {
		if at.Element() != "C" {
			return false
		}
	}
	return true
}

func (S *Sugar) markUnsupported() {
	S.supported = false
	S.denomination = "unsupported"
	S.anomer = "X"
	S.handedness = "X"
	S.conf = NoConformation
}

//NewSugar analyzes the monomer mon of mol. nb may be nil, in which
//case a neighbour index is built for this sugar alone; when analyzing
//several monomers of the same molecule, build one index and share it.
//db may also be nil; sugars analyzed without a reference entry get
//their ring from connectivity alone and are never flagged sane.
//When the reference names ring atoms the monomer lacks, or the ring
//has an unsupported size, the returned Sugar carries sentinel values
//("unsupported" denomination, "X" anomer and handedness) and a nil
//error. An error is only returned when no sugar ring exists at all.
func NewSugar(mol *Molecule, mon *Monomer, nb *NonBondIndex, db RefLookup) (*Sugar, error) {
	if mol == nil || mon == nil {
		panic(ErrNilData)
	}
	if nb == nil {
		nb = NewNonBondIndex(mol, nonbondSide)
	}
	S := &Sugar{mol: mol, mon: mon, nb: nb, db: db}
	if db != nil {
		S.ref = db.Lookup(mon.Name)
	}
	var err error
	if S.ref != nil {
		S.ring, S.altconf, err = ringFromTemplate(mon, S.ref)
		if err != nil {
			S.markUnsupported()
			return S, nil
		}
	} else {
		S.ring, err = FindRing(mon)
		if err != nil {
			return nil, errDecorate(err, "NewSugar")
		}
		if !isSugarRing(S.ring) {
			return nil, CError{"gosugar: monomer " + mon.Name + " contains no sugar ring", []string{"NewSugar"}}
		}
	}
	switch len(S.ring) {
	case 5:
		S.supported = true
		S.cremerPopleFuranose()
		S.conf = conformationFuranose(S.pucker.Phi)
	case 6:
		S.supported = true
		S.cremerPoplePyranose()
		S.conf = conformationPyranose(S.pucker.Phi, S.pucker.Theta)
	default:
		S.markUnsupported()
		return S, nil
	}
	S.buildDenomination()
	S.runDiagnostics()
	return S, nil
}

//aldoses have their anomeric centre at C1, ketoses anywhere else.
func (S *Sugar) buildDenomination() {
	base := "keto"
	if strings.Contains(S.ring[1].Name, "C1") {
		base = "aldo"
	}
	kind := "pyranose"
	if len(S.ring) == 5 {
		kind = "furanose"
	}
	S.denomination = S.anomer + "-" + S.handedness + "-" + base + kind
}

//Supported returns false for sugars that could not be analyzed, either
//for lacking ring atoms the reference names or for an odd ring size.
func (S *Sugar) Supported() bool { return S.supported }

//Name returns the residue code of the analyzed monomer.
func (S *Sugar) Name() string { return S.mon.Name }

//Molid returns the residue number of the analyzed monomer.
func (S *Sugar) Molid() int { return S.mon.Molid }

//Chain returns the chain identifier of the analyzed monomer.
func (S *Sugar) Chain() byte { return S.mon.Chain }

//AltConf returns the alternate-conformation label the analysis settled
//on for partial-occupancy sugars, or a blank when full occupancy was
//found or the ring came from a connectivity search.
func (S *Sugar) AltConf() byte { return S.altconf }

//Ring returns the ring atoms in canonical order: the ring oxygen
//first, then the carbons by increasing number.
func (S *Sugar) Ring() []*SugarAtom {
	r := make([]*SugarAtom, len(S.ring))
	copy(r, S.ring)
	return r
}

//Centre returns the mean position of the ring atoms.
func (S *Sugar) Centre() *v3.Matrix {
	if S.centre == nil {
		return nil
	}
	c := v3.Zeros(1)
	c.Copy(S.centre)
	return c
}

//Reference returns the database entry used, nil if none was found.
func (S *Sugar) Reference() *ReferenceEntry { return S.ref }

//Denomination returns a systematic description of the sugar, such as
//"beta-D-aldopyranose", or "unsupported".
func (S *Sugar) Denomination() string { return S.denomination }

//Anomer returns "alpha", "beta", or "X" for unsupported sugars.
func (S *Sugar) Anomer() string { return S.anomer }

//Handedness returns "D", "L", "N" when no reference substituent was
//usable, or "X" for unsupported sugars.
func (S *Sugar) Handedness() string { return S.handedness }

//Conformation returns the assigned conformer.
func (S *Sugar) Conformation() Conformation { return S.conf }

//Pucker returns the Cremer-Pople puckering parameters.
func (S *Sugar) Pucker() Pucker { return S.pucker }

//AnomericPair returns the anomeric carbon and its substituent.
func (S *Sugar) AnomericPair() StereoPair { return S.anomeric }

//ConfigPair returns the configurational carbon and its substituent.
func (S *Sugar) ConfigPair() StereoPair { return S.config }

//RingBonds returns the measured ring bond lengths, in Angstroms.
func (S *Sugar) RingBonds() []float64 { return append([]float64{}, S.ringBonds...) }

//RingAngles returns the measured ring vertex angles, in degrees.
func (S *Sugar) RingAngles() []float64 { return append([]float64{}, S.ringAngles...) }

//RingTorsions returns the measured ring torsions, in degrees.
func (S *Sugar) RingTorsions() []float64 { return append([]float64{}, S.ringTorsions...) }

//BondRMSD returns the RMS deviation of the ring bonds from ideality.
func (S *Sugar) BondRMSD() float64 { return S.bondRMSD }

//AngleRMSD returns the RMS deviation of the ring angles from ideality.
func (S *Sugar) AngleRMSD() float64 { return S.angleRMSD }

//Diagnostics returns the sanity flags of the sugar.
func (S *Sugar) Diagnostics() SanityFlags { return S.diag }

//Sane tells whether the sugar passed every diagnostic check.
func (S *Sugar) Sane() bool { return S.diag.Sane }

//Sugars analyzes every monomer of mol that contains a sugar ring,
//sharing one neighbour index among all of them. Monomers without a
//detectable sugar ring are silently skipped.
func Sugars(mol *Molecule, db RefLookup) []*Sugar {
	nb := NewNonBondIndex(mol, nonbondSide)
	found := []*Sugar{}
	for _, mon := range mol.Monomers() {
		S, err := NewSugar(mol, mon, nb, db)
		if err != nil {
			continue
		}
		found = append(found, S)
	}
	return found
}

//ConcSugars is a concurrent version of Sugars. Each monomer is
//analyzed in its own goroutine; results keep the monomer order.
func ConcSugars(mol *Molecule, db RefLookup) []*Sugar {
	nb := NewNonBondIndex(mol, nonbondSide)
	mons := mol.Monomers()
	results := make([]chan *Sugar, 0, len(mons))
	for _, mon := range mons {
		c := make(chan *Sugar, 1)
		results = append(results, c)
		go func(mon *Monomer, c chan *Sugar) {
			S, err := NewSugar(mol, mon, nb, db)
			if err != nil {
				c <- nil
				return
			}
			c <- S
		}(mon, c)
	}
	found := []*Sugar{}
	for _, c := range results {
		if S := <-c; S != nil {
			found = append(found, S)
		}
	}
	return found
}
