/*
 * pucker_test.go, part of gosugar
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

package sugarplot

import (
	"os"
	"path/filepath"
	"testing"

	sugar "github.com/rmera/gosugar"
	v3 "github.com/rmera/gosugar/v3"
)

//a glucopyranose-like residue in a 4C1 chair, hydrogens omitted.
var chairData = []struct {
	name, symbol string
	x, y, z      float64
}{
	{"O5", "O", 1.378849, 0.008384, -0.237775},
	{"C1", "C", 0.737965, 1.185585, 0.260574},
	{"C2", "C", -0.698192, 1.231308, -0.265026},
	{"C3", "C", -1.453118, 0.000343, 0.240656},
	{"C4", "C", -0.722907, -1.259506, -0.228906},
	{"C5", "C", 0.737853, -1.185111, 0.220036},
	{"C6", "C", 1.531731, -2.455566, -0.090775},
	{"O1", "O", 1.478578, 2.390774, 0.051025},
	{"O2", "O", -1.370858, 2.470848, -0.028465},
	{"O3", "O", -2.853332, 0.010029, -0.049528},
	{"O4", "O", -1.381054, -2.481868, 0.113987},
	{"O6", "O", 1.198886, -3.831037, -0.296187},
}

func TestPyranosePlot(Te *testing.T) {
	atoms := []*sugar.Atom{}
	data := []float64{}
	for i, d := range chairData {
		atoms = append(atoms, &sugar.Atom{Name: d.name, Id: i + 1, Molname: "BGC",
			Molid: 1, Chain: 'A', Occupancy: 1.0, Symbol: d.symbol, AltConf: ' ', Het: true})
		data = append(data, d.x, d.y, d.z)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := sugar.NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	sugars := sugar.Sugars(mol, sugar.DefaultDatabase)
	if len(sugars) != 1 {
		Te.Fatal("expected 1 sugar, got", len(sugars))
	}
	plotname := filepath.Join(Te.TempDir(), "pucker")
	if err := PyranosePlot(sugars, "Cremer-Pople sphere", plotname); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(plotname + ".png"); err != nil {
		Te.Error("plot file not written:", err)
	}
}
