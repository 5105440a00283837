/*
 * report_test.go, part of gosugar.
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
	"path/filepath"
	"testing"
)

func TestReportRoundTrip(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms, ribAtoms, watAtoms)
	sugars := Sugars(mol, DefaultDatabase)
	if len(sugars) != 2 {
		Te.Fatal("expected 2 sugars, got", len(sugars))
	}
	for _, name := range []string{"reports.json", "reports.json.zst"} {
		path := filepath.Join(Te.TempDir(), name)
		w, err := NewReportWriter(path)
		if err != nil {
			Te.Fatal(err)
		}
		for _, S := range sugars {
			if err := w.WNext(S); err != nil {
				Te.Fatal(err)
			}
		}
		w.Close()
		back, err := ReadReports(path)
		if err != nil {
			Te.Fatal(err)
		}
		if len(back) != len(sugars) {
			Te.Fatal(name, ": read", len(back), "reports")
		}
		for i, rep := range back {
			S := sugars[i]
			if rep.Code != S.Name() || rep.Conformation != S.Conformation().String() ||
				rep.Sane != S.Sane() || rep.Denomination != S.Denomination() {
				Te.Error(name, ": report mismatch:", rep)
			}
			if !approx(rep.Q, S.Pucker().Amplitude, 1e-12) || !approx(rep.Phi, S.Pucker().Phi, 1e-12) {
				Te.Error(name, ": puckering values lost in the round trip")
			}
			if len(rep.Bonds) != len(S.RingBonds()) {
				Te.Error(name, ": internal coordinates lost")
			}
		}
	}
}

func TestReportFields(Te *testing.T) {
	mol := buildMolecule(Te, glcAtoms)
	S, err := NewSugar(mol, mol.Monomer(1, 'A'), nil, DefaultDatabase)
	if err != nil {
		Te.Fatal(err)
	}
	rep := S.Report()
	if rep.Code != "BGC" || rep.Chain != "A" || rep.Molid != 1 {
		Te.Error("identity fields:", rep.Code, rep.Chain, rep.Molid)
	}
	if rep.AltConf != "" {
		Te.Error("altconf on a full-occupancy sugar:", rep.AltConf)
	}
	if rep.Conformation != "4C1" || rep.Anomer != "beta" || rep.Handedness != "D" {
		Te.Error("assignment fields:", rep.Conformation, rep.Anomer, rep.Handedness)
	}
	if !rep.Sane || !rep.RingOK || !rep.BondsOK || !rep.AnglesOK || !rep.ChiralityOK || !rep.AnomerOK {
		Te.Error("diagnostic fields:", rep)
	}
}

func TestWriterAfterClose(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "reports.json")
	w, err := NewReportWriter(path)
	if err != nil {
		Te.Fatal(err)
	}
	w.Close()
	w.Close() //idempotent
	if err := w.WReport(&Report{}); err == nil {
		Te.Error("write after close did not fail")
	}
}
