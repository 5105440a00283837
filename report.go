/*
 * report.go, part of gosugar.
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

//report.go serializes analysis results as streams of JSON documents,
//one per sugar, optionally compressed with z-standard (files with the
//zst extension).

package sugar

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Report is the JSON-serializable summary of one analyzed sugar.
type Report struct {
	Code         string
	Chain        string
	Molid        int
	AltConf      string
	Supported    bool
	Denomination string
	Anomer       string
	Handedness   string
	Conformation string
	Q            float64
	Phi          float64
	Theta        float64
	Q2           float64
	Q3           float64
	BondRMSD     float64
	AngleRMSD    float64
	Bonds        []float64
	Angles       []float64
	Torsions     []float64
	RingOK       bool
	ChiralityOK  bool
	AnomerOK     bool
	BondsOK      bool
	AnglesOK     bool
	Sane         bool
}

//Report summarizes the analysis for serialization.
func (S *Sugar) Report() *Report {
	alt := ""
	if S.altconf != ' ' && S.altconf != 0 {
		alt = string(S.altconf)
	}
	return &Report{
		Code:         S.mon.Name,
		Chain:        string(S.mon.Chain),
		Molid:        S.mon.Molid,
		AltConf:      alt,
		Supported:    S.supported,
		Denomination: S.denomination,
		Anomer:       S.anomer,
		Handedness:   S.handedness,
		Conformation: S.conf.String(),
		Q:            S.pucker.Amplitude,
		Phi:          S.pucker.Phi,
		Theta:        S.pucker.Theta,
		Q2:           S.pucker.Q2,
		Q3:           S.pucker.Q3,
		BondRMSD:     S.bondRMSD,
		AngleRMSD:    S.angleRMSD,
		Bonds:        S.RingBonds(),
		Angles:       S.RingAngles(),
		Torsions:     S.RingTorsions(),
		RingOK:       S.diag.Ring,
		ChiralityOK:  S.diag.Chirality,
		AnomerOK:     S.diag.Anomer,
		BondsOK:      S.diag.BondRMSD,
		AnglesOK:     S.diag.AngleRMSD,
		Sane:         S.diag.Sane,
	}
}

//ReportWriter writes reports to a file, one JSON document per sugar.
//Filenames ending in "zst" get z-standard compression.
type ReportWriter struct {
	f         *os.File
	h         io.WriteCloser
	enc       *json.Encoder
	filename  string
	writeable bool
}

//plainql adapts a plain file to the WriteCloser the compressed path
//hands out, without closing the file twice.
type plainql struct {
	io.Writer
}

func (p plainql) Close() error { return nil }

//NewReportWriter creates a report file. The compression level, only
//meaningful for zst files, follows the z-standard numbering (3 is the
//default, 9 the slowest/smallest).
func NewReportWriter(name string, compressionLevel ...int) (*ReportWriter, error) {
	level := 3
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Create", "NewReportWriter"}}
	}
	var h io.WriteCloser
	if strings.HasSuffix(name, "zst") {
		h, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		if err != nil {
			f.Close()
			return nil, CError{err.Error(), []string{"zstd.NewWriter", "NewReportWriter"}}
		}
	} else {
		h = plainql{f}
	}
	return &ReportWriter{f: f, h: h, enc: json.NewEncoder(h), filename: name, writeable: true}, nil
}

//WNext writes the report for one more sugar.
func (R *ReportWriter) WNext(S *Sugar) error {
	return R.WReport(S.Report())
}

//WReport writes an already-built report.
func (R *ReportWriter) WReport(rep *Report) error {
	if !R.writeable {
		return CError{"report file " + R.filename + " not writeable", []string{"WReport"}}
	}
	if err := R.enc.Encode(rep); err != nil {
		return CError{err.Error(), []string{"json.Encoder.Encode", "WReport"}}
	}
	return nil
}

//Close flushes and closes the report file. The writer can not be used
//after this call.
func (R *ReportWriter) Close() {
	if R == nil || !R.writeable {
		return
	}
	R.h.Close()
	R.f.Close()
	R.writeable = false
}

//zstd.Decoder does not implement io.ReadCloser by itself.
type rstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s rstdql) Close() error {
	s.closeql()
	return nil
}

//ReadReports reads back every report in a file written by
//ReportWriter, compressed or not.
func ReadReports(name string) ([]*Report, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "ReadReports"}}
	}
	defer f.Close()
	var h io.ReadCloser
	if strings.HasSuffix(name, "zst") {
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, CError{err.Error(), []string{"zstd.NewReader", "ReadReports"}}
		}
		h = rstdql{d.Close, d}
	} else {
		h = io.NopCloser(f)
	}
	defer h.Close()
	dec := json.NewDecoder(h)
	reports := []*Report{}
	for {
		rep := new(Report)
		err := dec.Decode(rep)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CError{err.Error(), []string{"json.Decoder.Decode", "ReadReports"}}
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
