/*
 * pucker.go, part of gosugar
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package sugarplot draws Cremer-Pople scatter plots for sets of
//analyzed sugars: the phi/theta sphere projection for pyranoses and
//the phi/amplitude circle for furanoses.
package sugarplot

import (
	"fmt"
	"image/color"

	sugar "github.com/rmera/gosugar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPuckerPlot(title, xlabel, ylabel string, xmin, xmax, ymin, ymax float64) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	//Constant axes
	p.X.Min = xmin
	p.X.Max = xmax
	p.Y.Min = ymin
	p.Y.Max = ymax
	p.Add(plotter.NewGrid())
	return p
}

//sane sugars in green, problematic ones in red.
func saneColor(sane bool) color.RGBA {
	if sane {
		return color.RGBA{R: 30, G: 140, B: 30, A: 255}
	}
	return color.RGBA{R: 200, G: 30, B: 30, A: 255}
}

func addPoint(p *plot.Plot, x, y float64, sane bool) error {
	temp := make(plotter.XYs, 1)
	temp[0].X = x
	temp[0].Y = y
	s, err := plotter.NewScatter(temp)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = saneColor(sane)
	p.Add(s)
	return nil
}

//PyranosePlot plots every 6-membered sugar in the set on the
//Cremer-Pople sphere projection (phi against theta) and saves it as
//plotname.png. The chair poles sit at the top and bottom edges.
func PyranosePlot(sugars []*sugar.Sugar, title, plotname string) error {
	p := basicPuckerPlot(title, "Phi", "Theta", 0, 360, 180, 0)
	for _, S := range sugars {
		if !S.Supported() || len(S.Ring()) != 6 {
			continue
		}
		pk := S.Pucker()
		if err := addPoint(p, pk.Phi, pk.Theta, S.Sane()); err != nil {
			return err
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

//FuranosePlot plots every 5-membered sugar in the set on the
//pseudorotational circle: phase angle against puckering amplitude.
func FuranosePlot(sugars []*sugar.Sugar, title, plotname string) error {
	p := basicPuckerPlot(title, "Phi", "Q", 0, 180, 0, 1)
	for _, S := range sugars {
		if !S.Supported() || len(S.Ring()) != 5 {
			continue
		}
		pk := S.Pucker()
		if err := addPoint(p, pk.Phi, pk.Amplitude, S.Sane()); err != nil {
			return err
		}
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
