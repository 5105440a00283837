/*
 * conformation_test.go, part of gosugar.
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
	"testing"
)

func TestConformationPyranose(Te *testing.T) {
	cases := []struct {
		phi, theta float64
		want       Conformation
	}{
		{0, 10, Conf4C1},
		{123, 22.5, Conf4C1}, //band boundary belongs to the chair
		{0, 170, Conf1C4},
		{30, 45, ConfOH1},
		{60, 45, ConfE1},
		{100, 45, Conf2H1},
		{180, 45, ConfE3},
		{300, 45, ConfE5},
		{350, 45, ConfOE},
		{10, 45, ConfOE}, //the last sector wraps around zero
		{30, 90, Conf3S1},
		{120, 90, Conf25B},
		{180, 90, ConfB3O},
		{270, 90, Conf1S5},
		{350, 90, Conf3OB},
		{30, 135, Conf3H4},
		{180, 135, ConfEO},
		{270, 135, Conf1H2},
		{350, 135, Conf3E},
		{math.NaN(), 45, NoConformation},
	}
	for _, c := range cases {
		if got := conformationPyranose(c.phi, c.theta); got != c.want {
			Te.Error("phi", c.phi, "theta", c.theta, "got", got, "want", c.want)
		}
	}
}

func TestConformationFuranose(Te *testing.T) {
	cases := []struct {
		phi  float64
		want Conformation
	}{
		{0, Conf3T2},
		{179, Conf3T2},
		{9, Conf3E},
		{18, Conf3T4},
		{45, ConfOE},
		{63, ConfE1},
		{90, Conf2T3},
		{98.7, ConfE3},
		{117, Conf4E},
		{144, Conf1TO},
		{171, ConfE2},
		{4.5, Conf3T2}, //sector boundaries belong to the sector below
		{13.5, Conf3E},
		{175.5, ConfE2},
		{math.NaN(), NoConformation},
	}
	for _, c := range cases {
		if got := conformationFuranose(c.phi); got != c.want {
			Te.Error("phi", c.phi, "got", got, "want", c.want)
		}
	}
}

func TestConformationString(Te *testing.T) {
	if Conf4C1.String() != "4C1" || Conf1C4.String() != "1C4" {
		Te.Error("chair names:", Conf4C1, Conf1C4)
	}
	if NoConformation.String() != "none" {
		Te.Error("zero value name:", NoConformation)
	}
	if Conformation(1000).String() != "none" {
		Te.Error("out-of-range name")
	}
	//every code maps to a distinct, non-empty name
	seen := map[string]bool{}
	for c := Conf4C1; c <= Conf1T2; c++ {
		s := c.String()
		if s == "" || s == "none" || seen[s] {
			Te.Error("bad or duplicate conformer name:", s)
		}
		seen[s] = true
	}
}
