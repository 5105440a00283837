/*
 * conformation.go, part of gosugar.
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

//conformation.go assigns IUPAC conformer codes from the Cremer-Pople
//sphere (pyranoses, phi/theta) or pseudorotational circle (furanoses,
//phi only). Envelope codes are shared between both ring sizes.

package sugar

//Conformation identifies an IUPAC ring conformer. The zero value means
//that no conformer could be assigned.
type Conformation int

const (
	NoConformation Conformation = iota
	//chairs
	Conf4C1
	Conf1C4
	//northern-tropic half-chairs and envelopes
	ConfOH1
	ConfE1
	Conf2H1
	Conf2E
	Conf2H3
	ConfE3
	Conf4H3
	Conf4E
	Conf4H5
	ConfE5
	ConfOH5
	ConfOE
	//equatorial skew-boats and boats
	Conf3S1
	ConfB14
	Conf5S1
	Conf25B
	Conf2SO
	ConfB3O
	Conf1S3
	Conf14B
	Conf1S5
	ConfB25
	ConfOS2
	Conf3OB
	//southern-tropic half-chairs and envelopes
	Conf3H4
	ConfE4
	Conf5H4
	Conf5E
	Conf5HO
	ConfEO
	Conf1HO
	Conf1E
	Conf1H2
	ConfE2
	Conf3H2
	Conf3E
	//furanose twists
	Conf3T2
	Conf3T4
	ConfOT4
	ConfOT1
	Conf2T1
	Conf2T3
	Conf4T3
	Conf4TO
	Conf1TO
	Conf1T2
)

var conformationNames = []string{
	"none",
	"4C1", "1C4",
	"OH1", "E1", "2H1", "2E", "2H3", "E3", "4H3", "4E", "4H5", "E5", "OH5", "OE",
	"3S1", "B14", "5S1", "25B", "2SO", "B3O", "1S3", "14B", "1S5", "B25", "OS2", "3OB",
	"3H4", "E4", "5H4", "5E", "5HO", "EO", "1HO", "1E", "1H2", "E2", "3H2", "3E",
	"3T2", "3T4", "OT4", "OT1", "2T1", "2T3", "4T3", "4TO", "1TO", "1T2",
}

func (c Conformation) String() string {
	if c < 0 || int(c) >= len(conformationNames) {
		return "none"
	}
	return conformationNames[c]
}

//conformationPyranose maps a point on the Cremer-Pople sphere to its
//conformer. theta bands select chair, half-chair/envelope, boat/skew
//or inverted regions; within the tropics, 30-degree phi sectors select
//the conformer itself. Both angles in degrees.
func conformationPyranose(phi, theta float64) Conformation {
	switch {
	case theta <= 22.5:
		return Conf4C1
	case theta <= 67.5:
		switch {
		case phi > 15.0 && phi <= 45.0:
			return ConfOH1
		case phi > 45.0 && phi <= 75.0:
			return ConfE1
		case phi > 75.0 && phi <= 105.0:
			return Conf2H1
		case phi > 105.0 && phi <= 135.0:
			return Conf2E
		case phi > 135.0 && phi <= 165.0:
			return Conf2H3
		case phi > 165.0 && phi <= 195.0:
			return ConfE3
		case phi > 195.0 && phi <= 225.0:
			return Conf4H3
		case phi > 225.0 && phi <= 255.0:
			return Conf4E
		case phi > 255.0 && phi <= 285.0:
			return Conf4H5
		case phi > 285.0 && phi <= 315.0:
			return ConfE5
		case phi > 315.0 && phi <= 345.0:
			return ConfOH5
		case phi > 345.0 || phi <= 15.0:
			return ConfOE
		}
	case theta <= 112.5:
		switch {
		case phi > 15.0 && phi <= 45.0:
			return Conf3S1
		case phi > 45.0 && phi <= 75.0:
			return ConfB14
		case phi > 75.0 && phi <= 105.0:
			return Conf5S1
		case phi > 105.0 && phi <= 135.0:
			return Conf25B
		case phi > 135.0 && phi <= 165.0:
			return Conf2SO
		case phi > 165.0 && phi <= 195.0:
			return ConfB3O
		case phi > 195.0 && phi <= 225.0:
			return Conf1S3
		case phi > 225.0 && phi <= 255.0:
			return Conf14B
		case phi > 255.0 && phi <= 285.0:
			return Conf1S5
		case phi > 285.0 && phi <= 315.0:
			return ConfB25
		case phi > 315.0 && phi <= 345.0:
			return ConfOS2
		case phi > 345.0 || phi <= 15.0:
			return Conf3OB
		}
	case theta <= 157.5:
		switch {
		case phi > 15.0 && phi <= 45.0:
			return Conf3H4
		case phi > 45.0 && phi <= 75.0:
			return ConfE4
		case phi > 75.0 && phi <= 105.0:
			return Conf5H4
		case phi > 105.0 && phi <= 135.0:
			return Conf5E
		case phi > 135.0 && phi <= 165.0:
			return Conf5HO
		case phi > 165.0 && phi <= 195.0:
			return ConfEO
		case phi > 195.0 && phi <= 225.0:
			return Conf1HO
		case phi > 225.0 && phi <= 255.0:
			return Conf1E
		case phi > 255.0 && phi <= 285.0:
			return Conf1H2
		case phi > 285.0 && phi <= 315.0:
			return ConfE2
		case phi > 315.0 && phi <= 345.0:
			return Conf3H2
		case phi > 345.0 || phi <= 15.0:
			return Conf3E
		}
	default:
		return Conf1C4
	}
	return NoConformation
}

//conformationFuranose maps a pseudorotational phase angle, in degrees,
//to its conformer along 9-degree sectors, open below and closed above.
//The 3T2 sector wraps around zero.
func conformationFuranose(phi float64) Conformation {
	switch {
	case phi > 175.5 || phi <= 4.5:
		return Conf3T2
	case phi > 4.5 && phi <= 13.5:
		return Conf3E
	case phi > 13.5 && phi <= 22.5:
		return Conf3T4
	case phi > 22.5 && phi <= 31.5:
		return ConfE4
	case phi > 31.5 && phi <= 40.5:
		return ConfOT4
	case phi > 40.5 && phi <= 49.5:
		return ConfOE
	case phi > 49.5 && phi <= 58.5:
		return ConfOT1
	case phi > 58.5 && phi <= 67.5:
		return ConfE1
	case phi > 67.5 && phi <= 76.5:
		return Conf2T1
	case phi > 76.5 && phi <= 85.5:
		return Conf2E
	case phi > 85.5 && phi <= 94.5:
		return Conf2T3
	case phi > 94.5 && phi <= 103.5:
		return ConfE3
	case phi > 103.5 && phi <= 112.5:
		return Conf4T3
	case phi > 112.5 && phi <= 121.5:
		return Conf4E
	case phi > 121.5 && phi <= 130.5:
		return Conf4TO
	case phi > 130.5 && phi <= 139.5:
		return ConfEO
	case phi > 139.5 && phi <= 148.5:
		return Conf1TO
	case phi > 148.5 && phi <= 157.5:
		return Conf1E
	case phi > 157.5 && phi <= 166.5:
		return Conf1T2
	case phi > 166.5 && phi <= 175.5:
		return ConfE2
	}
	return NoConformation //NaN only
}
