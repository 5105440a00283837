/*
 * doc.go, part of gosugar.
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

/*Package sugar analyzes the conformation of cyclic monosaccharides in
macromolecular models. Given a molecule and one of its monomers, the
library locates the sugar ring (from a reference dictionary of known
monosaccharide codes, or by a graph search on the bonded atoms when the
code is unknown), identifies the anomeric and configurational centers,
computes the Cremer-Pople puckering parameters, classifies the ring
into the IUPAC conformational nomenclature (chairs, boats, skew-boats,
envelopes and twists), assigns the anomer and the D/L handedness, and
runs a set of geometric diagnostics against the expected values for the
monosaccharide code.

	**gosugar Capabilities**

    Detects pyranose (6-membered) and furanose (5-membered) rings,
	with or without a dictionary entry for the monomer.

    Deals with alternate conformations and crystallographic symmetry:
	neighbour searches can include symmetry mates of the model.

    Computes Cremer-Pople total puckering amplitude, phi and theta
	(q2 and q3 for pyranoses).

    Classifies pyranoses into the 38 canonical conformers and
	furanoses into the 20 canonical envelopes/twists.

    Determines anomer (alpha/beta) and handedness (D/L) from the
	ring geometry alone.

    Validates ring stereochemistry, bond lengths and bond angles
	against the reference dictionary, flagging suspicious models.

    Produces per-sugar reports, serializable as JSON and as
	zstd-compressed JSON streams, and scatter plots of the puckering
	parameters.

The library uses gonum (gonum.org/v1/gonum) for the linear algebra and
the bonded-graph search, gonum/plot for the puckering plots and
klauspost/compress for the compressed report streams.
*/
package sugar
