/*
 * doc.go, part of godftd4.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * goDFTD4 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package dftd4 is the main package of the goDFTD4 library. It provides molecule
structures, element data tables and geometry I/O for the DFT-D4 London-dispersion
correction, plus the entry points shared by the computational subpackages.

	**goDFTD4 Capabilities**

    Reads/writes XYZ files, including multi-geometry files, and reads
	QCSchema JSON molecules.

    Computes error-function coordination numbers, plain and
	electronegativity-weighted, with analytical derivatives.

    Computes electronegativity-equilibration (EEQ) atomic partial
	charges and their nuclear derivatives.

    Evaluates the D4 dispersion model: Gaussian reference weighting,
	charge scaling, dynamic polarizabilities on the Casimir-Polder grid
	and pairwise C6/C8/C10 dispersion coefficients.

    Computes two-body dispersion energies with rational (Becke-Johnson)
	damping and the Axilrod-Teller-Muto three-body term, atom-resolved
	and pair-resolved.

    Computes analytical nuclear gradients of the dispersion energy, and
	numerical ones for validation.

    Ships damping parameters for common density functionals in an
	embedded TOML table, and takes user overrides.

    Caches derived reference data as .npy or zstd-compressed .npy files.

    Runs batches of dispersion jobs declared in HCL manifests on a
	worker pool, and evaluates multi-geometry files concurrently.

    Plots dispersion energy profiles and dynamic polarizability curves.

All quantities inside the library are in Hartree atomic units; file
readers and writers convert at the boundary. Coordinates live in gonum
dense matrices with one row per atom.

The computational subpackages are ncoord (coordination numbers), charges
(EEQ partial charges), model (the D4 model itself), damping (functional
parameters), disp (dispersion energies and gradients), cache (reference
data caching), dispplot and batch.
*/
package dftd4
