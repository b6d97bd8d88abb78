/*
 * molecule.go, part of godftd4.
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

package dftd4

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

//Molecule contains the information needed to evaluate the dispersion
//correction: atomic numbers, one or more sets of coordinates (geometries)
//and the total charge. The part not expected to change between geometries
//(numbers, charge) is stored once.
type Molecule struct {
	numbers []int
	coords  []*mat.Dense //one nat x 3 matrix per geometry, in Bohr
	charge  int
}

//MakeMolecule makes a molecule with the given atomic numbers, an initial
//geometry (may be nil, more can be appended later) and total charge.
//It returns an error if an atomic number is outside the parametrized
//range or the coordinate dimensions do not match the numbers.
func MakeMolecule(numbers []int, coords *mat.Dense, charge int) (*Molecule, error) {
	if len(numbers) == 0 {
		return nil, errors.Wrap(ErrInvalidGeometry, "no atoms given")
	}
	for i, z := range numbers {
		if !SupportedZ(z) {
			return nil, errors.Wrapf(ErrUnsupportedElement, "atom %d has atomic number %d", i, z)
		}
	}
	M := &Molecule{numbers: numbers, charge: charge}
	if coords != nil {
		if err := M.AddFrame(coords); err != nil {
			return nil, err
		}
	}
	return M, nil
}

//MakeMoleculeFromSymbols is as MakeMolecule but takes element symbols.
func MakeMoleculeFromSymbols(symbols []string, coords *mat.Dense, charge int) (*Molecule, error) {
	numbers := make([]int, len(symbols))
	for i, s := range symbols {
		z, err := AtomicNumber(s)
		if err != nil {
			return nil, errors.Wrapf(err, "atom %d", i)
		}
		numbers[i] = z
	}
	return MakeMolecule(numbers, coords, charge)
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.numbers)
}

//NFrames returns the number of geometries stored.
func (M *Molecule) NFrames() int {
	return len(M.coords)
}

//Charge gets the total charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

//SetCharge sets the total charge of the molecule to i.
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

//Numbers returns the atomic numbers. The returned slice is the
//internal one, so the caller must not modify it.
func (M *Molecule) Numbers() []int {
	return M.numbers
}

//Symbols returns the element symbols of the atoms, in order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, len(M.numbers))
	for i, z := range M.numbers {
		ret[i] = symbols[z]
	}
	return ret
}

//Frame returns the coordinates for the ith geometry, in Bohr.
//It panics if out of range.
func (M *Molecule) Frame(i int) *mat.Dense {
	if i < 0 || i >= len(M.coords) {
		panic(PanicMsg("godftd4/Frame: frame index out of range"))
	}
	return M.coords[i]
}

//AddFrame appends a geometry. The matrix must have one row per atom and
//3 columns, and contain only finite values.
func (M *Molecule) AddFrame(coords *mat.Dense) error {
	r, c := coords.Dims()
	if r != len(M.numbers) || c != 3 {
		return errors.Wrapf(ErrDimensionMismatch, "got %dx%d coordinates for %d atoms", r, c, len(M.numbers))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			if v := coords.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Wrapf(ErrInvalidGeometry, "atom %d has a non-finite coordinate", i)
			}
		}
	}
	M.coords = append(M.coords, coords)
	return nil
}

//Copy returns a deep copy of the molecule, geometries included.
func (M *Molecule) Copy() *Molecule {
	N := &Molecule{charge: M.charge}
	N.numbers = make([]int, len(M.numbers))
	copy(N.numbers, M.numbers)
	N.coords = make([]*mat.Dense, 0, len(M.coords))
	for _, v := range M.coords {
		N.coords = append(N.coords, mat.DenseCopyOf(v))
	}
	return N
}

//Dist returns the distance between the ith and jth rows of coords,
//in whatever unit coords is in.
func Dist(coords *mat.Dense, i, j int) float64 {
	return math.Sqrt(Dist2(coords, i, j))
}

//Dist2 returns the squared distance between the ith and jth rows of coords.
//Squared distances are what most of the dispersion expressions consume, so
//callers avoid the square root when they can.
func Dist2(coords *mat.Dense, i, j int) float64 {
	dx := coords.At(i, 0) - coords.At(j, 0)
	dy := coords.At(i, 1) - coords.At(j, 1)
	dz := coords.At(i, 2) - coords.At(j, 2)
	return dx*dx + dy*dy + dz*dz
}
