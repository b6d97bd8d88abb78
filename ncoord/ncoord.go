/*
 * ncoord.go, part of godftd4.
 *
 *
 * Copyright 2025 Raul Mera <rmera{at}usachDOTcl>
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

package ncoord

import (
	"math"

	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"gonum.org/v1/gonum/mat"
)

//Electronegativity scaling constants for the D4 coordination number.
const (
	k4 = 1.4374
	k5 = 2.4
	k6 = 11.28
)

//Options contains the parameters for the coordination number functions.
//The zero value is not usable, obtain one from DefaultOptions or
//DefaultEEQOptions and modify it with the provided methods.
type Options struct {
	cutoff    float64
	rcov      []float64
	k         float64
	cnmax     float64
	counting  CountingFunction
	dcounting CountingFunction
}

//DefaultOptions returns options for the D4 coordination number:
//error-function counting with steepness 7.5 and a 30 Bohr real-space
//cutoff.
func DefaultOptions() *Options {
	return &Options{
		cutoff:    30.0,
		k:         KErf,
		cnmax:     8.0,
		counting:  ErfCount,
		dcounting: DErfCount,
	}
}

//DefaultEEQOptions returns options for the electronegativity
//equilibration coordination number, which uses a shorter 25 Bohr
//cutoff and caps the result at 8.
func DefaultEEQOptions() *Options {
	O := DefaultOptions()
	O.cutoff = 25.0
	return O
}

//Cutoff sets (if given) and returns the real-space cutoff for
//neighbor pairs, in Bohr.
func (O *Options) Cutoff(rc ...float64) float64 {
	if len(rc) > 0 {
		O.cutoff = rc[0]
	}
	return O.cutoff
}

//K sets (if given) and returns the steepness of the counting function.
func (O *Options) K(k ...float64) float64 {
	if len(k) > 0 {
		O.k = k[0]
	}
	return O.k
}

//CNMax sets (if given) and returns the maximum coordination number
//enforced by the EEQ flavor. Values <=0 disable the cap.
func (O *Options) CNMax(m ...float64) float64 {
	if len(m) > 0 {
		O.cnmax = m[0]
	}
	return O.cnmax
}

//Rcov sets (if given) and returns the per-atom covalent radii, in Bohr,
//used to build the reference distances. If unset, the D3 covalent radii
//for the atomic numbers of the molecule are used.
func (O *Options) Rcov(r ...[]float64) []float64 {
	if len(r) > 0 {
		O.rcov = r[0]
	}
	return O.rcov
}

//Counting sets (if given) and returns the counting function and its
//derivative with respect to the distance. Both must be given together.
func (O *Options) Counting(f ...CountingFunction) (CountingFunction, CountingFunction) {
	if len(f) >= 2 {
		O.counting = f[0]
		O.dcounting = f[1]
	}
	return O.counting, O.dcounting
}

//radii returns the per-atom covalent radii for mol, either the
//user-supplied ones or the tabulated D3 values.
func (O *Options) radii(mol *dftd4.Molecule) ([]float64, error) {
	if O.rcov != nil {
		if len(O.rcov) != mol.Len() {
			return nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "ncoord: %d covalent radii for %d atoms", len(O.rcov), mol.Len())
		}
		return O.rcov, nil
	}
	numbers := mol.Numbers()
	rcov := make([]float64, len(numbers))
	for i, z := range numbers {
		rcov[i] = dftd4.CovalentRadius(z)
	}
	return rcov, nil
}

//CoordinationNumber returns the D4 fractional coordination number of
//every atom in the given frame of mol. Pairs are counted with the
//error-function counting function scaled by an electronegativity
//factor that damps contributions between atoms of very different
//electronegativity.
func CoordinationNumber(mol *dftd4.Molecule, frame int, opts ...*Options) ([]float64, error) {
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	return coordination(mol, frame, O, enFactor)
}

//CoordinationNumberEEQ returns the coordination number used by the
//electronegativity equilibration charge model. It counts pairs with
//the plain error-function counting function and caps the result
//smoothly at CNMax.
func CoordinationNumberEEQ(mol *dftd4.Molecule, frame int, opts ...*Options) ([]float64, error) {
	O := DefaultEEQOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	cn, err := coordination(mol, frame, O, nil)
	if err != nil {
		return nil, err
	}
	if O.cnmax > 0 {
		for i := range cn {
			cn[i] = capCN(cn[i], O.cnmax)
		}
	}
	return cn, nil
}

//CoordinationNumberGradient returns the D4 coordination numbers
//together with their derivatives with respect to the Cartesian
//coordinates. The derivative matrix has one row per atom and 3*natoms
//columns, so element (i, 3j+d) is dCN_i/dx_jd.
func CoordinationNumberGradient(mol *dftd4.Molecule, frame int, opts ...*Options) ([]float64, *mat.Dense, error) {
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	return coordinationGradient(mol, frame, O, enFactor, false)
}

//CoordinationNumberEEQGradient returns the EEQ coordination numbers
//and their Cartesian derivatives, in the same layout used by
//CoordinationNumberGradient. The derivative of the smooth cap is
//included.
func CoordinationNumberEEQGradient(mol *dftd4.Molecule, frame int, opts ...*Options) ([]float64, *mat.Dense, error) {
	O := DefaultEEQOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	return coordinationGradient(mol, frame, O, nil, O.cnmax > 0)
}

//enFactor is the electronegativity damping of the D4 coordination
//number.
func enFactor(zi, zj int) float64 {
	den := math.Abs(dftd4.Electronegativity(zi)-dftd4.Electronegativity(zj)) + k5
	return k4 * math.Exp(-den*den/k6)
}

//capCN caps cn smoothly at cnmax, following the logarithmic form of
//the EEQ model.
func capCN(cn, cnmax float64) float64 {
	return math.Log(1+math.Exp(cnmax)) - math.Log(1+math.Exp(cnmax-cn))
}

//dCapCN is the derivative of capCN with respect to the uncapped cn.
func dCapCN(cn, cnmax float64) float64 {
	return 1.0 / (1.0 + math.Exp(cn-cnmax))
}

func coordination(mol *dftd4.Molecule, frame int, O *Options, en func(zi, zj int) float64) ([]float64, error) {
	rcov, err := O.radii(mol)
	if err != nil {
		return nil, err
	}
	coords := mol.Frame(frame)
	numbers := mol.Numbers()
	nat := mol.Len()
	cn := make([]float64, nat)
	for i := 0; i < nat; i++ {
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			if r > O.cutoff {
				continue
			}
			cf := O.counting(O.k, r, rcov[i]+rcov[j])
			if en != nil {
				cf *= en(numbers[i], numbers[j])
			}
			cn[i] += cf
			cn[j] += cf
		}
	}
	return cn, nil
}

func coordinationGradient(mol *dftd4.Molecule, frame int, O *Options, en func(zi, zj int) float64, capped bool) ([]float64, *mat.Dense, error) {
	rcov, err := O.radii(mol)
	if err != nil {
		return nil, nil, err
	}
	coords := mol.Frame(frame)
	numbers := mol.Numbers()
	nat := mol.Len()
	cn := make([]float64, nat)
	dcn := mat.NewDense(nat, 3*nat, nil)
	for i := 0; i < nat; i++ {
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			if r > O.cutoff {
				continue
			}
			r0 := rcov[i] + rcov[j]
			cf := O.counting(O.k, r, r0)
			df := O.dcounting(O.k, r, r0)
			if en != nil {
				f := en(numbers[i], numbers[j])
				cf *= f
				df *= f
			}
			cn[i] += cf
			cn[j] += cf
			for d := 0; d < 3; d++ {
				//derivative of r with respect to the d component of atom i
				u := (coords.At(i, d) - coords.At(j, d)) / r
				dcn.Set(i, 3*i+d, dcn.At(i, 3*i+d)+df*u)
				dcn.Set(i, 3*j+d, dcn.At(i, 3*j+d)-df*u)
				dcn.Set(j, 3*j+d, dcn.At(j, 3*j+d)-df*u)
				dcn.Set(j, 3*i+d, dcn.At(j, 3*i+d)+df*u)
			}
		}
	}
	if capped {
		for i := 0; i < nat; i++ {
			dc := dCapCN(cn[i], O.cnmax)
			for c := 0; c < 3*nat; c++ {
				dcn.Set(i, c, dcn.At(i, c)*dc)
			}
			cn[i] = capCN(cn[i], O.cnmax)
		}
	}
	return cn, dcn, nil
}
