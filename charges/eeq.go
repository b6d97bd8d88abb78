/*
 * eeq.go, part of godftd4.
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

/*Package charges implements the electronegativity equilibration (EEQ)
charge model. Partial charges are obtained by minimizing an isotropic
electrostatic energy under the constraint that they add up to the total
molecular charge, which reduces to one linear solve per geometry. The
model needs the EEQ flavor of the coordination number (see the ncoord
package) as input.
*/
package charges

import (
	"math"

	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"gonum.org/v1/gonum/mat"
)

var sqrt2pi = math.Sqrt(2.0 / math.Pi)

//Charges returns the EEQ partial charges for the given frame of mol.
//charge is the total molecular charge and cn the EEQ coordination
//numbers of the atoms (ncoord.CoordinationNumberEEQ). The returned
//charges add up to the total charge to solver precision.
func Charges(mol *dftd4.Molecule, frame int, charge int, cn []float64) ([]float64, error) {
	A, b, err := assemble(mol, frame, charge, cn)
	if err != nil {
		return nil, err
	}
	y, err := solveSystem(A, b)
	if err != nil {
		return nil, err
	}
	return y[:mol.Len()], nil
}

//Energy returns the EEQ electrostatic energy, in Hartree, together
//with the partial charges it was minimized for.
func Energy(mol *dftd4.Molecule, frame int, charge int, cn []float64) (float64, []float64, error) {
	nat := mol.Len()
	A, b, err := assemble(mol, frame, charge, cn)
	if err != nil {
		return 0, nil, err
	}
	y, err := solveSystem(A, b)
	if err != nil {
		return 0, nil, err
	}
	q := y[:nat]
	e := 0.0
	for i := 0; i < nat; i++ {
		for j := 0; j < nat; j++ {
			e += 0.5 * q[i] * A.At(i, j) * q[j]
		}
		e -= q[i] * b[i]
	}
	return e, q, nil
}

//ChargesAndDerivative returns the EEQ charges together with their
//derivatives with respect to the Cartesian coordinates, obtained by
//implicit differentiation of the charge equilibration system. The
//factorization of the system matrix is reused for all 3*natoms
//right-hand sides. dcn must be the derivative matrix of the EEQ
//coordination numbers (ncoord.CoordinationNumberEEQGradient), with
//one row per atom and 3*natoms columns. The returned derivative
//matrix has the same layout, i.e. element (i, 3j+d) is dq_i/dx_jd.
func ChargesAndDerivative(mol *dftd4.Molecule, frame int, charge int, cn []float64, dcn *mat.Dense) ([]float64, *mat.Dense, error) {
	nat := mol.Len()
	if r, c := dcn.Dims(); r != nat || c != 3*nat {
		return nil, nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "charges: dcn is %dx%d, want %dx%d", r, c, nat, 3*nat)
	}
	A, b, err := assemble(mol, frame, charge, cn)
	if err != nil {
		return nil, nil, err
	}
	var lu mat.LU
	lu.Factorize(A)
	bvec := mat.NewVecDense(nat+1, b)
	var yv mat.VecDense
	if err := lu.SolveVecTo(&yv, false, bvec); err != nil {
		return nil, nil, errors.Wrap(err, "charges: singular EEQ system")
	}
	q := make([]float64, nat)
	for i := 0; i < nat; i++ {
		q[i] = yv.AtVec(i)
	}
	//right-hand sides db - dA*y for every Cartesian direction. The
	//border row and column of the system matrix are constant, so only
	//the electrostatic block contributes to dA.
	rhs := mat.NewDense(nat+1, 3*nat, nil)
	numbers := mol.Numbers()
	coords := mol.Frame(frame)
	for i := 0; i < nat; i++ {
		ki := kcn[numbers[i]]
		fac := 0.0
		if cn[i] > 0 {
			fac = ki / (2 * math.Sqrt(cn[i]))
		}
		for c := 0; c < 3*nat; c++ {
			rhs.Set(i, c, fac*dcn.At(i, c))
		}
	}
	for i := 0; i < nat; i++ {
		radi := rad[numbers[i]]
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			gam := math.Hypot(radi, rad[numbers[j]])
			g := dkernel(r, gam)
			for d := 0; d < 3; d++ {
				u := (coords.At(i, d) - coords.At(j, d)) / r
				//direction (i,d): dA_ij = g*u, direction (j,d): -g*u
				rhs.Set(i, 3*i+d, rhs.At(i, 3*i+d)-g*u*q[j])
				rhs.Set(i, 3*j+d, rhs.At(i, 3*j+d)+g*u*q[j])
				rhs.Set(j, 3*i+d, rhs.At(j, 3*i+d)-g*u*q[i])
				rhs.Set(j, 3*j+d, rhs.At(j, 3*j+d)+g*u*q[i])
			}
		}
	}
	var dy mat.Dense
	if err := lu.SolveTo(&dy, false, rhs); err != nil {
		return nil, nil, errors.Wrap(err, "charges: singular EEQ system in the derivative")
	}
	dq := mat.NewDense(nat, 3*nat, nil)
	dq.Copy(dy.Slice(0, nat, 0, 3*nat))
	return q, dq, nil
}

//kernel is the EEQ Coulomb interaction between two atoms at distance r
//with combined charge width gam.
func kernel(r, gam float64) float64 {
	return math.Erf(r/gam) / r
}

//dkernel is the derivative of kernel with respect to r.
func dkernel(r, gam float64) float64 {
	return 2.0/(math.SqrtPi*gam)*math.Exp(-r*r/(gam*gam))/r - math.Erf(r/gam)/(r*r)
}

//assemble builds the bordered EEQ system: the electrostatic block, a
//Lagrange row and column enforcing the total charge, and the
//electronegativity right-hand side.
func assemble(mol *dftd4.Molecule, frame int, charge int, cn []float64) (*mat.Dense, []float64, error) {
	nat := mol.Len()
	if len(cn) != nat {
		return nil, nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "charges: %d coordination numbers for %d atoms", len(cn), nat)
	}
	numbers := mol.Numbers()
	coords := mol.Frame(frame)
	A := mat.NewDense(nat+1, nat+1, nil)
	b := make([]float64, nat+1)
	for i := 0; i < nat; i++ {
		zi := numbers[i]
		A.Set(i, i, eta[zi]+sqrt2pi/rad[zi])
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			v := kernel(r, math.Hypot(rad[zi], rad[numbers[j]]))
			A.Set(i, j, v)
			A.Set(j, i, v)
		}
		A.Set(i, nat, 1)
		A.Set(nat, i, 1)
		b[i] = -chi[zi] + kcn[zi]*math.Sqrt(cn[i])
	}
	b[nat] = float64(charge)
	return A, b, nil
}

func solveSystem(A *mat.Dense, b []float64) ([]float64, error) {
	n := len(b)
	var lu mat.LU
	lu.Factorize(A)
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, b)); err != nil {
		return nil, errors.Wrap(err, "charges: singular EEQ system")
	}
	y := make([]float64, n)
	for i := range y {
		y[i] = x.AtVec(i)
	}
	return y, nil
}
