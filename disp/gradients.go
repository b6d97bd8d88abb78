/*
 * gradients.go, part of godftd4.
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

package disp

import (
	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/charges"
	"github.com/rmera/godftd4/damping"
	"github.com/rmera/godftd4/model"
	"github.com/rmera/godftd4/ncoord"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

//Gradient returns the atom-resolved dispersion energies together with
//the nuclear gradient of their sum, as a natoms x 3 matrix in
//Hartree/Bohr. The two-body gradient is fully analytic: it chains the
//derivative of the damped series with respect to the distances with
//the derivatives of the C6 coefficients through the coordination
//numbers and, when the EEQ charges are computed internally, through
//the charges by implicit differentiation. The three-body part, being
//a small correction, is differentiated by central differences of the
//three-body term alone. User-supplied charges are held fixed.
func Gradient(mol *dftd4.Molecule, frame int, param *damping.Param, opts ...*Options) ([]float64, *mat.Dense, error) {
	O := getOptions(opts)
	if err := check(param, O); err != nil {
		return nil, nil, err
	}
	nat := mol.Len()
	energies := make([]float64, nat)
	grad := mat.NewDense(nat, 3, nil)
	if !O.twobody && !O.threebody {
		return energies, grad, nil
	}
	m, err := model.New(mol.Numbers(), O.model)
	if err != nil {
		return nil, nil, err
	}
	if O.twobody {
		if err := twoBodyGradient(mol, frame, m, param, O, energies, grad); err != nil {
			return nil, nil, err
		}
	}
	if O.threebody && param.S9 != 0 {
		atmE, err := atmEnergies(mol, frame, m, param, O)
		if err != nil {
			return nil, nil, err
		}
		for i, v := range atmE {
			energies[i] += v
		}
		addATMGradientFD(mol, frame, m, param, O, grad)
	}
	return energies, grad, nil
}

func twoBodyGradient(mol *dftd4.Molecule, frame int, m *model.D4, param *damping.Param, O *Options, energies []float64, grad *mat.Dense) error {
	nat := mol.Len()
	cnopts := ncoord.DefaultOptions()
	cnopts.Cutoff(O.cutoff.CN)
	cn, dcn, err := ncoord.CoordinationNumberGradient(mol, frame, cnopts)
	if err != nil {
		return err
	}
	var q []float64
	var dq *mat.Dense
	if O.q != nil {
		if len(O.q) != nat {
			return errors.Wrapf(dftd4.ErrDimensionMismatch, "disp: %d charges for %d atoms", len(O.q), nat)
		}
		q = O.q
	} else {
		eeqopts := ncoord.DefaultEEQOptions()
		eeqopts.Cutoff(O.cutoff.CNEEQ)
		cneeq, dcneeq, err := ncoord.CoordinationNumberEEQGradient(mol, frame, eeqopts)
		if err != nil {
			return err
		}
		q, dq, err = charges.ChargesAndDerivative(mol, frame, mol.Charge(), cneeq, dcneeq)
		if err != nil {
			return err
		}
	}
	w, dwdcn, dwdq, err := m.WeightDerivatives(cn, q)
	if err != nil {
		return err
	}
	c6, dc6dcn, dc6dq := m.AtomicC6Derivatives(w, dwdcn, dwdq)
	dEdcn := make([]float64, nat)
	dEdq := make([]float64, nat)
	coords := mol.Frame(frame)
	numbers := mol.Numbers()
	for i := 0; i < nat; i++ {
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			if r > O.cutoff.Disp2 {
				continue
			}
			qq := qqPair(numbers[i], numbers[j])
			//series is the damped sum per unit C6, so the pair energy
			//is -series*C6 and dE/dC6 is -series
			series := pairEnergy(param, 1.0, r, qq)
			e := series * c6.At(i, j)
			de := dPairEnergy(param, c6.At(i, j), r, qq)
			energies[i] -= 0.5 * e
			energies[j] -= 0.5 * e
			for d := 0; d < 3; d++ {
				u := (coords.At(i, d) - coords.At(j, d)) / r
				grad.Set(i, d, grad.At(i, d)-de*u)
				grad.Set(j, d, grad.At(j, d)+de*u)
			}
			dEdcn[i] -= series * dc6dcn.At(i, j)
			dEdcn[j] -= series * dc6dcn.At(j, i)
			dEdq[i] -= series * dc6dq.At(i, j)
			dEdq[j] -= series * dc6dq.At(j, i)
		}
	}
	//chain the C6 derivatives through the geometry dependence of the
	//coordination numbers and, if applicable, of the charges
	for i := 0; i < nat; i++ {
		if dEdcn[i] == 0 && dEdq[i] == 0 {
			continue
		}
		for jd := 0; jd < 3*nat; jd++ {
			v := dEdcn[i] * dcn.At(i, jd)
			if dq != nil {
				v += dEdq[i] * dq.At(i, jd)
			}
			if v != 0 {
				grad.Set(jd/3, jd%3, grad.At(jd/3, jd%3)+v)
			}
		}
	}
	return nil
}

//atmEnergies evaluates the three-body term of a frame from scratch:
//coordination numbers, charge-neutral weights, C6 contraction, ATM.
func atmEnergies(mol *dftd4.Molecule, frame int, m *model.D4, param *damping.Param, O *Options) ([]float64, error) {
	cnopts := ncoord.DefaultOptions()
	cnopts.Cutoff(O.cutoff.CN)
	cn, err := ncoord.CoordinationNumber(mol, frame, cnopts)
	if err != nil {
		return nil, err
	}
	w0, err := m.WeightReferences(cn, nil)
	if err != nil {
		return nil, err
	}
	return ATM(mol, frame, m.AtomicC6(w0), param, O.cutoff.Disp3)
}

//addATMGradientFD adds the central-difference gradient of the
//three-body term to grad. The term is a small correction on top of
//the two-body energy, so the finite-difference error is well below
//the accuracy of the correction itself.
func addATMGradientFD(mol *dftd4.Molecule, frame int, m *model.D4, param *damping.Param, O *Options, grad *mat.Dense) {
	nat := mol.Len()
	numbers := mol.Numbers()
	charge := mol.Charge()
	target := func(x []float64) float64 {
		c := mat.NewDense(nat, 3, append([]float64{}, x...))
		mm, err := dftd4.MakeMolecule(numbers, c, charge)
		if err != nil {
			panic(dftd4.PanicMsg("disp: displaced geometry rejected: " + err.Error()))
		}
		e, err := atmEnergies(mm, 0, m, param, O)
		if err != nil {
			panic(dftd4.PanicMsg("disp: three-body term failed on a displaced geometry: " + err.Error()))
		}
		total := 0.0
		for _, v := range e {
			total += v
		}
		return total
	}
	g := fd.Gradient(nil, target, flatCoords(mol, frame), &fd.Settings{Formula: fd.Central, Concurrent: true})
	for i := 0; i < nat; i++ {
		for d := 0; d < 3; d++ {
			grad.Set(i, d, grad.At(i, d)+g[3*i+d])
		}
	}
}

//GradientNumerical returns the full central-difference nuclear
//gradient of the total dispersion energy, as a natoms x 3 matrix. It
//is considerably more expensive than Gradient and exists as an
//independent reference for it.
func GradientNumerical(mol *dftd4.Molecule, frame int, param *damping.Param, opts ...*Options) (*mat.Dense, error) {
	O := getOptions(opts)
	if err := check(param, O); err != nil {
		return nil, err
	}
	nat := mol.Len()
	numbers := mol.Numbers()
	charge := mol.Charge()
	target := func(x []float64) float64 {
		c := mat.NewDense(nat, 3, append([]float64{}, x...))
		mm, err := dftd4.MakeMolecule(numbers, c, charge)
		if err != nil {
			panic(dftd4.PanicMsg("disp: displaced geometry rejected: " + err.Error()))
		}
		total, err := Total(mm, 0, param, O)
		if err != nil {
			panic(dftd4.PanicMsg("disp: energy failed on a displaced geometry: " + err.Error()))
		}
		return total
	}
	g := fd.Gradient(nil, target, flatCoords(mol, frame), &fd.Settings{Formula: fd.Central, Concurrent: true})
	grad := mat.NewDense(nat, 3, nil)
	for i := 0; i < nat; i++ {
		for d := 0; d < 3; d++ {
			grad.Set(i, d, g[3*i+d])
		}
	}
	return grad, nil
}

//flatCoords returns the coordinates of a frame as a flat slice, the
//layout finite-difference helpers work on.
func flatCoords(mol *dftd4.Molecule, frame int) []float64 {
	nat := mol.Len()
	coords := mol.Frame(frame)
	flat := make([]float64, 3*nat)
	for i := 0; i < nat; i++ {
		for d := 0; d < 3; d++ {
			flat[3*i+d] = coords.At(i, d)
		}
	}
	return flat
}
