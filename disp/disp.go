/*
 * disp.go, part of godftd4.
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

/*Package disp assembles the D4 dispersion correction: it combines the
coordination numbers, the EEQ partial charges, the reference weights of
the dispersion model and the damping parameters of a density functional
into atom-resolved dispersion energies, nuclear gradients and pairwise
analyses. Energies are in Hartree, gradients in Hartree/Bohr.
*/
package disp

import (
	"math"

	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/charges"
	"github.com/rmera/godftd4/damping"
	"github.com/rmera/godftd4/model"
	"github.com/rmera/godftd4/ncoord"
	"gonum.org/v1/gonum/mat"
)

//Options contains the parameters of a dispersion evaluation. Obtain
//one from DefaultOptions and modify it with the provided methods.
type Options struct {
	cutoff    *Cutoff
	q         []float64
	twobody   bool
	threebody bool
	model     *model.Options
	workers   int
}

//DefaultOptions returns the standard evaluation options: both the
//two-body and the three-body terms enabled, default cutoffs, EEQ
//charges computed on the fly and the worker count for multi-frame
//evaluations picked automatically.
func DefaultOptions() *Options {
	return &Options{cutoff: DefaultCutoff(), twobody: true, threebody: true}
}

//Cutoff sets (if given) and returns the real-space cutoffs.
func (O *Options) Cutoff(c ...*Cutoff) *Cutoff {
	if len(c) > 0 && c[0] != nil {
		O.cutoff = c[0]
	}
	return O.cutoff
}

//Charges sets (if given) and returns user-supplied partial charges.
//When set, the EEQ calculation is skipped and these are used instead.
//Supplying charges while the only charge-dependent term, the two-body
//energy, is disabled is an error.
func (O *Options) Charges(q ...[]float64) []float64 {
	if len(q) > 0 {
		O.q = q[0]
	}
	return O.q
}

//TwoBody sets (if given) and returns whether the two-body term is
//evaluated.
func (O *Options) TwoBody(b ...bool) bool {
	if len(b) > 0 {
		O.twobody = b[0]
	}
	return O.twobody
}

//ThreeBody sets (if given) and returns whether the three-body term is
//evaluated.
func (O *Options) ThreeBody(b ...bool) bool {
	if len(b) > 0 {
		O.threebody = b[0]
	}
	return O.threebody
}

//Model sets (if given) and returns the options passed to the
//dispersion model, nil meaning the model defaults.
func (O *Options) Model(m ...*model.Options) *model.Options {
	if len(m) > 0 {
		O.model = m[0]
	}
	return O.model
}

//Workers sets (if given) and returns the number of concurrent workers
//used by EnergyFrames. Values <1, the default, select the worker
//count automatically from the CPU count and the available memory.
func (O *Options) Workers(w ...int) int {
	if len(w) > 0 {
		O.workers = w[0]
	}
	return O.workers
}

func getOptions(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return DefaultOptions()
}

//check validates the common inputs of the evaluation entry points.
func check(param *damping.Param, O *Options) error {
	if err := param.Validate(); err != nil {
		return err
	}
	if err := O.cutoff.Validate(); err != nil {
		return err
	}
	if O.q != nil && !O.twobody {
		return errors.New("disp: partial charges were given, but no charge-dependent term is enabled")
	}
	return nil
}

//Energy returns the atom-resolved D4 dispersion energy of the given
//frame, in Hartree. The partial charges for the charge-dependent
//two-body term are computed with the EEQ model for the total charge
//of the molecule, unless explicitly supplied through the options. The
//three-body term is evaluated with charge-neutral weights, following
//the reference implementation of the method.
func Energy(mol *dftd4.Molecule, frame int, param *damping.Param, opts ...*Options) ([]float64, error) {
	O := getOptions(opts)
	if err := check(param, O); err != nil {
		return nil, err
	}
	if !O.twobody && !O.threebody {
		return make([]float64, mol.Len()), nil
	}
	m, err := model.New(mol.Numbers(), O.model)
	if err != nil {
		return nil, err
	}
	return energyModel(mol, frame, m, param, O)
}

//energyModel is the per-frame pipeline behind Energy, reusing a
//prebuilt model. It is safe for concurrent use on different frames.
func energyModel(mol *dftd4.Molecule, frame int, m *model.D4, param *damping.Param, O *Options) ([]float64, error) {
	nat := mol.Len()
	energies := make([]float64, nat)
	if !O.twobody && !O.threebody {
		return energies, nil
	}
	cnopts := ncoord.DefaultOptions()
	cnopts.Cutoff(O.cutoff.CN)
	cn, err := ncoord.CoordinationNumber(mol, frame, cnopts)
	if err != nil {
		return nil, err
	}
	if O.twobody {
		var err error
		q := O.q
		if q == nil {
			if q, err = eeqCharges(mol, frame, O); err != nil {
				return nil, err
			}
		} else if len(q) != nat {
			return nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "disp: %d charges for %d atoms", len(q), nat)
		}
		w, err := m.WeightReferences(cn, q)
		if err != nil {
			return nil, err
		}
		two, err := TwoBody(mol, frame, m.AtomicC6(w), param, O.cutoff.Disp2)
		if err != nil {
			return nil, err
		}
		for i, v := range two {
			energies[i] += v
		}
	}
	if O.threebody && param.S9 != 0 {
		w0, err := m.WeightReferences(cn, nil)
		if err != nil {
			return nil, err
		}
		three, err := ATM(mol, frame, m.AtomicC6(w0), param, O.cutoff.Disp3)
		if err != nil {
			return nil, err
		}
		for i, v := range three {
			energies[i] += v
		}
	}
	return energies, nil
}

//Total returns the total D4 dispersion energy of the given frame, in
//Hartree.
func Total(mol *dftd4.Molecule, frame int, param *damping.Param, opts ...*Options) (float64, error) {
	energies, err := Energy(mol, frame, param, opts...)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, e := range energies {
		total += e
	}
	return total, nil
}

//eeqCharges computes the EEQ partial charges for the total charge of
//the molecule.
func eeqCharges(mol *dftd4.Molecule, frame int, O *Options) ([]float64, error) {
	opts := ncoord.DefaultEEQOptions()
	opts.Cutoff(O.cutoff.CNEEQ)
	cneeq, err := ncoord.CoordinationNumberEEQ(mol, frame, opts)
	if err != nil {
		return nil, err
	}
	return charges.Charges(mol, frame, mol.Charge(), cneeq)
}

//pairEnergy is the (positive) magnitude of the damped two-body series
//of one atom pair: s6*C6*f6 + s8*C8*f8 + s10*C10*f10, with the higher
//coefficients recursively built from C6 and the multipole ratio qq.
func pairEnergy(p *damping.Param, c6, r, qq float64) float64 {
	e := p.S6 * damping.Rational(6, r, qq, p.A1, p.A2)
	e += p.S8 * qq * damping.Rational(8, r, qq, p.A1, p.A2)
	if p.S10 != 0 {
		e += p.S10 * 49.0 / 40.0 * qq * qq * damping.Rational(10, r, qq, p.A1, p.A2)
	}
	return c6 * e
}

//dPairEnergy is the derivative of pairEnergy with respect to r.
func dPairEnergy(p *damping.Param, c6, r, qq float64) float64 {
	d := p.S6 * damping.DRational(6, r, qq, p.A1, p.A2)
	d += p.S8 * qq * damping.DRational(8, r, qq, p.A1, p.A2)
	if p.S10 != 0 {
		d += p.S10 * 49.0 / 40.0 * qq * qq * damping.DRational(10, r, qq, p.A1, p.A2)
	}
	return c6 * d
}

//qqPair returns the multipole expectation ratio of an atom pair,
//which scales C8 against C6 and enters the critical radius of the
//damping function.
func qqPair(zi, zj int) float64 {
	return 3.0 * dftd4.R4R2(zi) * dftd4.R4R2(zj)
}

//TwoBody returns the atom-resolved two-body dispersion energy for a
//precomputed pairwise C6 matrix. Each atom receives half of the
//energy of each of its pairs. Pairs beyond the cutoff are skipped.
func TwoBody(mol *dftd4.Molecule, frame int, c6 *mat.Dense, param *damping.Param, cutoff float64) ([]float64, error) {
	nat := mol.Len()
	if r, c := c6.Dims(); r != nat || c != nat {
		return nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "disp: C6 matrix is %dx%d for %d atoms", r, c, nat)
	}
	if err := param.Validate(); err != nil {
		return nil, err
	}
	energies := make([]float64, nat)
	coords := mol.Frame(frame)
	numbers := mol.Numbers()
	for i := 0; i < nat; i++ {
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			if r > cutoff {
				continue
			}
			e := pairEnergy(param, c6.At(i, j), r, qqPair(numbers[i], numbers[j]))
			energies[i] -= 0.5 * e
			energies[j] -= 0.5 * e
		}
	}
	return energies, nil
}

//Pairwise returns the two-body dispersion energy resolved into atom
//pairs: element (i, j) is the full (negative) energy of that pair, so
//the sum over the upper triangle recovers the two-body energy. The
//diagonal is zero.
func Pairwise(mol *dftd4.Molecule, frame int, param *damping.Param, opts ...*Options) (*mat.Dense, error) {
	O := getOptions(opts)
	if err := check(param, O); err != nil {
		return nil, err
	}
	nat := mol.Len()
	m, err := model.New(mol.Numbers(), O.model)
	if err != nil {
		return nil, err
	}
	cnopts := ncoord.DefaultOptions()
	cnopts.Cutoff(O.cutoff.CN)
	cn, err := ncoord.CoordinationNumber(mol, frame, cnopts)
	if err != nil {
		return nil, err
	}
	q := O.q
	if q == nil {
		if q, err = eeqCharges(mol, frame, O); err != nil {
			return nil, err
		}
	} else if len(q) != nat {
		return nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "disp: %d charges for %d atoms", len(q), nat)
	}
	w, err := m.WeightReferences(cn, q)
	if err != nil {
		return nil, err
	}
	c6 := m.AtomicC6(w)
	pw := mat.NewDense(nat, nat, nil)
	coords := mol.Frame(frame)
	numbers := mol.Numbers()
	for i := 0; i < nat; i++ {
		for j := i + 1; j < nat; j++ {
			r := dftd4.Dist(coords, i, j)
			if r > O.cutoff.Disp2 {
				continue
			}
			e := -pairEnergy(param, c6.At(i, j), r, qqPair(numbers[i], numbers[j]))
			pw.Set(i, j, e)
			pw.Set(j, i, e)
		}
	}
	return pw, nil
}

//ATM returns the atom-resolved three-body Axilrod-Teller-Muto
//dispersion energy for a precomputed pairwise C6 matrix, which should
//come from charge-neutral reference weights. Each atom of a triple
//receives a third of its energy. Triples with any side beyond the
//cutoff are skipped.
func ATM(mol *dftd4.Molecule, frame int, c6 *mat.Dense, param *damping.Param, cutoff float64) ([]float64, error) {
	nat := mol.Len()
	if r, c := c6.Dims(); r != nat || c != nat {
		return nil, errors.Wrapf(dftd4.ErrDimensionMismatch, "disp: C6 matrix is %dx%d for %d atoms", r, c, nat)
	}
	if err := param.Validate(); err != nil {
		return nil, err
	}
	energies := make([]float64, nat)
	coords := mol.Frame(frame)
	numbers := mol.Numbers()
	r0 := func(i, j int) float64 {
		return param.A1*math.Sqrt(qqPair(numbers[i], numbers[j])) + param.A2
	}
	for i := 0; i < nat; i++ {
		for j := i + 1; j < nat; j++ {
			rij := dftd4.Dist(coords, i, j)
			if rij > cutoff {
				continue
			}
			for k := j + 1; k < nat; k++ {
				rik := dftd4.Dist(coords, i, k)
				rjk := dftd4.Dist(coords, j, k)
				if rik > cutoff || rjk > cutoff {
					continue
				}
				c9 := param.S9 * math.Sqrt(math.Abs(c6.At(i, j)*c6.At(i, k)*c6.At(j, k)))
				r0prod := r0(i, j) * r0(i, k) * r0(j, k)
				r1 := rij * rik * rjk
				fdamp := damping.ZeroATM(param.Alp, r0prod, r1)
				r2ij := rij * rij
				r2ik := rik * rik
				r2jk := rjk * rjk
				s := (r2ij + r2jk - r2ik) * (r2ij + r2ik - r2jk) * (r2ik + r2jk - r2ij)
				r2 := r1 * r1
				r3 := r1 * r2
				r5 := r2 * r3
				ang := 0.375*s/r5 + 1.0/r3
				e := ang * fdamp * c9 / 3.0
				energies[i] += e
				energies[j] += e
				energies[k] += e
			}
		}
	}
	return energies, nil
}
