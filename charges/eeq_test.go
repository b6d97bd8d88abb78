/*
 * eeq_test.go, part of godftd4.
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

package charges

import (
	"errors"
	"fmt"
	"math"
	"testing"

	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/ncoord"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func waterCharges(Te *testing.T) (*dftd4.Molecule, []float64, []float64) {
	mol, err := dftd4.XYZReadFile("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	cn, err := ncoord.CoordinationNumberEEQ(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	q, err := Charges(mol, 0, 0, cn)
	if err != nil {
		Te.Fatal(err)
	}
	return mol, cn, q
}

func TestChargesWater(Te *testing.T) {
	_, _, q := waterCharges(Te)
	fmt.Println("EEQ charges for water:", q)
	sum := q[0] + q[1] + q[2]
	if math.Abs(sum) > 1e-8 {
		Te.Errorf("charges of a neutral molecule should add up to zero, got %v", sum)
	}
	if q[0] >= 0 {
		Te.Errorf("oxygen should carry a negative partial charge, got %v", q[0])
	}
	if q[1] <= 0 || q[2] <= 0 {
		Te.Errorf("the hydrogens should carry positive partial charges, got %v %v", q[1], q[2])
	}
	if math.Abs(q[1]-q[2]) > 1e-8 {
		Te.Errorf("symmetry-equivalent hydrogens should have equal charges: %v vs %v", q[1], q[2])
	}
}

func TestChargesTotalCharge(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	cn, err := ncoord.CoordinationNumberEEQ(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	for _, charge := range []int{-1, 1, 2} {
		q, err := Charges(mol, 0, charge, cn)
		if err != nil {
			Te.Fatal(err)
		}
		sum := 0.0
		for _, v := range q {
			sum += v
		}
		if math.Abs(sum-float64(charge)) > 1e-8 {
			Te.Errorf("charges should add up to %d, got %v", charge, sum)
		}
	}
}

func TestChargesSingleAtom(Te *testing.T) {
	coords := mat.NewDense(1, 3, []float64{0, 0, 0})
	mol, err := dftd4.MakeMolecule([]int{11}, coords, 1)
	if err != nil {
		Te.Fatal(err)
	}
	q, err := Charges(mol, 0, 1, []float64{0})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(q[0]-1.0) > 1e-10 {
		Te.Errorf("a lone cation should carry the whole charge, got %v", q[0])
	}
}

func TestEnergy(Te *testing.T) {
	mol, cn, qref := waterCharges(Te)
	e, q, err := Energy(mol, 0, 0, cn)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("EEQ energy for water:", e)
	if e >= 0 {
		Te.Errorf("the equilibrated electrostatic energy of water should be negative, got %v", e)
	}
	for i := range q {
		if math.Abs(q[i]-qref[i]) > 1e-12 {
			Te.Errorf("Energy and Charges disagree on q[%d]: %v vs %v", i, q[i], qref[i])
		}
	}
	//at the constrained minimum of a neutral system the energy
	//reduces to -b.q/2
	_, b, err := assemble(mol, 0, 0, cn)
	if err != nil {
		Te.Fatal(err)
	}
	ref := 0.0
	for i := range q {
		ref -= 0.5 * q[i] * b[i]
	}
	if math.Abs(e-ref) > 1e-10 {
		Te.Errorf("energy does not satisfy the stationarity identity: %v vs %v", e, ref)
	}
}

func TestChargesCluster(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/cluster16.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	cn, err := ncoord.CoordinationNumberEEQ(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	q, err := Charges(mol, 0, 0, cn)
	if err != nil {
		Te.Fatal(err)
	}
	sum := 0.0
	for _, v := range q {
		sum += v
	}
	if math.Abs(sum) > 1e-8 {
		Te.Errorf("charges of the neutral cluster add up to %v", sum)
	}
	numbers := mol.Numbers()
	for i, z := range numbers {
		switch z {
		case 11: //the sodium of the NaCl unit
			if q[i] < 0.3 {
				Te.Errorf("sodium carries charge %v, expected strongly positive", q[i])
			}
		case 17:
			if q[i] > -0.3 {
				Te.Errorf("chlorine carries charge %v, expected strongly negative", q[i])
			}
		case 7, 8, 9: //N, O and F all out-pull their hydrogens
			if q[i] >= 0 {
				Te.Errorf("%s carries charge %v, expected negative", dftd4.Symbol(z), q[i])
			}
		}
	}
}

func TestChargesDimensionMismatch(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Charges(mol, 0, 0, []float64{1.0})
	if err == nil {
		Te.Fatal("expected an error for mismatched coordination numbers")
	}
	if !errors.Is(err, dftd4.ErrDimensionMismatch) {
		Te.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestChargesAndDerivative(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	nat := mol.Len()
	numbers := mol.Numbers()
	cn, dcn, err := ncoord.CoordinationNumberEEQGradient(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	q, dq, err := ChargesAndDerivative(mol, 0, 0, cn, dcn)
	if err != nil {
		Te.Fatal(err)
	}
	qref, err := Charges(mol, 0, 0, cn)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range q {
		if math.Abs(q[i]-qref[i]) > 1e-12 {
			Te.Errorf("ChargesAndDerivative and Charges disagree on q[%d]: %v vs %v", i, q[i], qref[i])
		}
	}
	flat := make([]float64, 3*nat)
	coords := mol.Frame(0)
	for i := 0; i < nat; i++ {
		for d := 0; d < 3; d++ {
			flat[3*i+d] = coords.At(i, d)
		}
	}
	settings := &fd.Settings{Formula: fd.Central}
	for i := 0; i < nat; i++ {
		target := func(x []float64) float64 {
			c := mat.NewDense(nat, 3, append([]float64{}, x...))
			m, err2 := dftd4.MakeMolecule(numbers, c, 0)
			if err2 != nil {
				Te.Fatal(err2)
			}
			cn2, err2 := ncoord.CoordinationNumberEEQ(m, 0)
			if err2 != nil {
				Te.Fatal(err2)
			}
			q2, err2 := Charges(m, 0, 0, cn2)
			if err2 != nil {
				Te.Fatal(err2)
			}
			return q2[i]
		}
		num := fd.Gradient(nil, target, flat, settings)
		for c := 0; c < 3*nat; c++ {
			if math.Abs(num[c]-dq.At(i, c)) > 1e-6 {
				Te.Errorf("dq[%d]/dx[%d] analytic %v vs numerical %v", i, c, dq.At(i, c), num[c])
			}
		}
	}
}
