/*
 * ncoord_test.go, part of godftd4.
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
	"errors"
	"fmt"
	"math"
	"testing"

	dftd4 "github.com/rmera/godftd4"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func TestCoordinationNumberSiH4(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/sih4.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	cn, err := CoordinationNumberEEQ(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("EEQ CN for SiH4:", cn)
	if cn[0] < 3.8 || cn[0] > 4.1 {
		Te.Errorf("EEQ CN for Si should be close to 4, got %5.3f", cn[0])
	}
	for i := 1; i < mol.Len(); i++ {
		if cn[i] < 0.9 || cn[i] > 1.1 {
			Te.Errorf("EEQ CN for H%d should be close to 1, got %5.3f", i, cn[i])
		}
	}
	//The D4 flavor scales every pair by an electronegativity factor
	//smaller than one, so its values sit below the plain count.
	cnd4, err := CoordinationNumber(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("D4 CN for SiH4:", cnd4)
	if cnd4[0] < 2.6 || cnd4[0] > 3.3 {
		Te.Errorf("D4 CN for Si out of range: %5.3f", cnd4[0])
	}
	for i := range cnd4 {
		if cnd4[i] >= cn[i] {
			Te.Errorf("D4 CN should be smaller than the EEQ CN for atom %d: %5.3f >= %5.3f", i, cnd4[i], cn[i])
		}
	}
}

func TestCoordinationNumberDecay(Te *testing.T) {
	//LiH at increasing separations. The count must decay monotonically
	//and vanish altogether past the cutoff.
	numbers := []int{3, 1}
	prev := math.Inf(1)
	for _, r := range []float64{3.0, 4.0, 6.0, 10.0, 20.0} {
		coords := mat.NewDense(2, 3, []float64{0, 0, 0, 0, 0, r})
		mol, err := dftd4.MakeMolecule(numbers, coords, 0)
		if err != nil {
			Te.Fatal(err)
		}
		cn, err := CoordinationNumberEEQ(mol, 0)
		if err != nil {
			Te.Fatal(err)
		}
		if cn[0] >= prev {
			Te.Errorf("CN should decay with distance: %v at %4.1f Bohr", cn[0], r)
		}
		prev = cn[0]
	}
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 0, 0, 26.0})
	mol, err := dftd4.MakeMolecule(numbers, coords, 0)
	if err != nil {
		Te.Fatal(err)
	}
	cn, err := CoordinationNumberEEQ(mol, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if cn[0] != 0 || cn[1] != 0 {
		Te.Errorf("CN past the cutoff should be exactly zero, got %v", cn)
	}
}

func TestCoordinationNumberCap(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/sih4.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	O := DefaultEEQOptions()
	O.CNMax(1.0)
	cn, err := CoordinationNumberEEQ(mol, 0, O)
	if err != nil {
		Te.Fatal(err)
	}
	limit := math.Log(1 + math.Exp(O.CNMax()))
	for i, v := range cn {
		if v > limit+1e-12 {
			Te.Errorf("capped CN for atom %d exceeds the limit: %v > %v", i, v, limit)
		}
	}
	//the cap must leave small coordination numbers essentially alone
	O1 := DefaultEEQOptions()
	O1.CNMax(0) //disables the cap
	raw, err := CoordinationNumberEEQ(mol, 0, O1)
	if err != nil {
		Te.Fatal(err)
	}
	O2 := DefaultEEQOptions()
	O2.CNMax(50.0)
	loose, err := CoordinationNumberEEQ(mol, 0, O2)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range raw {
		if math.Abs(raw[i]-loose[i]) > 1e-8 {
			Te.Errorf("a very large cap should not change CN for atom %d: %v vs %v", i, raw[i], loose[i])
		}
	}
}

func TestRcovMismatch(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	O := DefaultOptions()
	O.Rcov([]float64{1.0, 1.0}) //only 2 radii for 3 atoms
	_, err = CoordinationNumber(mol, 0, O)
	if err == nil {
		Te.Fatal("expected an error for mismatched covalent radii")
	}
	if !errors.Is(err, dftd4.ErrDimensionMismatch) {
		Te.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCoordinationNumberGradient(Te *testing.T) {
	mol, err := dftd4.XYZReadFile("../test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	testGradient(Te, mol, "D4", CoordinationNumber, CoordinationNumberGradient)
	testGradient(Te, mol, "EEQ", CoordinationNumberEEQ, CoordinationNumberEEQGradient)
}

type cnFunc func(*dftd4.Molecule, int, ...*Options) ([]float64, error)
type cnGradFunc func(*dftd4.Molecule, int, ...*Options) ([]float64, *mat.Dense, error)

//testGradient checks the analytic Cartesian derivatives of a
//coordination number flavor against central finite differences.
func testGradient(Te *testing.T, mol *dftd4.Molecule, name string, f cnFunc, g cnGradFunc) {
	nat := mol.Len()
	numbers := mol.Numbers()
	cn, dcn, err := g(mol, 0)
	if err != nil {
		Te.Fatal(err)
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
			v, err2 := f(m, 0)
			if err2 != nil {
				Te.Fatal(err2)
			}
			return v[i]
		}
		if v := target(flat); math.Abs(v-cn[i]) > 1e-12 {
			Te.Fatalf("%s: gradient and plain CN disagree for atom %d: %v vs %v", name, i, v, cn[i])
		}
		num := fd.Gradient(nil, target, flat, settings)
		for c := 0; c < 3*nat; c++ {
			if math.Abs(num[c]-dcn.At(i, c)) > 1e-6 {
				Te.Errorf("%s: dCN[%d]/dx[%d] analytic %v vs numerical %v", name, i, c, dcn.At(i, c), num[c])
			}
		}
	}
}
