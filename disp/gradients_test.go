/*
 * gradients_test.go, part of godftd4.
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
	"math"
	"testing"
)

//compareGradients checks the analytical gradient of a frame against
//the central-difference one, component by component.
func compareGradients(Te *testing.T, name string, tol float64, opts ...*Options) {
	mol := readMol(Te, name)
	param := tpssh(Te)
	energies, grad, err := Gradient(mol, 0, param, opts...)
	if err != nil {
		Te.Fatal(err)
	}
	ref, err := Energy(mol, 0, param, opts...)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range ref {
		if math.Abs(energies[i]-ref[i]) > 1e-13 {
			Te.Errorf("atom %d: Gradient energy %g differs from Energy %g", i, energies[i], ref[i])
		}
	}
	num, err := GradientNumerical(mol, 0, param, opts...)
	if err != nil {
		Te.Fatal(err)
	}
	nat := mol.Len()
	for i := 0; i < nat; i++ {
		for d := 0; d < 3; d++ {
			a, n := grad.At(i, d), num.At(i, d)
			if math.Abs(a-n) > tol {
				Te.Errorf("gradient (%d,%d): analytical %g vs numerical %g", i, d, a, n)
			}
		}
	}
	//the net force on the molecule must vanish
	for d := 0; d < 3; d++ {
		f := 0.0
		for i := 0; i < nat; i++ {
			f += grad.At(i, d)
		}
		if math.Abs(f) > 1e-8 {
			Te.Errorf("net force component %d is %g", d, f)
		}
	}
}

func TestGradientWater(Te *testing.T) {
	compareGradients(Te, "../test/water.xyz", 1e-7)
}

func TestGradientLiH(Te *testing.T) {
	compareGradients(Te, "../test/lih.xyz", 1e-7)
}

func TestGradientTwoBodyOnly(Te *testing.T) {
	//fixed user charges and no three-body term leave only the fully
	//analytical branch
	O := DefaultOptions()
	O.ThreeBody(false)
	O.Charges([]float64{-0.6, 0.3, 0.3})
	compareGradients(Te, "../test/water.xyz", 1e-8, O)
}

func TestGradientSymmetry(Te *testing.T) {
	//in a tetrahedral geometry the force on the central atom vanishes
	mol := readMol(Te, "../test/sih4.xyz")
	param := tpssh(Te)
	_, grad, err := Gradient(mol, 0, param)
	if err != nil {
		Te.Fatal(err)
	}
	for d := 0; d < 3; d++ {
		if f := grad.At(0, d); math.Abs(f) > 1e-8 {
			Te.Errorf("force component %d on the central atom is %g", d, f)
		}
	}
}
