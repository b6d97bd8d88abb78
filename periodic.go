/*
 * periodic.go, part of godftd4.
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
	"strings"

	"github.com/pkg/errors"
)

//MaxZ is the largest atomic number supported by the parametrization (Rn).
const MaxZ = maxZ

var symbol2Z = make(map[string]int, maxZ)

func init() {
	for z := 1; z <= maxZ; z++ {
		symbol2Z[symbols[z]] = z
	}
}

//AtomicNumber returns the atomic number for an element symbol.
//Case is normalized, so "c", "C" and "CL"/"Cl" all work.
func AtomicNumber(symbol string) (int, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return 0, errors.Wrap(ErrUnsupportedElement, "empty element symbol")
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	z, ok := symbol2Z[s]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedElement, "symbol %q", symbol)
	}
	return z, nil
}

//Symbol returns the element symbol for the atomic number z.
//It panics if z is outside the supported range, as do the
//table accessors below. Use SupportedZ to validate
//numbers coming from user input.
func Symbol(z int) string {
	checkZ("Symbol", z)
	return symbols[z]
}

//SupportedZ tells whether the atomic number z has tabulated data.
func SupportedZ(z int) bool {
	return z >= 1 && z <= maxZ
}

//CovalentRadius returns the scaled covalent radius, in Bohr, used by the
//coordination number counting functions.
func CovalentRadius(z int) float64 {
	checkZ("CovalentRadius", z)
	return covalentRadius[z]
}

//R4R2 returns the multipole expectation-value ratio that scales C6
//coefficients into C8 coefficients.
func R4R2(z int) float64 {
	checkZ("R4R2", z)
	return r4r2[z]
}

//Electronegativity returns the Pauling electronegativity.
func Electronegativity(z int) float64 {
	checkZ("Electronegativity", z)
	return pauling[z]
}

//EffectiveCharge returns the effective nuclear charge entering the
//charge-scaling function of the dispersion model.
func EffectiveCharge(z int) float64 {
	checkZ("EffectiveCharge", z)
	return zeff[z]
}

//ChemicalHardness returns the element-wise chemical hardness entering the
//charge-scaling function of the dispersion model.
func ChemicalHardness(z int) float64 {
	checkZ("ChemicalHardness", z)
	return gam[z]
}

func checkZ(caller string, z int) {
	if z < 1 || z > maxZ {
		panic(PanicMsg("godftd4/" + caller + ": atomic number out of the supported range"))
	}
}
