/*
 * dftd4_test.go, part of godftd4.
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

package dftd4

import (
	"math"
	"testing"
)

func TestAtomicNumber(Te *testing.T) {
	cases := map[string]int{"H": 1, "h": 1, "C": 6, "cl": 17, "CL": 17, "Rn": 86}
	for s, want := range cases {
		z, err := AtomicNumber(s)
		if err != nil {
			Te.Errorf("AtomicNumber(%q): %v", s, err)
			continue
		}
		if z != want {
			Te.Errorf("AtomicNumber(%q) = %d, want %d", s, z, want)
		}
	}
	for _, s := range []string{"", "Xx", "Uuo"} {
		if _, err := AtomicNumber(s); err == nil {
			Te.Errorf("AtomicNumber(%q) did not fail", s)
		}
	}
}

func TestSymbolRoundTrip(Te *testing.T) {
	for z := 1; z <= MaxZ; z++ {
		back, err := AtomicNumber(Symbol(z))
		if err != nil {
			Te.Fatalf("z=%d: %v", z, err)
		}
		if back != z {
			Te.Errorf("symbol round trip broke for z=%d (%s -> %d)", z, Symbol(z), back)
		}
	}
	if SupportedZ(0) || SupportedZ(MaxZ+1) {
		Te.Error("SupportedZ accepts out-of-range atomic numbers")
	}
	if !SupportedZ(1) || !SupportedZ(MaxZ) {
		Te.Error("SupportedZ rejects in-range atomic numbers")
	}
}

func TestElementData(Te *testing.T) {
	for z := 1; z <= MaxZ; z++ {
		if CovalentRadius(z) <= 0 {
			Te.Errorf("z=%d: non-positive covalent radius", z)
		}
		if R4R2(z) <= 0 {
			Te.Errorf("z=%d: non-positive r4/r2 expectation value", z)
		}
		if ChemicalHardness(z) <= 0 {
			Te.Errorf("z=%d: non-positive chemical hardness", z)
		}
		if EffectiveCharge(z) <= 0 {
			Te.Errorf("z=%d: non-positive effective charge", z)
		}
	}
	//a few well-known orderings
	if Electronegativity(9) <= Electronegativity(3) {
		Te.Error("fluorine is not more electronegative than lithium")
	}
	if CovalentRadius(55) <= CovalentRadius(3) {
		Te.Error("cesium is not larger than lithium")
	}
	if R4R2(54) <= R4R2(2) {
		Te.Error("the r4/r2 ratio does not grow from He to Xe")
	}
}

func TestDataTableLengths(Te *testing.T) {
	for name, l := range map[string]int{
		"symbols":        len(symbols),
		"covalentRadius": len(covalentRadius),
		"r4r2":           len(r4r2),
		"pauling":        len(pauling),
		"zeff":           len(zeff),
		"gam":            len(gam),
	} {
		if l != maxZ+1 {
			Te.Errorf("table %s has %d entries, want %d", name, l, maxZ+1)
		}
	}
}

func TestUnits(Te *testing.T) {
	if math.Abs(A2Bohr*Bohr2A-1) > 1e-15 {
		Te.Error("A2Bohr and Bohr2A are not inverses")
	}
	if math.Abs(H2Kcal-627.509) > 1e-3 {
		Te.Errorf("H2Kcal = %g", H2Kcal)
	}
	if math.Abs(H2Kcal*Kcal2H-1) > 1e-15 {
		Te.Error("H2Kcal and Kcal2H are not inverses")
	}
}

func TestVersion(Te *testing.T) {
	if Version == "" {
		Te.Error("empty version string")
	}
	Te.Logf("godftd4 %s", Version)
}

func TestPanicMsg(Te *testing.T) {
	const msg = "godftd4/Test: something impossible"
	if PanicMsg(msg).Error() != msg {
		Te.Error("PanicMsg does not keep its message")
	}
}

func TestDist(Te *testing.T) {
	mol, err := XYZReadFile("test/lih.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	coords := mol.Frame(0)
	want := 1.595 * A2Bohr
	if d := Dist(coords, 0, 1); math.Abs(d-want) > 1e-10 {
		Te.Errorf("LiH bond length %g Bohr, want %g", d, want)
	}
	if d2 := Dist2(coords, 0, 1); math.Abs(d2-want*want) > 1e-10 {
		Te.Errorf("squared LiH bond length %g, want %g", d2, want*want)
	}
	if d := Dist(coords, 0, 0); d != 0 {
		Te.Errorf("self distance is %g", d)
	}
}
