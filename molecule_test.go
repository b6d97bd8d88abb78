/*
 * molecule_test.go, part of godftd4.
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
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestMakeMolecule(Te *testing.T) {
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 0, 0, 3.0})
	mol, err := MakeMolecule([]int{3, 1}, coords, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 || mol.NFrames() != 1 || mol.Charge() != 0 {
		Te.Errorf("wrong molecule: %d atoms, %d geometries, charge %d", mol.Len(), mol.NFrames(), mol.Charge())
	}
	mol.SetCharge(-1)
	if mol.Charge() != -1 {
		Te.Error("SetCharge did not take")
	}
	//the failure modes
	if _, err := MakeMolecule(nil, nil, 0); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("empty molecule: %v", err)
	}
	if _, err := MakeMolecule([]int{1, 120}, nil, 0); !errors.Is(err, ErrUnsupportedElement) {
		Te.Errorf("z=120: %v", err)
	}
	if _, err := MakeMolecule([]int{1, 1}, mat.NewDense(3, 3, nil), 0); !errors.Is(err, ErrDimensionMismatch) {
		Te.Errorf("3x3 coordinates for 2 atoms: %v", err)
	}
	bad := mat.NewDense(2, 3, []float64{0, 0, 0, 0, 0, math.NaN()})
	if _, err := MakeMolecule([]int{1, 1}, bad, 0); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("NaN coordinate: %v", err)
	}
}

func TestMakeMoleculeFromSymbols(Te *testing.T) {
	mol, err := MakeMoleculeFromSymbols([]string{"O", "h", "H"}, mat.NewDense(3, 3, nil), 0)
	if err != nil {
		Te.Fatal(err)
	}
	want := []int{8, 1, 1}
	for i, z := range mol.Numbers() {
		if z != want[i] {
			Te.Errorf("atom %d: z=%d, want %d", i, z, want[i])
		}
	}
	if _, err := MakeMoleculeFromSymbols([]string{"O", "Xx"}, nil, 0); !errors.Is(err, ErrUnsupportedElement) {
		Te.Errorf("bogus symbol: %v", err)
	}
}

func TestMoleculeCopy(Te *testing.T) {
	mol, err := XYZReadFile("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	dup := mol.Copy()
	dup.SetCharge(2)
	dup.Frame(0).Set(0, 2, 42.0)
	if mol.Charge() == dup.Charge() {
		Te.Error("copy shares the charge")
	}
	if mol.Frame(0).At(0, 2) == 42.0 {
		Te.Error("copy shares the coordinates")
	}
}

func TestXYZIO(Te *testing.T) {
	mol, err := XYZReadFile("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 || mol.NFrames() != 1 {
		Te.Fatalf("water has %d atoms in %d geometries", mol.Len(), mol.NFrames())
	}
	if mol.Charge() != 0 {
		Te.Errorf("charge %d, want 0", mol.Charge())
	}
	want := []int{8, 1, 1}
	for i, z := range mol.Numbers() {
		if z != want[i] {
			Te.Errorf("atom %d: z=%d, want %d", i, z, want[i])
		}
	}
	if z := mol.Frame(0).At(0, 2); math.Abs(z-0.1173*A2Bohr) > 1e-10 {
		Te.Errorf("oxygen z coordinate %g Bohr, want %g", z, 0.1173*A2Bohr)
	}
	//write it out and read it back
	name := filepath.Join(Te.TempDir(), "water.xyz")
	if err := XYZWriteFile(name, mol, 0); err != nil {
		Te.Fatal(err)
	}
	back, err := XYZReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Len() != mol.Len() || back.Charge() != mol.Charge() {
		Te.Error("written molecule came back different")
	}
	for i := 0; i < mol.Len(); i++ {
		for j := 0; j < 3; j++ {
			if d := math.Abs(back.Frame(0).At(i, j) - mol.Frame(0).At(i, j)); d > 1e-6 {
				Te.Errorf("atom %d coordinate %d off by %g Bohr after the round trip", i, j, d)
			}
		}
	}
	if err := XYZWriteFile(filepath.Join(Te.TempDir(), "no.xyz"), mol, 3); !errors.Is(err, ErrInvalidGeometry) {
		Te.Errorf("writing a missing geometry: %v", err)
	}
}

func TestMultiXYZ(Te *testing.T) {
	mol, err := XYZReadFile("test/scan.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.NFrames() != 3 {
		Te.Fatalf("scan has %d geometries, want 3", mol.NFrames())
	}
	if mol.Len() != 2 || mol.Numbers()[0] != 3 {
		Te.Error("scan does not contain LiH")
	}
	for i, r := range []float64{1.4, 1.6, 1.8} {
		if z := mol.Frame(i).At(1, 2); math.Abs(z-r*A2Bohr) > 1e-10 {
			Te.Errorf("geometry %d: H at z=%g Bohr, want %g", i, z, r*A2Bohr)
		}
	}
}

func TestXYZErrors(Te *testing.T) {
	cases := []struct {
		name string
		text string
		kind error
	}{
		{"empty", "", ErrBadFormat},
		{"badcount", "two\nc\nH 0 0 0\nH 0 0 1\n", ErrBadFormat},
		{"zerocount", "0\nc\n", ErrBadFormat},
		{"truncated", "3\nc\nO 0 0 0\nH 0 1 0\n", ErrBadFormat},
		{"shortline", "1\nc\nH 0 0\n", ErrBadFormat},
		{"badcoord", "1\nc\nH 0 0 zero\n", ErrBadFormat},
		{"badelement", "1\nc\nXx 0 0 0\n", ErrUnsupportedElement},
		{"bigz", "1\nc\n95 0 0 0\n", ErrUnsupportedElement},
		{"changedelement", "1\nc\nH 0 0 0\n1\nc\nHe 0 0 0\n", ErrDimensionMismatch},
		{"changedcount", "1\nc\nH 0 0 0\n2\nc\nH 0 0 0\nH 0 0 1\n", ErrDimensionMismatch},
	}
	for _, c := range cases {
		_, err := XYZRead(strings.NewReader(c.text))
		if !errors.Is(err, c.kind) {
			Te.Errorf("%s: got %v", c.name, err)
		}
	}
	//a plain atomic number in the element column is fine
	mol, err := XYZRead(strings.NewReader("1\ncharge=1\n11 0 0 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Numbers()[0] != 11 || mol.Charge() != 1 {
		Te.Error("numeric element column or charge token misread")
	}
}

func TestQCJSON(Te *testing.T) {
	mol, err := QCJSONReadFile("test/water.json")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 || mol.Charge() != 0 {
		Te.Fatalf("water.json: %d atoms, charge %d", mol.Len(), mol.Charge())
	}
	//the same structure as the XYZ fixture, up to the precision
	//of the file
	ref, err := XYZReadFile("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if mol.Numbers()[i] != ref.Numbers()[i] {
			Te.Errorf("atom %d differs between the JSON and XYZ fixtures", i)
		}
		for j := 0; j < 3; j++ {
			if d := math.Abs(mol.Frame(0).At(i, j) - ref.Frame(0).At(i, j)); d > 1e-4 {
				Te.Errorf("atom %d coordinate %d differs by %g Bohr between fixtures", i, j, d)
			}
		}
	}
}

func TestQCJSONVariants(Te *testing.T) {
	//atomic_numbers take precedence, molecule may be nested
	nested := `{"driver": "energy", "molecule": {"atomic_numbers": [3, 1],
		"symbols": ["Na", "Na"], "geometry": [0, 0, 0, 0, 0, 3.0],
		"molecular_charge": -1.0}}`
	mol, err := QCJSONRead(strings.NewReader(nested))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Numbers()[0] != 3 || mol.Numbers()[1] != 1 {
		Te.Error("atomic_numbers did not win over symbols")
	}
	if mol.Charge() != -1 {
		Te.Errorf("charge %d, want -1", mol.Charge())
	}
	if z := mol.Frame(0).At(1, 2); z != 3.0 {
		Te.Errorf("geometry not taken as Bohr: z=%g", z)
	}
	bad := []struct {
		name string
		text string
		kind error
	}{
		{"notjson", "not json at all", ErrBadFormat},
		{"noelements", `{"geometry": [0, 0, 0]}`, ErrBadFormat},
		{"nogeometry", `{"symbols": ["H", "H"]}`, ErrBadFormat},
		{"shortgeometry", `{"symbols": ["H", "H"], "geometry": [0, 0, 0]}`, ErrDimensionMismatch},
		{"badsymbol", `{"symbols": ["H", "Zz"], "geometry": [0,0,0,0,0,1]}`, ErrUnsupportedElement},
	}
	for _, c := range bad {
		if _, err := QCJSONRead(strings.NewReader(c.text)); !errors.Is(err, c.kind) {
			Te.Errorf("%s: got %v", c.name, err)
		}
	}
}

func TestReadGeometryFile(Te *testing.T) {
	xyz, err := ReadGeometryFile("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	js, err := ReadGeometryFile("test/water.json")
	if err != nil {
		Te.Fatal(err)
	}
	if xyz.Len() != js.Len() {
		Te.Error("the two water fixtures disagree on the atom count")
	}
	if _, err := ReadGeometryFile("test/water.pdb"); !errors.Is(err, ErrBadFormat) {
		Te.Errorf("unsupported extension: %v", err)
	}
	if _, err := ReadGeometryFile("test/nothere.xyz"); err == nil {
		Te.Error("a missing file did not fail")
	}
}
