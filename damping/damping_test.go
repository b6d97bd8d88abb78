/*
 * damping_test.go, part of godftd4.
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

package damping

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	dftd4 "github.com/rmera/godftd4"
)

func TestDefault(Te *testing.T) {
	p := Default()
	if p.S6 != 1.0 || p.S9 != 1.0 || p.S10 != 0.0 || p.Alp != 16.0 {
		Te.Errorf("unexpected defaults: %+v", p)
	}
	if p.S8 != 0 || p.A1 != 0 || p.A2 != 0 {
		Te.Errorf("the defaults should not fix functional-specific values: %+v", p)
	}
	//mutating the returned set must not poison the registry
	p.S6 = -5
	if Default().S6 != 1.0 {
		Te.Error("Default should return a copy")
	}
}

func TestGet(Te *testing.T) {
	for _, name := range []string{"pbe", "b3lyp", "revpbe"} {
		p, err := Get(name)
		if err != nil {
			Te.Fatal(err)
		}
		if p.A1 <= 0 || p.A2 <= 0 || p.S8 <= 0 {
			Te.Errorf("%s: missing fitted parameters: %+v", name, p)
		}
		if p.S6 != 1.0 || p.S9 != 1.0 || p.Alp != 16.0 {
			Te.Errorf("%s: defaults not layered in: %+v", name, p)
		}
		if p.DOI != "" {
			Te.Errorf("%s: Get should strip the reference, got %q", name, p.DOI)
		}
		if err := p.Validate(); err != nil {
			Te.Errorf("%s: published parameters should validate: %v", name, err)
		}
	}
	upper, err := Get("TPSSh")
	if err != nil {
		Te.Fatal(err)
	}
	lower, err := Get("tpssh")
	if err != nil {
		Te.Fatal(err)
	}
	if *upper != *lower {
		Te.Error("functional lookup should be case-insensitive")
	}
}

func TestTPSShValues(Te *testing.T) {
	p, err := Get("tpssh")
	if err != nil {
		Te.Fatal(err)
	}
	if p.S8 != 1.85897750 {
		Te.Errorf("tpssh s8: got %.8f", p.S8)
	}
	if p.A1 != 0.44286966 {
		Te.Errorf("tpssh a1: got %.8f", p.A1)
	}
	if p.A2 != 4.60230534 {
		Te.Errorf("tpssh a2: got %.8f", p.A2)
	}
}

func TestGetWithReference(Te *testing.T) {
	p, err := GetWithReference("tpssh")
	if err != nil {
		Te.Fatal(err)
	}
	if p.DOI != "10.1063/1.5090222" {
		Te.Errorf("unexpected reference for tpssh: %q", p.DOI)
	}
	r2, err := GetWithReference("r2scan")
	if err != nil {
		Te.Fatal(err)
	}
	if r2.DOI != "10.1063/5.0041008" {
		Te.Errorf("unexpected reference for r2scan: %q", r2.DOI)
	}
}

func TestUnknownFunctional(Te *testing.T) {
	_, err := Get("not-a-functional")
	if err == nil {
		Te.Fatal("expected an error for an unknown functional")
	}
	if !errors.Is(err, ErrUnknownFunctional) {
		Te.Errorf("expected ErrUnknownFunctional, got %v", err)
	}
}

func TestFunctionals(Te *testing.T) {
	names := Functionals()
	if len(names) < 10 {
		Te.Fatalf("expected at least 10 parametrized functionals, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			Te.Errorf("functional list not sorted: %q before %q", names[i-1], names[i])
		}
	}
	got := FunctionalsWithPrefix("pbe")
	if !reflect.DeepEqual(got, []string{"pbe", "pbe0"}) {
		Te.Errorf("prefix listing for pbe: %v", got)
	}
	got = FunctionalsWithPrefix("tpss")
	if !reflect.DeepEqual(got, []string{"tpss", "tpssh"}) {
		Te.Errorf("prefix listing for tpss: %v", got)
	}
	if all := FunctionalsWithPrefix(""); !reflect.DeepEqual(all, names) {
		Te.Errorf("the empty prefix should list everything: %v", all)
	}
}

func TestMerge(Te *testing.T) {
	base := New()
	override := &Param{S8: 2.0, A1: 0.4, A2: 5.0}
	p, err := Merge(base, override)
	if err != nil {
		Te.Fatal(err)
	}
	if p.S6 != 1.0 || p.S9 != 1.0 || p.Alp != 16.0 {
		Te.Errorf("merge lost the base values: %+v", p)
	}
	if p.S8 != 2.0 || p.A1 != 0.4 || p.A2 != 5.0 {
		Te.Errorf("merge lost the override: %+v", p)
	}
	if base.S8 != 0 {
		Te.Error("merge should not modify its arguments")
	}
	//zero fields of the override are not copied
	p2, err := Merge(p, &Param{S9: 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	if p2.S9 != 0.5 || p2.S8 != 2.0 {
		Te.Errorf("partial override failed: %+v", p2)
	}
}

func TestValidate(Te *testing.T) {
	var zero Param
	if zero.Validate() == nil {
		Te.Error("the zero parametrization should not validate")
	}
	if New().Validate() == nil {
		Te.Error("the bare defaults lack a2 and should not validate")
	}
	p := &Param{S6: 1, S8: 1.2, S9: 1, A1: 0.4, A2: 5, Alp: 16}
	if err := p.Validate(); err != nil {
		Te.Errorf("a complete set should validate: %v", err)
	}
	p.S8 = -0.1
	if p.Validate() == nil {
		Te.Error("negative scalings should not validate")
	}
}

func TestLoadFile(Te *testing.T) {
	dir := Te.TempDir()
	good := filepath.Join(dir, "good.toml")
	content := "s8 = 1.5\na1 = 0.4\na2 = 4.5\n"
	if err := os.WriteFile(good, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	p, err := LoadFile(good)
	if err != nil {
		Te.Fatal(err)
	}
	if p.S8 != 1.5 || p.A1 != 0.4 || p.A2 != 4.5 {
		Te.Errorf("file values not taken: %+v", p)
	}
	if p.S6 != 1.0 || p.S9 != 1.0 || p.Alp != 16.0 {
		Te.Errorf("defaults not layered under the file: %+v", p)
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("s8 = 1.5\nnonsense = 3\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, dftd4.ErrBadFormat) {
		Te.Errorf("unknown keys should give ErrBadFormat, got %v", err)
	}
	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("s8 = = 1.5\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadFile(broken); !errors.Is(err, dftd4.ErrBadFormat) {
		Te.Errorf("broken TOML should give ErrBadFormat, got %v", err)
	}
}

func TestRational(Te *testing.T) {
	const qq = 3.0 * 3.0947 * 2.9059 //something C-N like
	a1, a2 := 0.4, 4.5
	r0 := a1*math.Sqrt(qq) + a2
	f := Rational(6, r0, qq, a1, a2)
	want := 0.5 / math.Pow(r0, 6)
	if math.Abs(f-want) > 1e-14 {
		Te.Errorf("at r=R0 the damping should be half the undamped value: %v vs %v", f, want)
	}
	//short range finite, long range ~ r^-n
	if v := Rational(6, 0, qq, a1, a2); math.IsInf(v, 0) || v <= 0 {
		Te.Errorf("damped dispersion should stay finite at r=0, got %v", v)
	}
	r := 40.0
	if v := Rational(8, r, qq, a1, a2); math.Abs(v*math.Pow(r, 8)-1.0) > 1e-2 {
		Te.Errorf("long-range limit violated: %v", v*math.Pow(r, 8))
	}
	//derivative against central differences
	h := 1e-6
	for _, r := range []float64{2.0, 4.0, 8.0} {
		num := (Rational(6, r+h, qq, a1, a2) - Rational(6, r-h, qq, a1, a2)) / (2 * h)
		if math.Abs(num-DRational(6, r, qq, a1, a2)) > 1e-8 {
			Te.Errorf("DRational at r=%v: analytic %v vs numerical %v", r, DRational(6, r, qq, a1, a2), num)
		}
	}
}

func TestZeroATM(Te *testing.T) {
	//far from the critical region the damping factor must approach 1,
	//well inside it, 0
	if v := ZeroATM(16, 1000.0, 1e9); math.Abs(v-1.0) > 1e-10 {
		Te.Errorf("long-range ATM damping should be 1, got %v", v)
	}
	if v := ZeroATM(16, 1000.0, 1e-3); v > 1e-10 {
		Te.Errorf("short-range ATM damping should vanish, got %v", v)
	}
	if v := ZeroATM(16, 750.0, 750.0); math.Abs(v-1.0/7.0) > 1e-12 {
		Te.Errorf("at the critical product the damping should be 1/7, got %v", v)
	}
}
