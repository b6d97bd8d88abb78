/*
 * frames_test.go, part of godftd4.
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
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestEnergyFrames(Te *testing.T) {
	mol := readMol(Te, "../test/scan.xyz")
	if mol.NFrames() < 2 {
		Te.Fatalf("scan fixture has %d frames", mol.NFrames())
	}
	param := tpssh(Te)
	frames, err := EnergyFrames(context.Background(), mol, param)
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != mol.NFrames() {
		Te.Fatalf("got %d energy vectors for %d frames", len(frames), mol.NFrames())
	}
	for f := range frames {
		serial, err := Energy(mol, f, param)
		if err != nil {
			Te.Fatal(err)
		}
		for i := range serial {
			if math.Abs(frames[f][i]-serial[i]) > 1e-14 {
				Te.Errorf("frame %d atom %d: concurrent %g vs serial %g", f, i, frames[f][i], serial[i])
			}
		}
	}
	//a fixed worker count takes the same path
	O := DefaultOptions()
	O.Workers(2)
	again, err := EnergyFrames(context.Background(), mol, param, O)
	if err != nil {
		Te.Fatal(err)
	}
	for f := range again {
		for i := range again[f] {
			if again[f][i] != frames[f][i] {
				Te.Errorf("frame %d atom %d differs with 2 workers", f, i)
			}
		}
	}
	totals, err := TotalFrames(context.Background(), mol, param)
	if err != nil {
		Te.Fatal(err)
	}
	for f, t := range totals {
		if math.Abs(t-sum(frames[f])) > 1e-14 {
			Te.Errorf("frame %d: total %g does not match the energy vector sum %g", f, t, sum(frames[f]))
		}
	}
}

func TestEnergyFramesCancel(Te *testing.T) {
	mol := readMol(Te, "../test/scan.xyz")
	param := tpssh(Te)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := EnergyFrames(ctx, mol, param)
	if !errors.Is(err, context.Canceled) {
		Te.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEnergyFramesSingle(Te *testing.T) {
	//a single-frame molecule still goes through the pool
	mol := readMol(Te, "../test/water.xyz")
	param := tpssh(Te)
	frames, err := EnergyFrames(context.Background(), mol, param)
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 1 {
		Te.Fatalf("got %d frames for a single-frame molecule", len(frames))
	}
}
