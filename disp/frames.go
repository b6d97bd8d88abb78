/*
 * frames.go, part of godftd4.
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
	"runtime"
	"sync"

	"github.com/pbnjay/memory"
	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/damping"
	"github.com/rmera/godftd4/model"
)

//EnergyFrames evaluates the atom-resolved dispersion energy of every
//frame of mol concurrently and returns one energy vector per frame.
//The dispersion model only depends on the composition, so it is built
//once and shared by all workers. The worker count is taken from the
//options; by default it is the number of logical CPUs, additionally
//capped so the per-worker scratch of large systems cannot exhaust
//physical memory. The context cancels the remaining frames.
func EnergyFrames(ctx context.Context, mol *dftd4.Molecule, param *damping.Param, opts ...*Options) ([][]float64, error) {
	O := getOptions(opts)
	if err := check(param, O); err != nil {
		return nil, err
	}
	nframes := mol.NFrames()
	results := make([][]float64, nframes)
	if nframes == 0 {
		return results, nil
	}
	m, err := model.New(mol.Numbers(), O.model)
	if err != nil {
		return nil, err
	}
	workers := O.workers
	if workers < 1 {
		workers = autoWorkers(mol.Len())
	}
	if workers > nframes {
		workers = nframes
	}
	var mu sync.Mutex
	var firstErr error
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				if failed() {
					continue //drain the queue without working
				}
				e, err := energyModel(mol, f, m, param, O)
				if err != nil {
					fail(errors.Wrapf(err, "disp: frame %d", f))
					continue
				}
				results[f] = e
			}
		}()
	}
feed:
	for f := 0; f < nframes; f++ {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}
		select {
		case <-ctx.Done():
			fail(ctx.Err())
			break feed
		case jobs <- f:
		}
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

//TotalFrames evaluates the total dispersion energy of every frame,
//one value per frame.
func TotalFrames(ctx context.Context, mol *dftd4.Molecule, param *damping.Param, opts ...*Options) ([]float64, error) {
	energies, err := EnergyFrames(ctx, mol, param, opts...)
	if err != nil {
		return nil, err
	}
	totals := make([]float64, len(energies))
	for f, e := range energies {
		for _, v := range e {
			totals[f] += v
		}
	}
	return totals, nil
}

//autoWorkers picks a worker count from the CPU count, capped so that
//the per-worker scratch, a few natoms^2 matrices for the EEQ system
//and the C6 contraction, cannot exhaust physical memory.
func autoWorkers(nat int) int {
	w := runtime.NumCPU()
	per := uint64(nat+1) * uint64(nat+1) * 8 * 6
	if budget := memory.TotalMemory() / 2; budget > 0 {
		if byMem := int(budget / per); byMem < w {
			w = byMem
		}
	}
	if w < 1 {
		w = 1
	}
	return w
}
