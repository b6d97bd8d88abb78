/*
 * run.go, part of godftd4.
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

package batch

import (
	"context"
	"encoding/json"
	"io"
	"runtime"
	"sync"

	"github.com/datawire/dlib/dlog"
	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/disp"
)

//Result is the outcome of one job. Either Err is set or Total and
//PerAtom carry the dispersion energy in Hartree.
type Result struct {
	Job     string
	Total   float64
	PerAtom []float64
	Err     error
}

//Run executes the jobs of the manifest on a worker pool and returns
//one result per job, in manifest order. A failing job does not stop
//the batch, its error is recorded in its result. Cancelling the
//context skips the jobs not yet started, recording the cancellation
//as their error. Per-job progress goes to the dlog logger of ctx.
func Run(ctx context.Context, m *Manifest) []*Result {
	results := make([]*Result, len(m.Jobs))
	workers := m.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(m.Jobs) {
		workers = len(m.Jobs)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = m.runJob(ctx, m.Jobs[i])
			}
		}()
	}
feed:
	for i := range m.Jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	for i, r := range results {
		if r == nil {
			results[i] = &Result{Job: m.Jobs[i].Name, Err: errors.Wrapf(ctx.Err(), "batch: job %q", m.Jobs[i].Name)}
		}
	}
	return results
}

func (M *Manifest) runJob(ctx context.Context, j *Job) *Result {
	res := &Result{Job: j.Name}
	fail := func(err error) *Result {
		res.Err = errors.Wrapf(err, "batch: job %q", j.Name)
		dlog.Errorf(ctx, "job %q failed: %v", j.Name, err)
		return res
	}
	eff, err := M.effective(j)
	if err != nil {
		return fail(err)
	}
	param, err := M.param(eff)
	if err != nil {
		return fail(err)
	}
	mol, err := dftd4.ReadGeometryFile(M.path(eff.Geometry))
	if err != nil {
		return fail(err)
	}
	if eff.Charge != nil {
		mol.SetCharge(*eff.Charge)
	}
	O := disp.DefaultOptions()
	if eff.ThreeBody != nil {
		O.ThreeBody(*eff.ThreeBody)
	}
	dlog.Infof(ctx, "job %q: %d atoms, charge %d", j.Name, mol.Len(), mol.Charge())
	energies, err := disp.Energy(mol, 0, param, O)
	if err != nil {
		return fail(err)
	}
	res.PerAtom = energies
	for _, e := range energies {
		res.Total += e
	}
	dlog.Infof(ctx, "job %q: dispersion energy %.10f Eh", j.Name, res.Total)
	return res
}

//Failed returns how many results carry an error.
func Failed(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

type reportEntry struct {
	Job     string    `json:"job"`
	Total   float64   `json:"total_energy"`
	PerAtom []float64 `json:"atom_energies,omitempty"`
	Error   string    `json:"error,omitempty"`
}

//Report writes the results as an indented JSON array. Failed jobs
//carry their error string instead of energies.
func Report(w io.Writer, results []*Result) error {
	entries := make([]reportEntry, len(results))
	for i, r := range results {
		entries[i].Job = r.Job
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
			continue
		}
		entries[i].Total = r.Total
		entries[i].PerAtom = r.PerAtom
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return errors.Wrap(err, "batch: writing the report")
	}
	return nil
}
