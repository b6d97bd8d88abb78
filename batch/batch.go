/*
 * batch.go, part of godftd4.
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

/*Package batch runs manifest-driven dispersion screenings. A manifest
is an HCL file with an optional defaults block and one job block per
evaluation:

	workers = 4

	defaults {
	  functional = "tpssh"
	}

	job "water" {
	  geometry = "water.xyz"
	}

	job "lithium hydride" {
	  geometry   = "lih.xyz"
	  functional = "pbe0"
	  charge     = 0
	}

Unset job fields are taken from the defaults block. Geometry paths are
resolved relative to the manifest file. Jobs run concurrently and a
failing job does not abort the others; its error is carried in the
corresponding result.
*/
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rmera/godftd4/damping"
)

//Job is one dispersion evaluation of a manifest. The zero value of
//Charge and ThreeBody means "not set here", so the defaults block, or
//failing that a neutral molecule with the three-body term, applies.
type Job struct {
	Name       string `hcl:"name,label"`
	Geometry   string `hcl:"geometry,optional"`
	Functional string `hcl:"functional,optional"`
	ParamFile  string `hcl:"param_file,optional"`
	Charge     *int   `hcl:"charge,optional"`
	ThreeBody  *bool  `hcl:"threebody,optional"`
}

//Defaults is the manifest block layered under every job.
type Defaults struct {
	Functional string `hcl:"functional,optional"`
	ParamFile  string `hcl:"param_file,optional"`
	Charge     *int   `hcl:"charge,optional"`
	ThreeBody  *bool  `hcl:"threebody,optional"`
}

//Manifest is a parsed batch file.
type Manifest struct {
	Workers  int       `hcl:"workers,optional"`
	Defaults *Defaults `hcl:"defaults,block"`
	Jobs     []*Job    `hcl:"job,block"`

	dir string //the directory of the manifest, for relative paths
}

//Load parses and validates a batch manifest.
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Errorf("batch: parsing %s: %v", path, diags)
	}
	m := new(Manifest)
	if diags := gohcl.DecodeBody(file.Body, nil, m); diags.HasErrors() {
		return nil, errors.Errorf("batch: decoding %s: %v", path, diags)
	}
	m.dir = filepath.Dir(path)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

//path resolves a manifest-relative file name.
func (M *Manifest) path(name string) string {
	if filepath.IsAbs(name) || M.dir == "" {
		return name
	}
	return filepath.Join(M.dir, name)
}

//effective returns the job with the gaps filled from the defaults
//block. A job that names a functional drops an inherited parameter
//file, and the other way around.
func (M *Manifest) effective(j *Job) (*Job, error) {
	eff := new(Job)
	if M.Defaults != nil {
		if err := copier.Copy(eff, M.Defaults); err != nil {
			return nil, errors.Wrapf(err, "batch: job %q", j.Name)
		}
	}
	err := copier.CopyWithOption(eff, j, copier.Option{IgnoreEmpty: true})
	if err != nil {
		return nil, errors.Wrapf(err, "batch: job %q", j.Name)
	}
	if j.Functional != "" && j.ParamFile == "" {
		eff.ParamFile = ""
	}
	if j.ParamFile != "" && j.Functional == "" {
		eff.Functional = ""
	}
	return eff, nil
}

//param returns the damping parameters of an effective job.
func (M *Manifest) param(j *Job) (*damping.Param, error) {
	if j.ParamFile != "" {
		return damping.LoadFile(M.path(j.ParamFile))
	}
	return damping.Get(j.Functional)
}

//Validate checks the manifest and every job against the parameter
//registry and the filesystem, so a bad job name or a typoed functional
//surfaces before any work is done. Errors name the offending job.
func (M *Manifest) Validate() error {
	if M.Workers < 0 {
		return errors.Errorf("batch: negative worker count %d", M.Workers)
	}
	if len(M.Jobs) == 0 {
		return errors.New("batch: the manifest has no jobs")
	}
	seen := make(map[string]bool, len(M.Jobs))
	for _, j := range M.Jobs {
		if j.Name == "" {
			return errors.New("batch: a job with an empty name")
		}
		if seen[j.Name] {
			return errors.Errorf("batch: duplicated job name %q", j.Name)
		}
		seen[j.Name] = true
		eff, err := M.effective(j)
		if err != nil {
			return err
		}
		if eff.Geometry == "" {
			return errors.Errorf("batch: job %q: no geometry given", j.Name)
		}
		switch strings.ToLower(filepath.Ext(eff.Geometry)) {
		case ".xyz", ".json":
		default:
			return errors.Errorf("batch: job %q: unsupported geometry format %s", j.Name, eff.Geometry)
		}
		if _, err := os.Stat(M.path(eff.Geometry)); err != nil {
			return errors.Wrapf(err, "batch: job %q", j.Name)
		}
		if eff.Functional != "" && eff.ParamFile != "" {
			return errors.Errorf("batch: job %q: both a functional and a parameter file given", j.Name)
		}
		if eff.Functional == "" && eff.ParamFile == "" {
			return errors.Errorf("batch: job %q: no functional or parameter file given", j.Name)
		}
		if _, err := M.param(eff); err != nil {
			return errors.Wrapf(err, "batch: job %q", j.Name)
		}
	}
	return nil
}
