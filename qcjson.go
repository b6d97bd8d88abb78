/*
 * qcjson.go, part of godftd4.
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
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gonum.org/v1/gonum/mat"
)

//QCJSONRead reads a molecule in QCSchema JSON format (as produced by, e.g.,
//QCEngine). Geometries in QCSchema are already in Bohr so no conversion
//takes place. Elements come from "atomic_numbers" when present and from
//"symbols" otherwise; the total charge comes from "molecular_charge" and
//defaults to zero. Only the fields relevant to dispersion are read, the
//rest of the document is ignored.
func QCJSONRead(r io.Reader) (*Molecule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(ErrBadFormat, "not valid JSON")
	}
	//Some producers nest the molecule under "molecule" (e.g. in input
	//documents), others put it at the top level.
	root := gjson.ParseBytes(data)
	if m := root.Get("molecule"); m.Exists() {
		root = m
	}
	var numbers []int
	if nums := root.Get("atomic_numbers"); nums.Exists() {
		for _, v := range nums.Array() {
			numbers = append(numbers, int(v.Int()))
		}
	} else if syms := root.Get("symbols"); syms.Exists() {
		for i, v := range syms.Array() {
			z, err := AtomicNumber(v.String())
			if err != nil {
				return nil, errors.Wrapf(err, "atom %d", i)
			}
			numbers = append(numbers, z)
		}
	} else {
		return nil, errors.Wrap(ErrBadFormat, "neither atomic_numbers nor symbols present")
	}
	geom := root.Get("geometry")
	if !geom.Exists() {
		return nil, errors.Wrap(ErrBadFormat, "no geometry present")
	}
	raw := geom.Array()
	if len(raw) != 3*len(numbers) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "geometry has %d values for %d atoms", len(raw), len(numbers))
	}
	coords := make([]float64, len(raw))
	for i, v := range raw {
		coords[i] = v.Float()
	}
	charge := 0
	if q := root.Get("molecular_charge"); q.Exists() {
		charge = int(q.Float())
	}
	return MakeMolecule(numbers, mat.NewDense(len(numbers), 3, coords), charge)
}

//QCJSONReadFile is as QCJSONRead but takes a file name.
func QCJSONReadFile(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mol, err := QCJSONRead(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return mol, nil
}
