/*
 * xyz.go, part of godftd4.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

//XYZRead reads molecules in XYZ format. Coordinates in the file are taken
//to be in Angstrom and get converted to Bohr. If the file contains several
//geometries they all go into the returned Molecule, which requires the
//element list to be the same in every one of them. The total charge is
//taken from a "charge=N" token in the comment line of the first geometry,
//if present, and is zero otherwise.
func XYZRead(r io.Reader) (*Molecule, error) {
	scanner := bufio.NewScanner(r)
	var mol *Molecule
	for frame := 0; ; frame++ {
		if !scanner.Scan() {
			break //clean EOF between geometries
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || natoms <= 0 {
			return nil, errors.Wrapf(ErrBadFormat, "geometry %d: the atom-count line reads %q", frame, scanner.Text())
		}
		if !scanner.Scan() {
			return nil, errors.Wrapf(ErrBadFormat, "geometry %d: missing comment line", frame)
		}
		comment := scanner.Text()
		numbers := make([]int, natoms)
		coords := make([]float64, natoms*3)
		for i := 0; i < natoms; i++ {
			if !scanner.Scan() {
				return nil, errors.Wrapf(ErrBadFormat, "geometry %d truncated at atom %d", frame, i)
			}
			fields := strings.Fields(scanner.Text())
			if len(fields) < 4 {
				return nil, errors.Wrapf(ErrBadFormat, "geometry %d, atom %d: ill-formed line %q", frame, i, scanner.Text())
			}
			numbers[i], err = parseElement(fields[0])
			if err != nil {
				return nil, errors.Wrapf(err, "geometry %d, atom %d", frame, i)
			}
			for j := 0; j < 3; j++ {
				v, err := strconv.ParseFloat(fields[j+1], 64)
				if err != nil {
					return nil, errors.Wrapf(ErrBadFormat, "geometry %d, atom %d: bad coordinate %q", frame, i, fields[j+1])
				}
				coords[i*3+j] = v * A2Bohr
			}
		}
		if mol == nil {
			mol, err = MakeMolecule(numbers, mat.NewDense(natoms, 3, coords), xyzCharge(comment))
			if err != nil {
				return nil, err
			}
			continue
		}
		if len(numbers) != mol.Len() {
			return nil, errors.Wrapf(ErrDimensionMismatch, "geometry %d has %d atoms, previous ones have %d", frame, natoms, mol.Len())
		}
		for i, z := range mol.Numbers() {
			if numbers[i] != z {
				return nil, errors.Wrapf(ErrDimensionMismatch, "geometry %d, atom %d: element changed between geometries", frame, i)
			}
		}
		if err := mol.AddFrame(mat.NewDense(natoms, 3, coords)); err != nil {
			return nil, errors.Wrapf(err, "geometry %d", frame)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if mol == nil {
		return nil, errors.Wrap(ErrBadFormat, "empty XYZ input")
	}
	return mol, nil
}

//XYZReadFile is as XYZRead but takes a file name.
func XYZReadFile(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mol, err := XYZRead(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return mol, nil
}

//XYZWrite writes one geometry of mol to w in XYZ format, converting the
//coordinates back to Angstrom.
func XYZWrite(w io.Writer, mol *Molecule, frame int) error {
	if frame < 0 || frame >= mol.NFrames() {
		return errors.Wrapf(ErrInvalidGeometry, "geometry %d not present", frame)
	}
	coords := mol.Frame(frame)
	if _, err := fmt.Fprintf(w, "%d\ncharge=%d\n", mol.Len(), mol.Charge()); err != nil {
		return err
	}
	for i, s := range mol.Symbols() {
		_, err := fmt.Fprintf(w, "%-2s  %12.7f  %12.7f  %12.7f\n", s,
			coords.At(i, 0)*Bohr2A, coords.At(i, 1)*Bohr2A, coords.At(i, 2)*Bohr2A)
		if err != nil {
			return err
		}
	}
	return nil
}

//XYZWriteFile is as XYZWrite but takes a file name, which gets created or
//overwritten.
func XYZWriteFile(name string, mol *Molecule, frame int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return XYZWrite(f, mol, frame)
}

//parseElement accepts an element symbol or a plain atomic number, which
//some programs write in the first column of XYZ files.
func parseElement(field string) (int, error) {
	if z, err := strconv.Atoi(field); err == nil {
		if !SupportedZ(z) {
			return 0, errors.Wrapf(ErrUnsupportedElement, "atomic number %d", z)
		}
		return z, nil
	}
	return AtomicNumber(field)
}

func xyzCharge(comment string) int {
	for _, f := range strings.Fields(comment) {
		l := strings.ToLower(f)
		if strings.HasPrefix(l, "charge=") {
			if q, err := strconv.Atoi(strings.TrimPrefix(l, "charge=")); err == nil {
				return q
			}
		}
	}
	return 0
}
