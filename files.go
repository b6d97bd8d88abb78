/*
 * files.go, part of godftd4.
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
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//ReadGeometryFile reads a molecule from a geometry file, picking the
//format from the file extension: ".xyz" for XMOL xyz files and
//".json" for QCSchema molecules.
func ReadGeometryFile(name string) (*Molecule, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xyz":
		return XYZReadFile(name)
	case ".json":
		return QCJSONReadFile(name)
	}
	return nil, errors.Wrapf(ErrBadFormat, "dftd4: no reader for the extension of %s", name)
}
