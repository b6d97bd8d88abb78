/*
 * version.go, part of godftd4.
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
	"runtime/debug"
)

//Version is the version of the library itself, following semantic
//versioning. It changes whenever the parametrization tables or the
//model behavior change, not only on API changes.
const Version = "0.3.0"

const modroot = "github.com/rmera/godftd4"

//BuildVersion returns the module version and checksum recorded by the Go
//toolchain in the running binary. The returned strings are empty in
//binaries built without module support, or when godftd4 is the main
//module; Version is the authoritative value in those cases.
func BuildVersion() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == modroot {
			if m.Replace != nil {
				return m.Replace.Version, m.Replace.Sum
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
