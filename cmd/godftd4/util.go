/*
 * util.go, part of godftd4.
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

package main

import (
	"github.com/pkg/errors"
	"github.com/rmera/godftd4/damping"
)

//resolveParam turns the --functional/--param-file flag pair into a
//damping parametrization. Exactly one of the two must be given.
func resolveParam(functional, paramFile string) (*damping.Param, error) {
	switch {
	case functional != "" && paramFile != "":
		return nil, errors.New("give either --functional or --param-file, not both")
	case paramFile != "":
		return damping.LoadFile(paramFile)
	case functional != "":
		return damping.Get(functional)
	}
	return nil, errors.New("a --functional or a --param-file is required")
}
