/*
 * errors.go, part of godftd4.
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
	"github.com/pkg/errors"
)

//Sentinel errors for conditions callers may want to test for with
//errors.Is. Functions returning them normally wrap them with context.
var (
	ErrUnsupportedElement = errors.New("element not covered by the parametrization")
	ErrDimensionMismatch  = errors.New("coordinate and atomic number dimensions do not match")
	ErrInvalidGeometry    = errors.New("invalid molecular geometry")
	ErrBadFormat          = errors.New("could not parse input")
)

//PanicMsg is the type used for panics on programming errors, i.e.
//conditions that cannot arise from user input once a Molecule has been
//validated. It satisfies the error interface so recover-based handlers
//can treat it uniformly.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
