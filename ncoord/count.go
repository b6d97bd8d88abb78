/*
 * count.go, part of godftd4.
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

package ncoord

import "math"

//Default steepness of the error-function counting function.
const KErf = 7.5

//Default steepness of the exponential counting function.
const KExp = 16.0

//A CountingFunction maps an interatomic distance r and a reference
//distance r0 (normally the sum of covalent radii) to a bond count
//between 0 and 1. k controls the steepness of the decay.
type CountingFunction func(k, r, r0 float64) float64

//ErfCount is the error-function counting function
//0.5*(1+erf(-k*(r-r0)/r0)). It decays from 1 at short range to 0
//past the covalent-radius sum.
func ErfCount(k, r, r0 float64) float64 {
	return 0.5 * math.Erfc(k*(r-r0)/r0)
}

//DErfCount is the derivative of ErfCount with respect to r.
func DErfCount(k, r, r0 float64) float64 {
	x := k * (r - r0) / r0
	return -k / (sqrtpi * r0) * math.Exp(-x*x)
}

//ExpCount is the exponential counting function 1/(1+exp(-k*(r0/r-1)))
//used by the D3 flavor of the coordination number.
func ExpCount(k, r, r0 float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*(r0/r-1.0)))
}

//DExpCount is the derivative of ExpCount with respect to r.
func DExpCount(k, r, r0 float64) float64 {
	e := math.Exp(-k * (r0/r - 1.0))
	return -k * r0 * e / (r * r * (1.0 + e) * (1.0 + e))
}

var sqrtpi = math.Sqrt(math.Pi)
