/*
 * damping.go, part of godftd4.
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

/*Package damping provides the damping functions of the D4 dispersion
correction and the published damping parameters for supported density
functionals. The parameter tables are embedded in the library, so no
external files are needed at run time.
*/
package damping

import "math"

//Rational is the Becke-Johnson rational damping function
//1/(r^n + R0^n), with the critical radius R0 = a1*sqrt(qq) + a2 built
//from the multipole expectation ratio qq = 3*r4r2_i*r4r2_j of the atom
//pair. order is the multipole order n (6, 8 or 10).
func Rational(order int, r, qq, a1, a2 float64) float64 {
	r0 := a1*math.Sqrt(qq) + a2
	return 1.0 / (math.Pow(r, float64(order)) + math.Pow(r0, float64(order)))
}

//DRational is the derivative of Rational with respect to r.
func DRational(order int, r, qq, a1, a2 float64) float64 {
	n := float64(order)
	f := Rational(order, r, qq, a1, a2)
	return -n * math.Pow(r, n-1) * f * f
}

//ZeroATM is the zero-damping factor of the three-body term,
//1/(1 + 6*(r0prod/rprod)^(alp/3)), where r0prod is the product of the
//three pairwise critical radii of the triple and rprod the product of
//the three distances.
func ZeroATM(alp, r0prod, rprod float64) float64 {
	return 1.0 / (1.0 + 6.0*math.Pow(r0prod/rprod, alp/3.0))
}
