/*
 * doc.go, part of godftd4.
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
 * goDFTD4 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package ncoord computes fractional coordination numbers for molecular
geometries. Two flavors are provided: the D4 coordination number, which
weights each pair by an electronegativity factor and is used to select
reference systems in the dispersion model, and the EEQ coordination
number, a plain error-function count capped at a maximum value, used by
the electronegativity equilibration charge model. Both flavors come
with analytic Cartesian derivatives.

All distances are in Bohr.
*/
package ncoord
