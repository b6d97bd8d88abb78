/*
 * units.go, part of godftd4.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package dftd4

//This provides useful conversion factors and other constants.
//All computations in the library run in Hartree atomic units;
//these factors convert at the boundaries only.

//Conversions
const (
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
	H2Kcal  = 627.509 //Hartree 2 Kcal/mol
	Kcal2H  = 1 / 627.509
	H2KJ    = 2625.5 //Hartree 2 KJ/mol
	KJ2H    = 1 / 2625.5
	H2eV    = 27.211386
	KJ2Kcal = 1 / 4.184
	Kcal2KJ = 4.184
)
