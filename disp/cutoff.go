/*
 * cutoff.go, part of godftd4.
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

package disp

import "github.com/pkg/errors"

//Cutoff collects the real-space cutoffs, in Bohr, for the different
//interactions entering the dispersion energy.
type Cutoff struct {
	Disp2 float64 //two-body dispersion
	Disp3 float64 //three-body dispersion
	CN    float64 //coordination number of the model
	CNEEQ float64 //coordination number of the charge model
}

//DefaultCutoff returns the standard cutoffs: 60 Bohr for two-body
//dispersion, 40 for three-body dispersion, 30 for the coordination
//number and 25 for the EEQ coordination number.
func DefaultCutoff() *Cutoff {
	return &Cutoff{Disp2: 60.0, Disp3: 40.0, CN: 30.0, CNEEQ: 25.0}
}

//Validate returns an error unless all cutoffs are positive.
func (C *Cutoff) Validate() error {
	if C.Disp2 <= 0 || C.Disp3 <= 0 || C.CN <= 0 || C.CNEEQ <= 0 {
		return errors.Errorf("disp: cutoffs must be positive, got %+v", *C)
	}
	return nil
}
