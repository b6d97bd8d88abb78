/*
 * param.go, part of godftd4.
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

package damping

import (
	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
)

//Param holds the damping parameters of a D4 parametrization. The zero
//value is not a usable parametrization, use New, Get or LoadFile.
type Param struct {
	S6  float64 `toml:"s6,omitempty"`
	S8  float64 `toml:"s8"`
	S9  float64 `toml:"s9,omitempty"`
	S10 float64 `toml:"s10,omitempty"`
	A1  float64 `toml:"a1"`
	A2  float64 `toml:"a2"`
	Alp float64 `toml:"alp,omitempty"`
	DOI string  `toml:"doi,omitempty"`
}

//New returns a Param with the method-independent defaults filled in:
//s6=1, s9=1, s10=0 and alp=16. The functional-specific s8, a1 and a2
//are left at zero and must be set by the caller.
func New() *Param {
	return &Param{S6: 1.0, S9: 1.0, Alp: 16.0}
}

//Validate returns an error if the parametrization cannot be evaluated.
//All scaling factors must be non-negative, the critical-radius offset
//a2 strictly positive (otherwise the damping function diverges at
//short range) and the three-body exponent positive.
func (P *Param) Validate() error {
	switch {
	case P.S6 < 0 || P.S8 < 0 || P.S9 < 0 || P.S10 < 0:
		return errors.New("damping: negative scaling parameter")
	case P.A1 < 0:
		return errors.New("damping: negative a1")
	case P.A2 <= 0:
		return errors.New("damping: a2 must be positive")
	case P.Alp <= 0:
		return errors.New("damping: alp must be positive")
	}
	return nil
}

//Copy returns a copy of the parametrization.
func (P *Param) Copy() *Param {
	Q := *P
	return &Q
}

//Merge layers override on top of base and returns the result. Only
//the fields of override that differ from their zero value are taken,
//so a file or flag set that only gives s8, a1 and a2 inherits the
//remaining values from base. Neither argument is modified.
func Merge(base, override *Param) (*Param, error) {
	merged := base.Copy()
	err := copier.CopyWithOption(merged, override, copier.Option{IgnoreEmpty: true})
	if err != nil {
		return nil, errors.Wrap(err, "damping: merging parameters")
	}
	return merged, nil
}

//LoadFile reads a user parametrization from a TOML file with flat
//keys (s8, a1, a2 and optionally s6, s9, s10, alp, doi), layers it
//over the method-independent defaults and validates the result.
func LoadFile(path string) (*Param, error) {
	override := new(Param)
	md, err := toml.DecodeFile(path, override)
	if err != nil {
		return nil, errors.Wrapf(dftd4.ErrBadFormat, "damping: reading %s: %v", path, err)
	}
	if un := md.Undecoded(); len(un) > 0 {
		return nil, errors.Wrapf(dftd4.ErrBadFormat, "damping: unknown keys %v in %s", un, path)
	}
	p, err := Merge(New(), override)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "damping: %s", path)
	}
	return p, nil
}
