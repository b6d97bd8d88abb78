/*
 * registry.go, part of godftd4.
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
	_ "embed"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/tidwall/btree"
)

//go:embed parameters/parameters.toml
var parametersTOML string

//ErrUnknownFunctional is returned when no published parameters exist
//for the requested functional.
var ErrUnknownFunctional = errors.New("damping: no parameters for functional")

//paramTables mirrors the layout of the embedded parameter file.
type paramTables struct {
	Default    Param            `toml:"default"`
	Functional map[string]Param `toml:"functional"`
}

type fentry struct {
	name string
	p    *Param
}

func byFunctional(a, b interface{}) bool {
	return a.(*fentry).name < b.(*fentry).name
}

var registry struct {
	once sync.Once
	tree *btree.BTree
	def  *Param
	err  error
}

func loadRegistry() {
	var tables paramTables
	md, err := toml.Decode(parametersTOML, &tables)
	if err != nil {
		registry.err = errors.Wrap(err, "damping: parsing the embedded parameter table")
		return
	}
	if un := md.Undecoded(); len(un) > 0 {
		registry.err = errors.Errorf("damping: unknown keys %v in the embedded parameter table", un)
		return
	}
	registry.def = &tables.Default
	registry.tree = btree.NewNonConcurrent(byFunctional)
	for name, p := range tables.Functional {
		q := p
		registry.tree.Set(&fentry{name: strings.ToLower(name), p: &q})
	}
}

//tree returns the loaded registry, panicking if the table embedded at
//build time cannot be parsed, which is a defect of the library and
//not of its caller.
func tree() *btree.BTree {
	registry.once.Do(loadRegistry)
	if registry.err != nil {
		panic(dftd4.PanicMsg(registry.err.Error()))
	}
	return registry.tree
}

//Default returns the method-independent default parameters from the
//embedded table: s6=1, s9=1, s10=0 and alp=16, with the
//functional-specific fields left at zero.
func Default() *Param {
	tree()
	return registry.def.Copy()
}

//Get returns the published parametrization for the given density
//functional, layered over the defaults. The lookup is
//case-insensitive, so "TPSSh" and "tpssh" name the same set.
func Get(functional string) (*Param, error) {
	p, err := GetWithReference(functional)
	if err != nil {
		return nil, err
	}
	p.DOI = ""
	return p, nil
}

//GetWithReference behaves like Get but keeps the DOI of the
//publication the parameters were fitted in.
func GetWithReference(functional string) (*Param, error) {
	it := tree().Get(&fentry{name: strings.ToLower(functional)})
	if it == nil {
		return nil, errors.Wrapf(ErrUnknownFunctional, "%q", functional)
	}
	p, err := Merge(Default(), it.(*fentry).p)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "damping: embedded parameters for %q", functional)
	}
	return p, nil
}

//Functionals returns the names of all functionals with published
//parameters, in lexicographic order.
func Functionals() []string {
	t := tree()
	names := make([]string, 0, t.Len())
	t.Ascend(nil, func(item interface{}) bool {
		names = append(names, item.(*fentry).name)
		return true
	})
	return names
}

//FunctionalsWithPrefix returns the names of all functionals starting
//with the given prefix, in lexicographic order. An empty prefix lists
//everything.
func FunctionalsWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var names []string
	tree().Ascend(&fentry{name: prefix}, func(item interface{}) bool {
		name := item.(*fentry).name
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		names = append(names, name)
		return true
	})
	return names
}
