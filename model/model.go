/*
 * model.go, part of godftd4.
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

/*Package model implements the D4 dispersion model: a set of reference
systems per element, each carrying a reference coordination number, a
reference partial charge and a dynamic polarizability curve. The
dispersion coefficients of an atom in a molecule are obtained by
weighting the reference systems of its element according to the actual
coordination number and partial charge of the atom.

Reference dynamic polarizabilities are single-oscillator (London)
curves alpha0/(1+(w/eta)^2) evaluated on a fixed 23-point
imaginary-frequency grid, and pairwise reference C6 coefficients are
obtained from them by Casimir-Polder integration on that grid.
*/
package model

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/cache"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

//freq is the imaginary-frequency grid for the Casimir-Polder
//integration, in Hartree.
var freq = [23]float64{
	0.000001, 0.050000, 0.100000, 0.200000, 0.300000, 0.400000,
	0.500000, 0.600000, 0.700000, 0.800000, 0.900000, 1.000000,
	1.200000, 1.400000, 1.600000, 1.800000, 2.000000, 2.500000,
	3.000000, 4.000000, 5.000000, 7.500000, 10.000000,
}

//FreqGrid returns a copy of the imaginary-frequency grid on which
//dynamic polarizabilities are tabulated.
func FreqGrid() []float64 {
	g := make([]float64, len(freq))
	copy(g, freq[:])
	return g
}

//Options contains the parameters of the D4 model. Obtain one from
//DefaultOptions and modify it with the provided methods.
type Options struct {
	wf       float64
	ga       float64
	gc       float64
	cacheDir string
	compress bool
}

//DefaultOptions returns the published D4 model parameters: Gaussian
//weighting factor 6, charge-scaling height 3 and steepness 2, with
//the disk cache disabled.
func DefaultOptions() *Options {
	return &Options{wf: 6.0, ga: 3.0, gc: 2.0, compress: true}
}

//WF sets (if given) and returns the Gaussian weighting factor for the
//coordination-number interpolation.
func (O *Options) WF(v ...float64) float64 {
	if len(v) > 0 {
		O.wf = v[0]
	}
	return O.wf
}

//Ga sets (if given) and returns the charge-scaling height.
func (O *Options) Ga(v ...float64) float64 {
	if len(v) > 0 {
		O.ga = v[0]
	}
	return O.ga
}

//Gc sets (if given) and returns the charge-scaling steepness.
func (O *Options) Gc(v ...float64) float64 {
	if len(v) > 0 {
		O.gc = v[0]
	}
	return O.gc
}

//Cache sets (if given) and returns the directory for the reference-C6
//disk cache. An empty string, the default, disables caching.
func (O *Options) Cache(dir ...string) string {
	if len(dir) > 0 {
		O.cacheDir = dir[0]
	}
	return O.cacheDir
}

//CacheCompress sets (if given) and returns whether new cache entries
//are written zstd-compressed.
func (O *Options) CacheCompress(c ...bool) bool {
	if len(c) > 0 {
		O.compress = c[0]
	}
	return O.compress
}

//D4 is the dispersion model for one molecular composition. It only
//depends on the elements present, so it can be reused across frames
//and even across molecules with the same elements.
type D4 struct {
	numbers []int
	species []int //unique atomic numbers, ascending
	atomsp  []int //index into species, per atom
	nref    []int //number of references, per species
	off     []int //offset into the flattened reference list, per species
	maxref  int
	alpha   *mat.Dense //reference dynamic polarizabilities, nreftot x len(freq)
	rc6     *mat.Dense //pairwise reference C6, nreftot x nreftot
	wf      float64
	ga      float64
	gc      float64
}

//New builds the D4 model for a composition given by atomic numbers.
//The expensive part, the Casimir-Polder integration of all pairwise
//reference C6 coefficients, can be cached on disk with the Cache
//option.
func New(numbers []int, opts ...*Options) (*D4, error) {
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	if len(numbers) == 0 {
		return nil, errors.Wrap(dftd4.ErrInvalidGeometry, "model: no atoms given")
	}
	if O.wf <= 0 {
		return nil, errors.New("model: the Gaussian weighting factor must be positive")
	}
	if O.ga <= 0 || O.gc <= 0 {
		return nil, errors.New("model: the charge-scaling parameters must be positive")
	}
	m := &D4{wf: O.wf, ga: O.ga, gc: O.gc}
	m.numbers = append([]int{}, numbers...)
	seen := make(map[int]bool)
	for _, z := range numbers {
		if z < 1 || z > dftd4.MaxZ {
			return nil, errors.Wrapf(dftd4.ErrUnsupportedElement, "model: Z=%d", z)
		}
		if !seen[z] {
			seen[z] = true
			m.species = append(m.species, z)
		}
	}
	sort.Ints(m.species)
	spidx := make(map[int]int, len(m.species))
	m.off = make([]int, len(m.species))
	m.nref = make([]int, len(m.species))
	total := 0
	for s, z := range m.species {
		spidx[z] = s
		m.off[s] = total
		m.nref[s] = refn[z]
		if m.nref[s] > m.maxref {
			m.maxref = m.nref[s]
		}
		total += m.nref[s]
	}
	m.atomsp = make([]int, len(numbers))
	for i, z := range numbers {
		m.atomsp[i] = spidx[z]
	}
	m.alpha = mat.NewDense(total, len(freq), nil)
	for s, z := range m.species {
		for r := 0; r < m.nref[s]; r++ {
			a0 := refalpha[z][r]
			eta := refeta[z][r]
			row := m.off[s] + r
			for k, w := range freq {
				x := w / eta
				m.alpha.Set(row, k, a0/(1.0+x*x))
			}
		}
	}
	if O.cacheDir != "" {
		key := cache.Key(m.species, FreqGrid(), dftd4.Version)
		if rc6, err := cache.Load(O.cacheDir, key, total, total); err == nil {
			m.rc6 = rc6
			return m, nil
		}
		m.integrateC6(total)
		//a failed store only costs a recomputation next time
		cache.Store(O.cacheDir, key, m.rc6, O.compress)
		return m, nil
	}
	m.integrateC6(total)
	return m, nil
}

//integrateC6 fills the pairwise reference C6 table by trapezoidal
//Casimir-Polder integration of the reference polarizability products.
func (m *D4) integrateC6(total int) {
	m.rc6 = mat.NewDense(total, total, nil)
	prod := make([]float64, len(freq))
	for a := 0; a < total; a++ {
		for b := a; b < total; b++ {
			for k := range prod {
				prod[k] = m.alpha.At(a, k) * m.alpha.At(b, k)
			}
			c6 := 3.0 / math.Pi * integrate.Trapezoidal(freq[:], prod)
			m.rc6.Set(a, b, c6)
			m.rc6.Set(b, a, c6)
		}
	}
}

//Len returns the number of atoms the model was built for.
func (m *D4) Len() int {
	return len(m.numbers)
}

//Numbers returns the atomic numbers the model was built for.
func (m *D4) Numbers() []int {
	return m.numbers
}

//MaxRef returns the widest reference count among the species present,
//which is the number of columns of the weight matrices.
func (m *D4) MaxRef() int {
	return m.maxref
}

//References returns the number of reference systems of atom i.
func (m *D4) References(i int) int {
	return m.nref[m.atomsp[i]]
}

//Zeta is the charge-scaling function of the D4 model. It scales a
//reference system with charge qref to the actual atomic charge qmod,
//where both carry the effective nuclear charge of the element as an
//offset. a is the scaling height and c the product of scaling
//steepness and chemical hardness.
func Zeta(a, c, qref, qmod float64) float64 {
	if qmod <= 0 {
		return math.Exp(a)
	}
	return math.Exp(a * (1.0 - math.Exp(c*(1.0-qref/qmod))))
}

//DZeta is the derivative of Zeta with respect to qmod.
func DZeta(a, c, qref, qmod float64) float64 {
	if qmod <= 0 {
		return 0
	}
	return -a * c * math.Exp(c*(1.0-qref/qmod)) * Zeta(a, c, qref, qmod) * qref / (qmod * qmod)
}

//checkWeightArgs validates the per-atom inputs of the weighting
//functions.
func (m *D4) checkWeightArgs(cn, q []float64) error {
	if len(cn) != len(m.numbers) {
		return errors.Wrapf(dftd4.ErrDimensionMismatch, "model: %d coordination numbers for %d atoms", len(cn), len(m.numbers))
	}
	if q != nil && len(q) != len(m.numbers) {
		return errors.Wrapf(dftd4.ErrDimensionMismatch, "model: %d charges for %d atoms", len(q), len(m.numbers))
	}
	return nil
}

//WeightReferences returns the weights of the reference systems of
//every atom, given the coordination numbers and partial charges of
//the atoms. A nil q is taken as all atoms neutral, which is how the
//charge-independent three-body coefficients are obtained. The result
//has one row per atom and MaxRef columns, with unused trailing
//columns at zero.
func (m *D4) WeightReferences(cn, q []float64) (*mat.Dense, error) {
	if err := m.checkWeightArgs(cn, q); err != nil {
		return nil, err
	}
	w := mat.NewDense(len(m.numbers), m.maxref, nil)
	gw := make([]float64, m.maxref)
	for i, z := range m.numbers {
		n := m.nref[m.atomsp[i]]
		m.gaussianWeights(gw[:n], z, cn[i])
		qi := 0.0
		if q != nil {
			qi = q[i]
		}
		zeff := dftd4.EffectiveCharge(z)
		c := m.gc * dftd4.ChemicalHardness(z)
		for r := 0; r < n; r++ {
			w.Set(i, r, gw[r]*Zeta(m.ga, c, refq[z][r]+zeff, qi+zeff))
		}
	}
	return w, nil
}

//WeightDerivatives returns the reference weights together with their
//partial derivatives with respect to the coordination number and the
//partial charge of each atom, all in the layout of WeightReferences.
func (m *D4) WeightDerivatives(cn, q []float64) (w, dwdcn, dwdq *mat.Dense, err error) {
	if err := m.checkWeightArgs(cn, q); err != nil {
		return nil, nil, nil, err
	}
	nat := len(m.numbers)
	w = mat.NewDense(nat, m.maxref, nil)
	dwdcn = mat.NewDense(nat, m.maxref, nil)
	dwdq = mat.NewDense(nat, m.maxref, nil)
	gw := make([]float64, m.maxref)
	dgw := make([]float64, m.maxref)
	for i, z := range m.numbers {
		n := m.nref[m.atomsp[i]]
		m.gaussianWeightsAndDerivatives(gw[:n], dgw[:n], z, cn[i])
		qi := 0.0
		if q != nil {
			qi = q[i]
		}
		zeff := dftd4.EffectiveCharge(z)
		c := m.gc * dftd4.ChemicalHardness(z)
		for r := 0; r < n; r++ {
			zv := Zeta(m.ga, c, refq[z][r]+zeff, qi+zeff)
			w.Set(i, r, gw[r]*zv)
			dwdcn.Set(i, r, dgw[r]*zv)
			dwdq.Set(i, r, gw[r]*DZeta(m.ga, c, refq[z][r]+zeff, qi+zeff))
		}
	}
	return w, dwdcn, dwdq, nil
}

//gaussianWeights fills gw with the normalized Gaussian
//coordination-number weights of the references of element z at
//coordination number cn.
func (m *D4) gaussianWeights(gw []float64, z int, cn float64) {
	norm := 0.0
	for r := range gw {
		d := cn - refcn[z][r]
		sum := 0.0
		for g := 1; g <= refc[z][r]; g++ {
			sum += math.Exp(-m.wf * float64(g) * d * d)
		}
		gw[r] = sum
		norm += sum
	}
	if norm == 0 {
		//cn is so far from every reference that all Gaussians
		//underflow; fall back to the largest reference CN
		m.exceptionalWeights(gw, z)
		return
	}
	for r := range gw {
		gw[r] /= norm
	}
}

//gaussianWeightsAndDerivatives fills gw like gaussianWeights and dgw
//with the derivatives of the normalized weights with respect to cn.
func (m *D4) gaussianWeightsAndDerivatives(gw, dgw []float64, z int, cn float64) {
	norm := 0.0
	dnorm := 0.0
	for r := range gw {
		d := cn - refcn[z][r]
		sum := 0.0
		dsum := 0.0
		for g := 1; g <= refc[z][r]; g++ {
			e := math.Exp(-m.wf * float64(g) * d * d)
			sum += e
			dsum += -2.0 * m.wf * float64(g) * d * e
		}
		gw[r] = sum
		dgw[r] = dsum
		norm += sum
		dnorm += dsum
	}
	if norm == 0 {
		m.exceptionalWeights(gw, z)
		for r := range dgw {
			dgw[r] = 0
		}
		return
	}
	for r := range gw {
		gw[r] /= norm
		dgw[r] = (dgw[r] - gw[r]*dnorm) / norm
	}
}

//exceptionalWeights puts the whole weight on the reference with the
//largest coordination number.
func (m *D4) exceptionalWeights(gw []float64, z int) {
	rmax := 0
	for r := 1; r < len(gw); r++ {
		if refcn[z][r] > refcn[z][rmax] {
			rmax = r
		}
	}
	for r := range gw {
		gw[r] = 0
	}
	gw[rmax] = 1
}

//AtomicC6 contracts the pairwise reference C6 table with the given
//reference weights, returning the C6 coefficient for every atom pair
//as a symmetric natoms x natoms matrix.
func (m *D4) AtomicC6(w *mat.Dense) *mat.Dense {
	nat := len(m.numbers)
	if r, c := w.Dims(); r != nat || c != m.maxref {
		panic(dftd4.PanicMsg("model: reference weights have the wrong shape"))
	}
	c6 := mat.NewDense(nat, nat, nil)
	for i := 0; i < nat; i++ {
		si := m.atomsp[i]
		for j := i; j < nat; j++ {
			sj := m.atomsp[j]
			sum := 0.0
			for ri := 0; ri < m.nref[si]; ri++ {
				wi := w.At(i, ri)
				if wi == 0 {
					continue
				}
				for rj := 0; rj < m.nref[sj]; rj++ {
					sum += wi * w.At(j, rj) * m.rc6.At(m.off[si]+ri, m.off[sj]+rj)
				}
			}
			c6.Set(i, j, sum)
			c6.Set(j, i, sum)
		}
	}
	return c6
}

//AtomicC6Derivatives contracts the reference C6 table with the
//weights and their derivatives. It returns the pairwise C6 matrix
//and the matrices dc6dcn and dc6dq, whose (i, j) elements are the
//derivatives of C6_ij with respect to the coordination number and
//the charge of atom i. Unlike c6, the derivative matrices are not
//symmetric.
func (m *D4) AtomicC6Derivatives(w, dwdcn, dwdq *mat.Dense) (c6, dc6dcn, dc6dq *mat.Dense) {
	nat := len(m.numbers)
	if r, c := w.Dims(); r != nat || c != m.maxref {
		panic(dftd4.PanicMsg("model: reference weights have the wrong shape"))
	}
	c6 = mat.NewDense(nat, nat, nil)
	dc6dcn = mat.NewDense(nat, nat, nil)
	dc6dq = mat.NewDense(nat, nat, nil)
	for i := 0; i < nat; i++ {
		si := m.atomsp[i]
		for j := i; j < nat; j++ {
			sj := m.atomsp[j]
			sum, di, dj, qi, qj := 0.0, 0.0, 0.0, 0.0, 0.0
			for ri := 0; ri < m.nref[si]; ri++ {
				for rj := 0; rj < m.nref[sj]; rj++ {
					rc := m.rc6.At(m.off[si]+ri, m.off[sj]+rj)
					sum += w.At(i, ri) * w.At(j, rj) * rc
					di += dwdcn.At(i, ri) * w.At(j, rj) * rc
					dj += w.At(i, ri) * dwdcn.At(j, rj) * rc
					qi += dwdq.At(i, ri) * w.At(j, rj) * rc
					qj += w.At(i, ri) * dwdq.At(j, rj) * rc
				}
			}
			c6.Set(i, j, sum)
			c6.Set(j, i, sum)
			if i == j {
				//the diagonal picks up both weight factors
				dc6dcn.Set(i, i, di+dj)
				dc6dq.Set(i, i, qi+qj)
				continue
			}
			dc6dcn.Set(i, j, di)
			dc6dcn.Set(j, i, dj)
			dc6dq.Set(i, j, qi)
			dc6dq.Set(j, i, qj)
		}
	}
	return c6, dc6dcn, dc6dq
}

//Polarizabilities contracts the reference dynamic polarizabilities
//with the given weights, returning one polarizability curve per atom
//on the frequency grid (natoms rows, 23 columns).
func (m *D4) Polarizabilities(w *mat.Dense) *mat.Dense {
	nat := len(m.numbers)
	if r, c := w.Dims(); r != nat || c != m.maxref {
		panic(dftd4.PanicMsg("model: reference weights have the wrong shape"))
	}
	pol := mat.NewDense(nat, len(freq), nil)
	for i := 0; i < nat; i++ {
		s := m.atomsp[i]
		for k := 0; k < len(freq); k++ {
			sum := 0.0
			for r := 0; r < m.nref[s]; r++ {
				sum += w.At(i, r) * m.alpha.At(m.off[s]+r, k)
			}
			pol.Set(i, k, sum)
		}
	}
	return pol
}

//StaticPolarizability returns the molecular static polarizability,
//the sum over atoms of the weighted polarizabilities at (essentially)
//zero frequency.
func (m *D4) StaticPolarizability(w *mat.Dense) float64 {
	pol := m.Polarizabilities(w)
	sum := 0.0
	for i := 0; i < len(m.numbers); i++ {
		sum += pol.At(i, 0)
	}
	return sum
}
