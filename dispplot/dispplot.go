/*
 * dispplot.go, part of godftd4.
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

/*Package dispplot produces dispersion potential curves and
polarizability curves, and plots them to image files. It is a small
convenience layer over the disp and model packages meant for quickly
inspecting damping parameters and reference polarizabilities.
*/
package dispplot

import (
	"context"
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/damping"
	"github.com/rmera/godftd4/disp"
	"github.com/rmera/godftd4/model"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Curve is a named series of points ready to be plotted.
type Curve struct {
	Name string
	X    []float64
	Y    []float64
}

//PairCurve returns the dissociation curve of the dispersion energy of
//an element dimer: n points with the interatomic distance scanned from
//rmin to rmax, both in Angstroms. Energies are in kcal/mol. The frames
//of the scan are evaluated concurrently.
func PairCurve(z1, z2 int, param *damping.Param, rmin, rmax float64, n int, opts ...*disp.Options) (*Curve, error) {
	if n < 2 {
		return nil, errors.New("dispplot: a curve needs at least 2 points")
	}
	if rmin <= 0 || rmax <= rmin {
		return nil, errors.Errorf("dispplot: bad distance range %g-%g", rmin, rmax)
	}
	if !dftd4.SupportedZ(z1) || !dftd4.SupportedZ(z2) {
		return nil, errors.Wrapf(dftd4.ErrUnsupportedElement, "dispplot: dimer %d-%d", z1, z2)
	}
	x := make([]float64, n)
	step := (rmax - rmin) / float64(n-1)
	for i := range x {
		x[i] = rmin + float64(i)*step
	}
	dimer := func(r float64) *mat.Dense {
		coords := mat.NewDense(2, 3, nil)
		coords.Set(1, 2, r*dftd4.A2Bohr)
		return coords
	}
	mol, err := dftd4.MakeMolecule([]int{z1, z2}, dimer(x[0]), 0)
	if err != nil {
		return nil, err
	}
	for _, r := range x[1:] {
		if err := mol.AddFrame(dimer(r)); err != nil {
			return nil, err
		}
	}
	totals, err := disp.TotalFrames(context.Background(), mol, param, opts...)
	if err != nil {
		return nil, err
	}
	y := make([]float64, n)
	for i, t := range totals {
		y[i] = t * dftd4.H2Kcal
	}
	name := fmt.Sprintf("%s-%s", dftd4.Symbol(z1), dftd4.Symbol(z2))
	return &Curve{Name: name, X: x, Y: y}, nil
}

//AlphaCurve returns the dynamic polarizability curve of an element on
//the imaginary frequency grid of the dispersion model, weighted for
//the given coordination number and partial charge. Frequencies and
//polarizabilities are in atomic units.
func AlphaCurve(z int, cn, q float64, opts ...*model.Options) (*Curve, error) {
	m, err := model.New([]int{z}, getModelOptions(opts))
	if err != nil {
		return nil, err
	}
	w, err := m.WeightReferences([]float64{cn}, []float64{q})
	if err != nil {
		return nil, err
	}
	pol := m.Polarizabilities(w)
	x := model.FreqGrid()
	y := make([]float64, len(x))
	for k := range y {
		y[k] = pol.At(0, k)
	}
	name := fmt.Sprintf("%s (CN=%.1f, q=%+.2f)", dftd4.Symbol(z), cn, q)
	return &Curve{Name: name, X: x, Y: y}, nil
}

func getModelOptions(opts []*model.Options) *model.Options {
	if len(opts) > 0 {
		return opts[0]
	}
	return nil
}

//Plot draws the given curves as lines on a single plot and saves it to
//filename. The image format is taken from the file extension, which
//must be one given by the plot library (png, pdf, svg and others).
func Plot(curves []*Curve, title, xlabel, ylabel, filename string) error {
	if len(curves) == 0 {
		return errors.New("dispplot: no curves to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	for key, c := range curves {
		if len(c.X) != len(c.Y) {
			return errors.Wrapf(dftd4.ErrDimensionMismatch, "dispplot: curve %q has %d x and %d y values", c.Name, len(c.X), len(c.Y))
		}
		xys := make(plotter.XYs, len(c.X))
		for i := range xys {
			xys[i].X = c.X[i]
			xys[i].Y = c.Y[i]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(curves))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		if c.Name != "" {
			p.Legend.Add(c.Name, l)
		}
	}
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}
