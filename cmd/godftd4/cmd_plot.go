/*
 * cmd_plot.go, part of godftd4.
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

package main

import (
	"fmt"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/dispplot"
)

func init() {
	var (
		argElements   string
		argFunctional string
		argParamFile  string
		argOut        string
		argRMin       float64
		argRMax       float64
		argPoints     int
	)
	cmd := &cobra.Command{
		Use:   "plot [flags]",
		Short: "Plot dispersion potential curves for element pairs",
		Long: `Plot draws the two-body dispersion energy of every pair that can be
formed from the given elements, as a function of the interatomic
distance, and writes the curves to an image file.`,
		Args: wrapPositionalArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := resolveParam(argFunctional, argParamFile)
			if err != nil {
				return err
			}
			fields := strings.Split(argElements, ",")
			zs := make([]int, 0, len(fields))
			for _, f := range fields {
				f = strings.TrimSpace(f)
				if f == "" {
					continue
				}
				z, err := dftd4.AtomicNumber(f)
				if err != nil {
					return err
				}
				zs = append(zs, z)
			}
			if len(zs) == 0 {
				return fmt.Errorf("no elements given, use --elements")
			}
			var curves []*dispplot.Curve
			for i, zi := range zs {
				for _, zj := range zs[i:] {
					curve, err := dispplot.PairCurve(zi, zj, param, argRMin, argRMax, argPoints)
					if err != nil {
						return err
					}
					curves = append(curves, curve)
				}
			}
			title := "D4 dispersion"
			if argFunctional != "" {
				title = fmt.Sprintf("D4 dispersion (%s)", argFunctional)
			}
			if err := dispplot.Plot(curves, title, "R (A)", "E (kcal/mol)", argOut); err != nil {
				return err
			}
			dlog.Infof(cmd.Context(), "wrote %d curves to %s", len(curves), argOut)
			return nil
		},
	}
	cmd.Flags().StringVarP(&argElements, "elements", "e", "", "Comma-separated element symbols, e.g. `H,C,Ar`")
	cmd.Flags().StringVarP(&argFunctional, "functional", "f", "", "Use the published parameters for `FUNCTIONAL`")
	cmd.Flags().StringVar(&argParamFile, "param-file", "", "Read the damping parameters from `FILE.toml`")
	cmd.Flags().StringVarP(&argOut, "output", "o", "dispersion.png", "Output image `FILE` (format from its extension)")
	cmd.Flags().Float64Var(&argRMin, "rmin", 2.0, "Scan start in Angstroms")
	cmd.Flags().Float64Var(&argRMax, "rmax", 8.0, "Scan end in Angstroms")
	cmd.Flags().IntVarP(&argPoints, "points", "n", 121, "Points per curve")

	argparser.AddCommand(cmd)
}
