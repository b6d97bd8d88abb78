/*
 * cmd_energy.go, part of godftd4.
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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	dftd4 "github.com/rmera/godftd4"
	"github.com/rmera/godftd4/disp"
)

type energyReport struct {
	Total        float64     `json:"total_energy"`
	TotalKcalMol float64     `json:"total_energy_kcalmol"`
	PerAtom      []float64   `json:"atom_energies"`
	Gradient     [][]float64 `json:"gradient,omitempty"`
}

func init() {
	var (
		argFunctional  string
		argParamFile   string
		argCharge      int
		argGrad        bool
		argJSON        bool
		argNoThreeBody bool
	)
	cmd := &cobra.Command{
		Use:   "energy [flags] GEOMETRY.{xyz,json}",
		Short: "Compute the D4 dispersion energy of a molecule",
		Args:  wrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			param, err := resolveParam(argFunctional, argParamFile)
			if err != nil {
				return err
			}
			mol, err := dftd4.ReadGeometryFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("charge") {
				mol.SetCharge(argCharge)
			}
			O := disp.DefaultOptions()
			O.ThreeBody(!argNoThreeBody)
			var energies []float64
			var grad *mat.Dense
			if argGrad {
				energies, grad, err = disp.Gradient(mol, 0, param, O)
			} else {
				energies, err = disp.Energy(mol, 0, param, O)
			}
			if err != nil {
				return err
			}
			total := 0.0
			for _, e := range energies {
				total += e
			}
			out := cmd.OutOrStdout()
			if argJSON {
				report := energyReport{
					Total:        total,
					TotalKcalMol: total * dftd4.H2Kcal,
					PerAtom:      energies,
				}
				if grad != nil {
					report.Gradient = make([][]float64, mol.Len())
					for i := range report.Gradient {
						report.Gradient[i] = []float64{grad.At(i, 0), grad.At(i, 1), grad.At(i, 2)}
					}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			fmt.Fprintf(out, "total dispersion energy: %.10f Eh (%.4f kcal/mol)\n",
				total, total*dftd4.H2Kcal)
			fmt.Fprintf(out, "\natom energies (Eh):\n")
			symbols := mol.Symbols()
			for i, e := range energies {
				fmt.Fprintf(out, "%4d %-2s %15.10f\n", i+1, symbols[i], e)
			}
			if grad != nil {
				fmt.Fprintf(out, "\ngradient (Eh/Bohr):\n")
				for i := range symbols {
					fmt.Fprintf(out, "%4d %-2s %15.10f %15.10f %15.10f\n",
						i+1, symbols[i], grad.At(i, 0), grad.At(i, 1), grad.At(i, 2))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&argFunctional, "functional", "f", "", "Use the published parameters for `FUNCTIONAL`")
	cmd.Flags().StringVar(&argParamFile, "param-file", "", "Read the damping parameters from `FILE.toml`")
	cmd.Flags().IntVarP(&argCharge, "charge", "c", 0, "Override the total charge of the molecule")
	cmd.Flags().BoolVarP(&argGrad, "grad", "g", false, "Also compute the nuclear gradient")
	cmd.Flags().BoolVar(&argJSON, "json", false, "Print the results as JSON")
	cmd.Flags().BoolVar(&argNoThreeBody, "no-threebody", false, "Skip the Axilrod-Teller-Muto three-body term")

	argparser.AddCommand(cmd)
}
