/*
 * cmd_params.go, part of godftd4.
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

	"github.com/spf13/cobra"

	"github.com/rmera/godftd4/damping"
)

func init() {
	cmd := &cobra.Command{
		Use:   "params [FUNCTIONAL...]",
		Short: "List the known functionals or print their damping parameters",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range damping.Functionals() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			for _, name := range args {
				p, err := damping.GetWithReference(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s:\n", name)
				fmt.Fprintf(out, "  s6  = %.8f\n", p.S6)
				fmt.Fprintf(out, "  s8  = %.8f\n", p.S8)
				fmt.Fprintf(out, "  s9  = %.8f\n", p.S9)
				if p.S10 != 0 {
					fmt.Fprintf(out, "  s10 = %.8f\n", p.S10)
				}
				fmt.Fprintf(out, "  a1  = %.8f\n", p.A1)
				fmt.Fprintf(out, "  a2  = %.8f\n", p.A2)
				fmt.Fprintf(out, "  alp = %.8f\n", p.Alp)
				if p.DOI != "" {
					fmt.Fprintf(out, "  doi = %s\n", p.DOI)
				}
			}
			return nil
		},
	}
	argparser.AddCommand(cmd)
}
