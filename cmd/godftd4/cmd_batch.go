/*
 * cmd_batch.go, part of godftd4.
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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rmera/godftd4/batch"
)

func init() {
	var argReport string
	cmd := &cobra.Command{
		Use:   "batch [flags] MANIFEST.hcl",
		Short: "Run every job of an HCL batch manifest",
		Args:  wrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			results := batch.Run(cmd.Context(), m)
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "%-30s FAILED: %v\n", r.Job, r.Err)
					continue
				}
				fmt.Fprintf(out, "%-30s %15.10f Eh\n", r.Job, r.Total)
			}
			if argReport != "" {
				f, err := os.Create(argReport)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := batch.Report(f, results); err != nil {
					return err
				}
			}
			if n := batch.Failed(results); n > 0 {
				return errors.Errorf("%d of %d jobs failed", n, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&argReport, "report", "", "Also write a JSON report to `FILE`")

	argparser.AddCommand(cmd)
}
