/*
 * main.go, part of godftd4.
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

//Command godftd4 computes DFT-D4 dispersion corrections for molecular
//geometries.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var argparser = &cobra.Command{
	Use:   "godftd4 {[flags]|SUBCOMMAND...}",
	Short: "Compute DFT-D4 dispersion corrections",

	Args: onlySubcommands,
	RunE: runSubcommands,

	SilenceErrors: true, //main() handles them after ExecuteContext returns
	SilenceUsage:  true, //the FlagErrorFunc handles usage
}

func init() {
	argparser.SetFlagErrorFunc(flagErrorFunc)
}

func main() {
	ctx := context.Background()
	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
