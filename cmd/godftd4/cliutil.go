/*
 * cliutil.go, part of godftd4.
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
	"strings"

	"github.com/spf13/cobra"
)

//onlySubcommands is a cobra.PositionalArgs similar to cobra.NoArgs,
//but with a friendlier error message.
func onlySubcommands(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		err := fmt.Errorf("invalid subcommand %q", args[0])
		if cmd.SuggestionsMinimumDistance <= 0 {
			cmd.SuggestionsMinimumDistance = 2
		}
		if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
			err = fmt.Errorf("%w\nDid you mean one of these?\n\t%s", err, strings.Join(suggestions, "\n\t"))
		}
		return cmd.FlagErrorFunc()(cmd, err)
	}
	return nil
}

//wrapPositionalArgs passes the errors of a cobra.PositionalArgs
//through the FlagErrorFunc, for consistent bad-usage reporting.
func wrapPositionalArgs(inner cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return flagErrorFunc(cmd, inner(cmd, args))
	}
}

//runSubcommands is a cobra.Command.RunE for commands that only exist
//to hold subcommands. Running them bare is a usage error.
func runSubcommands(cmd *cobra.Command, args []string) error {
	cmd.SetOutput(cmd.ErrOrStderr())
	cmd.HelpFunc()(cmd, args)
	os.Exit(2)
	return nil
}

//flagErrorFunc gives GNU-ish behavior for invalid usage: it prints the
//error with a "See --help" line and exits with status 2, so the errors
//that reach main are execution errors only.
func flagErrorFunc(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	errStr := strings.TrimRight(err.Error(), "\n")
	if strings.Contains(errStr, "\n") {
		errStr += "\n"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\nSee '%s --help' for more information.\n",
		cmd.CommandPath(), errStr, cmd.CommandPath())
	os.Exit(2)
	return nil
}
