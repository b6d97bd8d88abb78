/*
 * util_test.go, part of godftd4.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/godftd4/damping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParam(t *testing.T) {
	_, err := resolveParam("", "")
	require.Error(t, err)
	_, err = resolveParam("tpssh", "params.toml")
	require.Error(t, err)

	p, err := resolveParam("tpssh", "")
	require.NoError(t, err)
	assert.InDelta(t, 1.85897750, p.S8, 1e-12)

	ref, err := damping.Get("tpssh")
	require.NoError(t, err)
	assert.Equal(t, ref, p)

	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("s8 = 1.5\na1 = 0.4\na2 = 4.5\n"), 0o644))
	p, err = resolveParam("", path)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, p.S8, 1e-12)
	assert.InDelta(t, 1.0, p.S6, 1e-12) //layered default
}
