/*
 * cache.go, part of godftd4.
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

/*Package cache is a small content-addressed disk cache for the
pairwise reference-C6 tables of the dispersion model. Entries are
NumPy arrays, stored either plain (.npy) or zstd-compressed
(.npy.zst), keyed by a hash of the species, the frequency grid and
the library version, so stale entries are never picked up.
*/
package cache

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

//Sentinel errors of the cache. A miss just means the entry has to be
//computed, a corrupted entry additionally hints at a damaged cache
//directory. Neither is ever silently ignored by Load.
var (
	ErrMiss      = errors.New("cache: no entry for key")
	ErrCorrupted = errors.New("cache: entry corrupted")
)

//Key returns the content hash naming a reference-C6 table: it covers
//the species the table spans, the frequency grid the polarizabilities
//were integrated on and the library version that produced it.
func Key(species []int, freq []float64, version string) string {
	h := xxhash.New()
	for _, z := range species {
		binary.Write(h, binary.LittleEndian, int64(z))
	}
	for _, w := range freq {
		binary.Write(h, binary.LittleEndian, w)
	}
	h.WriteString(version)
	return fmt.Sprintf("%016x", h.Sum64())
}

//Path returns the file an entry with the given key lives in, in plain
//or compressed form.
func Path(dir, key string, compressed bool) string {
	name := "c6ref-" + key + ".npy"
	if compressed {
		name += ".zst"
	}
	return filepath.Join(dir, name)
}

//Store writes the matrix under the given key, creating dir if needed.
//With compress, the entry is zstd-compressed.
func Store(dir, key string, m *mat.Dense, compress bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "cache: creating the cache directory")
	}
	path := Path(dir, key, compress)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cache: creating the entry")
	}
	defer f.Close()
	if !compress {
		if err := npyio.Write(f, m); err != nil {
			os.Remove(path)
			return errors.Wrap(err, "cache: writing the entry")
		}
		return nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		os.Remove(path)
		return errors.Wrap(err, "cache: starting the compressor")
	}
	if err := npyio.Write(enc, m); err != nil {
		enc.Close()
		os.Remove(path)
		return errors.Wrap(err, "cache: writing the entry")
	}
	if err := enc.Close(); err != nil {
		os.Remove(path)
		return errors.Wrap(err, "cache: flushing the entry")
	}
	return nil
}

//Load retrieves the entry for the given key, trying the plain file
//first and the compressed one second. rows and cols are the expected
//dimensions; an entry that cannot be parsed or has a different shape
//is reported as ErrCorrupted, a missing one as ErrMiss.
func Load(dir, key string, rows, cols int) (*mat.Dense, error) {
	if m, err := loadPlain(Path(dir, key, false), rows, cols); !errors.Is(err, ErrMiss) {
		return m, err
	}
	return loadCompressed(Path(dir, key, true), rows, cols)
}

func loadPlain(path string, rows, cols int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrMiss, path)
		}
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", path, err)
	}
	defer f.Close()
	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", path, err)
	}
	return checkShape(&m, path, rows, cols)
}

func loadCompressed(path string, rows, cols int) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrMiss, path)
		}
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", path, err)
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", path, err)
	}
	defer dec.Close()
	var m mat.Dense
	if err := npyio.Read(dec, &m); err != nil {
		return nil, errors.Wrapf(ErrCorrupted, "%s: %v", path, err)
	}
	return checkShape(&m, path, rows, cols)
}

func checkShape(m *mat.Dense, path string, rows, cols int) (*mat.Dense, error) {
	if r, c := m.Dims(); r != rows || c != cols {
		return nil, errors.Wrapf(ErrCorrupted, "%s: entry is %dx%d, want %dx%d", path, r, c, rows, cols)
	}
	return m, nil
}
