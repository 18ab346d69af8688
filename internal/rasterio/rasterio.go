// seehuhn.de/go/density - 2D density-map clustering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rasterio reads and writes the raw little-endian raster
// format that density.Grid's external collaborators exchange: W*H
// values, row-major, with no header. This is the external "raw binary
// raster I/O" collaborator named in spec.md; the core density package
// never touches a filesystem.
package rasterio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"seehuhn.de/go/density"
)

// ReadFloat32Grid reads a width*height*4-byte little-endian float32
// raster from path.
func ReadFloat32Grid(path string, width, height int) (*density.Grid[float32], error) {
	raw, err := readExact(path, width*height*4)
	if err != nil {
		return nil, err
	}
	data := make([]float32, width*height)
	for i := range data {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		data[i] = math.Float32frombits(bits)
	}
	return density.NewGrid(width, height, data), nil
}

// WriteFloat32Grid writes grid as a little-endian float32 raster.
func WriteFloat32Grid(path string, grid *density.Grid[float32]) error {
	data := grid.Data()
	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	return os.WriteFile(path, raw, 0o644)
}

// ReadInt32Grid reads a width*height*4-byte little-endian int32 raster
// from path.
func ReadInt32Grid(path string, width, height int) (*density.Grid[int32], error) {
	raw, err := readExact(path, width*height*4)
	if err != nil {
		return nil, err
	}
	data := make([]int32, width*height)
	for i := range data {
		data[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return density.NewGrid(width, height, data), nil
}

// WriteInt32Grid writes grid as a little-endian int32 raster, e.g. a
// label map produced by density.FindClusters.
func WriteInt32Grid(path string, grid *density.Grid[int32]) error {
	data := grid.Data()
	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	return os.WriteFile(path, raw, 0o644)
}

func readExact(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buf, nil
}
