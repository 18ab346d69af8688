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

package rasterio

import (
	"path/filepath"
	"testing"

	"seehuhn.de/go/density"
)

func TestFloat32GridRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "density.bin")

	grid := density.NewGrid(3, 2, []float32{1.5, -2.25, 0, 4, 100.125, -0.5})
	if err := WriteFloat32Grid(path, grid); err != nil {
		t.Fatalf("WriteFloat32Grid: %v", err)
	}

	got, err := ReadFloat32Grid(path, 3, 2)
	if err != nil {
		t.Fatalf("ReadFloat32Grid: %v", err)
	}
	for x, y := range grid.Coords {
		if got.At(x, y) != grid.At(x, y) {
			t.Errorf("At(%d,%d) = %v, want %v", x, y, got.At(x, y), grid.At(x, y))
		}
	}
}

func TestInt32GridRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.bin")

	grid := density.NewGrid(2, 2, []int32{-1, 0, 7, -1})
	if err := WriteInt32Grid(path, grid); err != nil {
		t.Fatalf("WriteInt32Grid: %v", err)
	}

	got, err := ReadInt32Grid(path, 2, 2)
	if err != nil {
		t.Fatalf("ReadInt32Grid: %v", err)
	}
	for x, y := range grid.Coords {
		if got.At(x, y) != grid.At(x, y) {
			t.Errorf("At(%d,%d) = %v, want %v", x, y, got.At(x, y), grid.At(x, y))
		}
	}
}

func TestReadFloat32GridTruncatedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.bin")
	grid := density.NewGrid(2, 2, []float32{1, 2, 3, 4})
	if err := WriteFloat32Grid(path, grid); err != nil {
		t.Fatalf("WriteFloat32Grid: %v", err)
	}

	if _, err := ReadFloat32Grid(path, 3, 3); err == nil {
		t.Error("expected an error reading a raster larger than the file on disk")
	}
}
