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

package density

import "testing"

func TestFindLocalMaximaSinglePeak(t *testing.T) {
	data := []float32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	g := NewGrid(3, 3, data)
	got := findLocalMaxima(g)
	if len(got) != 1 || got[0] != (point2D{1, 1}) {
		t.Fatalf("findLocalMaxima = %v, want [{1 1}]", got)
	}
}

func TestFindLocalMaximaExcludesBorder(t *testing.T) {
	data := []float32{
		5, 0, 0,
		0, 0, 0,
		0, 0, 5,
	}
	g := NewGrid(3, 3, data)
	got := findLocalMaxima(g)
	if len(got) != 0 {
		t.Errorf("findLocalMaxima = %v, want none (corners are never interior)", got)
	}
}

func TestFindLocalMaximaPlateau(t *testing.T) {
	data := []float32{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}
	g := NewGrid(4, 3, data)
	got := findLocalMaxima(g)
	if len(got) != 0 {
		t.Errorf("findLocalMaxima = %v, want none for a flat plateau", got)
	}
}

func TestFindLocalMaximaTooSmall(t *testing.T) {
	g := NewGrid(2, 5, make([]float32, 10))
	if got := findLocalMaxima(g); got != nil {
		t.Errorf("findLocalMaxima on a 2-wide grid = %v, want nil", got)
	}
}

func TestFindLocalMaximaTwoPeaks(t *testing.T) {
	data := []float32{
		0, 0, 0, 0, 0,
		0, 3, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 5, 0,
		0, 0, 0, 0, 0,
	}
	g := NewGrid(5, 5, data)
	got := findLocalMaxima(g)
	if len(got) != 2 {
		t.Fatalf("findLocalMaxima = %v, want 2 peaks", got)
	}
}
