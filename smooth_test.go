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

import (
	"math"
	"testing"
)

func TestLowpassFIRFilterNormalised(t *testing.T) {
	taps := lowpassFIRFilter(smoothingSampleRate, smoothingCutoffFrequency, smoothingFilterLength)
	if len(taps) != smoothingFilterLength {
		t.Fatalf("len(taps) = %d, want %d", len(taps), smoothingFilterLength)
	}
	var sum float64
	for _, c := range taps {
		sum += c
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("tap sum = %v, want 1", sum)
	}
}

func TestSmoothPolygonPreservesLength(t *testing.T) {
	poly := Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	smoothed := SmoothPolygon(poly)
	if len(smoothed) != len(poly) {
		t.Fatalf("len(smoothed) = %d, want %d", len(smoothed), len(poly))
	}
}

func TestSmoothPolygonEmpty(t *testing.T) {
	if got := SmoothPolygon(nil); len(got) != 0 {
		t.Errorf("SmoothPolygon(nil) = %v, want empty", got)
	}
}

func TestSmoothPolygonIsLinear(t *testing.T) {
	poly := Polygon{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: -1}, {X: 1, Y: 3}}
	translated := make(Polygon, len(poly))
	for i, v := range poly {
		translated[i] = Vertex{X: v.X + 10, Y: v.Y - 5}
	}

	a := SmoothPolygon(poly)
	b := SmoothPolygon(translated)

	for i := range a {
		dx := b[i].X - a[i].X
		dy := b[i].Y - a[i].Y
		if math.Abs(dx-10) > 1e-9 || math.Abs(dy+5) > 1e-9 {
			t.Errorf("vertex %d: translation not preserved, got (%v,%v)", i, dx, dy)
		}
	}
}
