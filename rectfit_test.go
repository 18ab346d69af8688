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

func squarePolygon(x0, y0, x1, y1 float64) Polygon {
	return Polygon{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

func TestFitRectsFromPolygonsSingleSquare(t *testing.T) {
	shape := []Polygon{squarePolygon(0, 0, 4, 4)}
	rects := FitRectsFromPolygons(shape)

	if len(rects) != 1 {
		t.Fatalf("FitRectsFromPolygons = %v, want 1 rectangle", rects)
	}
	r := rects[0]
	if r.LLx != 0 || r.LLy != 0 || r.URx != 4 || r.URy != 4 {
		t.Errorf("rect = %+v, want the full 0,0-4,4 bounding box", r)
	}
}

func TestFitRectsFromPolygonsLShape(t *testing.T) {
	// an L made of two abutting rectangles should fit within its bounding
	// box without any single emitted rectangle overshooting it.
	shape := []Polygon{
		squarePolygon(0, 0, 4, 4),
		squarePolygon(4, 0, 8, 2),
	}
	rects := FitRectsFromPolygons(shape)
	if len(rects) == 0 {
		t.Fatal("FitRectsFromPolygons returned no rectangles for an L shape")
	}
	for _, r := range rects {
		if r.LLx < 0 || r.LLy < 0 || r.URx > 8 || r.URy > 4 {
			t.Errorf("rect %+v exceeds the shape's bounding box", r)
		}
	}
}

func TestUnionTwoRectsAdjacentHorizontally(t *testing.T) {
	r1 := Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}
	r2 := Rect{LLx: 2, LLy: 0, URx: 4, URy: 2}
	u, ok := unionTwoRects(r1, r2)
	if !ok {
		t.Fatal("expected adjacent same-height rects to union")
	}
	if u.LLx != 0 || u.URx != 4 || u.LLy != 0 || u.URy != 2 {
		t.Errorf("union = %+v, want {0 0 4 2}", u)
	}
}

func TestUnionTwoRectsDisjoint(t *testing.T) {
	r1 := Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	r2 := Rect{LLx: 5, LLy: 5, URx: 6, URy: 6}
	if _, ok := unionTwoRects(r1, r2); ok {
		t.Error("disjoint rects should not union")
	}
}

func TestPolygonBoundingRect(t *testing.T) {
	shape := []Polygon{squarePolygon(-1, 2, 3, 5)}
	r := polygonBoundingRect(shape)
	if r.LLx != -1 || r.LLy != 2 || r.URx != 3 || r.URy != 5 {
		t.Errorf("polygonBoundingRect = %+v, want {-1 2 3 5}", r)
	}
}
