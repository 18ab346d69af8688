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

func TestDisjointSetUnionFind(t *testing.T) {
	ds := NewDisjointSet(5)
	if got := ds.NumUniqueSets(); got != 5 {
		t.Fatalf("NumUniqueSets() = %d, want 5", got)
	}

	ds.Union(0, 1)
	ds.Union(1, 2)
	if ds.Find(0) != ds.Find(2) {
		t.Error("0 and 2 should be in the same set after unioning through 1")
	}
	if ds.Find(3) == ds.Find(0) {
		t.Error("3 should not be in the same set as 0")
	}
	if got := ds.NumUniqueSets(); got != 3 {
		t.Errorf("NumUniqueSets() = %d, want 3", got)
	}
}

func TestDisjointSet2D3x3(t *testing.T) {
	ds := NewDisjointSet2D(3, 3)
	if got := ds.NumUniqueSets(); got != 9 {
		t.Fatalf("NumUniqueSets() = %d, want 9", got)
	}

	ds.Union(point2D{0, 0}, point2D{1, 0})
	ds.Union(point2D{1, 0}, point2D{2, 0})
	ds.Union(point2D{0, 1}, point2D{0, 2})

	if ds.Find(point2D{0, 0}) != ds.Find(point2D{2, 0}) {
		t.Error("row 0 should be one connected set")
	}
	if ds.Find(point2D{0, 1}) != ds.Find(point2D{0, 2}) {
		t.Error("(0,1) and (0,2) should be in the same set")
	}
	if ds.Find(point2D{0, 0}) == ds.Find(point2D{0, 1}) {
		t.Error("row 0 and column 0 rows 1-2 should not be unioned")
	}
	if got := ds.NumUniqueSets(); got != 6 {
		t.Errorf("NumUniqueSets() = %d, want 6", got)
	}
}
