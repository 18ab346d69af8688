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

// DisjointSet is a union-find structure over the integers [0,n). find
// uses path compression; union has no rank heuristic and always
// attaches the root of a under the root of b.
type DisjointSet struct {
	parent []int32
}

// NewDisjointSet returns a DisjointSet over n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	return &DisjointSet{parent: parent}
}

// Find returns the root of index's set, compressing the path to it.
// Implemented iteratively (the source's recursive find_parent is
// bounded only by how much path compression has converged, which is
// not safe to rely on for arbitrarily large grids).
func (d *DisjointSet) Find(index int32) int32 {
	root := index
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for index != root {
		next := d.parent[index]
		d.parent[index] = root
		index = next
	}
	return root
}

// Union attaches the root of index1 under the root of index2.
func (d *DisjointSet) Union(index1, index2 int32) {
	p1 := d.Find(index1)
	p2 := d.Find(index2)
	d.parent[p1] = p2
}

// NumUniqueSets counts indices that are their own root.
func (d *DisjointSet) NumUniqueSets() int {
	count := 0
	for i, p := range d.parent {
		if int(p) == i {
			count++
		}
	}
	return count
}

// point2D is a coordinate pair, used as the element type of
// DisjointSet2D's parent grid.
type point2D struct {
	X, Y int32
}

// DisjointSet2D is the same union-find algorithm as DisjointSet, keyed
// by (x,y) coordinate pairs instead of a flat index.
type DisjointSet2D struct {
	parent *Grid[point2D]
}

// NewDisjointSet2D returns a DisjointSet2D over every cell of a
// width×height grid, each initially its own singleton set.
func NewDisjointSet2D(width, height int) *DisjointSet2D {
	parent := NewGridZero[point2D](width, height)
	for x, y := range parent.Coords {
		parent.Set(x, y, point2D{int32(x), int32(y)})
	}
	return &DisjointSet2D{parent: parent}
}

// Find returns the root of location's set, compressing the path to it.
func (d *DisjointSet2D) Find(location point2D) point2D {
	root := location
	for {
		p := d.parent.At(int(root.X), int(root.Y))
		if p == root {
			break
		}
		root = p
	}
	for location != root {
		next := d.parent.At(int(location.X), int(location.Y))
		d.parent.Set(int(location.X), int(location.Y), root)
		location = next
	}
	return root
}

// Union attaches the root of location1 under the root of location2.
func (d *DisjointSet2D) Union(location1, location2 point2D) {
	p1 := d.Find(location1)
	p2 := d.Find(location2)
	d.parent.Set(int(p1.X), int(p1.Y), p2)
}

// NumUniqueSets counts cells that are their own root.
func (d *DisjointSet2D) NumUniqueSets() int {
	count := 0
	for x, y := range d.parent.Coords {
		if d.parent.At(x, y) == (point2D{int32(x), int32(y)}) {
			count++
		}
	}
	return count
}
