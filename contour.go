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
	"sort"

	"seehuhn.de/go/geom/vec"
)

// Vertex is a single polygon vertex. It is the teacher's own
// seehuhn.de/go/geom/vec.Vec2, reused as-is rather than reinvented:
// every contour, smoothed polygon, and rectangle corner in this
// package is a vec.Vec2 (or built from rect.Rect).
type Vertex = vec.Vec2

// Polygon is an ordered, closed sequence of vertices; the last vertex
// is not repeated.
type Polygon []Vertex

// contourReadOffsets and contourSearchDirections implement the
// Moore-neighbour-style outer contour walk: at each step the walker
// tries the four directions starting at start_direction, reading the
// pixel at position+contourReadOffsets[d] and, on a match, moving by
// contourSearchDirections[d].
var (
	contourReadOffsets      = [4]point2D{{0, -1}, {0, 0}, {-1, 0}, {-1, -1}}
	contourSearchDirections = [4]point2D{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// traceOuterContour walks the outer boundary of the connected component
// containing start whose value equals labels.At(start). The returned
// vertices are pixel-corner coordinates, so the polygon strictly
// contains the component's pixels.
func traceOuterContour(start point2D, labels *Grid[int32]) []point2D {
	w, h := labels.Width(), labels.Height()
	inner := labels.At(int(start.X), int(start.Y))

	result := []point2D{start}

	location := start
	startDirection := 0
	for {
		lx, ly := location.X, location.Y
		for j := 0; j < 4; j++ {
			d := (startDirection + j) & 3
			v := contourReadOffsets[d]
			rx, ry := lx+v.X, ly+v.Y
			if rx < 0 || int(rx) >= w || ry < 0 || int(ry) >= h {
				continue
			}
			if labels.At(int(rx), int(ry)) == inner {
				sd := contourSearchDirections[d]
				location = point2D{lx + sd.X, ly + sd.Y}
				startDirection = (d + 3) & 3
				break
			}
		}
		if location == start {
			break
		}
		result = append(result, location)
	}
	return result
}

// fillContour performs a scan-line fill of contour's interior into
// mask, setting every covered cell to value. It assumes every
// non-horizontal edge of contour is vertical, which holds for any
// contour returned by traceOuterContour but is undefined for arbitrary
// polygons.
func fillContour(mask *Grid[bool], contour []point2D, value bool) {
	edgesByRow := make(map[int32][]int32)

	for i := range contour {
		p1 := contour[i]
		p2 := contour[(i+1)%len(contour)]
		if p1.Y != p2.Y {
			x := p1.X
			yMin, yMax := p1.Y, p2.Y
			if yMin > yMax {
				yMin, yMax = yMax, yMin
			}
			for y := yMin; y < yMax; y++ {
				edgesByRow[y] = append(edgesByRow[y], x)
			}
		}
	}

	for y, xs := range edgesByRow {
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		inside := false
		var currentX int32
		for _, x := range xs {
			inside = !inside
			if inside {
				currentX = x
			} else {
				for i := currentX; i < x; i++ {
					mask.Set(int(i), int(y), value)
				}
			}
		}
	}
}

// TraceAllOuterContours traces the outer contour of every labelled
// component of labels (labels.At(x,y) >= 0), grouped by label. Each
// traced component is masked out before the scan continues, so a
// multiply-connected label produces one polygon per connected
// component under that label.
func TraceAllOuterContours(labels *Grid[int32]) map[int32][]Polygon {
	w, h := labels.Width(), labels.Height()
	result := make(map[int32][]Polygon)
	mask := NewGridWithConstant[bool](w, h, true)

	for x, y := range labels.Coords {
		v := labels.At(x, y)
		if v >= 0 && mask.At(x, y) {
			contour := traceOuterContour(point2D{int32(x), int32(y)}, labels)
			fillContour(mask, contour, false)

			poly := make(Polygon, len(contour))
			for i, p := range contour {
				poly[i] = Vertex{X: float64(p.X), Y: float64(p.Y)}
			}
			result[v] = append(result[v], poly)
		}
	}

	return result
}
