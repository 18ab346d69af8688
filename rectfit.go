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

	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned rectangle, the teacher's own
// seehuhn.de/go/geom/rect.Rect: LLx <= URx, LLy <= URy.
type Rect = rect.Rect

const rectFitMaxLevel = 11

// polygonBoundingRect returns the axis-aligned bounding box of every
// vertex of every polygon in shape.
func polygonBoundingRect(shape []Polygon) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range shape {
		for _, v := range poly {
			minX = math.Min(minX, v.X)
			minY = math.Min(minY, v.Y)
			maxX = math.Max(maxX, v.X)
			maxY = math.Max(maxY, v.Y)
		}
	}
	return Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY}
}

// polygonRectOverlappingArea returns the area where polygon overlaps
// rect, via a shoelace-style sum over edges clamped to rect. This
// accepts both convex and non-convex polygons; the signed area is
// taken in absolute value and halved.
func polygonRectOverlappingArea(polygon Polygon, r Rect) float64 {
	var sum float64
	n := len(polygon)
	for i := 0; i < n; i++ {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]
		x1 := clampF(p1.X, r.LLx, r.URx)
		y1 := clampF(p1.Y, r.LLy, r.URy)
		x2 := clampF(p2.X, r.LLx, r.URx)
		y2 := clampF(p2.Y, r.LLy, r.URy)
		sum += x1*y2 - x2*y1
	}
	return math.Abs(sum) / 2
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rectsFromMultiPolygonRecursion recursively bisects rect, emitting it
// (and returning true, "covered") when the shape covers more than 98%
// of its area, skipping it (returning false, "empty") when it covers
// at most 2%, and otherwise splitting along the axis alternated by
// level (even: vertical split, odd: horizontal split) and recursing.
// If both halves come back covered, their output is rewound and the
// parent rect is emitted whole instead. Past rectFitMaxLevel+1 levels
// of recursion the rect is always treated as covered, bounding the
// recursion depth.
func rectsFromMultiPolygonRecursion(shape []Polygon, r Rect, level int, output *[]Rect) bool {
	var intersection float64
	for _, poly := range shape {
		intersection += polygonRectOverlappingArea(poly, r)
	}
	area := (r.URx - r.LLx) * (r.URy - r.LLy)

	switch {
	case intersection > area*0.98:
		*output = append(*output, r)
		return true
	case intersection <= area*0.02:
		return false
	case level <= rectFitMaxLevel:
		var r1, r2 Rect
		if level%2 == 0 {
			mid := (r.LLx + r.URx) / 2
			r1 = Rect{LLx: r.LLx, LLy: r.LLy, URx: mid, URy: r.URy}
			r2 = Rect{LLx: mid, LLy: r.LLy, URx: r.URx, URy: r.URy}
		} else {
			mid := (r.LLy + r.URy) / 2
			r1 = Rect{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: mid}
			r2 = Rect{LLx: r.LLx, LLy: mid, URx: r.URx, URy: r.URy}
		}
		count := len(*output)
		covered1 := rectsFromMultiPolygonRecursion(shape, r1, level+1, output)
		covered2 := rectsFromMultiPolygonRecursion(shape, r2, level+1, output)
		if covered1 && covered2 {
			*output = (*output)[:count]
			*output = append(*output, r)
			return true
		}
		return false
	default:
		return true
	}
}

// unionTwoRects returns the union of r1 and r2 when they share a full
// edge (matching x-edges with touching y-ranges, or matching y-edges
// with touching x-ranges), or ok=false otherwise.
func unionTwoRects(r1, r2 Rect) (Rect, bool) {
	if r1.LLx == r2.LLx && r1.URx == r2.URx {
		if r1.URy == r2.LLy {
			return Rect{LLx: r1.LLx, LLy: r1.LLy, URx: r1.URx, URy: r2.URy}, true
		}
		if r2.URy == r1.LLy {
			return Rect{LLx: r1.LLx, LLy: r2.LLy, URx: r1.URx, URy: r1.URy}, true
		}
	} else if r1.LLy == r2.LLy && r1.URy == r2.URy {
		if r1.URx == r2.LLx {
			return Rect{LLx: r1.LLx, LLy: r1.LLy, URx: r2.URx, URy: r1.URy}, true
		}
		if r2.URx == r1.LLx {
			return Rect{LLx: r2.LLx, LLy: r1.LLy, URx: r1.URx, URy: r1.URy}, true
		}
	}
	return Rect{}, false
}

// FitRectsFromPolygons approximates a multi-polygon shape with a set of
// axis-aligned rectangles: recursive bounding-box bisection down to
// depth 11 with accept/reject by coverage, followed by greedy
// colinear-rect merging. The emitted rectangles are pairwise
// interior-disjoint and their union is contained in the shape's
// bounding box.
func FitRectsFromPolygons(shape []Polygon) []Rect {
	var rects []Rect
	boundingRect := polygonBoundingRect(shape)
	rectsFromMultiPolygonRecursion(shape, boundingRect, 0, &rects)

	for {
		didUnion := false
	outer:
		for i1 := 0; i1 < len(rects); i1++ {
			for i2 := i1 + 1; i2 < len(rects); i2++ {
				if r, ok := unionTwoRects(rects[i1], rects[i2]); ok {
					rects = append(rects[:i2], rects[i2+1:]...)
					rects = append(rects[:i1], rects[i1+1:]...)
					rects = append(rects, r)
					didUnion = true
					break outer
				}
			}
		}
		if !didUnion {
			break
		}
	}

	return rects
}
