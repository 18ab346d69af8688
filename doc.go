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

// Package density segments a dense 2D scalar raster into labelled
// clusters that approximate its high-density regions.
//
// The pipeline is: seeded watershed-style region growth from local
// maxima, a mutable cluster adjacency graph with distance- and
// density-driven merges, a tilted-plane threshold fit that prunes the
// low-density fringe of each surviving cluster, and a contour tracer
// that extracts outer boundaries for the final label map. Polygon
// smoothing and axis-aligned rectangle fitting are provided as
// secondary post-processing steps over the traced boundaries.
//
// The package is synchronous and holds no state between calls: each
// call to FindClusters owns its own working grid, disjoint-set, and
// cluster graph, and is safe to call concurrently with other calls
// operating on distinct inputs.
package density
