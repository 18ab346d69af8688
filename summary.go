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

// ClusterSummary accumulates the statistics of one cluster of pixels:
// its pixel count, the raw and weighted density sums needed to recover
// a density-weighted centroid, and its peak density and location.
//
// The zero value is not a valid summary to report to a caller — it
// becomes valid only after at least one call to update or
// updateWithSummary, at which point num_pixels becomes >= 1.
type ClusterSummary struct {
	NumPixels          int      `json:"num_pixels" yaml:"num_pixels"`
	SumDensity         float32  `json:"sum_density" yaml:"sum_density"`
	SumXDensity        float32  `json:"sum_x_density" yaml:"sum_x_density"`
	SumYDensity        float32  `json:"sum_y_density" yaml:"sum_y_density"`
	MaxDensity         float32  `json:"max_density" yaml:"max_density"`
	MaxDensityLocation [2]int32 `json:"max_density_location" yaml:"max_density_location"`
}

// zeroClusterSummary returns a summary ready to receive updates, with
// max_density_location set to the sentinel (-1,-1) used by the source
// before any pixel has been seen.
func zeroClusterSummary() ClusterSummary {
	return ClusterSummary{MaxDensityLocation: [2]int32{-1, -1}}
}

// update folds a single (location, density) sample into the summary.
func (s *ClusterSummary) update(location point2D, density float32) {
	if density > s.MaxDensity {
		s.MaxDensity = density
		s.MaxDensityLocation = [2]int32{location.X, location.Y}
	}
	s.SumDensity += density
	s.SumXDensity += density * float32(location.X)
	s.SumYDensity += density * float32(location.Y)
	s.NumPixels++
}

// updateWithSummary merges other into s. Merging is associative and
// commutative except for max_density_location: on a tie, the side
// merged in second (here, other) only wins if its max is strictly
// greater, so the first-discovered location is preferred on ties.
func (s *ClusterSummary) updateWithSummary(other ClusterSummary) {
	if other.MaxDensity > s.MaxDensity {
		s.MaxDensity = other.MaxDensity
		s.MaxDensityLocation = other.MaxDensityLocation
	}
	s.SumDensity += other.SumDensity
	s.SumXDensity += other.SumXDensity
	s.SumYDensity += other.SumYDensity
	s.NumPixels += other.NumPixels
}

// Centroid returns the density-weighted centroid of the cluster. It is
// only meaningful when SumDensity > 0.
func (s ClusterSummary) Centroid() (x, y float64) {
	if s.SumDensity == 0 {
		return 0, 0
	}
	return float64(s.SumXDensity / s.SumDensity), float64(s.SumYDensity / s.SumDensity)
}

// edgePixel is one raster cell on the border between two clusters,
// viewed from one side.
type edgePixel struct {
	X, Y    int32
	Density float32
}

// edgeSummary is the border state between an ordered pair of clusters
// (from,to): every pixel on the "from" side of the border, and the
// largest density seen among them. Both directions of a border are
// stored as distinct edgeSummary values, since their pixel lists and
// (generally) their maxima differ.
type edgeSummary struct {
	MaxDensity float32
	Pixels     []edgePixel
}

// updateWithPixel folds a single border pixel into the summary.
func (e *edgeSummary) updateWithPixel(location point2D, density float32) {
	if density > e.MaxDensity {
		e.MaxDensity = density
	}
	e.Pixels = append(e.Pixels, edgePixel{location.X, location.Y, density})
}

// merge folds other into e: component-wise max on MaxDensity,
// concatenation on Pixels.
func (e *edgeSummary) merge(other edgeSummary) {
	if other.MaxDensity > e.MaxDensity {
		e.MaxDensity = other.MaxDensity
	}
	e.Pixels = append(e.Pixels, other.Pixels...)
}
