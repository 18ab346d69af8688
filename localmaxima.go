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

// findLocalMaxima returns every interior pixel of density that is
// strictly greater than each of its four axis-aligned neighbours.
// Plateaus produce no maxima, and grids narrower or shorter than 3
// pixels produce none either, since they have no interior pixels.
//
// The scan keeps a rolling window of the row above/below the current
// row so each sample is read once, mirroring the source's column-wise
// sliding window over p01..p22.
func findLocalMaxima(densityMap *Grid[float32]) []point2D {
	var result []point2D

	w, h := densityMap.Width(), densityMap.Height()
	if w < 3 || h < 3 {
		return result
	}

	for y := 1; y < h-1; y++ {
		p02 := densityMap.At(1, y-1)
		p11 := densityMap.At(0, y)
		p12 := densityMap.At(1, y)
		p22 := densityMap.At(1, y+1)
		for x := 1; x < w-1; x++ {
			p01 := p02
			p02 = densityMap.At(x+1, y-1)
			p10 := p11
			p11 = p12
			p12 = densityMap.At(x+1, y)
			p21 := p22
			p22 = densityMap.At(x+1, y+1)

			if p11 > p01 && p11 > p21 && p11 > p10 && p11 > p12 {
				result = append(result, point2D{int32(x), int32(y)})
			}
		}
	}
	return result
}
