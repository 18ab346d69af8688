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

import "math"

// solve2Equations solves the 2x2 linear system
//
//	a*s1 + b*s2 = -s3  (as n1*(...) form below)
//
// using the same closed-form Cramer's-rule expression as the source,
// for the two-variable least-squares normal equations of planeFit.
func solve2Equations(s1, s2, s3, n1, n2, n3 float64) (a, b float64) {
	a = (n3*s2 - n2*s3) / (n2*s1 - n1*s2)
	b = (n1*s3 - n3*s1) / (n2*s1 - n1*s2)
	return a, b
}

// estimateDensityCutoffPlane fits h(x,y) = a*x + b*y + c to the
// boundary samples in the least-squares sense for (a,b), then chooses c
// as the smallest value that makes h(x,y) >= sample height for every
// sample — a conservative upper bound of the boundary, not a best fit
// of c. If the 2x2 system is singular or produces a non-finite result,
// a and b fall back to 0. An empty boundary returns (0,0,0).
func estimateDensityCutoffPlane(boundary []edgePixel) (a, b, c float64) {
	if len(boundary) == 0 {
		return 0, 0, 0
	}

	n := float64(len(boundary))
	var sumX, sumY, sumH, sumXX, sumYY, sumXY, sumHX, sumHY float64
	for _, p := range boundary {
		xf, yf, hf := float64(p.X), float64(p.Y), float64(p.Density)
		sumX += xf
		sumY += yf
		sumH += hf
		sumXX += xf * xf
		sumYY += yf * yf
		sumXY += xf * yf
		sumHX += hf * xf
		sumHY += hf * yf
	}
	sumX /= n
	sumY /= n
	sumH /= n
	sumXX /= n
	sumYY /= n
	sumXY /= n
	sumHX /= n
	sumHY /= n

	sa1 := sumXX - sumX*sumX
	sb1 := sumXY - sumX*sumY
	sc1 := sumX*sumH - sumHX
	sa2 := sumXY - sumX*sumY
	sb2 := sumYY - sumY*sumY
	sc2 := sumY*sumH - sumHY

	a, b = solve2Equations(sa1, sb1, sc1, sa2, sb2, sc2)
	if math.IsInf(a, 0) || math.IsNaN(a) || math.IsInf(b, 0) || math.IsNaN(b) {
		a, b = 0, 0
	}

	c = math.Inf(-1)
	for _, p := range boundary {
		xf, yf, hf := float64(p.X), float64(p.Y), float64(p.Density)
		v := hf - a*xf - b*yf
		if v > c {
			c = v
		}
	}
	return a, b, c
}
