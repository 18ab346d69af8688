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

const (
	smoothingFilterLength    = 59
	smoothingSampleRate      = 1.0
	smoothingCutoffFrequency = 0.05
)

// sinc is the normalised sinc function, sin(pi*x)/(pi*x), with the
// removable singularity at x=0 resolved to 1.
func sinc(x float64) float64 {
	if x != 0 {
		return math.Sin(x*math.Pi) / (x * math.Pi)
	}
	return 1
}

// blackman evaluates the Blackman window at tap i of a window of the
// given length.
func blackman(i, length int) float64 {
	p := float64(i) / float64(length-1) * math.Pi * 2
	return 0.42 - 0.5*math.Cos(p) + 0.08*math.Cos(p*2)
}

// lowpassFIRFilter builds a length-tap low-pass FIR filter via a
// Blackman-windowed sinc, normalised to unit sum.
func lowpassFIRFilter(sampleRate, cutoffFrequency float64, length int) []float64 {
	taps := make([]float64, length)
	var sum float64
	for i := range taps {
		t := float64(i) - float64(length-1)/2
		taps[i] = sinc(2*cutoffFrequency*t/sampleRate) * blackman(i, length)
		sum += taps[i]
	}
	for i := range taps {
		taps[i] /= sum
	}
	return taps
}

// SmoothPolygon applies a length-preserving circular convolution of the
// polygon's vertex coordinates with a 59-tap Blackman-windowed sinc
// low-pass filter (cutoff 0.05 at sample rate 1.0). The result has the
// same vertex count as the input; the operation is linear, so smoothing
// a translated polygon yields an identically translated result.
//
// The circular convolution is intentional: a closed polygon has no
// boundary to special-case, unlike an open signal.
func SmoothPolygon(polygon Polygon) Polygon {
	coeffs := lowpassFIRFilter(smoothingSampleRate, smoothingCutoffFrequency, smoothingFilterLength)

	result := make(Polygon, len(polygon))
	n := len(result)
	if n == 0 {
		return result
	}

	for j, h := range coeffs {
		for i, v := range polygon {
			p := (i + j) % n
			result[p].X += v.X * h
			result[p].Y += v.Y * h
		}
	}
	return result
}
