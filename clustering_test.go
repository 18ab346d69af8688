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

func TestFindInitialClustersPriorityBFSSinglePeak(t *testing.T) {
	data := []float32{
		1, 1, 1,
		1, 5, 1,
		1, 1, 1,
	}
	g := NewGrid(3, 3, data)
	labels, clusters := findInitialClustersPriorityBFS(g)

	if len(clusters) != 1 {
		t.Fatalf("found %d clusters, want 1", len(clusters))
	}
	for x, y := range g.Coords {
		if labels.At(x, y) != 0 {
			t.Errorf("labels.At(%d,%d) = %d, want 0", x, y, labels.At(x, y))
		}
	}
	if clusters[0].NumPixels != 9 {
		t.Errorf("NumPixels = %d, want 9 (every equal-density border pixel is reachable from the peak)", clusters[0].NumPixels)
	}
}

func TestFindInitialClustersPriorityBFSTwoPeaksSeparated(t *testing.T) {
	data := []float32{
		1, 1, 1, 1, 1,
		1, 9, 1, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 1, 9, 1,
		1, 1, 1, 1, 1,
	}
	g := NewGrid(5, 5, data)
	labels, clusters := findInitialClustersPriorityBFS(g)

	if len(clusters) != 2 {
		t.Fatalf("found %d clusters, want 2", len(clusters))
	}
	if labels.At(1, 1) == labels.At(3, 3) {
		t.Error("the two peaks should end up in distinct clusters")
	}
}

func TestFindUnlabeledClustersFillsRemainder(t *testing.T) {
	data := []float32{
		0, 0, 0,
		0, 5, 0,
		0, 0, 0,
	}
	g := NewGrid(3, 3, data)
	labels, clusters := findInitialClustersPriorityBFS(g)
	findUnlabeledClusters(g, labels, &clusters)

	for x, y := range g.Coords {
		if labels.At(x, y) == -1 {
			t.Errorf("labels.At(%d,%d) still unassigned after findUnlabeledClusters", x, y)
		}
	}
}

func TestFindInitialClustersDisjointSetSinglePeak(t *testing.T) {
	data := []float32{
		1, 2, 1,
		2, 5, 2,
		1, 2, 1,
	}
	g := NewGrid(3, 3, data)
	labels, clusters := findInitialClustersDisjointSet(g)

	if len(clusters) != 1 {
		t.Fatalf("found %d clusters, want 1", len(clusters))
	}
	if clusters[0].NumPixels != 9 {
		t.Errorf("NumPixels = %d, want 9", clusters[0].NumPixels)
	}
	center := labels.At(1, 1)
	for x, y := range g.Coords {
		if labels.At(x, y) != center {
			t.Errorf("labels.At(%d,%d) = %d, want %d (every pixel climbs to the peak)", x, y, labels.At(x, y), center)
		}
	}
}

func TestFindInitialClustersDisjointSetPlateauTieBreak(t *testing.T) {
	// a flat 2x2 grid: every pixel's ">=" neighbour test is satisfied by
	// ties too, so each pixel still climbs to its first-scanned (W,E,N,S)
	// neighbour of equal density, pairing the grid into two clusters.
	g := NewGrid(2, 2, []float32{1, 1, 1, 1})
	_, clusters := findInitialClustersDisjointSet(g)
	if len(clusters) != 2 {
		t.Fatalf("found %d clusters on a flat plateau, want 2", len(clusters))
	}
}
