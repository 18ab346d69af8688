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

import "container/heap"

// bfsDirections are the four axis-aligned neighbour offsets used by
// every 4-connected step in this package, in the order the source
// visits them: west, east, north, south.
var bfsDirections = [4]point2D{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// queueItem is one entry of the priority-BFS max-heap: a pixel waiting
// to be expanded, tagged with the cluster it would join and the
// density it was discovered at.
type queueItem struct {
	location point2D
	density  float32
	cluster  int32
}

// priorityQueue is a max-heap on density, breaking ties by location (y
// ascending, then x ascending) so
// that identical inputs produce identical pop order regardless of push
// order (spec §4.D requires a fixed total order on ties).
type priorityQueue []queueItem

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].density != q[j].density {
		return q[i].density > q[j].density
	}
	if q[i].location.Y != q[j].location.Y {
		return q[i].location.Y < q[j].location.Y
	}
	return q[i].location.X < q[j].location.X
}

func (q priorityQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *priorityQueue) Push(x any) { *q = append(*q, x.(queueItem)) }

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// findInitialClustersPriorityBFS seeds a cluster at every local maximum
// and grows it by popping the highest-density unvisited pixel reachable
// from any seed, assigning neighbours only when their density does not
// exceed the density the pixel was reached at. Because density is
// non-increasing along every BFS path, every pixel is enqueued at most
// once.
func findInitialClustersPriorityBFS(densityMap *Grid[float32]) (*Grid[int32], []ClusterSummary) {
	w, h := densityMap.Width(), densityMap.Height()
	clusterMap := NewGridWithConstant[int32](w, h, -1)

	maxima := findLocalMaxima(densityMap)

	var q priorityQueue
	var clusters []ClusterSummary

	for _, loc := range maxima {
		cluster := int32(len(clusters))
		clusters = append(clusters, zeroClusterSummary())
		q = append(q, queueItem{
			location: loc,
			density:  densityMap.At(int(loc.X), int(loc.Y)),
			cluster:  cluster,
		})
		clusterMap.Set(int(loc.X), int(loc.Y), cluster)
	}
	heap.Init(&q)

	for q.Len() > 0 {
		start := heap.Pop(&q).(queueItem)
		x, y := start.location.X, start.location.Y
		for _, d := range bfsDirections {
			px, py := x+d.X, y+d.Y
			if px < 0 || int(px) >= w || py < 0 || int(py) >= h {
				continue
			}
			if clusterMap.At(int(px), int(py)) != -1 {
				continue
			}
			pd := densityMap.At(int(px), int(py))
			if pd > start.density {
				continue
			}
			clusterMap.Set(int(px), int(py), start.cluster)
			heap.Push(&q, queueItem{location: point2D{px, py}, density: pd, cluster: start.cluster})
		}
		s := clusters[start.cluster]
		s.update(start.location, start.density)
		clusters[start.cluster] = s
	}

	return clusterMap, clusters
}

// findUnlabeledClusters sweeps the grid in row-major order and starts a
// fresh cluster, grown by unconditional 4-neighbour BFS, at every
// still-unassigned pixel. Called after priority-BFS when
// Options.AddUnlabeled is set.
func findUnlabeledClusters(densityMap *Grid[float32], clusterMap *Grid[int32], clusters *[]ClusterSummary) {
	w, h := densityMap.Width(), densityMap.Height()

	for x0, y0 := range densityMap.Coords {
		if clusterMap.At(x0, y0) != -1 {
			continue
		}
		cluster := int32(len(*clusters))
		summary := zeroClusterSummary()

		queue := []point2D{{int32(x0), int32(y0)}}
		clusterMap.Set(x0, y0, cluster)

		for len(queue) > 0 {
			loc := queue[0]
			queue = queue[1:]
			for _, d := range bfsDirections {
				px, py := loc.X+d.X, loc.Y+d.Y
				if px < 0 || int(px) >= w || py < 0 || int(py) >= h {
					continue
				}
				if clusterMap.At(int(px), int(py)) != -1 {
					continue
				}
				clusterMap.Set(int(px), int(py), cluster)
				queue = append(queue, point2D{px, py})
			}
			summary.update(loc, densityMap.At(int(loc.X), int(loc.Y)))
		}

		*clusters = append(*clusters, summary)
	}
}

// findInitialClustersDisjointSet unions every pixel into the one
// 4-neighbour with the greatest density >= its own (ties broken by the
// fixed W,E,N,S scan order), then materialises a cluster id per root.
func findInitialClustersDisjointSet(densityMap *Grid[float32]) (*Grid[int32], []ClusterSummary) {
	w, h := densityMap.Width(), densityMap.Height()
	clusterMap := NewGridWithConstant[int32](w, h, -1)
	ds := NewDisjointSet2D(w, h)

	for x, y := range densityMap.Coords {
		d := densityMap.At(x, y)
		var best point2D
		haveBest := false
		var bestDensity float32
		for _, dir := range bfsDirections {
			nx, ny := x+int(dir.X), y+int(dir.Y)
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			nd := densityMap.At(nx, ny)
			if nd >= d {
				if !haveBest || nd > bestDensity {
					haveBest = true
					bestDensity = nd
					best = point2D{int32(nx), int32(ny)}
				}
			}
		}
		if haveBest {
			ds.Union(point2D{int32(x), int32(y)}, best)
		}
	}

	var summaries []ClusterSummary

	for x, y := range densityMap.Coords {
		p := ds.Find(point2D{int32(x), int32(y)})
		if p == (point2D{int32(x), int32(y)}) && clusterMap.At(int(p.X), int(p.Y)) == -1 {
			clusterMap.Set(int(p.X), int(p.Y), int32(len(summaries)))
			summaries = append(summaries, zeroClusterSummary())
		}
	}
	for x, y := range densityMap.Coords {
		p := ds.Find(point2D{int32(x), int32(y)})
		id := clusterMap.At(int(p.X), int(p.Y))
		clusterMap.Set(x, y, id)
		s := summaries[id]
		s.update(point2D{int32(x), int32(y)}, densityMap.At(x, y))
		summaries[id] = s
	}

	return clusterMap, summaries
}
