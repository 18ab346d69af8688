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
	"slices"
)

// minEdgeDistance is the cached result of clusterGraph.minDistanceToEdge:
// the neighbour achieving it, and the distance, or ok=false if the node
// currently has no neighbours.
type minEdgeDistance struct {
	neighbor int32
	distance float32
	ok       bool
}

// clusterGraph is the adjacency structure over surviving cluster nodes.
// A node id is an original cluster id that has not yet been absorbed by
// a union. It is intentionally not a general-purpose graph: edges are
// keyed directly by node id in nested maps, and the only mutation it
// supports is the union this pipeline needs.
type clusterGraph struct {
	// neighbors[n][m] is the border state on n's side of the n-m edge.
	neighbors map[int32]map[int32]edgeSummary
	// members[n] lists every original cluster id folded into n, starting as [n].
	members map[int32][]int32
	// summary[n] is the combined ClusterSummary of every member of n.
	summary map[int32]ClusterSummary
	// minEdgeCache[n] memoises minDistanceToEdge(n); invalidated on any
	// union touching n or one of its neighbours.
	minEdgeCache map[int32]minEdgeDistance
}

// newClusterGraph builds the initial graph from a label map and its
// per-cluster summaries. It scans adjacent pixel pairs in the +x and +y
// directions only, so every undirected pixel pair is visited once.
//
// Known limitation, reproduced intentionally from the source: pairs
// with nx>=width-1 or ny>=height-1 are skipped, so adjacencies that
// touch the very last column or row are never scanned for +x/+y
// neighbours respectively. This undercounts edges at the frame
// boundary; see spec §9.
func newClusterGraph(densityMap *Grid[float32], clusterMap *Grid[int32], summaries []ClusterSummary) *clusterGraph {
	w, h := densityMap.Width(), densityMap.Height()

	type borderKey struct{ from, to int32 }
	borders := make(map[borderKey]edgeSummary)

	for x, y := range densityMap.Coords {
		for _, n := range [2]point2D{{int32(x) + 1, int32(y)}, {int32(x), int32(y) + 1}} {
			nx, ny := n.X, n.Y
			if int(nx) >= w-1 || int(ny) >= h-1 {
				continue
			}
			c0 := clusterMap.At(x, y)
			c1 := clusterMap.At(int(nx), int(ny))
			if c0 != c1 && c0 != -1 && c1 != -1 {
				e := borders[borderKey{c0, c1}]
				e.updateWithPixel(point2D{int32(x), int32(y)}, densityMap.At(x, y))
				borders[borderKey{c0, c1}] = e

				e2 := borders[borderKey{c1, c0}]
				e2.updateWithPixel(point2D{nx, ny}, densityMap.At(int(nx), int(ny)))
				borders[borderKey{c1, c0}] = e2
			}
		}
	}

	neighbors := make(map[int32]map[int32]edgeSummary)
	for k, v := range borders {
		m, ok := neighbors[k.from]
		if !ok {
			m = make(map[int32]edgeSummary)
			neighbors[k.from] = m
		}
		m[k.to] = v
	}

	members := make(map[int32][]int32)
	summary := make(map[int32]ClusterSummary)
	for id := range summaries {
		nodeID := int32(id)
		members[nodeID] = []int32{nodeID}
		summary[nodeID] = summaries[id]
		if _, ok := neighbors[nodeID]; !ok {
			neighbors[nodeID] = make(map[int32]edgeSummary)
		}
	}

	return &clusterGraph{
		neighbors:    neighbors,
		members:      members,
		summary:      summary,
		minEdgeCache: make(map[int32]minEdgeDistance),
	}
}

// nodeIDs returns every live node id, sorted ascending so that
// iteration order — and therefore tie-broken reducer output — is
// deterministic.
func (g *clusterGraph) nodeIDs() []int32 {
	ids := make([]int32, 0, len(g.neighbors))
	for id := range g.neighbors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// neighborIDs returns node's neighbours, sorted ascending.
func (g *clusterGraph) neighborIDs(node int32) []int32 {
	m := g.neighbors[node]
	ids := make([]int32, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// maxEdgeDensity returns the largest max_density among node's edges, or
// 0 if node has no neighbours.
func (g *clusterGraph) maxEdgeDensity(node int32) float32 {
	var best float32
	for _, e := range g.neighbors[node] {
		if e.MaxDensity > best {
			best = e.MaxDensity
		}
	}
	return best
}

// maxEdgeDensityForPair returns the largest max_density among edges out
// of node1 or node2 that do not lead to node1 or node2 — the biggest
// saddle the pair would still face after being merged.
func (g *clusterGraph) maxEdgeDensityForPair(node1, node2 int32) float32 {
	var best float32
	for n, e := range g.neighbors[node1] {
		if n != node1 && n != node2 && e.MaxDensity > best {
			best = e.MaxDensity
		}
	}
	for n, e := range g.neighbors[node2] {
		if n != node1 && n != node2 && e.MaxDensity > best {
			best = e.MaxDensity
		}
	}
	return best
}

// union merges node2 into node1: node2's outgoing edges are folded into
// node1's (and the corresponding back-edges rewritten to point at
// node1 instead of node2), node2's members and summary are appended to
// node1's, and node2 is removed from the graph entirely. A self-union
// is a no-op.
func (g *clusterGraph) union(node1, node2 int32) {
	if node1 == node2 {
		return
	}

	n2Neighbors := g.neighbors[node2]
	delete(g.neighbors, node2)
	delete(g.neighbors[node1], node2)

	for n2Neighbor, w := range n2Neighbors {
		if n2Neighbor == node1 {
			continue
		}
		n1Neighbors := g.neighbors[node1]
		e := n1Neighbors[n2Neighbor]
		e.merge(w)
		n1Neighbors[n2Neighbor] = e

		back := g.neighbors[n2Neighbor]
		if bw, ok := back[node2]; ok {
			delete(back, node2)
			be := back[node1]
			be.merge(bw)
			back[node1] = be
		}
	}

	g.members[node1] = append(g.members[node1], g.members[node2]...)
	delete(g.members, node2)

	s := g.summary[node1]
	s.updateWithSummary(g.summary[node2])
	g.summary[node1] = s
	delete(g.summary, node2)

	delete(g.minEdgeCache, node1)
	for n := range g.neighbors[node1] {
		delete(g.minEdgeCache, n)
	}
}

// locationDistance is the Euclidean distance between two integer
// pixel coordinates.
func locationDistance(a, b point2D) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// computeMinDistanceToEdge scans every border pixel of node's edges and
// returns the neighbour holding the one closest to node's peak. Neighbours
// are visited in sorted id order so that a tie between two equidistant
// neighbours resolves to the lowest id, not to Go's randomized map
// iteration order.
func (g *clusterGraph) computeMinDistanceToEdge(node int32) minEdgeDistance {
	loc := point2D{g.summary[node].MaxDensityLocation[0], g.summary[node].MaxDensityLocation[1]}
	var best minEdgeDistance
	for _, n := range g.neighborIDs(node) {
		e := g.neighbors[node][n]
		for _, p := range e.Pixels {
			d := locationDistance(point2D{p.X, p.Y}, loc)
			if !best.ok || d < best.distance {
				best = minEdgeDistance{neighbor: n, distance: d, ok: true}
			}
		}
	}
	return best
}

// minDistanceToEdge returns, and caches, the minimum Euclidean distance
// from node's peak to any edge pixel across all of its neighbours.
func (g *clusterGraph) minDistanceToEdge(node int32) minEdgeDistance {
	if cached, ok := g.minEdgeCache[node]; ok {
		return cached
	}
	r := g.computeMinDistanceToEdge(node)
	g.minEdgeCache[node] = r
	return r
}
