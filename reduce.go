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

// clusterProximityUnion repeatedly unions the pair of nodes achieving
// the global minimum min_distance_to_edge, as long as that minimum
// exists and is below threshold. The graph is mutated in place while
// its node set is re-scanned every iteration, so unions observed by
// later iterations are always up to date.
func clusterProximityUnion(g *clusterGraph, threshold float32) {
	for {
		var (
			bestNode, bestNeighbor int32
			bestDistance           float32
			found                  bool
		)
		for _, node := range g.nodeIDs() {
			d := g.minDistanceToEdge(node)
			if d.ok && (!found || d.distance < bestDistance) {
				found = true
				bestNode = node
				bestNeighbor = d.neighbor
				bestDistance = d.distance
			}
		}
		if !found {
			break
		}
		if bestDistance < threshold {
			g.union(bestNode, bestNeighbor)
		} else {
			break
		}
	}
}

// clusterDensityGrouping repeatedly scans every (node, neighbor) ordered
// pair and unions the pair whose shared saddle is both "too weak to
// separate them" (w >= peak*scaler) and the best (largest max_w2)
// candidate among all pairs that pass the max_w2 < max_w filter — that
// filter rejects merges that cannot lower node's global saddle density.
// Stops when no pair qualifies.
func clusterDensityGrouping(g *clusterGraph, scaler float32) {
	for {
		var (
			bestN1, bestN2 int32
			bestMaxW2      float32
			found          bool
		)
		for _, node := range g.nodeIDs() {
			maxW := g.maxEdgeDensity(node)
			maxD := g.summary[node].MaxDensity
			for _, neighbor := range g.neighborIDs(node) {
				w := g.neighbors[node][neighbor].MaxDensity
				maxW2 := g.maxEdgeDensityForPair(node, neighbor)
				if maxW2 >= maxW {
					continue
				}
				maxD2 := g.summary[neighbor].MaxDensity
				peak := maxD
				if maxD2 > peak {
					peak = maxD2
				}
				if w >= peak*scaler {
					if !found || maxW2 > bestMaxW2 {
						found = true
						bestN1 = node
						bestN2 = neighbor
						bestMaxW2 = maxW2
					}
				}
			}
		}
		if !found {
			break
		}
		g.union(bestN1, bestN2)
	}
}
