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

// postMergeInfo carries, for one original cluster id, the surviving
// graph node it was folded into, the threshold plane fitted for that
// node, and the node's merged summary.
type postMergeInfo struct {
	nodeID  int32
	a, b, c float64
	summary ClusterSummary
	valid   bool
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FindClusters runs the full pipeline on densityMap: initial clustering
// from local maxima (or disjoint-set climb, per opts.UseDisjointSet),
// cluster graph construction, proximity-union and density-grouping
// reduction, and finally per-pixel thresholding against a tilted
// density-cutoff plane fitted per surviving cluster.
//
// The returned label grid contains -1 for unassigned/below-threshold
// pixels and otherwise a key of the returned summary map. Every summary
// in the map has NumPixels >= 1.
func FindClusters(densityMap *Grid[float32], opts Options) (*Grid[int32], map[int32]ClusterSummary) {
	var clusterMap *Grid[int32]
	var clusters []ClusterSummary

	if opts.UseDisjointSet {
		clusterMap, clusters = findInitialClustersDisjointSet(densityMap)
	} else {
		clusterMap, clusters = findInitialClustersPriorityBFS(densityMap)
		if opts.AddUnlabeled {
			findUnlabeledClusters(densityMap, clusterMap, &clusters)
		}
	}

	graph := newClusterGraph(densityMap, clusterMap, clusters)

	if opts.UnionThreshold > 0 {
		clusterProximityUnion(graph, opts.UnionThreshold)
	}
	if opts.PerformNeighborMapGrouping {
		clusterDensityGrouping(graph, opts.GroupingDensityScaler)
	}

	postMap := make([]postMergeInfo, len(clusters))
	for nodeID, memberIDs := range graph.members {
		var aggregate edgeSummary
		for _, e := range graph.neighbors[nodeID] {
			aggregate.merge(e)
		}

		var a, b, c float64
		if opts.TiltedThresholdPlane {
			a, b, c = estimateDensityCutoffPlane(aggregate.Pixels)
		} else {
			a, b, c = 0, 0, float64(aggregate.MaxDensity)
		}

		summary := graph.summary[nodeID]
		for _, memberID := range memberIDs {
			postMap[memberID] = postMergeInfo{nodeID: nodeID, a: a, b: b, c: c, summary: summary, valid: true}
		}
	}

	for x, y := range densityMap.Coords {
		id := clusterMap.At(x, y)
		if id == -1 {
			continue
		}
		info := postMap[id]
		if !info.valid {
			clusterMap.Set(x, y, -1)
			continue
		}

		if opts.TruncateToMaxDensity {
			base := float32(info.a*float64(x) + info.b*float64(y) + info.c)
			threshold := clamp(
				base*opts.ThresholdScaler,
				info.summary.MaxDensity*opts.DensityLowerboundScaler,
				info.summary.MaxDensity*opts.DensityUpperboundScaler,
			)
			if densityMap.At(x, y) > threshold {
				clusterMap.Set(x, y, info.nodeID)
			} else {
				clusterMap.Set(x, y, -1)
			}
		} else {
			if densityMap.At(x, y) > 0 {
				clusterMap.Set(x, y, info.nodeID)
			} else {
				clusterMap.Set(x, y, -1)
			}
		}
	}

	result := make(map[int32]ClusterSummary, len(graph.summary))
	for id, s := range graph.summary {
		result[id] = s
	}

	return clusterMap, result
}
