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

// Options controls every tunable of the FindClusters pipeline. Field
// names and defaults match the wire format of the original
// implementation's FindClustersOptions (see spec §6) so that decoded
// configuration documents remain compatible; unknown fields in a
// decoded document are ignored by the decoder, not by this type.
type Options struct {
	// UseDisjointSet selects the initial-clustering mode: climb-to-
	// brightest-neighbour union-find instead of priority-BFS.
	UseDisjointSet bool `json:"use_disjoint_set" yaml:"use_disjoint_set"`

	// AddUnlabeled enables the fallback BFS over unassigned pixels
	// after priority-BFS. Ignored in disjoint-set mode, where every
	// pixel is always assigned.
	AddUnlabeled bool `json:"add_unlabeled" yaml:"add_unlabeled"`

	// TruncateToMaxDensity enables the thresholding stage. When false,
	// a pixel is accepted iff its density is greater than zero.
	TruncateToMaxDensity bool `json:"truncate_to_max_density" yaml:"truncate_to_max_density"`

	// PerformNeighborMapGrouping enables the density-grouping graph
	// reducer.
	PerformNeighborMapGrouping bool `json:"perform_neighbor_map_grouping" yaml:"perform_neighbor_map_grouping"`

	// UnionThreshold is the proximity-union distance cutoff. Values
	// <= 0 disable the proximity-union reducer entirely.
	UnionThreshold float32 `json:"union_threshold" yaml:"union_threshold"`

	// ThresholdScaler multiplies the fitted-plane threshold before
	// clamping.
	ThresholdScaler float32 `json:"threshold_scaler" yaml:"threshold_scaler"`

	// DensityLowerboundScaler is the lower clamp on the threshold, as
	// a fraction of each cluster's peak density.
	DensityLowerboundScaler float32 `json:"density_lowerbound_scaler" yaml:"density_lowerbound_scaler"`

	// DensityUpperboundScaler is the upper clamp, symmetric to
	// DensityLowerboundScaler.
	DensityUpperboundScaler float32 `json:"density_upperbound_scaler" yaml:"density_upperbound_scaler"`

	// TiltedThresholdPlane selects a least-squares tilted plane fit
	// over each cluster's border pixels as the threshold surface; when
	// false, the threshold surface is flat at the border's max
	// density.
	TiltedThresholdPlane bool `json:"tilted_threshold_plane" yaml:"tilted_threshold_plane"`

	// GroupingDensityScaler is the saddle/peak ratio above which the
	// density-grouping reducer will consider merging a pair of
	// clusters.
	GroupingDensityScaler float32 `json:"grouping_density_scaler" yaml:"grouping_density_scaler"`
}

// DefaultOptions returns the pipeline's default tuning, identical to
// the source's FindClustersOptions::default().
func DefaultOptions() Options {
	return Options{
		UseDisjointSet:             false,
		AddUnlabeled:               true,
		TruncateToMaxDensity:       true,
		PerformNeighborMapGrouping: true,
		UnionThreshold:             10.0,
		ThresholdScaler:            1.0,
		DensityLowerboundScaler:    0.4,
		DensityUpperboundScaler:    0.8,
		TiltedThresholdPlane:       true,
		GroupingDensityScaler:      0.8,
	}
}
