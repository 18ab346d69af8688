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

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/density"
	"seehuhn.de/go/density/internal/clusterconfig"
	"seehuhn.de/go/density/internal/rasterio"
)

var clusterFlags struct {
	output      string
	outputJSON  string
	optionsYAML string
	optionsJSON string
	smooth      bool
	fitRects    bool
}

var clusterCmd = &cobra.Command{
	Use:   "cluster <density.bin> <width> <height>",
	Short: "Cluster a raw float32 density raster",
	Args:  cobra.ExactArgs(3),
	RunE:  runCluster,
}

func init() {
	clusterCmd.Flags().StringVarP(&clusterFlags.output, "output", "o", "clusters.bin", "path to the output label raster")
	clusterCmd.Flags().StringVar(&clusterFlags.outputJSON, "output-json", "clusters.json", "path to the output JSON summary/boundary document")
	clusterCmd.Flags().StringVar(&clusterFlags.optionsYAML, "options", "", "path to a YAML options document overriding the defaults")
	clusterCmd.Flags().StringVar(&clusterFlags.optionsJSON, "options-json", "", "path to a JSON options document overriding the defaults (wire-compatible with the original tool's --options flag)")
	clusterCmd.Flags().BoolVar(&clusterFlags.smooth, "smooth", false, "smooth traced boundaries with the FIR polygon filter before writing or fitting rects")
	clusterCmd.Flags().BoolVar(&clusterFlags.fitRects, "fit-rects", false, "additionally fit axis-aligned boundary rectangles for each cluster")
}

// outputDocument is the JSON document written by the cluster
// subcommand, matching the field names of spec.md §6: summaries,
// boundaries, and the optional boundary_rects.
type outputDocument struct {
	Summaries     map[int32]density.ClusterSummary `json:"summaries"`
	Boundaries    map[int32][][][2]float64          `json:"boundaries"`
	BoundaryRects map[int32][][4]float64            `json:"boundary_rects,omitempty"`
}

func runCluster(cmd *cobra.Command, args []string) error {
	path := args[0]
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parsing width: %w", err)
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parsing height: %w", err)
	}

	t0 := time.Now()

	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	densityMap, err := rasterio.ReadFloat32Grid(path, width, height)
	if err != nil {
		return fmt.Errorf("reading density map: %w", err)
	}

	t1 := time.Now()

	labels, summaries := density.FindClusters(densityMap, opts)

	boundaries := density.TraceAllOuterContours(labels)

	doc := outputDocument{
		Summaries:  summaries,
		Boundaries: make(map[int32][][][2]float64, len(boundaries)),
	}
	if clusterFlags.fitRects {
		doc.BoundaryRects = make(map[int32][][4]float64, len(boundaries))
	}

	for id, polygons := range boundaries {
		out := make([][][2]float64, len(polygons))
		for i, poly := range polygons {
			if clusterFlags.smooth {
				poly = density.SmoothPolygon(poly)
			}
			pts := make([][2]float64, len(poly))
			for j, v := range poly {
				pts[j] = [2]float64{v.X, v.Y}
			}
			out[i] = pts
			polygons[i] = poly
		}
		doc.Boundaries[id] = out

		if clusterFlags.fitRects {
			rects := density.FitRectsFromPolygons(polygons)
			rectOut := make([][4]float64, len(rects))
			for i, r := range rects {
				rectOut[i] = [4]float64{r.LLx, r.LLy, r.URx, r.URy}
			}
			doc.BoundaryRects[id] = rectOut
		}
	}

	t2 := time.Now()

	if err := rasterio.WriteInt32Grid(clusterFlags.output, labels); err != nil {
		return fmt.Errorf("writing label raster: %w", err)
	}

	f, err := os.Create(clusterFlags.outputJSON)
	if err != nil {
		return fmt.Errorf("creating output JSON: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing output JSON: %w", err)
	}

	t3 := time.Now()

	slog.Info("densitycluster finished",
		"clusters", len(summaries),
		"load", t1.Sub(t0),
		"algorithm", t2.Sub(t1),
		"save", t3.Sub(t2),
	)

	return nil
}

func resolveOptions() (density.Options, error) {
	switch {
	case clusterFlags.optionsYAML != "":
		return clusterconfig.LoadYAML(clusterFlags.optionsYAML)
	case clusterFlags.optionsJSON != "":
		return clusterconfig.LoadJSON(clusterFlags.optionsJSON)
	default:
		return clusterconfig.Default()
	}
}
