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

// Command densitycluster runs the density package's clustering pipeline
// against a raw float32 raster on disk and writes a label raster plus a
// JSON summary/boundary document. It is the external CLI collaborator
// named (but not specified) in spec.md §1.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "densitycluster",
	Short:   "Segment a 2D density raster into labelled clusters",
	Long:    "densitycluster runs the seeded watershed, cluster-graph reduction, and contour-tracing pipeline from seehuhn.de/go/density against a raw binary raster.",
	Version: version,
}

func init() {
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(exportPNGCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the densitycluster version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version)
		return nil
	},
}
